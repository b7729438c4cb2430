package cli

import (
	"github.com/spf13/cobra"

	"github.com/qmonoid/rookzero/word"
)

// CanonResult is the JSON payload for the canon command.
type CanonResult struct {
	Input     []int `json:"input"`
	Canonical []int `json:"canonical"`
	Rank      int   `json:"rank"`
}

// NewCanonCommand creates the canon command.
func NewCanonCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canon <word>",
		Short: "Reduce a generator word to canonical form",
		Long: `Reduce a word of generators to the canonical word with the same
action, evaluated at the smallest rank the word fits in.

Words with the same canonical form act identically on every code at
every rank. The word is given as a comma list of generator indices.

Examples:
  rookzero canon 1,0,1,0
  rookzero canon "[0,0]" --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCanon(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCanon(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	letters, err := parseIntList(arg)
	if err != nil {
		_ = formatter.Error(ErrCodeParse, err.Error(), nil)
		return WrapExitError(ExitCommandError, "parse word", err)
	}

	in := word.Word(letters)
	can, err := word.Canonize(in)
	if err != nil {
		_ = formatter.Error(ErrCodeDomain, err.Error(), nil)
		return WrapExitError(ExitCommandError, "canonize word", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(CanonResult{
			Input:     letters,
			Canonical: can,
			Rank:      word.MinRank(can),
		})
	}
	return formatter.Success(can)
}
