package cli

import (
	"github.com/spf13/cobra"

	"github.com/qmonoid/rookzero/code"
	"github.com/qmonoid/rookzero/word"
)

// WordResult is the JSON payload for the word command.
type WordResult struct {
	Code    []int `json:"code"`
	Word    []int `json:"word"`
	MinRank int   `json:"min_rank"`
}

// NewWordCommand creates the word command.
func NewWordCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "word <code>",
		Short: "Expand an R-code into its canonical generator word",
		Long: `Expand an R-code into the canonical word of generators that
reaches it from the identity.

The code is given as a comma list; the tuple form printed by the other
commands is accepted too.

Examples:
  rookzero word 0,1,2,4,-1
  rookzero word "(0,0)" --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWord(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runWord(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	c, err := parseIntList(arg)
	if err != nil {
		_ = formatter.Error(ErrCodeParse, err.Error(), nil)
		return WrapExitError(ExitCommandError, "parse code", err)
	}

	w, err := word.FromCode(code.Code(c))
	if err != nil {
		_ = formatter.Error(ErrCodeDomain, err.Error(), nil)
		return WrapExitError(ExitCommandError, "expand code", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(WordResult{
			Code:    c,
			Word:    w,
			MinRank: word.MinRank(w),
		})
	}
	return formatter.Success(w)
}
