package cli

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/qmonoid/rookzero/enum"
	"github.com/qmonoid/rookzero/rook"
)

// NewRooksCommand creates the rooks command.
func NewRooksCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "rooks",
		Short: "List every rook vector of a given rank",
		Long: `List every rook vector of rank n in enumeration order.

Each position is offered 0 first and then the unused values in
increasing order, so vectors appear sorted lexicographically. The
listing and the codes listing have the same length at every rank.

Examples:
  rookzero rooks --size 2
  rookzero rooks --size 3 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRooks(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Size, "size", 3, "rank n of the listed monoid")

	return cmd
}

func runRooks(opts *ListOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	rs, err := enum.Rooks(opts.Size)
	if err != nil {
		_ = formatter.Error(ErrCodeDomain, err.Error(), nil)
		return WrapExitError(ExitCommandError, "enumerate rooks", err)
	}

	items := lo.Map(rs, func(r rook.Rook, _ int) string { return r.String() })
	return outputList(formatter, opts.Size, items)
}
