package cli

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/qmonoid/rookzero/code"
	"github.com/qmonoid/rookzero/enum"
)

// ListOptions holds flags shared by the codes and rooks commands.
type ListOptions struct {
	*RootOptions
	Size int
}

// ListResult is the JSON payload for the codes and rooks commands.
type ListResult struct {
	Size  int      `json:"size"`
	Count int      `json:"count"`
	Items []string `json:"items"`
}

// NewCodesCommand creates the codes command.
func NewCodesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "codes",
		Short: "List every R-code of a given rank",
		Long: `List every R-code of rank n in enumeration order.

The listing walks prefixes in increasing entry order, so codes appear
sorted lexicographically. Ranks above ` + fmt.Sprint(enum.MaxEnumSize) + ` are rejected.

Examples:
  rookzero codes --size 2
  rookzero codes --size 3 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCodes(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Size, "size", 3, "rank n of the listed monoid")

	return cmd
}

func runCodes(opts *ListOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cs, err := enum.Codes(opts.Size)
	if err != nil {
		_ = formatter.Error(ErrCodeDomain, err.Error(), nil)
		return WrapExitError(ExitCommandError, "enumerate codes", err)
	}

	items := lo.Map(cs, func(c code.Code, _ int) string { return c.String() })
	return outputList(formatter, opts.Size, items)
}

// outputList renders an enumeration listing in the configured format.
func outputList(formatter *OutputFormatter, size int, items []string) error {
	if formatter.Format == "json" {
		return formatter.Success(ListResult{Size: size, Count: len(items), Items: items})
	}

	for _, it := range items {
		fmt.Fprintln(formatter.Writer, it)
	}
	fmt.Fprintf(formatter.Writer, "%d elements of rank %d\n", len(items), size)
	return nil
}
