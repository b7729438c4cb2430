package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/qmonoid/rookzero/enum"
)

// CountOptions holds flags for the count command.
type CountOptions struct {
	*RootOptions
	Max      int
	Triangle bool
}

// CountRow is one rank of the count table.
type CountRow struct {
	Size     int     `json:"size"`
	Rooks    int64   `json:"rooks"`
	Triangle []int64 `json:"triangle,omitempty"`
}

// CountResult is the JSON payload for the count command.
type CountResult struct {
	Max  int        `json:"max"`
	Rows []CountRow `json:"rows"`
}

// NewCountCommand creates the count command.
func NewCountCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CountOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print the element counts r(n)",
		Long: `Print the closed-form element counts r(n) for ranks 0 through max.

r(n) counts the partial injective placements of n non-attacking rooks
on an n x n board. With --triangle the placement counts t(n,k), split
by the number k of placed rooks, are printed per rank as well.

Counts use int64 arithmetic and are exact up to rank ` + fmt.Sprint(enum.MaxCountSize) + `.

Examples:
  rookzero count
  rookzero count --max 5 --triangle
  rookzero count --max 12 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Max, "max", 9, "largest rank in the table")
	cmd.Flags().BoolVar(&opts.Triangle, "triangle", false, "include the placement triangle t(n,k)")

	return cmd
}

func runCount(opts *CountOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.Max < 0 || opts.Max > enum.MaxCountSize {
		err := fmt.Errorf("%w: max %d outside [0, %d]", enum.ErrSizeRange, opts.Max, enum.MaxCountSize)
		_ = formatter.Error(ErrCodeDomain, err.Error(), nil)
		return WrapExitError(ExitCommandError, "build count table", err)
	}

	counter := enum.NewCounter()
	res := CountResult{Max: opts.Max, Rows: make([]CountRow, 0, opts.Max+1)}
	for n := 0; n <= opts.Max; n++ {
		total, err := counter.Rooks(n)
		if err != nil {
			_ = formatter.Error(ErrCodeDomain, err.Error(), nil)
			return WrapExitError(ExitCommandError, "build count table", err)
		}
		row := CountRow{Size: n, Rooks: total}
		if opts.Triangle {
			row.Triangle = make([]int64, 0, n+1)
			for k := 0; k <= n; k++ {
				placed, err := counter.Placements(n, k)
				if err != nil {
					_ = formatter.Error(ErrCodeDomain, err.Error(), nil)
					return WrapExitError(ExitCommandError, "build count table", err)
				}
				row.Triangle = append(row.Triangle, placed)
			}
		}
		res.Rows = append(res.Rows, row)
	}

	if formatter.Format == "json" {
		return formatter.Success(res)
	}
	return renderCounts(formatter, res)
}

// renderCounts prints the text table, with the placement triangle as a
// second block when it was computed.
func renderCounts(formatter *OutputFormatter, res CountResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%4s %15s\n", "n", "r(n)")
	for _, row := range res.Rows {
		fmt.Fprintf(&b, "%4d %15d\n", row.Size, row.Rooks)
	}

	if res.Triangle() {
		b.WriteString("\nplacements t(n,k) = C(n,k)^2 k!\n")
		for _, row := range res.Rows {
			cells := lo.Map(row.Triangle, func(v int64, _ int) string {
				return strconv.FormatInt(v, 10)
			})
			fmt.Fprintf(&b, "%4d: %s\n", row.Size, strings.Join(cells, " "))
		}
	}

	_, err := fmt.Fprint(formatter.Writer, b.String())
	return err
}

// Triangle reports whether the rows carry placement splits.
func (r CountResult) Triangle() bool {
	return len(r.Rows) > 0 && r.Rows[0].Triangle != nil
}
