package verify

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/qmonoid/rookzero/code"
)

// Render writes the report as stable plain text: identical runs
// produce identical bytes, so rendered reports can be golden-compared.
func (r *Report) Render(w io.Writer) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "verification run %s\n", r.RunToken)
	fmt.Fprintf(&sb, "ranks: %d..%d\n", r.MinSize, r.MaxSize)
	fmt.Fprintf(&sb, "codes checked: %d\n", r.Codes)
	fmt.Fprintf(&sb, "rooks checked: %d\n", r.Rooks)
	fmt.Fprintf(&sb, "actions checked: %d\n", r.Actions)
	fmt.Fprintf(&sb, "words checked: %d\n", r.Words)
	fmt.Fprintf(&sb, "matchings checked: %d\n", r.Matchings)

	sb.WriteString("counts:\n")
	for _, cc := range r.Counts {
		fmt.Fprintf(&sb, "  rank %d: enumerated %d, closed %d\n", cc.Rank, cc.Enumerated, cc.Closed)
	}

	sb.WriteString("branches:\n")
	for b := code.BranchUnit; b <= code.BranchNegGrow; b++ {
		fmt.Fprintf(&sb, "  %s: %d\n", b, r.Branches[b.String()])
	}

	if len(r.Failures) > 0 || r.Truncated > 0 {
		sb.WriteString("failures:\n")
		lines := lo.Map(r.Failures, func(f Failure, _ int) string {
			if f.Generator >= 0 {
				return fmt.Sprintf("  rank %d: %s on %s with t=%d: %s", f.Rank, f.Property, f.Subject, f.Generator, f.Detail)
			}
			return fmt.Sprintf("  rank %d: %s on %s: %s", f.Rank, f.Property, f.Subject, f.Detail)
		})
		if len(lines) > 0 {
			sb.WriteString(strings.Join(lines, "\n"))
			sb.WriteByte('\n')
		}
		if r.Truncated > 0 {
			fmt.Fprintf(&sb, "  (%d more truncated)\n", r.Truncated)
		}
		fmt.Fprintf(&sb, "result: FAIL (%d failures)\n", len(r.Failures)+r.Truncated)
	} else {
		sb.WriteString("result: PASS\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
