package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qmonoid/rookzero/verify"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
	MinSize    int
	MaxSize    int
	Words      bool
	CrossCheck bool
	RunToken   string
	Scenario   string
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run the structural property harness",
		Long: `Run the property harness over a range of ranks.

Every R-code of every rank in the range is checked against the
structural laws: validity of enumerated codes, bound agreement,
encode/decode round-trips, the commuting square of generator actions,
canonical-word reconstruction and the closed-form element counts.

With --scenario the run is described by a YAML file instead of flags,
including the counts the run is expected to see.

Examples:
  rookzero verify --max-size 4
  rookzero verify --min-size 2 --max-size 6 --words=false
  rookzero verify --scenario smoke.yaml --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.MinSize, "min-size", 0, "smallest rank to verify")
	cmd.Flags().IntVar(&opts.MaxSize, "max-size", 5, "largest rank to verify")
	cmd.Flags().BoolVar(&opts.Words, "words", true, "check the canonical-word laws")
	cmd.Flags().BoolVar(&opts.CrossCheck, "cross-check", true, "check injectivity via bipartite matching")
	cmd.Flags().StringVar(&opts.RunToken, "run-token", "", "fixed report token (default draws a UUID)")
	cmd.Flags().StringVar(&opts.Scenario, "scenario", "", "path to a scenario YAML file")

	return cmd
}

func runVerify(opts *VerifyOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var (
		rep *verify.Report
		err error
	)
	if opts.Scenario != "" {
		var sc *verify.Scenario
		sc, err = verify.LoadScenario(opts.Scenario)
		if err != nil {
			_ = formatter.Error(ErrCodeInput, err.Error(), nil)
			return WrapExitError(ExitCommandError, "load scenario", err)
		}
		formatter.VerboseLog("Running scenario %q over ranks %d..%d", sc.Name, sc.MinSize, sc.MaxSize)
		rep, err = verify.RunScenario(sc)
	} else {
		rep, err = verify.Run(verify.Options{
			MinSize:    opts.MinSize,
			MaxSize:    opts.MaxSize,
			Words:      opts.Words,
			CrossCheck: opts.CrossCheck,
			RunToken:   opts.RunToken,
		})
	}
	if err != nil {
		_ = formatter.Error(ErrCodeDomain, err.Error(), nil)
		return WrapExitError(ExitCommandError, "run verification", err)
	}

	return outputReport(formatter, rep)
}

// outputReport renders the finished report and converts recorded
// failures into the exit status.
func outputReport(formatter *OutputFormatter, rep *verify.Report) error {
	failed := len(rep.Failures) + rep.Truncated

	if formatter.Format == "json" {
		resp := CLIResponse{
			Status:  "ok",
			Data:    rep,
			TraceID: rep.RunToken,
		}
		if !rep.Pass() {
			resp.Status = "error"
			resp.Error = &CLIError{
				Code:    ErrCodeVerify,
				Message: fmt.Sprintf("verification recorded %d failure(s)", failed),
			}
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(resp); err != nil {
			return err
		}
	} else {
		if err := rep.Render(formatter.Writer); err != nil {
			return err
		}
	}

	if !rep.Pass() {
		return NewExitError(ExitFailure, fmt.Sprintf("verification recorded %d failure(s)", failed))
	}
	return nil
}
