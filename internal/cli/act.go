package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"

	"github.com/qmonoid/rookzero/code"
)

// ActOptions holds flags for the act command.
type ActOptions struct {
	*RootOptions
	Code  string
	Gens  string
	Trace bool
	File  string
}

// ActResult is the outcome of applying generators to one code.
type ActResult struct {
	Code       []int    `json:"code"`
	Generators []int    `json:"generators"`
	Result     []int    `json:"result"`
	Branches   []string `json:"branches,omitempty"`
}

// BatchInput is the decoded shape of an action batch file.
type BatchInput struct {
	Items []BatchItem `mapstructure:"items"`
}

// BatchItem pairs one code with the generators applied to it in order.
type BatchItem struct {
	Code       []int `mapstructure:"code"`
	Generators []int `mapstructure:"generators"`
}

// NewActCommand creates the act command.
func NewActCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ActOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "act",
		Short: "Apply generator actions to an R-code",
		Long: `Apply one or more generators to an R-code, directly on the code.

Generators listed in --gen are applied left to right. With --trace the
dispatch branch taken at every recursion depth is printed before the
result. Batch mode reads a JSON file of {code, generators} items
instead of the flags.

Examples:
  rookzero act --code 1,2,-2 --gen 1
  rookzero act --code 1,-1 --gen 0 --trace
  rookzero act --file batch.json --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAct(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Code, "code", "", "R-code as a comma list, e.g. 1,2,-1")
	cmd.Flags().StringVar(&opts.Gens, "gen", "", "generator index, or a comma list applied left to right")
	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "print the dispatch branch per recursion depth")
	cmd.Flags().StringVar(&opts.File, "file", "", "JSON batch file of {code, generators} items")

	return cmd
}

func runAct(opts *ActOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.File != "" {
		return runActBatch(opts, formatter)
	}

	if opts.Code == "" || opts.Gens == "" {
		err := errors.New("need --code and --gen, or --file")
		_ = formatter.Error(ErrCodeParse, err.Error(), nil)
		return WrapExitError(ExitCommandError, "act", err)
	}

	c, err := parseIntList(opts.Code)
	if err != nil {
		_ = formatter.Error(ErrCodeParse, err.Error(), nil)
		return WrapExitError(ExitCommandError, "parse --code", err)
	}
	gens, err := parseIntList(opts.Gens)
	if err != nil {
		_ = formatter.Error(ErrCodeParse, err.Error(), nil)
		return WrapExitError(ExitCommandError, "parse --gen", err)
	}

	out, branches, err := applyAct(code.Code(c), gens, opts.Trace)
	if err != nil {
		_ = formatter.Error(ErrCodeDomain, err.Error(), nil)
		return WrapExitError(ExitCommandError, "act", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(ActResult{
			Code:       c,
			Generators: gens,
			Result:     out,
			Branches:   branches,
		})
	}

	for _, line := range branches {
		fmt.Fprintln(formatter.Writer, line)
	}
	fmt.Fprintln(formatter.Writer, out)
	return nil
}

func runActBatch(opts *ActOptions, formatter *OutputFormatter) error {
	in, err := loadBatch(opts.File)
	if err != nil {
		_ = formatter.Error(ErrCodeInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "load batch", err)
	}
	formatter.VerboseLog("Applying %d batch item(s) from %s", len(in.Items), opts.File)

	results := make([]ActResult, 0, len(in.Items))
	for i, item := range in.Items {
		out, branches, err := applyAct(code.Code(item.Code), item.Generators, opts.Trace)
		if err != nil {
			_ = formatter.Error(ErrCodeDomain, fmt.Sprintf("item %d: %v", i, err), nil)
			return WrapExitError(ExitCommandError, fmt.Sprintf("act on batch item %d", i), err)
		}
		results = append(results, ActResult{
			Code:       item.Code,
			Generators: item.Generators,
			Result:     out,
			Branches:   branches,
		})
	}

	if formatter.Format == "json" {
		return formatter.Success(results)
	}

	for _, res := range results {
		for _, line := range res.Branches {
			fmt.Fprintln(formatter.Writer, line)
		}
		fmt.Fprintf(formatter.Writer, "%s * %v = %s\n",
			code.Code(res.Code), res.Generators, code.Code(res.Result))
	}
	return nil
}

// applyAct folds the generators over c left to right, collecting the
// branch trace when asked for.
func applyAct(c code.Code, gens []int, trace bool) (code.Code, []string, error) {
	var branches []string
	var actOpts []code.Option
	if trace {
		actOpts = append(actOpts, code.WithOnBranch(func(depth int, br code.Branch, at code.Code, t int) {
			branches = append(branches, fmt.Sprintf("depth %d: %s t=%d on %s", depth, br, t, at))
		}))
	}

	out := c
	for _, t := range gens {
		next, err := code.Act(out, t, actOpts...)
		if err != nil {
			return nil, nil, err
		}
		out = next
	}
	return out, branches, nil
}

// loadBatch reads a batch file: JSON, decoded loosely and then mapped
// onto the typed input.
func loadBatch(path string) (*BatchInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse batch %s: %w", path, err)
	}

	var in BatchInput
	if err := mapstructure.Decode(raw, &in); err != nil {
		return nil, fmt.Errorf("decode batch %s: %w", path, err)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("batch %s has no items", path)
	}
	return &in, nil
}
