package verify

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario declares one harness run: the rank range, the optional
// checks, a fixed token for reproducible reports and the counts the
// run is expected to see.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	MinSize     int    `yaml:"min_size"`
	MaxSize     int    `yaml:"max_size"`
	Words       bool   `yaml:"words,omitempty"`
	CrossCheck  bool   `yaml:"cross_check,omitempty"`
	RunToken    string `yaml:"run_token,omitempty"`

	// ExpectedCounts lists r(min_size)..r(max_size); optional, but
	// when present the length must cover the whole range.
	ExpectedCounts []int64 `yaml:"expected_counts,omitempty"`
}

// LoadScenario reads and strictly parses a scenario file: unknown
// fields are rejected, then the document is validated.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var s Scenario
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := validateScenario(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// validateScenario enforces the structural rules a runnable scenario
// must meet.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrScenario)
	}
	if s.MinSize < 0 || s.MaxSize < s.MinSize || s.MaxSize > MaxVerifySize {
		return fmt.Errorf("%w: rank range [%d, %d] outside [0, %d]",
			ErrScenario, s.MinSize, s.MaxSize, MaxVerifySize)
	}
	if n := len(s.ExpectedCounts); n != 0 && n != s.MaxSize-s.MinSize+1 {
		return fmt.Errorf("%w: expected_counts has %d entries, range needs %d",
			ErrScenario, n, s.MaxSize-s.MinSize+1)
	}
	return nil
}

// RunScenario executes a loaded scenario and folds its count
// expectations into the report as failures when they miss.
func RunScenario(s *Scenario) (*Report, error) {
	if err := validateScenario(s); err != nil {
		return nil, err
	}
	rep, err := Run(Options{
		MinSize:    s.MinSize,
		MaxSize:    s.MaxSize,
		Words:      s.Words,
		CrossCheck: s.CrossCheck,
		RunToken:   s.RunToken,
	})
	if err != nil {
		return nil, err
	}
	for i, want := range s.ExpectedCounts {
		got := rep.Counts[i].Enumerated
		if got != want {
			rep.addFailure(Failure{
				Rank:      s.MinSize + i,
				Property:  PropCount,
				Subject:   fmt.Sprintf("rank %d", s.MinSize+i),
				Generator: -1,
				Detail:    fmt.Sprintf("scenario expected %d, run saw %d", want, got),
			})
		}
	}
	return rep, nil
}
