package verify

import (
	"errors"

	"github.com/qmonoid/rookzero/code"
	"github.com/qmonoid/rookzero/enum"
)

// MaxVerifySize is the largest rank Run accepts; the set-bijection
// check keys every element of a rank in memory.
const MaxVerifySize = 7

// maxFailures caps the failures a Report retains; the rest only bump
// the Truncated counter.
const maxFailures = 20

// Sentinel errors returned by the harness.
var (
	// ErrSizeRange indicates a rank range outside [0, MaxVerifySize]
	// or with min above max.
	ErrSizeRange = errors.New("verify: rank range invalid")

	// ErrScenario indicates a scenario file that parsed but failed
	// validation.
	ErrScenario = errors.New("verify: invalid scenario")
)

// Property names used in Failure records.
const (
	PropCodeValid   = "code_valid"
	PropBoundAgree  = "bound_agree"
	PropRoundTrip   = "codec_roundtrip"
	PropActionValid = "action_stays_valid"
	PropCommute     = "commuting_square"
	PropWordRebuild = "word_rebuild"
	PropWordReduced = "word_reduced"
	PropSetMatch    = "element_sets_agree"
	PropCount       = "count_closed_form"
	PropInjective   = "matching_injective"
)

// Options configures one harness run.
type Options struct {
	// MinSize and MaxSize bound the verified ranks, inclusive.
	MinSize int
	MaxSize int

	// Words enables the canonical-word laws per code: the word rebuilds
	// its code at full rank and is action-reduced.
	Words bool

	// CrossCheck enables the bipartite-matching injectivity check on
	// every decoded vector with at least one placed value.
	CrossCheck bool

	// RunToken labels the report; empty draws a fresh UUID.
	RunToken string

	// OnBranch, when non-nil, additionally receives every dispatch of
	// every checked code action, after the report's own tally.
	OnBranch func(depth int, br code.Branch, c code.Code, t int)

	// Counter supplies the closed forms; nil uses a private one.
	Counter *enum.Counter
}

// DefaultOptions verifies ranks 0 through 5 with words and matching
// cross-checks enabled.
func DefaultOptions() Options {
	return Options{MinSize: 0, MaxSize: 5, Words: true, CrossCheck: true}
}

// Failure pins one broken property instance.
type Failure struct {
	Rank      int    `json:"rank"`
	Property  string `json:"property"`
	Subject   string `json:"subject"`
	Generator int    `json:"generator"` // -1 when no generator applies
	Detail    string `json:"detail"`
}

// CountCheck records one rank's enumerated count next to the closed
// form.
type CountCheck struct {
	Rank       int   `json:"rank"`
	Enumerated int64 `json:"enumerated"`
	Closed     int64 `json:"closed"`
}

// Report summarizes a harness run.
type Report struct {
	RunToken  string           `json:"run_token"`
	MinSize   int              `json:"min_size"`
	MaxSize   int              `json:"max_size"`
	Codes     int64            `json:"codes"`
	Rooks     int64            `json:"rooks"`
	Actions   int64            `json:"actions"`
	Words     int64            `json:"words"`
	Matchings int64            `json:"matchings"`
	Branches  map[string]int64 `json:"branches"`
	Counts    []CountCheck     `json:"counts"`
	Failures  []Failure        `json:"failures"`
	Truncated int              `json:"truncated"`
}

// Pass reports whether the run recorded no failures at all.
func (r *Report) Pass() bool {
	return len(r.Failures) == 0 && r.Truncated == 0
}

// addFailure appends f up to the retention cap.
func (r *Report) addFailure(f Failure) {
	if len(r.Failures) >= maxFailures {
		r.Truncated++
		return
	}
	r.Failures = append(r.Failures, f)
}
