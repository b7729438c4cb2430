package verify

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/qmonoid/rookzero/code"
	"github.com/qmonoid/rookzero/enum"
	"github.com/qmonoid/rookzero/rook"
	"github.com/qmonoid/rookzero/word"
)

// Run executes the harness over opts' rank range and returns the
// collected Report. Failures are recorded, not returned: the error is
// non-nil only for unusable options.
func Run(opts Options) (*Report, error) {
	// 1. Validate the rank range.
	if opts.MinSize < 0 || opts.MaxSize < opts.MinSize || opts.MaxSize > MaxVerifySize {
		return nil, fmt.Errorf("%w: [%d, %d], supported [0, %d]",
			ErrSizeRange, opts.MinSize, opts.MaxSize, MaxVerifySize)
	}

	// 2. Resolve collaborators.
	counter := opts.Counter
	if counter == nil {
		counter = enum.NewCounter()
	}
	token := opts.RunToken
	if token == "" {
		token = uuid.NewString()
	}

	rep := &Report{
		RunToken: token,
		MinSize:  opts.MinSize,
		MaxSize:  opts.MaxSize,
		Branches: make(map[string]int64),
	}
	actOpt := code.WithOnBranch(func(depth int, br code.Branch, c code.Code, t int) {
		rep.Branches[br.String()]++
		if opts.OnBranch != nil {
			opts.OnBranch(depth, br, c, t)
		}
	})

	// 3. Walk each rank once.
	for n := opts.MinSize; n <= opts.MaxSize; n++ {
		if err := runRank(n, opts, rep, counter, actOpt); err != nil {
			return nil, err
		}
	}
	return rep, nil
}

// runRank checks every property of one rank and folds the findings
// into rep.
func runRank(n int, opts Options, rep *Report, counter *enum.Counter, actOpt code.Option) error {
	decoded := make(map[string]struct{})
	var codesSeen int64

	err := enum.EachCode(n, func(c code.Code) bool {
		codesSeen++
		rep.Codes++

		// Validity of the enumerated code.
		if !code.IsCode(c) {
			rep.addFailure(Failure{Rank: n, Property: PropCodeValid, Subject: c.String(),
				Generator: -1, Detail: "enumerated code fails validation"})
			return true
		}

		// Bound agreement on every prefix.
		for i := 0; i <= len(c); i++ {
			if ref, fast := code.Bound(c[:i]), code.BoundFast(c[:i]); ref != fast {
				rep.addFailure(Failure{Rank: n, Property: PropBoundAgree, Subject: c[:i].String(),
					Generator: -1, Detail: fmt.Sprintf("recursive %d vs one-pass %d", ref, fast)})
			}
		}

		// Codec round trip, code side.
		r, err := code.Decode(c)
		if err != nil {
			rep.addFailure(Failure{Rank: n, Property: PropRoundTrip, Subject: c.String(),
				Generator: -1, Detail: "decode failed: " + err.Error()})
			return true
		}
		if !rook.IsRook(r) {
			rep.addFailure(Failure{Rank: n, Property: PropRoundTrip, Subject: c.String(),
				Generator: -1, Detail: "decoded vector invalid: " + r.String()})
			return true
		}
		if back, err := code.Encode(r); err != nil || !slices.Equal(back, c) {
			rep.addFailure(Failure{Rank: n, Property: PropRoundTrip, Subject: c.String(),
				Generator: -1, Detail: "re-encode drifted to " + back.String()})
		}
		decoded[r.String()] = struct{}{}

		// The commuting square, one generator at a time.
		for g := 0; g < n; g++ {
			rep.Actions++
			ac, err := code.Act(c, g, actOpt)
			if err != nil {
				rep.addFailure(Failure{Rank: n, Property: PropCommute, Subject: c.String(),
					Generator: g, Detail: "code action failed: " + err.Error()})
				continue
			}
			if !code.IsCode(ac) {
				rep.addFailure(Failure{Rank: n, Property: PropActionValid, Subject: c.String(),
					Generator: g, Detail: "action left the code space: " + ac.String()})
				continue
			}
			gotRook, err := code.Decode(ac)
			if err != nil {
				rep.addFailure(Failure{Rank: n, Property: PropCommute, Subject: c.String(),
					Generator: g, Detail: "acted code undecodable: " + err.Error()})
				continue
			}
			wantRook, err := rook.Act(r, g)
			if err != nil {
				rep.addFailure(Failure{Rank: n, Property: PropCommute, Subject: c.String(),
					Generator: g, Detail: "rook action failed: " + err.Error()})
				continue
			}
			if !slices.Equal(gotRook, wantRook) {
				rep.addFailure(Failure{Rank: n, Property: PropCommute, Subject: c.String(),
					Generator: g, Detail: fmt.Sprintf("decoded %s, vector action gives %s", gotRook, wantRook)})
			}
		}

		// Canonical-word laws.
		if opts.Words {
			rep.Words++
			checkWordLaws(n, c, rep)
		}

		// Injectivity via maximum matching.
		if opts.CrossCheck && len(r)-rook.Zeros(r) > 0 {
			rep.Matchings++
			ok, err := injectiveByMatching(r)
			if err != nil {
				rep.addFailure(Failure{Rank: n, Property: PropInjective, Subject: r.String(),
					Generator: -1, Detail: "matching failed: " + err.Error()})
			} else if !ok {
				rep.addFailure(Failure{Rank: n, Property: PropInjective, Subject: r.String(),
					Generator: -1, Detail: "maximum matching misses a placed value"})
			}
		}
		return true
	})
	if err != nil {
		return err
	}

	// The independently enumerated vectors must be exactly the decoded
	// set: same size plus containment gives equality both ways.
	var rooksSeen int64
	err = enum.EachRook(n, func(r rook.Rook) bool {
		rooksSeen++
		rep.Rooks++
		if _, ok := decoded[r.String()]; !ok {
			rep.addFailure(Failure{Rank: n, Property: PropSetMatch, Subject: r.String(),
				Generator: -1, Detail: "vector never produced by decoding"})
		}
		return true
	})
	if err != nil {
		return err
	}
	if int64(len(decoded)) != codesSeen {
		rep.addFailure(Failure{Rank: n, Property: PropSetMatch, Subject: fmt.Sprintf("rank %d", n),
			Generator: -1, Detail: fmt.Sprintf("%d codes decoded to %d distinct vectors", codesSeen, len(decoded))})
	}

	// Closed-form agreement: the walk count and the triangle row sum.
	closed, err := counter.Rooks(n)
	if err != nil {
		return err
	}
	rep.Counts = append(rep.Counts, CountCheck{Rank: n, Enumerated: codesSeen, Closed: closed})
	if codesSeen != closed || rooksSeen != closed {
		rep.addFailure(Failure{Rank: n, Property: PropCount, Subject: fmt.Sprintf("rank %d", n),
			Generator: -1, Detail: fmt.Sprintf("codes %d, vectors %d, closed form %d", codesSeen, rooksSeen, closed)})
	}
	var rowSum int64
	for k := 0; k <= n; k++ {
		term, err := counter.Placements(n, k)
		if err != nil {
			return err
		}
		rowSum += term
	}
	if rowSum != closed {
		rep.addFailure(Failure{Rank: n, Property: PropCount, Subject: fmt.Sprintf("rank %d", n),
			Generator: -1, Detail: fmt.Sprintf("triangle row sums to %d, closed form %d", rowSum, closed)})
	}
	return nil
}

// checkWordLaws verifies that c's canonical word rebuilds c at full
// rank and never takes a fixed step.
func checkWordLaws(n int, c code.Code, rep *Report) {
	w, err := word.FromCode(c)
	if err != nil {
		rep.addFailure(Failure{Rank: n, Property: PropWordRebuild, Subject: c.String(),
			Generator: -1, Detail: "word emission failed: " + err.Error()})
		return
	}
	rebuilt, err := word.Apply(w, n)
	if err != nil || !slices.Equal(rebuilt, c) {
		rep.addFailure(Failure{Rank: n, Property: PropWordRebuild, Subject: c.String(),
			Generator: -1, Detail: fmt.Sprintf("word %s rebuilt %s", w, rebuilt)})
		return
	}
	reduced, err := word.IsActionReduced(w)
	if err != nil {
		rep.addFailure(Failure{Rank: n, Property: PropWordReduced, Subject: c.String(),
			Generator: -1, Detail: "reduction check failed: " + err.Error()})
		return
	}
	if !reduced {
		rep.addFailure(Failure{Rank: n, Property: PropWordReduced, Subject: c.String(),
			Generator: -1, Detail: "canonical word " + w.String() + " takes a fixed step"})
	}
}
