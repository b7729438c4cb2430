package verify

import (
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"

	"github.com/qmonoid/rookzero/rook"
)

// injectiveByMatching re-derives the injectivity of r without trusting
// the validator: positions with a placed value form one side of a
// bipartite graph, the distinct values the other, adjacent exactly
// when the position holds the value. The placement is injective iff a
// maximum matching covers every placed position.
//
// The caller guarantees at least one placed value.
func injectiveByMatching(r rook.Rook) (bool, error) {
	positions := make([]int, 0, len(r))
	for i, v := range r {
		if v != 0 {
			positions = append(positions, i)
		}
	}
	values := lo.Uniq(lo.Map(positions, func(p int, _ int) int { return r[p] }))

	neighbors := func(positionAny any, valueAny any) (bool, error) {
		return r[positionAny.(int)] == valueAny.(int), nil
	}
	positionsAny := lo.Map(positions, func(p int, _ int) any { return p })
	valuesAny := lo.Map(values, func(v int, _ int) any { return v })

	graph, err := bipartitegraph.NewBipartiteGraph(positionsAny, valuesAny, neighbors)
	if err != nil {
		return false, err
	}
	matching := graph.LargestMatching()
	return len(matching) == len(positions), nil
}
