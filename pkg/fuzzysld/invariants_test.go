package fuzzysld_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/fuzzysld/pkg/fuzzysld"
)

func TestSimilarityIsMonotonicallyNonIncreasing(t *testing.T) {
	rules, grandpaOf, _, bart, abe := familyKB(t)
	prover, err := fuzzysld.NewProver(rules)
	require.NoError(t, err)

	graph, err := prover.Prove(grandpaOf.Apply(abe, bart))
	require.NoError(t, err)
	require.NotNil(t, graph)

	var walk func(n *fuzzysld.ProofGraphNode, parentSim float64)
	walk = func(n *fuzzysld.ProofGraphNode, parentSim float64) {
		assert.LessOrEqual(t, n.OverallSimilarity, n.UnificationSimilarity)
		assert.LessOrEqual(t, n.OverallSimilarity, parentSim)
		for _, c := range n.Children {
			walk(c, n.OverallSimilarity)
		}
	}
	walk(graph.Head, 1.0)
}

func TestDeeplyRecursiveRuleIsBoundedByAvailableRulesRemoval(t *testing.T) {
	// ancestor(X,Z) :- ancestor(X,Y), parent(Y,Z) cannot be used twice on
	// one path: the cycle-prevention mechanism (available_rules with the
	// just-used rule removed before descending) only derives ancestor
	// chains extended by a single recursive step beyond the base case, a
	// known limitation carried forward from the design: a chain needing
	// the recursive rule twice on one path can never succeed.
	parent := fuzzysld.NewPredicate("parent")
	ancestor := fuzzysld.NewPredicate("ancestor")

	a := fuzzysld.NewConstant("a")
	b := fuzzysld.NewConstant("b")
	c := fuzzysld.NewConstant("c")
	d := fuzzysld.NewConstant("d")

	factAB := fuzzysld.NewRule(parent.Apply(a, b))
	factBC := fuzzysld.NewRule(parent.Apply(b, c))
	factCD := fuzzysld.NewRule(parent.Apply(c, d))

	x := fuzzysld.NewVariable("X")
	y := fuzzysld.NewVariable("Y")
	z := fuzzysld.NewVariable("Z")
	// ancestor(X,Z) :- ancestor(X,Y), parent(Y,Z)
	ancestorRule := fuzzysld.NewRule(
		ancestor.Apply(x, z),
		ancestor.Apply(x, y),
		parent.Apply(y, z),
	)
	// ancestor(X,Y) :- parent(X,Y)
	baseCase := fuzzysld.NewRule(ancestor.Apply(x, y), parent.Apply(x, y))

	prover, err := fuzzysld.NewProver([]*fuzzysld.Rule{factAB, factBC, factCD, ancestorRule, baseCase})
	require.NoError(t, err)

	// One hop: baseCase alone.
	graph, err := prover.Prove(ancestor.Apply(a, b))
	require.NoError(t, err)
	assert.NotNil(t, graph)

	// Two hops: ancestorRule once (removed after use) plus baseCase once.
	graph, err = prover.Prove(ancestor.Apply(a, c))
	require.NoError(t, err)
	assert.NotNil(t, graph)

	// Three hops would need ancestorRule twice on the same path, which
	// the cycle-prevention mechanism forbids: no proof exists.
	graph, err = prover.Prove(ancestor.Apply(a, d))
	require.NoError(t, err)
	assert.Nil(t, graph)
}
