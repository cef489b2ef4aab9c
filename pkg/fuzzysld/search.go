package fuzzysld

import (
	"math"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-set/v3"
)

// ProofState is the immutable state threaded through one branch of the
// search: the branch's similarity so far, its substitutions, and the
// rules still available for resolution on this branch.
type ProofState struct {
	Similarity     float64
	Substitutions  *SubstitutionsMap
	AvailableRules *set.Set[*Rule]
}

// searchConfig bundles the parameters that are constant across one
// recurse/join invocation tree, so recurse and join don't have to thread
// three extra parameters through every recursive call.
type searchConfig struct {
	similarity SimilarityFunc
	threshold  float64
	logger     hclog.Logger
}

// recurse implements the OR step of the search: it tries every rule
// still available on this branch against goal, and for each one that
// unifies, either records a terminal leaf (if the rule is a fact) or
// recurses into the rule body via join (AND). It returns the resulting
// proof states and the proof-graph nodes that produced them, in lockstep.
func recurse(cfg *searchConfig, goal Goal, maxDepth int, state ProofState) ([]ProofState, []*ProofGraphNode, error) {
	var outStates []ProofState
	var outNodes []*ProofGraphNode

	for _, rule := range state.AvailableRules.Slice() {
		newSubs, branchSim, ok, err := Unify(rule, goal, state.Substitutions, cfg.similarity, cfg.threshold)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			cfg.logger.Trace("rule did not unify", "rule", rule.String(), "goal", goal.Statement.String())
			continue
		}

		carrySim := math.Min(branchSim, state.Similarity)
		remaining := state.AvailableRules.Copy()
		remaining.Remove(rule)
		nextState := ProofState{Similarity: carrySim, Substitutions: newSubs, AvailableRules: remaining}

		if len(rule.Body) == 0 {
			cfg.logger.Debug("discharged goal with fact", "rule", rule.String(), "similarity", carrySim)
			outNodes = append(outNodes, &ProofGraphNode{
				Goal:                  goal.Statement,
				Rule:                  rule,
				UnificationSimilarity: branchSim,
				OverallSimilarity:     carrySim,
				Substitutions:         newSubs,
			})
			outStates = append(outStates, nextState)
			continue
		}

		bodyGoals := make([]Goal, len(rule.Body))
		for i, atom := range rule.Body {
			bodyGoals[i] = Goal{Statement: atom, Scope: rule}
		}

		childStates, childNodeLists, err := join(cfg, bodyGoals, maxDepth, nextState)
		if err != nil {
			return nil, nil, err
		}
		for i, childState := range childStates {
			outNodes = append(outNodes, &ProofGraphNode{
				Goal:                  goal.Statement,
				Rule:                  rule,
				UnificationSimilarity: branchSim,
				OverallSimilarity:     childState.Similarity,
				Children:              childNodeLists[i],
				Substitutions:         childState.Substitutions,
			})
			outStates = append(outStates, childState)
		}
	}

	return outStates, outNodes, nil
}

// join implements the AND step of the search over a conjunction of
// goals: it resolves the first goal via recurse, paying one unit of
// depth, then — for every way the first goal succeeded — resolves the
// rest under the resulting state without spending further depth at this
// level (depth bounds stacked rule-body expansions, not conjunction
// fanout). It returns, for every complete proof of the conjunction, the
// resulting state and the ordered list of per-subgoal nodes that witness
// it.
func join(cfg *searchConfig, goals []Goal, maxDepth int, state ProofState) ([]ProofState, [][]*ProofGraphNode, error) {
	if maxDepth <= 0 {
		return nil, nil, nil
	}

	first, rest := goals[0], goals[1:]

	childStates, childNodes, err := recurse(cfg, first, maxDepth-1, state)
	if err != nil {
		return nil, nil, err
	}

	if len(rest) == 0 {
		lists := make([][]*ProofGraphNode, len(childNodes))
		for i, n := range childNodes {
			lists[i] = []*ProofGraphNode{n}
		}
		return childStates, lists, nil
	}

	var outStates []ProofState
	var outLists [][]*ProofGraphNode
	for i, childState := range childStates {
		subStates, subLists, err := join(cfg, rest, maxDepth, childState)
		if err != nil {
			return nil, nil, err
		}
		for j, subState := range subStates {
			outStates = append(outStates, subState)
			combined := make([]*ProofGraphNode, 0, len(subLists[j])+1)
			combined = append(combined, childNodes[i])
			combined = append(combined, subLists[j]...)
			outLists = append(outLists, combined)
		}
	}
	return outStates, outLists, nil
}
