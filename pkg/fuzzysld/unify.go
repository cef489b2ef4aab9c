package fuzzysld

// Unify attempts to match rule's head against goal's statement. On
// success it returns the updated substitution map and the branch
// similarity: the minimum over the predicate comparison and every
// compared constant pair encountered while walking the term lists in
// order. On failure — arity mismatch, or a comparison falling below
// threshold — it returns (nil, 0, false, nil). A head or goal variable
// that is already bound resolves to its constant before dispatch and is
// compared like any other constant.
//
// The only non-nil error Unify can return is a *VariableBindingError,
// which indicates a bug in an extension: the algorithm below resolves
// each term through its alias chain before writing, so it only ever binds
// an unbound variable, and a conflict here means substitutions arrived in
// an inconsistent state.
func Unify(rule *Rule, goal Goal, substitutions *SubstitutionsMap, similarity SimilarityFunc, threshold float64) (*SubstitutionsMap, float64, bool, error) {
	head := rule.Head
	if len(head.Terms) != len(goal.Statement.Terms) {
		return nil, 0, false, nil
	}

	s := similarity(head.Predicate, goal.Statement.Predicate)
	if s < threshold {
		return nil, 0, false, nil
	}

	current := substitutions
	for i, headTerm := range head.Terms {
		goalTerm := goal.Statement.Terms[i]

		resolvedHead, headScope := resolveTermScoped(headTerm, rule, current)
		resolvedGoal, goalScope := resolveTermScoped(goalTerm, goal.Scope, current)

		switch hv := resolvedHead.(type) {
		case *Variable:
			var value Binding
			switch gv := resolvedGoal.(type) {
			case *Constant:
				value = ConstantBinding{Constant: gv}
			case *Variable:
				value = AliasBinding{Scope: goalScope, Variable: gv}
			}
			next, err := SetVarBinding(headScope, hv, value, current)
			if err != nil {
				return nil, 0, false, err
			}
			current = next

		case *Constant:
			switch gv := resolvedGoal.(type) {
			case *Variable:
				next, err := SetVarBinding(goalScope, gv, ConstantBinding{Constant: hv}, current)
				if err != nil {
					return nil, 0, false, err
				}
				current = next
			case *Constant:
				sim := similarity(hv, gv)
				if sim < s {
					s = sim
				}
				if s < threshold {
					return nil, 0, false, nil
				}
			}
		}
	}

	return current, s, true, nil
}
