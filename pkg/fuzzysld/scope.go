package fuzzysld

import "github.com/google/uuid"

// querySentinelPredicate is the predicate used for synthetic query-scope
// head atoms. It is never matched against — it exists only so a scope's
// head has a human-readable String(), the same way Variable.Symbol is
// "informational only" per the data model.
var querySentinelPredicate = NewPredicate("__query_scope__")

// querySentinelAtom builds a throwaway head atom carrying a fresh UUID as
// its sole constant term, purely so GenerateVariableScope's result prints
// as something identifiable in logs instead of an anonymous pointer.
func querySentinelAtom() *Atom {
	return querySentinelPredicate.Apply(NewConstant(uuid.NewString()))
}
