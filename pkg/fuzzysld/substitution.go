package fuzzysld

import "fmt"

// Binding is the tagged variant a substitution entry holds: either a
// ground constant, or an alias pointing at another (scope, variable)
// pair. Per spec, the inner value of a SubstitutionsMap entry is always
// one of these two shapes.
type Binding interface {
	binding()
}

// ConstantBinding grounds a variable to a Constant.
type ConstantBinding struct {
	Constant *Constant
}

func (ConstantBinding) binding() {}

// AliasBinding points a variable at another variable in some (possibly
// different) scope.
type AliasBinding struct {
	Scope    *Rule
	Variable *Variable
}

func (AliasBinding) binding() {}

// scopedVar is the key of a SubstitutionsMap entry: a (scope, variable)
// pair. Both fields are compared by pointer identity, which is exactly
// what prevents variables of the same name in different rule instances
// from colliding.
type scopedVar struct {
	scope    *Rule
	variable *Variable
}

// SubstitutionsMap is an immutable, functional mapping from (scope,
// variable) pairs to Bindings. Every mutating operation (SetVarBinding) returns a
// new map; the receiver is never modified, so older snapshots remain
// valid — this is what lets the search backtrack for free.
type SubstitutionsMap struct {
	entries map[scopedVar]Binding
}

// EmptySubstitutions is the substitution map with no bindings.
func EmptySubstitutions() *SubstitutionsMap {
	return &SubstitutionsMap{}
}

func (s *SubstitutionsMap) lookup(scope *Rule, v *Variable) (Binding, bool) {
	if s == nil || s.entries == nil {
		return nil, false
	}
	b, ok := s.entries[scopedVar{scope, v}]
	return b, ok
}

// with returns a new map identical to s but with (scope, v) bound to
// value. It is a copy-on-write clone, mirroring the clone-then-mutate
// pattern used throughout this package's ancestry for persistent maps.
func (s *SubstitutionsMap) with(scope *Rule, v *Variable, value Binding) *SubstitutionsMap {
	next := make(map[scopedVar]Binding, len(s.entries)+1)
	for k, val := range s.entries {
		next[k] = val
	}
	next[scopedVar{scope, v}] = value
	return &SubstitutionsMap{entries: next}
}

// VariableBindingError is raised when SetVarBinding's alias chain
// terminates at a variable that is already bound to a constant. Per spec,
// this reflects a programmer error in the substitution layer (the unifier
// resolves each term to an unbound variable or a constant before writing,
// so in ordinary operation this should never be observed) and is fatal to the current search branch.
type VariableBindingError struct {
	Scope    *Rule
	Variable *Variable
	Existing *Constant
	Attempt  Binding
}

func (e *VariableBindingError) Error() string {
	return fmt.Sprintf("fuzzysld: variable %s in scope %p already bound to %s",
		e.Variable, e.Scope, e.Existing)
}

// ResolveTerm resolves term under scope against substitutions. A Constant
// resolves to itself. A Variable resolves to: itself, if unbound; the
// terminal constant, if bound (ground or via an alias chain); or — if the
// chain continues into another scope — the recursive resolution there.
func ResolveTerm(term Term, scope *Rule, substitutions *SubstitutionsMap) Term {
	term, _ = resolveTermScoped(term, scope, substitutions)
	return term
}

// resolveTermScoped walks term's alias chain exactly like ResolveTerm, but
// additionally reports the scope under which the returned term was found.
// For a constant, or a variable that is unbound, that scope is just the
// scope it was found at (the caller's scope for an unbound variable). For a
// variable resolved through one or more AliasBindings, it is the scope of
// the alias chain's terminal (still-unbound, or constant-bound) link — not
// the scope the walk started from. Unify needs this so that a newly written
// binding targets the variable's true current scope rather than the scope
// of whichever call happened to trigger the walk.
func resolveTermScoped(term Term, scope *Rule, substitutions *SubstitutionsMap) (Term, *Rule) {
	v, ok := term.(*Variable)
	if !ok {
		return term, scope
	}
	b, found := substitutions.lookup(scope, v)
	if !found {
		return v, scope
	}
	switch bound := b.(type) {
	case ConstantBinding:
		return bound.Constant, scope
	case AliasBinding:
		return resolveTermScoped(bound.Variable, bound.Scope, substitutions)
	default:
		return v, scope
	}
}

// GetVarBinding walks v's alias chain under scope and returns the
// terminal constant, or (nil, false) if the chain ends at an unbound
// variable.
func GetVarBinding(v *Variable, scope *Rule, substitutions *SubstitutionsMap) (*Constant, bool) {
	b, found := substitutions.lookup(scope, v)
	if !found {
		return nil, false
	}
	switch bound := b.(type) {
	case ConstantBinding:
		return bound.Constant, true
	case AliasBinding:
		return GetVarBinding(bound.Variable, bound.Scope, substitutions)
	default:
		return nil, false
	}
}

// IsVarBound reports whether GetVarBinding would return a constant.
func IsVarBound(v *Variable, scope *Rule, substitutions *SubstitutionsMap) bool {
	_, bound := GetVarBinding(v, scope, substitutions)
	return bound
}

// SetVarBinding records that (scope, v) takes on value, a Constant or an
// alias to another (scope, variable) pair. If (scope, v) already holds an
// alias, the write is forwarded along the chain to its root variable —
// the chain's terminal unbound variable is the one that actually receives
// the binding. If that root is already bound to a constant, SetVarBinding
// fails with a *VariableBindingError, even when value would be
// semantically identical to the existing binding: this prover preserves
// the stricter behavior for fidelity rather than accepting a no-op
// rebind, per the design's open question.
//
// SetVarBinding never mutates substitutions; it returns a new map.
func SetVarBinding(scope *Rule, v *Variable, value Binding, substitutions *SubstitutionsMap) (*SubstitutionsMap, error) {
	rootScope, rootVar := scope, v
	for {
		b, found := substitutions.lookup(rootScope, rootVar)
		if !found {
			break
		}
		switch bound := b.(type) {
		case ConstantBinding:
			return nil, &VariableBindingError{
				Scope:    rootScope,
				Variable: rootVar,
				Existing: bound.Constant,
				Attempt:  value,
			}
		case AliasBinding:
			rootScope, rootVar = bound.Scope, bound.Variable
		default:
			return nil, &VariableBindingError{Scope: rootScope, Variable: rootVar}
		}
	}
	return substitutions.with(rootScope, rootVar, value), nil
}

// GenerateVariableScope produces a fresh, unique scope sentinel: a Rule
// with an empty body and a synthetic head, used solely as a query's
// variable namespace. Per invariant 4, this Rule is never itself a
// candidate for resolution — callers never add it to a rule set.
func GenerateVariableScope() *Rule {
	return &Rule{Head: querySentinelAtom(), Body: nil}
}
