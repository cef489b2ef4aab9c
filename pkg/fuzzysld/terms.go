package fuzzysld

import "fmt"

// Term is either a *Variable or a *Constant — the only two term shapes
// this prover supports. There are no function symbols (Non-goal: full
// first-order unification with compound terms).
type Term interface {
	term()
}

// Symbolic is implemented by the two entities a SimilarityFunc compares:
// Constant and Predicate. Both carry a symbol and an optional embedding
// vector of some fixed dimension.
type Symbolic interface {
	Symbol() string
	Vector() []float64
}

// Variable is a named placeholder. Two Variable values are distinct
// variables even when their symbol is identical — identity is the Go
// pointer, never the name; the symbol is informational only, used for
// printing and logging.
type Variable struct {
	symbol string
}

// NewVariable allocates a fresh Variable. Distinct calls always produce
// distinct identities, even given the same symbol.
func NewVariable(symbol string) *Variable {
	return &Variable{symbol: symbol}
}

func (v *Variable) term() {}

// Symbol returns the variable's human-readable name.
func (v *Variable) Symbol() string { return v.symbol }

func (v *Variable) String() string {
	if v.symbol == "" {
		return fmt.Sprintf("_%p", v)
	}
	return v.symbol
}

// Constant is a ground term: a symbol plus an optional embedding vector
// used by fuzzy similarity functions such as CosineSimilarity. A nil
// vector means "no embedding available" and forces similarity functions
// to fall back to symbolic comparison.
type Constant struct {
	symbol string
	vector []float64
}

// NewConstant creates a Constant with no vector (symbolic-only matching).
func NewConstant(symbol string) *Constant {
	return &Constant{symbol: symbol}
}

// NewConstantWithVector creates a Constant carrying an embedding vector.
func NewConstantWithVector(symbol string, vector []float64) *Constant {
	return &Constant{symbol: symbol, vector: vector}
}

func (c *Constant) term() {}

// Symbol returns the constant's symbol.
func (c *Constant) Symbol() string { return c.symbol }

// Vector returns the constant's embedding, or nil if it has none.
func (c *Constant) Vector() []float64 { return c.vector }

func (c *Constant) String() string { return c.symbol }

// Predicate is a named relation symbol. It carries the same optional
// embedding vector a Constant does, and acts as a constructor of atoms:
// applying it to an ordered sequence of terms via Apply yields an Atom.
type Predicate struct {
	symbol string
	vector []float64
}

// NewPredicate creates a Predicate with no vector.
func NewPredicate(symbol string) *Predicate {
	return &Predicate{symbol: symbol}
}

// NewPredicateWithVector creates a Predicate carrying an embedding vector.
func NewPredicateWithVector(symbol string, vector []float64) *Predicate {
	return &Predicate{symbol: symbol, vector: vector}
}

// Symbol returns the predicate's symbol.
func (p *Predicate) Symbol() string { return p.symbol }

// Vector returns the predicate's embedding, or nil if it has none.
func (p *Predicate) Vector() []float64 { return p.vector }

func (p *Predicate) String() string { return p.symbol }

// Apply constructs an Atom from this predicate and an ordered sequence of
// terms. The number of terms is the atom's arity; it is never checked
// against other atoms of the same predicate (the prover only ever compares
// a rule head's arity against the goal atom's arity at unification time).
func (p *Predicate) Apply(terms ...Term) *Atom {
	return &Atom{Predicate: p, Terms: terms}
}

// Atom is (predicate, terms): an ordered, fixed-length sequence of
// Constant|Variable terms applied to a predicate.
type Atom struct {
	Predicate *Predicate
	Terms     []Term
}

func (a *Atom) String() string {
	s := a.Predicate.String() + "("
	for i, t := range a.Terms {
		if i > 0 {
			s += ", "
		}
		switch v := t.(type) {
		case *Variable:
			s += v.String()
		case *Constant:
			s += v.String()
		}
	}
	return s + ")"
}

// Rule is (head, body): a Horn clause. A Rule with an empty Body is a
// fact. Each rule's variables implicitly belong to the rule's own scope —
// a Rule is also used, by pointer identity, as a Scope (see Goal and
// SubstitutionsMap).
type Rule struct {
	Head *Atom
	Body []*Atom
}

// NewRule constructs a rule from a head atom and zero or more body atoms.
// Passing no body atoms makes the rule a fact.
func NewRule(head *Atom, body ...*Atom) *Rule {
	return &Rule{Head: head, Body: body}
}

func (r *Rule) String() string {
	if len(r.Body) == 0 {
		return r.Head.String() + "."
	}
	s := r.Head.String() + " :- "
	for i, b := range r.Body {
		if i > 0 {
			s += ", "
		}
		s += b.String()
	}
	return s + "."
}

// Goal pairs an atom with the Scope (Rule) under which its variables are
// resolved.
type Goal struct {
	Statement *Atom
	Scope     *Rule
}
