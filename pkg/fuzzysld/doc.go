// Package fuzzysld implements a fuzzy SLD resolution prover: a
// backward-chaining theorem prover over a set of Horn clauses in which
// symbol equality is replaced by a continuous similarity score supplied by
// the caller. A proof succeeds when a goal atom can be resolved against the
// knowledge base by unification, and the overall proof confidence is the
// minimum similarity observed at every step along the derivation.
//
// The design follows the "End-to-End Differentiable Proving" formulation
// (Rocktaschel et al., 2017), implemented here in an inference-only,
// non-differentiable form: similarity ranks and prunes candidate proofs,
// it does not carry a gradient.
//
// The package has no parser, REPL, or persistence layer. Callers construct
// Variable, Constant, Predicate, Atom, and Rule values directly, hand a
// rule set to NewProver, and call Prove or ProveAll with a query Atom.
package fuzzysld
