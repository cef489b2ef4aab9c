package fuzzysld

import (
	"sort"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/go-set/v3"
)

const (
	// DefaultMaxProofDepth is the depth cutoff used when no
	// WithMaxProofDepth option is supplied.
	DefaultMaxProofDepth = 10
	// DefaultMinSimilarityThreshold is the pruning threshold used when no
	// WithMinSimilarityThreshold option is supplied.
	DefaultMinSimilarityThreshold = 0.5
)

// Prover is a fuzzy SLD resolution engine over a fixed set of rules. A
// *Prover holds no mutable state after construction: its rule set,
// options, and logger are fixed, and every value produced during a
// search (ProofState, SubstitutionsMap, the available-rules set) is
// built by copy-on-write operations that never touch their receiver. A
// single Prover may therefore be called concurrently from multiple
// goroutines, as long as each call's dynamicRules argument (if any) is
// not itself mutated concurrently.
type Prover struct {
	rules      *set.Set[*Rule]
	maxDepth   int
	threshold  float64
	similarity SimilarityFunc
	logger     hclog.Logger
}

// Option configures a Prover at construction time.
type Option func(*Prover)

// WithMaxProofDepth overrides DefaultMaxProofDepth.
func WithMaxProofDepth(depth int) Option {
	return func(p *Prover) { p.maxDepth = depth }
}

// WithMinSimilarityThreshold overrides DefaultMinSimilarityThreshold.
func WithMinSimilarityThreshold(threshold float64) Option {
	return func(p *Prover) { p.threshold = threshold }
}

// WithSimilarityFunc overrides the default CosineSimilarity.
func WithSimilarityFunc(fn SimilarityFunc) Option {
	return func(p *Prover) { p.similarity = fn }
}

// WithLogger attaches a structured logger; Trace/Debug log individual
// search steps. The default is a null logger.
func WithLogger(logger hclog.Logger) Option {
	return func(p *Prover) { p.logger = logger }
}

// NewProver constructs a Prover over the given static rule set. It
// validates every option and returns an aggregated error (via
// go-multierror) if more than one is invalid, rather than failing on the
// first problem found.
func NewProver(rules []*Rule, opts ...Option) (*Prover, error) {
	p := &Prover{
		rules:      set.From(rules),
		maxDepth:   DefaultMaxProofDepth,
		threshold:  DefaultMinSimilarityThreshold,
		similarity: CosineSimilarity,
		logger:     hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}

	var result *multierror.Error
	if p.maxDepth <= 0 {
		result = multierror.Append(result, &ConfigError{Field: "max_proof_depth", Reason: "must be positive"})
	}
	if p.threshold < 0 || p.threshold > 1 {
		result = multierror.Append(result, &ConfigError{Field: "min_similarity_threshold", Reason: "must be in [0, 1]"})
	}
	if p.similarity == nil {
		result = multierror.Append(result, &ConfigError{Field: "similarity_func", Reason: "must not be nil"})
	}
	if err := result.ErrorOrNil(); err != nil {
		p.logger.Warn("prover configuration invalid", "error", err)
		return nil, err
	}

	return p, nil
}

// goalFor normalizes a query into a Goal: an *Atom is wrapped with a
// fresh synthetic scope; a Goal is used as-is.
func goalFor(query any) Goal {
	switch g := query.(type) {
	case Goal:
		return g
	case *Atom:
		return Goal{Statement: g, Scope: GenerateVariableScope()}
	default:
		panic("fuzzysld: Prove/ProveAll query must be *Atom or Goal")
	}
}

// ProveAll returns every successful proof of query, sorted by descending
// SimilarityScore. query is an *Atom or a prebuilt Goal. dynamicRules are
// unioned with the prover's static rule set for this call only.
func (p *Prover) ProveAll(query any, dynamicRules ...*Rule) ([]*ProofGraph, error) {
	goal := goalFor(query)

	available := p.rules.Copy()
	available.InsertSlice(dynamicRules)

	cfg := &searchConfig{similarity: p.similarity, threshold: p.threshold, logger: p.logger.Named("search")}
	seed := ProofState{Similarity: 1.0, Substitutions: EmptySubstitutions(), AvailableRules: available}

	_, nodes, err := recurse(cfg, goal, p.maxDepth, seed)
	if err != nil {
		return nil, err
	}

	graphs := make([]*ProofGraph, len(nodes))
	for i, node := range nodes {
		graphs[i] = &ProofGraph{Goal: goal.Statement, Head: node, scope: goal.Scope}
	}
	sort.SliceStable(graphs, func(i, j int) bool {
		return graphs[i].SimilarityScore() > graphs[j].SimilarityScore()
	})

	p.logger.Debug("proof search complete", "goal", goal.Statement.String(), "proofs", len(graphs))
	return graphs, nil
}

// Prove returns the single best proof of query (highest SimilarityScore),
// or (nil, nil) if none was found.
func (p *Prover) Prove(query any, dynamicRules ...*Rule) (*ProofGraph, error) {
	graphs, err := p.ProveAll(query, dynamicRules...)
	if err != nil {
		return nil, err
	}
	if len(graphs) == 0 {
		return nil, nil
	}
	return graphs[0], nil
}
