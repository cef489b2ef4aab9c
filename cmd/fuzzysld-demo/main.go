// Command fuzzysld-demo is a small illustrative wrapper around
// pkg/fuzzysld. It builds a hard-coded knowledge base, runs a query
// against it, and prints the resulting proof. It is not part of the
// prover's core: it parses no proof programs from text and is not a
// REPL, it merely constructs Go values and calls ProveAll.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/gitrdm/fuzzysld/pkg/fuzzysld"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		depth     int
		threshold float64
		verbose   bool
	)

	root := &cobra.Command{
		Use:   "fuzzysld-demo",
		Short: "Run the grandpa_of family-tree query against a built-in knowledge base",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := hclog.NewNullLogger()
			if verbose {
				logger = hclog.New(&hclog.LoggerOptions{Name: "fuzzysld-demo", Level: hclog.Debug})
			}

			prover, err := fuzzysld.NewProver(
				familyRules(),
				fuzzysld.WithMaxProofDepth(depth),
				fuzzysld.WithMinSimilarityThreshold(threshold),
				fuzzysld.WithLogger(logger),
			)
			if err != nil {
				return fmt.Errorf("configuring prover: %w", err)
			}

			grandpaOf := fuzzysld.NewPredicate("grandpa_of")
			x := fuzzysld.NewVariable("X")
			bart := fuzzysld.NewConstant("bart")

			graphs, err := prover.ProveAll(grandpaOf.Apply(x, bart))
			if err != nil {
				return fmt.Errorf("proving query: %w", err)
			}
			if len(graphs) == 0 {
				cmd.Println("no proof found")
				return nil
			}
			for _, g := range graphs {
				cmd.Printf("similarity=%.3f bindings=%v\n", g.SimilarityScore(), g.VariableBindings())
			}
			return nil
		},
	}

	root.Flags().IntVar(&depth, "max-depth", fuzzysld.DefaultMaxProofDepth, "maximum proof depth")
	root.Flags().Float64Var(&threshold, "threshold", fuzzysld.DefaultMinSimilarityThreshold, "minimum similarity threshold")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log search steps to stderr")

	return root
}

// familyRules builds the classic family-tree knowledge base used
// throughout the prover's test suite: parent_of(homer, bart),
// father_of(abe, homer), father_of(clancy, marge), parent_of(marge,
// bart), and grandpa_of(X,Y) :- father_of(X,Z), parent_of(Z,Y).
func familyRules() []*fuzzysld.Rule {
	parentOf := fuzzysld.NewPredicate("parent_of")
	fatherOf := fuzzysld.NewPredicate("father_of")
	grandpaOf := fuzzysld.NewPredicate("grandpa_of")

	homer := fuzzysld.NewConstant("homer")
	bart := fuzzysld.NewConstant("bart")
	abe := fuzzysld.NewConstant("abe")
	clancy := fuzzysld.NewConstant("clancy")
	marge := fuzzysld.NewConstant("marge")

	x := fuzzysld.NewVariable("X")
	y := fuzzysld.NewVariable("Y")
	z := fuzzysld.NewVariable("Z")

	return []*fuzzysld.Rule{
		fuzzysld.NewRule(parentOf.Apply(homer, bart)),
		fuzzysld.NewRule(fatherOf.Apply(abe, homer)),
		fuzzysld.NewRule(fatherOf.Apply(clancy, marge)),
		fuzzysld.NewRule(parentOf.Apply(marge, bart)),
		fuzzysld.NewRule(
			grandpaOf.Apply(x, y),
			fatherOf.Apply(x, z),
			parentOf.Apply(z, y),
		),
	}
}
