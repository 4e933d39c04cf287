package combinator

import "github.com/limaJavier/combinations/pkg/model"

type combinationGenerator interface {
	// Builds every assignment of one commission per subject, in the given subject order, and keeps the ones accepted by the verifier.
	// The verifier is applied exactly once per complete combination and may append to its Priorities.
	// Returns the accepted combinations along with the number of complete combinations (leaves) that were reached
	//
	// Example:
	//
	//	generator := newCombinationGenerator(nil)
	//
	//	combinations, leaves := generator.Enumerate(subjects, func(combination *model.Combination) bool {
	//				return len(combination.Subjects) > 0
	//			})
	Enumerate(subjects []model.Subject, verifier func(combination *model.Combination) bool) ([]model.Combination, uint64)
}

// A nil pruner visits the full cross product of commissions. Otherwise every partial combination for which the pruner returns false is discarded along with its subtree
func newCombinationGenerator(pruner func(partial *model.Combination) bool) combinationGenerator {
	return &combinationGeneratorImplementation{pruner: pruner}
}
