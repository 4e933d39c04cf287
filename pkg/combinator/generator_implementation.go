package combinator

import "github.com/limaJavier/combinations/pkg/model"

type combinationGeneratorImplementation struct {
	pruner func(partial *model.Combination) bool
}

type branch struct {
	combination model.Combination
	next        int // Index of the next subject to place
}

func (generator *combinationGeneratorImplementation) Enumerate(subjects []model.Subject, verifier func(combination *model.Combination) bool) ([]model.Combination, uint64) {
	combinations := make([]model.Combination, 0)
	leaves := uint64(0)

	// Depth-first traversal over an explicit stack, so the amount of subjects does not grow the call stack
	stack := []branch{{combination: model.Combination{Subjects: []model.CombinationSubject{}}}}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current.next >= len(subjects) {
			leaves++
			if verifier(&current.combination) {
				combinations = append(combinations, current.combination)
			}
			continue
		}

		subject := subjects[current.next]

		// Commissions are pushed backwards so they are popped (and therefore explored) in catalog order
		for i := len(subject.Commissions) - 1; i >= 0; i-- {
			// Each branch works on its own copy: siblings must never observe each other's subjects
			child := current.combination.Clone()
			child.Subjects = append(child.Subjects, model.NewCombinationSubject(subject, subject.Commissions[i]))

			if generator.pruner != nil && !generator.pruner(&child) {
				continue
			}
			stack = append(stack, branch{combination: child, next: current.next + 1})
		}
	}

	return combinations, leaves
}
