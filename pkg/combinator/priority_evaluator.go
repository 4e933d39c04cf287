package combinator

import (
	"time"

	"github.com/limaJavier/combinations/pkg/model"
)

type priorityEvaluator interface {
	// Checks whether no pair of timeblocks belonging to distinct subjects overlaps more than maxOverlap minutes
	WithinOverlap(combination model.Combination, maxOverlap int) bool

	// Checks whether the subject is taken in the commission with the given label
	InCommission(combination model.Combination, code, label string) bool

	// Checks whether the subject is taught by the given professor
	TaughtBy(combination model.Combination, code, professor string) bool

	// Checks whether the day has no classes, or, when anyDay is set, whether some day of the week is free
	FreeDay(combination model.Combination, day time.Weekday, anyDay bool) bool

	// Checks whether no class overlaps any of the blackout blocks
	OutsideBusyTime(combination model.Combination, blackout []model.Timeblock) bool

	// Checks whether the classes of each day are all held in the same building
	SameBuilding(combination model.Combination) bool

	// Checks whether moving between the buildings of any two classes of distinct subjects takes at most maxMinutes
	WithinTravel(combination model.Combination, maxMinutes int) bool

	// Checks whether the priority holds for the combination, regardless of its exclusiveness
	Satisfies(combination model.Combination, priority model.Priority) bool

	// Evaluates the priorities in order, appending the index of every satisfied one to the combination.
	// Returns false as soon as an exclusive priority is not satisfied
	Verify(combination *model.Combination, priorities []model.Priority) bool

	// Checks whether a partial combination already breaks an exclusive priority, in a way no further subject can repair
	Violated(partial model.Combination, priority model.Priority) bool
}

func newPriorityEvaluator(travel TravelEstimator, week []time.Weekday) priorityEvaluator {
	return &priorityEvaluatorStandard{
		travel: travel,
		week:   week,
	}
}
