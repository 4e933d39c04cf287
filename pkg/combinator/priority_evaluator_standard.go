package combinator

import (
	"slices"
	"time"

	"github.com/limaJavier/combinations/pkg/model"
	"github.com/samber/lo"
)

type priorityEvaluatorStandard struct {
	travel TravelEstimator
	week   []time.Weekday // Days considered by "any day" free-day priorities
}

func (evaluator *priorityEvaluatorStandard) WithinOverlap(combination model.Combination, maxOverlap int) bool {
	subjects := combination.Subjects
	for i := range len(subjects) - 1 {
		for j := i + 1; j < len(subjects); j++ {
			for _, block1 := range subjects[i].CommissionTimes {
				for _, block2 := range subjects[j].CommissionTimes {
					if model.Overlap(block1, block2) > maxOverlap {
						return false
					}
				}
			}
		}
	}
	return true
}

func (evaluator *priorityEvaluatorStandard) InCommission(combination model.Combination, code, label string) bool {
	subject, ok := combination.Subject(code)
	return ok && subject.CommissionName == label
}

func (evaluator *priorityEvaluatorStandard) TaughtBy(combination model.Combination, code, professor string) bool {
	subject, ok := combination.Subject(code)
	return ok && len(subject.Professors) > 0 && slices.Contains(subject.Professors, professor)
}

func (evaluator *priorityEvaluatorStandard) FreeDay(combination model.Combination, day time.Weekday, anyDay bool) bool {
	busyDays := make(map[time.Weekday]bool)
	for _, block := range combination.Timeblocks() {
		busyDays[block.Day] = true
	}

	if anyDay {
		return lo.SomeBy(evaluator.week, func(weekday time.Weekday) bool {
			return !busyDays[weekday]
		})
	}
	return !busyDays[day]
}

func (evaluator *priorityEvaluatorStandard) OutsideBusyTime(combination model.Combination, blackout []model.Timeblock) bool {
	return !lo.SomeBy(combination.Timeblocks(), func(block model.Timeblock) bool {
		return lo.SomeBy(blackout, func(busy model.Timeblock) bool {
			return model.Overlap(block, busy) > 0
		})
	})
}

func (evaluator *priorityEvaluatorStandard) SameBuilding(combination model.Combination) bool {
	buildings := make(map[time.Weekday]string)
	for _, block := range combination.Timeblocks() {
		building, ok := buildings[block.Day]
		if !ok {
			buildings[block.Day] = block.Building
		} else if building != block.Building {
			return false
		}
	}
	return true
}

func (evaluator *priorityEvaluatorStandard) WithinTravel(combination model.Combination, maxMinutes int) bool {
	subjects := combination.Subjects
	for i := range len(subjects) - 1 {
		for j := i + 1; j < len(subjects); j++ {
			for _, block1 := range subjects[i].CommissionTimes {
				for _, block2 := range subjects[j].CommissionTimes {
					if travelTime(evaluator.travel, block1, block2) > maxMinutes {
						return false
					}
				}
			}
		}
	}
	return true
}

func (evaluator *priorityEvaluatorStandard) Satisfies(combination model.Combination, priority model.Priority) bool {
	switch value := priority.Value.(type) {
	case model.Superposition:
		return evaluator.WithinOverlap(combination, value.MaxOverlap)
	case model.CommissionChoice:
		return evaluator.InCommission(combination, priority.RelatedSubjectCode, value.Label)
	case model.ProfessorChoice:
		return evaluator.TaughtBy(combination, priority.RelatedSubjectCode, value.Name)
	case model.FreeDay:
		return evaluator.FreeDay(combination, value.Day, value.Any)
	case model.BusyTime:
		return evaluator.OutsideBusyTime(combination, value.Blocks)
	case model.Location:
		return evaluator.SameBuilding(combination)
	case model.Travel:
		return evaluator.WithinTravel(combination, value.MaxMinutes)
	}
	return false
}

func (evaluator *priorityEvaluatorStandard) Verify(combination *model.Combination, priorities []model.Priority) bool {
	for i, priority := range priorities {
		// A priority without value neither accepts nor rejects
		if priority.Value == nil {
			continue
		}

		if evaluator.Satisfies(*combination, priority) {
			if !slices.Contains(combination.Priorities, i) {
				combination.Priorities = append(combination.Priorities, i)
			}
		} else if priority.Exclusive {
			return false
		}
	}
	return true
}

func (evaluator *priorityEvaluatorStandard) Violated(partial model.Combination, priority model.Priority) bool {
	if !priority.Exclusive || priority.Value == nil {
		return false
	}

	// Subject-bound priorities cannot be decided until their subject has been placed
	switch priority.Type() {
	case model.CommissionPriority, model.ProfessorPriority:
		if _, ok := partial.Subject(priority.RelatedSubjectCode); !ok {
			return false
		}
	}

	// Every other kind only gets harder to satisfy as classes are added
	return !evaluator.Satisfies(partial, priority)
}
