package combinator

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/onsi/gomega"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/limaJavier/combinations/pkg/model"
)

func selectAll(subjects ...model.Subject) []model.SubjectSelection {
	return lo.Map(subjects, func(subject model.Subject, _ int) model.SubjectSelection {
		return model.SubjectSelection{Code: subject.Code, Weight: 1}
	})
}

func TestScheduleWithoutPriorities(t *testing.T) {
	//** Arrange
	a := subject("A", commission("A1", block(time.Monday, "08:00", "10:00", "North")), commission("A2", block(time.Tuesday, "08:00", "10:00", "North")))
	b := subject("B", commission("B1", block(time.Monday, "08:00", "10:00", "North")))
	scheduler := NewScheduler()

	for _, mode := range []SortMode{ComparatorSort, QuickSort} {
		//** Act
		combinations, err := scheduler.Schedule([]model.Subject{a, b}, selectAll(a, b), nil, mode)

		//** Assert
		assert.Nil(t, err)
		assert.Len(t, combinations, 2)
		for _, combination := range combinations {
			assert.Equal(t, 0.0, combination.Weight)
			assert.Empty(t, combination.Priorities)
			assert.Len(t, combination.Subjects, 2)
		}
	}
}

func TestScheduleExclusiveSuperposition(t *testing.T) {
	//** Arrange
	a := subject("A", commission("A1", block(time.Monday, "08:00", "10:00", "North")))
	b := subject("B", commission("B1", block(time.Monday, "08:00", "10:00", "North")))
	priorities := []model.Priority{{Value: model.Superposition{MaxOverlap: 0}, Weight: 1, Exclusive: true}}

	for _, pruning := range []bool{false, true} {
		//** Act
		combinations, err := NewScheduler(WithPruning(pruning)).Schedule([]model.Subject{a, b}, selectAll(a, b), priorities, ComparatorSort)

		//** Assert
		assert.Nil(t, err)
		assert.Empty(t, combinations)
	}
}

func TestScheduleSoftFreeDay(t *testing.T) {
	//** Arrange
	a := subject("A", commission("A1", block(time.Monday, "08:00", "10:00", "North")))
	b := subject("B",
		commission("THU", block(time.Thursday, "08:00", "10:00", "North")),
		commission("TUE", block(time.Tuesday, "08:00", "10:00", "North")),
	)
	priorities := []model.Priority{{Value: model.FreeDay{Day: time.Thursday}, Weight: 2}}

	//** Act
	combinations, err := NewScheduler().Schedule([]model.Subject{a, b}, selectAll(a, b), priorities, QuickSort)

	//** Assert
	assert.Nil(t, err)
	assert.Len(t, combinations, 2)

	best, worst := combinations[0], combinations[1]
	assert.Equal(t, "TUE", best.Subjects[1].CommissionName)
	assert.Equal(t, []int{0}, best.Priorities)
	// base = 1 * 1 * 2
	assert.Equal(t, 2.0+2, best.Weight)

	assert.Equal(t, "THU", worst.Subjects[1].CommissionName)
	assert.Empty(t, worst.Priorities)
	assert.Less(t, worst.Weight, best.Weight)
}

func TestScheduleRanking(t *testing.T) {
	//** Arrange
	input, err := model.InputFromJson("../../testdata/input.json")
	assert.Nil(t, err)
	scheduler := NewScheduler(WithTravelEstimator(TableTravel(*input.Travel)))

	//** Act
	combinations, err := scheduler.Schedule(input.Subjects, input.Selections, input.Priorities, ComparatorSort)

	//** Assert
	assert.Nil(t, err)
	// MAT1:A and PHY1:A share Monday 09:00-10:00
	assert.Len(t, combinations, 3)
	if len(combinations) != 3 {
		return
	}
	for i := 1; i < len(combinations); i++ {
		assert.GreaterOrEqual(t, combinations[i-1].Weight, combinations[i].Weight)
	}
	for _, combination := range combinations {
		assert.Contains(t, combination.Priorities, 0)
	}

	// base = 4 * 4 * 3, every combination satisfies three priorities
	assert.Equal(t, []float64{144 + 10, 144 + 9, 144 + 8}, lo.Map(combinations, func(combination model.Combination, _ int) float64 {
		return combination.Weight
	}))

	// South to Central falls back to the default distance, which breaks the travel priority
	best := combinations[0]
	assert.Equal(t, "B", best.Subjects[0].CommissionName)
	assert.Equal(t, "B", best.Subjects[1].CommissionName)
	assert.Equal(t, []int{0, 1, 2}, best.Priorities)
}

func TestScheduleMissingSubjects(t *testing.T) {
	a := subject("A", commission("A1"))
	selections := []model.SubjectSelection{{Code: "A", Weight: 1}, {Code: "X", Weight: 1}, {Code: "Y", Weight: 1}}

	t.Run("Strict", func(t *testing.T) {
		_, err := NewScheduler().Schedule([]model.Subject{a}, selections, nil, ComparatorSort)

		var notFound model.SubjectNotFoundError
		assert.True(t, errors.As(err, &notFound))
		assert.ErrorContains(t, err, "\"X\"")
		assert.ErrorContains(t, err, "\"Y\"")
	})

	t.Run("Lenient", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		scheduler := NewScheduler(WithLenientResolution(true), WithLogger(zap.New(core)))

		combinations, err := scheduler.Schedule([]model.Subject{a}, selections, nil, ComparatorSort)

		assert.Nil(t, err)
		assert.Len(t, combinations, 1)
		assert.Len(t, combinations[0].Subjects, 1)
		assert.Equal(t, 2, logs.FilterMessage("dropping selection missing from the catalog").Len())
	})
}

func TestScheduleRepeatedSelection(t *testing.T) {
	a := subject("A", commission("A1"), commission("A2"))
	selections := []model.SubjectSelection{{Code: "A", Weight: 1}, {Code: "A", Weight: 5}}

	combinations, err := NewScheduler().Schedule([]model.Subject{a}, selections, nil, ComparatorSort)

	assert.Nil(t, err)
	assert.Len(t, combinations, 2)
	for _, combination := range combinations {
		assert.Len(t, combination.Subjects, 1)
	}
}

func TestScheduleUnknownSortMode(t *testing.T) {
	_, err := NewScheduler().Schedule(nil, nil, nil, SortMode("bubble"))

	assert.IsType(t, UnknownSortModeError{}, err)
}

func TestScheduleNormalizesSortMode(t *testing.T) {
	a := subject("A", commission("A1"), commission("A2"))

	for _, mode := range []SortMode{"QuickSort", " comparator ", "QUICKSORT", ""} {
		combinations, err := NewScheduler().Schedule([]model.Subject{a}, selectAll(a), nil, mode)

		assert.Nil(t, err, string(mode))
		assert.Len(t, combinations, 2, string(mode))
	}
}

func TestSchedulePruningEquivalence(t *testing.T) {
	g := gomega.NewWithT(t)

	for range 30 {
		//** Arrange
		subjects := randomSubjects(1+rand.Intn(5), 4)
		selections := selectAll(subjects...)
		priorities := []model.Priority{
			{Value: model.Superposition{MaxOverlap: 0}, Weight: 3, Exclusive: rand.Intn(2) == 0},
			{Value: model.FreeDay{Day: time.Weekday(1 + rand.Intn(5))}, Weight: 2, Exclusive: rand.Intn(2) == 0},
			{Value: model.CommissionChoice{Label: "C0"}, Weight: 1, RelatedSubjectCode: subjects[len(subjects)-1].Code, Exclusive: rand.Intn(2) == 0},
		}

		//** Act
		full, errFull := NewScheduler().Schedule(subjects, selections, priorities, ComparatorSort)
		pruned, errPruned := NewScheduler(WithPruning(true)).Schedule(subjects, selections, priorities, ComparatorSort)

		//** Assert
		g.Expect(errFull).NotTo(gomega.HaveOccurred())
		g.Expect(errPruned).NotTo(gomega.HaveOccurred())
		g.Expect(pruned).To(gomega.ConsistOf(lo.ToAnySlice(full)...))

		// Every returned combination honors every exclusive priority
		evaluator := newPriorityEvaluator(ConstantTravel(DefaultTravelMinutes), DefaultWeek)
		for _, combination := range full {
			for _, priority := range priorities {
				if priority.Exclusive {
					g.Expect(evaluator.Satisfies(combination, priority)).To(gomega.BeTrue())
				}
			}
		}
	}
}
