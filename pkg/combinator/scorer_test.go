package combinator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/limaJavier/combinations/pkg/model"
)

func TestScore(t *testing.T) {
	priorities := []model.Priority{
		{Value: model.Location{}, Weight: 3},
		{Value: model.CommissionChoice{Label: "A1"}, Weight: 2, RelatedSubjectCode: "A"},
	}
	selections := []model.SubjectSelection{{Code: "A", Weight: 4}, {Code: "B", Weight: 1}}

	t.Run("Identity", func(t *testing.T) {
		combination := model.Combination{Priorities: []int{0, 1}}

		weight := Score(&combination, priorities, selections, Identity)

		// base = 2 * 2 * 2
		assert.Equal(t, 8.0*2+3+2*4, weight)
		assert.Equal(t, weight, combination.Weight)
	})

	t.Run("Quadratic", func(t *testing.T) {
		combination := model.Combination{Priorities: []int{1}}

		weight := Score(&combination, priorities, selections, Quadratic)

		// base = 2 * 4 * 4
		assert.Equal(t, 32.0+4*16, weight)
	})

	t.Run("Nil transform", func(t *testing.T) {
		combination := model.Combination{Priorities: []int{0}}

		assert.Equal(t, 8.0+3, Score(&combination, priorities, selections, nil))
	})

	t.Run("Unselected related subject", func(t *testing.T) {
		combination := model.Combination{Priorities: []int{1}}

		weight := Score(&combination, priorities, selections[1:], Identity)

		assert.Equal(t, 2.0*2*1, weight)
	})

	t.Run("No priorities", func(t *testing.T) {
		combination := model.Combination{}

		assert.Equal(t, 0.0, Score(&combination, nil, selections, Logarithmic))
	})
}

func TestScoreIsDeterministic(t *testing.T) {
	for range 100 {
		//** Arrange
		priorities := make([]model.Priority, 1+rand.Intn(6))
		satisfied := make([]int, 0)
		for i := range priorities {
			priorities[i] = model.Priority{Value: model.Location{}, Weight: rand.Float64() * 10}
			if rand.Intn(2) == 0 {
				satisfied = append(satisfied, i)
			}
		}
		selections := []model.SubjectSelection{{Code: "A", Weight: rand.Float64()}}

		//** Act
		first := model.Combination{Priorities: satisfied}
		second := model.Combination{Priorities: satisfied}
		weight1 := Score(&first, priorities, selections, Logarithmic)
		weight2 := Score(&second, priorities, selections, Logarithmic)

		//** Assert
		assert.Equal(t, weight1, weight2)
		assert.False(t, math.IsNaN(weight1))
	}
}

func TestMorePrioritiesRankFirst(t *testing.T) {
	// The base amount outweighs the difference between individual weights
	priorities := []model.Priority{
		{Value: model.Location{}, Weight: 1},
		{Value: model.Location{}, Weight: 1},
		{Value: model.Location{}, Weight: 5},
	}
	selections := []model.SubjectSelection{{Code: "A", Weight: 1}}

	two := model.Combination{Priorities: []int{0, 1}}
	one := model.Combination{Priorities: []int{2}}

	assert.Greater(t, Score(&two, priorities, selections, Identity), Score(&one, priorities, selections, Identity))
}

func TestParseTransform(t *testing.T) {
	transform, err := ParseTransform("")
	assert.Nil(t, err)
	assert.Equal(t, 3.0, transform(3))

	transform, err = ParseTransform("Quadratic")
	assert.Nil(t, err)
	assert.Equal(t, 9.0, transform(3))

	transform, err = ParseTransform("logarithmic")
	assert.Nil(t, err)
	assert.Equal(t, 0.0, transform(0))

	_, err = ParseTransform("cubic")
	assert.NotNil(t, err)
}
