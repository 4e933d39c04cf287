package combinator

import (
	"fmt"
	"math"
	"strings"

	"github.com/limaJavier/combinations/pkg/model"
	"github.com/samber/lo"
)

// Transform rescales every raw magnitude before it takes part in the weight
type Transform func(value float64) float64

func Identity(value float64) float64 { return value }

func Logarithmic(value float64) float64 { return math.Log1p(value) }

func Quadratic(value float64) float64 { return value * value }

var Transforms = map[string]Transform{
	"identity":    Identity,
	"logarithmic": Logarithmic,
	"quadratic":   Quadratic,
}

func ParseTransform(name string) (Transform, error) {
	if name == "" {
		return Identity, nil
	}
	transform, ok := Transforms[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown transform \"%v\": expected one of %v", name, lo.Keys(Transforms))
	}
	return transform, nil
}

// Score computes the combination's weight and stores it in combination.Weight.
// Every satisfied priority is worth a base amount, which makes combinations satisfying more priorities rank first,
// plus its own weight (scaled by the weight of its related subject, if any) to break ties among them
func Score(combination *model.Combination, priorities []model.Priority, selections []model.SubjectSelection, transform Transform) float64 {
	if transform == nil {
		transform = Identity
	}

	subjectWeights := make(map[string]float64, len(selections))
	for _, selection := range selections {
		if _, ok := subjectWeights[selection.Code]; !ok {
			subjectWeights[selection.Code] = selection.Weight
		}
	}

	totalPriorities := float64(len(priorities))
	base := totalPriorities * transform(totalPriorities) * transform(float64(len(selections)))

	weight := base * float64(len(combination.Priorities))
	for _, index := range combination.Priorities {
		priority := priorities[index]
		if priority.HasRelatedSubject() {
			weight += transform(priority.Weight) * transform(subjectWeights[priority.RelatedSubjectCode])
		} else {
			weight += transform(priority.Weight)
		}
	}

	combination.Weight = weight
	return weight
}
