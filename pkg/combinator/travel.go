package combinator

import "github.com/limaJavier/combinations/pkg/model"

const DefaultTravelMinutes = 30

// TravelEstimator returns the minutes needed to move from one class to the other
type TravelEstimator func(from, to model.Timeblock) int

func ConstantTravel(minutes int) TravelEstimator {
	return func(_, _ model.Timeblock) int {
		return minutes
	}
}

func TableTravel(table model.TravelTable) TravelEstimator {
	return func(from, to model.Timeblock) int {
		return table.Minutes(from.Building, to.Building)
	}
}

// No transition is needed between classes held on different days or in the same building
func travelTime(estimator TravelEstimator, from, to model.Timeblock) int {
	if from.Day != to.Day || from.Building == to.Building {
		return 0
	}
	return estimator(from, to)
}
