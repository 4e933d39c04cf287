package model

import "slices"

type Commission struct {
	Label      string
	Professors []string
	Schedule   []Timeblock
}

type Subject struct {
	Code        string
	Name        string
	Commissions []Commission
}

type SubjectSelection struct {
	Code   string
	Weight float64
}

// CombinationSubject is a frozen snapshot of a (subject, commission) choice
type CombinationSubject struct {
	Name            string
	Code            string
	Professors      []string
	CommissionName  string
	CommissionTimes []Timeblock
}

func NewCombinationSubject(subject Subject, commission Commission) CombinationSubject {
	return CombinationSubject{
		Name:            subject.Name,
		Code:            subject.Code,
		Professors:      slices.Clone(commission.Professors),
		CommissionName:  commission.Label,
		CommissionTimes: slices.Clone(commission.Schedule),
	}
}

// Combination assigns one commission to each selected subject.
// Priorities holds the indices (into the caller's priority list) the combination satisfies; Weight is set by the scorer
type Combination struct {
	Subjects   []CombinationSubject
	Priorities []int
	Weight     float64
}

// Clone returns a deep copy, so that branches of the search never share backing arrays
func (combination Combination) Clone() Combination {
	subjects := make([]CombinationSubject, len(combination.Subjects))
	for i, subject := range combination.Subjects {
		subjects[i] = CombinationSubject{
			Name:            subject.Name,
			Code:            subject.Code,
			Professors:      slices.Clone(subject.Professors),
			CommissionName:  subject.CommissionName,
			CommissionTimes: slices.Clone(subject.CommissionTimes),
		}
	}

	return Combination{
		Subjects:   subjects,
		Priorities: slices.Clone(combination.Priorities),
		Weight:     combination.Weight,
	}
}

// Subject returns the chosen snapshot for the given subject code
func (combination Combination) Subject(code string) (CombinationSubject, bool) {
	for _, subject := range combination.Subjects {
		if subject.Code == code {
			return subject, true
		}
	}
	return CombinationSubject{}, false
}

// Timeblocks flattens the schedule of every chosen commission
func (combination Combination) Timeblocks() []Timeblock {
	blocks := make([]Timeblock, 0)
	for _, subject := range combination.Subjects {
		blocks = append(blocks, subject.CommissionTimes...)
	}
	return blocks
}
