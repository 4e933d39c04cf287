package model

import (
	"strings"
	"time"
)

type PriorityType string

const (
	SuperpositionPriority PriorityType = "SUPERPOSITION"
	CommissionPriority    PriorityType = "COMMISSION"
	ProfessorPriority     PriorityType = "PROFESSOR"
	FreeDayPriority       PriorityType = "FREEDAY"
	BusyTimePriority      PriorityType = "BUSYTIME"
	LocationPriority      PriorityType = "LOCATION"
	TravelPriority        PriorityType = "TRAVEL"
)

var PriorityTypes = []PriorityType{
	SuperpositionPriority,
	CommissionPriority,
	ProfessorPriority,
	FreeDayPriority,
	BusyTimePriority,
	LocationPriority,
	TravelPriority,
}

// ParsePriorityType normalizes a raw priority type, failing with UnknownPriorityKindError on anything outside PriorityTypes
func ParsePriorityType(value string) (PriorityType, error) {
	kind := PriorityType(strings.ToUpper(strings.TrimSpace(value)))
	for _, known := range PriorityTypes {
		if kind == known {
			return kind, nil
		}
	}
	return "", UnknownPriorityKindError{Type: value}
}

// PriorityValue is the kind-specific payload of a Priority. The set of implementations is closed
type PriorityValue interface {
	Type() PriorityType
}

// Superposition: no pair of timeblocks of distinct subjects may overlap more than MaxOverlap minutes
type Superposition struct {
	MaxOverlap int
}

// CommissionChoice: the related subject must be taken in the commission labeled Label
type CommissionChoice struct {
	Label string
}

// ProfessorChoice: the related subject must be taught by Name
type ProfessorChoice struct {
	Name string
}

// FreeDay: Day must have no classes, or, when Any is set, at least one day of the week must be free
type FreeDay struct {
	Day time.Weekday
	Any bool
}

// BusyTime: no class may overlap any of the blackout Blocks
type BusyTime struct {
	Blocks []Timeblock
}

// Location: all the classes of the same day must be held in the same building
type Location struct{}

// Travel: moving between buildings of two classes held the same day must take at most MaxMinutes
type Travel struct {
	MaxMinutes int
}

func (Superposition) Type() PriorityType    { return SuperpositionPriority }
func (CommissionChoice) Type() PriorityType { return CommissionPriority }
func (ProfessorChoice) Type() PriorityType  { return ProfessorPriority }
func (FreeDay) Type() PriorityType          { return FreeDayPriority }
func (BusyTime) Type() PriorityType         { return BusyTimePriority }
func (Location) Type() PriorityType         { return LocationPriority }
func (Travel) Type() PriorityType           { return TravelPriority }

// Priority is a user-authored rule. Exclusive priorities act as hard constraints while the rest only add to the score
type Priority struct {
	Value              PriorityValue
	Weight             float64
	RelatedSubjectCode string
	Exclusive          bool
}

func (priority Priority) Type() PriorityType {
	if priority.Value == nil {
		return ""
	}
	return priority.Value.Type()
}

func (priority Priority) HasRelatedSubject() bool {
	return priority.RelatedSubjectCode != ""
}
