package model

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

var validate = validator.New()

type RawTimeblock struct {
	Day      string `validate:"required"`
	Start    string `validate:"required"`
	End      string `validate:"required"`
	Building string
}

type RawCommission struct {
	Label      string `validate:"required"`
	Professors []string
	Schedule   []RawTimeblock `validate:"dive"`
}

type RawSubject struct {
	Code        string `validate:"required"`
	Name        string
	Commissions []RawCommission `validate:"dive"`
}

type RawSelection struct {
	Code   string  `validate:"required"`
	Weight float64 `validate:"gte=0"`
}

type RawPriority struct {
	Type               string `validate:"required"`
	Value              any
	Weight             float64 `validate:"gte=0"`
	RelatedSubjectCode string  `mapstructure:"relatedSubjectCode"`
	Exclusive          bool
}

type RawDistance struct {
	From    string `validate:"required"`
	To      string `validate:"required"`
	Minutes int    `validate:"gte=0"`
}

type RawTravel struct {
	Default   int           `validate:"gte=0"`
	Distances []RawDistance `validate:"dive"`
}

type RawInput struct {
	Subjects   []RawSubject   `validate:"dive"`
	Selections []RawSelection `validate:"dive"`
	Priorities []RawPriority  `validate:"dive"`
	Travel     *RawTravel     `validate:"omitempty"`
}

// TravelTable holds the minutes needed to move between two buildings. Pairs are symmetric
type TravelTable struct {
	Default   int
	Distances map[[2]string]int
}

func (table TravelTable) Minutes(from, to string) int {
	if minutes, ok := table.Distances[[2]string{from, to}]; ok {
		return minutes
	} else if minutes, ok := table.Distances[[2]string{to, from}]; ok {
		return minutes
	}
	return table.Default
}

type Input struct {
	Subjects   []Subject
	Selections []SubjectSelection
	Priorities []Priority
	Travel     *TravelTable
}

func InputFromJson(file string) (Input, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Input{}, fmt.Errorf("cannot read input file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Input{}, err
	}
	return DecodeInput(inputJson)
}

func DecodeInput(inputJson map[string]any) (Input, error) {
	var rawInput RawInput
	if err := mapstructure.Decode(inputJson, &rawInput); err != nil {
		return Input{}, fmt.Errorf("cannot decode input: %w", err)
	}
	return ProcessRawInput(rawInput)
}

func ProcessRawInput(rawInput RawInput) (Input, error) {
	if err := validate.Struct(rawInput); err != nil {
		return Input{}, fmt.Errorf("invalid input: %w", err)
	}

	input := Input{
		Subjects:   make([]Subject, 0, len(rawInput.Subjects)),
		Selections: make([]SubjectSelection, 0, len(rawInput.Selections)),
		Priorities: make([]Priority, 0, len(rawInput.Priorities)),
	}

	//** Manage subjects
	seenCodes := make(map[string]bool)
	for _, rawSubject := range rawInput.Subjects {
		// Subject codes are the catalog's unique key
		if seenCodes[rawSubject.Code] {
			return Input{}, fmt.Errorf("duplicate subject code \"%v\"", rawSubject.Code)
		}
		seenCodes[rawSubject.Code] = true

		subject := Subject{
			Code:        rawSubject.Code,
			Name:        rawSubject.Name,
			Commissions: make([]Commission, 0, len(rawSubject.Commissions)),
		}
		for _, rawCommission := range rawSubject.Commissions {
			schedule, err := processTimeblocks(rawCommission.Schedule)
			if err != nil {
				return Input{}, fmt.Errorf("subject \"%v\", commission \"%v\": %w", rawSubject.Code, rawCommission.Label, err)
			}
			subject.Commissions = append(subject.Commissions, Commission{
				Label:      rawCommission.Label,
				Professors: rawCommission.Professors,
				Schedule:   schedule,
			})
		}
		input.Subjects = append(input.Subjects, subject)
	}

	//** Manage selections
	input.Selections = lo.Map(rawInput.Selections, func(rawSelection RawSelection, _ int) SubjectSelection {
		return SubjectSelection{Code: rawSelection.Code, Weight: rawSelection.Weight}
	})

	//** Manage priorities
	for i, rawPriority := range rawInput.Priorities {
		priority, err := NewPriority(i, rawPriority)
		if err != nil {
			return Input{}, err
		}
		input.Priorities = append(input.Priorities, priority)
	}

	//** Manage travel table
	if rawInput.Travel != nil {
		table := TravelTable{
			Default:   rawInput.Travel.Default,
			Distances: make(map[[2]string]int),
		}
		for _, distance := range rawInput.Travel.Distances {
			table.Distances[[2]string{distance.From, distance.To}] = distance.Minutes
		}
		input.Travel = &table
	}

	return input, nil
}

// NewPriority builds a typed priority from its raw form. index is only used to give context to errors
func NewPriority(index int, rawPriority RawPriority) (Priority, error) {
	kind, err := ParsePriorityType(rawPriority.Type)
	if err != nil {
		return Priority{}, err
	}

	value, err := decodePriorityValue(kind, rawPriority.Value)
	if err != nil {
		return Priority{}, PriorityValueError{Index: index, Type: kind, Err: err}
	}

	if (kind == CommissionPriority || kind == ProfessorPriority) && rawPriority.RelatedSubjectCode == "" {
		return Priority{}, PriorityValueError{Index: index, Type: kind, Err: fmt.Errorf("a related subject code is required")}
	}

	return Priority{
		Value:              value,
		Weight:             rawPriority.Weight,
		RelatedSubjectCode: rawPriority.RelatedSubjectCode,
		Exclusive:          rawPriority.Exclusive,
	}, nil
}

func decodePriorityValue(kind PriorityType, raw any) (PriorityValue, error) {
	switch kind {
	case SuperpositionPriority:
		var maxOverlap int
		if err := mapstructure.WeakDecode(raw, &maxOverlap); err != nil {
			return nil, err
		} else if maxOverlap < 0 {
			return nil, fmt.Errorf("overlap threshold must not be negative: %v", maxOverlap)
		}
		return Superposition{MaxOverlap: maxOverlap}, nil

	case CommissionPriority, ProfessorPriority:
		name, ok := raw.(string)
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("a non-empty string is expected: %v", raw)
		}
		if kind == CommissionPriority {
			return CommissionChoice{Label: name}, nil
		}
		return ProfessorChoice{Name: name}, nil

	case FreeDayPriority:
		name, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("a weekday name or \"any\" is expected: %v", raw)
		}
		if strings.EqualFold(strings.TrimSpace(name), "any") {
			return FreeDay{Any: true}, nil
		}
		day, err := ParseWeekday(name)
		if err != nil {
			return nil, err
		}
		return FreeDay{Day: day}, nil

	case BusyTimePriority:
		var rawBlocks []RawTimeblock
		if err := mapstructure.Decode(raw, &rawBlocks); err != nil {
			return nil, err
		}
		for _, rawBlock := range rawBlocks {
			if err := validate.Struct(rawBlock); err != nil {
				return nil, err
			}
		}
		blocks, err := processTimeblocks(rawBlocks)
		if err != nil {
			return nil, err
		}
		return BusyTime{Blocks: blocks}, nil

	case LocationPriority:
		return Location{}, nil

	case TravelPriority:
		var maxMinutes int
		if err := mapstructure.WeakDecode(raw, &maxMinutes); err != nil {
			return nil, err
		} else if maxMinutes < 0 {
			return nil, fmt.Errorf("travel threshold must not be negative: %v", maxMinutes)
		}
		return Travel{MaxMinutes: maxMinutes}, nil
	}

	return nil, UnknownPriorityKindError{Type: string(kind)}
}

func processTimeblocks(rawBlocks []RawTimeblock) ([]Timeblock, error) {
	blocks := make([]Timeblock, 0, len(rawBlocks))
	for _, rawBlock := range rawBlocks {
		day, err := ParseWeekday(rawBlock.Day)
		if err != nil {
			return nil, err
		}
		start, err := ParseClock(rawBlock.Start)
		if err != nil {
			return nil, err
		}
		end, err := ParseClock(rawBlock.End)
		if err != nil {
			return nil, err
		}
		if end <= start {
			return nil, fmt.Errorf("timeblock must end after it starts: %v-%v", rawBlock.Start, rawBlock.End)
		}

		blocks = append(blocks, Timeblock{Day: day, Start: start, End: end, Building: rawBlock.Building})
	}
	return blocks, nil
}
