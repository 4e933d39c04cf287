package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/limaJavier/combinations/pkg/model"
)

// Report is the output envelope of a scheduling run
type Report struct {
	ID           string              `json:"id"`
	GeneratedAt  time.Time           `json:"generatedAt"`
	Combinations []RankedCombination `json:"combinations"`
}

type RankedCombination struct {
	Rank       int             `json:"rank"`
	Weight     float64         `json:"weight"`
	Priorities []int           `json:"priorities"`
	Subjects   []RankedSubject `json:"subjects"`
}

type RankedSubject struct {
	Code       string        `json:"code"`
	Name       string        `json:"name"`
	Commission string        `json:"commission"`
	Professors []string      `json:"professors,omitempty"`
	Schedule   []ReportBlock `json:"schedule"`
}

type ReportBlock struct {
	Day      string `json:"day"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Building string `json:"building,omitempty"`
}

// NewReport ranks the combinations in the order they are given (best first)
func NewReport(combinations []model.Combination) Report {
	return Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Combinations: lo.Map(combinations, func(combination model.Combination, i int) RankedCombination {
			return RankedCombination{
				Rank:       i + 1,
				Weight:     combination.Weight,
				Priorities: lo.Ternary(combination.Priorities == nil, []int{}, combination.Priorities),
				Subjects: lo.Map(combination.Subjects, func(subject model.CombinationSubject, _ int) RankedSubject {
					return RankedSubject{
						Code:       subject.Code,
						Name:       subject.Name,
						Commission: subject.CommissionName,
						Professors: subject.Professors,
						Schedule:   lo.Map(subject.CommissionTimes, toReportBlock),
					}
				}),
			}
		}),
	}
}

func toReportBlock(block model.Timeblock, _ int) ReportBlock {
	return ReportBlock{
		Day:      block.Day.String(),
		Start:    block.Start.String(),
		End:      block.End.String(),
		Building: block.Building,
	}
}

func WriteJSON(writer io.Writer, report Report) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
