package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/limaJavier/combinations/pkg/model"
)

const (
	defaultEventDuration = time.Hour
	minutesPerDay        = 24 * 60
)

// BusyTimeFromICS turns the events of an iCalendar feed into weekly blackout timeblocks, so a student's
// existing commitments can be fed to a BUSYTIME priority. Events are read in loc, and the ones crossing midnight are split per day.
// Events without a parsable start are skipped; events without an end last one hour
func BusyTimeFromICS(reader io.Reader, loc *time.Location) ([]model.Timeblock, error) {
	if loc == nil {
		loc = time.Local
	}

	cal, err := ics.ParseCalendar(reader)
	if err != nil {
		return nil, fmt.Errorf("cannot parse calendar: %w", err)
	}

	blocks := make([]model.Timeblock, 0)
	seen := make(map[model.Timeblock]bool)
	for _, event := range cal.Events() {
		start, err := event.GetStartAt()
		if err != nil {
			continue
		}
		end, err := event.GetEndAt()
		if err != nil || !end.After(start) {
			end = start.Add(defaultEventDuration)
		}

		building := ""
		if location := event.GetProperty(ics.ComponentPropertyLocation); location != nil {
			building = strings.TrimSpace(location.Value)
		}

		// Recurring events show up once per occurrence, keep a single weekly block for each
		for _, block := range splitByDay(start.In(loc), end.In(loc), building) {
			if !seen[block] {
				seen[block] = true
				blocks = append(blocks, block)
			}
		}
	}

	return blocks, nil
}

func splitByDay(start, end time.Time, building string) []model.Timeblock {
	blocks := make([]model.Timeblock, 0, 1)

	// A week is the longest span that still adds information
	for cursor := start; cursor.Before(end) && len(blocks) < 7; {
		midnight := time.Date(cursor.Year(), cursor.Month(), cursor.Day()+1, 0, 0, 0, 0, cursor.Location())

		from := clockOf(cursor)
		to := model.Clock(minutesPerDay)
		if end.Before(midnight) {
			to = clockOf(end)
		}

		if to > from {
			blocks = append(blocks, model.Timeblock{Day: cursor.Weekday(), Start: from, End: to, Building: building})
		}
		cursor = midnight
	}

	return blocks
}

func clockOf(moment time.Time) model.Clock {
	return model.Clock(moment.Hour()*60 + moment.Minute())
}
