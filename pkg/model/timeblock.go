package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a time of day expressed in minutes since midnight
type Clock int

func ParseClock(value string) (Clock, error) {
	hours, minutes, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock \"%v\": expected HH:MM", value)
	}

	h, err := strconv.Atoi(hours)
	if err != nil || h < 0 || h > 24 {
		return 0, fmt.Errorf("invalid clock \"%v\": bad hour", value)
	}
	m, err := strconv.Atoi(minutes)
	if err != nil || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("invalid clock \"%v\": bad minute", value)
	}

	return Clock(h*60 + m), nil
}

func (clock Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(clock)/60, int(clock)%60)
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday accepts english day names (case insensitive) and their three letter abbreviations
func ParseWeekday(value string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	if day, ok := weekdays[name]; ok {
		return day, nil
	}
	for fullName, day := range weekdays {
		if len(name) == 3 && strings.HasPrefix(fullName, name) {
			return day, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday \"%v\"", value)
}

// Timeblock is one recurring meeting slot of a commission
type Timeblock struct {
	Day      time.Weekday
	Start    Clock
	End      Clock
	Building string
}

func (block Timeblock) String() string {
	return fmt.Sprintf("%v %v-%v @ %v", block.Day, block.Start, block.End, block.Building)
}

// Overlap returns the amount of minutes two timeblocks share. Blocks on different days never overlap
func Overlap(a, b Timeblock) int {
	if a.Day != b.Day {
		return 0
	}

	start := max(a.Start, b.Start)
	end := min(a.End, b.End)
	if end <= start {
		return 0
	}
	return int(end - start)
}
