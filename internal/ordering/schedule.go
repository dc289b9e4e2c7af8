// internal/ordering/schedule.go
package ordering

import (
	"fmt"
	"strings"
	"time"

	"github.com/chesters/restock-backend/internal/domain"
)

// Schedule is the fixed two-delivery weekly truck cycle. The first day orders
// against the weekday par profile, the second against the weekend profile.
type Schedule struct {
	First  time.Weekday
	Second time.Weekday
}

// DefaultSchedule returns the restaurant's standing Monday/Thursday cycle.
func DefaultSchedule() Schedule {
	return Schedule{First: time.Monday, Second: time.Thursday}
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseSchedule builds a schedule from two weekday names (case-insensitive).
// The two days must be distinct.
func ParseSchedule(first, second string) (Schedule, error) {
	f, ok := weekdayNames[strings.ToLower(strings.TrimSpace(first))]
	if !ok {
		return Schedule{}, fmt.Errorf("invalid first delivery day %q", first)
	}

	s, ok := weekdayNames[strings.ToLower(strings.TrimSpace(second))]
	if !ok {
		return Schedule{}, fmt.Errorf("invalid second delivery day %q", second)
	}

	if f == s {
		return Schedule{}, fmt.Errorf("delivery days must be distinct, got %s twice", f)
	}

	return Schedule{First: f, Second: s}, nil
}

// Resolve maps today onto the next delivery window. It is a pure function of
// the weekday of today: on a delivery day it resolves to that day with zero
// days remaining; otherwise it resolves to the nearer upcoming delivery day,
// wrapping past the end of the week so daysUntil stays in [0,6].
func (s Schedule) Resolve(today time.Time) domain.DeliveryWindow {
	wd := today.Weekday()

	switch wd {
	case s.First:
		return s.window(s.First, true, 0, domain.ProfileWeekday)
	case s.Second:
		return s.window(s.Second, true, 0, domain.ProfileWeekend)
	}

	toFirst := daysBetween(wd, s.First)
	toSecond := daysBetween(wd, s.Second)
	if toSecond < toFirst {
		return s.window(s.Second, false, toSecond, domain.ProfileWeekend)
	}

	return s.window(s.First, false, toFirst, domain.ProfileWeekday)
}

func (s Schedule) window(day time.Weekday, isToday bool, daysUntil int, profile domain.Profile) domain.DeliveryWindow {
	return domain.DeliveryWindow{
		Day:        day,
		DayLabel:   day.String(),
		IsToday:    isToday,
		DaysUntil:  daysUntil,
		ParProfile: profile,
	}
}

// daysBetween is the forward distance in calendar days from one weekday to
// another, treating the week as circular.
func daysBetween(from, to time.Weekday) int {
	return (int(to) - int(from) + 7) % 7
}
