package ordering

import (
	"testing"
	"time"

	"github.com/chesters/restock-backend/internal/domain"
)

// 2025-01-06 is a Monday; the surrounding week covers every weekday once.
var mondayJan6 = time.Date(2025, time.January, 6, 10, 30, 0, 0, time.UTC)

func TestSchedule_Resolve_AllWeekdays(t *testing.T) {
	schedule := DefaultSchedule()

	cases := []struct {
		name      string
		today     time.Time
		day       time.Weekday
		isToday   bool
		daysUntil int
		profile   domain.Profile
	}{
		{"sunday resolves to monday", mondayJan6.AddDate(0, 0, -1), time.Monday, false, 1, domain.ProfileWeekday},
		{"monday is delivery day", mondayJan6, time.Monday, true, 0, domain.ProfileWeekday},
		{"tuesday resolves to thursday", mondayJan6.AddDate(0, 0, 1), time.Thursday, false, 2, domain.ProfileWeekend},
		{"wednesday resolves to thursday", mondayJan6.AddDate(0, 0, 2), time.Thursday, false, 1, domain.ProfileWeekend},
		{"thursday is delivery day", mondayJan6.AddDate(0, 0, 3), time.Thursday, true, 0, domain.ProfileWeekend},
		{"friday wraps to monday", mondayJan6.AddDate(0, 0, 4), time.Monday, false, 3, domain.ProfileWeekday},
		{"saturday wraps to monday", mondayJan6.AddDate(0, 0, 5), time.Monday, false, 2, domain.ProfileWeekday},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			window := schedule.Resolve(tc.today)

			if window.Day != tc.day {
				t.Errorf("day = %s, want %s", window.Day, tc.day)
			}
			if window.DayLabel != tc.day.String() {
				t.Errorf("day label = %q, want %q", window.DayLabel, tc.day.String())
			}
			if window.IsToday != tc.isToday {
				t.Errorf("isToday = %v, want %v", window.IsToday, tc.isToday)
			}
			if window.DaysUntil != tc.daysUntil {
				t.Errorf("daysUntil = %d, want %d", window.DaysUntil, tc.daysUntil)
			}
			if window.ParProfile != tc.profile {
				t.Errorf("profile = %s, want %s", window.ParProfile, tc.profile)
			}
		})
	}
}

// Every calendar day must map to exactly one of the two delivery days with a
// non-negative distance that actually lands on the resolved weekday.
func TestSchedule_Resolve_TotalAndCircular(t *testing.T) {
	schedule := DefaultSchedule()

	for offset := 0; offset < 14; offset++ {
		today := mondayJan6.AddDate(0, 0, offset)
		window := schedule.Resolve(today)

		if window.Day != schedule.First && window.Day != schedule.Second {
			t.Fatalf("%s resolved to %s, not a delivery day", today.Weekday(), window.Day)
		}
		if window.DaysUntil < 0 || window.DaysUntil > 6 {
			t.Fatalf("%s: daysUntil = %d, want within [0,6]", today.Weekday(), window.DaysUntil)
		}
		if got := today.AddDate(0, 0, window.DaysUntil).Weekday(); got != window.Day {
			t.Fatalf("%s + %d days = %s, want %s", today.Weekday(), window.DaysUntil, got, window.Day)
		}
		if (window.DaysUntil == 0) != window.IsToday {
			t.Fatalf("%s: isToday = %v with daysUntil = %d", today.Weekday(), window.IsToday, window.DaysUntil)
		}
	}
}

func TestSchedule_Resolve_ProfileFollowsDeliveryDay(t *testing.T) {
	schedule := Schedule{First: time.Wednesday, Second: time.Saturday}

	for offset := 0; offset < 7; offset++ {
		window := schedule.Resolve(mondayJan6.AddDate(0, 0, offset))

		want := domain.ProfileWeekday
		if window.Day == schedule.Second {
			want = domain.ProfileWeekend
		}
		if window.ParProfile != want {
			t.Errorf("day %s: profile = %s, want %s", window.Day, window.ParProfile, want)
		}
	}
}

func TestParseSchedule(t *testing.T) {
	cases := []struct {
		name    string
		first   string
		second  string
		want    Schedule
		wantErr bool
	}{
		{"default policy", "monday", "thursday", Schedule{First: time.Monday, Second: time.Thursday}, false},
		{"case and whitespace", " Tuesday ", "FRIDAY", Schedule{First: time.Tuesday, Second: time.Friday}, false},
		{"unknown day", "moonday", "thursday", Schedule{}, true},
		{"same day twice", "monday", "monday", Schedule{}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSchedule(tc.first, tc.second)

			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("schedule = %+v, want %+v", got, tc.want)
			}
		})
	}
}
