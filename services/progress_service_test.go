package services

import (
	"testing"
	"time"
)

func TestPctOfGoal(t *testing.T) {
	cases := []struct {
		name     string
		consumed float64
		goal     float64
		want     float64
	}{
		{"halfway", 1000, 2000, 0.5},
		{"exactly met", 2000, 2000, 1},
		{"over goal caps at one", 2600, 2000, 1},
		{"zero goal", 500, 0, 0},
		{"negative goal", 500, -10, 0},
		{"nothing consumed", 0, 2000, 0},
		{"rounds to two decimals", 1, 3, 0.33},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pctOfGoal(tc.consumed, tc.goal)
			if got != tc.want {
				t.Errorf("pctOfGoal(%v, %v) = %v, want %v", tc.consumed, tc.goal, got, tc.want)
			}
		})
	}
}

func TestDayStartLocal(t *testing.T) {
	in := time.Date(2025, 3, 14, 23, 59, 58, 0, time.Local)
	got := dayStartLocal(in)

	want := time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("dayStartLocal(%v) = %v, want %v", in, got, want)
	}
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	week, err := periodStart(now, "week")
	if err != nil {
		t.Fatalf("week: %v", err)
	}
	if want := now.AddDate(0, 0, -7); !week.Equal(want) {
		t.Errorf("week start = %v, want %v", week, want)
	}

	if _, err := periodStart(now, "fortnight"); err == nil {
		t.Error("expected error for unknown period")
	}
}
