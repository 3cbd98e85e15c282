package services

import (
	"testing"
	"time"
)

func TestOverlaps(t *testing.T) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		aStart, aEnd time.Time
		bStart, bEnd time.Time
		want         bool
	}{
		{"identical windows", at(day, 9, 0), at(day, 10, 0), at(day, 9, 0), at(day, 10, 0), true},
		{"partial overlap", at(day, 9, 0), at(day, 10, 30), at(day, 10, 0), at(day, 11, 0), true},
		{"a contains b", at(day, 9, 0), at(day, 12, 0), at(day, 10, 0), at(day, 11, 0), true},
		{"b contains a", at(day, 10, 0), at(day, 11, 0), at(day, 9, 0), at(day, 12, 0), true},
		{"a ends where b starts", at(day, 9, 0), at(day, 10, 0), at(day, 10, 0), at(day, 11, 0), false},
		{"b ends where a starts", at(day, 10, 0), at(day, 11, 0), at(day, 9, 0), at(day, 10, 0), false},
		{"disjoint", at(day, 8, 0), at(day, 9, 0), at(day, 10, 0), at(day, 11, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			if got != tt.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v",
					tt.aStart.Format("15:04"), tt.aEnd.Format("15:04"),
					tt.bStart.Format("15:04"), tt.bEnd.Format("15:04"),
					got, tt.want)
			}
		})
	}
}

func TestDayWindow(t *testing.T) {
	in := time.Date(2026, time.March, 2, 14, 37, 12, 500, time.UTC)

	start, end := DayWindow(in)

	wantStart := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}

	// Midnight input is already normalized.
	start2, _ := DayWindow(wantStart)
	if !start2.Equal(wantStart) {
		t.Errorf("midnight input: start = %v, want %v", start2, wantStart)
	}
}
