// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/ekajy/backend/internal/domain/error"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWindowBounds(t *testing.T) {
	tests := []struct {
		name      string
		window    Window
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "day covers one calendar day",
			window:    Day(time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)),
			wantStart: date(2025, time.March, 15),
			wantEnd:   date(2025, time.March, 16),
		},
		{
			name:      "week starts on Monday",
			window:    Week(date(2025, time.March, 12)), // a Wednesday
			wantStart: date(2025, time.March, 10),
			wantEnd:   date(2025, time.March, 17),
		},
		{
			name:      "week anchored on a Sunday stays in the same ISO week",
			window:    Week(date(2025, time.March, 16)), // a Sunday
			wantStart: date(2025, time.March, 10),
			wantEnd:   date(2025, time.March, 17),
		},
		{
			name:      "week anchored on a Monday starts that day",
			window:    Week(date(2025, time.March, 10)),
			wantStart: date(2025, time.March, 10),
			wantEnd:   date(2025, time.March, 17),
		},
		{
			name:      "month covers the calendar month",
			window:    Month(2025, time.February),
			wantStart: date(2025, time.February, 1),
			wantEnd:   date(2025, time.March, 1),
		},
		{
			name:      "december rolls into the next year",
			window:    Month(2025, time.December),
			wantStart: date(2025, time.December, 1),
			wantEnd:   date(2026, time.January, 1),
		},
		{
			name:      "year covers the calendar year",
			window:    Year(2025),
			wantStart: date(2025, time.January, 1),
			wantEnd:   date(2026, time.January, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bounds := tt.window.Bounds()
			if bounds.Start == nil || bounds.End == nil {
				t.Fatalf("expected bounded range, got start=%v end=%v", bounds.Start, bounds.End)
			}
			if !bounds.Start.Equal(tt.wantStart) {
				t.Errorf("start: expected %v, got %v", tt.wantStart, *bounds.Start)
			}
			if !bounds.End.Equal(tt.wantEnd) {
				t.Errorf("end: expected %v, got %v", tt.wantEnd, *bounds.End)
			}
		})
	}
}

func TestAllTimeWindowIsUnbounded(t *testing.T) {
	bounds := AllTime().Bounds()
	if bounds.Start != nil || bounds.End != nil {
		t.Errorf("expected unbounded range, got start=%v end=%v", bounds.Start, bounds.End)
	}
	if !bounds.Contains(date(1970, time.January, 1)) || !bounds.Contains(date(2999, time.January, 1)) {
		t.Error("expected the unbounded range to contain every date")
	}
}

func TestDateRangeContainsIsHalfOpen(t *testing.T) {
	bounds := Month(2025, time.April).Bounds()

	if !bounds.Contains(date(2025, time.April, 1)) {
		t.Error("expected range to contain its start")
	}
	if !bounds.Contains(date(2025, time.April, 30)) {
		t.Error("expected range to contain the last day of the month")
	}
	if bounds.Contains(date(2025, time.May, 1)) {
		t.Error("expected range to exclude its end")
	}
	if bounds.Contains(date(2025, time.March, 31)) {
		t.Error("expected range to exclude dates before its start")
	}
}

func TestWindowsPartitionTheirYear(t *testing.T) {
	// Every day of 2025 must land in exactly one month window.
	for day := date(2025, time.January, 1); day.Year() == 2025; day = day.AddDate(0, 0, 1) {
		hits := 0
		for m := time.January; m <= time.December; m++ {
			if Month(2025, m).Bounds().Contains(day) {
				hits++
			}
		}
		if hits != 1 {
			t.Fatalf("%v contained in %d month windows, expected exactly 1", day, hits)
		}
	}
}

func TestAsOfEndIgnoresWindowStart(t *testing.T) {
	asOf := Month(2025, time.June).AsOfEnd()
	if asOf.Start != nil {
		t.Errorf("expected no lower bound, got %v", *asOf.Start)
	}
	if asOf.End == nil || !asOf.End.Equal(date(2025, time.July, 1)) {
		t.Errorf("expected end %v, got %v", date(2025, time.July, 1), asOf.End)
	}
	if !asOf.Contains(date(2024, time.December, 25)) {
		t.Error("expected as-of range to contain dates before the window start")
	}
}

func TestParseWindow(t *testing.T) {
	anchor := date(2025, time.March, 15)

	tests := []struct {
		name     string
		kind     string
		year     int
		month    int
		wantKind WindowKind
		wantErr  bool
	}{
		{name: "day", kind: "day", wantKind: WindowDay},
		{name: "week", kind: "week", wantKind: WindowWeek},
		{name: "month", kind: "month", year: 2025, month: 3, wantKind: WindowMonth},
		{name: "year", kind: "year", year: 2025, wantKind: WindowYear},
		{name: "all", kind: "all", wantKind: WindowAll},
		{name: "unknown kind", kind: "fortnight", wantErr: true},
		{name: "month zero", kind: "month", year: 2025, month: 0, wantErr: true},
		{name: "month thirteen", kind: "month", year: 2025, month: 13, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := ParseWindow(tt.kind, anchor, tt.year, tt.month)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				if !errors.Is(err, domainerror.ErrInvalidWindow) {
					t.Errorf("expected ErrInvalidWindow, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if window.Kind != tt.wantKind {
				t.Errorf("expected kind %s, got %s", tt.wantKind, window.Kind)
			}
		})
	}
}
