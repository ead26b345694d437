// Package dashboard contains dashboard-related use cases: time-windowed
// totals, the unified event feed, and the outstanding-debt report.
package dashboard

import (
	"fmt"
	"time"

	domainerror "github.com/ekajy/backend/internal/domain/error"
)

// WindowKind identifies a date-window variant.
type WindowKind string

const (
	WindowDay   WindowKind = "day"
	WindowWeek  WindowKind = "week"
	WindowMonth WindowKind = "month"
	WindowYear  WindowKind = "year"
	WindowAll   WindowKind = "all"
)

// Window is a tagged date-range predicate scoping aggregation queries. It is
// evaluated into half-open [start, end) bounds that the store layer binds as
// SQL parameters; window semantics live here and nowhere else.
type Window struct {
	Kind  WindowKind
	day   time.Time
	year  int
	month time.Month
}

// Day returns a window covering the calendar day containing t.
func Day(t time.Time) Window {
	return Window{Kind: WindowDay, day: t}
}

// Week returns a window covering the ISO week (Monday through Sunday)
// containing t.
func Week(t time.Time) Window {
	return Window{Kind: WindowWeek, day: t}
}

// Month returns a window covering one calendar month.
func Month(year int, month time.Month) Window {
	return Window{Kind: WindowMonth, year: year, month: month}
}

// Year returns a window covering one calendar year.
func Year(year int) Window {
	return Window{Kind: WindowYear, year: year}
}

// AllTime returns the unbounded window.
func AllTime() Window {
	return Window{Kind: WindowAll}
}

// DateRange holds half-open [Start, End) bounds. A nil bound is unbounded on
// that side.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && !t.Before(*r.End) {
		return false
	}
	return true
}

// Bounds evaluates the window into its date range.
func (w Window) Bounds() DateRange {
	loc := time.UTC

	switch w.Kind {
	case WindowDay:
		start := time.Date(w.day.Year(), w.day.Month(), w.day.Day(), 0, 0, 0, 0, loc)
		end := start.AddDate(0, 0, 1)
		return DateRange{Start: &start, End: &end}
	case WindowWeek:
		start := weekStart(w.day.In(loc))
		end := start.AddDate(0, 0, 7)
		return DateRange{Start: &start, End: &end}
	case WindowMonth:
		start := time.Date(w.year, w.month, 1, 0, 0, 0, 0, loc)
		end := start.AddDate(0, 1, 0)
		return DateRange{Start: &start, End: &end}
	case WindowYear:
		start := time.Date(w.year, time.January, 1, 0, 0, 0, 0, loc)
		end := start.AddDate(1, 0, 0)
		return DateRange{Start: &start, End: &end}
	default:
		return DateRange{}
	}
}

// AsOfEnd returns the range used by the outstanding-debt report: everything
// up to the window's end, regardless of window start. A repayment made this
// month against last month's debt still reduces the balance.
func (w Window) AsOfEnd() DateRange {
	return DateRange{End: w.Bounds().End}
}

// weekStart returns the Monday of the week containing date.
func weekStart(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	return time.Date(date.Year(), date.Month(), date.Day()-(weekday-1), 0, 0, 0, 0, date.Location())
}

// ParseWindow builds a Window from request parameters. kind selects the
// variant; date (required for day/week) anchors it; year and month override
// the anchor for month/year windows, defaulting to the current UTC date.
func ParseWindow(kind string, date time.Time, year, month int) (Window, error) {
	switch WindowKind(kind) {
	case WindowDay:
		return Day(date), nil
	case WindowWeek:
		return Week(date), nil
	case WindowMonth:
		if month < 1 || month > 12 {
			return Window{}, domainerror.NewDashboardError(
				domainerror.ErrCodeInvalidWindow,
				fmt.Sprintf("month must be 1-12, got %d", month),
				domainerror.ErrInvalidWindow,
			)
		}
		return Month(year, time.Month(month)), nil
	case WindowYear:
		return Year(year), nil
	case WindowAll:
		return AllTime(), nil
	default:
		return Window{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidWindow,
			fmt.Sprintf("unknown window kind %q", kind),
			domainerror.ErrInvalidWindow,
		)
	}
}
