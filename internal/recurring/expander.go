// Package recurring expands recurring obligations into the concrete dates
// they fall on within a month.
package recurring

import (
	"time"

	"github.com/express22chief-pixel/money-planner-sub000/internal/calendar"
	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
)

// weeklyEpoch anchors weekly schedules that have no start date. It is a
// Monday, so intervals stay aligned across months.
var weeklyEpoch = calendar.Date(1970, time.January, 5)

// Occurrence is one concrete date of an obligation.
type Occurrence struct {
	Date time.Time
	// Past is true when the date is on or before today.
	Past bool
}

// Expand returns the occurrences of ob within ym, ordered by date.
// Occurrences outside the obligation's start and end dates are dropped.
func Expand(ob *models.RecurringObligation, ym calendar.YearMonth, today time.Time) []Occurrence {
	if !ob.ActiveIn(ym) {
		return nil
	}
	today = calendar.Day(today)

	var dates []time.Time
	switch ob.Kind {
	case models.RecurrenceMonthlyDate:
		if ob.DayOfMonth > 0 {
			dates = append(dates, calendar.DayIn(ym, ob.DayOfMonth))
		}
	case models.RecurrenceMonthlyWeekday:
		if d, ok := calendar.ResolveNthWeekday(ym.Year, ym.Month, ob.Weekday, ob.WeekOrdinal); ok {
			dates = append(dates, d)
		}
	case models.RecurrenceWeekly:
		anchor := weeklyEpoch
		if ob.StartDate != nil {
			anchor = calendar.Day(*ob.StartDate)
		}
		dates = calendar.ResolveWeeklyOccurrences(ym.Year, ym.Month, ob.Weekday, ob.IntervalWeeks, anchor)
	}

	out := make([]Occurrence, 0, len(dates))
	for _, d := range dates {
		if !inBounds(ob, d) {
			continue
		}
		out = append(out, Occurrence{Date: d, Past: !d.After(today)})
	}
	return out
}

func inBounds(ob *models.RecurringObligation, d time.Time) bool {
	if ob.StartDate != nil && d.Before(calendar.Day(*ob.StartDate)) {
		return false
	}
	if ob.EndDate != nil && d.After(calendar.Day(*ob.EndDate)) {
		return false
	}
	return true
}

// MonthlyTotal returns the amount an obligation contributes in ym, which is
// its amount times the number of occurrences.
func MonthlyTotal(ob *models.RecurringObligation, ym calendar.YearMonth) int64 {
	return ob.Amount * int64(len(Expand(ob, ym, ym.First())))
}
