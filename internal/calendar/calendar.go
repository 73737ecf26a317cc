// Package calendar provides the date arithmetic used by the recurring and
// ledger engines: year-month normalisation, weekday resolution and credit
// card settlement dates. All values are calendar days at midnight UTC.
package calendar

import (
	"fmt"
	"time"
)

// LastWeek is the week ordinal meaning "the last occurrence in the month".
const LastWeek = -1

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// NewYearMonth returns a normalised YearMonth, so month 13 becomes January of
// the following year and month 0 becomes December of the previous one.
func NewYearMonth(year int, month time.Month) YearMonth {
	m := int(month) - 1
	year += m / 12
	m %= 12
	if m < 0 {
		m += 12
		year--
	}
	return YearMonth{Year: year, Month: time.Month(m + 1)}
}

// Of returns the month containing t.
func Of(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// ParseYearMonth parses "YYYY-MM".
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid year-month %q: %w", s, err)
	}
	return Of(t), nil
}

// AddMonths shifts the month by n, rolling the year as needed.
func (ym YearMonth) AddMonths(n int) YearMonth {
	return NewYearMonth(ym.Year, ym.Month+time.Month(n))
}

// Days returns the number of days in the month.
func (ym YearMonth) Days() int {
	return time.Date(ym.Year, ym.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// First returns the first day of the month.
func (ym YearMonth) First() time.Time {
	return Date(ym.Year, ym.Month, 1)
}

// Last returns the last day of the month.
func (ym YearMonth) Last() time.Time {
	return Date(ym.Year, ym.Month, ym.Days())
}

// Contains reports whether t falls inside the month.
func (ym YearMonth) Contains(t time.Time) bool {
	return t.Year() == ym.Year && t.Month() == ym.Month
}

// Before reports whether ym is strictly earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// After reports whether ym is strictly later than other.
func (ym YearMonth) After(other YearMonth) bool {
	return other.Before(ym)
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Date builds a calendar day at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Day truncates t to its calendar day, keeping the wall-clock date.
func Day(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar day as observed in loc.
func Today(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return Day(time.Now().In(loc))
}

// DayIn returns the given day of the month, clamped to the month length.
func DayIn(ym YearMonth, day int) time.Time {
	if day < 1 {
		day = 1
	}
	if n := ym.Days(); day > n {
		day = n
	}
	return Date(ym.Year, ym.Month, day)
}

// WholeWeeksBetween returns the number of whole weeks from a to b, rounded
// toward negative infinity when b precedes a.
func WholeWeeksBetween(a, b time.Time) int {
	days := int(Day(b).Sub(Day(a)).Hours() / 24)
	weeks := days / 7
	if days < 0 && days%7 != 0 {
		weeks--
	}
	return weeks
}
