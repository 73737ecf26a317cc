package calendar

import "time"

// ResolveNthWeekday returns the ordinal-th weekday of the month. ordinal may
// be 1..5 or LastWeek. ok is false when the occurrence does not exist, such
// as a fifth Monday in a month with four.
func ResolveNthWeekday(year int, month time.Month, weekday time.Weekday, ordinal int) (time.Time, bool) {
	ym := NewYearMonth(year, month)

	if ordinal == LastWeek {
		last := ym.Last()
		back := (int(last.Weekday()) - int(weekday) + 7) % 7
		return last.AddDate(0, 0, -back), true
	}
	if ordinal < 1 || ordinal > 5 {
		return time.Time{}, false
	}

	first := ym.First()
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	day := 1 + offset + (ordinal-1)*7
	if day > ym.Days() {
		return time.Time{}, false
	}
	return Date(ym.Year, ym.Month, day), true
}

// ResolveWeeklyOccurrences returns every weekday in the month whose distance
// in whole weeks from anchor is a multiple of intervalWeeks.
func ResolveWeeklyOccurrences(year int, month time.Month, weekday time.Weekday, intervalWeeks int, anchor time.Time) []time.Time {
	if intervalWeeks < 1 {
		intervalWeeks = 1
	}
	ym := NewYearMonth(year, month)
	first := ym.First()
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7

	var out []time.Time
	for d := first.AddDate(0, 0, offset); ym.Contains(d); d = d.AddDate(0, 0, 7) {
		w := WholeWeeksBetween(anchor, d)
		if ((w%intervalWeeks)+intervalWeeks)%intervalWeeks == 0 {
			out = append(out, d)
		}
	}
	return out
}
