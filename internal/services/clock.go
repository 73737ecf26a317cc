package services

import (
	"sync"
	"time"

	"github.com/express22chief-pixel/money-planner-sub000/internal/calendar"
)

// Clock reports the current calendar day in the owner's timezone.
type Clock interface {
	Today() time.Time
	Now() time.Time
}

// SystemClock reads the wall clock in Location.
type SystemClock struct {
	Location *time.Location
}

// Today implements Clock.
func (c SystemClock) Today() time.Time {
	return calendar.Today(c.Location)
}

// Now implements Clock.
func (c SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same day.
type FixedClock time.Time

// Today implements Clock.
func (c FixedClock) Today() time.Time {
	return calendar.Day(time.Time(c))
}

// Now implements Clock.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// ledgerMu serializes read-modify-write passes over the ledger.
var ledgerMu sync.Mutex
