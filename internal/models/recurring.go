package models

import (
	"time"

	"github.com/express22chief-pixel/money-planner-sub000/internal/calendar"
)

// RecurrenceKind selects which schedule fields of an obligation apply.
type RecurrenceKind string

const (
	RecurrenceMonthlyDate    RecurrenceKind = "monthly-date"
	RecurrenceMonthlyWeekday RecurrenceKind = "monthly-weekday"
	RecurrenceWeekly         RecurrenceKind = "weekly"
)

// ObligationType distinguishes consumption from asset-accumulating outflows.
type ObligationType string

const (
	ObligationTypeExpense    ObligationType = "expense"
	ObligationTypeInvestment ObligationType = "investment"
	ObligationTypeFund       ObligationType = "fund"
	ObligationTypeInsurance  ObligationType = "insurance"
)

// IsAssetTransfer reports whether the type moves money into assets rather
// than consuming it.
func (t ObligationType) IsAssetTransfer() bool {
	switch t {
	case ObligationTypeInvestment, ObligationTypeFund, ObligationTypeInsurance:
		return true
	}
	return false
}

// RecurringObligation is a template for a repeating expense or contribution.
// Only the schedule fields of its Kind are meaningful.
type RecurringObligation struct {
	Base
	Name     string         `gorm:"not null" json:"name"`
	Amount   int64          `gorm:"type:bigint;not null" json:"amount"`
	Category string         `gorm:"not null" json:"category"`
	Kind     RecurrenceKind `gorm:"not null" json:"kind"`

	// monthly-date
	DayOfMonth int `json:"day_of_month,omitempty"`

	// monthly-weekday and weekly
	Weekday       time.Weekday `json:"weekday"`
	WeekOrdinal   int          `json:"week_ordinal,omitempty"` // 1..5, or -1 for the last occurrence
	IntervalWeeks int          `json:"interval_weeks,omitempty"`

	StartDate     *time.Time     `gorm:"type:date" json:"start_date,omitempty"`
	EndDate       *time.Time     `gorm:"type:date" json:"end_date,omitempty"`
	PaymentMethod PaymentMethod  `gorm:"not null;default:'cash'" json:"payment_method"`
	CardID        *string        `gorm:"type:uuid" json:"card_id,omitempty"`
	Type          ObligationType `gorm:"not null;default:'expense'" json:"type"`
}

// ActiveIn reports whether the obligation's bounds overlap the month.
func (o *RecurringObligation) ActiveIn(ym calendar.YearMonth) bool {
	if o.StartDate != nil && calendar.Of(*o.StartDate).After(ym) {
		return false
	}
	if o.EndDate != nil && calendar.Of(*o.EndDate).Before(ym) {
		return false
	}
	return true
}
