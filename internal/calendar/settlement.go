package calendar

import "time"

// DefaultSettlementDay is used when no card rule is available: the purchase
// is drawn on this day of the following month.
const DefaultSettlementDay = 26

// EndOfMonthClosing is the closing day from which a card is treated as
// closing on the last day of each month.
const EndOfMonthClosing = 28

// CardRule is the billing cycle of a credit card.
type CardRule struct {
	ClosingDay         int
	PaymentMonthOffset int
	PaymentDay         int
}

// EffectiveClosingDay returns the closing day for the given month.
func (r CardRule) EffectiveClosingDay(ym YearMonth) int {
	if r.ClosingDay >= EndOfMonthClosing {
		return ym.Days()
	}
	if r.ClosingDay < 1 {
		return 1
	}
	return r.ClosingDay
}

// ResolveSettlementDate computes the drawdown date of a purchase. A nil rule
// falls back to DefaultSettlementDay of the month after the purchase.
func ResolveSettlementDate(purchase time.Time, rule *CardRule) time.Time {
	purchase = Day(purchase)
	ym := Of(purchase)

	if rule == nil {
		return DayIn(ym.AddMonths(1), DefaultSettlementDay)
	}

	closingMonth := ym
	if purchase.Day() > rule.EffectiveClosingDay(ym) {
		closingMonth = ym.AddMonths(1)
	}

	offset := rule.PaymentMonthOffset
	if offset < 1 {
		offset = 1
	}
	return DayIn(closingMonth.AddMonths(offset), rule.PaymentDay)
}
