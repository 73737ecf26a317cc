package models

import "github.com/express22chief-pixel/money-planner-sub000/internal/calendar"

// CreditCard describes a card's billing cycle. A closing day of 28 or more
// means the cycle closes at the end of each month.
type CreditCard struct {
	Base
	Name               string `gorm:"not null" json:"name"`
	ClosingDay         int    `gorm:"not null" json:"closing_day"`
	PaymentMonthOffset int    `gorm:"not null;default:1" json:"payment_month_offset"`
	PaymentDay         int    `gorm:"not null" json:"payment_day"`
}

// Rule returns the card's billing rule.
func (c *CreditCard) Rule() *calendar.CardRule {
	return &calendar.CardRule{
		ClosingDay:         c.ClosingDay,
		PaymentMonthOffset: c.PaymentMonthOffset,
		PaymentDay:         c.PaymentDay,
	}
}

// ResolveCard finds the card with the given id. A missing or stale id falls
// back to the first registered card; nil is returned when there are none.
func ResolveCard(cards []CreditCard, id *string) *CreditCard {
	if len(cards) == 0 {
		return nil
	}
	if id != nil {
		for i := range cards {
			if cards[i].ID == *id {
				return &cards[i]
			}
		}
	}
	return &cards[0]
}
