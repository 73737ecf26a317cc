package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// PaymentMethod is how an expense is paid.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCredit PaymentMethod = "credit"
)

// SettlementCategory labels derived credit drawdown entries.
const SettlementCategory = "Credit Drawdown"

// SplitRecoveryCategory labels income recovered from a split payment.
const SplitRecoveryCategory = "Split Recovery"

// SplitShare is the part of a split payment owed by another person.
type SplitShare struct {
	Person  string `json:"person"`
	Amount  int64  `json:"amount"`
	Settled bool   `json:"settled"`
}

// Transaction is a single monetary event in the ledger. Amount is signed:
// outflows are negative. Settlement entries mirror their parent's amount and
// are excluded from accrual totals.
type Transaction struct {
	Base
	Date          time.Time       `gorm:"type:date;not null;index" json:"date"`
	Category      string          `gorm:"not null" json:"category"`
	Amount        int64           `gorm:"type:bigint;not null" json:"amount"`
	Type          TransactionType `gorm:"not null" json:"type"`
	PaymentMethod PaymentMethod   `json:"payment_method,omitempty"`
	Description   string          `json:"description,omitempty"`
	Settled       bool            `gorm:"not null;default:false" json:"settled"`

	// Credit drawdown pairing
	IsSettlement bool    `gorm:"not null;default:false;index" json:"is_settlement"`
	ParentID     *string `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	CardID       *string `gorm:"type:uuid" json:"card_id,omitempty"`

	// Recurring link
	RecurringID   *string        `gorm:"type:uuid;index" json:"recurring_id,omitempty"`
	RecurringName string         `json:"recurring_name,omitempty"`
	RecurringType ObligationType `json:"recurring_type,omitempty"`

	// Split payment
	Splits       []SplitShare `gorm:"serializer:json" json:"splits,omitempty"`
	SplitAmount  int64        `gorm:"type:bigint;not null;default:0" json:"split_amount"`
	SplitSettled bool         `gorm:"not null;default:false" json:"split_settled"`
}

// IsCredit reports whether the entry was paid by credit card.
func (t *Transaction) IsCredit() bool {
	return t.PaymentMethod == PaymentMethodCredit
}

// IsRecurring reports whether the entry was generated from an obligation.
func (t *Transaction) IsRecurring() bool {
	return t.RecurringID != nil && *t.RecurringID != ""
}

// AbsAmount returns the unsigned amount.
func (t *Transaction) AbsAmount() int64 {
	if t.Amount < 0 {
		return -t.Amount
	}
	return t.Amount
}

// UnsettledSplit returns the part of a split payment that other people have
// not paid back yet.
func (t *Transaction) UnsettledSplit() int64 {
	if t.SplitSettled || len(t.Splits) == 0 {
		return 0
	}
	var total int64
	for _, s := range t.Splits {
		if !s.Settled {
			total += s.Amount
		}
	}
	return total
}
