// Package balance aggregates a month of the ledger into accrual (PL) and
// cash-basis (CF) totals.
package balance

import (
	"sort"

	"github.com/express22chief-pixel/money-planner-sub000/internal/calendar"
	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
)

// MonthlyBalance summarises one month. PL counts every non-settlement entry
// when it occurs; CF counts only entries whose cash has moved.
type MonthlyBalance struct {
	Month              string `json:"month"`
	PLIncome           int64  `json:"pl_income"`
	PLExpense          int64  `json:"pl_expense"`
	PLBalance          int64  `json:"pl_balance"`
	CFIncome           int64  `json:"cf_income"`
	CFExpense          int64  `json:"cf_expense"`
	CFBalance          int64  `json:"cf_balance"`
	UnsettledCredit    int64  `json:"unsettled_credit"`
	UnsettledSplit     int64  `json:"unsettled_split"`
	InvestmentTransfer int64  `json:"investment_transfer"`
	// SettledTransfer is the part of the asset transfers whose cash has left
	// the account. CF expense leaves it out like InvestmentTransfer.
	SettledTransfer    int64  `json:"settled_transfer"`
}

// ComputeMonthlyBalance aggregates the entries dated in ym. obligations is
// consulted to classify recurring entries that carry no type of their own.
func ComputeMonthlyBalance(entries []models.Transaction, ym calendar.YearMonth, obligations []models.RecurringObligation) MonthlyBalance {
	types := make(map[string]models.ObligationType, len(obligations))
	for i := range obligations {
		types[obligations[i].ID] = obligations[i].Type
	}

	b := MonthlyBalance{Month: ym.String()}
	for i := range entries {
		t := &entries[i]
		if !ym.Contains(t.Date) {
			continue
		}
		transfer := isAssetTransfer(t, types)

		if !t.IsSettlement {
			switch t.Type {
			case models.TransactionTypeIncome:
				b.PLIncome += t.AbsAmount()
			case models.TransactionTypeExpense:
				if transfer {
					b.InvestmentTransfer += t.AbsAmount()
					break
				}
				others := t.UnsettledSplit()
				b.PLExpense += t.AbsAmount() - others
				b.UnsettledSplit += others
			}
			if t.IsCredit() && t.Type == models.TransactionTypeExpense && !t.Settled {
				b.UnsettledCredit += t.AbsAmount()
			}
		}

		if !t.Settled {
			continue
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			b.CFIncome += t.AbsAmount()
		case models.TransactionTypeExpense:
			if transfer {
				b.SettledTransfer += t.AbsAmount()
				break
			}
			b.CFExpense += t.AbsAmount()
		}
	}

	b.PLBalance = b.PLIncome - b.PLExpense
	b.CFBalance = b.CFIncome - b.CFExpense
	return b
}

func isAssetTransfer(t *models.Transaction, types map[string]models.ObligationType) bool {
	if t.RecurringType != "" {
		return t.RecurringType.IsAssetTransfer()
	}
	if t.RecurringID != nil {
		return types[*t.RecurringID].IsAssetTransfer()
	}
	return false
}

// CategoryTotal is the accrual expense of one category.
type CategoryTotal struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// CategoryBreakdown returns the month's accrual expense per category, largest
// first. Asset transfers are left out, as in ComputeMonthlyBalance.
func CategoryBreakdown(entries []models.Transaction, ym calendar.YearMonth, obligations []models.RecurringObligation) []CategoryTotal {
	types := make(map[string]models.ObligationType, len(obligations))
	for i := range obligations {
		types[obligations[i].ID] = obligations[i].Type
	}

	sums := make(map[string]int64)
	for i := range entries {
		t := &entries[i]
		if t.IsSettlement || t.Type != models.TransactionTypeExpense || !ym.Contains(t.Date) || isAssetTransfer(t, types) {
			continue
		}
		sums[t.Category] += t.AbsAmount() - t.UnsettledSplit()
	}

	out := make([]CategoryTotal, 0, len(sums))
	for c, amt := range sums {
		out = append(out, CategoryTotal{Category: c, Amount: amt})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Category < out[j].Category
	})
	return out
}
