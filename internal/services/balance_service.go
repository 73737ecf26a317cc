package services

import (
	"gorm.io/gorm"

	"github.com/express22chief-pixel/money-planner-sub000/internal/balance"
	"github.com/express22chief-pixel/money-planner-sub000/internal/calendar"
)

// balanceService reports monthly PL and CF totals.
type balanceService struct {
	db *gorm.DB
}

// NewBalanceService creates a new BalanceServicer.
func NewBalanceService(db *gorm.DB) BalanceServicer {
	return &balanceService{db: db}
}

// GetMonthlyBalance aggregates the ledger for ym.
func (s *balanceService) GetMonthlyBalance(ym calendar.YearMonth) (*balance.MonthlyBalance, error) {
	entries, err := loadMonth(s.db, ym)
	if err != nil {
		return nil, err
	}
	obligations, err := loadObligationsUnscoped(s.db)
	if err != nil {
		return nil, err
	}
	b := balance.ComputeMonthlyBalance(entries, ym, obligations)
	return &b, nil
}

// GetCategoryBreakdown returns the month's accrual expense per category.
func (s *balanceService) GetCategoryBreakdown(ym calendar.YearMonth) ([]balance.CategoryTotal, error) {
	entries, err := loadMonth(s.db, ym)
	if err != nil {
		return nil, err
	}
	obligations, err := loadObligationsUnscoped(s.db)
	if err != nil {
		return nil, err
	}
	return balance.CategoryBreakdown(entries, ym, obligations), nil
}
