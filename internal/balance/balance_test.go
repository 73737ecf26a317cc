package balance

import (
	"testing"
	"time"

	"github.com/express22chief-pixel/money-planner-sub000/internal/calendar"
	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
)

func strPtr(s string) *string { return &s }

func march(day int) time.Time { return calendar.Date(2026, time.March, day) }

func sampleLedger() []models.Transaction {
	return []models.Transaction{
		{Date: march(25), Category: "Salary", Amount: 300000, Type: models.TransactionTypeIncome, Settled: true},
		{Date: march(2), Category: "Food", Amount: -5000, Type: models.TransactionTypeExpense, PaymentMethod: models.PaymentMethodCash, Settled: true},
		{Base: models.Base{ID: "tv"}, Date: march(3), Category: "Electronics", Amount: -60000, Type: models.TransactionTypeExpense, PaymentMethod: models.PaymentMethodCredit, CardID: strPtr("card")},
		{Date: calendar.Date(2026, time.April, 10), Category: models.SettlementCategory, Amount: -60000, Type: models.TransactionTypeExpense, PaymentMethod: models.PaymentMethodCredit, IsSettlement: true, ParentID: strPtr("tv")},
		{Date: march(10), Category: models.SettlementCategory, Amount: -20000, Type: models.TransactionTypeExpense, PaymentMethod: models.PaymentMethodCredit, IsSettlement: true, ParentID: strPtr("feb"), Settled: true},
		{
			Date: march(7), Category: "Dining", Amount: -9000, Type: models.TransactionTypeExpense, PaymentMethod: models.PaymentMethodCash, Settled: true,
			Splits:      []models.SplitShare{{Person: "Aki", Amount: 3000}, {Person: "Ren", Amount: 3000, Settled: true}},
			SplitAmount: 6000,
		},
		{Date: march(27), Category: "Investment", Amount: -30000, Type: models.TransactionTypeExpense, PaymentMethod: models.PaymentMethodCash, Settled: true, RecurringID: strPtr("nisa"), RecurringType: models.ObligationTypeInvestment},
		{Date: march(27), Category: "Fund", Amount: -10000, Type: models.TransactionTypeExpense, PaymentMethod: models.PaymentMethodCash, Settled: true, RecurringID: strPtr("fund")},
		{Date: calendar.Date(2026, time.February, 28), Category: "Food", Amount: -7000, Type: models.TransactionTypeExpense, Settled: true},
	}
}

func sampleObligations() []models.RecurringObligation {
	return []models.RecurringObligation{
		{Base: models.Base{ID: "fund"}, Name: "Fund", Type: models.ObligationTypeFund},
	}
}

func TestComputeMonthlyBalance(t *testing.T) {
	ym := calendar.NewYearMonth(2026, time.March)
	b := ComputeMonthlyBalance(sampleLedger(), ym, sampleObligations())

	checks := []struct {
		name string
		got  int64
		want int64
	}{
		{"PLIncome", b.PLIncome, 300000},
		{"PLExpense", b.PLExpense, 71000},
		{"PLBalance", b.PLBalance, 229000},
		{"CFIncome", b.CFIncome, 300000},
		{"CFExpense", b.CFExpense, 34000},
		{"CFBalance", b.CFBalance, 266000},
		{"UnsettledCredit", b.UnsettledCredit, 60000},
		{"UnsettledSplit", b.UnsettledSplit, 3000},
		{"InvestmentTransfer", b.InvestmentTransfer, 40000},
		{"SettledTransfer", b.SettledTransfer, 40000},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: expected %d, got %d", c.name, c.want, c.got)
		}
	}
	if b.Month != "2026-03" {
		t.Errorf("expected month 2026-03, got %s", b.Month)
	}
}

func TestComputeMonthlyBalance_SettledTransferFollowsCash(t *testing.T) {
	entries := []models.Transaction{
		{Base: models.Base{ID: "buy"}, Date: march(12), Category: "Investment", Amount: -20000, Type: models.TransactionTypeExpense, PaymentMethod: models.PaymentMethodCredit, RecurringID: strPtr("nisa"), RecurringType: models.ObligationTypeInvestment},
		{Date: march(10), Category: models.SettlementCategory, Amount: -15000, Type: models.TransactionTypeExpense, PaymentMethod: models.PaymentMethodCredit, IsSettlement: true, ParentID: strPtr("feb-buy"), RecurringID: strPtr("nisa"), RecurringType: models.ObligationTypeInvestment, Settled: true},
	}
	b := ComputeMonthlyBalance(entries, calendar.NewYearMonth(2026, time.March), nil)

	if b.InvestmentTransfer != 20000 {
		t.Errorf("expected accrued transfer 20000, got %d", b.InvestmentTransfer)
	}
	if b.SettledTransfer != 15000 {
		t.Errorf("expected settled transfer 15000, got %d", b.SettledTransfer)
	}
	if b.CFExpense != 0 || b.PLExpense != 0 {
		t.Errorf("expected transfers outside expenses, got pl=%d cf=%d", b.PLExpense, b.CFExpense)
	}
}

func TestComputeMonthlyBalance_AllSettledCashMatches(t *testing.T) {
	entries := []models.Transaction{
		{Date: march(1), Category: "Salary", Amount: 250000, Type: models.TransactionTypeIncome, Settled: true},
		{Date: march(4), Category: "Food", Amount: -12000, Type: models.TransactionTypeExpense, PaymentMethod: models.PaymentMethodCash, Settled: true},
		{Date: march(9), Category: "Rent", Amount: -80000, Type: models.TransactionTypeExpense, PaymentMethod: models.PaymentMethodCash, Settled: true},
	}
	b := ComputeMonthlyBalance(entries, calendar.NewYearMonth(2026, time.March), nil)
	if b.PLBalance != b.CFBalance {
		t.Errorf("expected PL balance %d to equal CF balance %d", b.PLBalance, b.CFBalance)
	}
	if b.PLBalance != 158000 {
		t.Errorf("expected balance 158000, got %d", b.PLBalance)
	}
}

func TestComputeMonthlyBalance_Empty(t *testing.T) {
	b := ComputeMonthlyBalance(nil, calendar.NewYearMonth(2026, time.March), nil)
	if b != (MonthlyBalance{Month: "2026-03"}) {
		t.Errorf("expected zero balance, got %+v", b)
	}
}

func TestComputeMonthlyBalance_SettledSplit(t *testing.T) {
	entries := []models.Transaction{
		{
			Date: march(7), Category: "Dining", Amount: -9000, Type: models.TransactionTypeExpense, Settled: true,
			Splits:       []models.SplitShare{{Person: "Aki", Amount: 3000, Settled: true}},
			SplitAmount:  3000,
			SplitSettled: true,
		},
		{Date: march(8), Category: models.SplitRecoveryCategory, Amount: 3000, Type: models.TransactionTypeIncome, Settled: true},
	}
	b := ComputeMonthlyBalance(entries, calendar.NewYearMonth(2026, time.March), nil)
	if b.UnsettledSplit != 0 {
		t.Errorf("expected no unsettled split, got %d", b.UnsettledSplit)
	}
	if b.PLExpense != 9000 || b.PLIncome != 3000 {
		t.Errorf("expected PL 3000/9000, got %d/%d", b.PLIncome, b.PLExpense)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	got := CategoryBreakdown(sampleLedger(), calendar.NewYearMonth(2026, time.March), sampleObligations())
	want := []CategoryTotal{
		{Category: "Electronics", Amount: 60000},
		{Category: "Dining", Amount: 6000},
		{Category: "Food", Amount: 5000},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}

	t.Run("ties sort by name", func(t *testing.T) {
		entries := []models.Transaction{
			{Date: march(1), Category: "B", Amount: -100, Type: models.TransactionTypeExpense},
			{Date: march(1), Category: "A", Amount: -100, Type: models.TransactionTypeExpense},
		}
		got := CategoryBreakdown(entries, calendar.NewYearMonth(2026, time.March), nil)
		if len(got) != 2 || got[0].Category != "A" {
			t.Errorf("expected A before B, got %+v", got)
		}
	})
}
