package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/express22chief-pixel/money-planner-sub000/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCard creates a card closing on the 15th and paying on the 10th
// of the following month.
func CreateTestCard(t *testing.T, db *gorm.DB) *models.CreditCard {
	t.Helper()
	return CreateTestCardWithRule(t, db, 15, 1, 10)
}

// CreateTestCardWithRule creates a card with the given billing rule.
func CreateTestCardWithRule(t *testing.T, db *gorm.DB, closingDay, offset, paymentDay int) *models.CreditCard {
	t.Helper()

	card := &models.CreditCard{
		Name:               fmt.Sprintf("Test Card %d", nextID()),
		ClosingDay:         closingDay,
		PaymentMonthOffset: offset,
		PaymentDay:         paymentDay,
	}
	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test card: %v", err)
	}
	return card
}

// CreateTestObligation creates a cash monthly-date expense obligation.
func CreateTestObligation(t *testing.T, db *gorm.DB, day int, amount int64) *models.RecurringObligation {
	t.Helper()

	ob := &models.RecurringObligation{
		Name:          fmt.Sprintf("Test Obligation %d", nextID()),
		Amount:        amount,
		Category:      "Housing",
		Kind:          models.RecurrenceMonthlyDate,
		DayOfMonth:    day,
		PaymentMethod: models.PaymentMethodCash,
		Type:          models.ObligationTypeExpense,
	}
	if err := db.Create(ob).Error; err != nil {
		t.Fatalf("failed to create test obligation: %v", err)
	}
	return ob
}

// CreateTestTransaction creates a settled cash entry. amount is signed.
func CreateTestTransaction(t *testing.T, db *gorm.DB, date time.Time, category string, amount int64) *models.Transaction {
	t.Helper()

	txType := models.TransactionTypeExpense
	method := models.PaymentMethodCash
	if amount > 0 {
		txType = models.TransactionTypeIncome
		method = ""
	}
	tx := &models.Transaction{
		Date:          date,
		Category:      category,
		Amount:        amount,
		Type:          txType,
		PaymentMethod: method,
		Settled:       true,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestAssets stores the asset snapshot.
func CreateTestAssets(t *testing.T, db *gorm.DB, savings, investment, taxAdvantaged, dryPowder float64) *models.AssetSnapshot {
	t.Helper()

	assets := &models.AssetSnapshot{
		Savings:       savings,
		Investment:    investment,
		TaxAdvantaged: taxAdvantaged,
		DryPowder:     dryPowder,
	}
	if err := db.Create(assets).Error; err != nil {
		t.Fatalf("failed to create test assets: %v", err)
	}
	return assets
}

// CreateTestLifeEvent creates a one-time outflow.
func CreateTestLifeEvent(t *testing.T, db *gorm.DB, yearMonth string, amount float64) *models.LifeEvent {
	t.Helper()

	event := &models.LifeEvent{
		Name:      fmt.Sprintf("Test Event %d", nextID()),
		YearMonth: yearMonth,
		Amount:    amount,
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("failed to create test life event: %v", err)
	}
	return event
}
