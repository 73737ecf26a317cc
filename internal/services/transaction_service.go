package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/express22chief-pixel/money-planner-sub000/internal/calendar"
	apperrors "github.com/express22chief-pixel/money-planner-sub000/internal/errors"
	"github.com/express22chief-pixel/money-planner-sub000/internal/ledger"
	"github.com/express22chief-pixel/money-planner-sub000/internal/logger"
	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
	"github.com/express22chief-pixel/money-planner-sub000/internal/pagination"
)

// transactionService handles ledger entry business logic.
type transactionService struct {
	db    *gorm.DB
	clock Clock
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, clock Clock) TransactionServicer {
	return &transactionService{db: db, clock: clock}
}

// CreateTransaction records a manual entry. Credit purchases get their
// drawdown entry in the same database transaction.
func (s *transactionService) CreateTransaction(in TransactionInput) (*models.Transaction, error) {
	entry, err := s.buildEntry(in)
	if err != nil {
		return nil, err
	}

	cards, err := loadCards(s.db)
	if err != nil {
		return nil, err
	}

	ledgerMu.Lock()
	defer ledgerMu.Unlock()

	today := s.clock.Today()
	logCardFallback(cards, entry)
	res := ledger.AttachSettlement(nil, *entry, cards, today)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&res.Added).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created := res.Added[0]
	return &created, nil
}

// buildEntry validates in and converts it into a ledger entry.
func (s *transactionService) buildEntry(in TransactionInput) (*models.Transaction, error) {
	if in.Amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if in.Category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if in.Date.IsZero() {
		in.Date = s.clock.Today()
	}

	entry := &models.Transaction{
		Date:        calendar.Day(in.Date),
		Category:    in.Category,
		Type:        in.Type,
		Description: in.Description,
	}

	switch in.Type {
	case models.TransactionTypeIncome:
		entry.Amount = in.Amount
		if len(in.Splits) > 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "income cannot be split")
		}
	case models.TransactionTypeExpense:
		entry.Amount = -in.Amount
		entry.PaymentMethod = in.PaymentMethod
		if entry.PaymentMethod == "" {
			entry.PaymentMethod = models.PaymentMethodCash
		}
		if entry.IsCredit() {
			entry.CardID = in.CardID
		}
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense")
	}

	if len(in.Splits) > 0 {
		var total int64
		splits := make([]models.SplitShare, len(in.Splits))
		for i, sp := range in.Splits {
			if sp.Person == "" || sp.Amount <= 0 {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "each split share needs a person and a positive amount")
			}
			splits[i] = sp
			total += sp.Amount
		}
		if total > in.Amount {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "split shares exceed the amount")
		}
		entry.Splits = splits
		entry.SplitAmount = total
		entry.SplitSettled = entry.UnsettledSplit() == 0
	}

	entry.Settled = !entry.Date.After(s.clock.Today())
	if in.Settled != nil {
		entry.Settled = *in.Settled
	}
	if entry.IsCredit() {
		entry.Settled = false
	}
	return entry, nil
}

// GetTransactions retrieves a paginated, filtered list of ledger entries,
// newest first.
func (s *transactionService) GetTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	q := applyTransactionFilters(s.db.Model(&models.Transaction{}), filter)

	result, err := pagination.Find[models.Transaction](q, page, "date DESC", "created_at DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", calendar.Day(*f.FromDate))
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", calendar.Day(*f.ToDate))
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	if f.Settled != nil {
		q = q.Where("settled = ?", *f.Settled)
	}
	if f.HideSettlement {
		q = q.Where("is_settlement = ?", false)
	}
	return q
}

// GetTransactionByID retrieves a ledger entry by ID.
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction replaces an entry's fields and recomputes its drawdown
// entry. Drawdown entries themselves cannot be edited.
func (s *transactionService) UpdateTransaction(id string, in TransactionInput) (*models.Transaction, error) {
	ledgerMu.Lock()
	defer ledgerMu.Unlock()

	existing, err := s.GetTransactionByID(id)
	if err != nil {
		return nil, err
	}
	if existing.IsSettlement {
		return nil, apperrors.ErrSettlementNotEditable
	}

	updated, err := s.buildEntry(in)
	if err != nil {
		return nil, err
	}
	updated.Base = existing.Base
	updated.RecurringID = existing.RecurringID
	updated.RecurringName = existing.RecurringName
	updated.RecurringType = existing.RecurringType

	entries, err := s.withSettlement(existing)
	if err != nil {
		return nil, err
	}
	cards, err := loadCards(s.db)
	if err != nil {
		return nil, err
	}

	logCardFallback(cards, updated)
	res := ledger.ResyncSettlement(entries, *updated, cards, s.clock.Today())

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(updated).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if res.Upserted != nil {
			if err := tx.Save(res.Upserted).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if res.RemovedID != "" {
			if err := tx.Unscoped().Delete(&models.Transaction{}, "id = ?", res.RemovedID).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTransaction deletes an entry together with its drawdown entry.
func (s *transactionService) DeleteTransaction(id string) error {
	ledgerMu.Lock()
	defer ledgerMu.Unlock()

	existing, err := s.GetTransactionByID(id)
	if err != nil {
		return err
	}
	if existing.IsSettlement {
		return apperrors.ErrSettlementNotEditable
	}

	entries, err := s.withSettlement(existing)
	if err != nil {
		return err
	}
	_, removed := ledger.RemoveWithSettlement(entries, id)

	if err := s.db.Unscoped().Delete(&models.Transaction{}, "id IN ?", removed).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// SettleSplit marks person's share of a split expense as repaid and records
// the recovered income.
func (s *transactionService) SettleSplit(id, person string) (*SplitSettlement, error) {
	if person == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "person is required")
	}

	ledgerMu.Lock()
	defer ledgerMu.Unlock()

	existing, err := s.GetTransactionByID(id)
	if err != nil {
		return nil, err
	}

	res, ok := ledger.SettleSplitShare([]models.Transaction{*existing}, id, person, s.clock.Today())
	if !ok {
		return nil, apperrors.ErrSplitShareNotFound
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&res.Updated).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Create(&res.Recovery).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &SplitSettlement{Transaction: &res.Updated, Recovery: &res.Recovery}, nil
}

// withSettlement returns entry followed by its drawdown entry, if any.
func (s *transactionService) withSettlement(entry *models.Transaction) ([]models.Transaction, error) {
	entries := []models.Transaction{*entry}
	var pairs []models.Transaction
	if err := s.db.Where("is_settlement = ? AND parent_id = ?", true, entry.ID).Find(&pairs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return append(entries, pairs...), nil
}

func loadCards(db *gorm.DB) ([]models.CreditCard, error) {
	var cards []models.CreditCard
	if err := db.Order("created_at ASC").Find(&cards).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return cards, nil
}

// logCardFallback records credit purchases whose card reference does not
// resolve to a registered card.
func logCardFallback(cards []models.CreditCard, entry *models.Transaction) {
	if !entry.IsCredit() {
		return
	}
	card := models.ResolveCard(cards, entry.CardID)
	switch {
	case card == nil:
		logger.Get().Debugw("no cards registered, using default settlement day",
			"transaction_id", entry.ID, "date", entry.Date.Format(time.DateOnly))
	case entry.CardID == nil || *entry.CardID != card.ID:
		logger.Get().Debugw("unknown card reference, using first registered card",
			"transaction_id", entry.ID, "card_id", entry.CardID, "fallback_card_id", card.ID)
	}
}
