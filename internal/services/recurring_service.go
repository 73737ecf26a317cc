package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/express22chief-pixel/money-planner-sub000/internal/calendar"
	apperrors "github.com/express22chief-pixel/money-planner-sub000/internal/errors"
	"github.com/express22chief-pixel/money-planner-sub000/internal/ledger"
	"github.com/express22chief-pixel/money-planner-sub000/internal/logger"
	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
	"github.com/express22chief-pixel/money-planner-sub000/internal/recurring"
)

// recurringService handles recurring obligation business logic and keeps the
// current month's generated entries in step with the obligations.
type recurringService struct {
	db    *gorm.DB
	clock Clock
}

// NewRecurringService creates a new RecurringServicer.
func NewRecurringService(db *gorm.DB, clock Clock) RecurringServicer {
	return &recurringService{db: db, clock: clock}
}

// CreateObligation stores a new obligation and generates its entries for the
// current month.
func (s *recurringService) CreateObligation(in ObligationInput) (*models.RecurringObligation, error) {
	ob, err := buildObligation(in)
	if err != nil {
		return nil, err
	}
	if err := s.db.Create(ob).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if _, err := s.Generate(); err != nil {
		return nil, err
	}
	return ob, nil
}

func buildObligation(in ObligationInput) (*models.RecurringObligation, error) {
	if in.Name == "" || in.Category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name and category are required")
	}
	if in.Amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if in.Weekday < 0 || in.Weekday > 6 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "weekday must be between 0 (Sunday) and 6")
	}

	ob := &models.RecurringObligation{
		Name:          in.Name,
		Amount:        in.Amount,
		Category:      in.Category,
		Kind:          in.Kind,
		PaymentMethod: in.PaymentMethod,
		Type:          in.Type,
	}

	switch in.Kind {
	case models.RecurrenceMonthlyDate:
		if in.DayOfMonth < 1 || in.DayOfMonth > 31 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "day_of_month must be between 1 and 31")
		}
		ob.DayOfMonth = in.DayOfMonth
	case models.RecurrenceMonthlyWeekday:
		if in.WeekOrdinal != calendar.LastWeek && (in.WeekOrdinal < 1 || in.WeekOrdinal > 5) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "week_ordinal must be 1 to 5, or -1 for the last week")
		}
		ob.Weekday = in.Weekday
		ob.WeekOrdinal = in.WeekOrdinal
	case models.RecurrenceWeekly:
		ob.Weekday = in.Weekday
		ob.IntervalWeeks = max(in.IntervalWeeks, 1)
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "kind must be monthly-date, monthly-weekday or weekly")
	}

	if in.StartDate != nil {
		d := calendar.Day(*in.StartDate)
		ob.StartDate = &d
	}
	if in.EndDate != nil {
		d := calendar.Day(*in.EndDate)
		ob.EndDate = &d
	}
	if ob.StartDate != nil && ob.EndDate != nil && ob.EndDate.Before(*ob.StartDate) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "end_date is before start_date")
	}

	if ob.PaymentMethod == "" {
		ob.PaymentMethod = models.PaymentMethodCash
	}
	if ob.PaymentMethod == models.PaymentMethodCredit {
		ob.CardID = in.CardID
	}
	if ob.Type == "" {
		ob.Type = models.ObligationTypeExpense
	}
	return ob, nil
}

// GetObligations lists every obligation, oldest first.
func (s *recurringService) GetObligations() ([]models.RecurringObligation, error) {
	return loadObligations(s.db)
}

// GetObligationByID retrieves an obligation by ID.
func (s *recurringService) GetObligationByID(id string) (*models.RecurringObligation, error) {
	var ob models.RecurringObligation
	if err := s.db.Where("id = ?", id).First(&ob).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrObligationNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &ob, nil
}

// UpdateObligation replaces an obligation. Its upcoming, still unsettled
// entries in the current month are regenerated from the new schedule.
func (s *recurringService) UpdateObligation(id string, in ObligationInput) (*models.RecurringObligation, error) {
	existing, err := s.GetObligationByID(id)
	if err != nil {
		return nil, err
	}
	ob, err := buildObligation(in)
	if err != nil {
		return nil, err
	}
	ob.Base = existing.Base

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(ob).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return s.removeUpcoming(tx, id)
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.Generate(); err != nil {
		return nil, err
	}
	return ob, nil
}

// DeleteObligation removes an obligation and its upcoming entries. Entries
// already dated on or before today are kept.
func (s *recurringService) DeleteObligation(id string) error {
	if _, err := s.GetObligationByID(id); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.RecurringObligation{}, "id = ?", id).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return s.removeUpcoming(tx, id)
	})
}

// removeUpcoming deletes the obligation's unsettled entries dated after today
// in the current month, with their drawdown entries.
func (s *recurringService) removeUpcoming(tx *gorm.DB, obligationID string) error {
	ledgerMu.Lock()
	defer ledgerMu.Unlock()

	today := s.clock.Today()
	ym := calendar.Of(today)

	var ids []string
	if err := tx.Model(&models.Transaction{}).
		Where("recurring_id = ? AND is_settlement = ? AND settled = ? AND date > ? AND date < ?",
			obligationID, false, false, today, ym.AddMonths(1).First()).
		Pluck("id", &ids).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Unscoped().
		Where("id IN ? OR (is_settlement = ? AND parent_id IN ?)", ids, true, ids).
		Delete(&models.Transaction{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Generate expands every obligation into the current month's ledger and then
// settles the entries whose date has arrived. Running it repeatedly on the
// same day changes nothing after the first run.
func (s *recurringService) Generate() (*GenerateResult, error) {
	ledgerMu.Lock()
	defer ledgerMu.Unlock()

	today := s.clock.Today()
	ym := calendar.Of(today)

	obligations, err := loadObligations(s.db)
	if err != nil {
		return nil, err
	}
	cards, err := loadCards(s.db)
	if err != nil {
		return nil, err
	}
	entries, err := loadMonth(s.db, ym)
	if err != nil {
		return nil, err
	}

	res := ledger.GenerateMonth(entries, obligations, cards, ym, today)
	result := &GenerateResult{Month: ym.String(), Added: []models.Transaction{}, Settled: []string{}}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		added, err := insertEntries(tx, res.Added)
		if err != nil {
			return err
		}
		if added != nil {
			result.Added = added
		}

		var pending []models.Transaction
		if err := tx.Where("settled = ? AND date <= ?", false, today).Find(&pending).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		_, flipped := ledger.ReconcileSettledStatus(pending, today)
		if len(flipped) == 0 {
			return nil
		}
		if err := tx.Model(&models.Transaction{}).Where("id IN ?", flipped).Update("settled", true).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		result.Settled = flipped
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := range result.Added {
		if result.Added[i].IsCredit() && !result.Added[i].IsSettlement {
			logCardFallback(cards, &result.Added[i])
		}
	}
	if len(result.Added) > 0 || len(result.Settled) > 0 {
		logger.Get().Infow("recurring generation",
			"month", result.Month, "added", len(result.Added), "settled", len(result.Settled))
	}
	return result, nil
}

// Summary lists what each obligation is due to pay in ym.
func (s *recurringService) Summary(ym calendar.YearMonth) (*RecurringSummary, error) {
	obligations, err := loadObligations(s.db)
	if err != nil {
		return nil, err
	}

	today := s.clock.Today()
	summary := &RecurringSummary{Month: ym.String(), Items: []RecurringSummaryItem{}}
	for i := range obligations {
		ob := &obligations[i]
		occs := recurring.Expand(ob, ym, today)
		if len(occs) == 0 {
			continue
		}
		item := RecurringSummaryItem{
			ObligationID: ob.ID,
			Name:         ob.Name,
			Type:         ob.Type,
			Amount:       recurring.MonthlyTotal(ob, ym),
		}
		for _, o := range occs {
			item.Occurrences = append(item.Occurrences, o.Date)
		}
		summary.Items = append(summary.Items, item)
		summary.Total += item.Amount
	}
	return summary, nil
}
