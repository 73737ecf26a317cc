package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/express22chief-pixel/money-planner-sub000/internal/calendar"
	apperrors "github.com/express22chief-pixel/money-planner-sub000/internal/errors"
	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
)

// loadMonth returns the entries dated in ym together with the drawdown
// entries of its purchases, whichever month those fall in.
func loadMonth(db *gorm.DB, ym calendar.YearMonth) ([]models.Transaction, error) {
	var entries []models.Transaction
	if err := db.Where("date >= ? AND date < ?", ym.First(), ym.AddMonths(1).First()).
		Order("date ASC").Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	seen := make(map[string]bool, len(entries))
	var parents []string
	for i := range entries {
		seen[entries[i].ID] = true
		if entries[i].IsCredit() && !entries[i].IsSettlement {
			parents = append(parents, entries[i].ID)
		}
	}
	if len(parents) == 0 {
		return entries, nil
	}

	var pairs []models.Transaction
	if err := db.Where("is_settlement = ? AND parent_id IN ?", true, parents).Find(&pairs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, p := range pairs {
		if !seen[p.ID] {
			entries = append(entries, p)
		}
	}
	return entries, nil
}

func loadObligations(db *gorm.DB) ([]models.RecurringObligation, error) {
	var obligations []models.RecurringObligation
	if err := db.Order("created_at ASC").Find(&obligations).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return obligations, nil
}

// insertEntries stores generated entries, skipping ids that already exist,
// and returns the entries actually inserted. A generated entry edited by hand
// keeps its id, so it is re-derived but not stored again.
func insertEntries(tx *gorm.DB, entries []models.Transaction) ([]models.Transaction, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	ids := make([]string, len(entries))
	for i := range entries {
		ids[i] = entries[i].ID
	}
	var existing []string
	if err := tx.Unscoped().Model(&models.Transaction{}).Where("id IN ?", ids).Pluck("id", &existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	skip := make(map[string]bool, len(existing))
	for _, id := range existing {
		skip[id] = true
	}

	fresh := make([]models.Transaction, 0, len(entries))
	for _, e := range entries {
		if !skip[e.ID] {
			fresh = append(fresh, e)
		}
	}
	if len(fresh) == 0 {
		return nil, nil
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fresh).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return fresh, nil
}

// loadObligationsUnscoped includes deleted obligations, whose past entries
// still need classifying.
func loadObligationsUnscoped(db *gorm.DB) ([]models.RecurringObligation, error) {
	return loadObligations(db.Unscoped())
}
