package services

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"github.com/express22chief-pixel/money-planner-sub000/internal/balance"
	"github.com/express22chief-pixel/money-planner-sub000/internal/calendar"
	apperrors "github.com/express22chief-pixel/money-planner-sub000/internal/errors"
	"github.com/express22chief-pixel/money-planner-sub000/internal/logger"
	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
	"github.com/express22chief-pixel/money-planner-sub000/internal/pagination"
	"github.com/express22chief-pixel/money-planner-sub000/internal/uuid"
)

// assetService maintains the asset snapshot and its month-end history.
type assetService struct {
	db    *gorm.DB
	clock Clock
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(db *gorm.DB, clock Clock) AssetServicer {
	return &assetService{db: db, clock: clock}
}

// GetAssets returns the asset snapshot, creating an empty one on first use.
func (s *assetService) GetAssets() (*models.AssetSnapshot, error) {
	return loadAssets(s.db)
}

func loadAssets(db *gorm.DB) (*models.AssetSnapshot, error) {
	var assets models.AssetSnapshot
	err := db.Order("created_at ASC").First(&assets).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		assets = models.AssetSnapshot{}
		if err := db.Create(&assets).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &assets, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &assets, nil
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// UpdateAssets replaces all four balances.
func (s *assetService) UpdateAssets(in AssetInput) (*models.AssetSnapshot, error) {
	for _, v := range []float64{in.Savings, in.Investment, in.TaxAdvantaged, in.DryPowder} {
		if !validAmount(v) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "balances must be non-negative numbers")
		}
	}

	assets, err := loadAssets(s.db)
	if err != nil {
		return nil, err
	}
	assets.Savings = in.Savings
	assets.Investment = in.Investment
	assets.TaxAdvantaged = in.TaxAdvantaged
	assets.DryPowder = in.DryPowder
	if err := s.db.Save(assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return assets, nil
}

// Transfer moves amount between two buckets.
func (s *assetService) Transfer(from, to models.AssetBucket, amount float64) (*models.AssetSnapshot, error) {
	if !validAmount(amount) || amount == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if from == to {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "source and destination must differ")
	}

	var result *models.AssetSnapshot
	err := s.db.Transaction(func(tx *gorm.DB) error {
		assets, err := loadAssets(tx)
		if err != nil {
			return err
		}
		src, dst := assets.Bucket(from), assets.Bucket(to)
		if src == nil || dst == nil {
			return apperrors.ErrInvalidBucket
		}
		if *src < amount {
			return apperrors.ErrInsufficientBalance
		}
		*src -= amount
		*dst += amount
		if err := tx.Save(assets).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		result = assets
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CloseMonth adds the month's cash balance to savings and moves the cash
// paid into asset transfers from savings to the taxable investment bucket,
// then records the resulting balances. Net worth grows by the cash balance
// only. A month can be closed once, and not before it has started.
func (s *assetService) CloseMonth(ym calendar.YearMonth) (*models.AssetHistory, error) {
	if ym.After(calendar.Of(s.clock.Today())) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "cannot close a future month")
	}

	var history *models.AssetHistory
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var closed int64
		if err := tx.Model(&models.AssetHistory{}).Where("year_month = ?", ym.String()).Count(&closed).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if closed > 0 {
			return apperrors.ErrMonthAlreadyClosed
		}

		entries, err := loadMonth(tx, ym)
		if err != nil {
			return err
		}
		obligations, err := loadObligationsUnscoped(tx)
		if err != nil {
			return err
		}
		b := balance.ComputeMonthlyBalance(entries, ym, obligations)

		assets, err := loadAssets(tx)
		if err != nil {
			return err
		}
		assets.Savings += float64(b.CFBalance - b.SettledTransfer)
		assets.Investment += float64(b.SettledTransfer)
		if assets.Savings < 0 {
			logger.Get().Warnw("savings negative after month close",
				"month", ym.String(), "savings", assets.Savings)
		}
		if err := tx.Save(assets).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		history = &models.AssetHistory{
			ID:                 uuid.New(),
			YearMonth:          ym.String(),
			RecordedAt:         s.clock.Now().UTC(),
			CFBalance:          b.CFBalance,
			InvestmentTransfer: b.SettledTransfer,
			Savings:            assets.Savings,
			Investment:         assets.Investment,
			TaxAdvantaged:      assets.TaxAdvantaged,
			DryPowder:          assets.DryPowder,
			Total:              assets.Total(),
		}
		if err := tx.Create(history).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return history, nil
}

// GetHistory lists closed months, most recent first.
func (s *assetService) GetHistory(page pagination.PageRequest) (*pagination.PageResponse[models.AssetHistory], error) {
	result, err := pagination.Find[models.AssetHistory](s.db.Model(&models.AssetHistory{}), page, "year_month DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}
