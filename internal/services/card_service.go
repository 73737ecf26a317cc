package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/express22chief-pixel/money-planner-sub000/internal/errors"
	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
)

// cardService handles credit card business logic.
type cardService struct {
	db *gorm.DB
}

// NewCardService creates a new CardServicer.
func NewCardService(db *gorm.DB) CardServicer {
	return &cardService{db: db}
}

func validateCard(in CardInput) (*models.CreditCard, error) {
	if in.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if in.ClosingDay < 1 || in.ClosingDay > 31 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "closing_day must be between 1 and 31")
	}
	if in.PaymentDay < 1 || in.PaymentDay > 31 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "payment_day must be between 1 and 31")
	}
	return &models.CreditCard{
		Name:               in.Name,
		ClosingDay:         in.ClosingDay,
		PaymentMonthOffset: max(in.PaymentMonthOffset, 1),
		PaymentDay:         in.PaymentDay,
	}, nil
}

// CreateCard registers a card.
func (s *cardService) CreateCard(in CardInput) (*models.CreditCard, error) {
	card, err := validateCard(in)
	if err != nil {
		return nil, err
	}
	if err := s.db.Create(card).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return card, nil
}

// GetCards lists cards in registration order; the first one is the fallback
// for purchases whose card is unknown.
func (s *cardService) GetCards() ([]models.CreditCard, error) {
	return loadCards(s.db)
}

func (s *cardService) getCard(id string) (*models.CreditCard, error) {
	var card models.CreditCard
	if err := s.db.Where("id = ?", id).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &card, nil
}

// UpdateCard changes a card's billing rule. Existing drawdown entries keep
// their dates until their purchase is edited.
func (s *cardService) UpdateCard(id string, in CardInput) (*models.CreditCard, error) {
	existing, err := s.getCard(id)
	if err != nil {
		return nil, err
	}
	card, err := validateCard(in)
	if err != nil {
		return nil, err
	}
	card.Base = existing.Base
	if err := s.db.Save(card).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return card, nil
}

// DeleteCard removes a card. Purchases still referencing it fall back to the
// first remaining card.
func (s *cardService) DeleteCard(id string) error {
	if _, err := s.getCard(id); err != nil {
		return err
	}
	if err := s.db.Delete(&models.CreditCard{}, "id = ?", id).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
