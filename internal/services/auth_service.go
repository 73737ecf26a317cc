package services

import (
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/express22chief-pixel/money-planner-sub000/internal/errors"
	"github.com/express22chief-pixel/money-planner-sub000/internal/logger"
)

// authService checks the owner's passphrase.
type authService struct {
	passphraseHash []byte
}

// NewAuthService creates a new AuthServicer for the bcrypt hash of the
// owner's passphrase. An empty hash rejects every attempt.
func NewAuthService(passphraseHash string) AuthServicer {
	return &authService{passphraseHash: []byte(passphraseHash)}
}

// VerifyPassphrase returns ErrInvalidCredentials unless passphrase matches.
func (s *authService) VerifyPassphrase(passphrase string) error {
	if len(s.passphraseHash) == 0 {
		logger.Get().Warn("login attempted but OWNER_PASSPHRASE_HASH is not set")
		return apperrors.ErrInvalidCredentials
	}
	if passphrase == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "passphrase is required")
	}
	if err := bcrypt.CompareHashAndPassword(s.passphraseHash, []byte(passphrase)); err != nil {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}

// HashPassphrase returns the bcrypt hash to store in OWNER_PASSPHRASE_HASH.
func HashPassphrase(passphrase string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return string(hash), nil
}
