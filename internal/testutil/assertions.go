package testutil

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/express22chief-pixel/money-planner-sub000/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertDay checks that got falls on the calendar day want (YYYY-MM-DD).
// Dates read back from the database may carry a different location, so only
// the day is compared.
func AssertDay(t *testing.T, got time.Time, want string) {
	t.Helper()

	if day := got.Format(time.DateOnly); day != want {
		t.Errorf("expected date %s, got %s", want, day)
	}
}

// AssertStatus checks the HTTP status carried by an *AppError.
func AssertStatus(t *testing.T, err error, status int) {
	t.Helper()

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	if appErr.StatusCode != status {
		t.Errorf("expected status %d, got %d (%s)", status, appErr.StatusCode, appErr.Code)
	}
}
