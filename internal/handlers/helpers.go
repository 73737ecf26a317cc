package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/express22chief-pixel/money-planner-sub000/internal/calendar"
	apperrors "github.com/express22chief-pixel/money-planner-sub000/internal/errors"
	"github.com/express22chief-pixel/money-planner-sub000/internal/logger"
	"github.com/express22chief-pixel/money-planner-sub000/internal/services"
	"github.com/express22chief-pixel/money-planner-sub000/internal/uuid"
)

// parsePathID validates a UUID path parameter.
// Returns ErrInvalidInput if the parameter is not a valid UUID.
func parsePathID(c *gin.Context, param string) (string, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// parseDate accepts YYYY-MM-DD or RFC3339 and returns the calendar day.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return calendar.Day(t), nil
}

// parseOptionalDate parses s when it is set.
func parseOptionalDate(s *string, field string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid "+field+" format, use YYYY-MM-DD")
	}
	return &t, nil
}

// monthQuery reads the "month" query parameter, defaulting to the current
// month.
func monthQuery(c *gin.Context, clock services.Clock) (calendar.YearMonth, error) {
	v := c.Query("month")
	if v == "" {
		return calendar.Of(clock.Today()), nil
	}
	ym, err := calendar.ParseYearMonth(v)
	if err != nil {
		return calendar.YearMonth{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid month, use YYYY-MM")
	}
	return ym, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

func invalidInput(err error) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
