// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var yearMonthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("transaction_type", oneOf("income", "expense"))
	_ = v.RegisterValidation("payment_method", oneOf("cash", "credit"))
	_ = v.RegisterValidation("recurrence_kind", oneOf("monthly-date", "monthly-weekday", "weekly"))
	_ = v.RegisterValidation("obligation_type", oneOf("expense", "investment", "fund", "insurance"))
	_ = v.RegisterValidation("asset_bucket", oneOf("savings", "investment", "tax_advantaged", "dry_powder"))
	_ = v.RegisterValidation("risk_profile", oneOf("low", "medium", "high"))
	_ = v.RegisterValidation("lump_sum_frequency", oneOf("yearly", "semiannual", "quarterly"))
	_ = v.RegisterValidation("year_month", validateYearMonth)
	_ = v.RegisterValidation("week_ordinal", validateWeekOrdinal)
}

func oneOf(values ...string) validator.Func {
	allowed := make(map[string]bool, len(values))
	for _, v := range values {
		allowed[v] = true
	}
	return func(fl validator.FieldLevel) bool {
		return allowed[fl.Field().String()]
	}
}

func validateYearMonth(fl validator.FieldLevel) bool {
	return yearMonthRegex.MatchString(fl.Field().String())
}

// validateWeekOrdinal accepts 1..5 and -1 (last occurrence).
func validateWeekOrdinal(fl validator.FieldLevel) bool {
	n := fl.Field().Int()
	return n == -1 || (n >= 1 && n <= 5)
}
