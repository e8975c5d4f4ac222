package config

import (
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the YAML representation of calendar days.
const DateLayout = "2006-01-02"

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	weekdays = map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
			_, ok := weekdays[strings.ToLower(fl.Field().String())]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// ParseWeekday converts a weekday name into time.Weekday. Empty input means Sunday.
func ParseWeekday(name string) (time.Weekday, bool) {
	if strings.TrimSpace(name) == "" {
		return time.Sunday, true
	}
	day, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	return day, ok
}
