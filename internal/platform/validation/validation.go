package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
)

// RegisterCustomValidators attaches domain-specific validators to gin's
// binding engine. Must be called once before routes are served.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("frequency", validFrequency)
}

// validFrequency accepts the supported recurrence frequencies.
func validFrequency(fl validator.FieldLevel) bool {
	return domain.Frequency(fl.Field().String()).IsValid()
}
