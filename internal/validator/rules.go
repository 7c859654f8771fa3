package validator

import (
	"log"

	"gigflow_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the application's custom validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-gig-status", validateGigStatus)
	mustRegister("is-bid-status", validateBidStatus)
	mustRegister("is-notification-type", validateNotificationType)
}

func validateGigStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is left to 'required'
	}
	return models.GigStatus(value).Valid()
}

func validateBidStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.BidStatus(value).Valid()
}

func validateNotificationType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.NotificationType(value).Valid()
}
