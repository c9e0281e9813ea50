package handlers

import (
	"github.com/go-playground/validator/v10"

	"thehook-backend/internal/models"
)

var validate = validator.New()

type validationError struct {
	msg string
}

func (e validationError) Error() string { return e.msg }

// OrderPolicy is the pre-creation validation hook. The zero value accepts
// everything the schema layer accepts: empty item lists and zero or negative
// quantities go through and the calculator prices them as-is. Strict
// deployments flip the fields on via configuration.
type OrderPolicy struct {
	RequireItems            bool
	RequirePositiveQuantity bool
}

// Check runs the configured rules against the already-bound line items.
func (p OrderPolicy) Check(items []models.OrderItem) error {
	if p.RequireItems && len(items) == 0 {
		return validationError{msg: "at least one item is required"}
	}
	if p.RequirePositiveQuantity {
		for _, item := range items {
			if err := validate.Var(item.Quantity, "gt=0"); err != nil {
				return validationError{msg: "quantity must be greater than zero"}
			}
		}
	}
	return nil
}
