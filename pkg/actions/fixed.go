package actions

import (
	"github.com/arthur-debert/catalogpromo/pkg/errors"
	"github.com/arthur-debert/catalogpromo/pkg/registry"
)

// FixedDiscountName is the handler name of the fixed discount action
const FixedDiscountName = "fixed_discount"

// FixedDiscount lowers catalog prices by a fixed amount, expressed in
// minor currency units.
type FixedDiscount struct{}

// NewFixedDiscount creates a fixed discount action
func NewFixedDiscount(options map[string]interface{}) (Action, error) {
	return &FixedDiscount{}, nil
}

func (a *FixedDiscount) Name() string {
	return FixedDiscountName
}

func (a *FixedDiscount) Description() string {
	return "Lowers product prices by a fixed amount"
}

func (a *FixedDiscount) ValidateConfiguration(configuration map[string]interface{}) error {
	amount, err := requireInt(configuration, "amount")
	if err != nil {
		return err
	}
	if amount < 0 {
		return errors.Newf(errors.ErrActionConfigInvalid, "amount cannot be negative, got %d", amount).
			WithDetail("key", "amount")
	}
	return nil
}

func init() {
	registry.MustRegister(factories, FixedDiscountName, Factory(NewFixedDiscount))
}
