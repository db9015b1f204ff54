package actions

import (
	"github.com/arthur-debert/catalogpromo/pkg/errors"
	"github.com/arthur-debert/catalogpromo/pkg/registry"
	"github.com/spf13/cast"
)

// PercentageDiscountName is the handler name of the percentage discount action
const PercentageDiscountName = "percentage_discount"

// PercentageDiscount reduces catalog prices by a ratio of the price.
// Its configuration carries `percentage`, a ratio in (0, max].
type PercentageDiscount struct {
	max float64
}

// NewPercentageDiscount creates a percentage discount action. The `max`
// option caps the accepted ratio and defaults to 1.
func NewPercentageDiscount(options map[string]interface{}) (Action, error) {
	action := &PercentageDiscount{max: 1}
	if raw, ok := options["max"]; ok {
		limit, err := cast.ToFloat64E(raw)
		if err != nil || limit <= 0 || limit > 1 {
			return nil, errors.Newf(errors.ErrActionConfigInvalid, "option 'max' must be a ratio in (0, 1], got %v", raw)
		}
		action.max = limit
	}
	return action, nil
}

func (a *PercentageDiscount) Name() string {
	return PercentageDiscountName
}

func (a *PercentageDiscount) Description() string {
	return "Lowers product prices by a percentage of the original price"
}

func (a *PercentageDiscount) ValidateConfiguration(configuration map[string]interface{}) error {
	percentage, err := requireFloat(configuration, "percentage")
	if err != nil {
		return err
	}
	if percentage <= 0 || percentage > a.max {
		return errors.Newf(errors.ErrActionConfigInvalid, "percentage must be greater than 0 and at most %g, got %g", a.max, percentage).
			WithDetail("key", "percentage")
	}
	return nil
}

func init() {
	registry.MustRegister(factories, PercentageDiscountName, Factory(NewPercentageDiscount))
}
