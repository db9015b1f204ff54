package actions

import (
	"github.com/arthur-debert/catalogpromo/pkg/errors"
	"github.com/spf13/cast"
)

func requireFloat(configuration map[string]interface{}, key string) (float64, error) {
	raw, ok := configuration[key]
	if !ok || raw == nil {
		return 0, errors.Newf(errors.ErrActionConfigInvalid, "configuration key '%s' is required", key).
			WithDetail("key", key)
	}
	value, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrActionConfigInvalid, "configuration key '%s' must be a number", key).
			WithDetail("key", key)
	}
	return value, nil
}

func requireInt(configuration map[string]interface{}, key string) (int64, error) {
	raw, ok := configuration[key]
	if !ok || raw == nil {
		return 0, errors.Newf(errors.ErrActionConfigInvalid, "configuration key '%s' is required", key).
			WithDetail("key", key)
	}
	switch raw.(type) {
	case float32, float64:
		f := cast.ToFloat64(raw)
		if f != float64(int64(f)) {
			return 0, errors.Newf(errors.ErrActionConfigInvalid, "configuration key '%s' must be an integer", key).
				WithDetail("key", key)
		}
	}
	value, err := cast.ToInt64E(raw)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrActionConfigInvalid, "configuration key '%s' must be an integer", key).
			WithDetail("key", key)
	}
	return value, nil
}
