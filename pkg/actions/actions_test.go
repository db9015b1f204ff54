package actions

import (
	"context"
	"testing"

	"github.com/arthur-debert/catalogpromo/pkg/errors"
	"github.com/arthur-debert/catalogpromo/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinFactoriesRegistered(t *testing.T) {
	names := FactoryNames()
	assert.Contains(t, names, PercentageDiscountName)
	assert.Contains(t, names, FixedDiscountName)
}

func TestNewAction(t *testing.T) {
	t.Run("known handler", func(t *testing.T) {
		action, err := NewAction(FixedDiscountName, nil)
		require.NoError(t, err)
		assert.Equal(t, FixedDiscountName, action.Name())
		assert.NotEmpty(t, action.Description())
	})

	t.Run("unknown handler", func(t *testing.T) {
		_, err := NewAction("buy_one_get_one", nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrActionHandlerMissing), "got %v", err)
		assert.Contains(t, err.Error(), "buy_one_get_one")
	})

	t.Run("invalid options", func(t *testing.T) {
		_, err := NewAction(PercentageDiscountName, map[string]interface{}{"max": 5})
		assert.True(t, errors.IsErrorCode(err, errors.ErrActionConfigInvalid), "got %v", err)
	})
}

func TestRegisterFactory_Duplicate(t *testing.T) {
	err := RegisterFactory(FixedDiscountName, NewFixedDiscount)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists), "got %v", err)
}

func TestPercentageDiscount_ValidateConfiguration(t *testing.T) {
	capped, err := NewPercentageDiscount(map[string]interface{}{"max": 0.5})
	require.NoError(t, err)
	uncapped, err := NewPercentageDiscount(nil)
	require.NoError(t, err)

	tests := []struct {
		name          string
		action        Action
		configuration map[string]interface{}
		wantErr       bool
	}{
		{"ratio", uncapped, map[string]interface{}{"percentage": 0.25}, false},
		{"full discount", uncapped, map[string]interface{}{"percentage": 1}, false},
		{"string from cli", uncapped, map[string]interface{}{"percentage": "0.1"}, false},
		{"missing", uncapped, map[string]interface{}{}, true},
		{"zero", uncapped, map[string]interface{}{"percentage": 0}, true},
		{"above one", uncapped, map[string]interface{}{"percentage": 1.5}, true},
		{"not a number", uncapped, map[string]interface{}{"percentage": "ten"}, true},
		{"above cap", capped, map[string]interface{}{"percentage": 0.6}, true},
		{"within cap", capped, map[string]interface{}{"percentage": 0.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.action.ValidateConfiguration(tt.configuration)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrActionConfigInvalid), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFixedDiscount_ValidateConfiguration(t *testing.T) {
	action, err := NewFixedDiscount(nil)
	require.NoError(t, err)

	tests := []struct {
		name          string
		configuration map[string]interface{}
		wantErr       bool
	}{
		{"int", map[string]interface{}{"amount": 500}, false},
		{"int64 from toml", map[string]interface{}{"amount": int64(0)}, false},
		{"string from cli", map[string]interface{}{"amount": "250"}, false},
		{"whole float from json", map[string]interface{}{"amount": float64(100)}, false},
		{"fractional float", map[string]interface{}{"amount": 1.5}, true},
		{"negative", map[string]interface{}{"amount": -1}, true},
		{"missing", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := action.ValidateConfiguration(tt.configuration)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrActionConfigInvalid), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBuildCatalog(t *testing.T) {
	percentage, err := NewAction(PercentageDiscountName, nil)
	require.NoError(t, err)
	fixed, err := NewAction(FixedDiscountName, nil)
	require.NoError(t, err)

	provider := registry.ProviderFunc[Action](func(ctx context.Context) ([]TaggedAction, error) {
		return []TaggedAction{
			registry.Tag("b_action", "discount", "Percentage discount", percentage),
			registry.Tag("a_action", "discount", "Fixed discount", fixed),
		}, nil
	})

	catalog, err := BuildCatalog(context.Background(), provider, false)
	require.NoError(t, err)
	action, err := catalog.Lookup("discount")
	require.NoError(t, err)
	assert.Equal(t, PercentageDiscountName, action.Name())

	_, err = BuildCatalog(context.Background(), provider, true)
	assert.True(t, errors.IsErrorCode(err, errors.ErrActionDuplicate), "got %v", err)
}
