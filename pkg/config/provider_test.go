package config

import (
	"context"
	"testing"

	"github.com/arthur-debert/catalogpromo/pkg/actions"
	"github.com/arthur-debert/catalogpromo/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_CatalogFromDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Default()
	require.NoError(t, err)

	catalog, err := cfg.Catalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"fixed_discount":      "Fixed discount",
		"percentage_discount": "Percentage discount",
	}, catalog.Labels())

	action, err := catalog.Lookup("percentage_discount")
	require.NoError(t, err)
	assert.Equal(t, actions.PercentageDiscountName, action.Name())
}

func TestConfig_ListTaggedHandlers(t *testing.T) {
	t.Run("unknown handler", func(t *testing.T) {
		cfg := &Config{Actions: []ActionService{{ID: "x", Handler: "free_shipping"}}}
		_, err := cfg.ListTaggedHandlers(context.Background())
		require.True(t, errors.IsErrorCode(err, errors.ErrActionHandlerMissing), "got %v", err)
		assert.Equal(t, "x", errors.GetErrorDetails(err)["id"])
	})

	t.Run("missing id", func(t *testing.T) {
		cfg := &Config{Actions: []ActionService{{Handler: actions.FixedDiscountName}}}
		_, err := cfg.ListTaggedHandlers(context.Background())
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		cfg := &Config{Actions: []ActionService{{ID: "x", Handler: actions.FixedDiscountName}}}
		_, err := cfg.ListTaggedHandlers(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("tag attributes are copied", func(t *testing.T) {
		tag := map[string]string{"type": "fixed", "label": "Fixed"}
		cfg := &Config{Actions: []ActionService{{ID: "x", Handler: actions.FixedDiscountName, Tag: tag}}}
		tagged, err := cfg.ListTaggedHandlers(context.Background())
		require.NoError(t, err)
		require.Len(t, tagged, 1)
		tagged[0].Attributes["type"] = "changed"
		assert.Equal(t, "fixed", tag["type"])
	})
}

func TestConfig_CatalogMissingAttributes(t *testing.T) {
	cfg := &Config{Actions: []ActionService{{
		ID:      "shop.action.fixed",
		Handler: actions.FixedDiscountName,
		Tag:     map[string]string{"label": "Fixed"},
	}}}

	catalog, err := cfg.Catalog(context.Background())
	assert.Nil(t, catalog)
	assert.True(t, errors.IsErrorCode(err, errors.ErrActionAttributeMissing), "got %v", err)
}

func TestConfig_CatalogStrictDuplicates(t *testing.T) {
	cfg := &Config{
		Registry: RegistryConfig{Strict: true},
		Actions: []ActionService{
			{ID: "a", Handler: actions.FixedDiscountName, Tag: map[string]string{"type": "discount", "label": "A"}},
			{ID: "b", Handler: actions.FixedDiscountName, Tag: map[string]string{"type": "discount", "label": "B"}},
		},
	}

	_, err := cfg.Catalog(context.Background())
	assert.True(t, errors.IsErrorCode(err, errors.ErrActionDuplicate), "got %v", err)

	cfg.Registry.Strict = false
	catalog, err := cfg.Catalog(context.Background())
	require.NoError(t, err)
	label, _ := catalog.Label("discount")
	assert.Equal(t, "B", label)
}
