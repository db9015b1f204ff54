package config

import (
	"context"

	"github.com/arthur-debert/catalogpromo/pkg/actions"
	"github.com/arthur-debert/catalogpromo/pkg/errors"
	"github.com/arthur-debert/catalogpromo/pkg/logging"
)

// ListTaggedHandlers creates the action of every declared service.
// Attribute validation is left to the registry build.
func (c *Config) ListTaggedHandlers(ctx context.Context) ([]actions.TaggedAction, error) {
	logger := logging.GetLogger("config.provider")

	tagged := make([]actions.TaggedAction, 0, len(c.Actions))
	for _, service := range c.Actions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if service.ID == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "action service with handler '%s' has no id", service.Handler).
				WithDetail("handler", service.Handler)
		}

		action, err := actions.NewAction(service.Handler, service.Options)
		if err != nil {
			return nil, errors.Wrapf(err, errors.GetErrorCode(err), "action service '%s'", service.ID).
				WithDetail("id", service.ID)
		}

		attributes := make(map[string]string, len(service.Tag))
		for k, v := range service.Tag {
			attributes[k] = v
		}
		tagged = append(tagged, actions.TaggedAction{
			ID:         service.ID,
			Attributes: attributes,
			Handler:    action,
		})

		logger.Trace().Str("id", service.ID).Str("handler", service.Handler).Msg("Discovered action service")
	}
	return tagged, nil
}

// Catalog builds the action catalog from the declared services
func (c *Config) Catalog(ctx context.Context) (*actions.Catalog, error) {
	return actions.BuildCatalog(ctx, c, c.Registry.Strict)
}
