package actions

import (
	"context"
	"sort"

	"github.com/arthur-debert/catalogpromo/pkg/errors"
	"github.com/arthur-debert/catalogpromo/pkg/registry"
)

// Action is a catalog promotion action handler
type Action interface {
	// Name returns the handler name the action was registered under
	Name() string

	// Description returns a human-readable description of the action
	Description() string

	// ValidateConfiguration checks the configuration a promotion would
	// pass to this action
	ValidateConfiguration(configuration map[string]interface{}) error
}

// Factory creates an action from its service options
type Factory func(options map[string]interface{}) (Action, error)

// Catalog maps action types to their handlers and labels
type Catalog = registry.Table[Action]

// TaggedAction is an action service discovered for the catalog
type TaggedAction = registry.TaggedHandler[Action]

var factories = registry.New[Factory]()

// RegisterFactory registers a factory function for creating actions.
func RegisterFactory(name string, factory Factory) error {
	return factories.Register(name, factory)
}

// GetFactory retrieves an action factory by name.
func GetFactory(name string) (Factory, error) {
	factory, err := factories.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrActionHandlerMissing, "action handler '%s' is not registered", name).
			WithDetail("handler", name)
	}
	return factory, nil
}

// FactoryNames returns the names of every registered factory
func FactoryNames() []string {
	names := factories.List()
	sort.Strings(names)
	return names
}

// NewAction creates an action by handler name with the given options.
func NewAction(name string, options map[string]interface{}) (Action, error) {
	factory, err := GetFactory(name)
	if err != nil {
		return nil, err
	}

	action, err := factory(options)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrActionConfigInvalid, "failed to create action %s", name).
			WithDetail("handler", name)
	}
	return action, nil
}

// BuildCatalog discovers the tagged actions of provider and builds the catalog
func BuildCatalog(ctx context.Context, provider registry.Provider[Action], strict bool) (*Catalog, error) {
	return registry.BuildFrom(ctx, provider, registry.WithStrict(strict))
}
