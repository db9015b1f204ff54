package registry

import (
	"context"
	"reflect"
	"sort"

	"github.com/arthur-debert/catalogpromo/pkg/errors"
	"github.com/arthur-debert/catalogpromo/pkg/logging"
	"github.com/rs/zerolog"
)

// Tag attribute names every tagged handler must carry
const (
	AttributeType  = "type"
	AttributeLabel = "label"
)

// TaggedHandler is one provider discovered for the registry
type TaggedHandler[H any] struct {
	// ID identifies the provider. It is only used for ordering.
	ID string
	// Attributes holds the tag attributes, `type` and `label` are required
	Attributes map[string]string
	// Handler is the implementation registered under the type
	Handler H
}

// Type returns the `type` tag attribute
func (t TaggedHandler[H]) Type() string {
	return t.Attributes[AttributeType]
}

// Label returns the `label` tag attribute
func (t TaggedHandler[H]) Label() string {
	return t.Attributes[AttributeLabel]
}

// HasAttributes reports whether both `type` and `label` are declared.
// An empty value still counts as declared.
func (t TaggedHandler[H]) HasAttributes() bool {
	_, hasType := t.Attributes[AttributeType]
	_, hasLabel := t.Attributes[AttributeLabel]
	return hasType && hasLabel
}

// Tag builds a TaggedHandler from the two required attributes
func Tag[H any](id, typ, label string, handler H) TaggedHandler[H] {
	return TaggedHandler[H]{
		ID: id,
		Attributes: map[string]string{
			AttributeType:  typ,
			AttributeLabel: label,
		},
		Handler: handler,
	}
}

// Provider discovers tagged handlers
type Provider[H any] interface {
	ListTaggedHandlers(ctx context.Context) ([]TaggedHandler[H], error)
}

// ProviderFunc adapts a function to the Provider interface
type ProviderFunc[H any] func(ctx context.Context) ([]TaggedHandler[H], error)

// ListTaggedHandlers calls f
func (f ProviderFunc[H]) ListTaggedHandlers(ctx context.Context) ([]TaggedHandler[H], error) {
	return f(ctx)
}

// Override records a type whose handler was replaced by a provider
// sorting later
type Override struct {
	Type       string `json:"type" yaml:"type" toml:"type"`
	PreviousID string `json:"previous_id" yaml:"previous_id" toml:"previous_id"`
	ID         string `json:"id" yaml:"id" toml:"id"`
}

type buildOptions struct {
	strict bool
	logger zerolog.Logger
}

// BuildOption customizes Build
type BuildOption func(*buildOptions)

// WithStrict makes a duplicate type fail the build instead of replacing
// the earlier handler
func WithStrict(strict bool) BuildOption {
	return func(o *buildOptions) {
		o.strict = strict
	}
}

// WithLogger sets the logger used for build diagnostics
func WithLogger(logger zerolog.Logger) BuildOption {
	return func(o *buildOptions) {
		o.logger = logger
	}
}

// Build validates tagged and folds it into a Table.
//
// Handlers are applied in ascending provider id order, so the result does
// not depend on the order of tagged. When two providers declare the same
// type the one with the greatest id wins, unless WithStrict is set. Any
// error aborts the build and no table is returned.
func Build[H any](tagged []TaggedHandler[H], opts ...BuildOption) (*Table[H], error) {
	o := buildOptions{logger: logging.GetLogger("registry")}
	for _, opt := range opts {
		opt(&o)
	}
	defer logging.LogOperationStart(o.logger, "registry.build")()

	sorted := make([]TaggedHandler[H], len(tagged))
	copy(sorted, tagged)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].ID == sorted[i-1].ID {
			return nil, errors.Newf(errors.ErrInvalidInput, "provider '%s' is tagged more than once", sorted[i].ID).
				WithDetail("id", sorted[i].ID)
		}
	}

	table := newTable[H](len(sorted))
	for _, t := range sorted {
		if !t.HasAttributes() {
			return nil, errors.Newf(errors.ErrActionAttributeMissing,
				"tagged action '%s' needs to have `type` and `label` attributes", t.ID).
				WithDetail("id", t.ID)
		}
		typ, label := t.Type(), t.Label()
		if isNil(t.Handler) {
			return nil, errors.Newf(errors.ErrActionHandlerMissing, "tagged action '%s' has no handler", t.ID).
				WithDetail("id", t.ID)
		}

		if previous, exists := table.providers[typ]; exists {
			if o.strict {
				return nil, errors.Newf(errors.ErrActionDuplicate,
					"action type '%s' is declared by both '%s' and '%s'", typ, previous, t.ID).
					WithDetails(map[string]interface{}{"type": typ, "id": t.ID, "previous_id": previous})
			}
			o.logger.Warn().
				Str("type", typ).
				Str("previous", previous).
				Str("id", t.ID).
				Msg("Action type declared twice, later provider wins")
			table.overrides = append(table.overrides, Override{Type: typ, PreviousID: previous, ID: t.ID})
		} else {
			table.order = append(table.order, typ)
		}

		table.handlers[typ] = t.Handler
		table.labels[typ] = label
		table.providers[typ] = t.ID
	}

	o.logger.Debug().
		Int("providers", len(sorted)).
		Int("types", len(table.order)).
		Int("overrides", len(table.overrides)).
		Msg("Registry built")

	return table, nil
}

// BuildFrom lists the handlers of provider and builds a Table from them
func BuildFrom[H any](ctx context.Context, provider Provider[H], opts ...BuildOption) (*Table[H], error) {
	tagged, err := provider.ListTaggedHandlers(ctx)
	if err != nil {
		return nil, err
	}
	return Build(tagged, opts...)
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
