package registry

import (
	"sync"

	"github.com/arthur-debert/catalogpromo/pkg/errors"
)

// Builder collects tagged handlers one at a time before producing a Table.
// Modules call Register during startup; Finalize builds the table and
// freezes the builder.
type Builder[H any] struct {
	mu      sync.Mutex
	tagged  Registry[TaggedHandler[H]]
	frozen  bool
	options []BuildOption
}

// NewBuilder creates an empty Builder. opts are applied on Finalize.
func NewBuilder[H any](opts ...BuildOption) *Builder[H] {
	return &Builder[H]{
		tagged:  New[TaggedHandler[H]](),
		options: opts,
	}
}

// Register adds a provider with the given type and label
func (b *Builder[H]) Register(id, typ, label string, handler H) error {
	return b.Add(Tag(id, typ, label, handler))
}

// Add adds a tagged handler. Provider ids must be unique.
func (b *Builder[H]) Add(t TaggedHandler[H]) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frozen {
		return errors.Newf(errors.ErrRegistryFrozen, "cannot register '%s' after the registry was finalized", t.ID).
			WithDetail("id", t.ID)
	}
	return b.tagged.Register(t.ID, t)
}

// Len returns the number of providers added so far
func (b *Builder[H]) Len() int {
	return b.tagged.Count()
}

// Finalize builds the table from every added provider. A failed build
// leaves the builder open so the caller can fix the input and retry.
func (b *Builder[H]) Finalize(opts ...BuildOption) (*Table[H], error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frozen {
		return nil, errors.New(errors.ErrRegistryFrozen, "registry was already finalized")
	}

	all := append(append([]BuildOption{}, b.options...), opts...)
	table, err := Build(Values(b.tagged), all...)
	if err != nil {
		return nil, err
	}
	b.frozen = true
	return table, nil
}
