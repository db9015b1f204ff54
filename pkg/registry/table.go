package registry

import (
	"sort"

	"github.com/arthur-debert/catalogpromo/pkg/errors"
)

// Table maps action types to handlers and labels. Both maps always share
// the same key set. A Table is read-only and safe for concurrent use.
type Table[H any] struct {
	handlers  map[string]H
	labels    map[string]string
	providers map[string]string
	order     []string
	overrides []Override
}

func newTable[H any](size int) *Table[H] {
	return &Table[H]{
		handlers:  make(map[string]H, size),
		labels:    make(map[string]string, size),
		providers: make(map[string]string, size),
		order:     make([]string, 0, size),
	}
}

// Empty returns a table with no entries
func Empty[H any]() *Table[H] {
	return newTable[H](0)
}

// Lookup returns the handler registered for typ
func (t *Table[H]) Lookup(typ string) (H, error) {
	handler, ok := t.handlers[typ]
	if !ok {
		var zero H
		return zero, errors.Newf(errors.ErrActionNotFound, "no action registered for type '%s'", typ).
			WithDetail("type", typ)
	}
	return handler, nil
}

// Has reports whether typ is registered
func (t *Table[H]) Has(typ string) bool {
	_, ok := t.handlers[typ]
	return ok
}

// Label returns the display label of typ
func (t *Table[H]) Label(typ string) (string, bool) {
	label, ok := t.labels[typ]
	return label, ok
}

// Provider returns the id of the provider whose handler is registered for typ
func (t *Table[H]) Provider(typ string) (string, bool) {
	id, ok := t.providers[typ]
	return id, ok
}

// Labels returns a copy of the type to label table
func (t *Table[H]) Labels() map[string]string {
	labels := make(map[string]string, len(t.labels))
	for typ, label := range t.labels {
		labels[typ] = label
	}
	return labels
}

// Types returns the registered types in the order they were first
// inserted while folding providers
func (t *Table[H]) Types() []string {
	types := make([]string, len(t.order))
	copy(types, t.order)
	return types
}

// SortedTypes returns the registered types in lexical order
func (t *Table[H]) SortedTypes() []string {
	types := t.Types()
	sort.Strings(types)
	return types
}

// Len returns the number of registered types
func (t *Table[H]) Len() int {
	return len(t.handlers)
}

// Overrides returns the duplicate types resolved during the build
func (t *Table[H]) Overrides() []Override {
	overrides := make([]Override, len(t.overrides))
	copy(overrides, t.overrides)
	return overrides
}
