package registry

import (
	"context"
	"sync/atomic"
)

// Holder publishes a Table to concurrent readers. Reloads build a new
// table and swap it in whole; readers never see a partial table.
type Holder[H any] struct {
	current atomic.Pointer[Table[H]]
}

// NewHolder creates a Holder publishing table, or an empty table when nil
func NewHolder[H any](table *Table[H]) *Holder[H] {
	h := &Holder[H]{}
	if table == nil {
		table = Empty[H]()
	}
	h.current.Store(table)
	return h
}

// Load returns the current table
func (h *Holder[H]) Load() *Table[H] {
	return h.current.Load()
}

// Store replaces the current table and returns the previous one
func (h *Holder[H]) Store(table *Table[H]) *Table[H] {
	if table == nil {
		table = Empty[H]()
	}
	return h.current.Swap(table)
}

// Reload rebuilds the table from provider. The current table stays in
// place when the build fails.
func (h *Holder[H]) Reload(ctx context.Context, provider Provider[H], opts ...BuildOption) (*Table[H], error) {
	table, err := BuildFrom(ctx, provider, opts...)
	if err != nil {
		return nil, err
	}
	h.current.Store(table)
	return table, nil
}

// Lookup resolves typ against the current table
func (h *Holder[H]) Lookup(typ string) (H, error) {
	return h.Load().Lookup(typ)
}
