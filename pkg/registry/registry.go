package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/catalogpromo/pkg/errors"
)

// Registry is a thread-safe set of items keyed by a unique name. Names
// can only be added; a Registry feeds a Builder or a factory lookup and
// never changes an entry once it is set.
type Registry[T any] interface {
	// Register adds item under name. Empty and taken names are rejected.
	Register(name string, item T) error
	// Get returns the item registered under name
	Get(name string) (T, error)
	// Has reports whether name is taken
	Has(name string) bool
	// List returns the registered names in sorted order
	List() []string
	// Count returns the number of registered items
	Count() int
}

type keyed[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// New creates an empty Registry
func New[T any]() Registry[T] {
	return &keyed[T]{items: make(map[string]T)}
}

func (r *keyed[T]) Register(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.items[name]; taken {
		return errors.Newf(errors.ErrAlreadyExists, "'%s' is already registered", name).
			WithDetail("name", name)
	}
	r.items[name] = item
	return nil
}

func (r *keyed[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[name]
	if !ok {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "'%s' is not registered", name).
			WithDetail("name", name)
	}
	return item, nil
}

func (r *keyed[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[name]
	return ok
}

func (r *keyed[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *keyed[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// Values returns every item of reg ordered by name
func Values[T any](reg Registry[T]) []T {
	names := reg.List()
	values := make([]T, 0, len(names))
	for _, name := range names {
		if item, err := reg.Get(name); err == nil {
			values = append(values, item)
		}
	}
	return values
}

// MustRegister registers item and panics on failure. It is meant for
// init functions, where a clash is a programming error.
func MustRegister[T any](reg Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("register %s: %v", name, err))
	}
}
