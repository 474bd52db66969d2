// Package registry provides a thread-safe generic registry used to manage
// named singleton instances (live-update subscribers, shared services).
package registry

import (
	"fmt"
	"sync"

	"github.com/shaesansv/pet-new/internal/common"
)

// Registry is a thread-safe generic registry keyed by name.
// Thread-safety is guaranteed through a sync.RWMutex.
//
// Example:
//
//	r := registry.NewRegistry[int]()
//	r.Register("counter", 42)
//	if v, ok := r.Get("counter"); ok {
//	    fmt.Println(v)
//	}
type Registry[T any] struct {
	items map[string]T
	mu    sync.RWMutex
}

// NewRegistry creates an initialized registry for items of type T.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register stores item under name, overwriting any existing entry.
//
// Returns:
//   - isNew: true when the name was not registered before
//   - err: an error when name is empty
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get returns the item registered under name and whether it exists.
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// Unregister removes the item registered under name.
// Returns true when an item was removed.
func (r *Registry[T]) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[name]; !exists {
		return false
	}
	delete(r.items, name)
	return true
}

// Names returns the currently registered names in unspecified order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	return names
}

// Items returns a snapshot of the currently registered items.
func (r *Registry[T]) Items() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]T, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	return items
}

// Len returns the number of registered items.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
