// Package memstore implements the process-lifetime storage engine: generic,
// mutex-guarded in-memory collections keyed by ObjectID. Nothing is durable;
// a restart loses all data, which is a deliberate development-mode property
// of this system. Callers always receive copies, never references into the
// collection.
package memstore

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shaesansv/pet-new/internal/common"
	"github.com/shaesansv/pet-new/internal/utility"
)

// ModelPtr constrains collection element pointers. Every stored model
// carries an ObjectID identity and a creation timestamp the collection
// stamps on insert.
type ModelPtr[T any] interface {
	*T
	GetID() primitive.ObjectID
	SetID(id primitive.ObjectID)
	GetCreatedAt() int64
	SetCreatedAt(ts int64)
}

// Collection is a generic in-memory collection. Documents are returned in
// insertion order, which equals creation-time order because CreatedAt is
// stamped under the same lock that appends to the order index.
type Collection[T any, P ModelPtr[T]] struct {
	name  string
	mu    sync.RWMutex
	docs  map[primitive.ObjectID]*T
	order []primitive.ObjectID
}

// NewCollection creates an empty collection with the given name.
func NewCollection[T any, P ModelPtr[T]](name string) *Collection[T, P] {
	return &Collection[T, P]{
		name: name,
		docs: make(map[primitive.ObjectID]*T),
	}
}

// Name returns the collection name.
func (c *Collection[T, P]) Name() string {
	return c.name
}

// InsertOne stores a copy of doc, assigning a fresh ObjectID and CreatedAt
// when they are unset, and returns the stored value.
func (c *Collection[T, P]) InsertOne(doc T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := P(&doc)
	if p.GetID().IsZero() {
		p.SetID(primitive.NewObjectID())
	}
	if p.GetCreatedAt() == 0 {
		p.SetCreatedAt(utility.CurrentTimeInMilli())
	}

	id := p.GetID()
	if _, exists := c.docs[id]; exists {
		var zero T
		return zero, common.ErrDuplicate
	}

	stored := doc
	c.docs[id] = &stored
	c.order = append(c.order, id)
	return doc, nil
}

// FindOneById returns a copy of the document with the given id.
func (c *Collection[T, P]) FindOneById(id primitive.ObjectID) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, exists := c.docs[id]
	if !exists {
		var zero T
		return zero, common.ErrNotFound
	}
	return *doc, nil
}

// FindOne returns a copy of the first document matching pred in insertion
// order. A nil pred matches everything.
func (c *Collection[T, P]) FindOne(pred func(*T) bool) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.order {
		if doc := c.docs[id]; doc != nil && (pred == nil || pred(doc)) {
			return *doc, nil
		}
	}
	var zero T
	return zero, common.ErrNotFound
}

// Find returns copies of all documents matching pred in insertion order.
// A nil pred matches everything. The result is never nil.
func (c *Collection[T, P]) Find(pred func(*T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	results := make([]T, 0, len(c.order))
	for _, id := range c.order {
		doc := c.docs[id]
		if doc == nil {
			continue
		}
		if pred == nil || pred(doc) {
			results = append(results, *doc)
		}
	}
	return results
}

// FindManyByIds returns copies of the documents with the given ids,
// skipping ids that do not exist, in insertion order.
func (c *Collection[T, P]) FindManyByIds(ids []primitive.ObjectID) []T {
	want := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	return c.Find(func(doc *T) bool {
		return want[P(doc).GetID()]
	})
}

// UpdateById applies mutate to the stored document under the write lock and
// returns a copy of the result. When mutate returns an error the document is
// left untouched and the error is surfaced unchanged. This is the single
// serialized critical section that makes check-then-write sequences (such as
// the order stock decrement) atomic.
func (c *Collection[T, P]) UpdateById(id primitive.ObjectID, mutate func(*T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	doc, exists := c.docs[id]
	if !exists {
		return zero, common.ErrNotFound
	}

	// Mutate a scratch copy so a failed mutation cannot leave the stored
	// document half-changed.
	scratch := *doc
	if err := mutate(&scratch); err != nil {
		return zero, err
	}
	*doc = scratch
	return scratch, nil
}

// DeleteById removes the document with the given id.
// Returns common.ErrNotFound when no such document exists.
func (c *Collection[T, P]) DeleteById(id primitive.ObjectID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.docs[id]; !exists {
		return common.ErrNotFound
	}
	delete(c.docs, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// CountDocuments returns the number of documents matching pred.
// A nil pred counts everything.
func (c *Collection[T, P]) CountDocuments(pred func(*T) bool) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if pred == nil {
		return int64(len(c.docs))
	}
	var count int64
	for _, doc := range c.docs {
		if pred(doc) {
			count++
		}
	}
	return count
}

// DocumentExists reports whether any document matches pred.
func (c *Collection[T, P]) DocumentExists(pred func(*T) bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, doc := range c.docs {
		if pred(doc) {
			return true
		}
	}
	return false
}
