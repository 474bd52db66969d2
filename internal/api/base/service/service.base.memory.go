// Package basesvc provides the generic service layer shared by every
// domain: context-aware CRUD over an in-memory collection plus pagination.
// Domain services embed BaseService and add their business rules on top.
package basesvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/shaesansv/pet-new/internal/api/base/models"
	"github.com/shaesansv/pet-new/internal/memstore"
)

// BaseService implements the standard store operations for one entity type
// backed by an in-memory collection. All methods honor context cancellation
// before touching the store; the store operations themselves are serialized
// critical sections and do not block on I/O.
type BaseService[T any, P memstore.ModelPtr[T]] struct {
	collection *memstore.Collection[T, P]
}

// NewBaseService creates a service over the given collection.
func NewBaseService[T any, P memstore.ModelPtr[T]](collection *memstore.Collection[T, P]) *BaseService[T, P] {
	return &BaseService[T, P]{collection: collection}
}

// Collection exposes the underlying collection for domain services that
// need direct access (e.g. the order processor's atomic stock decrement).
func (s *BaseService[T, P]) Collection() *memstore.Collection[T, P] {
	return s.collection
}

// InsertOne stores a new document and returns it with id and timestamps set.
func (s *BaseService[T, P]) InsertOne(ctx context.Context, data T) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	return s.collection.InsertOne(data)
}

// FindOneById returns the document with the given id.
func (s *BaseService[T, P]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	return s.collection.FindOneById(id)
}

// FindOne returns the first document matching pred in creation order.
func (s *BaseService[T, P]) FindOne(ctx context.Context, pred func(*T) bool) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	return s.collection.FindOne(pred)
}

// Find returns all documents matching pred in creation order.
// A nil pred returns everything.
func (s *BaseService[T, P]) Find(ctx context.Context, pred func(*T) bool) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.collection.Find(pred), nil
}

// UpdateById applies mutate to the document under the collection's write
// lock and returns the updated copy.
func (s *BaseService[T, P]) UpdateById(ctx context.Context, id primitive.ObjectID, mutate func(*T) error) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	return s.collection.UpdateById(id, mutate)
}

// DeleteById removes the document with the given id.
// Returns common.ErrNotFound when no document existed.
func (s *BaseService[T, P]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.collection.DeleteById(id)
}

// CountDocuments returns the number of documents matching pred.
func (s *BaseService[T, P]) CountDocuments(ctx context.Context, pred func(*T) bool) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.collection.CountDocuments(pred), nil
}

// DocumentExists reports whether any document matches pred.
func (s *BaseService[T, P]) DocumentExists(ctx context.Context, pred func(*T) bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.collection.DocumentExists(pred), nil
}

// FindWithPagination returns one page of the documents matching pred, in
// creation order. page starts at 1; invalid page/limit values fall back to
// defaults (1 and 10).
func (s *BaseService[T, P]) FindWithPagination(ctx context.Context, pred func(*T) bool, page, limit int64) (*basemodels.PaginateResult[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	all := s.collection.Find(pred)
	total := int64(len(all))

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &basemodels.PaginateResult[T]{
		Page:      page,
		Limit:     limit,
		ItemCount: total,
		Items:     all[start:end],
	}, nil
}
