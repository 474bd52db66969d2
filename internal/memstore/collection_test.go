package memstore

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shaesansv/pet-new/internal/common"
)

type widget struct {
	ID        primitive.ObjectID
	Name      string
	Stock     int64
	CreatedAt int64
}

func (w *widget) GetID() primitive.ObjectID   { return w.ID }
func (w *widget) SetID(id primitive.ObjectID) { w.ID = id }
func (w *widget) GetCreatedAt() int64         { return w.CreatedAt }
func (w *widget) SetCreatedAt(ts int64)       { w.CreatedAt = ts }

func newWidgets() *Collection[widget, *widget] {
	return NewCollection[widget, *widget]("widgets")
}

func TestInsertAssignsIDAndTimestamp(t *testing.T) {
	col := newWidgets()

	created, err := col.InsertOne(widget{Name: "bone"})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.NotZero(t, created.CreatedAt)

	found, err := col.FindOneById(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "bone", found.Name)
}

func TestInsertDuplicateID(t *testing.T) {
	col := newWidgets()

	created, err := col.InsertOne(widget{Name: "bone"})
	require.NoError(t, err)

	_, err = col.InsertOne(widget{ID: created.ID, Name: "clone"})
	assert.ErrorIs(t, err, common.ErrDuplicate)
}

func TestFindPreservesInsertionOrder(t *testing.T) {
	col := newWidgets()

	for _, name := range []string{"a", "b", "c"} {
		_, err := col.InsertOne(widget{Name: name})
		require.NoError(t, err)
	}

	all := col.Find(nil)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Name)
	assert.Equal(t, "b", all[1].Name)
	assert.Equal(t, "c", all[2].Name)
}

func TestFindReturnsCopies(t *testing.T) {
	col := newWidgets()

	created, err := col.InsertOne(widget{Name: "bone"})
	require.NoError(t, err)

	all := col.Find(nil)
	all[0].Name = "mutated"

	found, err := col.FindOneById(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "bone", found.Name)
}

func TestUpdateByIdMutates(t *testing.T) {
	col := newWidgets()

	created, err := col.InsertOne(widget{Name: "bone", Stock: 5})
	require.NoError(t, err)

	updated, err := col.UpdateById(created.ID, func(w *widget) error {
		w.Stock -= 2
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.Stock)
}

// A mutate callback that errors must leave the stored document untouched.
func TestUpdateByIdAbortsOnError(t *testing.T) {
	col := newWidgets()

	created, err := col.InsertOne(widget{Name: "bone", Stock: 5})
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = col.UpdateById(created.ID, func(w *widget) error {
		w.Stock = -100
		return boom
	})
	assert.ErrorIs(t, err, boom)

	found, err := col.FindOneById(created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), found.Stock)
}

func TestUpdateByIdNotFound(t *testing.T) {
	col := newWidgets()
	_, err := col.UpdateById(primitive.NewObjectID(), func(w *widget) error { return nil })
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteById(t *testing.T) {
	col := newWidgets()

	created, err := col.InsertOne(widget{Name: "bone"})
	require.NoError(t, err)

	require.NoError(t, col.DeleteById(created.ID))
	assert.ErrorIs(t, col.DeleteById(created.ID), common.ErrNotFound)

	_, err = col.FindOneById(created.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

// Concurrent conditional decrements through UpdateById must serialize: the
// stock never goes negative no matter how many goroutines race.
func TestUpdateByIdSerializesConcurrentDecrements(t *testing.T) {
	col := newWidgets()

	created, err := col.InsertOne(widget{Name: "bone", Stock: 10})
	require.NoError(t, err)

	var wg sync.WaitGroup
	var failures int64
	var mu sync.Mutex

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := col.UpdateById(created.ID, func(w *widget) error {
				if w.Stock < 1 {
					return errors.New("insufficient")
				}
				w.Stock--
				return nil
			})
			if err != nil {
				mu.Lock()
				failures++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	found, err := col.FindOneById(created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), found.Stock)
	assert.Equal(t, int64(40), failures)
}

func TestCountAndExists(t *testing.T) {
	col := newWidgets()

	_, err := col.InsertOne(widget{Name: "bone", Stock: 1})
	require.NoError(t, err)
	_, err = col.InsertOne(widget{Name: "ball", Stock: 0})
	require.NoError(t, err)

	assert.Equal(t, int64(2), col.CountDocuments(nil))
	assert.Equal(t, int64(1), col.CountDocuments(func(w *widget) bool { return w.Stock > 0 }))
	assert.True(t, col.DocumentExists(func(w *widget) bool { return w.Name == "ball" }))
	assert.False(t, col.DocumentExists(func(w *widget) bool { return w.Name == "fish" }))
}
