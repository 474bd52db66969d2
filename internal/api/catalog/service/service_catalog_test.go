package catalogsvc

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdto "github.com/shaesansv/pet-new/internal/api/catalog/dto"
	"github.com/shaesansv/pet-new/internal/api/catalog/models"
	"github.com/shaesansv/pet-new/internal/common"
	"github.com/shaesansv/pet-new/internal/memstore"
	"github.com/shaesansv/pet-new/internal/notifier"
)

// recordConn captures broadcast messages for assertions.
type recordConn struct {
	mu       sync.Mutex
	messages []notifier.Message
}

func (r *recordConn) WriteJSON(v interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, v.(notifier.Message))
	return nil
}

func (r *recordConn) Close() error { return nil }

func (r *recordConn) events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.messages))
	for i, m := range r.messages {
		out[i] = m.Event
	}
	return out
}

type fixture struct {
	categories *CategoryService
	products   *ProductService
	conn       *recordConn
}

func newFixture() *fixture {
	hub := notifier.NewHub()
	conn := &recordConn{}
	hub.Subscribe(conn)

	categoryCol := memstore.NewCollection[models.Category, *models.Category]("categories")
	productCol := memstore.NewCollection[models.Product, *models.Product]("products")

	return &fixture{
		categories: NewCategoryService(categoryCol, hub),
		products:   NewProductService(productCol, categoryCol, hub),
		conn:       conn,
	}
}

func (f *fixture) mustCategory(t *testing.T, name string) models.Category {
	t.Helper()
	category, err := f.categories.Create(context.Background(), &catalogdto.CategoryCreateInput{Name: name})
	require.NoError(t, err)
	return category
}

func (f *fixture) mustProduct(t *testing.T, input catalogdto.ProductCreateInput) models.Product {
	t.Helper()
	product, err := f.products.Create(context.Background(), &input)
	require.NoError(t, err)
	return product
}

func TestCategoryCreateDerivesSlug(t *testing.T) {
	f := newFixture()

	category := f.mustCategory(t, "Exotic Birds!")
	assert.Equal(t, "exotic-birds", category.Slug)
	assert.Contains(t, f.conn.events(), notifier.EventCategoryCreated)
}

func TestCategoryUpdateKeepsSlugInSync(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	category := f.mustCategory(t, "Dogs")
	newName := "Small Dogs"
	updated, err := f.categories.Update(ctx, category.ID, &catalogdto.CategoryUpdateInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Small Dogs", updated.Name)
	assert.Equal(t, "small-dogs", updated.Slug)

	// Patching only the description leaves name and slug alone.
	desc := "companions"
	updated, err = f.categories.Update(ctx, category.ID, &catalogdto.CategoryUpdateInput{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Small Dogs", updated.Name)
	assert.Equal(t, "small-dogs", updated.Slug)
	assert.Equal(t, "companions", updated.Description)
}

// Deleting a category must not touch the products referencing it; their
// categoryId simply dangles.
func TestCategoryDeleteDoesNotCascade(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	category := f.mustCategory(t, "Dogs")
	product := f.mustProduct(t, catalogdto.ProductCreateInput{
		Name:       "Chew Toy",
		CategoryID: category.ID.Hex(),
		Type:       models.ProductTypeAccessory,
		PriceINR:   199,
		Stock:      10,
	})

	require.NoError(t, f.categories.Delete(ctx, category.ID))

	survivor, err := f.products.FindOneById(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, category.ID, survivor.CategoryID)
	assert.Contains(t, f.conn.events(), notifier.EventCategoryDeleted)
}

func TestProductCreateRejectsUnknownCategory(t *testing.T) {
	f := newFixture()

	_, err := f.products.Create(context.Background(), &catalogdto.ProductCreateInput{
		Name:       "Chew Toy",
		CategoryID: "000000000000000000000001",
		Type:       models.ProductTypeAccessory,
		PriceINR:   199,
	})
	require.Error(t, err)

	var customErr *common.Error
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, common.StatusNotFound, customErr.StatusCode)
}

func TestProductCreateDefaults(t *testing.T) {
	f := newFixture()
	category := f.mustCategory(t, "Dogs")

	product := f.mustProduct(t, catalogdto.ProductCreateInput{
		Name:       "Chew Toy",
		CategoryID: category.ID.Hex(),
		Type:       models.ProductTypeAccessory,
		PriceINR:   199,
		Stock:      3,
	})

	assert.True(t, product.Available)
	assert.NotNil(t, product.Images)
	assert.Empty(t, product.Images)
}

func TestProductListFilters(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	dogs := f.mustCategory(t, "Dogs")
	birds := f.mustCategory(t, "Birds")

	f.mustProduct(t, catalogdto.ProductCreateInput{
		Name: "Labrador", CategoryID: dogs.ID.Hex(), Type: models.ProductTypePet,
		Species: "dog", PriceINR: 25000, Stock: 2,
	})
	f.mustProduct(t, catalogdto.ProductCreateInput{
		Name: "Dog Food", CategoryID: dogs.ID.Hex(), Type: models.ProductTypeFood,
		Species: "dog", PriceINR: 700, Stock: 50,
	})
	f.mustProduct(t, catalogdto.ProductCreateInput{
		Name: "Parrot", CategoryID: birds.ID.Hex(), Type: models.ProductTypePet,
		Species: "parrot", PriceINR: 9000, Stock: 1,
	})

	all, err := f.products.List(ctx, models.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byCategory, err := f.products.List(ctx, models.ProductFilter{CategoryID: dogs.ID})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	byType, err := f.products.List(ctx, models.ProductFilter{Type: models.ProductTypePet})
	require.NoError(t, err)
	assert.Len(t, byType, 2)

	combined, err := f.products.List(ctx, models.ProductFilter{CategoryID: dogs.ID, Type: models.ProductTypePet, Species: "dog"})
	require.NoError(t, err)
	require.Len(t, combined, 1)
	assert.Equal(t, "Labrador", combined[0].Name)
}

func TestProductPartialUpdate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	category := f.mustCategory(t, "Dogs")

	product := f.mustProduct(t, catalogdto.ProductCreateInput{
		Name: "Chew Toy", CategoryID: category.ID.Hex(), Type: models.ProductTypeAccessory,
		PriceINR: 199, Stock: 3,
	})

	price := int64(249)
	updated, err := f.products.Update(ctx, product.ID, &catalogdto.ProductUpdateInput{PriceINR: &price})
	require.NoError(t, err)
	assert.Equal(t, int64(249), updated.PriceINR)
	assert.Equal(t, "Chew Toy", updated.Name)
	assert.Equal(t, int64(3), updated.Stock)
}

func TestDecrementStock(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	category := f.mustCategory(t, "Dogs")

	product := f.mustProduct(t, catalogdto.ProductCreateInput{
		Name: "Chew Toy", CategoryID: category.ID.Hex(), Type: models.ProductTypeAccessory,
		PriceINR: 199, Stock: 5,
	})

	updated, err := f.products.DecrementStock(ctx, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Stock)

	_, err = f.products.DecrementStock(ctx, product.ID, 3)
	require.Error(t, err)
	assert.True(t, common.IsInsufficientStock(err))
	assert.Contains(t, err.Error(), "Chew Toy")

	// The failed decrement must not have touched the stock.
	found, err := f.products.FindOneById(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), found.Stock)
}

// Two buyers racing for the last units: exactly one wins, stock never goes
// negative.
func TestDecrementStockConcurrent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	category := f.mustCategory(t, "Dogs")

	product := f.mustProduct(t, catalogdto.ProductCreateInput{
		Name: "Chew Toy", CategoryID: category.ID.Hex(), Type: models.ProductTypeAccessory,
		PriceINR: 199, Stock: 2,
	})

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = f.products.DecrementStock(ctx, product.ID, 2)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, common.IsInsufficientStock(err))
		}
	}
	assert.Equal(t, 1, succeeded)

	found, err := f.products.FindOneById(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), found.Stock)
}

func TestIncrementStock(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	category := f.mustCategory(t, "Dogs")

	product := f.mustProduct(t, catalogdto.ProductCreateInput{
		Name: "Chew Toy", CategoryID: category.ID.Hex(), Type: models.ProductTypeAccessory,
		PriceINR: 199, Stock: 1,
	})

	updated, err := f.products.IncrementStock(ctx, product.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(5), updated.Stock)
}
