package ordersvc

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdto "github.com/shaesansv/pet-new/internal/api/catalog/dto"
	catalogmodels "github.com/shaesansv/pet-new/internal/api/catalog/models"
	catalogsvc "github.com/shaesansv/pet-new/internal/api/catalog/service"
	orderdto "github.com/shaesansv/pet-new/internal/api/order/dto"
	"github.com/shaesansv/pet-new/internal/api/order/models"
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
	products   *catalogsvc.ProductService
	orders     *OrderService
	conn       *recordConn
	categoryID string
}

var testCustomer = orderdto.CustomerInput{
	Name:    "Asha",
	Phone:   "9876543210",
	Address: "12 Park Street",
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	hub := notifier.NewHub()
	conn := &recordConn{}
	hub.Subscribe(conn)

	categoryCol := memstore.NewCollection[catalogmodels.Category, *catalogmodels.Category]("categories")
	productCol := memstore.NewCollection[catalogmodels.Product, *catalogmodels.Product]("products")
	orderCol := memstore.NewCollection[models.Order, *models.Order]("orders")

	categories := catalogsvc.NewCategoryService(categoryCol, hub)
	products := catalogsvc.NewProductService(productCol, categoryCol, hub)

	// Seed one category for the products to hang off.
	category, err := categories.Create(context.Background(), &catalogdto.CategoryCreateInput{Name: "Dogs"})
	require.NoError(t, err)

	return &fixture{
		products:   products,
		orders:     NewOrderService(orderCol, products, hub),
		conn:       conn,
		categoryID: category.ID.Hex(),
	}
}

func (f *fixture) mustProduct(t *testing.T, name string, price, stock int64) catalogmodels.Product {
	t.Helper()

	product, err := f.products.Create(context.Background(), &catalogdto.ProductCreateInput{
		Name:       name,
		CategoryID: f.categoryID,
		Type:       catalogmodels.ProductTypeAccessory,
		PriceINR:   price,
		Stock:      stock,
	})
	require.NoError(t, err)
	return product
}

func TestPlaceOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	toy := f.mustProduct(t, "Chew Toy", 199, 10)
	food := f.mustProduct(t, "Dog Food", 700, 5)

	order, err := f.orders.Place(ctx, &orderdto.OrderCreateInput{
		Products: []orderdto.OrderLineInput{
			{ProductID: toy.ID.Hex(), Quantity: 2},
			{ProductID: food.ID.Hex(), Quantity: 1},
		},
		Customer: testCustomer,
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, int64(2*199+700), order.TotalAmountINR)
	require.Len(t, order.Products, 2)
	assert.Equal(t, "Chew Toy", order.Products[0].Name)
	assert.Equal(t, int64(199), order.Products[0].PriceINR)
	assert.Equal(t, "Asha", order.Customer.Name)

	// Stock is taken at placement.
	updatedToy, err := f.products.FindOneById(ctx, toy.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(8), updatedToy.Stock)

	assert.Contains(t, f.conn.events(), notifier.EventOrderCreated)
	assert.Contains(t, f.conn.events(), notifier.EventProductUpdated)
}

// Product edits after placement never touch the snapshots on the order.
func TestOrderSnapshotsSurviveProductEdits(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	toy := f.mustProduct(t, "Chew Toy", 199, 10)

	order, err := f.orders.Place(ctx, &orderdto.OrderCreateInput{
		Products: []orderdto.OrderLineInput{{ProductID: toy.ID.Hex(), Quantity: 1}},
		Customer: testCustomer,
	})
	require.NoError(t, err)

	newPrice := int64(999)
	newName := "Deluxe Chew Toy"
	_, err = f.products.Update(ctx, toy.ID, &catalogdto.ProductUpdateInput{PriceINR: &newPrice, Name: &newName})
	require.NoError(t, err)

	stored, err := f.orders.FindOneById(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(199), stored.Products[0].PriceINR)
	assert.Equal(t, "Chew Toy", stored.Products[0].Name)
	assert.Equal(t, int64(199), stored.TotalAmountINR)
}

func TestPlaceOrderUnknownProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.orders.Place(ctx, &orderdto.OrderCreateInput{
		Products: []orderdto.OrderLineInput{{ProductID: "000000000000000000000001", Quantity: 1}},
		Customer: testCustomer,
	})
	require.Error(t, err)

	orders, err := f.orders.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	toy := f.mustProduct(t, "Chew Toy", 199, 2)

	_, err := f.orders.Place(ctx, &orderdto.OrderCreateInput{
		Products: []orderdto.OrderLineInput{{ProductID: toy.ID.Hex(), Quantity: 3}},
		Customer: testCustomer,
	})
	require.Error(t, err)
	assert.True(t, common.IsInsufficientStock(err))
	assert.Contains(t, err.Error(), "Chew Toy")

	// Nothing persisted, nothing decremented.
	orders, err := f.orders.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	found, err := f.products.FindOneById(ctx, toy.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), found.Stock)
}

// When a later line fails, stock already taken for earlier lines is
// restored and no order is persisted.
func TestPlaceOrderUnwindsPartialLines(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	toy := f.mustProduct(t, "Chew Toy", 199, 10)
	rare := f.mustProduct(t, "Rare Treat", 900, 1)

	_, err := f.orders.Place(ctx, &orderdto.OrderCreateInput{
		Products: []orderdto.OrderLineInput{
			{ProductID: toy.ID.Hex(), Quantity: 4},
			{ProductID: rare.ID.Hex(), Quantity: 2},
		},
		Customer: testCustomer,
	})
	require.Error(t, err)
	assert.True(t, common.IsInsufficientStock(err))

	toyAfter, err := f.products.FindOneById(ctx, toy.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), toyAfter.Stock)

	rareAfter, err := f.products.FindOneById(ctx, rare.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rareAfter.Stock)

	orders, err := f.orders.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

// Two concurrent orders racing for the same two units: exactly one order is
// persisted and stock ends at zero, never negative.
func TestPlaceOrderConcurrentLastUnits(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	toy := f.mustProduct(t, "Chew Toy", 199, 2)

	input := func() *orderdto.OrderCreateInput {
		return &orderdto.OrderCreateInput{
			Products: []orderdto.OrderLineInput{{ProductID: toy.ID.Hex(), Quantity: 2}},
			Customer: testCustomer,
		}
	}

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = f.orders.Place(ctx, input())
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

	found, err := f.products.FindOneById(ctx, toy.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), found.Stock)

	orders, err := f.orders.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestUpdateStatusTransitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	toy := f.mustProduct(t, "Chew Toy", 199, 10)
	order, err := f.orders.Place(ctx, &orderdto.OrderCreateInput{
		Products: []orderdto.OrderLineInput{{ProductID: toy.ID.Hex(), Quantity: 1}},
		Customer: testCustomer,
	})
	require.NoError(t, err)

	completed, err := f.orders.UpdateStatus(ctx, order.ID, &orderdto.OrderStatusUpdateInput{Status: models.StatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, completed.Status)
	assert.Contains(t, f.conn.events(), notifier.EventOrderUpdated)

	// A completed order cannot transition again.
	_, err = f.orders.UpdateStatus(ctx, order.ID, &orderdto.OrderStatusUpdateInput{Status: models.StatusCancelled})
	require.Error(t, err)

	var customErr *common.Error
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, common.ErrCodeBusinessState.Code, customErr.Code.Code)
}

// Cancelling an order never returns stock.
func TestCancelDoesNotRestock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	toy := f.mustProduct(t, "Chew Toy", 199, 10)
	order, err := f.orders.Place(ctx, &orderdto.OrderCreateInput{
		Products: []orderdto.OrderLineInput{{ProductID: toy.ID.Hex(), Quantity: 4}},
		Customer: testCustomer,
	})
	require.NoError(t, err)

	cancelled, err := f.orders.UpdateStatus(ctx, order.ID, &orderdto.OrderStatusUpdateInput{Status: models.StatusCancelled})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)

	found, err := f.products.FindOneById(ctx, toy.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(6), found.Stock)
}
