// Package ordersvc - order placement and lifecycle.
package ordersvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/shaesansv/pet-new/internal/api/base/service"
	catalogmodels "github.com/shaesansv/pet-new/internal/api/catalog/models"
	catalogsvc "github.com/shaesansv/pet-new/internal/api/catalog/service"
	orderdto "github.com/shaesansv/pet-new/internal/api/order/dto"
	"github.com/shaesansv/pet-new/internal/api/order/models"
	"github.com/shaesansv/pet-new/internal/common"
	"github.com/shaesansv/pet-new/internal/logger"
	"github.com/shaesansv/pet-new/internal/memstore"
	"github.com/shaesansv/pet-new/internal/notifier"
	"github.com/shaesansv/pet-new/internal/utility"
)

// OrderService places orders and drives their status lifecycle. Placement is
// all-or-nothing: stock is taken line by line through the product service's
// atomic decrement, and any failure unwinds the lines already taken before
// the order would have been persisted.
type OrderService struct {
	*basesvc.BaseService[models.Order, *models.Order]
	products *catalogsvc.ProductService
	hub      *notifier.Hub
}

// NewOrderService creates the order service.
func NewOrderService(
	orders *memstore.Collection[models.Order, *models.Order],
	products *catalogsvc.ProductService,
	hub *notifier.Hub,
) *OrderService {
	return &OrderService{
		BaseService: basesvc.NewBaseService(orders),
		products:    products,
		hub:         hub,
	}
}

// resolveLine looks up the referenced product for one input line.
func (s *OrderService) resolveLine(ctx context.Context, line orderdto.OrderLineInput) (catalogmodels.Product, error) {
	productID := utility.String2ObjectID(line.ProductID)
	if productID.IsZero() {
		return catalogmodels.Product{}, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("productId '%s' is not a valid ObjectID", line.ProductID),
			common.StatusBadRequest,
			nil,
		)
	}

	product, err := s.products.FindOneById(ctx, productID)
	if err != nil {
		return catalogmodels.Product{}, common.NewError(
			common.ErrCodeStoreQuery,
			fmt.Sprintf("product %s does not exist", line.ProductID),
			common.StatusNotFound,
			nil,
		)
	}
	return product, nil
}

// Place validates and persists a new order:
//
//  1. Every referenced product is resolved; an unknown id fails the whole
//     request.
//  2. Stock is decremented per line through the product service. Check and
//     decrement are one critical section, so two concurrent orders racing
//     for the same units can never drive stock negative: the loser is
//     rejected with an insufficient-stock error.
//  3. If any line fails, the lines already decremented are restored and no
//     order is persisted.
//  4. The order is stored as pending with name/price snapshots taken at
//     this moment; later product edits do not touch it.
//  5. order:created is broadcast to live subscribers.
func (s *OrderService) Place(ctx context.Context, input *orderdto.OrderCreateInput) (models.Order, error) {
	resolved := make([]catalogmodels.Product, 0, len(input.Products))
	for _, line := range input.Products {
		product, err := s.resolveLine(ctx, line)
		if err != nil {
			return models.Order{}, err
		}
		resolved = append(resolved, product)
	}

	lines := make([]models.OrderLine, 0, len(input.Products))
	var total int64
	taken := 0
	for i, line := range input.Products {
		product := resolved[i]
		if _, err := s.products.DecrementStock(ctx, product.ID, line.Quantity); err != nil {
			s.unwind(ctx, input.Products[:taken], resolved[:taken])
			return models.Order{}, err
		}
		taken++

		lines = append(lines, models.OrderLine{
			ProductID: product.ID,
			Name:      product.Name,
			PriceINR:  product.PriceINR,
			Quantity:  line.Quantity,
		})
		total += product.PriceINR * line.Quantity
	}

	order := models.Order{
		Products: lines,
		Customer: models.CustomerInfo{
			Name:     input.Customer.Name,
			Phone:    input.Customer.Phone,
			AltPhone: input.Customer.AltPhone,
			Address:  input.Customer.Address,
		},
		TotalAmountINR: total,
		Status:         models.StatusPending,
	}

	created, err := s.InsertOne(ctx, order)
	if err != nil {
		s.unwind(ctx, input.Products, resolved)
		return models.Order{}, err
	}

	s.hub.Broadcast(notifier.EventOrderCreated, created)
	return created, nil
}

// unwind returns stock for lines that were already decremented by a
// placement that then failed.
func (s *OrderService) unwind(ctx context.Context, lines []orderdto.OrderLineInput, resolved []catalogmodels.Product) {
	for i, line := range lines {
		if _, err := s.products.IncrementStock(ctx, resolved[i].ID, line.Quantity); err != nil {
			logger.GetErrorLogger().WithFields(map[string]interface{}{
				"productId": resolved[i].ID.Hex(),
				"quantity":  line.Quantity,
			}).WithError(err).Error("failed to restore stock after aborted order placement")
		}
	}
}

// UpdateStatus transitions an order's status. The only valid transitions are
// pending -> completed and pending -> cancelled; anything else is rejected.
// Cancelling an order does NOT return stock: stock was consumed at placement
// and stays consumed.
func (s *OrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, input *orderdto.OrderStatusUpdateInput) (models.Order, error) {
	updated, err := s.UpdateById(ctx, id, func(order *models.Order) error {
		if !models.ValidStatusTransition(order.Status, input.Status) {
			return common.NewError(
				common.ErrCodeBusinessState,
				fmt.Sprintf("cannot transition order from %s to %s", order.Status, input.Status),
				common.StatusBadRequest,
				nil,
			)
		}
		order.Status = input.Status
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	s.hub.Broadcast(notifier.EventOrderUpdated, updated)
	return updated, nil
}

// List returns all orders in creation order.
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.Find(ctx, nil)
}
