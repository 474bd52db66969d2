package catalogsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/shaesansv/pet-new/internal/api/base/service"
	catalogdto "github.com/shaesansv/pet-new/internal/api/catalog/dto"
	"github.com/shaesansv/pet-new/internal/api/catalog/models"
	"github.com/shaesansv/pet-new/internal/common"
	"github.com/shaesansv/pet-new/internal/memstore"
	"github.com/shaesansv/pet-new/internal/notifier"
	"github.com/shaesansv/pet-new/internal/utility"
)

// ProductService manages the product collection, including the atomic
// stock adjustments used by the order processor.
type ProductService struct {
	*basesvc.BaseService[models.Product, *models.Product]
	categories *memstore.Collection[models.Category, *models.Category]
	hub        *notifier.Hub
}

// NewProductService creates the product service. The category collection is
// needed to validate the categoryId reference on create/update.
func NewProductService(
	products *memstore.Collection[models.Product, *models.Product],
	categories *memstore.Collection[models.Category, *models.Category],
	hub *notifier.Hub,
) *ProductService {
	return &ProductService{
		BaseService: basesvc.NewBaseService(products),
		categories:  categories,
		hub:         hub,
	}
}

// resolveCategoryID parses and verifies a category reference. Only the
// moment of create/update is checked: a category deleted later leaves the
// reference dangling by design.
func (s *ProductService) resolveCategoryID(hexID string) (primitive.ObjectID, error) {
	categoryID := utility.String2ObjectID(hexID)
	if categoryID.IsZero() {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("categoryId '%s' is not a valid ObjectID", hexID),
			common.StatusBadRequest,
			nil,
		)
	}
	if _, err := s.categories.FindOneById(categoryID); err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeStoreQuery,
			fmt.Sprintf("category %s does not exist", hexID),
			common.StatusNotFound,
			nil,
		)
	}
	return categoryID, nil
}

// Create inserts a new product.
func (s *ProductService) Create(ctx context.Context, input *catalogdto.ProductCreateInput) (models.Product, error) {
	categoryID, err := s.resolveCategoryID(input.CategoryID)
	if err != nil {
		return models.Product{}, err
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	images := input.Images
	if images == nil {
		images = []string{}
	}

	product := models.Product{
		Name:        input.Name,
		CategoryID:  categoryID,
		Type:        input.Type,
		Species:     input.Species,
		Images:      images,
		Description: input.Description,
		PriceINR:    input.PriceINR,
		Stock:       input.Stock,
		Available:   available,
	}

	created, err := s.InsertOne(ctx, product)
	if err != nil {
		return models.Product{}, err
	}

	s.hub.Broadcast(notifier.EventProductCreated, created)
	return created, nil
}

// Update applies a partial patch to a product.
func (s *ProductService) Update(ctx context.Context, id primitive.ObjectID, input *catalogdto.ProductUpdateInput) (models.Product, error) {
	var categoryID primitive.ObjectID
	if input.CategoryID != nil {
		resolved, err := s.resolveCategoryID(*input.CategoryID)
		if err != nil {
			return models.Product{}, err
		}
		categoryID = resolved
	}

	updated, err := s.UpdateById(ctx, id, func(product *models.Product) error {
		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.CategoryID != nil {
			product.CategoryID = categoryID
		}
		if input.Type != nil {
			product.Type = *input.Type
		}
		if input.Species != nil {
			product.Species = *input.Species
		}
		if input.Images != nil {
			product.Images = *input.Images
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.PriceINR != nil {
			product.PriceINR = *input.PriceINR
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}
		if input.Available != nil {
			product.Available = *input.Available
		}
		return nil
	})
	if err != nil {
		return models.Product{}, err
	}

	s.hub.Broadcast(notifier.EventProductUpdated, updated)
	return updated, nil
}

// IncrementStock atomically returns quantity units to a product's stock. It
// exists for the order processor to unwind partially decremented lines when
// a later line of the same request fails; it is not a public restock path.
func (s *ProductService) IncrementStock(ctx context.Context, id primitive.ObjectID, quantity int64) (models.Product, error) {
	if quantity <= 0 {
		return models.Product{}, common.NewError(
			common.ErrCodeValidationInput,
			"quantity must be positive",
			common.StatusBadRequest,
			nil,
		)
	}

	updated, err := s.UpdateById(ctx, id, func(product *models.Product) error {
		product.Stock += quantity
		return nil
	})
	if err != nil {
		return models.Product{}, err
	}

	s.hub.Broadcast(notifier.EventProductUpdated, updated)
	return updated, nil
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id primitive.ObjectID) error {
	product, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	if err := s.DeleteById(ctx, id); err != nil {
		return err
	}

	s.hub.Broadcast(notifier.EventProductDeleted, product)
	return nil
}

// List returns products matching the filter in creation order. All filter
// fields are optional and AND-combined.
func (s *ProductService) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return s.Find(ctx, filter.Matches)
}

// DecrementStock atomically checks and decrements a product's stock.
// The check and the write happen inside one serialized critical section, so
// concurrent orders can never drive stock negative: the second one fails
// with an insufficient-stock rejection. The updated product is broadcast as
// product:updated.
func (s *ProductService) DecrementStock(ctx context.Context, id primitive.ObjectID, quantity int64) (models.Product, error) {
	if quantity <= 0 {
		return models.Product{}, common.NewError(
			common.ErrCodeValidationInput,
			"quantity must be positive",
			common.StatusBadRequest,
			nil,
		)
	}

	updated, err := s.UpdateById(ctx, id, func(product *models.Product) error {
		if product.Stock < quantity {
			return common.NewInsufficientStockError(product.Name)
		}
		product.Stock -= quantity
		return nil
	})
	if err != nil {
		return models.Product{}, err
	}

	s.hub.Broadcast(notifier.EventProductUpdated, updated)
	return updated, nil
}
