// Package catalogsvc - business logic for categories and products.
package catalogsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/shaesansv/pet-new/internal/api/base/service"
	catalogdto "github.com/shaesansv/pet-new/internal/api/catalog/dto"
	"github.com/shaesansv/pet-new/internal/api/catalog/models"
	"github.com/shaesansv/pet-new/internal/memstore"
	"github.com/shaesansv/pet-new/internal/notifier"
	"github.com/shaesansv/pet-new/internal/utility"
)

// CategoryService manages the category collection. Every successful
// mutation is broadcast through the notifier hub.
type CategoryService struct {
	*basesvc.BaseService[models.Category, *models.Category]
	hub *notifier.Hub
}

// NewCategoryService creates the category service over the given collection.
func NewCategoryService(collection *memstore.Collection[models.Category, *models.Category], hub *notifier.Hub) *CategoryService {
	return &CategoryService{
		BaseService: basesvc.NewBaseService(collection),
		hub:         hub,
	}
}

// Create inserts a new category. The slug is derived from the name at
// creation time and stays in sync with the most recently set name.
func (s *CategoryService) Create(ctx context.Context, input *catalogdto.CategoryCreateInput) (models.Category, error) {
	category := models.Category{
		Name:        input.Name,
		Slug:        utility.Slugify(input.Name),
		Description: input.Description,
	}

	created, err := s.InsertOne(ctx, category)
	if err != nil {
		return models.Category{}, err
	}

	s.hub.Broadcast(notifier.EventCategoryCreated, created)
	return created, nil
}

// Update applies a partial patch. Setting the name re-derives the slug.
func (s *CategoryService) Update(ctx context.Context, id primitive.ObjectID, input *catalogdto.CategoryUpdateInput) (models.Category, error) {
	updated, err := s.UpdateById(ctx, id, func(category *models.Category) error {
		if input.Name != nil {
			category.Name = *input.Name
			category.Slug = utility.Slugify(*input.Name)
		}
		if input.Description != nil {
			category.Description = *input.Description
		}
		return nil
	})
	if err != nil {
		return models.Category{}, err
	}

	s.hub.Broadcast(notifier.EventCategoryUpdated, updated)
	return updated, nil
}

// Delete removes a category. Products referencing the category are left
// untouched: there is no cascade, a dangling categoryId is an accepted
// inconsistency of this system.
func (s *CategoryService) Delete(ctx context.Context, id primitive.ObjectID) error {
	category, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	if err := s.DeleteById(ctx, id); err != nil {
		return err
	}

	s.hub.Broadcast(notifier.EventCategoryDeleted, category)
	return nil
}

// List returns all categories in creation order.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.Find(ctx, nil)
}

// FindBySlug returns the category with the given slug.
func (s *CategoryService) FindBySlug(ctx context.Context, slug string) (models.Category, error) {
	return s.FindOne(ctx, func(category *models.Category) bool {
		return category.Slug == slug
	})
}
