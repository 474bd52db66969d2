package cataloghdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/shaesansv/pet-new/internal/api/base/handler"
	catalogdto "github.com/shaesansv/pet-new/internal/api/catalog/dto"
	"github.com/shaesansv/pet-new/internal/api/catalog/models"
	catalogsvc "github.com/shaesansv/pet-new/internal/api/catalog/service"
	"github.com/shaesansv/pet-new/internal/logger"
	"github.com/shaesansv/pet-new/internal/utility"
)

// ProductHandler handles product requests.
type ProductHandler struct {
	basehdl.BaseHandler
	service *catalogsvc.ProductService
}

// NewProductHandler creates the product handler.
func NewProductHandler(service *catalogsvc.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// HandleList returns products, optionally filtered by categoryId, type and
// species. Filters are AND-combined. Public endpoint.
func (h *ProductHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		query := catalogdto.ProductListQuery{
			CategoryID: c.Query("categoryId"),
			Type:       c.Query("type"),
			Species:    c.Query("species"),
		}
		if err := h.ValidateInput(&query); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		filter := models.ProductFilter{
			Type:    query.Type,
			Species: query.Species,
		}
		if query.CategoryID != "" {
			filter.CategoryID = utility.String2ObjectID(query.CategoryID)
		}

		products, err := h.service.List(c.Context(), filter)
		h.HandleResponse(c, products, err)
		return nil
	})
}

// HandleGetById returns one product by id. Public endpoint.
func (h *ProductHandler) HandleGetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		product, err := h.service.FindOneById(c.Context(), id)
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleCreate creates a product. Admin only.
func (h *ProductHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.ProductCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		product, err := h.service.Create(c.Context(), &input)
		if err == nil {
			logger.LogAction("product_create", c, map[string]interface{}{
				"product_id": product.ID.Hex(),
				"name":       product.Name,
			})
		}
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleUpdate patches a product. Admin only.
func (h *ProductHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input catalogdto.ProductUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		product, err := h.service.Update(c.Context(), id, &input)
		if err == nil {
			logger.LogAction("product_update", c, map[string]interface{}{
				"product_id": id.Hex(),
			})
		}
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleDelete removes a product. Admin only.
func (h *ProductHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.service.Delete(c.Context(), id)
		if err == nil {
			logger.LogAction("product_delete", c, map[string]interface{}{
				"product_id": id.Hex(),
			})
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}
