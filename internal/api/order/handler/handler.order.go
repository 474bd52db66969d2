// Package orderhdl - HTTP handlers for orders.
package orderhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/shaesansv/pet-new/internal/api/base/handler"
	orderdto "github.com/shaesansv/pet-new/internal/api/order/dto"
	ordersvc "github.com/shaesansv/pet-new/internal/api/order/service"
	"github.com/shaesansv/pet-new/internal/logger"
)

// OrderHandler handles order requests.
type OrderHandler struct {
	basehdl.BaseHandler
	service *ordersvc.OrderService
}

// NewOrderHandler creates the order handler.
func NewOrderHandler(service *ordersvc.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// HandlePlace places a new order. Public endpoint: customers check out
// without an account.
func (h *OrderHandler) HandlePlace(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input orderdto.OrderCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.service.Place(c.Context(), &input)
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleList returns all orders. Admin only.
func (h *OrderHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		orders, err := h.service.List(c.Context())
		h.HandleResponse(c, orders, err)
		return nil
	})
}

// HandleGetById returns one order by id. Admin only.
func (h *OrderHandler) HandleGetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		order, err := h.service.FindOneById(c.Context(), id)
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleUpdateStatus transitions an order's status. Admin only.
func (h *OrderHandler) HandleUpdateStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input orderdto.OrderStatusUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.service.UpdateStatus(c.Context(), id, &input)
		if err == nil {
			logger.LogAction("order_status_update", c, map[string]interface{}{
				"order_id": id.Hex(),
				"status":   input.Status,
			})
		}
		h.HandleResponse(c, order, err)
		return nil
	})
}
