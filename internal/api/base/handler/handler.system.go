package basehdl

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/shaesansv/pet-new/internal/notifier"
)

// SystemHandler serves operational endpoints.
type SystemHandler struct {
	BaseHandler
	hub       *notifier.Hub
	startedAt time.Time
}

// NewSystemHandler creates the system handler.
func NewSystemHandler(hub *notifier.Hub) *SystemHandler {
	return &SystemHandler{hub: hub, startedAt: time.Now()}
}

// HandleHealth reports process liveness plus a few cheap runtime numbers.
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	h.HandleResponse(c, fiber.Map{
		"status":           "ok",
		"uptime_seconds":   int64(time.Since(h.startedAt).Seconds()),
		"live_subscribers": h.hub.Count(),
	}, nil)
	return nil
}
