// Package realtime upgrades HTTP requests to websocket connections and
// plugs them into the notifier hub.
package realtime

import (
	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"github.com/shaesansv/pet-new/internal/common"
	"github.com/shaesansv/pet-new/internal/logger"
	"github.com/shaesansv/pet-new/internal/notifier"
)

// LiveHandler serves the live-update websocket endpoint.
type LiveHandler struct {
	hub      *notifier.Hub
	upgrader websocket.FastHTTPUpgrader
}

// NewLiveHandler creates the live-update handler over the given hub.
func NewLiveHandler(hub *notifier.Hub) *LiveHandler {
	return &LiveHandler{
		hub: hub,
		upgrader: websocket.FastHTTPUpgrader{
			// The storefront and the back office run on their own origins;
			// CORS policy is enforced at the HTTP middleware layer.
			CheckOrigin: func(ctx *fasthttp.RequestCtx) bool { return true },
		},
	}
}

// HandleLive upgrades the request and keeps the connection subscribed until
// the client goes away. Messages from the client are drained and ignored:
// the stream is one-way, server to client.
func (h *LiveHandler) HandleLive(c fiber.Ctx) error {
	err := h.upgrader.Upgrade(c.Context(), func(conn *websocket.Conn) {
		sub := h.hub.Subscribe(conn)
		defer h.hub.Unsubscribe(sub.ID)
		defer conn.Close()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
	if err != nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"path": c.Path(),
		}).WithError(err).Warn("websocket upgrade failed")
		return common.NewError(
			common.ErrCodeValidationFormat,
			"websocket upgrade failed",
			common.StatusBadRequest,
			err,
		)
	}
	return nil
}
