// Package apirouter wires every endpoint onto the Fiber app.
//
// Route registration order matters: Fiber matches routes in the order they
// were registered, so the public endpoints are registered before the guarded
// groups that share their path prefixes.
package apirouter

import (
	"github.com/gofiber/fiber/v3"

	authhdl "github.com/shaesansv/pet-new/internal/api/auth/handler"
	basehdl "github.com/shaesansv/pet-new/internal/api/base/handler"
	cataloghdl "github.com/shaesansv/pet-new/internal/api/catalog/handler"
	"github.com/shaesansv/pet-new/internal/api/middleware"
	orderhdl "github.com/shaesansv/pet-new/internal/api/order/handler"
	"github.com/shaesansv/pet-new/internal/api/realtime"
	settingshdl "github.com/shaesansv/pet-new/internal/api/settings/handler"
)

// Dependencies carries the constructed handlers and middleware into route
// registration. Everything is built in the entry point and injected here.
type Dependencies struct {
	AuthManager *middleware.AuthManager
	System      *basehdl.SystemHandler
	Auth        *authhdl.AuthHandler
	Categories  *cataloghdl.CategoryHandler
	Products    *cataloghdl.ProductHandler
	Orders      *orderhdl.OrderHandler
	Settings    *settingshdl.SettingsHandler
	Live        *realtime.LiveHandler
}

// RegisterRouteWithMiddleware registers one route inside its own group so
// the middleware chain applies only to it. Passing middleware directly to
// the route methods does not work reliably; .Use() on a dedicated group does.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "PATCH":
		routeGroup.Patch(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// Register mounts all routes under /api/v1.
func Register(app *fiber.App, deps *Dependencies) {
	v1 := app.Group("/api/v1")

	// Operational.
	v1.Get("/system/health", deps.System.HandleHealth)

	// Live updates. The websocket endpoint is public: the storefront
	// subscribes without an account.
	v1.Get("/live", deps.Live.HandleLive)

	// Public storefront surface. Registered before the guarded groups below
	// that share the same prefixes.
	v1.Get("/categories", deps.Categories.HandleList)
	v1.Get("/categories/:id", deps.Categories.HandleGetById)
	v1.Get("/products", deps.Products.HandleList)
	v1.Get("/products/:id", deps.Products.HandleGetById)
	v1.Get("/settings", deps.Settings.HandleGet)
	v1.Post("/orders", deps.Orders.HandlePlace)

	// Auth.
	v1.Post("/auth/register", deps.Auth.HandleRegister)
	v1.Post("/auth/login", deps.Auth.HandleLogin)

	authOnly := deps.AuthManager.Authenticate()
	RegisterRouteWithMiddleware(v1, "/auth", "POST", "/logout", []fiber.Handler{authOnly}, deps.Auth.HandleLogout)
	RegisterRouteWithMiddleware(v1, "/auth", "GET", "/profile", []fiber.Handler{authOnly}, deps.Auth.HandleGetProfile)

	// Admin back office.
	adminChain := []fiber.Handler{authOnly, deps.AuthManager.RequireAdmin()}

	RegisterRouteWithMiddleware(v1, "/categories", "POST", "/", adminChain, deps.Categories.HandleCreate)
	RegisterRouteWithMiddleware(v1, "/categories", "PATCH", "/:id", adminChain, deps.Categories.HandleUpdate)
	RegisterRouteWithMiddleware(v1, "/categories", "DELETE", "/:id", adminChain, deps.Categories.HandleDelete)

	RegisterRouteWithMiddleware(v1, "/products", "POST", "/", adminChain, deps.Products.HandleCreate)
	RegisterRouteWithMiddleware(v1, "/products", "PATCH", "/:id", adminChain, deps.Products.HandleUpdate)
	RegisterRouteWithMiddleware(v1, "/products", "DELETE", "/:id", adminChain, deps.Products.HandleDelete)

	RegisterRouteWithMiddleware(v1, "/orders", "GET", "/", adminChain, deps.Orders.HandleList)
	RegisterRouteWithMiddleware(v1, "/orders", "GET", "/:id", adminChain, deps.Orders.HandleGetById)
	RegisterRouteWithMiddleware(v1, "/orders", "PATCH", "/:id/status", adminChain, deps.Orders.HandleUpdateStatus)

	RegisterRouteWithMiddleware(v1, "/settings", "PATCH", "/", adminChain, deps.Settings.HandleUpdate)
}
