package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	authhdl "github.com/shaesansv/pet-new/internal/api/auth/handler"
	basehdl "github.com/shaesansv/pet-new/internal/api/base/handler"
	cataloghdl "github.com/shaesansv/pet-new/internal/api/catalog/handler"
	orderhdl "github.com/shaesansv/pet-new/internal/api/order/handler"
	"github.com/shaesansv/pet-new/internal/api/realtime"
	apirouter "github.com/shaesansv/pet-new/internal/api/router"
	settingshdl "github.com/shaesansv/pet-new/internal/api/settings/handler"
	"github.com/shaesansv/pet-new/internal/common"
	"github.com/shaesansv/pet-new/internal/global"
	"github.com/shaesansv/pet-new/internal/logger"
)

// InitFiberApp builds the Fiber app: base configuration, middleware stack
// and route registration.
func InitFiberApp(appCtx *AppContext) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:       "Pet Shop API",
		ServerHeader:  "Pet Shop API",
		StrictRouting: false,
		CaseSensitive: true,
		UnescapePath:  true,

		BodyLimit:       10 * 1024 * 1024,
		Concurrency:     256 * 1024,
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,

		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"
			errorCode := common.ErrCodeInternalServer.Code

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
				switch code {
				case fiber.StatusBadRequest:
					errorCode = common.ErrCodeValidationInput.Code
				case fiber.StatusUnauthorized:
					errorCode = common.ErrCodeAuthToken.Code
				case fiber.StatusForbidden:
					errorCode = common.ErrCodeAuthRole.Code
				case fiber.StatusNotFound, fiber.StatusConflict:
					errorCode = common.ErrCodeStoreQuery.Code
				}
			}
			if customErr, ok := err.(*common.Error); ok {
				code = customErr.StatusCode
				message = customErr.Message
				errorCode = customErr.Code.Code
			}

			logger.GetErrorLogger().WithFields(map[string]interface{}{
				"path":       c.Path(),
				"method":     c.Method(),
				"request_id": c.Get("X-Request-ID"),
				"code":       code,
				"errorCode":  errorCode,
			}).Error(message)

			return c.Status(code).JSON(fiber.Map{
				"code":    errorCode,
				"message": message,
				"status":  "error",
			})
		},
	})

	// Request ID, for tracing one request through the logs.
	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return fmt.Sprintf("%d", time.Now().UnixNano())
		},
	}))

	// CORS first so preflight requests are answered before anything else.
	corsOrigins := global.ServerConfig.CORS_Origins
	var allowOrigins []string
	if corsOrigins == "*" {
		allowOrigins = []string{"*"}
	} else {
		allowOrigins = strings.Split(corsOrigins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
			"X-Requested-With",
		},
		AllowCredentials: global.ServerConfig.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "Content-Range", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}))

	// Security headers.
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	// Rate limiting, per client IP.
	if global.ServerConfig.RateLimit_Enabled && global.ServerConfig.RateLimit_Max > 0 {
		rateLimitMax := global.ServerConfig.RateLimit_Max
		rateLimitWindow := time.Duration(global.ServerConfig.RateLimit_Window) * time.Second
		app.Use(limiter.New(limiter.Config{
			Max:        rateLimitMax,
			Expiration: rateLimitWindow,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"code":    common.ErrCodeBusiness.Code,
					"message": "Too many requests, please try again later",
					"status":  "error",
				})
			},
			Next: func(c fiber.Ctx) bool {
				// Health checks, preflights and the long-lived websocket
				// endpoint are exempt.
				return c.Path() == "/api/v1/system/health" ||
					c.Path() == "/api/v1/live" ||
					c.Method() == "OPTIONS"
			},
		}))
		logger.GetAppLogger().Infof("Rate limiting enabled: %d requests per %d seconds", rateLimitMax, global.ServerConfig.RateLimit_Window)
	} else {
		logger.GetAppLogger().Info("Rate limiting disabled")
	}

	// Panic recovery.
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.GetErrorLogger().WithFields(map[string]interface{}{
				"panic":      e,
				"path":       c.Path(),
				"method":     c.Method(),
				"request_id": c.Get("X-Request-ID"),
			}).Error("Panic recovered")

			c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":    common.ErrCodeInternalServer.Code,
				"message": "Internal Server Error",
				"status":  "error",
			})
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/api/v1/system/health"
		},
	}))

	apirouter.Register(app, &apirouter.Dependencies{
		AuthManager: appCtx.AuthManager,
		System:      basehdl.NewSystemHandler(appCtx.Hub),
		Auth:        authhdl.NewAuthHandler(appCtx.AuthService, appCtx.AuthManager),
		Categories:  cataloghdl.NewCategoryHandler(appCtx.CategoryService),
		Products:    cataloghdl.NewProductHandler(appCtx.ProductService),
		Orders:      orderhdl.NewOrderHandler(appCtx.OrderService),
		Settings:    settingshdl.NewSettingsHandler(appCtx.SettingsService),
		Live:        realtime.NewLiveHandler(appCtx.Hub),
	})

	return app
}
