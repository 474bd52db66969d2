package main

import (
	"github.com/shaesansv/pet-new/config"
	authmodels "github.com/shaesansv/pet-new/internal/api/auth/models"
	authsvc "github.com/shaesansv/pet-new/internal/api/auth/service"
	catalogmodels "github.com/shaesansv/pet-new/internal/api/catalog/models"
	catalogsvc "github.com/shaesansv/pet-new/internal/api/catalog/service"
	"github.com/shaesansv/pet-new/internal/api/middleware"
	ordermodels "github.com/shaesansv/pet-new/internal/api/order/models"
	ordersvc "github.com/shaesansv/pet-new/internal/api/order/service"
	settingsmodels "github.com/shaesansv/pet-new/internal/api/settings/models"
	settingssvc "github.com/shaesansv/pet-new/internal/api/settings/service"
	"github.com/shaesansv/pet-new/internal/global"
	"github.com/shaesansv/pet-new/internal/logger"
	"github.com/shaesansv/pet-new/internal/memstore"
	"github.com/shaesansv/pet-new/internal/notifier"
)

// InitGlobal initializes configuration and the validator singleton.
func InitGlobal() {
	initConfig()
	initValidator()
}

func initConfig() {
	cfg := config.NewConfig()
	if cfg == nil {
		logger.GetAppLogger().Fatal("failed to load server configuration")
	}
	global.ServerConfig = cfg
}

func initValidator() {
	global.InitValidator()
}

// AppContext holds every constructed component. Stores and services are
// built here once and injected everywhere they are used; nothing reaches
// for ambient store state.
type AppContext struct {
	Hub *notifier.Hub

	Categories *memstore.Collection[catalogmodels.Category, *catalogmodels.Category]
	Products   *memstore.Collection[catalogmodels.Product, *catalogmodels.Product]
	Orders     *memstore.Collection[ordermodels.Order, *ordermodels.Order]
	Settings   *memstore.Collection[settingsmodels.SiteSettings, *settingsmodels.SiteSettings]
	Users      *memstore.Collection[authmodels.User, *authmodels.User]

	CategoryService *catalogsvc.CategoryService
	ProductService  *catalogsvc.ProductService
	OrderService    *ordersvc.OrderService
	SettingsService *settingssvc.SettingsService
	AuthService     *authsvc.AuthService

	AuthManager *middleware.AuthManager
}

// InitApp builds the stores, the notifier hub and the service layer.
func InitApp() *AppContext {
	hub := notifier.NewHub()

	categories := memstore.NewCollection[catalogmodels.Category, *catalogmodels.Category]("categories")
	products := memstore.NewCollection[catalogmodels.Product, *catalogmodels.Product]("products")
	orders := memstore.NewCollection[ordermodels.Order, *ordermodels.Order]("orders")
	settings := memstore.NewCollection[settingsmodels.SiteSettings, *settingsmodels.SiteSettings]("site_settings")
	users := memstore.NewCollection[authmodels.User, *authmodels.User]("users")

	categoryService := catalogsvc.NewCategoryService(categories, hub)
	productService := catalogsvc.NewProductService(products, categories, hub)
	orderService := ordersvc.NewOrderService(orders, productService, hub)
	settingsService := settingssvc.NewSettingsService(settings, hub)
	authService := authsvc.NewAuthService(users, global.ServerConfig.JwtSecret)

	return &AppContext{
		Hub:        hub,
		Categories: categories,
		Products:   products,
		Orders:     orders,
		Settings:   settings,
		Users:      users,

		CategoryService: categoryService,
		ProductService:  productService,
		OrderService:    orderService,
		SettingsService: settingsService,
		AuthService:     authService,

		AuthManager: middleware.NewAuthManager(authService),
	}
}
