package main

import (
	"context"

	authdto "github.com/shaesansv/pet-new/internal/api/auth/dto"
	"github.com/shaesansv/pet-new/internal/global"
	"github.com/shaesansv/pet-new/internal/logger"
)

// InitDefaultData seeds the admin account and the site settings singleton.
// Storage is in-memory, so this runs on every start.
func InitDefaultData(appCtx *AppContext) {
	log := logger.GetAppLogger()
	ctx := context.Background()
	cfg := global.ServerConfig

	// The first registered account becomes the admin.
	admin, err := appCtx.AuthService.Register(ctx, &authdto.UserRegisterInput{
		Name:     "Administrator",
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})
	if err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}
	log.WithFields(map[string]interface{}{
		"email": admin.Email,
		"role":  admin.Role,
	}).Info("Admin account seeded")

	settings, err := appCtx.SettingsService.Seed(ctx, cfg.SiteDescription, cfg.SiteYoutubeURL)
	if err != nil {
		log.Fatalf("Failed to seed site settings: %v", err)
	}
	log.WithFields(map[string]interface{}{
		"settings_id": settings.ID.Hex(),
	}).Info("Site settings seeded")
}
