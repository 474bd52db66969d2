// Package settingssvc - the site settings singleton.
package settingssvc

import (
	"context"

	basesvc "github.com/shaesansv/pet-new/internal/api/base/service"
	settingsdto "github.com/shaesansv/pet-new/internal/api/settings/dto"
	"github.com/shaesansv/pet-new/internal/api/settings/models"
	"github.com/shaesansv/pet-new/internal/memstore"
	"github.com/shaesansv/pet-new/internal/notifier"
	"github.com/shaesansv/pet-new/internal/utility"
)

// SettingsService manages the single site settings document.
type SettingsService struct {
	*basesvc.BaseService[models.SiteSettings, *models.SiteSettings]
	hub *notifier.Hub
}

// NewSettingsService creates the settings service.
func NewSettingsService(collection *memstore.Collection[models.SiteSettings, *models.SiteSettings], hub *notifier.Hub) *SettingsService {
	return &SettingsService{
		BaseService: basesvc.NewBaseService(collection),
		hub:         hub,
	}
}

// Seed creates the settings document with the given defaults if none exists
// yet. Called once at startup; a no-op when the singleton is already there.
func (s *SettingsService) Seed(ctx context.Context, description, youtubeURL string) (models.SiteSettings, error) {
	existing, err := s.FindOne(ctx, nil)
	if err == nil {
		return existing, nil
	}

	settings := models.SiteSettings{
		Description: description,
		YoutubeURL:  youtubeURL,
	}
	created, err := s.InsertOne(ctx, settings)
	if err != nil {
		return models.SiteSettings{}, err
	}
	return s.UpdateById(ctx, created.ID, func(doc *models.SiteSettings) error {
		doc.UpdatedAt = doc.CreatedAt
		return nil
	})
}

// Get returns the settings singleton.
func (s *SettingsService) Get(ctx context.Context) (models.SiteSettings, error) {
	return s.FindOne(ctx, nil)
}

// Update merges the patch into the singleton and stamps UpdatedAt with the
// current time, even when the patch is empty. The result is broadcast as
// settings:updated.
func (s *SettingsService) Update(ctx context.Context, input *settingsdto.SettingsUpdateInput) (models.SiteSettings, error) {
	current, err := s.FindOne(ctx, nil)
	if err != nil {
		return models.SiteSettings{}, err
	}

	updated, err := s.UpdateById(ctx, current.ID, func(settings *models.SiteSettings) error {
		if input.Description != nil {
			settings.Description = *input.Description
		}
		if input.YoutubeURL != nil {
			settings.YoutubeURL = *input.YoutubeURL
		}
		settings.UpdatedAt = utility.CurrentTimeInMilli()
		return nil
	})
	if err != nil {
		return models.SiteSettings{}, err
	}

	s.hub.Broadcast(notifier.EventSettingsUpdated, updated)
	return updated, nil
}
