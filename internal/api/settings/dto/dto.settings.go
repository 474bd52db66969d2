// Package settingsdto - request inputs for site settings.
package settingsdto

// SettingsUpdateInput is the partial patch for the settings singleton. Nil
// fields are left untouched, so a patch never clears a value it did not send.
type SettingsUpdateInput struct {
	Description *string `json:"description" validate:"omitempty,no_xss"`
	YoutubeURL  *string `json:"youtubeUrl" validate:"omitempty,youtube_url"`
}
