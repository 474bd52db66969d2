package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	InitValidator()
	m.Run()
}

func TestNoXSS(t *testing.T) {
	type input struct {
		Name string `validate:"no_xss"`
	}

	assert.NoError(t, Validate.Struct(&input{Name: "Exotic Birds!"}))
	assert.Error(t, Validate.Struct(&input{Name: "<script>alert(1)</script>"}))
	assert.Error(t, Validate.Struct(&input{Name: "javascript:alert(1)"}))
	assert.Error(t, Validate.Struct(&input{Name: `<img onerror=alert(1)>`}))
}

func TestStrongPassword(t *testing.T) {
	type input struct {
		Password string `validate:"strong_password"`
	}

	assert.NoError(t, Validate.Struct(&input{Password: "Secret123!"}))
	assert.NoError(t, Validate.Struct(&input{Password: "secret123!"})) // lower+digit+special
	assert.Error(t, Validate.Struct(&input{Password: "Sh0r!"}))        // too short
	assert.Error(t, Validate.Struct(&input{Password: "alllowercase"})) // one class only
	assert.Error(t, Validate.Struct(&input{Password: "lowerUPPER"}))   // two classes only
}

func TestYoutubeURL(t *testing.T) {
	type input struct {
		URL string `validate:"youtube_url"`
	}

	assert.NoError(t, Validate.Struct(&input{URL: ""}))
	assert.NoError(t, Validate.Struct(&input{URL: "https://www.youtube.com/watch?v=abc"}))
	assert.NoError(t, Validate.Struct(&input{URL: "https://youtu.be/abc"}))
	assert.Error(t, Validate.Struct(&input{URL: "https://vimeo.com/123"}))
	assert.Error(t, Validate.Struct(&input{URL: "ftp://youtube.com/x"}))
	assert.Error(t, Validate.Struct(&input{URL: "not a url"}))
}
