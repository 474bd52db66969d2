// Package config loads the static server configuration from environment
// variables, optionally seeded from a config/env/<GO_ENV>.env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration holds the static settings required to run the server.
type Configuration struct {
	Address   string `env:"ADDRESS" envDefault:":8080"` // Listen address
	JwtSecret string `env:"JWT_SECRET,required"`        // JWT signing secret

	// CORS
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Allowed origins (comma separated, * = all)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Allow credentials

	// Rate limiting
	RateLimit_Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"` // Toggle rate limiting
	RateLimit_Max     int  `env:"RATE_LIMIT_MAX" envDefault:"100"`      // Max requests per window
	RateLimit_Window  int  `env:"RATE_LIMIT_WINDOW" envDefault:"60"`    // Window length (seconds)

	// TLS/HTTPS
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Serve HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Certificate path (.crt or .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Private key path (.key)

	// Seed admin account created at process start (stores are in-memory,
	// so every start is a first start).
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@petshop.local"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"ChangeMe123!"`

	// Default site settings seeded at process start.
	SiteDescription string `env:"SITE_DESCRIPTION" envDefault:"Your friendly neighbourhood pet shop"`
	SiteYoutubeURL  string `env:"SITE_YOUTUBE_URL" envDefault:""`
}

// getEnvPath returns the env file path for the current environment,
// walking up from the working directory until a config/env dir is found.
func getEnvPath() string {
	environment := os.Getenv("GO_ENV")
	if environment == "" {
		environment = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		fmt.Printf("cannot determine working directory: %v\n", err)
		return ""
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", environment))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig reads the configuration from the environment, loading the env
// file for GO_ENV first when one exists.
func NewConfig() *Configuration {
	// The env file is optional: without one the configuration comes
	// entirely from the process environment (container deployments).
	if envPath := getEnvPath(); envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			// fmt because the logger may not be initialized yet.
			fmt.Printf("no env file loaded from %s: %v\n", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("failed to parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
