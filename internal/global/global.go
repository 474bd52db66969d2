// Package global holds the few process-wide singletons that are not
// dependency-injected: the server configuration and the request validator.
// Entity stores are NOT kept here; they are constructed by the entry point
// and injected into the services that use them.
package global

import (
	"github.com/go-playground/validator/v10"

	"github.com/shaesansv/pet-new/config"
)

var (
	// ServerConfig is the parsed server configuration, set once during init.
	ServerConfig *config.Configuration

	// Validate is the shared validator instance with custom validators
	// registered. Initialized by InitValidator.
	Validate *validator.Validate
)
