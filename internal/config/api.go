package config

import (
	"fmt"
	"os"

	"github.com/losslocator/locator/pkg/middleware"
	"github.com/losslocator/locator/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "LOCATOR_CORS_ENABLED",
	Origins:          "LOCATOR_CORS_ORIGINS",
	AllowedMethods:   "LOCATOR_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "LOCATOR_CORS_ALLOWED_HEADERS",
	AllowCredentials: "LOCATOR_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "LOCATOR_CORS_MAX_AGE",
}

var authEnv = &middleware.AuthEnv{
	Enabled:  "LOCATOR_AUTH_ENABLED",
	Issuer:   "LOCATOR_AUTH_ISSUER",
	ClientID: "LOCATOR_AUTH_CLIENT_ID",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "LOCATOR_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "LOCATOR_PAGINATION_MAX_PAGE_SIZE",
}

// APIConfig holds API routing, CORS, auth, and pagination settings.
type APIConfig struct {
	BasePath   string                `toml:"base_path"`
	CORS       middleware.CORSConfig `toml:"cors"`
	Auth       middleware.AuthConfig `toml:"auth"`
	Pagination pagination.Config     `toml:"pagination"`
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS, auth, and pagination configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Auth.Finalize(authEnv); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}

	c.CORS.Merge(&overlay.CORS)
	c.Auth.Merge(&overlay.Auth)
	c.Pagination.Merge(&overlay.Pagination)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("LOCATOR_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
}
