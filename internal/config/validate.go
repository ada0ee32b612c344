package config

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be within [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth token TTLs must be positive")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range (got %d)", c.Server.Port)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Marketplace.validate(); err != nil {
		return fmt.Errorf("marketplace: %w", err)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}
	if c.RateLimit.MessagesPerMinute < 0 {
		return fmt.Errorf("rate_limit.messages_per_minute must be >= 0 (got %d)", c.RateLimit.MessagesPerMinute)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	if strings.TrimSpace(s.UploadDir) == "" {
		return fmt.Errorf("upload_dir is required")
	}
	if !strings.HasPrefix(s.PublicPath, "/") {
		return fmt.Errorf("public_path must start with / (got %q)", s.PublicPath)
	}
	if s.MaxFileSize <= 0 {
		return fmt.Errorf("max_file_size must be > 0 (got %d)", s.MaxFileSize)
	}
	if len(s.AllowedTypes()) == 0 {
		return fmt.Errorf("allowed_types must not be empty")
	}
	return nil
}

func (m *MarketplaceConfig) validate() error {
	if m.MinDescriptionLength < 0 {
		return fmt.Errorf("min_description_length must be >= 0 (got %d)", m.MinDescriptionLength)
	}
	if m.MaxNameLength <= 0 || m.MaxMessageLength <= 0 {
		return fmt.Errorf("max lengths must be > 0")
	}
	if _, err := url.ParseRequestURI(m.PublicBaseURL); err != nil {
		return fmt.Errorf("public_base_url: %w", err)
	}
	return nil
}
