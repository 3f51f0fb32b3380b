package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every problem found in a Config
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// ValidateConfig checks that the configuration is usable in the current
// environment
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()
	var errs ValidationErrors

	required := map[string]string{
		"server_port": cfg.ServerPort,
		"db_host":     cfg.DBHost,
		"db_port":     cfg.DBPort,
		"db_user":     cfg.DBUser,
		"db_name":     cfg.DBName,
		"db_password": cfg.DBPassword,
		"jwt_secret":  cfg.JWTSecret,
	}
	for _, field := range []string{"server_port", "db_host", "db_port", "db_user", "db_name", "db_password", "jwt_secret"} {
		if required[field] == "" {
			errs = append(errs, ValidationError{Field: field, Message: "is required"})
		}
	}

	if env == Production && len(cfg.JWTSecret) > 0 && len(cfg.JWTSecret) < 32 {
		errs = append(errs, ValidationError{Field: "jwt_secret", Message: "must be at least 32 characters in production"})
	}

	if cfg.RedisDB < 0 || cfg.RedisDB > 15 {
		errs = append(errs, ValidationError{Field: "redis_db", Message: "must be between 0 and 15"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
