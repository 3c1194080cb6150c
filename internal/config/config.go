// Package config defines the service configuration surface and its
// validation rules.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abgdnv/products-api/pkg/config/configloader"
	"github.com/go-playground/validator/v10"
)

var _ configloader.Validator = (*Config)(nil)

var validate = validator.New()

// Config is the full configuration of the products service.
type Config struct {
	HTTPServer HTTPConfig     `koanf:"server"`
	Auth       AuthConfig     `koanf:"auth"`
	Log        LogConfig      `koanf:"log"`
	PProf      PProfConfig    `koanf:"pprof"`
	Shutdown   ShutdownConfig `koanf:"shutdown"`
}

type HTTPConfig struct {
	Port           int `koanf:"port" validate:"required,gt=0,lte=65535"`
	MaxHeaderBytes int `koanf:"maxHeaderBytes" validate:"gte=0"`
	Timeout        struct {
		Read       time.Duration `koanf:"read" validate:"required,gt=0"`
		Write      time.Duration `koanf:"write" validate:"required,gt=0"`
		Idle       time.Duration `koanf:"idle" validate:"required,gt=0"`
		ReadHeader time.Duration `koanf:"readHeader" validate:"required,gt=0"`
	} `koanf:"timeout"`
}

// AuthConfig holds the static shared secret expected on protected routes.
type AuthConfig struct {
	// Lowercase key so PRODUCTS_AUTH_APIKEY maps onto it through the env
	// transformer.
	APIKey string `koanf:"apikey" validate:"required"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
}

type PProfConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr" validate:"required_if=Enabled true"`
}

type ShutdownConfig struct {
	Timeout time.Duration `koanf:"timeout" validate:"required,gt=0"`
}

// Validate checks the configuration against the struct tags above.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fields = append(fields, fmt.Sprintf("%s (rule: %s)", fieldErr.Namespace(), fieldErr.Tag()))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(fields, "; "))
	}
	return err
}

// String returns a printable representation with the API key masked.
func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("\n--- Server Configuration ---\n")
	b.WriteString(fmt.Sprintf("  server.port: %d\n", c.HTTPServer.Port))
	b.WriteString(fmt.Sprintf("  server.maxHeaderBytes: %d\n", c.HTTPServer.MaxHeaderBytes))
	b.WriteString(fmt.Sprintf("  server.timeout.read: %v\n", c.HTTPServer.Timeout.Read))
	b.WriteString(fmt.Sprintf("  server.timeout.write: %v\n", c.HTTPServer.Timeout.Write))
	b.WriteString(fmt.Sprintf("  server.timeout.idle: %v\n", c.HTTPServer.Timeout.Idle))
	b.WriteString(fmt.Sprintf("  server.timeout.readHeader: %v\n", c.HTTPServer.Timeout.ReadHeader))

	b.WriteString("\n--- Auth ---\n")
	b.WriteString(fmt.Sprintf("  auth.apiKey: %s\n", maskSecret(c.Auth.APIKey)))

	b.WriteString("\n--- Observability & Logging ---\n")
	b.WriteString(fmt.Sprintf("  log.level: %s\n", c.Log.Level))
	b.WriteString(fmt.Sprintf("  pprof.enabled: %t\n", c.PProf.Enabled))
	b.WriteString(fmt.Sprintf("  pprof.address: %s\n", c.PProf.Addr))

	b.WriteString("\n--- Application Behavior ---\n")
	b.WriteString(fmt.Sprintf("  shutdown.timeout: %s\n", c.Shutdown.Timeout))

	return b.String()
}

func maskSecret(secret string) string {
	if secret == "" {
		return "<not configured>"
	}
	return "****"
}
