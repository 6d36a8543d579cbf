// Package config loads runtime settings for password hashing from .env files
// and the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/hasbyte1/go-password/hashing"
	"github.com/hasbyte1/go-password/password"
)

// Environment variables read by [Load].
const (
	EnvWorkFactor = "PASSWORD_WORK_FACTOR"
	EnvLogLevel   = "PASSWORD_LOG_LEVEL"
)

// ErrInvalidConfig is returned when a setting cannot be parsed or fails
// validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config holds the settings shared by the library and the CLI.
type Config struct {
	// WorkFactor is the default log2 PBKDF2 iteration count.
	WorkFactor int `validate:"min=1,max=30"`

	// LogLevel is the minimum level logged by the CLI.
	LogLevel string `validate:"oneof=debug info warn error"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		WorkFactor: hashing.DefaultWorkFactor,
		LogLevel:   "info",
	}
}

// Load reads files with godotenv (variables already present in the
// environment win; missing files are ignored), then builds a Config from the
// environment on top of [Default].
func Load(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: loading %s: %w", ErrInvalidConfig, f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config using lookup for each variable.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if v, ok := lookup(EnvWorkFactor); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, EnvWorkFactor, v)
		}
		cfg.WorkFactor = n
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Apply installs WorkFactor as the process-wide default. Call it once at
// startup, before any hashing.
func (c Config) Apply() {
	password.SetDefaultWorkFactor(c.WorkFactor)
}

// Hasher builds an explicitly configured [password.Hasher].
func (c Config) Hasher() (*password.Hasher, error) {
	return password.NewHasher(password.Config{WorkFactor: c.WorkFactor})
}
