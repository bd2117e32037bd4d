package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"finitefield.org/library-web/internal/web/credentials"
)

const (
	defaultEnvFile         = ".env"
	defaultAddress         = ":8080"
	defaultEnvironment     = "Development"
	defaultLogLevel        = "info"
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultCSRFCookieName  = "library_csrf"
	defaultCSRFHeaderName  = "X-CSRF-Token"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server      ServerConfig
	Environment string
	LogLevel    string
	CSRF        CSRFConfig
	Login       credentials.Credential
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// CSRFConfig controls the double-submit cookie.
type CSRFConfig struct {
	CookieName string
	HeaderName string
	Secure     bool
}

// ValidationError is returned when configuration values cannot be parsed.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid key list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path. An empty path disables the file.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects explicit values that take precedence over the system environment.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles configuration from defaults, the .env file, the process
// environment and an optional explicit map, in increasing precedence.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnv, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if value, ok := options.envMap[key]; ok {
			return value, true
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		value, ok := dotEnv[key]
		return value, ok
	}

	var invalid []string
	duration := func(key string, fallback time.Duration) time.Duration {
		raw, ok := lookup(key)
		if !ok || strings.TrimSpace(raw) == "" {
			return fallback
		}
		parsed, err := time.ParseDuration(strings.TrimSpace(raw))
		if err != nil || parsed <= 0 {
			invalid = append(invalid, key)
			return fallback
		}
		return parsed
	}
	boolean := func(key string, fallback bool) bool {
		raw, ok := lookup(key)
		if !ok || strings.TrimSpace(raw) == "" {
			return fallback
		}
		parsed, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			invalid = append(invalid, key)
			return fallback
		}
		return parsed
	}
	str := func(key, fallback string) string {
		if raw, ok := lookup(key); ok && strings.TrimSpace(raw) != "" {
			return strings.TrimSpace(raw)
		}
		return fallback
	}
	// Credentials are compared verbatim, so they are not trimmed.
	raw := func(key, fallback string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		return fallback
	}

	cfg := Config{
		Server: ServerConfig{
			Address:         str("LIBRARY_HTTP_ADDR", defaultAddress),
			ReadTimeout:     duration("LIBRARY_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:    duration("LIBRARY_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:     duration("LIBRARY_IDLE_TIMEOUT", defaultIdleTimeout),
			ShutdownTimeout: duration("LIBRARY_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		},
		Environment: str("LIBRARY_ENVIRONMENT", defaultEnvironment),
		LogLevel:    strings.ToLower(str("LIBRARY_LOG_LEVEL", defaultLogLevel)),
		CSRF: CSRFConfig{
			CookieName: str("LIBRARY_CSRF_COOKIE_NAME", defaultCSRFCookieName),
			HeaderName: str("LIBRARY_CSRF_HEADER_NAME", defaultCSRFHeaderName),
			Secure:     boolean("LIBRARY_CSRF_SECURE", false),
		},
		Login: credentials.Credential{
			Email:    raw("LIBRARY_LOGIN_EMAIL", credentials.Reference.Email),
			Password: raw("LIBRARY_LOGIN_PASSWORD", credentials.Reference.Password),
		},
	}

	if len(invalid) > 0 {
		return Config{}, &ValidationError{fields: invalid}
	}
	return cfg, nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return values, nil
}
