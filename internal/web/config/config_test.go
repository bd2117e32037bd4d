package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"finitefield.org/library-web/internal/web/credentials"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(WithoutSystemEnv(), WithEnvFile(""))
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Server.Address)
	require.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	require.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
	require.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, "Development", cfg.Environment)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "library_csrf", cfg.CSRF.CookieName)
	require.Equal(t, "X-CSRF-Token", cfg.CSRF.HeaderName)
	require.False(t, cfg.CSRF.Secure)
	require.Equal(t, credentials.Reference, cfg.Login)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "LIBRARY_HTTP_ADDR=:9000\nLIBRARY_ENVIRONMENT=Staging\nLIBRARY_LOG_LEVEL=DEBUG\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := Load(
		WithoutSystemEnv(),
		WithEnvFile(envFile),
		WithEnvMap(map[string]string{
			"LIBRARY_ENVIRONMENT":  "Production",
			"LIBRARY_CSRF_SECURE":  "true",
			"LIBRARY_READ_TIMEOUT": "5s",
		}),
	)
	require.NoError(t, err)

	require.Equal(t, ":9000", cfg.Server.Address, "dotenv value applies when nothing overrides it")
	require.Equal(t, "Production", cfg.Environment, "explicit map wins over dotenv")
	require.Equal(t, "debug", cfg.LogLevel)
	require.True(t, cfg.CSRF.Secure)
	require.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
}

func TestLoadSystemEnvOverridesDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("LIBRARY_HTTP_ADDR=:9000\n"), 0o600))
	t.Setenv("LIBRARY_HTTP_ADDR", ":9100")

	cfg, err := Load(WithEnvFile(envFile))
	require.NoError(t, err)
	require.Equal(t, ":9100", cfg.Server.Address)
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	_, err := Load(WithoutSystemEnv(), WithEnvFile(filepath.Join(t.TempDir(), "missing.env")))
	require.NoError(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	_, err := Load(
		WithoutSystemEnv(),
		WithEnvFile(""),
		WithEnvMap(map[string]string{
			"LIBRARY_READ_TIMEOUT": "soon",
			"LIBRARY_CSRF_SECURE":  "maybe",
		}),
	)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.ElementsMatch(t, []string{"LIBRARY_READ_TIMEOUT", "LIBRARY_CSRF_SECURE"}, verr.Fields())
}

func TestLoadCredentialOverrideKeepsWhitespace(t *testing.T) {
	cfg, err := Load(
		WithoutSystemEnv(),
		WithEnvFile(""),
		WithEnvMap(map[string]string{
			"LIBRARY_LOGIN_EMAIL":    "librarian@example.com",
			"LIBRARY_LOGIN_PASSWORD": " Secret1! ",
		}),
	)
	require.NoError(t, err)
	require.Equal(t, "librarian@example.com", cfg.Login.Email)
	require.Equal(t, " Secret1! ", cfg.Login.Password)
}
