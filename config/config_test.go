package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_DSN", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("APP_ENV", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "gemini-2.0-flash-001", cfg.Gemini.Model)
	assert.Equal(t, "development", cfg.App.Environment)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DB_DSN", "postgres://localhost/draftdb")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-pro")

	cfg := Load()

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "postgres://localhost/draftdb", cfg.Database.DSN)
	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-pro", cfg.Gemini.Model)
}

func TestMissingKeys(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg := Load()
	assert.ElementsMatch(t, []string{"DB_DSN", "GEMINI_API_KEY"}, cfg.MissingKeys())

	t.Setenv("DB_DSN", "postgres://localhost/draftdb")
	t.Setenv("GEMINI_API_KEY", "key")

	cfg = Load()
	assert.Empty(t, cfg.MissingKeys())
}
