package config_test

import (
	"testing"

	"worknest/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("reads the environment once into the struct", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_NAME", "worknest_prod")
		t.Setenv("SMTP_ADDR", "smtp.internal:25")
		t.Setenv("SMTP_FROM", "noreply@worknest.test")
		t.Setenv("PROFILE_BASE_URL", "http://profile:8080")
		t.Setenv("SCHEDULE_BASE_URL", "http://schedule:8080")

		cfg := config.Load()

		assert.Equal(t, "smtp.internal:25", cfg.SMTPAddr)
		assert.Equal(t, "noreply@worknest.test", cfg.SMTPFrom)
		assert.Equal(t, "http://profile:8080", cfg.ProfileBaseURL)
		assert.Equal(t, "http://schedule:8080", cfg.ScheduleBaseURL)
		assert.Contains(t, cfg.DSN(), "host=db.internal")
		assert.Contains(t, cfg.DSN(), "dbname=worknest_prod")
	})

	t.Run("peer URLs default to empty so the modules stay in-process", func(t *testing.T) {
		t.Setenv("PROFILE_BASE_URL", "")
		t.Setenv("SCHEDULE_BASE_URL", "")

		cfg := config.Load()

		assert.Empty(t, cfg.ProfileBaseURL)
		assert.Empty(t, cfg.ScheduleBaseURL)
	})
}
