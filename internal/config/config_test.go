package config_test

import (
	"testing"
	"time"

	"go-staffpay/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PART_TIME_WEEKDAY_RATE", "")
	t.Setenv("PART_TIME_SUNDAY_RATE", "")
	t.Setenv("SALARY_CATEGORIES", "")
	t.Setenv("OUTBOX_POLL_INTERVAL", "")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, int64(350), cfg.Policy.WeekdayRate)
	assert.Equal(t, int64(400), cfg.Policy.SundayRate)
	assert.Empty(t, cfg.Policy.SalaryCategories)
	assert.Equal(t, 3*time.Second, cfg.Worker.PollInterval)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PART_TIME_WEEKDAY_RATE", "380")
	t.Setenv("SALARY_CATEGORIES", "travel, uniform ,,")
	t.Setenv("OUTBOX_POLL_INTERVAL", "1s")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, int64(380), cfg.Policy.WeekdayRate)
	assert.Equal(t, []string{"travel", "uniform"}, cfg.Policy.SalaryCategories)
	assert.Equal(t, time.Second, cfg.Worker.PollInterval)
}

func TestLoad_InvalidRate(t *testing.T) {
	t.Setenv("PART_TIME_SUNDAY_RATE", "four hundred")

	_, err := config.Load()

	assert.Error(t, err)
}

func TestPayPolicy_HasCategory(t *testing.T) {
	open := config.DefaultPayPolicy()
	assert.True(t, open.HasCategory("anything"))

	closed := config.PayPolicy{SalaryCategories: []string{"travel"}}
	assert.True(t, closed.HasCategory("Travel"))
	assert.False(t, closed.HasCategory("uniform"))
}
