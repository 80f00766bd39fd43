package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	assert.NotNil(t, AppConfig)
	assert.NotEmpty(t, AppConfig.Port)
	assert.NotEmpty(t, AppConfig.DBDriver)
	assert.Positive(t, AppConfig.SaltRound)
}

func TestGetEnvFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "fallback", getEnv("SKILLUP_TEST_UNSET_KEY", "fallback"))

	t.Setenv("SKILLUP_TEST_SET_KEY", "set")
	assert.Equal(t, "set", getEnv("SKILLUP_TEST_SET_KEY", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	assert.Equal(t, 7, getEnvInt("SKILLUP_TEST_UNSET_INT", 7))

	t.Setenv("SKILLUP_TEST_INT", "12")
	assert.Equal(t, 12, getEnvInt("SKILLUP_TEST_INT", 7))

	t.Setenv("SKILLUP_TEST_INT", "not-a-number")
	assert.Equal(t, 7, getEnvInt("SKILLUP_TEST_INT", 7))
}
