package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			// Setup: set environment variable if provided
			if tt.envValue != "" {
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key) // ensure it's not set
			}

			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetEnvAsType(t *testing.T) {
	t.Setenv("TEST_BOOL", "false")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BAD_INT", "forty-two")

	assert.False(t, GetEnvAsType("TEST_BOOL", true))
	assert.Equal(t, 42, GetEnvAsType("TEST_INT", 0))
	assert.Equal(t, 7, GetEnvAsType("TEST_BAD_INT", 7))
	assert.Equal(t, "fallback", GetEnvAsType("TEST_UNSET_STRING", "fallback"))
}

func TestLoadConfig(t *testing.T) {
	vars := []string{"APP_ENV", "LOG_LEVEL", "LOG_FORMAT", "PIZZA_STORE", "MENU_FORMAT", "PRINT_STEPS"}
	cleanupTestEnv := func() {
		for _, v := range vars {
			os.Unsetenv(v)
		}
	}

	t.Run("successful config load with all env vars", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("APP_ENV", "production")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("PIZZA_STORE", "Chicago")
		t.Setenv("MENU_FORMAT", "yaml")
		t.Setenv("PRINT_STEPS", "false")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "production", config.Environment)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, "json", config.LogFormat)
		assert.Equal(t, "chicago", config.Store)
		assert.Equal(t, "yaml", config.MenuFormat)
		assert.False(t, config.PrintSteps)
		assert.IsType(t, &logrus.JSONFormatter{}, config.Formatter())

		level, err := config.Level()
		require.NoError(t, err)
		assert.Equal(t, logrus.DebugLevel, level)
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		cleanupTestEnv()

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "development", config.Environment)
		assert.Equal(t, "info", config.LogLevel)
		assert.Equal(t, "text", config.LogFormat)
		assert.Equal(t, "ny", config.Store)
		assert.Equal(t, "text", config.MenuFormat)
		assert.True(t, config.PrintSteps)
		assert.IsType(t, &logrus.TextFormatter{}, config.Formatter())
	})

	invalid := []struct {
		name  string
		key   string
		value string
	}{
		{name: "should fail with invalid log level", key: "LOG_LEVEL", value: "loud"},
		{name: "should fail with invalid log format", key: "LOG_FORMAT", value: "xml"},
		{name: "should fail with invalid menu format", key: "MENU_FORMAT", value: "csv"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			cleanupTestEnv()
			t.Setenv(tt.key, tt.value)

			config, err := LoadConfig()

			assert.Error(t, err)
			assert.Nil(t, config, "Config should be nil when error occurs")
		})
	}
}

func TestSetOutputLevelSilencesLoading(t *testing.T) {
	hook := test.NewLocal(log)
	previous := log.GetLevel()
	t.Cleanup(func() { SetOutputLevel(previous) })

	SetOutputLevel(logrus.DebugLevel)
	_, err := LoadConfig()
	require.NoError(t, err)
	assert.NotEmpty(t, hook.AllEntries())

	hook.Reset()
	SetOutputLevel(logrus.WarnLevel)
	_, err = LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, hook.AllEntries())
}

func TestConfigString(t *testing.T) {
	c := &Config{Environment: "development", LogLevel: "info", LogFormat: "text", Store: "ny", MenuFormat: "text", PrintSteps: true}
	assert.Equal(t, "Config{Environment: development, LogLevel: info, LogFormat: text, Store: ny, MenuFormat: text, PrintSteps: true}", c.String())
}

// Benchmark tests
func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
