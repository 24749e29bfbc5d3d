package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		errorMsg    string
	}{
		{
			name:        "Success with defaults",
			envVars:     map[string]string{},
			expectError: false,
		},
		{
			name: "Success with all config specified",
			envVars: map[string]string{
				"SERVER_HOST":           "localhost",
				"SERVER_PORT":           "9090",
				"LOG_LEVEL":             "debug",
				"LOG_FORMAT":            "console",
				"KIOSK_TAX_RATE":        "0.1",
				"KIOSK_ADDED_INDICATOR": "1s",
				"TERMINAL_DRAWER_DELAY": "250ms",
				"TERMINAL_AUTO_PRINT":   "false",
				"KIOSK_CATALOG_FILE":    "menus/kiosk.json.gz",
				"RECEIPT_SPOOL_DIR":     "/tmp/receipts",
				"RECEIPT_S3_ENABLED":    "true",
				"RECEIPT_S3_BUCKET":     "cafe-receipts",
			},
			expectError: false,
		},
		{
			name: "Error - invalid server port",
			envVars: map[string]string{
				"SERVER_PORT": "99999",
			},
			expectError: true,
			errorMsg:    "invalid server port",
		},
		{
			name: "Error - invalid log level",
			envVars: map[string]string{
				"LOG_LEVEL": "invalid",
			},
			expectError: true,
			errorMsg:    "invalid log level",
		},
		{
			name: "Error - invalid log format",
			envVars: map[string]string{
				"LOG_FORMAT": "xml",
			},
			expectError: true,
			errorMsg:    "invalid log format",
		},
		{
			name: "Error - malformed tax rate",
			envVars: map[string]string{
				"KIOSK_TAX_RATE": "eight percent",
			},
			expectError: true,
			errorMsg:    "invalid KIOSK_TAX_RATE",
		},
		{
			name: "Error - tax rate out of range",
			envVars: map[string]string{
				"TERMINAL_TAX_RATE": "1.5",
			},
			expectError: true,
			errorMsg:    "invalid terminal tax rate",
		},
		{
			name: "Error - receipt S3 without bucket",
			envVars: map[string]string{
				"RECEIPT_S3_ENABLED": "true",
			},
			expectError: true,
			errorMsg:    "receipt S3 bucket is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			cfg, err := Load()

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
			}

			os.Clearenv()
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Kiosk.TaxRate.Equal(decimal.RequireFromString("0.08")))
	assert.True(t, cfg.Terminal.TaxRate.IsZero())
	assert.Equal(t, 800*time.Millisecond, cfg.Kiosk.AddedIndicator)
	assert.Equal(t, 2*time.Second, cfg.Kiosk.ReturnToMenu)
	assert.Equal(t, 500*time.Millisecond, cfg.Terminal.DrawerDelay)
	assert.True(t, cfg.Terminal.AutoPrint)
	assert.Equal(t, "USD", cfg.Kiosk.Currency)
	assert.Equal(t, "EGP", cfg.Terminal.Currency)
	assert.Empty(t, cfg.Catalog.KioskFile)
	assert.False(t, cfg.Receipt.S3.Enabled)
}

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Host: "localhost", Port: 8080, ShutdownTimeout: time.Second},
		Logger:   LoggerConfig{Level: "info", Format: "json"},
		Kiosk:    KioskConfig{TaxRate: decimal.RequireFromString("0.08"), AddedIndicator: time.Second, ReturnToMenu: time.Second},
		Terminal: TerminalConfig{TaxRate: decimal.Zero, DrawerDelay: time.Second},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Config)
		errorMsg string
	}{
		{
			name:   "Valid configuration",
			mutate: func(c *Config) {},
		},
		{
			name:     "Invalid - server port too high",
			mutate:   func(c *Config) { c.Server.Port = 99999 },
			errorMsg: "invalid server port",
		},
		{
			name:     "Invalid - zero shutdown timeout",
			mutate:   func(c *Config) { c.Server.ShutdownTimeout = 0 },
			errorMsg: "shutdown timeout",
		},
		{
			name:     "Invalid - negative kiosk tax",
			mutate:   func(c *Config) { c.Kiosk.TaxRate = decimal.RequireFromString("-0.01") },
			errorMsg: "invalid kiosk tax rate",
		},
		{
			name:     "Invalid - zero kiosk delay",
			mutate:   func(c *Config) { c.Kiosk.ReturnToMenu = 0 },
			errorMsg: "kiosk delays must be positive",
		},
		{
			name:     "Invalid - zero drawer delay",
			mutate:   func(c *Config) { c.Terminal.DrawerDelay = 0 },
			errorMsg: "drawer delay must be positive",
		},
		{
			name: "Invalid - catalog S3 without region",
			mutate: func(c *Config) {
				c.Catalog.S3 = S3Config{Enabled: true, Bucket: "menus"}
			},
			errorMsg: "catalog S3 region is required",
		},
		{
			name: "Valid - receipt S3 configured",
			mutate: func(c *Config) {
				c.Receipt.S3 = S3Config{Enabled: true, Bucket: "receipts", Region: "eu-west-1"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServerConfig_Address(t *testing.T) {
	tests := []struct {
		name     string
		config   ServerConfig
		expected string
	}{
		{
			name: "Standard configuration",
			config: ServerConfig{
				Host: "localhost",
				Port: 8080,
			},
			expected: "localhost:8080",
		},
		{
			name: "All interfaces",
			config: ServerConfig{
				Host: "0.0.0.0",
				Port: 9090,
			},
			expected: "0.0.0.0:9090",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.Address())
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("SERVER_PORT=9191\nLOG_LEVEL=debug\n"), 0o600))

	os.Setenv("LOG_LEVEL", "warn")
	require.NoError(t, LoadEnvFile(path))

	assert.Equal(t, "9191", os.Getenv("SERVER_PORT"))
	assert.Equal(t, "warn", os.Getenv("LOG_LEVEL"))

	assert.NoError(t, LoadEnvFile(filepath.Join(dir, "missing.env")))
}

func TestGetEnvHelpers(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	os.Setenv("TEST_VAR", "test_value")
	os.Setenv("TEST_INT", "42")
	os.Setenv("TEST_INVALID", "not_a_number")
	os.Setenv("TEST_BOOL", "true")
	os.Setenv("TEST_DURATION", "750ms")
	os.Setenv("TEST_DECIMAL", "0.14")

	assert.Equal(t, "test_value", getEnv("TEST_VAR", "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT_VAR", "default"))

	assert.Equal(t, 42, getEnvAsInt("TEST_INT", 10))
	assert.Equal(t, 10, getEnvAsInt("TEST_INVALID", 10))
	assert.Equal(t, 10, getEnvAsInt("NON_EXISTENT_INT", 10))

	assert.True(t, getEnvAsBool("TEST_BOOL", false))
	assert.False(t, getEnvAsBool("TEST_INVALID", false))

	assert.Equal(t, 750*time.Millisecond, getEnvAsDuration("TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, getEnvAsDuration("TEST_INVALID", time.Second))

	d, err := getEnvAsDecimal("TEST_DECIMAL", decimal.Zero)
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("0.14")))

	_, err = getEnvAsDecimal("TEST_INVALID", decimal.Zero)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	logger := newLogger(LoggerConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
	assert.Contains(t, buf.String(), `"app":"cafe-pos"`)
}
