package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Kiosk    KioskConfig
	Terminal TerminalConfig
	Catalog  CatalogConfig
	Receipt  ReceiptConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// KioskConfig holds the customer kiosk settings.
type KioskConfig struct {
	TaxRate        decimal.Decimal
	Currency       string
	AddedIndicator time.Duration
	ReturnToMenu   time.Duration
}

// TerminalConfig holds the staff terminal settings.
type TerminalConfig struct {
	TaxRate     decimal.Decimal
	Currency    string
	DrawerDelay time.Duration
	AutoPrint   bool
}

// CatalogConfig holds where the menus are loaded from. Empty paths use the
// built-in menus.
type CatalogConfig struct {
	KioskFile    string
	TerminalFile string
	S3           S3Config
}

// ReceiptConfig holds receipt output settings.
type ReceiptConfig struct {
	StoreName string
	SpoolDir  string // empty disables the file printer
	S3        S3Config
}

// S3Config holds AWS S3 configuration.
type S3Config struct {
	Enabled bool
	Bucket  string
	Region  string
	Prefix  string // Path prefix within bucket (e.g., "receipts/")
}

// LoadEnvFile preloads variables from a .env file. Variables already set in
// the environment win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	kioskTax, err := getEnvAsDecimal("KIOSK_TAX_RATE", decimal.RequireFromString("0.08"))
	if err != nil {
		return nil, err
	}
	terminalTax, err := getEnvAsDecimal("TERMINAL_TAX_RATE", decimal.Zero)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Kiosk: KioskConfig{
			TaxRate:        kioskTax,
			Currency:       getEnv("KIOSK_CURRENCY", "USD"),
			AddedIndicator: getEnvAsDuration("KIOSK_ADDED_INDICATOR", 800*time.Millisecond),
			ReturnToMenu:   getEnvAsDuration("KIOSK_RETURN_TO_MENU", 2*time.Second),
		},
		Terminal: TerminalConfig{
			TaxRate:     terminalTax,
			Currency:    getEnv("TERMINAL_CURRENCY", "EGP"),
			DrawerDelay: getEnvAsDuration("TERMINAL_DRAWER_DELAY", 500*time.Millisecond),
			AutoPrint:   getEnvAsBool("TERMINAL_AUTO_PRINT", true),
		},
		Catalog: CatalogConfig{
			KioskFile:    getEnv("KIOSK_CATALOG_FILE", ""),
			TerminalFile: getEnv("TERMINAL_MENU_FILE", ""),
			S3: S3Config{
				Enabled: getEnvAsBool("CATALOG_S3_ENABLED", false),
				Bucket:  getEnv("CATALOG_S3_BUCKET", ""),
				Region:  getEnv("CATALOG_S3_REGION", "us-east-1"),
				Prefix:  getEnv("CATALOG_S3_PREFIX", "catalogs/"),
			},
		},
		Receipt: ReceiptConfig{
			StoreName: getEnv("RECEIPT_STORE_NAME", "Hook"),
			SpoolDir:  getEnv("RECEIPT_SPOOL_DIR", ""),
			S3: S3Config{
				Enabled: getEnvAsBool("RECEIPT_S3_ENABLED", false),
				Bucket:  getEnv("RECEIPT_S3_BUCKET", ""),
				Region:  getEnv("RECEIPT_S3_REGION", "us-east-1"),
				Prefix:  getEnv("RECEIPT_S3_PREFIX", "receipts/"),
			},
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server shutdown timeout must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if err := validateTaxRate("kiosk", c.Kiosk.TaxRate); err != nil {
		return err
	}
	if err := validateTaxRate("terminal", c.Terminal.TaxRate); err != nil {
		return err
	}

	if c.Kiosk.AddedIndicator <= 0 || c.Kiosk.ReturnToMenu <= 0 {
		return fmt.Errorf("kiosk delays must be positive")
	}

	if c.Terminal.DrawerDelay <= 0 {
		return fmt.Errorf("terminal drawer delay must be positive")
	}

	if err := c.Catalog.S3.validate("catalog"); err != nil {
		return err
	}

	return c.Receipt.S3.validate("receipt")
}

func validateTaxRate(name string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("invalid %s tax rate: %s (must be in [0, 1))", name, rate)
	}
	return nil
}

func (c S3Config) validate(name string) error {
	if !c.Enabled {
		return nil
	}
	if c.Bucket == "" {
		return fmt.Errorf("%s S3 bucket is required when S3 is enabled", name)
	}
	if c.Region == "" {
		return fmt.Errorf("%s S3 region is required when S3 is enabled", name)
	}
	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration retrieves an environment variable as a duration ("500ms", "2s")
// or returns a default value.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvAsDecimal retrieves an environment variable as a decimal. Unlike the
// other helpers a malformed value is an error.
func getEnvAsDecimal(key string, defaultValue decimal.Decimal) (decimal.Decimal, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
