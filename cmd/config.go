package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"enquiry/internal/core/application/usecases/commands"
	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// Configuration keys. The environment, .env included, wins over the
// optional config file.
const (
	keyHTTPPort              = "HTTP_PORT"
	keyDBHost                = "DB_HOST"
	keyDBPort                = "DB_PORT"
	keyDBUser                = "DB_USER"
	keyDBPassword            = "DB_PASSWORD"
	keyDBName                = "DB_NAME"
	keyDBSslMode             = "DB_SSLMODE"
	keyLogLevel              = "LOG_LEVEL"
	keyLogDevelopment        = "LOG_DEVELOPMENT"
	keyCompanyCurrency       = "COMPANY_CURRENCY"
	keyTaxRoundingMethod     = "TAX_ROUNDING_METHOD"
	keyWizardTTL             = "WIZARD_TTL"
	keyWizardCleanupSchedule = "WIZARD_CLEANUP_SCHEDULE"
)

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	LogLevel              string
	LogDevelopment        bool
	CompanyCurrency       string
	TaxRoundingMethod     string
	WizardTTL             time.Duration
	WizardCleanupSchedule string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyHTTPPort, "8080")
	v.SetDefault(keyDBHost, "localhost")
	v.SetDefault(keyDBPort, "5432")
	v.SetDefault(keyDBUser, "")
	v.SetDefault(keyDBPassword, "")
	v.SetDefault(keyDBName, "enquiry")
	v.SetDefault(keyDBSslMode, "disable")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogDevelopment, false)
	v.SetDefault(keyCompanyCurrency, "EUR")
	v.SetDefault(keyTaxRoundingMethod, string(catalog.RoundPerLine))
	v.SetDefault(keyWizardTTL, time.Hour)
	v.SetDefault(keyWizardCleanupSchedule, "0 */10 * * * *")
}

// LoadConfig reads the configuration. A missing envFile is ignored; a
// configFile, when given, must exist.
func LoadConfig(v *viper.Viper, envFile, configFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	cfg := Config{
		HTTPPort:              v.GetString(keyHTTPPort),
		DBHost:                v.GetString(keyDBHost),
		DBPort:                v.GetString(keyDBPort),
		DBUser:                v.GetString(keyDBUser),
		DBPassword:            v.GetString(keyDBPassword),
		DBName:                v.GetString(keyDBName),
		DBSslMode:             v.GetString(keyDBSslMode),
		LogLevel:              v.GetString(keyLogLevel),
		LogDevelopment:        v.GetBool(keyLogDevelopment),
		CompanyCurrency:       v.GetString(keyCompanyCurrency),
		TaxRoundingMethod:     v.GetString(keyTaxRoundingMethod),
		WizardTTL:             v.GetDuration(keyWizardTTL),
		WizardCleanupSchedule: v.GetString(keyWizardCleanupSchedule),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects a configuration the service cannot start with.
func (c Config) Validate() error {
	if _, err := c.Settings(); err != nil {
		return err
	}
	if c.WizardTTL <= 0 {
		return fmt.Errorf("%s must be positive, got %s", keyWizardTTL, c.WizardTTL)
	}
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(c.WizardCleanupSchedule); err != nil {
		return fmt.Errorf("%s: %w", keyWizardCleanupSchedule, err)
	}
	return nil
}

// Settings are the company values the command handlers compute documents with.
func (c Config) Settings() (commands.Settings, error) {
	currency, err := kernel.NewCurrency(c.CompanyCurrency)
	if err != nil {
		return commands.Settings{}, fmt.Errorf("%s: %w", keyCompanyCurrency, err)
	}
	settings := commands.Settings{
		Currency: currency,
		Rounding: catalog.RoundingMethod(c.TaxRoundingMethod),
	}
	if err := settings.Validate(); err != nil {
		return commands.Settings{}, fmt.Errorf("%s: %w", keyTaxRoundingMethod, err)
	}
	return settings, nil
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
