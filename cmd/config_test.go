package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"enquiry/internal/core/domain/model/catalog"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		keyHTTPPort, keyDBHost, keyDBPort, keyDBUser, keyDBPassword, keyDBName, keyDBSslMode,
		keyLogLevel, keyLogDevelopment, keyCompanyCurrency, keyTaxRoundingMethod,
		keyWizardTTL, keyWizardCleanupSchedule,
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(viper.New(), "", "")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogDevelopment)
	assert.Equal(t, "EUR", cfg.CompanyCurrency)
	assert.Equal(t, string(catalog.RoundPerLine), cfg.TaxRoundingMethod)
	assert.Equal(t, time.Hour, cfg.WizardTTL)
	assert.Equal(t, "0 */10 * * * *", cfg.WizardCleanupSchedule)

	settings, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, "EUR", settings.Currency.Code())
	assert.Equal(t, catalog.RoundPerLine, settings.Rounding)
}

func TestLoadConfig_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv(keyHTTPPort, "9090")
	t.Setenv(keyCompanyCurrency, "jpy")
	t.Setenv(keyTaxRoundingMethod, "round_globally")
	t.Setenv(keyWizardTTL, "30m")
	t.Setenv(keyLogDevelopment, "true")

	cfg, err := LoadConfig(viper.New(), "", "")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 30*time.Minute, cfg.WizardTTL)
	assert.True(t, cfg.LogDevelopment)

	settings, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, "JPY", settings.Currency.Code())
	assert.Equal(t, catalog.RoundGlobally, settings.Rounding)
}

func TestLoadConfig_DotEnvAndConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DB_NAME=from_dotenv\nHTTP_PORT=7000\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv(keyDBName)
		_ = os.Unsetenv(keyHTTPPort)
	})

	configFile := filepath.Join(dir, "enquiry.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("http_port: \"6000\"\ndb_host: db.internal\n"), 0o600))

	cfg, err := LoadConfig(viper.New(), envFile, configFile)
	require.NoError(t, err)

	assert.Equal(t, "from_dotenv", cfg.DBName)
	assert.Equal(t, "7000", cfg.HTTPPort, "environment wins over the config file")
	assert.Equal(t, "db.internal", cfg.DBHost)
}

func TestLoadConfig_MissingDotEnvIsIgnored(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig(viper.New(), filepath.Join(t.TempDir(), ".env"), "")
	require.NoError(t, err)
}

func TestLoadConfig_MissingConfigFile(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig(viper.New(), "", filepath.Join(t.TempDir(), "enquiry.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown currency", keyCompanyCurrency, "XYZW"},
		{"unknown rounding method", keyTaxRoundingMethod, "round_sometimes"},
		{"non positive ttl", keyWizardTTL, "-5m"},
		{"bad schedule", keyWizardCleanupSchedule, "every ten minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig(viper.New(), "", "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{
		DBHost: "localhost", DBPort: "5432", DBUser: "enquiry", DBPassword: "secret",
		DBName: "enquiry", DBSslMode: "disable",
	}
	assert.Equal(t, "host=localhost port=5432 user=enquiry password=secret dbname=enquiry sslmode=disable", cfg.DSN())
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", false)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))

	logger, err = NewLogger("not-a-level", true)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1))
	assert.True(t, logger.Core().Enabled(0))
}

func TestRootCommand(t *testing.T) {
	root := NewRootCommand()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate"}, names)
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("log-level"))
}
