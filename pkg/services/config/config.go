package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/travel-atlas/pkg/services/overview"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const envPrefix = "ATLAS"

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Datasource DatasourceConfig `mapstructure:"datasource"`
	Report     ReportConfig     `mapstructure:"report"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

type DatasourceConfig struct {
	Profile      string `mapstructure:"profile"`
	ProfilesPath string `mapstructure:"profiles_path"`
}

type ReportConfig struct {
	RecentWindowDays     int     `mapstructure:"recent_window_days"`
	ProfitShare          float64 `mapstructure:"profit_share"`
	LowConfirmationRate  float64 `mapstructure:"low_confirmation_rate"`
	HighCancellationRate float64 `mapstructure:"high_cancellation_rate"`
}

// Addr joins host and port for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// OverviewSettings converts the report section into engine settings.
func (r ReportConfig) OverviewSettings() overview.Settings {
	return overview.Settings{
		RecentWindowDays:     r.RecentWindowDays,
		ProfitShare:          decimal.NewFromFloat(r.ProfitShare),
		LowConfirmationRate:  decimal.NewFromFloat(r.LowConfirmationRate),
		HighCancellationRate: decimal.NewFromFloat(r.HighCancellationRate),
	}
}

func setDefaults(v *viper.Viper) {
	defaults := overview.DefaultSettings()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("datasource.profile", "default")
	v.SetDefault("datasource.profiles_path", DefaultProfilesPath())
	v.SetDefault("report.recent_window_days", defaults.RecentWindowDays)
	v.SetDefault("report.profit_share", defaults.ProfitShare.InexactFloat64())
	v.SetDefault("report.low_confirmation_rate", defaults.LowConfirmationRate.InexactFloat64())
	v.SetDefault("report.high_cancellation_rate", defaults.HighCancellationRate.InexactFloat64())
}

// LoadConfig reads the YAML file at path, if any, on top of the defaults.
// ATLAS_* environment variables override both (e.g. ATLAS_SERVER_PORT).
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse atlas config: %w", err)
	}

	if cfg.Report.RecentWindowDays <= 0 {
		return nil, fmt.Errorf("report.recent_window_days must be positive, got %d", cfg.Report.RecentWindowDays)
	}
	return &cfg, nil
}
