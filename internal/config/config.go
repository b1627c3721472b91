package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type AuthConfig struct {
	AccessSecret string
}

type ReportsConfig struct {
	Timezone           string
	ShiftStartHour     int
	RollingWindowHours int
	TargetOreVolume    float64
	TargetWasteVolume  float64
	CacheTTLMinutes    int
	DefaultRangeDays   int
	MaxRangeDays       int
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	// Projects maps secondary mine-site codes to their warehouse DSNs,
	// collected from DB_DSN_<CODE> variables.
	Projects map[string]string
	Auth     AuthConfig
	Reports  ReportsConfig
}

// ProjectCodes are the mine sites the portal can be pointed at beyond the
// primary warehouse.
var ProjectCodes = []string{"FAC", "FES", "FET", "FPB"}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")

	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Projects: map[string]string{},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
		Reports: ReportsConfig{
			Timezone:           v.GetString("APP_TZ"),
			ShiftStartHour:     v.GetInt("SHIFT_START_HOUR"),
			RollingWindowHours: v.GetInt("ROLLING_WINDOW_HOURS"),
			TargetOreVolume:    v.GetFloat64("TARGET_ORE_VOLUME"),
			TargetWasteVolume:  v.GetFloat64("TARGET_WASTE_VOLUME"),
			CacheTTLMinutes:    v.GetInt("CACHE_TTL_MINUTES"),
			DefaultRangeDays:   v.GetInt("REPORTS_DEFAULT_RANGE_DAYS"),
			MaxRangeDays:       v.GetInt("REPORTS_MAX_RANGE_DAYS"),
		},
	}

	for _, code := range ProjectCodes {
		if dsn := v.GetString("DB_DSN_" + code); dsn != "" {
			cfg.Projects[strings.ToUpper(code)] = dsn
		}
	}

	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Reports.Timezone == "" {
		cfg.Reports.Timezone = "America/Sao_Paulo"
	}
	if cfg.Reports.ShiftStartHour <= 0 || cfg.Reports.ShiftStartHour > 23 {
		cfg.Reports.ShiftStartHour = 7
	}
	if cfg.Reports.RollingWindowHours <= 0 {
		cfg.Reports.RollingWindowHours = 24
	}
	if cfg.Reports.TargetOreVolume <= 0 {
		cfg.Reports.TargetOreVolume = 5500
	}
	if cfg.Reports.TargetWasteVolume <= 0 {
		cfg.Reports.TargetWasteVolume = 23000
	}
	if cfg.Reports.CacheTTLMinutes <= 0 {
		cfg.Reports.CacheTTLMinutes = 5
	}
	if cfg.Reports.DefaultRangeDays <= 0 {
		cfg.Reports.DefaultRangeDays = 45
	}
	if cfg.Reports.MaxRangeDays <= 0 {
		cfg.Reports.MaxRangeDays = 120
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Location resolves the configured reporting timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Reports.Timezone)
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if _, err := time.LoadLocation(cfg.Reports.Timezone); err != nil {
		return fmt.Errorf("APP_TZ %q is not a valid timezone: %w", cfg.Reports.Timezone, err)
	}
	return nil
}
