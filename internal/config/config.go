// Package config loads punchclock settings from a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/holiday"
)

// Config is the resolved runtime configuration.
type Config struct {
	Storage            domain.StorageBackend
	DBPath             string
	DataDir            string
	TimeZone           string
	Location           *time.Location
	DailyTargetMinutes int
	ExcludeHolidays    bool
	WeekRule           domain.WeekRule
	AnnualLeaveDays    int
	Holidays           holiday.Options
	ServeAddr          string
	LogUseCases        bool
}

// FileConfig mirrors config.toml. Pointer fields distinguish "unset" from zero.
type FileConfig struct {
	Storage  StorageSection `toml:"storage"`
	Workday  WorkdaySection `toml:"workday"`
	Leave    LeaveSection   `toml:"leave"`
	Holidays HolidaySection `toml:"holidays"`
	Server   ServerSection  `toml:"server"`
}

type StorageSection struct {
	Backend *string `toml:"backend"`
	DBPath  *string `toml:"db_path"`
	DataDir *string `toml:"data_dir"`
}

type WorkdaySection struct {
	DailyTargetMinutes *int    `toml:"daily_target_minutes"`
	ExcludeHolidays    *bool   `toml:"exclude_holidays"`
	WeekRule           *string `toml:"week_rule"`
	TimeZone           *string `toml:"timezone"`
}

type LeaveSection struct {
	AnnualDays *int `toml:"annual_days"`
}

type HolidaySection struct {
	Epiphany      *bool `toml:"epiphany"`
	CorpusChristi *bool `toml:"corpus_christi"`
}

type ServerSection struct {
	Addr *string `toml:"addr"`
}

// ValidationError reports a configuration value that cannot be used.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Message)
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Storage:            domain.StorageSQLite,
		DBPath:             DefaultDBPath(),
		DataDir:            DefaultDataDir(),
		Location:           time.Local,
		DailyTargetMinutes: 480,
		WeekRule:           domain.WeekRuleCalendarYear,
		AnnualLeaveDays:    30,
		Holidays:           holiday.Options{CorpusChristi: true},
		ServeAddr:          "127.0.0.1:8077",
	}
}

// LoadFile reads a TOML config from path. A missing file is not an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}
	var fc FileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("decoding config: %w", err)
	}
	return fc, nil
}

// Load resolves defaults, then the TOML file, then environment overrides.
// getenv is usually os.Getenv.
func Load(getenv func(string) string) (Config, error) {
	path := firstNonEmpty(getenv("PUNCHCLOCK_CONFIG"), DefaultConfigPath())
	fc, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	cfg.apply(fc)
	cfg.applyEnv(getenv)
	if err := cfg.resolve(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) apply(fc FileConfig) {
	if fc.Storage.Backend != nil {
		c.Storage = domain.StorageBackend(strings.ToLower(*fc.Storage.Backend))
	}
	c.DBPath = firstNonEmpty(deref(fc.Storage.DBPath), c.DBPath)
	c.DataDir = firstNonEmpty(deref(fc.Storage.DataDir), c.DataDir)

	c.DailyTargetMinutes = valueOr(fc.Workday.DailyTargetMinutes, c.DailyTargetMinutes)
	c.ExcludeHolidays = valueOr(fc.Workday.ExcludeHolidays, c.ExcludeHolidays)
	if fc.Workday.WeekRule != nil {
		c.WeekRule = domain.WeekRule(strings.ToLower(*fc.Workday.WeekRule))
	}
	c.TimeZone = firstNonEmpty(deref(fc.Workday.TimeZone), c.TimeZone)

	c.AnnualLeaveDays = valueOr(fc.Leave.AnnualDays, c.AnnualLeaveDays)
	c.Holidays.Epiphany = valueOr(fc.Holidays.Epiphany, c.Holidays.Epiphany)
	c.Holidays.CorpusChristi = valueOr(fc.Holidays.CorpusChristi, c.Holidays.CorpusChristi)
	c.ServeAddr = firstNonEmpty(deref(fc.Server.Addr), c.ServeAddr)
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv("PUNCHCLOCK_STORAGE"); v != "" {
		c.Storage = domain.StorageBackend(strings.ToLower(v))
	}
	c.DBPath = firstNonEmpty(getenv("PUNCHCLOCK_DB"), c.DBPath)
	c.DataDir = firstNonEmpty(getenv("PUNCHCLOCK_DATA_DIR"), c.DataDir)
	c.TimeZone = firstNonEmpty(getenv("PUNCHCLOCK_TZ"), c.TimeZone)
	if v, err := strconv.ParseBool(getenv("PUNCHCLOCK_LOG_USECASES")); err == nil {
		c.LogUseCases = v
	}
}

func (c *Config) resolve() error {
	switch c.Storage {
	case domain.StorageSQLite, domain.StorageJSON:
	default:
		return &ValidationError{Field: "storage.backend", Message: fmt.Sprintf("unknown backend %q (want sqlite or json)", c.Storage)}
	}
	switch c.WeekRule {
	case domain.WeekRuleCalendarYear, domain.WeekRuleISO:
	default:
		return &ValidationError{Field: "workday.week_rule", Message: fmt.Sprintf("unknown rule %q (want calendar-year or iso)", c.WeekRule)}
	}
	if c.DailyTargetMinutes <= 0 || c.DailyTargetMinutes > 24*60 {
		return &ValidationError{Field: "workday.daily_target_minutes", Message: "must be between 1 and 1440"}
	}
	if c.AnnualLeaveDays < 0 {
		return &ValidationError{Field: "leave.annual_days", Message: "must not be negative"}
	}
	if c.TimeZone != "" {
		loc, err := time.LoadLocation(c.TimeZone)
		if err != nil {
			return &ValidationError{Field: "workday.timezone", Message: err.Error()}
		}
		c.Location = loc
	}
	if c.Location == nil {
		c.Location = time.Local
	}
	return nil
}

// valueOr returns *p, or fallback when the key was absent from the file.
func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
