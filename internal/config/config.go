package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tou-pricegen/internal/model"
	"tou-pricegen/internal/tou"

	"gopkg.in/yaml.v3"
)

// Defaults for the stock TNB run.
const (
	DefaultStartDate       = "2025-01-06 00:00:00"
	DefaultNumDays         = 30
	DefaultTimeStepMinutes = 15
	DefaultOutputPath      = "tnb_tou_price.csv"
	DefaultPreviewRows     = 20
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load the tariff from a separate YAML (e.g. examples/tariffs/*.yaml).
	// If both TariffFile and Tariff are provided, Tariff fields override TariffFile.
	TariffFile string           `yaml:"tariff_file"`
	Tariff     model.Tariff     `yaml:"tariff"`
	Generation GenerationConfig `yaml:"generation"`
	Output     OutputConfig     `yaml:"output"`
	Recorder   RecorderConfig   `yaml:"recorder"`
}

type GenerationConfig struct {
	StartDate       string `yaml:"start_date"`
	NumDays         int    `yaml:"num_days"`
	TimeStepMinutes int    `yaml:"time_step_minutes"`
}

type OutputConfig struct {
	Path        string `yaml:"path"`
	PreviewRows int    `yaml:"preview_rows"`
}

type RecorderConfig struct {
	// Empty path disables run recording.
	SQLitePath string `yaml:"sqlite_path"`
}

// Default returns a config equivalent to running with no config file at all:
// the stock TNB tariff, 30 days from 2025-01-06 at 15-minute resolution.
func Default() *Config {
	c := &Config{Tariff: model.DefaultTariff()}
	c.applyDefaults()
	return c
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it or fill
// defaults. Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If tariff_file is set, load it and merge in any explicit overrides from c.Tariff.
	if c.TariffFile != "" {
		tariffPath := c.TariffFile
		if !filepath.IsAbs(tariffPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), tariffPath)
			if _, err := os.Stat(cand); err == nil {
				tariffPath = cand
			}
		}
		loaded, err := loadTariffFile(tariffPath)
		if err != nil {
			return nil, err
		}
		c.Tariff = MergeTariff(loaded, c.Tariff)
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Generation.StartDate == "" {
		c.Generation.StartDate = DefaultStartDate
	}
	if c.Generation.NumDays == 0 {
		c.Generation.NumDays = DefaultNumDays
	}
	if c.Generation.TimeStepMinutes == 0 {
		c.Generation.TimeStepMinutes = DefaultTimeStepMinutes
	}
	if c.Output.Path == "" {
		c.Output.Path = DefaultOutputPath
	}
	if c.Output.PreviewRows == 0 {
		c.Output.PreviewRows = DefaultPreviewRows
	}
	// Backfill unset tariff fields from the stock tariff, so a partial
	// inline tariff block never yields zero rates.
	c.Tariff = MergeTariff(model.DefaultTariff(), c.Tariff)
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	spec, err := c.GridSpec()
	if err != nil {
		return err
	}
	if err := tou.Validate(spec, c.Tariff); err != nil {
		return fmt.Errorf("config invalid: %w", err)
	}
	return nil
}

// GridSpec assembles the generation parameters into a grid spec, parsing
// the start date.
func (c *Config) GridSpec() (model.GridSpec, error) {
	start, err := tou.ParseStart(c.Generation.StartDate)
	if err != nil {
		return model.GridSpec{}, err
	}
	return model.GridSpec{
		Start:           start,
		NumDays:         c.Generation.NumDays,
		TimeStepMinutes: c.Generation.TimeStepMinutes,
	}, nil
}

type tariffFileWrapper struct {
	Tariff model.Tariff `yaml:"tariff"`
}

func loadTariffFile(path string) (model.Tariff, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Tariff{}, err
	}
	var w tariffFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return model.Tariff{}, err
	}
	return w.Tariff, nil
}

// MergeTariff overlays non-zero fields from override onto base.
// This is used when loading a tariff file and then applying overrides from
// the main config.
func MergeTariff(base, override model.Tariff) model.Tariff {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.OffPeakSenPerKWh != 0 {
		out.OffPeakSenPerKWh = override.OffPeakSenPerKWh
	}
	if override.PeakSenPerKWh != 0 {
		out.PeakSenPerKWh = override.PeakSenPerKWh
	}
	// Note: hour 0 (midnight) is indistinguishable from unset here, so a
	// midnight peak boundary cannot be expressed as an override; our
	// tariffs all use daytime windows.
	if override.PeakStartHour != 0 {
		out.PeakStartHour = override.PeakStartHour
	}
	if override.PeakEndHour != 0 {
		out.PeakEndHour = override.PeakEndHour
	}
	return out
}
