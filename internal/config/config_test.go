package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tou-pricegen/internal/model"
	"tou-pricegen/internal/tou"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, DefaultStartDate, c.Generation.StartDate)
	assert.Equal(t, 30, c.Generation.NumDays)
	assert.Equal(t, 15, c.Generation.TimeStepMinutes)
	assert.Equal(t, "tnb_tou_price.csv", c.Output.Path)
	assert.Equal(t, 20, c.Output.PreviewRows)
	assert.Equal(t, model.DefaultTariff(), c.Tariff)
	require.NoError(t, c.Validate())
}

func TestLoad_FillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "generation:\n  num_days: 7\n")
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Generation.NumDays)
	assert.Equal(t, DefaultStartDate, c.Generation.StartDate)
	assert.Equal(t, 15, c.Generation.TimeStepMinutes)
	assert.Equal(t, model.DefaultTariff(), c.Tariff)
}

func TestLoad_TariffFileMerge(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tariff.yaml", `tariff:
  name: custom
  off_peak_sen_per_kwh: 20.0
  peak_sen_per_kwh: 50.0
  peak_start_hour: 16
  peak_end_hour: 20
`)
	path := writeFile(t, dir, "config.yaml", `tariff_file: tariff.yaml
tariff:
  peak_sen_per_kwh: 42.0
`)
	c, err := Load(path)
	require.NoError(t, err)
	// File values survive, explicit override wins.
	assert.Equal(t, "custom", c.Tariff.Name)
	assert.Equal(t, 20.0, c.Tariff.OffPeakSenPerKWh)
	assert.Equal(t, 42.0, c.Tariff.PeakSenPerKWh)
	assert.Equal(t, 16, c.Tariff.PeakStartHour)
	assert.Equal(t, 20, c.Tariff.PeakEndHour)
}

func TestLoad_PartialTariffBackfilled(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "tariff:\n  name: custom\n")
	c, err := Load(path)
	require.NoError(t, err)
	// Unset rates come from the stock tariff, never zero.
	assert.Equal(t, "custom", c.Tariff.Name)
	assert.Equal(t, model.DefaultOffPeakRate, c.Tariff.OffPeakSenPerKWh)
	assert.Equal(t, model.DefaultPeakRate, c.Tariff.PeakSenPerKWh)
	assert.Equal(t, model.DefaultPeakStart, c.Tariff.PeakStartHour)
	assert.Equal(t, model.DefaultPeakEnd, c.Tariff.PeakEndHour)

	spec, err := c.GridSpec()
	require.NoError(t, err)
	s, err := tou.Generate(spec, c.Tariff)
	require.NoError(t, err)
	require.NotEqual(t, 0.0, s.Records[0].Price)
}

func TestLoad_InvalidStartDate(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "generation:\n  start_date: not-a-date\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_NegativeDays(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "generation:\n  num_days: -2\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestMergeTariff(t *testing.T) {
	base := model.DefaultTariff()
	out := MergeTariff(base, model.Tariff{PeakStartHour: 10})
	assert.Equal(t, 10, out.PeakStartHour)
	assert.Equal(t, base.PeakEndHour, out.PeakEndHour)
	assert.Equal(t, base.OffPeakSenPerKWh, out.OffPeakSenPerKWh)

	out = MergeTariff(base, model.Tariff{})
	assert.Equal(t, base, out)
}

func TestGridSpec(t *testing.T) {
	c := Default()
	spec, err := c.GridSpec()
	require.NoError(t, err)
	assert.Equal(t, 30, spec.NumDays)
	assert.Equal(t, 2880, spec.Points())
	assert.Equal(t, "2025-01-06 00:00:00", spec.Start.Format(model.TimestampLayout))
}
