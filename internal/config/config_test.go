package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1000.0, cfg.Defaults.Checking.WithdrawalLimit)
	assert.Equal(t, -200.0, cfg.Defaults.Checking.OverdraftLimit)
	assert.Equal(t, 12, cfg.Defaults.Savings.PeriodsPerYear)
	assert.Equal(t, 5.0, cfg.Defaults.Savings.AnnualRate)
	assert.Equal(t, 500.0, cfg.Defaults.Savings.WithdrawalLimit)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "teller.yaml")

	cfg := Default()
	cfg.Defaults.Checking.OverdraftLimit = -50
	cfg.Defaults.Savings.AnnualRate = 3.5

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "teller.yaml")
	content := `defaults:
  checking:
    withdrawal_limit: 800
    overdraft_limit: -50
  savings:
    periods_per_year: 4
    annual_rate: 3.5
    withdrawal_limit: 250
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800.0, cfg.Defaults.Checking.WithdrawalLimit)
	assert.Equal(t, 4, cfg.Defaults.Savings.PeriodsPerYear)
	assert.Equal(t, 3.5, cfg.Defaults.Savings.AnnualRate)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
