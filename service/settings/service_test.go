package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/elC0mpa/aws-tagger/model"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aws-tagger.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	settings, err := NewService().Load(filepath.Join(t.TempDir(), "missing.yaml"), false, nil)
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", settings.Region)
	assert.Equal(t, "US East (N. Virginia)", settings.PricingLocation)
	assert.Equal(t, "reports", settings.ReportsDir)
	assert.Equal(t, 24.0, settings.HoursPerDay)
	assert.Equal(t, 30.5, settings.DaysPerMonth)
	assert.Equal(t, 0.065, settings.ProvisionedIOPSRate)
	assert.Equal(t, []string{"io1"}, settings.ProvisionedIOPSTypes)
	assert.Equal(t, 4, settings.Concurrency)
	assert.Equal(t, 15*time.Minute, settings.Timeout)
	assert.Equal(t, 5, settings.MaxAttempts)
	assert.Equal(t, "console", settings.LogFormat)
	assert.Equal(t, "owner", settings.Kube.OwnerLabel)
	assert.Equal(t, 0.04, settings.Kube.CPUHourPrice)
}

func TestLoad_FileEnvFlags(t *testing.T) {
	path := writeConfig(t, `
profile: from-file
region: eu-west-1
concurrency: 8
timeout: 2m
provisioned_iops_types: [io1, io2]
kube:
  owner_label: team
`)
	t.Setenv("AWS_TAGGER_REGION", "ap-south-1")
	t.Setenv("AWS_TAGGER_REPORTS_DIR", "/tmp/out")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("profile", "", "")
	flags.String("region", "", "")
	require.NoError(t, flags.Parse([]string{"--profile", "from-flag"}))

	settings, err := NewService().Load(path, true, flags)
	require.NoError(t, err)

	assert.Equal(t, "from-flag", settings.Profile)
	assert.Equal(t, "ap-south-1", settings.Region)
	assert.Equal(t, "/tmp/out", settings.ReportsDir)
	assert.Equal(t, 8, settings.Concurrency)
	assert.Equal(t, 2*time.Minute, settings.Timeout)
	assert.Equal(t, []string{"io1", "io2"}, settings.ProvisionedIOPSTypes)
	assert.Equal(t, "team", settings.Kube.OwnerLabel)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		explicit bool
	}{
		{
			name:     "explicit missing file",
			path:     func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.yaml") },
			explicit: true,
		},
		{
			name: "invalid yaml",
			path: func(t *testing.T) string { return writeConfig(t, "region: [unterminated") },
		},
		{
			name: "zero concurrency",
			path: func(t *testing.T) string { return writeConfig(t, "concurrency: 0") },
		},
		{
			name: "unknown log format",
			path: func(t *testing.T) string { return writeConfig(t, "log_format: xml") },
		},
		{
			name: "negative days",
			path: func(t *testing.T) string { return writeConfig(t, "days_per_month: -1") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService().Load(tt.path(t), tt.explicit, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrConfiguration))
		})
	}
}

func TestCostRates(t *testing.T) {
	rates := CostRates(model.Settings{HoursPerDay: 24, DaysPerMonth: 30.5, ProvisionedIOPSRate: 0.065, ProvisionedIOPSTypes: []string{"io1"}})

	assert.True(t, decimal.RequireFromString("30.5").Equal(rates.DaysPerMonth))
	assert.True(t, decimal.RequireFromString("0.065").Equal(rates.ProvisionedIOPSRate))
	assert.Equal(t, []string{"io1"}, rates.ProvisionedIOPSTypes)
}
