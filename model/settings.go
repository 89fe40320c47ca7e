package model

import "time"

// Settings is the merged configuration from file, environment and flags.
type Settings struct {
	Profile              string        `mapstructure:"profile"`
	Region               string        `mapstructure:"region"`
	PricingRegion        string        `mapstructure:"pricing_region"`
	PricingLocation      string        `mapstructure:"pricing_location"`
	ReportsDir           string        `mapstructure:"reports_dir"`
	HoursPerDay          float64       `mapstructure:"hours_per_day"`
	DaysPerMonth         float64       `mapstructure:"days_per_month"`
	ProvisionedIOPSRate  float64       `mapstructure:"provisioned_iops_rate"`
	ProvisionedIOPSTypes []string      `mapstructure:"provisioned_iops_types"`
	Concurrency          int           `mapstructure:"concurrency"`
	Timeout              time.Duration `mapstructure:"timeout"`
	MaxAttempts          int           `mapstructure:"max_attempts"`
	LogLevel             string        `mapstructure:"log_level"`
	LogFormat            string        `mapstructure:"log_format"`
	Spinner              bool          `mapstructure:"spinner"`
	Kube                 KubeSettings  `mapstructure:"kube"`
}

type KubeSettings struct {
	CPUHourPrice   float64 `mapstructure:"cpu_hour_price"`
	RAMGBHourPrice float64 `mapstructure:"ram_gb_hour_price"`
	OwnerLabel     string  `mapstructure:"owner_label"`
}
