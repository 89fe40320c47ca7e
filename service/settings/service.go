package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/elC0mpa/aws-tagger/model"
	"github.com/elC0mpa/aws-tagger/service/cost"
	"github.com/elC0mpa/aws-tagger/service/kube"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func NewService() *service {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return &service{
		v: v,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("profile", "")
	v.SetDefault("region", "us-east-1")
	v.SetDefault("pricing_region", "us-east-1")
	v.SetDefault("pricing_location", "US East (N. Virginia)")
	v.SetDefault("reports_dir", "reports")
	v.SetDefault("hours_per_day", 24)
	v.SetDefault("days_per_month", 30.5)
	v.SetDefault("provisioned_iops_rate", 0.065)
	v.SetDefault("provisioned_iops_types", []string{"io1"})
	v.SetDefault("concurrency", 4)
	v.SetDefault("timeout", 15*time.Minute)
	v.SetDefault("max_attempts", 5)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("spinner", true)
	v.SetDefault("kube.cpu_hour_price", 0.04)
	v.SetDefault("kube.ram_gb_hour_price", 0.005)
	v.SetDefault("kube.owner_label", "owner")
}

// Load merges defaults, the YAML file at path, AWS_TAGGER_* environment
// variables and changed flags, in increasing priority. A missing file is an
// error only when explicit is set.
func (s *service) Load(path string, explicit bool, flags *pflag.FlagSet) (model.Settings, error) {
	if path != "" {
		if err := s.readFile(path, explicit); err != nil {
			return model.Settings{}, err
		}
	}

	if flags != nil {
		for _, name := range boundFlags {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := s.v.BindPFlag(strings.ReplaceAll(name, "-", "_"), flag); err != nil {
				return model.Settings{}, fmt.Errorf("%w: failed to bind flag %s: %v", model.ErrConfiguration, name, err)
			}
		}
	}

	var settings model.Settings
	if err := s.v.Unmarshal(&settings); err != nil {
		return model.Settings{}, fmt.Errorf("%w: failed to decode settings: %v", model.ErrConfiguration, err)
	}

	if err := validate(settings); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}

func (s *service) readFile(path string, explicit bool) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && !explicit {
		return nil
	}

	s.v.SetConfigFile(path)
	if err := s.v.ReadInConfig(); err != nil {
		return fmt.Errorf("%w: failed to read config file %s: %v", model.ErrConfiguration, path, err)
	}
	return nil
}

func validate(s model.Settings) error {
	switch {
	case s.HoursPerDay <= 0:
		return fmt.Errorf("%w: hours_per_day must be positive", model.ErrConfiguration)
	case s.DaysPerMonth <= 0:
		return fmt.Errorf("%w: days_per_month must be positive", model.ErrConfiguration)
	case s.Concurrency < 1:
		return fmt.Errorf("%w: concurrency must be at least 1", model.ErrConfiguration)
	case s.MaxAttempts < 1:
		return fmt.Errorf("%w: max_attempts must be at least 1", model.ErrConfiguration)
	case s.Timeout <= 0:
		return fmt.Errorf("%w: timeout must be positive", model.ErrConfiguration)
	case s.LogFormat != "console" && s.LogFormat != "json":
		return fmt.Errorf("%w: log_format must be console or json, got %q", model.ErrConfiguration, s.LogFormat)
	}
	return nil
}

// CostRates converts settings into the cost formula constants.
func CostRates(s model.Settings) cost.Rates {
	return cost.Rates{
		HoursPerDay:          decimal.NewFromFloat(s.HoursPerDay),
		DaysPerMonth:         decimal.NewFromFloat(s.DaysPerMonth),
		ProvisionedIOPSRate:  decimal.NewFromFloat(s.ProvisionedIOPSRate),
		ProvisionedIOPSTypes: s.ProvisionedIOPSTypes,
	}
}

// KubePrices converts settings into Kubernetes request prices.
func KubePrices(s model.Settings) kube.Prices {
	return kube.Prices{
		CPUHourPrice:   decimal.NewFromFloat(s.Kube.CPUHourPrice),
		RAMGBHourPrice: decimal.NewFromFloat(s.Kube.RAMGBHourPrice),
		HoursPerDay:    decimal.NewFromFloat(s.HoursPerDay),
		DaysPerMonth:   decimal.NewFromFloat(s.DaysPerMonth),
	}
}
