package settings

import (
	"github.com/elC0mpa/aws-tagger/model"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "AWS_TAGGER"

// boundFlags are command line flags that override file and environment values.
var boundFlags = []string{"profile", "region", "log-level", "log-format"}

type service struct {
	v *viper.Viper
}

type SettingsService interface {
	Load(path string, explicit bool, flags *pflag.FlagSet) (model.Settings, error)
}
