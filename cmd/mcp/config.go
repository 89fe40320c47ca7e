package main

import (
	"os"
	"path/filepath"

	"github.com/elC0mpa/aws-tagger/model"
	"github.com/elC0mpa/aws-tagger/service/settings"
)

// LoadConfig reads the shared settings file named by AWS_TAGGER_CONFIG, or
// ~/.aws-tagger.yaml when unset, merged with AWS_TAGGER_* variables. AWS_PROFILE
// and AWS_REGION fill in profile and region when the settings leave them empty.
func LoadConfig() (model.Settings, error) {
	path := os.Getenv("AWS_TAGGER_CONFIG")
	explicit := path != ""
	if !explicit {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, ".aws-tagger.yaml")
	}

	cfg, err := settings.NewService().Load(path, explicit, nil)
	if err != nil {
		return model.Settings{}, err
	}

	if cfg.Profile == "" {
		cfg.Profile = os.Getenv("AWS_PROFILE")
	}
	if region := os.Getenv("AWS_REGION"); region != "" && os.Getenv("AWS_TAGGER_REGION") == "" {
		cfg.Region = region
	}
	// MCP speaks over stdout
	cfg.Spinner = false
	return cfg, nil
}
