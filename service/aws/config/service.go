package awsconfig

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/elC0mpa/aws-tagger/model"
	"gopkg.in/ini.v1"
)

// NewService returns a config service that looks profiles up in the default
// shared credentials and config files. maxAttempts bounds the SDK retryer.
func NewService(maxAttempts int) *service {
	home, _ := os.UserHomeDir()
	return NewServiceWithFiles(maxAttempts,
		filepath.Join(home, ".aws", "credentials"),
		filepath.Join(home, ".aws", "config"),
	)
}

// NewServiceWithFiles is NewService with explicit shared credentials and
// config files.
func NewServiceWithFiles(maxAttempts int, credentialsFile, configFile string) *service {
	return &service{
		credentialsFile: credentialsFile,
		configFile:      configFile,
		maxAttempts:     maxAttempts,
	}
}

func (s *service) GetAWSCfg(ctx context.Context, region, profile string) (aws.Config, error) {
	if profile == "" {
		return aws.Config{}, fmt.Errorf("%w: no profile given", model.ErrConfiguration)
	}

	if err := s.profileExists(profile); err != nil {
		return aws.Config{}, err
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithSharedConfigProfile(profile),
		config.WithSharedCredentialsFiles([]string{s.credentialsFile}),
		config.WithSharedConfigFiles([]string{s.configFile}),
		config.WithRetryer(func() aws.Retryer {
			return retry.NewStandard(func(o *retry.StandardOptions) {
				if s.maxAttempts > 0 {
					o.MaxAttempts = s.maxAttempts
				}
			})
		}),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("%w: unable to load AWS SDK config: %v", model.ErrConfiguration, err)
	}

	if _, err := awsCfg.Credentials.Retrieve(ctx); err != nil {
		return aws.Config{}, fmt.Errorf("%w: invalid AWS credentials for profile %s: %v", model.ErrConfiguration, profile, err)
	}

	return awsCfg, nil
}

// profileExists checks the shared files for a [profile] or [profile name]
// section. Files that do not exist are ignored.
func (s *service) profileExists(profile string) error {
	found := false
	for _, path := range []string{s.credentialsFile, s.configFile} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		file, err := ini.Load(path)
		if err != nil {
			return fmt.Errorf("%w: reading %s: %v", model.ErrConfiguration, path, err)
		}
		for _, section := range file.Sections() {
			name := strings.TrimPrefix(section.Name(), "profile ")
			if name == profile {
				found = true
			}
		}
	}

	if !found {
		return fmt.Errorf("%w: check that profile %s exists under ~/.aws/credentials", model.ErrConfiguration, profile)
	}
	return nil
}
