// Package config loads the function configuration from the environment.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Environment variable names.
const (
	EnvAPIKey          = "BRAINBASE_API_KEY"
	EnvAPIKeyParameter = "BRAINBASE_API_KEY_PARAMETER"
	EnvLogLevel        = "LOG_LEVEL"
	EnvRegion          = "AWS_REGION"
)

// Config holds the function configuration. It's read once per container and
// never modified afterwards.
type Config struct {
	// APIKey authenticates requests to the warm transfer API. May be empty;
	// requests then fail with "Missing API key".
	APIKey string
	// APIKeyParameter names an SSM parameter holding the key. Only consulted
	// when APIKey is empty.
	APIKeyParameter string
	LogLevel        logrus.Level
	Region          string
}

// SecretGetter resolves a named secret.
type SecretGetter interface {
	Get(name string) (string, error)
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetDefault(EnvLogLevel, "info")
	v.SetDefault(EnvRegion, "us-east-1")

	level, err := logrus.ParseLevel(strings.TrimSpace(v.GetString(EnvLogLevel)))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", EnvLogLevel)
	}

	return &Config{
		APIKey:          strings.TrimSpace(v.GetString(EnvAPIKey)),
		APIKeyParameter: strings.TrimSpace(v.GetString(EnvAPIKeyParameter)),
		LogLevel:        level,
		Region:          strings.TrimSpace(v.GetString(EnvRegion)),
	}, nil
}

// ResolveAPIKey fills APIKey from the parameter store when it wasn't set
// directly and a parameter name is configured. The key is left empty on
// failure so requests report "Missing API key".
func (c *Config) ResolveAPIKey(store SecretGetter) error {
	if c.APIKey != "" || c.APIKeyParameter == "" {
		return nil
	}

	key, err := store.Get(c.APIKeyParameter)
	if err != nil {
		return errors.Wrapf(err, "failed resolving %s", EnvAPIKeyParameter)
	}

	c.APIKey = strings.TrimSpace(key)
	return nil
}
