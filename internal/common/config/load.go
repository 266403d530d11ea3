package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "SISS"

// LoadConfig reads the application configuration file named config.yaml from
// defaultPath, merges any user-specified override files on top and unmarshals
// the result into config. Individual values can also be overridden through
// SISS_-prefixed environment variables, e.g. SISS_RATEPERSECOND=60.
func LoadConfig(config any, defaultPath string, overrideConfigs []string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(defaultPath)
	if err := v.ReadInConfig(); err != nil {
		return errors.WithMessagef(err, "reading config from %s", defaultPath)
	}

	for _, overrideConfig := range overrideConfigs {
		v.SetConfigFile(overrideConfig)
		if err := v.MergeInConfig(); err != nil {
			return errors.WithMessagef(err, "merging config from %s", overrideConfig)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.Unmarshal(config, CustomHooks...); err != nil {
		return errors.WithMessage(err, "unmarshalling config")
	}

	if err := validator.New().Struct(config); err != nil {
		LogValidationErrors(err)
		return errors.New("config validation failed")
	}
	return nil
}
