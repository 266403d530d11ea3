package logging

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type LogFormat string

const (
	FormatText      LogFormat = "text"
	FormatJson      LogFormat = "json"
	FormatColourful LogFormat = "colourful"
)

// Config defines siss logging configuration.
type Config struct {
	// Defines configuration for console logging on stdout
	Console struct {
		// Log level, e.g. INFO, ERROR etc
		Level string `yaml:"level"`
		// Logging format, either text, json or colourful
		Format LogFormat `yaml:"format"`
	} `yaml:"console"`
	// Defines configuration for file logging
	File struct {
		// Whether file logging is enabled.
		Enabled bool `yaml:"enabled"`
		// Log level, e.g. INFO, ERROR etc
		Level string `yaml:"level"`
		// Logging format, either text, json or colourful
		Format LogFormat `yaml:"format"`
		// The Location of the logfile on disk
		LogFile string `yaml:"logfile"`
		// Log Rotation Options
		Rotation struct {
			// Whether Log Rotation is enabled
			Enabled bool `yaml:"enabled"`
			// Maximum size in megabytes of the log file before it gets rotated
			MaxSizeMb int `yaml:"maxSizeMb"`
			// Maximum number of old log files to retain
			MaxBackups int `yaml:"maxBackups"`
			// Maximum number of days to retain old log files
			MaxAgeDays int `yaml:"maxAgeDays"`
			// Whether to compress rotated log files
			Compress bool `yaml:"compress"`
		} `yaml:"rotation"`
	} `yaml:"file"`
	// Whether to export log line counts by level as Prometheus metrics
	Prometheus bool `yaml:"prometheus"`
}

func readConfig(configFileName string) (Config, error) {
	yamlConfig, err := os.ReadFile(configFileName)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read logging config file %s", configFileName)
	}

	var config Config
	err = yaml.Unmarshal(yamlConfig, &config)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to unmarshall logging config file %s", configFileName)
	}

	err = validate(config)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

func validate(c Config) error {
	_, err := zerolog.ParseLevel(c.Console.Level)
	if err != nil {
		return err
	}

	err = validateLogFormat(c.Console.Format)
	if err != nil {
		return err
	}

	if c.File.Enabled {
		_, err := zerolog.ParseLevel(c.File.Level)
		if err != nil {
			return err
		}

		err = validateLogFormat(c.File.Format)
		if err != nil {
			return err
		}

		if c.File.LogFile == "" {
			return errors.New("logfile must be specified when file logging is enabled")
		}

		rotation := c.File.Rotation
		if rotation.Enabled {
			if rotation.MaxSizeMb <= 0 {
				return errors.New("rotation.maxSizeMb must be greater than zero")
			}
			if rotation.MaxBackups <= 0 {
				return errors.New("rotation.maxBackups must be greater than zero")
			}
			if rotation.MaxAgeDays <= 0 {
				return errors.New("rotation.maxAgeDays must be greater than zero")
			}
		}
	}

	return nil
}

func validateLogFormat(f LogFormat) error {
	switch f {
	case FormatText, FormatJson, FormatColourful:
		return nil
	default:
		return errors.Errorf("unknown log format: %s.  Valid formats are text, json and colourful", f)
	}
}
