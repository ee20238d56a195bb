package core

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config contains all of the configuration options available to the
// pontifex tools.
type Config struct {
	Deck struct {
		// Path to a file containing the key deck as 28 whitespace or comma
		// separated integers. Relative paths resolve against the config directory.
		File string `mapstructure:"file"`
		// Reject deck files that are not a permutation of 1..28.
		Strict bool `mapstructure:"strict"`
		// Seed for generating shuffled decks. 0 seeds from the clock.
		Seed int64 `mapstructure:"seed"`
	} `mapstructure:"deck"`

	Logging struct {
		// Minimum level of a log required to be written. Options: debug, info, warn, error
		LogLevel string `mapstructure:"level"`
		// Full path to file to which logs will be written. Blank will write to stderr.
		LogFilePath string `mapstructure:"file_path"`
		// Include the file and line number of the caller in log lines.
		IncludeCaller bool `mapstructure:"include_caller"`
	} `mapstructure:"logging"`

	configDir string
}

const envVarPrefix = "PONTIFEX"

// LoadConfig reads config.yaml from configPath on top of the defaults. A
// missing config file is not an error since every option has a default.
// Options can also be set through environment variables, for example
// deck.file can be set using PONTIFEX_DECK_FILE.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(configPath)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("deck.file", "")
	v.SetDefault("deck.strict", true)
	v.SetDefault("deck.seed", 0)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file_path", "")
	v.SetDefault("logging.include_caller", false)

	v.SetEnvPrefix(envVarPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// This allows us to set nested yaml config options through environment
	// variables, e.g. logging.level through <envVarPrefix>_LOGGING_LEVEL.
	for _, k := range v.AllKeys() {
		envVar := strings.ReplaceAll(strings.ToUpper(k), ".", "_")
		if err := v.BindEnv(k, envVarPrefix+"_"+envVar); err != nil {
			return nil, fmt.Errorf("binding %s to %s: %w", k, envVarPrefix+"_"+envVar, err)
		}
	}

	config := &Config{configDir: configPath}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unmarshaling config object: %w", err)
	}
	return config, nil
}

// DeckPath returns the configured deck file, resolved against the config
// directory when relative. It is blank when no deck file is configured.
func (c *Config) DeckPath() string {
	return c.QualifiedPath(c.Deck.File)
}

// QualifiedPath resolves a relative path against the config directory.
func (c *Config) QualifiedPath(path string) string {
	if path == "" || filepath.IsAbs(path) || c.configDir == "" {
		return path
	}
	return filepath.Join(c.configDir, path)
}
