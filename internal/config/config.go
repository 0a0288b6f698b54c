// Package config loads the praxis CLI's own configuration: which
// dictionary file to operate on and how the search indexes and logger
// should be configured. The library package itself (dictionary) takes
// no configuration beyond explicit constructor options — this package
// exists only to translate a config file / environment into those
// options for the CLI.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the praxis CLI.
type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Search     SearchConfig     `mapstructure:"search"`
	Log        LogConfig        `mapstructure:"log"`
}

// DictionaryConfig names the on-disk dictionary file the CLI operates on.
type DictionaryConfig struct {
	Path string `mapstructure:"path"`
}

// SearchConfig holds tuning knobs for the in-memory search indexes.
type SearchConfig struct {
	StopwordsPath string `mapstructure:"stopwords_path"`
	MaxResultSize int    `mapstructure:"max_result_size"`
	MaxWordBytes  int    `mapstructure:"max_word_bytes"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from a config file and environment variables.
func Load() (*Config, error) {
	viper.SetConfigName("praxis")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.praxis")

	setDefaults()

	if err := bindEnvAliases(); err != nil {
		return nil, fmt.Errorf("bind env aliases: %w", err)
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("dictionary.path", "dictionary.txt")

	viper.SetDefault("search.max_result_size", 0)
	viper.SetDefault("search.max_word_bytes", 256)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
}

func bindEnvAliases() error {
	bindings := map[string][]string{
		"dictionary.path":        {"PRAXIS_DICTIONARY"},
		"search.stopwords_path":  {"PRAXIS_STOPWORDS"},
		"search.max_result_size": {"PRAXIS_MAX_RESULT_SIZE"},
	}
	for key, envs := range bindings {
		if err := viper.BindEnv(append([]string{key}, envs...)...); err != nil {
			return err
		}
	}
	return nil
}
