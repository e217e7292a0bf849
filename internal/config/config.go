package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override,
// e.g. AUTOCOMPLETE_LOG_LEVEL.
const EnvPrefix = "AUTOCOMPLETE"

// DefaultSeed is the dictionary a session starts with.
var DefaultSeed = []string{
	"apple",
	"app",
	"application",
	"banana",
	"bat",
	"ball",
	"cat",
	"dog",
	"elephant",
}

// Config holds all configuration for the application
type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Display    DisplayConfig    `mapstructure:"display"`
	Log        LogConfig        `mapstructure:"log"`
}

// DictionaryConfig says where the initial words come from
type DictionaryConfig struct {
	Path string   `mapstructure:"path"`
	Seed []string `mapstructure:"seed"`
}

// DisplayConfig holds rendering options
type DisplayConfig struct {
	Separator string `mapstructure:"separator"`
}

// LogConfig holds logging options
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dictionary.path", "")
	v.SetDefault("dictionary.seed", DefaultSeed)

	v.SetDefault("display.separator", ", ")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Display.Separator == "" {
		return fmt.Errorf("display separator cannot be empty")
	}
	if _, err := c.Log.ZerologLevel(); err != nil {
		return err
	}
	return nil
}

// ZerologLevel parses the configured log level
func (c *LogConfig) ZerologLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err == nil && level == zerolog.NoLevel {
		err = fmt.Errorf("no level given")
	}
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	return level, nil
}
