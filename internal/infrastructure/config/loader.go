package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/amirhossein-jamali/logging-demo/internal/domain/port/core"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment variable read by the loader
const EnvPrefix = "LD"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment.
// A missing config file is not an error: the defaults reproduce the
// standard setup of one daily file under log_folder at INFO.
func LoadConfig() (*Config, error) {
	// .env files are optional
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for every setting
func setDefaults(v *viper.Viper) {
	v.SetDefault("sink.path", "log_folder/{time:YYYY-MM-DD}.log")
	v.SetDefault("sink.level", "info")
	v.SetDefault("sink.colorize", false)
	v.SetDefault("sink.timeLayout", "2006-01-02 15:04:05")

	v.SetDefault("console.enabled", false)
	v.SetDefault("console.level", "debug")
	v.SetDefault("console.colorize", true)
}

// getEnvironment determines the environment to use based on LD_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values.
// AutomaticEnv cannot map the camel-cased keys, so they are set explicitly.
func processEnvOverrides(v *viper.Viper) {
	if path := os.Getenv("LD_SINK_PATH"); path != "" {
		v.Set("sink.path", path)
	}
	if level := os.Getenv("LD_SINK_LEVEL"); level != "" {
		v.Set("sink.level", level)
	}
	if colorize, ok := getEnvBool("LD_SINK_COLORIZE"); ok {
		v.Set("sink.colorize", colorize)
	}
	if layout := os.Getenv("LD_SINK_TIME_LAYOUT"); layout != "" {
		v.Set("sink.timeLayout", layout)
	}

	if enabled, ok := getEnvBool("LD_CONSOLE_ENABLED"); ok {
		v.Set("console.enabled", enabled)
	}
	if level := os.Getenv("LD_CONSOLE_LEVEL"); level != "" {
		v.Set("console.level", level)
	}
	if colorize, ok := getEnvBool("LD_CONSOLE_COLORIZE"); ok {
		v.Set("console.colorize", colorize)
	}
}

// getEnvBool reads a boolean environment variable; ok is false when it is
// unset or not a valid boolean
func getEnvBool(name string) (value bool, ok bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return false, false
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return value, true
}

// Validate ensures all required configuration values are present and usable
func (c *Config) Validate() error {
	var problems []string

	switch c.Environment {
	case Development, Production, Test:
	case "":
		problems = append(problems, "environment is missing")
	default:
		problems = append(problems, fmt.Sprintf("invalid environment value: %s, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test))
	}

	if strings.TrimSpace(c.Sink.Path) == "" {
		problems = append(problems, "sink.path is missing")
	}
	if _, err := core.ParseLogLevel(c.Sink.Level); err != nil {
		problems = append(problems, "sink.level: "+err.Error())
	}
	if c.Console.Enabled {
		if _, err := core.ParseLogLevel(c.Console.Level); err != nil {
			problems = append(problems, "console.level: "+err.Error())
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
