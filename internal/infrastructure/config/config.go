package config

// Config holds all configuration for the application
type Config struct {
	Environment string        `mapstructure:"environment"`
	Sink        SinkConfig    `mapstructure:"sink"`
	Console     ConsoleConfig `mapstructure:"console"`
}

// SinkConfig contains the log file sink settings
type SinkConfig struct {
	Path       string `mapstructure:"path"` // template, e.g. log_folder/{time:YYYY-MM-DD}.log
	Level      string `mapstructure:"level"`
	Colorize   bool   `mapstructure:"colorize"`
	TimeLayout string `mapstructure:"timeLayout"` // Go reference-time layout
}

// ConsoleConfig contains the optional stderr sink settings
type ConsoleConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Level    string `mapstructure:"level"`
	Colorize bool   `mapstructure:"colorize"`
}
