package logger

// Console configures logging to stderr.
type Console struct {
	Enabled bool `mapstructure:"enabled"`
	// Pretty selects the human readable zerolog.ConsoleWriter instead of JSON lines.
	Pretty bool `mapstructure:"pretty"`
}

// File configures a size-rotated log file.
type File struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	Name       string `mapstructure:"name"`
	MaxSize    int    `mapstructure:"maxsize"` // megabytes
	MaxBackups int    `mapstructure:"maxbackups"`
	MaxAge     int    `mapstructure:"maxage"` // days
}

// Log implements the logger config.
type Log struct {
	Level        string  `mapstructure:"level"` // trace, debug, info, warn, error
	ReportCaller bool    `mapstructure:"reportcaller"`
	Console      Console `mapstructure:"console"`
	File         File    `mapstructure:"file"`
}
