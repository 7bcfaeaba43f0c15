package config

// Config is the complete boxtext configuration.
type Config struct {
	Render RenderConfig `koanf:"render"`
	Input  InputConfig  `koanf:"input"`
	Log    LogConfig    `koanf:"log"`
}

// RenderConfig holds the defaults for render options.
type RenderConfig struct {
	Format     string `koanf:"format"`
	Width      int    `koanf:"width"`
	Color      bool   `koanf:"color"`
	Structured string `koanf:"structured"`
}

// InputConfig controls how input documents are read.
type InputConfig struct {
	Syntax string `koanf:"syntax"`
}

// LogConfig controls logging.
type LogConfig struct {
	Verbosity int `koanf:"verbosity"`
}
