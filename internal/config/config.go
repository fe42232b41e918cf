package config

import (
	"github.com/spf13/viper"
)

// Config is the tool configuration, loadable from an optional file with
// environment-independent defaults.
type Config struct {
	LogLevel string `mapstructure:"log_level"`

	// AnalyzerPath overrides runtime discovery when set; it points at
	// the analyzer runtime directory.
	AnalyzerPath string `mapstructure:"analyzer_path"`

	Wasm WasmConfig `mapstructure:"wasm"`
}

// WasmConfig holds analyzer runtime limits.
type WasmConfig struct {
	// Memory limit per module (in pages, 64KB each).
	MemoryPages uint32 `mapstructure:"memory_pages"`
	// Compilation cache directory; empty disables persistent caching.
	CacheDir string `mapstructure:"cache_dir"`
}

// Load reads configuration from an optional file path.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("analyzer_path", "")

	v.SetDefault("wasm.memory_pages", 256) // 16MB
	v.SetDefault("wasm.cache_dir", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
