package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the settings of one extraction run
type Config struct {
	GamePath        string   `validate:"required,dir"`
	OutputDir       string   `validate:"required"`
	LogLevel        string   `validate:"oneof=debug info warn warning error"`
	LogFormat       string   `validate:"oneof=text json"`
	Environment     string   `validate:"oneof=dev ci prod test"`
	Fabricators     []string `validate:"min=1,dive,required"`
	MetricsTextfile string   `validate:"omitempty,filepath"`
}

// Flags holds CLI flag values that override environment settings.
type Flags struct {
	GamePath  string
	OutputDir string
}

// Load reads the configuration from the environment, applies flag
// overrides and validates the result.
func Load(flags Flags) (*Config, error) {
	// .env is optional; real environment variables work as well
	_ = godotenv.Load()

	cfg := &Config{
		GamePath:        getEnv(EnvGamePath, ""),
		OutputDir:       getEnv(EnvOutputDir, DefaultOutputDir),
		LogLevel:        strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:       strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:     getEnv(EnvEnvironment, DefaultEnvironment),
		Fabricators:     SplitList(getEnv(EnvFabricators, DefaultFabricators)),
		MetricsTextfile: getEnv(EnvMetricsTextfile, ""),
	}
	cfg.Resolve(flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve applies non-empty flag values on top of the configuration.
func (c *Config) Resolve(f Flags) {
	if f.GamePath != "" {
		c.GamePath = f.GamePath
	}
	if f.OutputDir != "" {
		c.OutputDir = f.OutputDir
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// SplitList splits a comma separated value, dropping empty entries.
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
