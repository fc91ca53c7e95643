package config

// Environment variable names
const (
	EnvGamePath        = "GAME_PATH"
	EnvOutputDir       = "OUTPUT_DIR"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvEnvironment     = "ENVIRONMENT"
	EnvFabricators     = "FABRICATORS"
	EnvMetricsTextfile = "METRICS_TEXTFILE"
)

// Defaults
const (
	DefaultOutputDir   = "out"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultFabricators = "fabricator,medicalfabricator"
)

// Error Messages
const (
	ErrMsgInvalidConfig = "invalid configuration"
)
