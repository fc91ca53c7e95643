package main

import (
	"github.com/osse101/BaroWiki_Go/internal/config"
	"github.com/osse101/BaroWiki_Go/internal/logger"
)

// initLogger initializes the logger from the environment preset, with the
// configured level and format on top
func initLogger(cfg *config.Config) {
	logger.InitLogger(loggerConfig(cfg))
}

func loggerConfig(cfg *config.Config) logger.Config {
	lc := logger.ForEnvironment(cfg.Environment)
	if cfg.LogLevel != "" {
		lc.Level = cfg.LogLevel
	}
	if cfg.LogFormat != "" {
		lc.Format = cfg.LogFormat
	}
	return lc
}
