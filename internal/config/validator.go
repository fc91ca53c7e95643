package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldEnv names the environment variable behind each validated field
var fieldEnv = map[string]string{
	"GamePath":        EnvGamePath,
	"OutputDir":       EnvOutputDir,
	"LogLevel":        EnvLogLevel,
	"LogFormat":       EnvLogFormat,
	"Environment":     EnvEnvironment,
	"Fabricators":     EnvFabricators,
	"MetricsTextfile": EnvMetricsTextfile,
}

// Validate checks the configuration and reports every invalid setting
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	msgs := FormatValidationError(err)
	keys := make([]string, 0, len(msgs))
	for k := range msgs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+msgs[k])
	}
	return fmt.Errorf("%s: %s", ErrMsgInvalidConfig, strings.Join(parts, "; "))
}

// FormatValidationError maps validation failures to readable messages keyed
// by environment variable name
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["config"] = err.Error()
		return errs
	}

	for _, e := range validationErrors {
		field := e.StructField()
		if env, ok := fieldEnv[field]; ok {
			field = env
		}
		switch e.Tag() {
		case "required":
			errs[field] = "must be set"
		case "dir":
			errs[field] = fmt.Sprintf("%q is not an existing directory", e.Value())
		case "oneof":
			errs[field] = fmt.Sprintf("must be one of: %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("must list at least %s entries", e.Param())
		case "filepath":
			errs[field] = fmt.Sprintf("%q is not a valid file path", e.Value())
		default:
			errs[field] = "invalid value"
		}
	}

	return errs
}
