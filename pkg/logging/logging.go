// Package logging builds the zap logger shared by the CLI and the snapshot generator.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Setup builds a logger for the application and installs it as the zap global.
// Debug mode switches to the development config, with console encoding and debug level.
// If the configured logger cannot be built, a no-op logger is returned alongside the error.
func Setup(debug bool, appName, appVersion string) (*zap.Logger, error) {
	cfg := Config(debug)

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop(), err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}

// Config returns the zap configuration for the given mode.
// Both modes log to stderr so stdout only carries command output.
func Config(debug bool) zap.Config {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg
}
