// Package logging configures the application-wide zap logger.
package logging

import (
	"go.uber.org/zap"
)

// Logger is the global logger instance, set by Setup.
var Logger *zap.Logger

// Setup builds the global logger. Verbose runs get the development
// config (debug level, console encoding); everything else gets the
// production config. The app name and version ride along on every entry.
func Setup(verbose bool, appName, appVersion string) error {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	Logger = logger
	zap.ReplaceGlobals(Logger)
	return nil
}
