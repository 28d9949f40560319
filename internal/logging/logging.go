package logging

import "go.uber.org/zap"

// New builds the process logger. Production encoding unless the app is
// running in a development environment.
func New(environment string) *zap.Logger {
	if environment == "production" {
		logger, _ := zap.NewProduction()
		return logger
	}
	logger, _ := zap.NewDevelopment()
	return logger
}
