// Package logger builds the service's zap logger.
package logger

import "go.uber.org/zap"

// New returns a named logger: human-friendly development output when env is
// "development", JSON production output otherwise.
func New(env, name string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if env == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return log.Named(name), nil
}
