package config

import "go.uber.org/zap"

// setLogger selects a zap core for the given environment. Anything other
// than development or production gets the example logger, which keeps local
// runs and tests quiet but structured.
func setLogger(environment string) (*zap.Logger, error) {
	switch environment {
	case "development":
		return zap.NewDevelopment()
	case "production":
		return zap.NewProduction()
	default:
		return zap.NewExample(), nil
	}
}
