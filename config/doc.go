// Package config resolves the application secret and default cipher the
// envelope codec is constructed from.
//
// It checks, in order: an explicit value, environment variables
// (CRYPTOR_KEY then APP_KEY, after loading an optional .env file via
// godotenv), and a YAML config file read with Viper.
//
// # Usage
//
//	cfg, err := config.Load(config.WithEnvFile(".env"))
//	c, err := cryptor.NewFromConfig(*cfg)
package config
