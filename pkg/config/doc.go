// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment
//     (the default .env in the working directory is tried once, silently).
//   - Load parses the environment into any struct using `env` tags and caches
//     the result per type, so repeated calls are cheap and consistent.
//   - MustLoad and MustLoadEnv panic on failure for startup code.
//   - ResetCache and ForceReload drop cached values, mostly for tests.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/lostoken/pkg/config"
//	    "github.com/dmitrymomot/lostoken/pkg/token"
//	)
//
//	var cfg token.Config
//	config.MustLoad(&cfg)
//
//	signer, err := token.NewFromConfig(cfg)
//
// # Error Handling
//
// Parse failures wrap ErrParsingConfig, a nil destination returns
// ErrNilPointer and unreadable .env files wrap ErrLoadingEnvFile.
package config
