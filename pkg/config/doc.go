// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv, which reads .env files into the
// process environment, with github.com/caarlos0/env/v11, which parses the
// environment into structs annotated with `env` tags.
//
//	type Config struct {
//	    Env         string `env:"APP_ENV" envDefault:"development"`
//	    LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
//	    RulesetPath string `env:"RULESET_PATH"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Every configuration type is parsed once and cached for the lifetime of the
// process. Reload and ResetCache bypass the cache, mostly for tests.
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can be
// matched with errors.Is.
package config
