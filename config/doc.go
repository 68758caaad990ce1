// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Configuration is declared as a struct with `env` tags and loaded once
// during startup:
//
//	type Config struct {
//		Port        int           `env:"PORT" envDefault:"8080"`
//		DatabaseURL string        `env:"DATABASE_URL,required"`
//		Timeout     time.Duration `env:"TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// The first call to Load reads a .env file from the working directory if
// one exists, so local overrides need no extra wiring. Real environment
// variables take precedence over .env entries.
//
// MustLoad panics instead of returning an error, which suits main functions
// where a missing required variable should abort the process:
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// # Error Handling
//
// Load returns ErrNilPointer when given a nil struct pointer, and joins
// parse failures with ErrParsingConfig so callers can detect them with
// errors.Is. The underlying caarlos0/env error remains in the chain and
// names the offending variable.
package config
