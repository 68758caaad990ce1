package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultEnvLoaded ensures the .env file is loaded at most once per process,
// before the first config struct is parsed.
var defaultEnvLoaded sync.Once

// Load populates a configuration struct from environment variables using
// `env` struct tags. On first use it loads a .env file from the working
// directory if one exists; a missing file is not an error.
//
// Parsing failures, including missing values marked with the required tag
// option, are returned joined with ErrParsingConfig.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad is like Load but panics on failure. Intended for process startup
// where a missing required variable should abort immediately.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
