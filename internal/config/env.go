// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultDotenvFile is read from the working directory when it exists.
const defaultDotenvFile = ".env"

// parseEnv fills cfg from the `env` and `envPrefix` tags of [StructuredConfig].
// Variables found in dotenvFiles are used only when the process environment
// does not set them; missing files are skipped.
func parseEnv(cfg *StructuredConfig, dotenvFiles ...string) error {
	environ := env.ToMap(os.Environ())

	for _, path := range dotenvFiles {
		values, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("error reading dotenv file %s: %w", path, err)
		}

		for key, value := range values {
			if _, ok := environ[key]; !ok {
				environ[key] = value
			}
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
