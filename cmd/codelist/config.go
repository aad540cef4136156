/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// config is the CLI configuration. Flags override these values.
type config struct {
	System     string `env:"CODELIST_SYSTEM" envDefault:"opcs"`
	Grammars   string `env:"CODELIST_GRAMMARS"`
	Format     string `env:"CODELIST_FORMAT" envDefault:"text"`
	LogLevel   string `env:"CODELIST_LOG_LEVEL" envDefault:"warn"`
	Color      string `env:"CODELIST_COLOR" envDefault:"auto"`
	CodeColumn int    `env:"CODELIST_CODE_COLUMN" envDefault:"0"`
	TermColumn int    `env:"CODELIST_TERM_COLUMN" envDefault:"1"`
	CodeField  string `env:"CODELIST_CODE_FIELD"`
	TermField  string `env:"CODELIST_TERM_FIELD"`
	NoHeader   bool   `env:"CODELIST_NO_HEADER"`
}

// loadConfig parses the configuration from environ, or from the process
// environment when environ is nil. Variables from envFile (or ./.env when
// envFile is empty and the file exists) fill in whatever is not already set.
func loadConfig(envFile string, environ map[string]string) (config, error) {
	var cfg config
	if environ == nil {
		environ = env.ToMap(os.Environ())
	} else {
		environ = maps.Clone(environ)
	}

	var (
		dotenv map[string]string
		err    error
	)
	if envFile != "" {
		if dotenv, err = godotenv.Read(envFile); err != nil {
			return cfg, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	} else if dotenv, err = godotenv.Read(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("config: load .env: %w", err)
	}
	for k, v := range dotenv {
		if _, set := environ[k]; !set {
			environ[k] = v
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c config) validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown format %q (want text or json)", c.Format)
	}
	switch c.Color {
	case "auto", "never":
	default:
		return fmt.Errorf("config: unknown color mode %q (want auto or never)", c.Color)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return l, fmt.Errorf("config: log level: %w", err)
	}
	return l, nil
}
