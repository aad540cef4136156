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
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"dirpx.dev/codelist/grammar"
	"dirpx.dev/codelist/registry"
)

// Exit statuses.
const (
	exitOK      = 0
	exitInvalid = 1
	exitError   = 2
)

// errInvalid is returned by commands that ran fine but found invalid input.
// The report has already been printed.
var errInvalid = errors.New("invalid input")

// app carries the state shared by all subcommands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// environ overrides the process environment in tests.
	environ map[string]string

	envFile string
	cfg     config
	logger  *slog.Logger
	reg     *registry.Registry
}

// run executes the CLI and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return newApp(stdin, stdout, stderr).execute(args)
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{stdin: stdin, stdout: stdout, stderr: stderr}
}

func (a *app) execute(args []string) int {
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := root.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errInvalid):
		return exitInvalid
	default:
		_, _ = fmt.Fprintln(a.stderr, "Error:", err)
		return exitError
	}
}

func (a *app) newRootCmd() *cobra.Command {
	var flags struct {
		system, grammars, format, logLevel, color string
	}
	root := &cobra.Command{
		Use:           "codelist",
		Short:         "Validate clinical code lists",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.envFile, a.environ)
			if err != nil {
				return err
			}
			pf := cmd.Flags()
			override := func(name string, dst *string, v string) {
				if pf.Changed(name) {
					*dst = v
				}
			}
			override("system", &cfg.System, flags.system)
			override("grammars", &cfg.Grammars, flags.grammars)
			override("format", &cfg.Format, flags.format)
			override("log-level", &cfg.LogLevel, flags.logLevel)
			override("color", &cfg.Color, flags.color)
			if err := cfg.validate(); err != nil {
				return err
			}
			a.cfg = cfg
			return a.setup()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.envFile, "env-file", "", "load environment from this file instead of ./.env")
	pf.StringVarP(&flags.system, "system", "s", "", "coding system of CSV input (env CODELIST_SYSTEM)")
	pf.StringVar(&flags.grammars, "grammars", "", "YAML or TOML file with extra grammar definitions (env CODELIST_GRAMMARS)")
	pf.StringVarP(&flags.format, "format", "f", "", "report format: text or json (env CODELIST_FORMAT)")
	pf.StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error (env CODELIST_LOG_LEVEL)")
	pf.StringVar(&flags.color, "color", "", "auto or never (env CODELIST_COLOR)")

	root.AddCommand(
		a.newValidateCmd(),
		a.newCheckCmd(),
		a.newSystemsCmd(),
		newVersionCmd(),
	)
	return root
}

// setup builds the logger and the registry from a.cfg.
func (a *app) setup() error {
	level, err := parseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	opts := []registry.Option{registry.WithLogger(a.logger)}
	if a.cfg.Grammars != "" {
		defs, err := grammar.LoadDefinitionsFile(a.cfg.Grammars)
		if err != nil {
			return err
		}
		a.logger.Debug("loaded grammar definitions", slog.String("file", a.cfg.Grammars), slog.Int("count", len(defs)))
		opts = append(opts, registry.WithGrammars(defs...))
	}
	a.reg, err = registry.New(opts...)
	return err
}
