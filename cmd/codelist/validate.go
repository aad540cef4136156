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

	"dirpx.dev/codelist"
	"dirpx.dev/codelist/list"
	"dirpx.dev/codelist/system"
)

func (a *app) newValidateCmd() *cobra.Command {
	var (
		codeColumn, termColumn int
		codeField, termField   string
		noHeader               bool
	)
	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate code lists read from CSV or JSON files",
		Long: "Validate code lists. Files ending in .json are read as JSON lists and carry\n" +
			"their own coding system; .csv and .txt files are CSV of the --system coding system.\n" +
			"With no files, or with \"-\", CSV is read from standard input.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := list.CSVOptions{
				CodeColumn: a.cfg.CodeColumn,
				TermColumn: a.cfg.TermColumn,
				CodeField:  a.cfg.CodeField,
				TermField:  a.cfg.TermField,
				Header:     !a.cfg.NoHeader,
			}
			fs := cmd.Flags()
			if fs.Changed("code-column") {
				opts.CodeColumn = codeColumn
			}
			if fs.Changed("term-column") {
				opts.TermColumn = termColumn
			}
			if fs.Changed("code-field") {
				opts.CodeField = codeField
			}
			if fs.Changed("term-field") {
				opts.TermField = termField
			}
			if fs.Changed("no-header") {
				opts.Header = !noHeader
			}
			if len(args) == 0 {
				args = []string{"-"}
			}
			return a.validateFiles(args, opts)
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&codeColumn, "code-column", 0, "zero-based CSV column of the code (env CODELIST_CODE_COLUMN)")
	fs.IntVar(&termColumn, "term-column", 1, "zero-based CSV column of the term (env CODELIST_TERM_COLUMN)")
	fs.StringVar(&codeField, "code-field", "", "header name of the code column (env CODELIST_CODE_FIELD)")
	fs.StringVar(&termField, "term-field", "", "header name of the term column (env CODELIST_TERM_FIELD)")
	fs.BoolVar(&noHeader, "no-header", false, "CSV input has no header row (env CODELIST_NO_HEADER)")
	return cmd
}

func (a *app) validateFiles(paths []string, opts list.CSVOptions) error {
	rep := newReporter(a.stdout, a.cfg)
	invalid := 0
	for _, path := range paths {
		l, err := a.readList(path, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", displayName(path), err)
		}
		verr := a.reg.ValidateList(l)
		if verr != nil && !isListFailure(verr) {
			return fmt.Errorf("%s: %w", displayName(path), verr)
		}
		if verr != nil {
			invalid++
		}
		a.logger.Info("validated list",
			slog.String("file", displayName(path)),
			slog.String("system", string(l.Type())),
			slog.Int("codes", l.Len()),
			slog.Bool("valid", verr == nil),
		)
		if err := rep.list(displayName(path), l, verr); err != nil {
			return err
		}
	}
	if invalid > 0 {
		return errInvalid
	}
	return nil
}

func (a *app) readList(path string, opts list.CSVOptions) (*list.CodeList, error) {
	if path == "-" {
		return a.readCSV(a.stdin, opts)
	}
	f, err := list.FormatOf(path)
	if err != nil {
		return nil, err
	}
	if f == list.JSON {
		return list.ReadFile(path, system.Empty, opts)
	}
	sys, err := a.csvSystem()
	if err != nil {
		return nil, err
	}
	return list.ReadFile(path, sys, opts)
}

func (a *app) readCSV(r io.Reader, opts list.CSVOptions) (*list.CodeList, error) {
	sys, err := a.csvSystem()
	if err != nil {
		return nil, err
	}
	return list.ReadCSV(r, sys, opts)
}

func (a *app) csvSystem() (system.System, error) {
	sys, err := system.Parse(a.cfg.System)
	if err != nil {
		return system.Empty, codelist.InvalidCodelistType(a.cfg.System).WithCause(err)
	}
	return sys, nil
}

// isListFailure reports whether err is a validation outcome rather than a
// failure to validate.
func isListFailure(err error) bool {
	return errors.Is(err, codelist.ErrInvalidCodelist)
}

func displayName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}
