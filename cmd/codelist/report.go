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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"dirpx.dev/codelist/adapter"
	"dirpx.dev/codelist/apis"
	"dirpx.dev/codelist/list"
)

// reporter renders validation results in the configured format.
type reporter struct {
	w    io.Writer
	json bool

	ok, bad, faint lipgloss.Style
}

func newReporter(w io.Writer, cfg config) *reporter {
	r := &reporter{w: w, json: cfg.Format == "json"}
	if cfg.Color == "never" || !isTerminal(w) {
		r.ok, r.bad, r.faint = lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle()
		return r
	}
	re := lipgloss.NewRenderer(w)
	r.ok = re.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	r.bad = re.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	r.faint = re.NewStyle().Faint(true)
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// listResult is one line of the JSON validate report.
type listResult struct {
	File   string          `json:"file"`
	ID     string          `json:"id"`
	System string          `json:"system"`
	Codes  int             `json:"codes"`
	Valid  bool            `json:"valid"`
	Error  *apis.ErrorView `json:"error,omitempty"`
}

// codeResult is one line of the JSON check report.
type codeResult struct {
	Code   string          `json:"code"`
	System string          `json:"system"`
	Valid  bool            `json:"valid"`
	Error  *apis.ErrorView `json:"error,omitempty"`
}

// list reports the outcome of validating l. verr is nil or an
// invalid_codelist error.
func (r *reporter) list(name string, l *list.CodeList, verr error) error {
	if r.json {
		res := listResult{
			File:   name,
			ID:     l.ID().String(),
			System: string(l.Type()),
			Codes:  l.Len(),
			Valid:  verr == nil,
		}
		if verr != nil {
			v := adapter.ToView(verr)
			res.Error = &v
		}
		return r.encode(res)
	}

	if verr == nil {
		return r.printf("%s %s: %d codes valid %s\n",
			r.ok.Render("ok"), name, l.Len(), r.faint.Render("("+string(l.Type())+")"))
	}
	details := adapter.ToView(verr).Details
	if err := r.printf("%s %s: %d of %d codes invalid %s\n",
		r.bad.Render("FAIL"), name, len(details), l.Len(), r.faint.Render("("+string(l.Type())+")")); err != nil {
		return err
	}
	for _, d := range details {
		if err := r.printf("  %s  %s\n", r.bad.Render(d.Code), d.Reason); err != nil {
			return err
		}
	}
	return nil
}

// code reports the outcome of validating a single code.
func (r *reporter) code(sys, code string, err error) error {
	if r.json {
		res := codeResult{Code: code, System: sys, Valid: err == nil}
		if err != nil {
			v := adapter.ToView(err)
			res.Error = &v
		}
		return r.encode(res)
	}
	if err == nil {
		return r.printf("%s %s\n", r.ok.Render("ok"), code)
	}
	return r.printf("%s %s  %s\n", r.bad.Render("FAIL"), code, err)
}

func (r *reporter) encode(v any) error {
	if err := json.NewEncoder(r.w).Encode(v); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func (r *reporter) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(r.w, format, args...); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
