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
	"strings"

	"github.com/spf13/cobra"

	"dirpx.dev/codelist/grammar"
)

func (a *app) newSystemsCmd() *cobra.Command {
	var describe bool
	cmd := &cobra.Command{
		Use:   "systems",
		Short: "List the registered coding systems",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			switch {
			case a.cfg.Format == "json":
				return a.printSystemsJSON()
			case describe:
				return a.describeSystems()
			}
			return a.listSystems()
		},
	}
	cmd.Flags().BoolVar(&describe, "describe", false, "print where each grammar and its bounds come from")
	return cmd
}

func (a *app) listSystems() error {
	for _, sys := range a.reg.Systems() {
		g, _ := a.reg.Lookup(sys)
		if _, err := fmt.Fprintf(a.stdout, "%-8s %-8s %d..%d\n", sys, g.Name(), g.MinLength(), g.MaxLength()); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) describeSystems() error {
	blocks := make([]string, 0, len(a.reg.Systems()))
	for _, sys := range a.reg.Systems() {
		blocks = append(blocks, a.reg.Describe(sys))
	}
	_, err := fmt.Fprintln(a.stdout, strings.Join(blocks, "\n\n"))
	return err
}

func (a *app) printSystemsJSON() error {
	defs := make([]grammar.Definition, 0, len(a.reg.Systems()))
	for _, sys := range a.reg.Systems() {
		g, _ := a.reg.Lookup(sys)
		defs = append(defs, g.Definition())
	}
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(defs)
}
