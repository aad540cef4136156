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
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"dirpx.dev/codelist"
)

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [code...]",
		Short: "Validate individual codes of the --system coding system",
		Long: "Validate individual codes. With no arguments, codes are read from standard\n" +
			"input, one per line; blank lines are skipped. Codes are not trimmed.",
		RunE: func(_ *cobra.Command, args []string) error {
			codes := args
			if len(codes) == 0 {
				var err error
				if codes, err = a.readCodes(); err != nil {
					return err
				}
			}
			return a.checkCodes(codes)
		},
	}
}

func (a *app) checkCodes(codes []string) error {
	v, err := a.reg.ValidatorFor(a.cfg.System)
	if err != nil {
		return err
	}
	rep := newReporter(a.stdout, a.cfg)
	invalid := 0
	for _, code := range codes {
		cerr := v.ValidateCode(code)
		if cerr != nil {
			invalid++
		}
		if err := rep.code(string(v.System()), code, cerr); err != nil {
			return err
		}
	}
	a.logger.Info("checked codes", "system", v.System(), "codes", len(codes), "invalid", invalid)
	if invalid > 0 {
		return errInvalid
	}
	return nil
}

func (a *app) readCodes() ([]string, error) {
	var codes []string
	sc := bufio.NewScanner(a.stdin)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		codes = append(codes, line)
	}
	if err := sc.Err(); err != nil {
		return nil, codelist.IOError(err)
	}
	return codes, nil
}
