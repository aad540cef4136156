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

package grammar

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// definitionsFile is the document shape read by LoadDefinitions and
// LoadDefinitionsTOML.
type definitionsFile struct {
	Grammars []Definition `yaml:"grammars" toml:"grammars"`
}

// LoadDefinitions decodes grammar definitions from a YAML document.
//
// Unknown fields are rejected, every definition must compile, and a system
// may be defined only once per document. An empty document yields no
// definitions and no error.
func LoadDefinitions(r io.Reader) ([]Definition, error) {
	var f definitionsFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("grammar: decode definitions: %w", err)
	}
	return checkDefinitions(f.Grammars)
}

// LoadDefinitionsTOML is LoadDefinitions for TOML documents:
//
//	[[grammars]]
//	system = "read2"
//	min_length = 5
//	max_length = 5
//	pattern = '[A-Za-z0-9.]{5}'
func LoadDefinitionsTOML(r io.Reader) ([]Definition, error) {
	var f definitionsFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("grammar: decode definitions: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidDefinition, undecoded[0].String())
	}
	return checkDefinitions(f.Grammars)
}

// LoadDefinitionsFile reads grammar definitions from a file. Files ending in
// ".toml" are decoded as TOML, everything else as YAML.
func LoadDefinitionsFile(path string) ([]Definition, error) {
	// #nosec G304 -- path comes from trusted CLI flag/env.
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grammar: open %q: %w", path, err)
	}
	defer func() { _ = fh.Close() }()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return LoadDefinitionsTOML(fh)
	}
	return LoadDefinitions(fh)
}

func checkDefinitions(defs []Definition) ([]Definition, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	seen := make(map[string]int, len(defs))
	for i, d := range defs {
		if j, dup := seen[string(d.System)]; dup {
			return nil, fmt.Errorf("%w: system %q defined twice (entries %d and %d)", ErrInvalidDefinition, d.System, j, i)
		}
		seen[string(d.System)] = i
		if _, err := New(d); err != nil {
			return nil, fmt.Errorf("grammar: definition %d: %w", i, err)
		}
	}
	return defs, nil
}
