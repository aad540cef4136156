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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/codelist/system"
)

const read2YAML = `
grammars:
  - system: Read-2
    name: Read v2
    min_length: 5
    max_length: 5
    pattern: '[A-Za-z0-9.]{5}'
    description: Read codes version 2
  - system: opcs
    min_length: 3
    max_length: 4
    pattern: '[A-Z][0-9]{2}[0-9]?'
`

func TestLoadDefinitions(t *testing.T) {
	defs, err := LoadDefinitions(strings.NewReader(read2YAML))
	require.NoError(t, err)
	require.Len(t, defs, 2)

	assert.Equal(t, system.System("read2"), defs[0].System, "system is normalized on decode")
	assert.Equal(t, "Read v2", defs[0].Name)
	assert.Equal(t, 5, defs[0].MinLength)
	assert.Equal(t, "Read codes version 2", defs[0].Description)

	assert.Equal(t, system.OPCS, defs[1].System)
	assert.Empty(t, defs[1].Name)

	g, err := New(defs[0])
	require.NoError(t, err)
	assert.NoError(t, g.ValidateCode("7L1.."))
}

func TestLoadDefinitions_Empty(t *testing.T) {
	defs, err := LoadDefinitions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, defs)
}

func TestLoadDefinitions_Rejects(t *testing.T) {
	tests := map[string]string{
		"unknown field": `
grammars:
  - system: demo
    min_length: 1
    max_length: 2
    pattern: a
    colour: red
`,
		"duplicate system": `
grammars:
  - {system: demo, min_length: 1, max_length: 2, pattern: a}
  - {system: DEMO, min_length: 1, max_length: 3, pattern: b}
`,
		"bad bounds": `
grammars:
  - {system: demo, min_length: 4, max_length: 2, pattern: a}
`,
		"bad pattern": `
grammars:
  - {system: demo, min_length: 1, max_length: 2, pattern: '(a'}
`,
		"bad system": `
grammars:
  - {system: '10x', min_length: 1, max_length: 2, pattern: a}
`,
		"not yaml": "grammars: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			defs, err := LoadDefinitions(strings.NewReader(doc))
			assert.Error(t, err)
			assert.Nil(t, defs)
		})
	}
}

func TestLoadDefinitionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grammars.yaml")
	require.NoError(t, os.WriteFile(path, []byte(read2YAML), 0o600))

	defs, err := LoadDefinitionsFile(path)
	require.NoError(t, err)
	assert.Len(t, defs, 2)

	_, err = LoadDefinitionsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

const read2TOML = `
[[grammars]]
system = "Read-2"
name = "Read v2"
min_length = 5
max_length = 5
pattern = '[A-Za-z0-9.]{5}'
`

func TestLoadDefinitionsTOML(t *testing.T) {
	defs, err := LoadDefinitionsTOML(strings.NewReader(read2TOML))
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, system.System("read2"), defs[0].System)
	assert.Equal(t, "[A-Za-z0-9.]{5}", defs[0].Pattern)

	defs, err = LoadDefinitionsTOML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, defs)

	_, err = LoadDefinitionsTOML(strings.NewReader(read2TOML + "colour = 'red'\n"))
	assert.ErrorIs(t, err, ErrInvalidDefinition)

	_, err = LoadDefinitionsTOML(strings.NewReader("[[grammars]]\nsystem = 'demo'\nmin_length = 3\nmax_length = 1\npattern = 'a'\n"))
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestLoadDefinitionsFile_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grammars.TOML")
	require.NoError(t, os.WriteFile(path, []byte(read2TOML), 0o600))

	defs, err := LoadDefinitionsFile(path)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "Read v2", defs[0].Name)
}
