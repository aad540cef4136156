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

package list

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dirpx.dev/codelist"
	"dirpx.dev/codelist/system"
)

// Format is a list file format, selected by file extension.
type Format int

// Supported formats.
const (
	CSV Format = iota + 1
	JSON
)

// FormatOf returns the format for path: ".csv" and ".txt" are CSV, ".json"
// is JSON (case-insensitive). Anything else is an invalid_file_path error.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		return CSV, nil
	case ".json":
		return JSON, nil
	case "":
		return 0, codelist.InvalidFilePath(fmt.Sprintf("%s has no extension", path))
	default:
		return 0, codelist.InvalidFilePath(fmt.Sprintf("%s: unsupported extension %s", path, ext))
	}
}

// ReadFile reads a list from path. typ and opts apply to CSV files only;
// JSON files carry their own coding system.
func ReadFile(path string, typ system.System, opts CSVOptions) (*CodeList, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	// #nosec G304 -- the caller chooses the path.
	fh, err := os.Open(path)
	if err != nil {
		return nil, codelist.IOError(err)
	}
	defer func() { _ = fh.Close() }()
	if f == JSON {
		return ReadJSON(fh)
	}
	return ReadCSV(fh, typ, opts)
}

// WriteFile writes the list to path in the format its extension names,
// replacing any existing file.
func (l *CodeList) WriteFile(path string) (err error) {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	// #nosec G304 -- the caller chooses the path.
	fh, err := os.Create(path)
	if err != nil {
		return codelist.IOError(err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = codelist.IOError(cerr)
		}
	}()
	if f == JSON {
		return l.WriteJSON(fh)
	}
	return l.WriteCSV(fh)
}
