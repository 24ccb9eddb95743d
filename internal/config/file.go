// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the per-directory configuration file.
const FileName = "reachguard.toml"

// inherit in a list refers to the list of the enclosing directory.
const inherit = "inherit"

// File is the content of a configuration file.
type File struct {
	Generated         *bool    `toml:"generated"`
	ExemptConstantFor *bool    `toml:"exempt-constant-for"`
	ExcludeFunctions  []string `toml:"exclude-functions"`
}

// Apply merges the file over s. Unset keys keep the value of s.
func (f File) Apply(s *Settings) {
	if f.Generated != nil {
		s.Behavior.Set(IncludeGenerated, *f.Generated)
	}

	if f.ExemptConstantFor != nil {
		s.Behavior.Set(ExemptConstantFor, *f.ExemptConstantFor)
	}

	if f.ExcludeFunctions != nil {
		s.ExcludeFunctions = mergeLists(s.ExcludeFunctions, f.ExcludeFunctions)
	}
}

// Load applies all configuration files from the file system root down to dir over base.
// Files closer to dir take precedence.
func Load(dir string, base Settings) (Settings, error) {
	files, err := parseFiles(dir)
	if err != nil {
		return base, err
	}

	settings := base.Clone()
	for _, f := range slices.Backward(files) {
		f.Apply(&settings)
	}

	return settings, nil
}

// parseFiles returns the configuration files from dir upwards, nearest first.
func parseFiles(dir string) ([]File, error) {
	var files []File

	for dir != "" {
		f, err := ParseFile(filepath.Join(dir, FileName))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// no configuration in this directory

		case err != nil:
			return nil, err

		default:
			files = append(files, f)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return files, nil
}

// ParseFile decodes a single configuration file.
func ParseFile(path string) (File, error) {
	var f File

	data, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}

	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return f, fmt.Errorf("config: %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return f, fmt.Errorf("config: %s: unknown key %q: %w", path, undecoded[0].String(), ErrUnknownKey)
	}

	return f, nil
}

// ErrUnknownKey is returned for configuration keys reachguard does not know.
var ErrUnknownKey = errors.New("unknown configuration key")

// mergeLists replaces a with b, expanding "inherit" elements of b to a.
func mergeLists(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	for _, el := range b {
		if el == inherit {
			out = append(out, a...)
		} else {
			out = append(out, el)
		}
	}

	slices.Sort(out)

	return slices.Compact(out)
}
