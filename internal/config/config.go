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

// Package config holds the reachguard behaviour flags and the configuration file loader.
package config

import "slices"

// Behavior represents configuration options for the analyzer.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota

	// ExemptConstantFor extends the constant condition exemption of while loops to for loops.
	ExemptConstantFor

	// ReadConfigFiles enables reading reachguard.toml files from the package directory upwards.
	ReadConfigFiles
)

// DefaultBehavior returns the default behaviour flags.
func DefaultBehavior() BitMask[Behavior] {
	return NewBitMask(ExemptConstantFor, ReadConfigFiles)
}

// Settings is the effective configuration for a package.
type Settings struct {
	// Behavior holds behavioral options.
	Behavior BitMask[Behavior]

	// ExcludeFunctions lists function name patterns whose bodies are not analyzed.
	ExcludeFunctions []string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{Behavior: DefaultBehavior()}
}

// Clone returns a copy of s not sharing the exclusion list.
func (s Settings) Clone() Settings {
	s.ExcludeFunctions = slices.Clone(s.ExcludeFunctions)

	return s
}
