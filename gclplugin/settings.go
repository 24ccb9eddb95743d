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

package gclplugin

import "fillmore-labs.com/reachguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// ExemptConstantFor keeps bodies of for loops with constant false condition quiet.
	ExemptConstantFor *bool `json:"exempt-constant-for,omitzero"`
	// Config enables reading reachguard.toml files.
	Config *bool `json:"config,omitzero"`
	// ExcludeFunctions lists function name patterns that are not analyzed.
	ExcludeFunctions []string `json:"exclude-functions,omitzero"`
	// Concurrency limits the number of function bodies analyzed in parallel.
	Concurrency *int `json:"concurrency,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the reachguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.ExemptConstantFor, analyzer.WithExemptConstantFor)
	opts = appendOption(opts, s.Config, analyzer.WithConfigFiles)
	opts = appendOption(opts, s.Concurrency, analyzer.WithConcurrency)

	if s.ExcludeFunctions != nil {
		opts = append(opts, analyzer.WithExcludeFunctions(s.ExcludeFunctions...))
	}

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
