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

package analyzer

import (
	"log/slog"
	"slices"

	"fillmore-labs.com/reachguard/internal/config"
	"fillmore-labs.com/reachguard/internal/run"
)

// Option configures specific behavior of a [New] reachguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Settings.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithExemptConstantFor is an [Option] to configure whether bodies of for loops with a constant
// false condition are exempt from being reported.
func WithExemptConstantFor(exempt bool) Option { return exemptForOption{exempt: exempt} }

type exemptForOption struct{ exempt bool }

func (o exemptForOption) apply(r *run.Options) {
	r.Settings.Behavior.Set(config.ExemptConstantFor, o.exempt)
}

func (o exemptForOption) LogAttr() slog.Attr {
	return slog.Bool("exempt-for", o.exempt)
}

// WithConfigFiles is an [Option] to configure whether reachguard.toml files are read.
func WithConfigFiles(read bool) Option { return configFilesOption{read: read} }

type configFilesOption struct{ read bool }

func (o configFilesOption) apply(r *run.Options) {
	r.Settings.Behavior.Set(config.ReadConfigFiles, o.read)
}

func (o configFilesOption) LogAttr() slog.Attr {
	return slog.Bool("config", o.read)
}

// WithExcludeFunctions is an [Option] to skip functions matching one of the [path.Match] patterns.
// Methods are matched as "Type.Method".
func WithExcludeFunctions(patterns ...string) Option {
	return excludeOption{patterns: slices.Clone(patterns)}
}

type excludeOption struct{ patterns []string }

func (o excludeOption) apply(r *run.Options) {
	r.Settings.ExcludeFunctions = append(slices.Clip(r.Settings.ExcludeFunctions), o.patterns...)
}

func (o excludeOption) LogAttr() slog.Attr {
	return slog.Any("exclude-functions", o.patterns)
}

// WithLogger is an [Option] to set the logger for debug messages.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}

// WithConcurrency is an [Option] to limit the number of function bodies analyzed in parallel.
// Zero means GOMAXPROCS.
func WithConcurrency(n int) Option { return concurrencyOption{n: n} }

type concurrencyOption struct{ n int }

func (o concurrencyOption) apply(r *run.Options) {
	r.Concurrency = o.n
}

func (o concurrencyOption) LogAttr() slog.Attr {
	return slog.Int("concurrency", o.n)
}
