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

package reachability

import (
	"fmt"
	"log/slog"
)

// Option configures an [Analyzer].
type Option interface {
	apply(a *Analyzer)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	for _, opt := range o {
		if opt == nil {
			continue
		}

		as = append(as, opt.LogAttr())
	}

	return slog.GroupValue(as...)
}

func (o Options) apply(a *Analyzer) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(a)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithConstants is an [Option] to set the evaluator for constant conditions.
func WithConstants(c ConstantEvaluator) Option { return constantsOption{constants: c} }

type constantsOption struct{ constants ConstantEvaluator }

func (o constantsOption) apply(a *Analyzer) {
	if o.constants == nil {
		a.constants = NoConstants{}
		return
	}

	a.constants = o.constants
}

func (o constantsOption) LogAttr() slog.Attr {
	return slog.String("constants", fmt.Sprintf("%T", o.constants))
}

// WithExceptions is an [Option] to set the model deciding which catch clauses can be entered.
func WithExceptions(e ExceptionModel) Option { return exceptionsOption{exceptions: e} }

type exceptionsOption struct{ exceptions ExceptionModel }

func (o exceptionsOption) apply(a *Analyzer) {
	if o.exceptions == nil {
		a.exceptions = AnyThrows{}
		return
	}

	a.exceptions = o.exceptions
}

func (o exceptionsOption) LogAttr() slog.Attr {
	return slog.String("exceptions", fmt.Sprintf("%T", o.exceptions))
}

// WithExemptConstantFor is an [Option] to configure whether the body of a for loop with a constant
// false condition is exempt from being reported, like the body of such a while loop.
func WithExemptConstantFor(exempt bool) Option { return exemptForOption{exempt: exempt} }

type exemptForOption struct{ exempt bool }

func (o exemptForOption) apply(a *Analyzer) {
	a.exemptFor = o.exempt
}

func (o exemptForOption) LogAttr() slog.Attr {
	return slog.Bool("exempt-constant-for", o.exempt)
}
