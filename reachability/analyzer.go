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
	"context"
	"runtime/trace"

	"fillmore-labs.com/reachguard/stmt"
)

// Analyzer determines the reachability of the statements of a body.
//
// An Analyzer is immutable and safe for concurrent use; each call to [Analyzer.Analyze]
// owns its traversal state.
type Analyzer struct {
	constants  ConstantEvaluator
	exceptions ExceptionModel
	exemptFor  bool
}

// New returns an [Analyzer] with the given options applied.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		constants:  NoConstants{},
		exceptions: AnyThrows{},
		exemptFor:  true,
	}
	Options(opts).apply(a)

	return a
}

// Analyze walks body, which is reachable on entry, and reports the first statement of every
// unreachable run to r. A nil r discards the findings.
func (a *Analyzer) Analyze(ctx context.Context, body *stmt.Block, r Reporter) *Result {
	defer trace.StartRegion(ctx, "analyze").End()

	if r == nil {
		r = discard{}
	}

	w := walker{
		Analyzer: a,
		reporter: r,
		result:   newResult(),
	}

	if body != nil {
		w.result.body = w.statement(body, true, nil)
	}

	return w.result
}

// Result holds the verdicts of one [Analyzer.Analyze] call.
type Result struct {
	reachable   map[stmt.Stmt]bool
	completions map[stmt.Stmt]Completion
	unreachable []stmt.Stmt
	body        Completion
}

func newResult() *Result {
	return &Result{
		reachable:   make(map[stmt.Stmt]bool),
		completions: make(map[stmt.Stmt]Completion),
	}
}

// Reachable reports whether control can reach s. ok is false when s was not part of the analyzed body.
func (r *Result) Reachable(s stmt.Stmt) (reachable, ok bool) {
	reachable, ok = r.reachable[s]

	return reachable, ok
}

// Completion returns how s can complete. Unreachable statements do not complete.
func (r *Result) Completion(s stmt.Stmt) (c Completion, ok bool) {
	c, ok = r.completions[s]

	return c, ok
}

// Unreachable returns the reported statements in traversal order.
func (r *Result) Unreachable() []stmt.Stmt {
	return r.unreachable
}

// Body returns the completion of the analyzed body.
func (r *Result) Body() Completion {
	return r.body
}
