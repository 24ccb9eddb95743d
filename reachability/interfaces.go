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

import "fillmore-labs.com/reachguard/stmt"

// ConstantEvaluator folds boolean conditions.
//
// BoolConstant reports the value of expr when it is a compile-time constant. It is never
// called for the condition of an assert statement.
type ConstantEvaluator interface {
	BoolConstant(expr stmt.Expr) (value, ok bool)
}

// ExceptionModel decides which catch clauses of a try statement can be entered.
type ExceptionModel interface {
	// MayThrow reports whether body may complete abruptly by throwing.
	MayThrow(body *stmt.Block) bool

	// IsReachableCatch reports whether an exception of catchType can be thrown by body.
	IsReachableCatch(body *stmt.Block, catchType stmt.Expr) bool
}

// Diagnostic is the kind of a finding.
type Diagnostic uint8

const (
	UnreachableStatement Diagnostic = iota // unreachable statement
)

// Reporter receives findings in traversal order.
type Reporter interface {
	Report(s stmt.Stmt, d Diagnostic)
}

// ReporterFunc is an adapter to allow the use of ordinary functions as a [Reporter].
type ReporterFunc func(s stmt.Stmt, d Diagnostic)

// Report calls f(s, d).
func (f ReporterFunc) Report(s stmt.Stmt, d Diagnostic) { f(s, d) }

// NoConstants treats no condition as constant.
type NoConstants struct{}

// BoolConstant implements [ConstantEvaluator].
func (NoConstants) BoolConstant(stmt.Expr) (value, ok bool) { return false, false }

// AnyThrows assumes every block doing something may throw, and every catch clause is plausible.
type AnyThrows struct{}

// MayThrow implements [ExceptionModel].
func (AnyThrows) MayThrow(body *stmt.Block) bool {
	if body == nil {
		return false
	}

	for s := range stmt.Preorder(body) {
		switch s.(type) {
		case *stmt.Block, *stmt.Empty:
			// no effect

		default:
			return true
		}
	}

	return false
}

// IsReachableCatch implements [ExceptionModel].
func (AnyThrows) IsReachableCatch(*stmt.Block, stmt.Expr) bool { return true }

type discard struct{}

func (discard) Report(stmt.Stmt, Diagnostic) {}
