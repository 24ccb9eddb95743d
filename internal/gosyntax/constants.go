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

package gosyntax

import (
	"go/ast"
	"go/constant"
	"go/types"

	"fillmore-labs.com/reachguard/stmt"
)

// Constants folds boolean conditions the type checker found to be constant.
type Constants struct {
	info *types.Info
}

// NewConstants returns a constant evaluator for a package.
func NewConstants(info *types.Info) Constants {
	return Constants{info: info}
}

// BoolConstant implements [reachability.ConstantEvaluator].
func (c Constants) BoolConstant(expr stmt.Expr) (value, ok bool) {
	e, ok := expr.(ast.Expr)
	if !ok {
		return false, false
	}

	tv, ok := c.info.Types[e]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.Bool {
		return false, false
	}

	return constant.BoolVal(tv.Value), true
}
