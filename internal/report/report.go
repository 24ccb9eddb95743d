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

// Package report turns unreachable statements into diagnostics.
package report

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/reachguard/internal/astutil"
	"fillmore-labs.com/reachguard/reachability"
	"fillmore-labs.com/reachguard/stmt"
)

// Body holds the reported statements of one function body.
type Body struct {
	File        astutil.CurrentFile
	Block       *ast.BlockStmt // The analyzed body
	Unreachable []stmt.Stmt
}

// Unreachable emits a diagnostic for every reported statement of the body, unless the
// statement's line carries a //nolint:reachguard comment.
func Unreachable(p *analysis.Pass, b Body) {
	for _, s := range b.Unreachable {
		node, ok := s.Origin().(ast.Node)
		if !ok {
			astutil.InternalError(p, b.Block, "Statement %T without syntax", s)

			continue
		}

		if b.File.NoLintComment(node.Pos()) {
			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:     node.Pos(),
			End:     node.End(),
			Message: reachability.UnreachableStatement.String(),
		})
	}
}
