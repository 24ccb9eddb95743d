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
	"errors"
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/reachguard/internal/tracker"
	"fillmore-labs.com/reachguard/stmt"
)

// ErrGoto is returned for bodies that use goto.
var ErrGoto = errors.New("goto statement")

// Converter builds statement trees for the function bodies of a single package.
type Converter struct {
	tracker.Tracker
}

// New returns a [Converter] using the type information of a package.
func New(info *types.Info) Converter {
	return Converter{Tracker: tracker.New(info)}
}

// Body converts a function body. Nested function literals are not part of the result.
func (c Converter) Body(body *ast.BlockStmt) (*stmt.Block, error) {
	if body == nil {
		return nil, nil
	}

	if hasGoto(body) {
		return nil, ErrGoto
	}

	return c.block(body), nil
}

// hasGoto reports whether body, excluding function literals, contains a goto statement.
func hasGoto(body *ast.BlockStmt) bool {
	found := false

	ast.Inspect(body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FuncLit:
			return false

		case *ast.BranchStmt:
			if n.Tok == token.GOTO {
				found = true
			}
		}

		return !found
	})

	return found
}

func (c Converter) block(b *ast.BlockStmt) *stmt.Block {
	return &stmt.Block{Node: stmt.Node{From: b}, List: c.list(b.List)}
}

func (c Converter) list(list []ast.Stmt) []stmt.Stmt {
	result := make([]stmt.Stmt, 0, len(list))
	for _, s := range list {
		result = append(result, c.stmt(s))
	}

	return result
}

// stmt converts a single statement.
func (c Converter) stmt(s ast.Stmt) stmt.Stmt {
	switch s := s.(type) {
	// keep-sorted start newline_separated=yes
	case *ast.BlockStmt:
		return c.block(s)

	case *ast.BranchStmt:
		return branch(s)

	case *ast.EmptyStmt:
		return &stmt.Empty{Node: stmt.Node{From: s}}

	case *ast.ExprStmt:
		return c.exprStmt(s)

	case *ast.ForStmt, *ast.IfStmt, *ast.LabeledStmt, *ast.SwitchStmt, *ast.TypeSwitchStmt:
		init, main := c.split(s)

		return withInit(s, init, main)

	case *ast.RangeStmt:
		return &stmt.Loop{Node: stmt.Node{From: s}, Kind: stmt.ForEach, Body: c.block(s.Body), UpdateEmpty: true}

	case *ast.ReturnStmt:
		return &stmt.Return{Node: stmt.Node{From: s}}

	case *ast.SelectStmt:
		return c.selectStmt(s)

	default: // *ast.AssignStmt, *ast.DeclStmt, *ast.DeferStmt, *ast.GoStmt, *ast.IncDecStmt, *ast.SendStmt, ...
		return &stmt.Expression{Node: stmt.Node{From: s}}
		// keep-sorted end
	}
}

func branch(s *ast.BranchStmt) stmt.Stmt {
	var label string
	if s.Label != nil {
		label = s.Label.Name
	}

	switch s.Tok {
	case token.BREAK:
		return &stmt.Break{Node: stmt.Node{From: s}, Label: label}

	case token.CONTINUE:
		return &stmt.Continue{Node: stmt.Node{From: s}, Label: label}

	default: // fallthrough is handled by the enclosing switch
		return &stmt.Empty{Node: stmt.Node{From: s}}
	}
}

func (c Converter) exprStmt(s *ast.ExprStmt) stmt.Stmt {
	call, ok := ast.Unparen(s.X).(*ast.CallExpr)

	switch {
	case !ok:
		return &stmt.Expression{Node: stmt.Node{From: s}}

	case c.IsPanic(call):
		return &stmt.Throw{Node: stmt.Node{From: s}}

	default:
		return &stmt.Expression{Node: stmt.Node{From: s}, Terminates: c.CantReturn(call)}
	}
}

// withInit places init before main, when present.
func withInit(from ast.Stmt, init ast.Stmt, main stmt.Stmt) stmt.Stmt {
	if init == nil {
		return main
	}

	return &stmt.Block{
		Node: stmt.Node{From: from},
		List: []stmt.Stmt{&stmt.Expression{Node: stmt.Node{From: init}}, main},
	}
}

// split separates the init statement of if, for and switch statements from the statement itself.
// Labels stay attached to their statement.
func (c Converter) split(s ast.Stmt) (init ast.Stmt, main stmt.Stmt) {
	switch s := s.(type) {
	case *ast.LabeledStmt:
		init, main = c.split(s.Stmt)

		return init, &stmt.Labeled{Node: stmt.Node{From: s}, Label: s.Label.Name, Body: main}

	case *ast.ForStmt:
		loop := &stmt.Loop{Node: stmt.Node{From: s}, Kind: stmt.For, Body: c.block(s.Body), UpdateEmpty: s.Post == nil}
		if s.Cond != nil {
			loop.Cond = s.Cond
		}

		return s.Init, loop

	case *ast.IfStmt:
		return s.Init, c.ifStmt(s)

	case *ast.SwitchStmt:
		return s.Init, c.switchStmt(s, s.Body)

	case *ast.TypeSwitchStmt:
		return s.Init, c.switchStmt(s, s.Body)

	default:
		return nil, c.stmt(s)
	}
}

func (c Converter) ifStmt(s *ast.IfStmt) stmt.Stmt {
	i := &stmt.If{Node: stmt.Node{From: s}, Cond: s.Cond, Then: c.block(s.Body)}
	if s.Else != nil {
		i.Else = c.stmt(s.Else)
	}

	return i
}

// switchStmt converts expression and type switches. A case ending in fallthrough continues
// into the next case, all others leave the switch.
func (c Converter) switchStmt(s ast.Stmt, body *ast.BlockStmt) stmt.Stmt {
	sw := &stmt.Switch{Node: stmt.Node{From: s}}
	if tag, ok := s.(*ast.SwitchStmt); ok && tag.Tag != nil {
		sw.Selector = tag.Tag
	}

	for _, cs := range body.List {
		cc, ok := cs.(*ast.CaseClause)
		if !ok {
			continue
		}

		list, fallsThrough := trimFallthrough(cc.Body)

		sw.Cases = append(sw.Cases, &stmt.Case{
			From:    cc,
			Default: cc.List == nil,
			Rule:    !fallsThrough,
			Body:    c.list(list),
		})
	}

	return sw
}

func trimFallthrough(list []ast.Stmt) ([]ast.Stmt, bool) {
	if n := len(list); n > 0 {
		if b, ok := list[n-1].(*ast.BranchStmt); ok && b.Tok == token.FALLTHROUGH {
			return list[:n-1], true
		}
	}

	return list, false
}

// selectStmt converts a select statement into a switch that always takes one of its cases.
// The communication is the first statement of its case.
func (c Converter) selectStmt(s *ast.SelectStmt) stmt.Stmt {
	sw := &stmt.Switch{Node: stmt.Node{From: s}, Exhaustive: true}

	for _, cs := range s.Body.List {
		cc, ok := cs.(*ast.CommClause)
		if !ok {
			continue
		}

		list := make([]stmt.Stmt, 0, len(cc.Body)+1)
		if cc.Comm != nil {
			list = append(list, c.stmt(cc.Comm))
		}

		list = append(list, c.list(cc.Body)...)

		sw.Cases = append(sw.Cases, &stmt.Case{
			From:    cc,
			Default: cc.Comm == nil,
			Rule:    true,
			Body:    list,
		})
	}

	return sw
}
