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

// Package testsource parses and type-checks Go statement lists for tests.
package testsource

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// Header precedes every source fragment. The fragment can use the parameters
// c (bool), i (int), ch (chan int) and f (func()).
const Header = "package " + testpkg + "\n\nfunc _(c bool, i int, ch chan int, f func()) {\n"

// Parse parses a Go statement list wrapped into the body of a function declared by [Header].
//
// Call [Check] on the result when type information is needed.
func Parse(tb testing.TB, src string) (fset *token.FileSet, f *ast.File, body inspector.Cursor) {
	tb.Helper()

	const filename = "test.go"

	fset = token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, wrapSource(src), parser.SkipObjectResolution|parser.ParseComments)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	body, ok := funcBody(f)
	if !ok {
		tb.Fatal("Can't find function")
	}

	return fset, f, body
}

// Check type-checks the file. Fragments can not import packages.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) *types.Info {
	tb.Helper()

	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}

	var conf types.Config
	if _, err := conf.Check(testpkg, fset, []*ast.File{f}, info); err != nil {
		tb.Fatalf("Failed to type check source: %v", err)
	}

	return info
}

// Body parses and type-checks src and returns the wrapping function body.
func Body(tb testing.TB, src string) (*types.Info, *ast.BlockStmt) {
	tb.Helper()

	fset, f, body := Parse(tb, src)
	info := Check(tb, fset, f)

	return info, body.Node().(*ast.BlockStmt)
}

func wrapSource(src string) string {
	const suffix = "\n}\n"

	var b strings.Builder
	b.Grow(len(Header) + len(src) + len(suffix))

	b.WriteString(Header)
	b.WriteString(src)
	b.WriteString(suffix)

	return b.String()
}

func funcBody(f *ast.File) (inspector.Cursor, bool) {
	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		return c.ChildAt(edge.FuncDecl_Body, -1), true
	}

	return root, false
}
