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

package astutil_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	. "fillmore-labs.com/reachguard/internal/astutil"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		text string
		want bool
	}{
		{"//nolint:reachguard", true},
		{"// nolint:reachguard", true},
		{"//nolint:all", true},
		{"//nolint:errcheck,ReachGuard", true},
		{"//nolint:errcheck", false},
		{"// reachguard", false},
		{"/* nolint:reachguard */", false},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()

			if got := CommentHasNoLint(&ast.Comment{Text: tc.text}); got != tc.want {
				t.Errorf("CommentHasNoLint(%q) = %t, want %t", tc.text, got, tc.want)
			}
		})
	}
}

const src = `//nolint:reachguard
package test

func f() {
	return
	println() //nolint:reachguard
	println() // other
}
`

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("Can't parse source: %v", err)
	}

	c := NewCurrentFile(fset, f)

	if !c.Valid() {
		t.Fatal("Invalid current file")
	}

	if c.Name() != "test.go" {
		t.Errorf("Got name %q, want %q", c.Name(), "test.go")
	}

	if c.Generated() {
		t.Error("File reported as generated")
	}

	if !c.NoLintFile() {
		t.Error("Expected file level nolint")
	}

	body := f.Decls[0].(*ast.FuncDecl).Body.List

	for i, want := range [...]bool{false, true, false} {
		if got := c.NoLintComment(body[i].Pos()); got != want {
			t.Errorf("NoLintComment(statement %d) = %t, want %t", i, got, want)
		}
	}
}

func TestInvalidCurrentFile(t *testing.T) {
	t.Parallel()

	c := NewCurrentFile(token.NewFileSet(), nil)

	if c.Valid() || c.Name() != "" || c.NoLintFile() || c.NoLintComment(token.NoPos) {
		t.Error("Expected empty current file")
	}
}
