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

package reachability_test

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/reachguard/internal/fixture"
	. "fillmore-labs.com/reachguard/reachability"
	"fillmore-labs.com/reachguard/stmt"
)

func TestFixtures(t *testing.T) {
	t.Parallel()

	files, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		cases, err := fixture.Load(file)
		require.NoError(t, err)

		name := strings.TrimSuffix(filepath.Base(file), ".yaml")
		for _, c := range cases {
			t.Run(name+"/"+c.Name, func(t *testing.T) {
				t.Parallel()

				check(t, c)
			})
		}
	}
}

func check(t *testing.T, c *fixture.Case) {
	t.Helper()

	a := New(WithConstants(fixture.Constants{}), WithExceptions(c.Exceptions()))

	var reported []stmt.Stmt

	r := a.Analyze(t.Context(), c.Body, ReporterFunc(func(s stmt.Stmt, d Diagnostic) {
		assert.Equal(t, UnreachableStatement, d)

		reported = append(reported, s)
	}))

	if len(c.Unreachable) == 0 {
		assert.Empty(t, fixture.IDs(reported), "reported")
	} else {
		assert.Equal(t, c.Unreachable, fixture.IDs(reported), "reported")
	}

	assert.Equal(t, reported, r.Unreachable())

	for _, id := range c.Dead {
		s, ok := c.Stmt(id)
		require.True(t, ok, "unknown id %q", id)

		reachable, ok := r.Reachable(s)
		require.True(t, ok, "%s not visited", id)
		assert.False(t, reachable, "%s is reachable", id)
	}

	for _, id := range c.Live {
		s, ok := c.Stmt(id)
		require.True(t, ok, "unknown id %q", id)

		reachable, ok := r.Reachable(s)
		require.True(t, ok, "%s not visited", id)
		assert.True(t, reachable, "%s is unreachable", id)
	}

	if c.Completes != nil {
		assert.Equal(t, *c.Completes, r.Body().Normal, "body completion")
	}
}

func TestExemptConstantFor(t *testing.T) {
	t.Parallel()

	body := &stmt.Expression{}
	loop := &stmt.Loop{Kind: stmt.For, Cond: "false", Body: body}
	block := &stmt.Block{List: []stmt.Stmt{loop}}

	tests := []struct {
		name     string
		exempt   bool
		reported []stmt.Stmt
	}{
		{"exempt", true, nil},
		{"reported", false, []stmt.Stmt{body}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New(WithConstants(fixture.Constants{}), WithExemptConstantFor(tt.exempt))
			r := a.Analyze(t.Context(), block, nil)

			assert.Equal(t, tt.reported, r.Unreachable())

			c, ok := r.Completion(loop)
			require.True(t, ok)
			assert.True(t, c.Normal)
		})
	}
}

func TestAssertNotEvaluated(t *testing.T) {
	t.Parallel()

	block := &stmt.Block{List: []stmt.Stmt{
		&stmt.Expression{Assert: true},
		&stmt.Expression{},
	}}

	a := New(WithConstants(panicConstants{}))
	r := a.Analyze(t.Context(), block, nil)

	assert.Empty(t, r.Unreachable())
	assert.True(t, r.Body().Normal)
}

type panicConstants struct{}

func (panicConstants) BoolConstant(stmt.Expr) (value, ok bool) {
	panic("constant folding must not be reached")
}

func TestCompletion(t *testing.T) {
	t.Parallel()

	brk := &stmt.Break{}
	loop := &stmt.Loop{Kind: stmt.While, Body: &stmt.Block{List: []stmt.Stmt{brk}}}
	ret := &stmt.Return{}
	try := &stmt.Try{
		Body:    &stmt.Block{List: []stmt.Stmt{&stmt.Throw{}}},
		Catches: []*stmt.Catch{{Exhaustive: true, Body: &stmt.Block{List: []stmt.Stmt{ret}}}},
	}
	block := &stmt.Block{List: []stmt.Stmt{loop, try}}

	r := New().Analyze(t.Context(), block, nil)

	c, ok := r.Completion(brk)
	require.True(t, ok)
	assert.False(t, c.Normal)
	assert.True(t, c.Abrupt.Has(Reason{Kind: Break, Target: loop}))

	c, ok = r.Completion(loop)
	require.True(t, ok)
	assert.True(t, c.Normal)
	assert.Zero(t, c.Abrupt.Len(), "break is consumed by the loop")

	c, ok = r.Completion(try)
	require.True(t, ok)
	assert.False(t, c.Normal)
	assert.True(t, c.Abrupt.Has(Reason{Kind: Return}))
	assert.False(t, c.Abrupt.HasKind(Throw), "throw is caught")

	_, ok = r.Completion(&stmt.Empty{})
	assert.False(t, ok)
}

func TestUnreachableCompletion(t *testing.T) {
	t.Parallel()

	after := &stmt.Throw{}
	block := &stmt.Block{List: []stmt.Stmt{&stmt.Return{}, after}}

	r := New().Analyze(t.Context(), block, nil)

	reachable, ok := r.Reachable(after)
	require.True(t, ok)
	assert.False(t, reachable)

	c, ok := r.Completion(after)
	require.True(t, ok)
	assert.Equal(t, Completion{}, c)

	assert.Equal(t, NewReasons(Reason{Kind: Return}), r.Body().Abrupt)
}

func TestNilBody(t *testing.T) {
	t.Parallel()

	r := New().Analyze(t.Context(), nil, nil)

	assert.Empty(t, r.Unreachable())
	assert.False(t, r.Body().Normal)
}

func TestReasons(t *testing.T) {
	t.Parallel()

	target := &stmt.Loop{}
	brk := Reason{Kind: Break, Target: target}
	ret := Reason{Kind: Return}

	var empty Reasons
	assert.Zero(t, empty.Len())
	assert.False(t, empty.Has(ret))

	a := NewReasons(ret)
	b := NewReasons(brk, ret)

	u := a.Union(b)
	assert.Equal(t, 2, u.Len())
	assert.True(t, u.Has(brk))
	assert.Equal(t, 1, a.Len(), "union does not modify its operands")

	w := u.Without(func(r Reason) bool { return r.Kind == Break })
	assert.Equal(t, a, w)
	assert.Equal(t, 2, u.Len(), "without does not modify its receiver")

	assert.Zero(t, a.Without(func(Reason) bool { return true }).Len())

	var kinds []ReasonKind
	for r := range b.All() {
		kinds = append(kinds, r.Kind)
	}

	assert.ElementsMatch(t, []ReasonKind{Break, Return}, kinds)
}

func TestStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unreachable statement", UnreachableStatement.String())
	assert.Equal(t, "continue", Continue.String())
	assert.Equal(t, "ReasonKind(9)", ReasonKind(9).String())
	assert.Equal(t, "return", Reason{Kind: Return}.String())
	assert.Equal(t, "break(*stmt.Loop)", Reason{Kind: Break, Target: &stmt.Loop{}}.String())
}

func TestOptions(t *testing.T) {
	t.Parallel()

	opts := Options{
		WithExemptConstantFor(false),
		nil,
		WithConstants(fixture.Constants{}),
	}

	v := opts.LogValue()
	require.Equal(t, slog.KindGroup, v.Kind())

	attrs := v.Group()
	require.Len(t, attrs, 2)
	assert.Equal(t, "exempt-constant-for", attrs[0].Key)
	assert.Equal(t, "fixture.Constants", attrs[1].Value.String())

	assert.Equal(t, "options", opts.LogAttr().Key)

	a := New(opts, WithConstants(nil), WithExceptions(nil))
	r := a.Analyze(t.Context(), &stmt.Block{List: []stmt.Stmt{
		&stmt.Loop{Kind: stmt.While, Cond: "true"},
	}}, nil)
	assert.True(t, r.Body().Normal, "condition is not folded")
}
