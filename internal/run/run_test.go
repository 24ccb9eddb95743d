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

package run_test

import (
	"errors"
	"runtime"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/reachguard/internal/run"
)

func TestExcluded(t *testing.T) {
	t.Parallel()

	patterns := []string{"Test*", "T.Method", "*.String"}

	testCases := [...]struct {
		name string
		want bool
	}{
		{"TestFoo", true},
		{"T.Method", true},
		{"T.Other", false},
		{"Stringer.String", true},
		{"main", false},
		{"main.func", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Excluded(patterns, tc.name); got != tc.want {
				t.Errorf("Excluded(%q) = %t, want %t", tc.name, got, tc.want)
			}
		})
	}
}

func TestExcludedMalformed(t *testing.T) {
	t.Parallel()

	if Excluded([]string{"["}, "[") {
		t.Error("Malformed pattern matched")
	}
}

func TestConcurrency(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	if got, want := o.EffectiveConcurrency(), runtime.GOMAXPROCS(0); got != want {
		t.Errorf("Got default concurrency %d, want %d", got, want)
	}

	o.Concurrency = 3
	if got := o.EffectiveConcurrency(); got != 3 {
		t.Errorf("Got concurrency %d, want 3", got)
	}
}

func TestRunWithoutInspector(t *testing.T) {
	t.Parallel()

	p := &analysis.Pass{ResultOf: map[*analysis.Analyzer]any{}}

	_, err := DefaultOptions().Run(p)
	if !errors.Is(err, ErrResultMissing) {
		t.Errorf("Got error %v, want %v", err, ErrResultMissing)
	}
}
