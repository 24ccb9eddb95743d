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
	"iter"

	"fillmore-labs.com/reachguard/stmt"
)

// ReasonKind is the way a statement completes abruptly.
type ReasonKind uint8

//go:generate go tool stringer -type ReasonKind,Diagnostic -linecomment
const (
	Return   ReasonKind = iota // return
	Throw                      // throw
	Break                      // break
	Continue                   // continue
)

// Reason is an abrupt completion reason. Target is the loop, switch or labeled statement
// a break or continue resolves to; it is nil for return and throw, and for jumps
// that do not resolve.
type Reason struct {
	Kind   ReasonKind
	Target stmt.Stmt
}

func (r Reason) String() string {
	if r.Target == nil {
		return r.Kind.String()
	}

	return fmt.Sprintf("%s(%T)", r.Kind, r.Target)
}

// Reasons is an immutable set of abrupt completion reasons. The zero value is the empty set.
type Reasons struct {
	set map[Reason]struct{}
}

// NewReasons returns a set containing the given reasons.
func NewReasons(reasons ...Reason) Reasons {
	if len(reasons) == 0 {
		return Reasons{}
	}

	set := make(map[Reason]struct{}, len(reasons))
	for _, r := range reasons {
		set[r] = struct{}{}
	}

	return Reasons{set}
}

// Len returns the number of reasons in the set.
func (r Reasons) Len() int {
	return len(r.set)
}

// Has reports whether reason is part of the set.
func (r Reasons) Has(reason Reason) bool {
	_, ok := r.set[reason]

	return ok
}

// HasKind reports whether the set contains a reason of the given kind.
func (r Reasons) HasKind(kind ReasonKind) bool {
	for reason := range r.set {
		if reason.Kind == kind {
			return true
		}
	}

	return false
}

// All yields the reasons in unspecified order.
func (r Reasons) All() iter.Seq[Reason] {
	return func(yield func(Reason) bool) {
		for reason := range r.set {
			if !yield(reason) {
				return
			}
		}
	}
}

// Union returns the set of reasons in r or o.
func (r Reasons) Union(o Reasons) Reasons {
	switch {
	case len(o.set) == 0:
		return r

	case len(r.set) == 0:
		return o
	}

	set := make(map[Reason]struct{}, len(r.set)+len(o.set))
	for reason := range r.set {
		set[reason] = struct{}{}
	}

	for reason := range o.set {
		set[reason] = struct{}{}
	}

	return Reasons{set}
}

// Without returns the set of reasons in r not matching drop.
func (r Reasons) Without(drop func(Reason) bool) Reasons {
	var set map[Reason]struct{}

	for reason := range r.set {
		if drop(reason) {
			if set == nil {
				set = make(map[Reason]struct{}, len(r.set))
				for reason := range r.set {
					set[reason] = struct{}{}
				}
			}

			delete(set, reason)
		}
	}

	if set == nil {
		return r
	}

	if len(set) == 0 {
		return Reasons{}
	}

	return Reasons{set}
}

// Completion describes how a statement can complete.
type Completion struct {
	Normal bool    // The statement can complete normally.
	Abrupt Reasons // The statement can complete abruptly for these reasons.
}

// join combines the completions of alternative paths.
func join(a, b Completion) Completion {
	return Completion{
		Normal: a.Normal || b.Normal,
		Abrupt: a.Abrupt.Union(b.Abrupt),
	}
}

// jumpsTo matches break and continue reasons resolving to target.
func jumpsTo(target stmt.Stmt) func(Reason) bool {
	return func(r Reason) bool {
		return (r.Kind == Break || r.Kind == Continue) && r.Target == target
	}
}

// isThrow matches throw reasons.
func isThrow(r Reason) bool {
	return r.Kind == Throw
}
