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

// Package jump resolves break and continue statements to the construct they leave.
package jump

import (
	"slices"

	"fillmore-labs.com/reachguard/stmt"
)

// Frame represents an enclosing loop, switch or labeled statement.
type Frame struct {
	Target stmt.Stmt // The construct a jump resolving to this frame leaves or repeats
	Labels []string  // Labels naming this construct
	Loop   bool      // Target of unlabeled break and continue
	Switch bool      // Target of unlabeled break
}

func (f *Frame) labeled(label string) bool {
	return slices.Contains(f.Labels, label)
}

// Context is the stack of enclosing jump targets, innermost last.
type Context struct {
	frames []Frame
}

// Push enters a new construct. The returned mark restores the previous state with [Context.Pop].
func (c *Context) Push(f Frame) (mark int) {
	mark = len(c.frames)
	c.frames = append(c.frames, f)

	return mark
}

// Pop leaves all constructs entered since mark.
func (c *Context) Pop(mark int) {
	clear(c.frames[mark:])
	c.frames = c.frames[:mark]
}

// Depth returns the number of enclosing constructs.
func (c *Context) Depth() int {
	return len(c.frames)
}

// Break returns the target of a break statement, or nil when it does not resolve.
//
// An unlabeled break leaves the innermost loop or switch, a labeled break the
// innermost construct carrying the label.
func (c *Context) Break(label string) stmt.Stmt {
	return c.find(func(f *Frame) bool {
		if label == "" {
			return f.Loop || f.Switch
		}

		return f.labeled(label)
	})
}

// Continue returns the target of a continue statement, or nil when it does not resolve.
//
// Continue always targets a loop: the innermost one, or the innermost loop carrying the label.
func (c *Context) Continue(label string) stmt.Stmt {
	return c.find(func(f *Frame) bool {
		return f.Loop && (label == "" || f.labeled(label))
	})
}

func (c *Context) find(match func(f *Frame) bool) stmt.Stmt {
	for i := len(c.frames) - 1; i >= 0; i-- {
		if f := &c.frames[i]; match(f) {
			return f.Target
		}
	}

	return nil
}
