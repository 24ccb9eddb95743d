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
	"slices"

	"fillmore-labs.com/reachguard/internal/jump"
	"fillmore-labs.com/reachguard/stmt"
)

// walker holds the state of a single traversal.
type walker struct {
	*Analyzer
	reporter Reporter
	jumps    jump.Context
	result   *Result
}

func (w *walker) report(s stmt.Stmt) {
	w.result.unreachable = append(w.result.unreachable, s)
	w.reporter.Report(s, UnreachableStatement)
}

// sequence walks a statement list. Only the first statement of an unreachable run is reported.
func (w *walker) sequence(list []stmt.Stmt, reachable bool) Completion {
	c := Completion{Normal: reachable}
	previous := reachable

	for _, s := range list {
		if s == nil {
			continue
		}

		if !reachable && previous {
			w.report(s)
		}

		sc := w.statement(s, reachable, nil)
		c = Completion{Normal: sc.Normal, Abrupt: c.Abrupt.Union(sc.Abrupt)}
		previous, reachable = reachable, sc.Normal
	}

	return c
}

// nested walks the single statement governed by an if or a loop.
// It is reported when the governing statement is reachable and s is neither reachable nor exempt.
func (w *walker) nested(s stmt.Stmt, reachable, parent, exempt bool) Completion {
	if s == nil {
		return Completion{Normal: reachable}
	}

	if !reachable && parent && !exempt {
		w.report(s)
	}

	return w.statement(s, reachable, nil)
}

// block walks an optional block.
func (w *walker) block(b *stmt.Block, reachable bool) Completion {
	if b == nil {
		return Completion{Normal: reachable}
	}

	return w.statement(b, reachable, nil)
}

// statement records the verdict for s and computes its completion.
// labels are the labels directly attached to s.
func (w *walker) statement(s stmt.Stmt, reachable bool, labels []string) Completion {
	if s == nil {
		return Completion{Normal: reachable}
	}

	w.result.reachable[s] = reachable

	c := w.dispatch(s, reachable, labels)
	if !reachable {
		c = Completion{}
	}

	w.result.completions[s] = c

	return c
}

func (w *walker) dispatch(s stmt.Stmt, reachable bool, labels []string) Completion {
	switch s := s.(type) {
	// keep-sorted start newline_separated=yes
	case *stmt.Block:
		return w.sequence(s.List, reachable)

	case *stmt.Break:
		return Completion{Abrupt: NewReasons(Reason{Kind: Break, Target: w.jumps.Break(s.Label)})}

	case *stmt.Continue:
		return Completion{Abrupt: NewReasons(Reason{Kind: Continue, Target: w.jumps.Continue(s.Label)})}

	case *stmt.Empty:
		return Completion{Normal: reachable}

	case *stmt.Expression:
		if s.Terminates {
			return Completion{Abrupt: NewReasons(Reason{Kind: Throw})}
		}

		return Completion{Normal: reachable}

	case *stmt.If:
		return w.ifStmt(s, reachable)

	case *stmt.Labeled:
		return w.labeled(s, reachable, labels)

	case *stmt.Loop:
		return w.loop(s, reachable, labels)

	case *stmt.Return:
		return Completion{Abrupt: NewReasons(Reason{Kind: Return})}

	case *stmt.Switch:
		return w.switchStmt(s, reachable, labels)

	case *stmt.Synchronized:
		return w.block(s.Body, reachable)

	case *stmt.Throw:
		return Completion{Abrupt: NewReasons(Reason{Kind: Throw})}

	case *stmt.Try:
		return w.try(s, reachable)

	default:
		return Completion{Normal: reachable}
		// keep-sorted end
	}
}

// constant folds a condition. Missing conditions are never constant.
func (w *walker) constant(cond stmt.Expr) (value, ok bool) {
	if cond == nil {
		return false, false
	}

	return w.constants.BoolConstant(cond)
}

// ifStmt handles if statements. An arm made dead by a constant condition is exempt from reporting
// and excluded from the completion.
func (w *walker) ifStmt(s *stmt.If, reachable bool) Completion {
	value, constant := w.constant(s.Cond)

	then := w.nested(s.Then, reachable && (!constant || value), reachable, constant)
	if s.Else == nil {
		return join(then, Completion{Normal: reachable})
	}

	els := w.nested(s.Else, reachable && (!constant || !value), reachable, constant)

	return join(then, els)
}

// loop handles all loop kinds. Breaks and continues targeting the loop are consumed.
func (w *walker) loop(s *stmt.Loop, reachable bool, labels []string) Completion {
	var value, constant bool
	if s.Kind != stmt.ForEach {
		value, constant = w.constant(s.Cond)
	}

	infinite := constant && value || s.Kind == stmt.For && s.Cond == nil

	bodyReachable, exempt := reachable, false
	if constant && !value {
		switch s.Kind {
		case stmt.While:
			bodyReachable, exempt = false, true

		case stmt.For:
			bodyReachable, exempt = false, w.exemptFor

		default: // a do-while body runs once
		}
	}

	mark := w.jumps.Push(jump.Frame{Target: s, Labels: labels, Loop: true})
	body := w.nested(s.Body, bodyReachable, reachable, exempt)
	w.jumps.Pop(mark)

	exits := body.Abrupt.Has(Reason{Kind: Break, Target: s})

	var normal bool
	switch {
	case infinite:
		normal = exits

	case s.Kind == stmt.DoWhile:
		normal = body.Normal || body.Abrupt.Has(Reason{Kind: Continue, Target: s}) || exits

	default:
		normal = reachable || exits
	}

	return Completion{Normal: normal, Abrupt: body.Abrupt.Without(jumpsTo(s))}
}

// labeled handles labeled statements. A break naming the label completes the statement normally.
func (w *walker) labeled(s *stmt.Labeled, reachable bool, labels []string) Completion {
	labels = append(slices.Clip(labels), s.Label)

	mark := w.jumps.Push(jump.Frame{Target: s, Labels: labels})
	body := w.statement(s.Body, reachable, labels)
	w.jumps.Pop(mark)

	return Completion{
		Normal: body.Normal || body.Abrupt.Has(Reason{Kind: Break, Target: s}),
		Abrupt: body.Abrupt.Without(jumpsTo(s)),
	}
}

// switchStmt handles switch statements. Every case is entered with the reachability of the switch;
// colon cases fall through into the next one, rule cases leave the switch.
func (w *walker) switchStmt(s *stmt.Switch, reachable bool, labels []string) Completion {
	mark := w.jumps.Push(jump.Frame{Target: s, Labels: labels, Switch: true})

	var (
		abrupt     Reasons
		hasDefault = s.Exhaustive
		fallsOut   bool
		exits      bool
	)

	for _, c := range s.Cases {
		if c == nil {
			continue
		}

		hasDefault = hasDefault || c.Default

		body := w.sequence(c.Body, reachable)
		abrupt = abrupt.Union(body.Abrupt)

		fallsOut = !c.Rule && body.Normal
		exits = exits || c.Rule && body.Normal
	}

	w.jumps.Pop(mark)

	exits = exits || abrupt.Has(Reason{Kind: Break, Target: s})

	return Completion{
		Normal: reachable && !hasDefault || fallsOut || exits,
		Abrupt: abrupt.Without(jumpsTo(s)),
	}
}

// try handles try statements. A finally block that cannot complete normally overrides
// the completion of the body and the catch clauses.
func (w *walker) try(s *stmt.Try, reachable bool) Completion {
	body := w.block(s.Body, reachable)

	mayThrow := reachable && s.Body != nil && w.exceptions.MayThrow(s.Body)

	c := body
	for _, cc := range s.Catches {
		if cc == nil {
			continue
		}

		if cc.Exhaustive {
			c.Abrupt = c.Abrupt.Without(isThrow)
		}
	}

	for _, cc := range s.Catches {
		if cc == nil {
			continue
		}

		catchReachable := mayThrow && w.exceptions.IsReachableCatch(s.Body, cc.Type)
		c = join(c, w.block(cc.Body, catchReachable))
	}

	if s.Finally == nil {
		return c
	}

	fin := w.block(s.Finally, reachable)
	if !fin.Normal {
		return fin
	}

	c.Abrupt = c.Abrupt.Union(fin.Abrupt)

	return c
}
