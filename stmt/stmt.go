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

package stmt

// Expr is an opaque expression. Only the collaborators interpreting conditions and
// exception types look inside.
type Expr = any

// Stmt is a statement of a method or lambda body.
type Stmt interface {
	// Origin returns the syntax node this statement was built from, or nil.
	Origin() any

	stmt()
}

// Node is embedded in every statement kind.
type Node struct {
	From any // The syntax node this statement was built from.
}

// Origin implements [Stmt].
func (n *Node) Origin() any {
	if n == nil {
		return nil
	}

	return n.From
}

func (*Node) stmt() {}

// Block is a braced statement list.
type Block struct {
	Node
	List []Stmt
}

// If is an if statement. Else is nil when there is no else branch.
type If struct {
	Node
	Cond Expr
	Then Stmt
	Else Stmt
}

// LoopKind distinguishes the loop statements.
type LoopKind uint8

//go:generate go tool stringer -type LoopKind -linecomment
const (
	For     LoopKind = iota // for
	While                   // while
	DoWhile                 // do
	ForEach                 // foreach
)

// Loop is a for, while, do-while or for-each statement.
//
// A nil Cond on a [For] loop is an omitted condition and means "always true".
// [ForEach] loops have no condition.
type Loop struct {
	Node
	Kind        LoopKind
	Cond        Expr
	Body        Stmt
	UpdateEmpty bool // The for update part is empty.
}

// Catch is a catch clause of a [Try] statement.
type Catch struct {
	From       any  // The syntax node this clause was built from.
	Type       Expr // The caught exception type.
	Body       *Block
	Exhaustive bool // The clause catches everything the try body can throw.
}

// Try is a try statement. Finally is nil when there is no finally block.
type Try struct {
	Node
	Body    *Block
	Catches []*Catch
	Finally *Block
}

// Case is a case group of a [Switch].
//
// Rule cases ("case X -> ...") never fall through into the next case,
// colon cases do when their statements complete normally.
type Case struct {
	From    any // The syntax node this case was built from.
	Default bool
	Rule    bool
	Body    []Stmt
}

// Switch is a switch statement.
//
// Exhaustive marks switches whose cases cover every possible selector value,
// which then behave as if they had a default case.
type Switch struct {
	Node
	Selector   Expr
	Cases      []*Case
	Exhaustive bool
}

// Return is a return statement.
type Return struct{ Node }

// Throw is a throw statement.
type Throw struct{ Node }

// Break is a break statement. Label is empty for an unlabeled break.
type Break struct {
	Node
	Label string
}

// Continue is a continue statement. Label is empty for an unlabeled continue.
type Continue struct {
	Node
	Label string
}

// Labeled is a labeled statement.
type Labeled struct {
	Node
	Label string
	Body  Stmt
}

// Expression is an expression or declaration statement.
type Expression struct {
	Node
	Assert     bool // The statement is an assertion; its condition is never treated as a constant.
	Terminates bool // The statement calls a function that never returns.
}

// Empty is the empty statement.
type Empty struct{ Node }

// Synchronized is a synchronized statement.
type Synchronized struct {
	Node
	Lock Expr
	Body *Block
}
