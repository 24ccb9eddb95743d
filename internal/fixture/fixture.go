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

// Package fixture reads statement trees from YAML.
//
// A fixture file is a list of cases:
//
//	- name: statements after return
//	  body:
//	    - return:
//	    - expr: a
//	    - expr: b
//	  unreachable: [a]
//
// Every statement is a mapping with a single key naming its kind, or just the kind. The value is empty,
// a scalar id, a list (the body of block-like statements), or a mapping of fields.
// Scalars of break and continue are labels.
package fixture

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/reachguard/stmt"
)

var (
	// ErrKind is returned for unknown statement kinds.
	ErrKind = errors.New("unknown statement kind")

	// ErrShape is returned for YAML nodes that do not describe a statement.
	ErrShape = errors.New("malformed statement")

	// ErrDuplicateID is returned when an id is used twice in one case.
	ErrDuplicateID = errors.New("duplicate id")
)

// Origin identifies the YAML node a statement was read from.
type Origin struct {
	ID           string
	Line, Column int
}

func (o Origin) String() string {
	if o.ID != "" {
		return o.ID
	}

	return fmt.Sprintf("%d:%d", o.Line, o.Column)
}

// Case is a single named statement tree with its expected verdicts.
type Case struct {
	Name        string
	Body        *stmt.Block
	Unreachable []string // ids of the reported statements, in order
	Dead        []string // ids of statements that must not be reachable
	Live        []string // ids of statements that must be reachable
	Completes   *bool    // whether the body can complete normally
	Unthrown    []string // catch types the try bodies of this case cannot throw

	ids map[string]stmt.Stmt
}

// Stmt returns the statement with the given id.
func (c *Case) Stmt(id string) (stmt.Stmt, bool) {
	s, ok := c.ids[id]

	return s, ok
}

// Exceptions returns the exception model for this case.
func (c *Case) Exceptions() Exceptions {
	return Exceptions{Unthrown: c.Unthrown}
}

type caseNode struct {
	Name        string    `yaml:"name"`
	Body        yaml.Node `yaml:"body"`
	Unreachable []string  `yaml:"unreachable"`
	Dead        []string  `yaml:"dead"`
	Live        []string  `yaml:"live"`
	Completes   *bool     `yaml:"completes"`
	Unthrown    []string  `yaml:"unthrown"`
}

// Load reads the cases of a fixture file.
func Load(path string) ([]*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}

	cases, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fixture: %s: %w", path, err)
	}

	return cases, nil
}

// Parse decodes the cases of a fixture.
func Parse(data []byte) ([]*Case, error) {
	var nodes []caseNode
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, err
	}

	cases := make([]*Case, 0, len(nodes))
	for _, n := range nodes {
		b := builder{ids: make(map[string]stmt.Stmt)}

		body, err := b.list(&n.Body)
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", n.Name, err)
		}

		cases = append(cases, &Case{
			Name:        n.Name,
			Body:        body,
			Unreachable: n.Unreachable,
			Dead:        n.Dead,
			Live:        n.Live,
			Completes:   n.Completes,
			Unthrown:    n.Unthrown,
			ids:         b.ids,
		})
	}

	return cases, nil
}

// IDs returns the ids of the given statements. Statements without id are named by position.
func IDs(list []stmt.Stmt) []string {
	ids := make([]string, 0, len(list))
	for _, s := range list {
		ids = append(ids, fmt.Sprint(s.Origin()))
	}

	return ids
}

// fields are the possible keys of a statement mapping.
type fields struct {
	ID         string     `yaml:"id"`
	Label      string     `yaml:"label"`
	Cond       *string    `yaml:"cond"`
	Then       yaml.Node  `yaml:"then"`
	Else       yaml.Node  `yaml:"else"`
	Body       yaml.Node  `yaml:"body"`
	Finally    yaml.Node  `yaml:"finally"`
	Catch      []catch    `yaml:"catch"`
	Cases      []caseItem `yaml:"cases"`
	Exhaustive bool       `yaml:"exhaustive"`
	Update     *bool      `yaml:"update"`
}

type catch struct {
	Type       string    `yaml:"type"`
	Exhaustive bool      `yaml:"exhaustive"`
	Body       yaml.Node `yaml:"body"`
}

type caseItem struct {
	Default bool      `yaml:"default"`
	Rule    bool      `yaml:"rule"`
	Body    yaml.Node `yaml:"body"`
}

type builder struct {
	ids map[string]stmt.Stmt
}

// list builds a block from a sequence node. An empty node is an empty block.
func (b *builder) list(n *yaml.Node) (*stmt.Block, error) {
	blk := &stmt.Block{Node: stmt.Node{From: origin(n, "")}}

	switch n.Kind {
	case 0:
		return blk, nil

	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return blk, nil
		}

	case yaml.SequenceNode:
		list, err := b.statements(n.Content)
		if err != nil {
			return nil, err
		}

		blk.List = list

		return blk, nil

	default:
	}

	return nil, fmt.Errorf("line %d: expected a statement list: %w", n.Line, ErrShape)
}

func (b *builder) statements(content []*yaml.Node) ([]stmt.Stmt, error) {
	list := make([]stmt.Stmt, 0, len(content))
	for _, c := range content {
		s, err := b.statement(c)
		if err != nil {
			return nil, err
		}

		list = append(list, s)
	}

	return list, nil
}

// body builds a nested statement: a list is a block, a mapping a single statement.
func (b *builder) body(n *yaml.Node) (stmt.Stmt, error) {
	if n.Kind == yaml.MappingNode {
		return b.statement(n)
	}

	return b.list(n)
}

// optional builds a nested statement, returning nil when the node is absent.
func (b *builder) optional(n *yaml.Node) (stmt.Stmt, error) {
	if n.Kind == 0 {
		return nil, nil
	}

	return b.body(n)
}

// optionalBlock builds a block, returning nil when the node is absent.
func (b *builder) optionalBlock(n *yaml.Node) (*stmt.Block, error) {
	if n.Kind == 0 {
		return nil, nil
	}

	return b.list(n)
}

func (b *builder) statement(n *yaml.Node) (stmt.Stmt, error) {
	var key, value *yaml.Node

	switch {
	case n.Kind == yaml.ScalarNode: // bare kind
		key, value = n, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null"}

	case n.Kind == yaml.MappingNode && len(n.Content) == 2:
		key, value = n.Content[0], n.Content[1]

	default:
		return nil, fmt.Errorf("line %d: expected a single key mapping: %w", n.Line, ErrShape)
	}

	var f fields

	switch value.Kind {
	case yaml.ScalarNode:
		if value.ShortTag() == "!!null" {
			break
		}

		switch key.Value {
		case "break", "continue":
			f.Label = value.Value

		default:
			f.ID = value.Value
		}

	case yaml.SequenceNode:
		f.Body = *value

	case yaml.MappingNode:
		if err := value.Decode(&f); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("line %d: unexpected value: %w", value.Line, ErrShape)
	}

	node := stmt.Node{From: origin(key, f.ID)}

	s, err := b.build(key, node, &f)
	if err != nil {
		return nil, err
	}

	if f.ID != "" {
		if _, ok := b.ids[f.ID]; ok {
			return nil, fmt.Errorf("line %d: %q: %w", key.Line, f.ID, ErrDuplicateID)
		}

		b.ids[f.ID] = s
	}

	return s, nil
}

func (b *builder) build(key *yaml.Node, node stmt.Node, f *fields) (stmt.Stmt, error) {
	switch kind := key.Value; kind {
	// keep-sorted start newline_separated=yes
	case "assert":
		return &stmt.Expression{Node: node, Assert: true}, nil

	case "block":
		blk, err := b.list(&f.Body)
		if err != nil {
			return nil, err
		}

		blk.Node = node

		return blk, nil

	case "break":
		return &stmt.Break{Node: node, Label: f.Label}, nil

	case "continue":
		return &stmt.Continue{Node: node, Label: f.Label}, nil

	case "empty":
		return &stmt.Empty{Node: node}, nil

	case "exit":
		return &stmt.Expression{Node: node, Terminates: true}, nil

	case "expr":
		return &stmt.Expression{Node: node}, nil

	case "for", "while", "do", "foreach":
		return b.loop(node, kind, f)

	case "if":
		return b.ifStmt(node, f)

	case "labeled":
		body, err := b.body(&f.Body)
		if err != nil {
			return nil, err
		}

		return &stmt.Labeled{Node: node, Label: f.Label, Body: body}, nil

	case "return":
		return &stmt.Return{Node: node}, nil

	case "switch":
		return b.switchStmt(node, f)

	case "synchronized":
		body, err := b.list(&f.Body)
		if err != nil {
			return nil, err
		}

		return &stmt.Synchronized{Node: node, Body: body}, nil

	case "throw":
		return &stmt.Throw{Node: node}, nil

	case "try":
		return b.try(node, f)

	default:
		return nil, fmt.Errorf("line %d: %q: %w", key.Line, kind, ErrKind)
		// keep-sorted end
	}
}

var loopKinds = map[string]stmt.LoopKind{
	"for":     stmt.For,
	"while":   stmt.While,
	"do":      stmt.DoWhile,
	"foreach": stmt.ForEach,
}

func (b *builder) loop(node stmt.Node, kind string, f *fields) (stmt.Stmt, error) {
	body, err := b.body(&f.Body)
	if err != nil {
		return nil, err
	}

	l := &stmt.Loop{Node: node, Kind: loopKinds[kind], Body: body, UpdateEmpty: f.Update == nil || !*f.Update}
	if f.Cond != nil {
		l.Cond = *f.Cond
	}

	return l, nil
}

func (b *builder) ifStmt(node stmt.Node, f *fields) (stmt.Stmt, error) {
	then, err := b.body(&f.Then)
	if err != nil {
		return nil, err
	}

	els, err := b.optional(&f.Else)
	if err != nil {
		return nil, err
	}

	s := &stmt.If{Node: node, Then: then, Else: els}
	if f.Cond != nil {
		s.Cond = *f.Cond
	}

	return s, nil
}

func (b *builder) switchStmt(node stmt.Node, f *fields) (stmt.Stmt, error) {
	s := &stmt.Switch{Node: node, Exhaustive: f.Exhaustive}
	if f.Cond != nil {
		s.Selector = *f.Cond
	}

	for _, c := range f.Cases {
		var list []stmt.Stmt
		if c.Body.Kind == yaml.SequenceNode {
			var err error
			if list, err = b.statements(c.Body.Content); err != nil {
				return nil, err
			}
		}

		s.Cases = append(s.Cases, &stmt.Case{
			From:    origin(&c.Body, ""),
			Default: c.Default,
			Rule:    c.Rule,
			Body:    list,
		})
	}

	return s, nil
}

func (b *builder) try(node stmt.Node, f *fields) (stmt.Stmt, error) {
	body, err := b.list(&f.Body)
	if err != nil {
		return nil, err
	}

	fin, err := b.optionalBlock(&f.Finally)
	if err != nil {
		return nil, err
	}

	s := &stmt.Try{Node: node, Body: body, Finally: fin}

	for _, c := range f.Catch {
		cb, err := b.list(&c.Body)
		if err != nil {
			return nil, err
		}

		s.Catches = append(s.Catches, &stmt.Catch{
			From:       origin(&c.Body, ""),
			Type:       c.Type,
			Body:       cb,
			Exhaustive: c.Exhaustive,
		})
	}

	return s, nil
}

func origin(n *yaml.Node, id string) Origin {
	return Origin{ID: id, Line: n.Line, Column: n.Column}
}

// Exceptions is an exception model for fixtures.
//
// Throw and expression statements may throw. A catch clause is plausible unless its type is
// listed in Unthrown.
type Exceptions struct {
	Unthrown []string
}

// MayThrow implements [reachability.ExceptionModel].
func (Exceptions) MayThrow(body *stmt.Block) bool {
	if body == nil {
		return false
	}

	for s := range stmt.Preorder(body) {
		switch s.(type) {
		case *stmt.Throw, *stmt.Expression:
			return true

		default:
		}
	}

	return false
}

// IsReachableCatch implements [reachability.ExceptionModel].
func (e Exceptions) IsReachableCatch(_ *stmt.Block, catchType stmt.Expr) bool {
	t, _ := catchType.(string)

	return !slices.Contains(e.Unthrown, t)
}
