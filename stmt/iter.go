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

import "iter"

// Preorder yields s and every statement nested in it, parents before children.
// Catch and case bodies are visited in source order.
func Preorder(s Stmt) iter.Seq[Stmt] {
	return func(yield func(Stmt) bool) {
		_ = preorder(s, yield)
	}
}

func preorder(s Stmt, yield func(Stmt) bool) bool {
	if s == nil {
		return true
	}

	if !yield(s) {
		return false
	}

	for _, c := range children(s) {
		if !preorder(c, yield) {
			return false
		}
	}

	return true
}

// children returns the statements directly nested in s.
func children(s Stmt) []Stmt {
	switch s := s.(type) {
	case *Block:
		return s.List

	case *If:
		if s.Else == nil {
			return []Stmt{s.Then}
		}

		return []Stmt{s.Then, s.Else}

	case *Loop:
		return []Stmt{s.Body}

	case *Labeled:
		return []Stmt{s.Body}

	case *Synchronized:
		return appendBlock(nil, s.Body)

	case *Try:
		list := appendBlock(nil, s.Body)
		for _, c := range s.Catches {
			list = appendBlock(list, c.Body)
		}

		return appendBlock(list, s.Finally)

	case *Switch:
		var list []Stmt
		for _, c := range s.Cases {
			list = append(list, c.Body...)
		}

		return list

	default:
		return nil
	}
}

// appendBlock appends b unless it is nil, so no typed nil ends up in the list.
func appendBlock(list []Stmt, b *Block) []Stmt {
	if b == nil {
		return list
	}

	return append(list, b)
}
