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

// Package gosyntax converts Go function bodies into statement trees.
//
// Go has no try statements and no do-while loops. panic calls become throw statements,
// calls of functions known not to return are marked as terminating, select statements
// are switches that always take one of their cases, and switch cases only fall through
// when they end with a fallthrough statement.
//
// Bodies containing goto are not converted.
package gosyntax
