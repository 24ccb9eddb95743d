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

// Package stmt defines the statement tree consumed by the reachability analyzer.
//
// The tree is produced by a front end that has already parsed and resolved the source:
// expressions are opaque [Expr] values, labels are resolved names and every node may
// point back to the syntax it was built from through [Stmt.Origin].
//
// The set of statement kinds is closed. Front ends build trees from the exported
// types below; nothing outside this package can implement [Stmt].
package stmt
