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

// Package reachability decides which statements of a method or lambda body can be reached,
// and reports the first statement of every unreachable run.
//
// The analysis is a single recursive descent over a [stmt] tree. For every statement it computes
// whether control can reach it and how it can complete: normally, or abruptly by return, throw,
// break or continue. Jumps are resolved against the enclosing loops, switches and labeled
// statements and consumed by the construct they leave.
//
// Branches made dead by a constant if or while condition are not reported, so code like
//
//	if (DEBUG) { ... }
//
// stays quiet. Assert statements never take part in constant folding.
package reachability
