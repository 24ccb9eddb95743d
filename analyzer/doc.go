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

// Package analyzer implements the reachguard static analysis pass.
//
// # Overview
//
// ReachGuard reports statements that can never be executed because every path to them
// returns, panics, exits the program, loops forever or jumps elsewhere. Only the first
// statement of every unreachable run is reported.
//
// # Example
//
//	func process(data []byte) error {
//	    for {
//	        if err := validate(data); err != nil {
//	            return err
//	        }
//	    }
//	    log.Print("done") // unreachable statement
//	}
//
// # Constant Conditions
//
// Branches disabled by a constant condition are not reported, so debug code like
//
//	const debug = false
//
//	if debug {
//	    log.Print(data)
//	}
//
// stays quiet. The same holds for for loops with a constant false condition, unless
// disabled with -exempt-for=false.
//
// # Configuration
//
// Besides command line flags, reachguard reads reachguard.toml files from the package
// directory and its parents:
//
//	generated = false
//	exempt-constant-for = true
//	exclude-functions = ["inherit", "Test*"]
//
// Files nearer to the package take precedence; "inherit" includes the patterns of
// files further up.
//
// Statements, functions and files can be excluded with a //nolint:reachguard comment.
package analyzer
