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

package terminates

import (
	"log"
	"os"
	"runtime"
	"syscall"
	"testing"
)

func logFatal() {
	log.Fatal() // want "can't return"
}

func logFatalln() {
	log.Fatalln() // want "can't return"
}

func builtinPanic() {
	panic("") // want "panics"
}

func loggerFatalf() {
	l := log.Default()

	l.Fatalf("") // want "can't return"
}

func osExit() {
	os.Exit(1) // want "can't return"
}

func syscallExit() {
	syscall.Exit(1) // want "can't return"
}

func runtimeGoexit() {
	runtime.Goexit() // want "can't return"
}

func testFatal(t *testing.T) {
	t.Fatal() // want "can't return"
}

func benchmarkSkip(b *testing.B) {
	b.SkipNow() // want "can't return"
}

func tbFailNow(tb testing.TB) {
	tb.FailNow() // want "can't return"
}

func testError(t *testing.T) {
	t.Error() // OK
}

func normalReturn() {
	println("hello") // OK
}

func shadowedPanic() {
	panic := log.Print

	panic("hello") // OK
}

func exit[T any](T) {}

func genericCall() {
	exit[int](0) // OK
}

func indirect() {
	f := os.Exit

	f(1) // OK
}
