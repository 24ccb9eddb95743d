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

package a

import (
	"errors"
	"log"
	"os"
)

func afterReturn() {
	return
	println("never") // want "unreachable statement"
	println("run")
}

func afterPanic() {
	panic(errors.New("boom"))
	println("never") // want "unreachable statement"
}

func afterExit() {
	os.Exit(1)
	println("never") // want "unreachable statement"
}

func afterFatal() {
	log.Fatal("fatal")
	println("never") // want "unreachable statement"
}

func infiniteLoop(ch chan int) {
	for {
		<-ch
	}
	println("never") // want "unreachable statement"
}

func loopWithBreak(ch chan int) {
	for {
		if <-ch == 0 {
			break
		}
	}
	println("reached")
}

func labeledBreak(ch chan int) {
outer:
	for {
		for v := range ch {
			if v == 0 {
				break outer
			}
		}
	}
	println("reached")
}

func allBranchesReturn(b bool) int {
	if b {
		return 1
	} else {
		return 2
	}
	return 3 // want "unreachable statement"
}

func switchDefault(i int) int {
	switch i {
	case 1:
		return 1
	default:
		return 0
	}
	return -1 // want "unreachable statement"
}

func switchNoDefault(i int) int {
	switch i {
	case 1:
		return 1
	}
	return 0
}

func fallthroughDefault(i int) int {
	switch i {
	case 1:
		fallthrough
	default:
		return 0
	}
	return -1 // want "unreachable statement"
}

func emptySelect() {
	select {}
	println("never") // want "unreachable statement"
}

func selectCases(a, b chan int) int {
	select {
	case v := <-a:
		return v
	case v := <-b:
		return v
	}
	return 0 // want "unreachable statement"
}

func nested(b bool) {
	if b {
		return
		println("never") // want "unreachable statement"
	}
	println("reached")
}

func literal() func() {
	return func() {
		panic("literal")
		println("never") // want "unreachable statement"
	}
}

const debug = false

func constantCondition() {
	if debug {
		println("debug")
	}

	for false {
		println("disabled")
	}
}

func constantElse() int {
	if !debug {
		return 1
	} else {
		println("debug")
	}
	return 0 // want "unreachable statement"
}

func withGoto(i int) {
	goto end
	println("skipped")
end:
	println(i)
}

type T struct{}

func (T) Method() {
	return
	println("never") // want "unreachable statement"
}
