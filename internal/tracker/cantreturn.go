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

package tracker

import (
	"go/ast"
	"go/types"
)

// _knownFuncs are functions and methods that do not return.
var _knownFuncs = funcSet(
	funcs("log", "", "Fatal", "Fatalf", "Fatalln", "Panic", "Panicf", "Panicln"),
	funcs("log", "Logger", "Fatal", "Fatalf", "Fatalln", "Panic", "Panicf", "Panicln"),
	funcs("os", "", "Exit"),
	funcs("syscall", "", "Exit"),
	funcs("runtime", "", "Goexit"),
	funcs("testing", "common", "Fatal", "Fatalf", "FailNow", "Skip", "Skipf", "SkipNow"),
	funcs("testing", "TB", "Fatal", "Fatalf", "FailNow", "Skip", "Skipf", "SkipNow"),
	funcs("github.com/sirupsen/logrus", "Entry", "Panic", "Panicf", "Panicln"),
	funcs("github.com/sirupsen/logrus", "Logger", "Exit", "Panic", "Panicf", "Panicln"),
	funcs("go.uber.org/zap", "Logger", "Fatal", "Panic"),
	funcs("go.uber.org/zap", "SugaredLogger",
		"Fatal", "Fatalf", "Fatalln", "Fatalw", "Panic", "Panicf", "Panicln", "Panicw"),
	funcs("k8s.io/klog", "", "Exit", "ExitDepth", "Exitf", "Exitln", "Fatal", "FatalDepth", "Fatalf", "Fatalln"),
	funcs("k8s.io/klog/v2", "", "Exit", "ExitDepth", "Exitf", "Exitln", "Fatal", "FatalDepth", "Fatalf", "Fatalln"),
)

func funcs(path, receiver string, names ...string) []FuncName {
	list := make([]FuncName, 0, len(names))
	for _, name := range names {
		list = append(list, FuncName{Path: path, Receiver: receiver, Name: name})
	}

	return list
}

func funcSet(groups ...[]FuncName) map[FuncName]struct{} {
	set := make(map[FuncName]struct{})
	for _, group := range groups {
		for _, name := range group {
			set[name] = struct{}{}
		}
	}

	return set
}

// CantReturn reports whether the call never returns to its caller, either because it
// panics or because it ends the goroutine or process.
func CantReturn(info *types.Info, call *ast.CallExpr) bool {
	switch obj := callee(info, call).(type) {
	case *types.Func:
		_, ok := _knownFuncs[FuncNameOf(obj)]

		return ok

	case *types.Builtin:
		return obj == builtinPanic

	default:
		return false
	}
}

// IsPanic reports whether call is a call of the builtin panic.
func IsPanic(info *types.Info, call *ast.CallExpr) bool {
	obj, ok := callee(info, call).(*types.Builtin)

	return ok && obj == builtinPanic
}

// callee iteratively unwraps the function expression of call to find the called object.
func callee(info *types.Info, call *ast.CallExpr) types.Object {
	ex := call.Fun

	for {
		switch e := ex.(type) {
		case *ast.Ident:
			return info.Uses[e]

		case *ast.SelectorExpr:
			return info.Uses[e.Sel]

		case *ast.IndexExpr: // Generic function instantiation with a type parameter ("myFunc[T]").
			ex = e.X

		case *ast.IndexListExpr: // Generic function instantiation with multiple type parameters ("myFunc[T, U]").
			ex = e.X

		case *ast.ParenExpr:
			ex = e.X

		default: // Pointer dereference or another function reference.
			return nil
		}
	}
}

var builtinPanic = types.Universe.Lookup("panic").(*types.Builtin)
