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

package fixture

import (
	"go/constant"
	"go/token"
	"go/types"
)

// Constants folds fixture conditions as Go constant expressions in the universe scope,
// so "false", "1 == 2" and "!true" fold like their Go counterparts.
type Constants struct{}

// BoolConstant implements [reachability.ConstantEvaluator].
func (Constants) BoolConstant(expr any) (value, ok bool) {
	src, ok := expr.(string)
	if !ok {
		return false, false
	}

	tv, err := types.Eval(token.NewFileSet(), nil, token.NoPos, src)
	if err != nil || tv.Value == nil || tv.Value.Kind() != constant.Bool {
		return false, false
	}

	return constant.BoolVal(tv.Value), true
}
