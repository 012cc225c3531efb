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

package check

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// Path is the import path of the bitmask package.
const Path = "fillmore-labs.com/bitmaskenum/bitmask"

// Callee returns the bitmask function called by call and its first type argument.
// The type argument is nil when it can not be determined.
func Callee(info *types.Info, call *ast.CallExpr) (*types.Func, types.Type, bool) {
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != Path {
		return nil, nil, false
	}

	// methods on Spec, Value and friends take no literals we check
	if sig, ok := fn.Type().(*types.Signature); !ok || sig.Recv() != nil {
		return nil, nil, false
	}

	id := funcIdent(call.Fun)
	if id == nil {
		return fn, nil, true
	}

	inst, ok := info.Instances[id]
	if !ok || inst.TypeArgs.Len() == 0 {
		return fn, nil, true
	}

	return fn, inst.TypeArgs.At(0), true
}

// funcIdent returns the identifier naming the function in a call, stripping
// parentheses, package qualifiers and explicit instantiation.
func funcIdent(fun ast.Expr) *ast.Ident {
	switch e := ast.Unparen(fun).(type) {
	case *ast.Ident:
		return e

	case *ast.SelectorExpr:
		return e.Sel

	case *ast.IndexExpr:
		return funcIdent(e.X)

	case *ast.IndexListExpr:
		return funcIdent(e.X)

	default:
		return nil
	}
}
