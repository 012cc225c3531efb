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
	"go/constant"
	"go/types"
	"math/bits"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/bitmaskenum/bitmask"
	"fillmore-labs.com/bitmaskenum/internal/astutil"
	"fillmore-labs.com/bitmaskenum/internal/config"
)

// Checker runs the enabled checks on calls into the bitmask package.
type Checker struct {
	Pass   *analysis.Pass
	Checks config.Checks
}

// Call checks a call of fn, a function of the bitmask package, instantiated with typeArg.
func (c Checker) Call(call *ast.CallExpr, fn *types.Func, typeArg types.Type) {
	if len(call.Args) == 0 {
		return
	}

	switch fn.Name() {
	case "ParseBitNames", "MustBitNames":
		c.bitNames(call.Args[0], typeArg)

	case "ParseValueNames", "MustValueNames":
		c.valueNames(call.Args[0], typeArg)

	case "NewSpec", "MustSpec":
		c.validBits(call.Args[0], typeArg)

	case "MakeAt":
		c.index(call.Args[0], typeArg)

	case "HasAt", "SetAt", "SetAtIf", "ClearAt", "ClearAtIf", "SetAtTo":
		if len(call.Args) > 1 {
			c.index(call.Args[1], typeArg)
		}
	}
}

func (c Checker) bitNames(arg ast.Expr, typeArg types.Type) {
	list, ok := c.constString(arg)
	if !ok {
		return
	}

	if strings.HasPrefix(list, ",") {
		if c.Checks.Enabled(config.LeadingComma) {
			astutil.Reportf(c.Pass, arg, "lead", trimCommaFix(arg, list),
				"bit name list %q starts with a comma", list)
		}

		return
	}

	names := bitmask.SplitNames(list)
	if len(names) > 64 {
		if c.Checks.Enabled(config.Width) {
			astutil.Reportf(c.Pass, arg, "wide", nil, "%d bit names exceed 64 bits", len(names))
		}

		return
	}

	c.checkBits(arg, typeArg, list, bitmask.ValidBitsFromBitNames(names))
}

func (c Checker) valueNames(arg ast.Expr, typeArg types.Type) {
	list, ok := c.constString(arg)
	if !ok {
		return
	}

	c.checkBits(arg, typeArg, list, bitmask.ValidBitsFromValueNames(bitmask.SplitNames(list)))
}

func (c Checker) checkBits(arg ast.Expr, typeArg types.Type, list string, valid uint64) {
	if valid == 0 {
		if c.Checks.Enabled(config.EmptySpec) {
			astutil.Reportf(c.Pass, arg, "empty", nil, "name list %q has no valid bits", list)
		}

		return
	}

	if n, width := bits.Len64(valid), c.width(typeArg); width > 0 && n > width {
		c.reportWide(arg, typeArg, n, "valid bits")
	}
}

func (c Checker) validBits(arg ast.Expr, typeArg types.Type) {
	v, ok := c.constInt(arg)
	if !ok {
		return
	}

	valid, exact := constant.Uint64Val(v)
	if !exact {
		return
	}

	if valid == 0 {
		if c.Checks.Enabled(config.EmptySpec) {
			astutil.Reportf(c.Pass, arg, "empty", nil, "spec has no valid bits")
		}

		return
	}

	if n, width := bits.Len64(valid), c.width(typeArg); width > 0 && n > width {
		c.reportWide(arg, typeArg, n, "valid bits")
	}
}

func (c Checker) index(arg ast.Expr, typeArg types.Type) {
	v, ok := c.constInt(arg)
	if !ok {
		return
	}

	ndx, exact := constant.Int64Val(v)
	if !exact {
		return
	}

	if ndx < 1 {
		if c.Checks.Enabled(config.ZeroIndex) {
			astutil.Reportf(c.Pass, arg, "zero", nil, "bit index %d is less than 1, bits are counted from 1", ndx)
		}

		return
	}

	if width := c.width(typeArg); width > 0 && ndx > int64(width) && c.Checks.Enabled(config.Width) {
		astutil.Reportf(c.Pass, arg, "wide", nil, "bit index %d exceeds %d-bit %s", ndx, width, c.typeString(typeArg))
	}
}

func (c Checker) reportWide(arg ast.Expr, typeArg types.Type, n int, what string) {
	if !c.Checks.Enabled(config.Width) {
		return
	}

	astutil.Reportf(c.Pass, arg, "wide", nil, "%d %s exceed %d-bit %s", n, what, c.width(typeArg), c.typeString(typeArg))
}

// constString returns the value of a constant string expression.
func (c Checker) constString(expr ast.Expr) (string, bool) {
	tv, ok := c.Pass.TypesInfo.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}

	return constant.StringVal(tv.Value), true
}

// constInt returns the value of a constant integer expression.
func (c Checker) constInt(expr ast.Expr) (constant.Value, bool) {
	tv, ok := c.Pass.TypesInfo.Types[expr]
	if !ok || tv.Value == nil {
		return nil, false
	}

	v := constant.ToInt(tv.Value)
	if v.Kind() != constant.Int {
		return nil, false
	}

	return v, true
}

// width returns the number of bits of an integer type, 0 when unknown.
func (c Checker) width(t types.Type) int {
	if t == nil {
		return 0
	}

	if _, ok := types.Unalias(t).(*types.TypeParam); ok {
		return 0
	}

	if b, ok := t.Underlying().(*types.Basic); !ok || b.Info()&types.IsInteger == 0 {
		return 0
	}

	sizes := c.Pass.TypesSizes
	if sizes == nil {
		sizes = types.SizesFor("gc", "amd64")
	}

	return int(sizes.Sizeof(t)) * 8
}

func (c Checker) typeString(t types.Type) string {
	return types.TypeString(t, types.RelativeTo(c.Pass.Pkg))
}

// trimCommaFix suggests removing the leading commas of a string literal.
func trimCommaFix(arg ast.Expr, list string) []analysis.SuggestedFix {
	lit, ok := ast.Unparen(arg).(*ast.BasicLit)
	if !ok {
		return nil
	}

	trimmed := strings.TrimLeft(list, ",")

	var text string
	if strings.HasPrefix(lit.Value, "`") {
		text = "`" + trimmed + "`"
	} else {
		text = strconv.Quote(trimmed)
	}

	return []analysis.SuggestedFix{{
		Message:   "Remove leading commas",
		TextEdits: []analysis.TextEdit{{Pos: lit.Pos(), End: lit.End(), NewText: []byte(text)}},
	}}
}
