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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"runtime/trace"
	"slices"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/bitmaskenum/internal/astutil"
	"fillmore-labs.com/bitmaskenum/internal/check"
	"fillmore-labs.com/bitmaskenum/internal/config"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the bitmaskcheck analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("bitmaskcheck: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	// Nothing to do for packages not using bitmask enums
	if !usesBitmask(p.Pkg) {
		return nil, nil
	}

	ctx, task := trace.NewTask(context.Background(), "BitmaskCheck")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	c := check.Checker{Pass: p, Checks: r.Checks}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLintFile() {
			continue
		}

		// Loop over all calls into the bitmask package
		for e := range f.Preorder((*ast.CallExpr)(nil)) {
			call := e.Node().(*ast.CallExpr)

			fn, typeArg, ok := check.Callee(p.TypesInfo, call)
			if !ok || currentFile.NoLintComment(call.Pos()) {
				continue
			}

			c.Call(call, fn, typeArg)
		}
	}

	return nil, nil
}

// usesBitmask reports whether pkg is or directly imports the bitmask package.
func usesBitmask(pkg *types.Package) bool {
	if pkg.Path() == check.Path {
		return true
	}

	return slices.ContainsFunc(pkg.Imports(), func(imp *types.Package) bool {
		return imp.Path() == check.Path
	})
}
