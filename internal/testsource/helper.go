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

// Package testsource provides utilities for parsing and type-checking Go source code in tests.
//
// Sources import a stand-in for the bitmask package that has the same
// signatures, so the checks can be tested without loading the module.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"
)

const (
	testpkg = "test"

	// BitmaskPath is the import path the stand-in package is registered under.
	BitmaskPath = "fillmore-labs.com/bitmaskenum/bitmask"
)

const bitmaskSrc = `package bitmask

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Spec[E any] struct{ validBits uint64 }

func (s *Spec[E]) ValidBits() uint64 { return s.validBits }

type Enum[E any] interface {
	Integer
	BitmaskSpec() *Spec[E]
}

type Option interface{ apply() }

func MustSpec[E Integer](validBits uint64, opts ...Option) *Spec[E] { return &Spec[E]{validBits} }

func MustBitNames[E Integer](list string, opts ...Option) *Spec[E] { return &Spec[E]{} }

func MustValueNames[E Integer](list string, opts ...Option) *Spec[E] { return &Spec[E]{} }

func MakeAt[E Enum[E]](ndx int) E { return E(1) << (ndx - 1) }

func SetAt[E Enum[E]](v E, ndx int) E { return v | MakeAt[E](ndx) }

func Format[E Enum[E]](v E) string { return "" }
`

// Parse parses a Go source file body into an AST.
// The provided source `src` is prefixed with a package clause for package
// `test` and an import of the bitmask package.
//
// Call [Check] on the result when type information is needed.
func Parse(tb testing.TB, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	const (
		filename = "test.go"
		header   = "package " + testpkg + "\n\nimport \"" + BitmaskPath + "\"\n\n"
	)

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, header+src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

// Check performs type checking on the provided AST file.
// It creates and returns a fully type-checked *types.Package and *types.Info.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:     make(map[ast.Expr]types.TypeAndValue),
		Instances: make(map[*ast.Ident]types.Instance),
		Defs:      make(map[*ast.Ident]types.Object),
		Uses:      make(map[*ast.Ident]types.Object),
	}

	conf := types.Config{Importer: stubImporter{fset: fset, fallback: importer.Default()}}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// stubImporter resolves the bitmask package to its stand-in.
type stubImporter struct {
	fset     *token.FileSet
	fallback types.Importer
}

func (i stubImporter) Import(path string) (*types.Package, error) {
	if path != BitmaskPath {
		return i.fallback.Import(path)
	}

	f, err := parser.ParseFile(i.fset, "bitmask.go", bitmaskSrc, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}

	var conf types.Config

	return conf.Check(BitmaskPath, i.fset, []*ast.File{f}, nil)
}
