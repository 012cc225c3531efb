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

// Command bitmaskgen generates bitmask enum types from YAML definitions.
//
// Usage:
//
//	//go:generate go tool bitmaskgen -input flags.yaml
//
// The input lists the enums of one package:
//
//	package: color
//	enums:
//	  - name: RGB
//	    type: uint8
//	    clip: limit
//	    bits: [red, green, blue]
//
// Each enum gets its type, a constant per name, its spec and the String,
// MarshalText and UnmarshalText methods.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"
)

func main() {
	input := flag.String("input", "", "Path to the YAML enum definitions")
	output := flag.String("output", "", "Output path for the generated Go file (default <input>_gen.go)")
	verbose := flag.Bool("v", false, "Log debug information")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: bitmaskgen -input <path> [-output <path>] [-v]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(context.Background(), logger, *input, *output); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, input, output string) error {
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "_gen.go"
	}

	f, err := LoadFile(input)
	if err != nil {
		return fmt.Errorf("loading definitions: %w", err)
	}

	if logger.Enabled(ctx, slog.LevelDebug) {
		for i := range f.Enums {
			def := &f.Enums[i]

			spec, err := def.spec()
			if err != nil {
				return fmt.Errorf("enum %q: %w", def.Name, err)
			}

			logger.LogAttrs(ctx, slog.LevelDebug, "validated", slog.String("enum", def.Name), slog.Any("spec", spec))
		}
	}

	code, err := Generate(f)
	if err != nil {
		return fmt.Errorf("generating %s: %w", f.Package, err)
	}

	if err := writeFormatted(output, code); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(output), err)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "generated",
		slog.String("path", output), slog.String("package", f.Package), slog.Int("enums", len(f.Enums)))

	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)

		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}

	return os.WriteFile(path, formatted, 0o644)
}
