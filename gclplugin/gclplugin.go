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

package gclplugin

import (
	"fmt"

	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/bitmaskenum/analyzer"
)

const linterName = "bitmaskcheck"

func init() { register.Plugin(linterName, New) }

// New decodes the raw golangci-lint settings and returns a [Plugin].
// Check names are validated here, so a typo fails the configuration load.
func New(rawSettings any) (register.LinterPlugin, error) {
	settings, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return nil, err
	}

	opts, err := settings.Options()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", linterName, err)
	}

	return Plugin{opts: opts}, nil
}

// Plugin is the bitmaskcheck linter as a [register.LinterPlugin].
type Plugin struct {
	opts analyzer.Options
}

// GetLoadMode returns the golangci load mode. The checks need the type
// arguments of calls into the bitmask package.
func (Plugin) GetLoadMode() string {
	return register.LoadModeTypesInfo
}

// BuildAnalyzers returns a single analyzer configured from the plugin settings.
func (p Plugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{analyzer.New(p.opts)}, nil
}
