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

import "fillmore-labs.com/bitmaskenum/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Enable lists the checks to run, replacing the default set.
	Enable []string `json:"enable,omitempty"`
	// LeadingComma reports bit name lists starting with a comma.
	LeadingComma *bool `json:"leading-comma,omitzero"`
	// ZeroIndex reports constant bit indexes below 1.
	ZeroIndex *bool `json:"zero-index,omitzero"`
	// EmptySpec reports specs without valid bits.
	EmptySpec *bool `json:"empty-spec,omitzero"`
	// Width reports specs and bit indexes exceeding their type.
	Width *bool `json:"width,omitzero"`
	// Generated checks generated files. golangci-lint filters them itself, so this defaults to true.
	Generated *bool `json:"generated,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the bitmaskcheck analyzer.
// Only explicitly set settings are applied, individual checks after Enable.
func (s Settings) Options() ([]analyzer.Option, error) {
	var opts []analyzer.Option

	if len(s.Enable) > 0 {
		enable, err := analyzer.WithChecks(s.Enable...)
		if err != nil {
			return nil, err
		}

		opts = append(opts, enable)
	}

	opts = appendOption(opts, s.LeadingComma, analyzer.WithLeadingComma)
	opts = appendOption(opts, s.ZeroIndex, analyzer.WithZeroIndex)
	opts = appendOption(opts, s.EmptySpec, analyzer.WithEmptySpec)
	opts = appendOption(opts, s.Width, analyzer.WithWidth)

	generated := true
	if s.Generated != nil {
		generated = *s.Generated
	}

	return append(opts, analyzer.WithGenerated(generated)), nil
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
