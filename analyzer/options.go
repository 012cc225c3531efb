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

package analyzer

import (
	"fmt"
	"log/slog"
	"strings"

	"fillmore-labs.com/bitmaskenum/bitmask"
	"fillmore-labs.com/bitmaskenum/internal/config"
	"fillmore-labs.com/bitmaskenum/internal/run"
)

// Option configures specific behavior of a [New] bitmaskcheck analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior = bitmask.SetTo(r.Behavior, config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// checkOption enables or disables one of the checks.
type checkOption struct {
	check   config.Checks
	enabled bool
}

func (o checkOption) apply(r *run.Options) {
	r.Checks = bitmask.SetTo(r.Checks, o.check, o.enabled)
}

func (o checkOption) LogAttr() slog.Attr {
	return slog.Bool(o.check.String(), o.enabled)
}

// WithLeadingComma is an [Option] to configure whether bit name lists starting with a comma are reported.
func WithLeadingComma(leadingComma bool) Option {
	return checkOption{check: config.LeadingComma, enabled: leadingComma}
}

// WithZeroIndex is an [Option] to configure whether constant bit indexes below 1 are reported.
func WithZeroIndex(zeroIndex bool) Option {
	return checkOption{check: config.ZeroIndex, enabled: zeroIndex}
}

// WithEmptySpec is an [Option] to configure whether specs without valid bits are reported.
func WithEmptySpec(emptySpec bool) Option {
	return checkOption{check: config.EmptySpec, enabled: emptySpec}
}

// WithWidth is an [Option] to configure whether specs and indexes exceeding their type are reported.
func WithWidth(width bool) Option {
	return checkOption{check: config.Width, enabled: width}
}

// WithChecks returns an [Option] enabling exactly the listed checks and
// disabling all others. Names are those of the command line flags; a single
// entry may combine several names with "+". Numbers are not accepted.
func WithChecks(names ...string) (Option, error) {
	var checks config.Checks

	for _, name := range names {
		for term := range strings.SplitSeq(name, "+") {
			term = strings.TrimSpace(term)

			c, err := bitmask.Parse[config.Checks](term)
			if err != nil {
				return nil, fmt.Errorf("check %q: %w", name, err)
			}

			// A single check renders as its own name, anything else was a number.
			if c == 0 || c.String() != term {
				return nil, fmt.Errorf("check %q: %w %q", name, bitmask.ErrUnknownName, term)
			}

			checks |= c
		}
	}

	return checksOption{checks: checks}, nil
}

type checksOption struct{ checks config.Checks }

func (o checksOption) apply(r *run.Options) {
	r.Checks = o.checks
}

func (o checksOption) LogAttr() slog.Attr {
	return slog.String("checks", o.checks.String())
}
