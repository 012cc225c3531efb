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

package bitmask

import "log/slog"

// settings collects the [Option] values of a spec under construction.
type settings struct {
	clip Clip
}

// Option configures a [Spec] built by [NewSpec], [ParseBitNames] or [ParseValueNames].
type Option interface {
	apply(s *settings)
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

func (o Options) apply(s *settings) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(s)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithClip is an [Option] to set the clipping policy.
func WithClip(clip Clip) Option { return clipOption{clip: clip} }

type clipOption struct{ clip Clip }

func (o clipOption) apply(s *settings) {
	s.clip = o.clip
}

func (o clipOption) LogAttr() slog.Attr {
	return slog.String("clip", o.clip.String())
}
