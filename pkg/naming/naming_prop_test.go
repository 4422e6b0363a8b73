// RomShelf Core
// Copyright (c) 2025 The RomShelf Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of RomShelf Core.
//
// RomShelf Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// RomShelf Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with RomShelf Core.  If not, see <http://www.gnu.org/licenses/>.

package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func allParsers() []Parser {
	return []Parser{NewGoodTools(""), NewNoIntro(""), NewTOSEC("")}
}

// Parsing is total: any input yields a record, never a panic.
func TestParseIsTotal(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		filename := rapid.String().Draw(t, "filename")
		for _, parser := range allParsers() {
			parser.CanParse(filename)
			m := parser.Parse(filename)
			require.NotNil(t, m)
			require.Equal(t, filename, m.OriginalFilename)
		}
	})
}

// Parsing the same filename twice yields identical records.
func TestParseIsDeterministic(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		filename := rapid.String().Draw(t, "filename")
		for _, parser := range allParsers() {
			first := ToMap(parser.Parse(filename))
			second := ToMap(parser.Parse(filename))
			assert.Equal(t, first, second)
		}
	})
}

// Regions and languages never contain duplicates.
func TestParseOutputDeduplicated(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		filename := rapid.String().Draw(t, "filename")
		for _, parser := range allParsers() {
			m := parser.Parse(filename)
			assertUnique(t, m.Regions)
			assertUnique(t, m.Languages)
		}
	})
}

func assertUnique(t *rapid.T, values []string) {
	seen := map[string]struct{}{}
	for _, v := range values {
		if _, dup := seen[v]; dup {
			t.Fatalf("duplicate value %q in %v", v, values)
		}
		seen[v] = struct{}{}
	}
}

// Clean name extraction reaches a fixed point after one application for
// conventional names, where dots appear only in the extension.
func TestCleanNameIdempotent(t *testing.T) {
	t.Parallel()

	pattern := `[A-Za-z][A-Za-z0-9 ]{0,20}` +
		`( \((U|USA|Europe|JUE|En,Fr|M3|Beta 2|1986|Unl)\)){0,3}` +
		`( \[(!|b1|o2|h1C|T\+Eng|cr)\]){0,3}` +
		`(\.(nes|smc|gen|zip|bin))?`

	rapid.Check(t, func(t *rapid.T) {
		filename := rapid.StringMatching(pattern).Draw(t, "filename")
		once := extractCleanName(filename)
		assert.Equal(t, once, extractCleanName(once))
	})
}

// Registry dispatch is stable: the same filename always selects the same
// parser and produces the same output.
func TestRegistryDeterministic(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		filename := rapid.String().Draw(t, "filename")
		r := newDefaultRegistry()

		first, okFirst := r.Parse(filename, "")
		second, okSecond := r.Parse(filename, "")
		assert.Equal(t, okFirst, okSecond)
		assert.Equal(t, first, second)
	})
}
