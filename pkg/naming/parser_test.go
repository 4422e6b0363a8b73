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
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestExtractCleanName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{
			name:     "tags and extension stripped",
			filename: "Super Mario World (U) [!].smc",
			want:     "Super Mario World",
		},
		{
			name:     "multiple tags collapse whitespace",
			filename: "Game  (USA)  [b1]  (Beta).nes",
			want:     "Game",
		},
		{
			name:     "no tags keeps title",
			filename: "Plain Game.bin",
			want:     "Plain Game",
		},
		{
			name:     "no extension",
			filename: "Game (E)",
			want:     "Game",
		},
		{
			name:     "tags between words",
			filename: "Game (U) Special [!].gba",
			want:     "Game Special",
		},
		{
			name:     "empty input",
			filename: "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractCleanName(tt.filename))
		})
	}
}

func TestExtractCleanName_Idempotent(t *testing.T) {
	inputs := []string{
		"Super Mario World (U) [!].smc",
		"Game (USA, Europe) (En,Fr).nes",
		"Weird [[[ Game ((( .bin",
		"No tags at all",
	}
	for _, input := range inputs {
		once := extractCleanName(input)
		assert.Equal(t, once, extractCleanName(once), "input %q", input)
	}
}

func TestExtractRawTags(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		wantBracket []string
		wantParen   []string
	}{
		{
			name:        "mixed tags in order",
			filename:    "Game (USA) [!] (En,Fr) [b2].nes",
			wantBracket: []string{"!", "b2"},
			wantParen:   []string{"USA", "En,Fr"},
		},
		{
			name:        "no tags",
			filename:    "PlainGame.zip",
			wantBracket: []string{},
			wantParen:   []string{},
		},
		{
			name:        "empty tags skipped",
			filename:    "Game ()(USA)[].nes",
			wantBracket: []string{},
			wantParen:   []string{"USA"},
		},
		{
			name:        "stray unmatched delimiters",
			filename:    "Game [USA (En",
			wantBracket: []string{},
			wantParen:   []string{},
		},
		{
			name:        "unrecognized tags captured verbatim",
			filename:    "Game [T+Eng1.0_Group] (Weird Tag)",
			wantBracket: []string{"T+Eng1.0_Group"},
			wantParen:   []string{"Weird Tag"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := extractRawTags(tt.filename)
			assert.Equal(t, tt.wantBracket, tags.Brackets)
			assert.Equal(t, tt.wantParen, tags.Parentheses)
		})
	}
}

func TestParseVersionAndRevision(t *testing.T) {
	tests := []struct {
		filename string
		version  string
		revision string
	}{
		{"Game (v1.0).nes", "1.0", ""},
		{"Game (V1.1).nes", "1.1", ""},
		{"Game (v2.0a).nes", "2.0a", ""},
		{"Game (Rev 1).nes", "", "1"},
		{"Game (Rev A).nes", "", "A"},
		{"Game (REV 2).nes", "", "2"},
		{"Game (v1.0) (Rev B).nes", "1.0", "B"},
		{"Game.nes", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.version, parseVersion(tt.filename))
			assert.Equal(t, tt.revision, parseRevision(tt.filename))
		})
	}
}
