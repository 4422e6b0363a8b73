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
)

func TestNoIntroCanParse(t *testing.T) {
	parser := NewNoIntro("")

	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{"full region name", "Game (USA).nes", true},
		{"region list", "Game (USA, Europe).nes", true},
		{"bios prefix", "[BIOS] PS2 (USA).bin", true},
		{"beta tag without region", "Game (Beta 2).nes", true},
		{"unl tag", "Game (Unl).nes", true},
		{"tosec date rejects region match", "Game (Europe) (1994)(Publisher).zip", false},
		{"goodtools letter region", "Game (U) [!].nes", false},
		{"no markers", "Plain Game.bin", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.CanParse(tt.filename))
		})
	}
}

func TestNoIntroRegions(t *testing.T) {
	parser := NewNoIntro("")

	tests := []struct {
		name     string
		filename string
		want     []string
	}{
		{"single", "Game (USA).nes", []string{"USA"}},
		{"comma list", "Game (USA, Europe).nes", []string{"USA", "Europe"}},
		// Duplicate mention keeps first-seen order.
		{"dedup", "Game (USA, Europe, USA).nes", []string{"USA", "Europe"}},
		{"japan first", "Game (Japan, USA).nes", []string{"Japan", "USA"}},
		{"alias normalized", "Game (United Kingdom).nes", []string{"United Kingdom"}},
		{"none", "Game (Beta).nes", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.Parse(tt.filename).Regions)
		})
	}
}

func TestNoIntroLanguages(t *testing.T) {
	parser := NewNoIntro("")

	tests := []struct {
		name     string
		filename string
		want     []string
	}{
		{"single", "Game (USA) (En).nes", []string{"English"}},
		{"comma list", "Game (Europe) (En,Fr,De).nes", []string{"English", "French", "German"}},
		{"mixed group ignored", "Game (Europe) (En,Whatever).nes", []string{}},
		{"none", "Game (USA).nes", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.Parse(tt.filename).Languages)
		})
	}
}

func TestNoIntroParse(t *testing.T) {
	parser := NewNoIntro("")

	t.Run("title precedes first tag", func(t *testing.T) {
		m := parser.Parse("Legend of Zelda, The (USA) (Rev 1).zip")
		require.NotNil(t, m)
		assert.Equal(t, "Legend of Zelda, The", m.CleanName)
		assert.Equal(t, []string{"USA"}, m.Regions)
		assert.Equal(t, "1", m.Revision)
		assert.Equal(t, DumpGood, m.DumpQuality)
	})

	t.Run("bios prefix", func(t *testing.T) {
		m := parser.Parse("[BIOS] PS2 BIOS (USA).bin")
		assert.True(t, m.IsBIOS)
		assert.Equal(t, "PS2 BIOS", m.CleanName)
		assert.Equal(t, []string{"USA"}, m.Regions)
	})

	t.Run("numbered beta", func(t *testing.T) {
		m := parser.Parse("Game (Japan) (Beta 2).nes")
		assert.Equal(t, ReleaseBeta, m.ReleaseStatus)
		assert.Equal(t, 2, m.ReleaseNumber)
	})

	t.Run("unnumbered proto", func(t *testing.T) {
		m := parser.Parse("Game (USA) (Proto).nes")
		assert.Equal(t, ReleasePrototype, m.ReleaseStatus)
		assert.Equal(t, 0, m.ReleaseNumber)
	})

	t.Run("unlicensed", func(t *testing.T) {
		m := parser.Parse("Game (USA) (Unl).nes")
		assert.Equal(t, CopyrightUnlicensed, m.CopyrightStatus)
	})

	t.Run("alt version", func(t *testing.T) {
		m := parser.Parse("Game (USA) (Alt 2).nes")
		assert.Equal(t, "Alt 2", m.AltVersion)
		m = parser.Parse("Game (USA) (Alt).nes")
		assert.Equal(t, "Alt", m.AltVersion)
	})

	t.Run("disc label", func(t *testing.T) {
		m := parser.Parse("Game (USA) (Disc 2).iso")
		assert.Equal(t, "Disc 2", m.MediaLabel)
	})

	t.Run("promo flag", func(t *testing.T) {
		m := parser.Parse("Game (Japan) (Promo).nes")
		assert.Equal(t, true, m.Extra["promo"])
	})

	t.Run("version tag", func(t *testing.T) {
		m := parser.Parse("Game (USA) (v1.2).nes")
		assert.Equal(t, "1.2", m.Version)
	})
}

func TestNoIntroDumpQuality(t *testing.T) {
	parser := NewNoIntro("")

	tests := []struct {
		filename string
		want     DumpQuality
	}{
		{"Game (USA).nes", DumpGood},
		{"Game (USA) [b].nes", DumpBad},
		{"Game (USA) [o].nes", DumpOverdump},
		{"Game (USA) [h].nes", DumpHacked},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.Parse(tt.filename).DumpQuality)
		})
	}
}
