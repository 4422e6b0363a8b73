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

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/RomShelfProject/romshelf-core/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRegistry(t *testing.T) {
	t.Run("all conventions", func(t *testing.T) {
		registry, err := buildRegistry(config.BaseDefaults.Naming.Conventions, "")
		require.NoError(t, err)

		parser := registry.ParserFor("Game (1986)(Devstudio).zip")
		require.NotNil(t, parser)
		assert.Equal(t, "TOSEC", parser.FormatName())

		parser = registry.ParserFor("Game (J) [T+Eng].nes")
		require.NotNil(t, parser)
		assert.Equal(t, "GoodTools", parser.FormatName())
	})

	t.Run("subset respects order", func(t *testing.T) {
		registry, err := buildRegistry([]string{config.ConventionTOSEC}, "")
		require.NoError(t, err)

		assert.Nil(t, registry.ParserFor("Game (USA).nes"))
		assert.NotNil(t, registry.ParserFor("Game (1986)(Devstudio).zip"))
	})

	t.Run("unknown convention", func(t *testing.T) {
		_, err := buildRegistry([]string{"redump"}, "")
		require.Error(t, err)
	})
}

func TestReadLines(t *testing.T) {
	lines, err := readLines(strings.NewReader("a.nes\n\nb.smc\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.nes", "b.smc"}, lines)
}

func TestEmit(t *testing.T) {
	registry, err := buildRegistry(config.BaseDefaults.Naming.Conventions, "")
	require.NoError(t, err)

	t.Run("matched filename", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t,
			emit(&buf, registry, "Final Fantasy V (J) [T+Eng1.0_RPGe].smc", "", false))

		var result map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, true, result["matched"])
		assert.Equal(t, "GoodTools", result["parser_format"])
		assert.Equal(t, "Final Fantasy V", result["clean_name"])
		assert.Equal(t, "Final Fantasy V (J) [T+Eng1.0_RPGe].smc", result["filename"])
	})

	t.Run("unmatched filename falls back verbatim", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, emit(&buf, registry, "notes.txt", "", false))

		var result map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, false, result["matched"])
		assert.Equal(t, "notes.txt", result["clean_name"])
	})
}
