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
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Registry dispatches filenames to an ordered list of convention parsers.
// Registration order is priority order: the first parser whose CanParse
// accepts a filename wins, and no re-ordering or removal is supported.
//
// Register must not run concurrently with Parse or ParserFor; the expected
// pattern is registering every parser during startup and querying afterwards,
// which then needs no synchronization.
type Registry struct {
	parsers []Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a parser. No deduplication or validation is performed.
func (r *Registry) Register(parser Parser) {
	r.parsers = append(r.parsers, parser)
}

// Parse runs the first accepting parser over the filename and returns its
// normalized output map, tagged with the winning convention under the
// "parser_format" key. The second return is false when no registered parser
// accepts the filename; callers should then fall back to displaying the
// filename verbatim.
//
// Callers are expected to pass basenames, but a path-qualified filename is
// reduced to its base element before matching. A non-empty platformHint
// skips parsers scoped to a different platform.
func (r *Registry) Parse(filename, platformHint string) (map[string]any, bool) {
	parser := r.match(filename, platformHint)
	if parser == nil {
		log.Debug().Str("filename", filename).Msg("no naming convention matched")
		return nil, false
	}

	base := filepath.Base(filename)
	result := ToMap(parser.Parse(base))
	result["parser_format"] = parser.FormatName()
	return result, true
}

// ParserFor returns the first parser accepting the filename, or nil when none
// does. It applies the same selection logic as Parse, exposed for callers
// that need the parser itself for convention-specific formatting.
func (r *Registry) ParserFor(filename string) Parser {
	return r.match(filename, "")
}

func (r *Registry) match(filename, platformHint string) Parser {
	base := filepath.Base(filename)

	for _, parser := range r.parsers {
		if platformHint != "" {
			if scoped, ok := parser.(PlatformScoped); ok {
				if pl := scoped.Platform(); pl != "" && pl != platformHint {
					continue
				}
			}
		}
		if parser.CanParse(base) {
			log.Debug().
				Str("filename", base).
				Str("format", parser.FormatName()).
				Msg("matched naming convention")
			return parser
		}
	}

	return nil
}
