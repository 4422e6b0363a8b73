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
	"regexp"
	"strings"
)

// Package-level compiled regexes shared by all convention parsers.
// These are compiled once at initialization.
var (
	reBracketSpan = regexp.MustCompile(`\s*\[[^\]]*\]\s*`)
	reParenSpan   = regexp.MustCompile(`\s*\([^)]*\)\s*`)
	reMultiSpace  = regexp.MustCompile(`\s+`)
	reVersionTag  = regexp.MustCompile(`\([Vv](\d[\d.]*[a-zA-Z]*)\)`)
	reRevisionTag = regexp.MustCompile(`(?i)\(Rev\s+([A-Z0-9]+)\)`)
)

// stripExtension removes the last dot-delimited segment if one is present.
func stripExtension(filename string) string {
	if i := strings.LastIndexByte(filename, '.'); i != -1 {
		return filename[:i]
	}
	return filename
}

// extractCleanName strips the extension and every bracketed and parenthetical
// span from a filename, collapsing the leftover whitespace. For conventional
// names, where dots appear only in the extension and inside tags, it is
// idempotent: applying it to its own output is a no-op.
func extractCleanName(filename string) string {
	name := stripExtension(filename)
	name = reBracketSpan.ReplaceAllString(name, " ")
	name = reParenSpan.ReplaceAllString(name, " ")
	name = reMultiSpace.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// extractRawTags scans a filename with a manual state machine and captures
// every bracket and paren span verbatim, in order, whether or not the span is
// semantically recognized. Stray unmatched delimiters and empty spans are
// skipped without error.
func extractRawTags(filename string) RawTags {
	const (
		stateOutside = iota
		stateInParen
		stateInBracket
	)

	tags := RawTags{
		Brackets:    make([]string, 0, 4),
		Parentheses: make([]string, 0, 4),
	}

	state := stateOutside
	tagStart := 0

	for i := 0; i < len(filename); i++ {
		char := filename[i]

		switch state {
		case stateOutside:
			switch char {
			case '(':
				state = stateInParen
				tagStart = i + 1
			case '[':
				state = stateInBracket
				tagStart = i + 1
			}

		case stateInParen:
			if char == ')' {
				if tag := filename[tagStart:i]; tag != "" {
					tags.Parentheses = append(tags.Parentheses, tag)
				}
				state = stateOutside
			}

		case stateInBracket:
			if char == ']' {
				if tag := filename[tagStart:i]; tag != "" {
					tags.Brackets = append(tags.Brackets, tag)
				}
				state = stateOutside
			}
		}
	}

	return tags
}

// parseVersion extracts a version string from tags like (v1.0), (V1.1),
// (v2.0a). Returns "" when absent.
func parseVersion(filename string) string {
	if m := reVersionTag.FindStringSubmatch(filename); m != nil {
		return m[1]
	}
	return ""
}

// parseRevision extracts a revision string from tags like (Rev 1), (Rev A),
// (REV 2). Returns "" when absent.
func parseRevision(filename string) string {
	if m := reRevisionTag.FindStringSubmatch(filename); m != nil {
		return m[1]
	}
	return ""
}
