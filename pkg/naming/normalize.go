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

import "strings"

// ToMap flattens a metadata record into a generic key/value mapping for
// external consumption. Enum fields at their default are omitted. Regions and
// languages appear twice: the full ordered list under the plural key, and a
// display string under the singular key (the sole element, or the
// comma-joined list). Consumers depend on both shapes.
//
// Special feature flags and convention extras are merged flat into the top
// level; their keys are disjoint by construction, with last writer winning on
// a collision.
func ToMap(m *Metadata) map[string]any {
	result := map[string]any{
		"clean_name": m.CleanName,
	}

	if m.DumpQuality != DumpUnknown {
		result["dump_quality"] = string(m.DumpQuality)
	}
	if m.ROMType != ROMTypeOriginal {
		result["rom_type"] = string(m.ROMType)
	}
	if m.ReleaseStatus != ReleaseFinal {
		result["release_status"] = string(m.ReleaseStatus)
	}
	if m.ReleaseNumber != 0 {
		result["release_number"] = m.ReleaseNumber
	}
	if m.CopyrightStatus != CopyrightCommercial {
		result["copyright_status"] = string(m.CopyrightStatus)
	}

	if len(m.Regions) > 0 {
		result["regions"] = m.Regions
		result["region"] = displayString(m.Regions)
	}
	if len(m.Languages) > 0 {
		result["languages"] = m.Languages
		result["language"] = displayString(m.Languages)
	}

	if m.Version != "" {
		result["version"] = m.Version
	}
	if m.Revision != "" {
		result["revision"] = m.Revision
	}

	if m.MediaType != "" {
		result["media_type"] = m.MediaType
	}
	if m.MediaLabel != "" {
		result["media_label"] = m.MediaLabel
	}

	if m.IsBIOS {
		result["is_bios"] = true
	}
	if m.IsMulticart {
		result["is_multicart"] = true
	}
	if m.AltVersion != "" {
		result["alt_version"] = m.AltVersion
	}

	if m.ROMType == ROMTypeTranslation {
		if m.TranslationLanguage != "" {
			result["translation_language"] = m.TranslationLanguage
		}
		if m.TranslationVersion != "" {
			result["translation_version"] = m.TranslationVersion
		}
		if m.TranslationAuthor != "" {
			result["translation_author"] = m.TranslationAuthor
		}
		result["is_old_translation"] = m.IsOldTranslation
	}

	for key, value := range m.SpecialFeatures {
		result[key] = value
	}
	for key, value := range m.Extra {
		result[key] = value
	}

	return result
}

// displayString renders an ordered name list as a single display value: the
// sole element when there is one, otherwise the comma-joined list.
func displayString(names []string) string {
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names, ", ")
}
