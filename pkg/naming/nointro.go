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
	"strconv"
	"strings"
)

// No-Intro convention reference:
// https://wiki.no-intro.org/index.php?title=Naming_Convention

var (
	reNIProto     = regexp.MustCompile(`\(Proto(?:\s+(\d+))?\)`)
	reNIBeta      = regexp.MustCompile(`\(Beta(?:\s+(\d+))?\)`)
	reNIDemo      = regexp.MustCompile(`\(Demo(?:\s+(\d+))?\)`)
	reNISample    = regexp.MustCompile(`\(Sample\)`)
	reNIAlpha     = regexp.MustCompile(`\(Alpha\)`)
	reNIAlt       = regexp.MustCompile(`\(Alt(?:\s+(\d+))?\)`)
	reNIUnl       = regexp.MustCompile(`\(Unl\)`)
	reNIPromo     = regexp.MustCompile(`\(Promo\)`)
	reNINFS       = regexp.MustCompile(`\(NFS\)`)
	reNIDiscLabel = regexp.MustCompile(`\((Dis[ck]\s+[^)]+)\)`)
	reNISideLabel = regexp.MustCompile(`\((Side\s+[A-Z])\)`)
	reNIParenTag  = regexp.MustCompile(`\(([^)]+)\)`)

	// TOSEC lookalike checks, used to reject filenames that carry TOSEC
	// dates or dump flag runs.
	reTOSECDate  = regexp.MustCompile(`\((?:\d{4}|\d{2}xx)(?:-\d{2})?(?:-\d{2})?\)`)
	reTOSECFlags = regexp.MustCompile(`\[(cr|f|h|m|p|t|tr|o|u|v|b|a|!)\]`)
)

// niSignatureTags are tag patterns, beyond full region names, that mark a
// filename as No-Intro.
var niSignatureTags = []*regexp.Regexp{
	reNIProto, reNIBeta, reNIDemo, reNISample,
	reNINFS, reNIPromo, reNIUnl, reNIAlt,
}

// niMediaTypes are the media type words No-Intro uses in parens.
var niMediaTypes = []string{"CD", "DVD", "UMD", "Cart", "Disk", "Tape", "Card"}

// niRegions are the full region names recognized in No-Intro filenames.
// Parenthetical groups are scanned in order so discovered regions keep their
// first-seen order regardless of table order.
var niRegions = []string{
	"USA", "Europe", "Japan", "World", "Asia", "Australia", "Germany",
	"France", "Spain", "Italy", "Netherlands", "Brazil", "Korea", "China",
	"Russia", "Canada", "United Kingdom", "Sweden", "Denmark", "Finland",
}

// NoIntro parses ROM filenames following the No-Intro naming convention.
type NoIntro struct {
	platform string
}

// NewNoIntro creates a No-Intro parser with an optional platform hint.
func NewNoIntro(platform string) *NoIntro {
	return &NoIntro{platform: platform}
}

// FormatName implements Parser.
func (*NoIntro) FormatName() string {
	return "No-Intro"
}

// Platform implements PlatformScoped.
func (p *NoIntro) Platform() string {
	return p.platform
}

// CanParse reports whether the filename looks like No-Intro: a leading [BIOS]
// flag, a full region name in parens (unless the filename also looks like
// TOSEC), or one of the No-Intro status tags.
func (*NoIntro) CanParse(filename string) bool {
	if strings.HasPrefix(filename, "[BIOS]") {
		return true
	}

	if hasFullRegionName(filename) && !looksLikeTOSEC(filename) {
		return true
	}

	for _, re := range niSignatureTags {
		if re.MatchString(filename) {
			return true
		}
	}

	return false
}

// hasFullRegionName scans parenthetical groups, including comma-separated
// lists like (USA, Europe), for a known full region name.
func hasFullRegionName(filename string) bool {
	for _, group := range reNIParenTag.FindAllStringSubmatch(filename, -1) {
		for _, part := range strings.Split(group[1], ",") {
			part = strings.TrimSpace(part)
			for _, region := range niRegions {
				if part == region {
					return true
				}
			}
		}
	}
	return false
}

func looksLikeTOSEC(filename string) bool {
	return reTOSECDate.MatchString(filename) || reTOSECFlags.MatchString(filename)
}

// Parse implements Parser.
func (p *NoIntro) Parse(filename string) *Metadata {
	m := newMetadata(filename)

	name := filename
	if strings.HasPrefix(name, "[BIOS]") {
		m.IsBIOS = true
		name = strings.TrimSpace(name[len("[BIOS]"):])
	}

	m.CleanName = p.extractCleanName(name)
	m.Regions = p.parseRegions(name)
	m.Languages = p.parseLanguages(name)
	m.Version = parseVersion(name)
	m.Revision = parseRevision(name)
	m.ReleaseStatus, m.ReleaseNumber = p.parseReleaseStatus(name)

	if reNIUnl.MatchString(name) {
		m.CopyrightStatus = CopyrightUnlicensed
	}
	if reNIPromo.MatchString(name) {
		m.Extra["promo"] = true
	}
	if reNINFS.MatchString(name) {
		m.Extra["nfs"] = true
	}

	if alt := reNIAlt.FindStringSubmatch(name); alt != nil {
		if alt[1] != "" {
			m.AltVersion = "Alt " + alt[1]
		} else {
			m.AltVersion = "Alt"
		}
	}

	for _, media := range niMediaTypes {
		if strings.Contains(name, "("+media+")") {
			m.MediaType = media
			break
		}
	}

	if disc := reNIDiscLabel.FindStringSubmatch(name); disc != nil {
		m.MediaLabel = disc[1]
	} else if side := reNISideLabel.FindStringSubmatch(name); side != nil {
		m.MediaLabel = side[1]
	}

	m.DumpQuality = p.parseDumpQuality(name)
	m.RawTags = extractRawTags(name)

	return m
}

// extractCleanName cuts everything from the first parenthesis onward: in
// No-Intro the title always precedes the first tag.
func (*NoIntro) extractCleanName(filename string) string {
	name := stripExtension(filename)
	name = reBracketSpan.ReplaceAllString(name, " ")
	if i := strings.IndexByte(name, '('); i != -1 {
		name = name[:i]
	}
	name = reMultiSpace.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// parseRegions scans parenthetical groups in order and resolves full region
// names, including comma-separated lists like (USA, Europe). Duplicates are
// suppressed and first-seen order is kept.
func (*NoIntro) parseRegions(filename string) []string {
	regions := []string{}
	seen := map[string]struct{}{}

	for _, group := range reNIParenTag.FindAllStringSubmatch(filename, -1) {
		for _, part := range strings.Split(group[1], ",") {
			part = strings.TrimSpace(part)
			if len(part) <= 2 {
				// Short codes are never regions in No-Intro; full names only.
				continue
			}
			region, ok := NormalizeRegion(part)
			if !ok {
				continue
			}
			if _, dup := seen[region]; !dup {
				regions = append(regions, region)
				seen[region] = struct{}{}
			}
		}
	}

	return regions
}

// parseLanguages finds parenthetical groups made up entirely of two-letter
// ISO codes with No-Intro capitalization (En, Fr), either alone or
// comma-separated.
func (*NoIntro) parseLanguages(filename string) []string {
	languages := []string{}
	seen := map[string]struct{}{}

	add := func(code string) {
		name, ok := NormalizeLanguage(code)
		if !ok {
			return
		}
		if _, dup := seen[name]; !dup {
			languages = append(languages, name)
			seen[name] = struct{}{}
		}
	}

	for _, group := range reNIParenTag.FindAllStringSubmatch(filename, -1) {
		parts := strings.Split(group[1], ",")
		all := true
		for i, part := range parts {
			parts[i] = strings.TrimSpace(part)
			if !isNILangCode(parts[i]) {
				all = false
				break
			}
		}
		if !all {
			continue
		}
		for _, code := range parts {
			add(code)
		}
	}

	return languages
}

// isNILangCode reports whether s is a two-letter code with an uppercase first
// letter and lowercase second letter, the No-Intro language code shape.
func isNILangCode(s string) bool {
	return len(s) == 2 &&
		s[0] >= 'A' && s[0] <= 'Z' &&
		s[1] >= 'a' && s[1] <= 'z'
}

// parseReleaseStatus returns the development status and, for numbered
// releases like (Beta 2), the release number.
func (*NoIntro) parseReleaseStatus(filename string) (ReleaseStatus, int) {
	if proto := reNIProto.FindStringSubmatch(filename); proto != nil {
		return ReleasePrototype, atoiOrZero(proto[1])
	}
	if beta := reNIBeta.FindStringSubmatch(filename); beta != nil {
		return ReleaseBeta, atoiOrZero(beta[1])
	}
	if demo := reNIDemo.FindStringSubmatch(filename); demo != nil {
		return ReleaseDemo, atoiOrZero(demo[1])
	}
	if reNISample.MatchString(filename) {
		return ReleaseSample, 0
	}
	if reNIAlpha.MatchString(filename) {
		return ReleaseAlpha, 0
	}
	return ReleaseFinal, 0
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// parseDumpQuality checks the simple No-Intro bracket status indicators.
// No-Intro assumes a good dump when no status tag is present.
func (*NoIntro) parseDumpQuality(filename string) DumpQuality {
	checks := []struct {
		tag     string
		quality DumpQuality
	}{
		{"[b]", DumpBad},
		{"[o]", DumpOverdump},
		{"[u]", DumpUnderdump},
		{"[cr]", DumpCracked},
		{"[f]", DumpFixed},
		{"[h]", DumpHacked},
		{"[m]", DumpModified},
		{"[p]", DumpPirated},
		{"[t]", DumpTrained},
		{"[tr]", DumpTranslated},
	}
	for _, check := range checks {
		if strings.Contains(filename, check.tag) {
			return check.quality
		}
	}
	return DumpGood
}
