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

// GoodTools convention reference:
// https://emulation.gametechwiki.com/index.php/GoodTools

var (
	reGTDumpAny      = regexp.MustCompile(`\[(!|!p|[bofah])\d*\]`)
	reGTVerified     = regexp.MustCompile(`\[!\]`)
	reGTPending      = regexp.MustCompile(`\[!p\]`)
	reGTBad          = regexp.MustCompile(`\[b\d*\]`)
	reGTOverdump     = regexp.MustCompile(`\[o\d*\]`)
	reGTAlternate    = regexp.MustCompile(`\[a\d*\]`)
	reGTFixed        = regexp.MustCompile(`\[f\d*\]`)
	reGTHack         = regexp.MustCompile(`\[h\d*[^\]]*\]`)
	reGTPirate       = regexp.MustCompile(`\[p\d*\]`)
	reGTTrainer      = regexp.MustCompile(`\[t\d*\]`)
	reGTTranslation  = regexp.MustCompile(`\[T([+-])([^\]]*)\]`)
	reGTTransPrefix  = regexp.MustCompile(`\[T[+-]`)
	reGTLetterRegion = regexp.MustCompile(`\(([UJEKAFGISCBWDXYZ]+)\)`)
	reGTMulticart    = regexp.MustCompile(`(?i)\((\d+)-?in-?(\d+)\)`)
	reGTMultiLang    = regexp.MustCompile(`\(M(\d+)\)`)
	reGTMultiWord    = regexp.MustCompile(`(?i)\(Multi(?:-\d+)?\)`)
	reGTBIOS         = regexp.MustCompile(`(?i)\[BIOS\]`)
	reGTUnlicensed   = regexp.MustCompile(`(?i)\(Unl(?:icensed)?\)`)
	reGTPublicDomain = regexp.MustCompile(`\(PD\)`)
	reGTHomebrew     = regexp.MustCompile(`\(Homebrew\)`)
	reGTProto        = regexp.MustCompile(`(?i)\(Proto(?:type)?[^)]*\)`)
	reGTBeta         = regexp.MustCompile(`(?i)\(Beta[^)]*\)`)
	reGTAlpha        = regexp.MustCompile(`(?i)\(Alpha[^)]*\)`)
	reGTDemo         = regexp.MustCompile(`(?i)\(Demo[^)]*\)`)
	reGTSample       = regexp.MustCompile(`(?i)\(Sample[^)]*\)`)
	reGTSGB          = regexp.MustCompile(`(?i)\(SGB Enhanced\)`)
	reGTGBCompat     = regexp.MustCompile(`(?i)\(GB Compatible\)`)
	reGTCGB          = regexp.MustCompile(`(?i)\(CGB[^)]*Enhanced\)`)
	reGTRumble       = regexp.MustCompile(`(?i)\(Rumble[^)]*Version\)`)
	reGTTransLang    = regexp.MustCompile(`^([A-Za-z]{2,3})`)
	reGTTransVer     = regexp.MustCompile(`(\d+(?:\.\d+)*)`)
	reGTTransAuthor  = regexp.MustCompile(`_(.+)$`)

	// Language code lists like (En), (En,Fr), (En+Fr), (En-Fr).
	gtLangListPatterns = []struct {
		sep string
		re  *regexp.Regexp
	}{
		{",", regexp.MustCompile(`\(([A-Z][a-z](?:,[A-Z][a-z])*)\)`)},
		{"+", regexp.MustCompile(`\(([A-Z][a-z](?:\+[A-Z][a-z])*)\)`)},
		{"-", regexp.MustCompile(`\(([A-Z][a-z](?:-[A-Z][a-z])*)\)`)},
	}
)

// gtMultiRegions expands GoodTools multi-region letter codes into canonical
// region name lists, checked before decomposing a code into single letters.
var gtMultiRegions = map[string][]string{
	"JUE": {"Japan", "USA", "Europe"},
	"UE":  {"USA", "Europe"},
	"JU":  {"Japan", "USA"},
}

// gtNumericRegions maps GoodTools numeric region codes to display names.
var gtNumericRegions = map[string]string{
	"1": "Japan & Korea",
	"4": "USA & Brazil NTSC",
	"5": "NTSC",
	"8": "PAL",
}

// noIntroFullRegions are full region names whose presence marks a filename as
// No-Intro rather than GoodTools.
var noIntroFullRegions = []string{
	"USA", "Europe", "Japan", "World", "Asia", "Australia",
	"Germany", "France", "Spain", "Italy", "Netherlands",
}

// GoodTools parses ROM filenames following the GoodTools naming convention.
// The zero value is usable; a platform hint set at construction scopes the
// parser for registry dispatch but does not change parse behavior.
type GoodTools struct {
	platform string
}

// NewGoodTools creates a GoodTools parser with an optional platform hint.
func NewGoodTools(platform string) *GoodTools {
	return &GoodTools{platform: platform}
}

// FormatName implements Parser.
func (*GoodTools) FormatName() string {
	return "GoodTools"
}

// Platform implements PlatformScoped.
func (p *GoodTools) Platform() string {
	return p.platform
}

// CanParse reports whether the filename carries GoodTools markers: dump tags
// like [!] or [b], translation tags [T+]/[T-], single-letter region codes, or
// an N-in-1 multicart tag. Letter region codes alone are not enough when the
// filename also carries full No-Intro region names.
func (*GoodTools) CanParse(filename string) bool {
	if reGTDumpAny.MatchString(filename) {
		return true
	}
	if reGTTransPrefix.MatchString(filename) {
		return true
	}
	if reGTMulticart.MatchString(filename) {
		return true
	}
	if reGTLetterRegion.MatchString(filename) && !looksLikeNoIntro(filename) {
		return true
	}
	return false
}

func looksLikeNoIntro(filename string) bool {
	for _, region := range noIntroFullRegions {
		if strings.Contains(filename, "("+region+")") {
			return true
		}
	}
	return false
}

// Parse implements Parser. It runs the fixed extractor sequence over the
// filename and never fails: unmatched patterns leave fields at their defaults.
func (p *GoodTools) Parse(filename string) *Metadata {
	m := newMetadata(filename)
	m.CleanName = extractCleanName(filename)

	m.DumpQuality = p.parseDumpQuality(filename)
	p.parseROMType(filename, m)
	m.Regions = p.parseRegions(filename)
	m.Languages = p.parseLanguages(filename)
	m.Version = parseVersion(filename)
	m.Revision = parseRevision(filename)
	m.ReleaseStatus = p.parseReleaseStatus(filename)

	switch {
	case reGTUnlicensed.MatchString(filename):
		m.CopyrightStatus = CopyrightUnlicensed
	case reGTPublicDomain.MatchString(filename):
		m.CopyrightStatus = CopyrightPublicDomain
	case reGTHomebrew.MatchString(filename):
		m.CopyrightStatus = CopyrightHomebrew
	}

	if mc := reGTMulticart.FindString(filename); mc != "" {
		m.IsMulticart = true
		m.Extra["multicart"] = strings.Trim(mc, "()")
	}

	if reGTSGB.MatchString(filename) {
		m.SpecialFeatures["sgb_enhanced"] = true
	}
	if reGTGBCompat.MatchString(filename) {
		m.SpecialFeatures["gb_compatible"] = true
	}
	if reGTCGB.MatchString(filename) {
		m.SpecialFeatures["cgb_enhanced"] = true
	}
	if reGTRumble.MatchString(filename) {
		m.SpecialFeatures["rumble_support"] = true
	}

	m.IsBIOS = reGTBIOS.MatchString(filename)
	m.RawTags = extractRawTags(filename)

	return m
}

// parseDumpQuality tests dump tags in a fixed priority order. The order is a
// deliberate tie-break for malformed filenames carrying multiple quality tags:
// a verified [!] always wins over a co-occurring [b].
func (*GoodTools) parseDumpQuality(filename string) DumpQuality {
	switch {
	case reGTVerified.MatchString(filename):
		return DumpVerified
	case reGTPending.MatchString(filename):
		return DumpPending
	case reGTBad.MatchString(filename):
		return DumpBad
	case reGTOverdump.MatchString(filename):
		return DumpOverdump
	case reGTAlternate.MatchString(filename):
		return DumpAlternate
	case reGTFixed.MatchString(filename):
		return DumpFixed
	case reGTHack.MatchString(filename):
		return DumpHacked
	default:
		return DumpUnknown
	}
}

// parseROMType classifies the ROM and, for translations, parses the tag
// interior: language code from the first letters, a dotted version number,
// and an author suffix after an underscore.
func (p *GoodTools) parseROMType(filename string, m *Metadata) {
	if trans := reGTTranslation.FindStringSubmatch(filename); trans != nil {
		m.ROMType = ROMTypeTranslation
		m.IsOldTranslation = trans[1] == "-"

		if details := trans[2]; details != "" {
			if lang := reGTTransLang.FindStringSubmatch(details); lang != nil {
				if name, ok := NormalizeLanguage(lang[1]); ok {
					m.TranslationLanguage = name
				} else {
					m.TranslationLanguage = titleCase(lang[1])
				}
			}
			if ver := reGTTransVer.FindStringSubmatch(details); ver != nil {
				m.TranslationVersion = ver[1]
			}
			if author := reGTTransAuthor.FindStringSubmatch(details); author != nil {
				m.TranslationAuthor = author[1]
			}
		}

		if m.IsOldTranslation {
			m.Extra["translation_type"] = "old"
		} else {
			m.Extra["translation_type"] = "new"
		}
		return
	}

	switch {
	case reGTHack.MatchString(filename):
		m.ROMType = ROMTypeHack
	case reGTPirate.MatchString(filename):
		m.ROMType = ROMTypePirate
	case reGTTrainer.MatchString(filename):
		m.ROMType = ROMTypeTrained
	case reGTHomebrew.MatchString(filename):
		m.ROMType = ROMTypeHomebrew
	}
}

// parseRegions scans GoodTools region codes: multi-letter sets are checked
// against the known multi-region codes before being decomposed into single
// letters, then numeric codes are tested. Found regions are deduplicated in
// first-seen order.
func (*GoodTools) parseRegions(filename string) []string {
	regions := []string{}
	seen := map[string]struct{}{}

	add := func(region string) {
		if _, ok := seen[region]; !ok {
			regions = append(regions, region)
			seen[region] = struct{}{}
		}
	}

	if code := reGTLetterRegion.FindStringSubmatch(filename); code != nil {
		if multi, ok := gtMultiRegions[code[1]]; ok {
			for _, region := range multi {
				add(region)
			}
		} else {
			for _, letter := range strings.Split(code[1], "") {
				if region, ok := NormalizeRegion(letter); ok {
					add(region)
				}
			}
		}
	}

	for _, num := range []string{"1", "4", "5", "8"} {
		if strings.Contains(filename, "("+num+")") {
			add(gtNumericRegions[num])
		}
	}

	return regions
}

// parseLanguages scans language tags. Multi-language shorthand like (M3)
// short-circuits further scanning for the filename; otherwise delimited code
// lists inside parens are normalized and deduplicated in first-seen order.
func (*GoodTools) parseLanguages(filename string) []string {
	languages := []string{}
	seen := map[string]struct{}{}

	if multi := reGTMultiLang.FindStringSubmatch(filename); multi != nil {
		if name, ok := NormalizeLanguage("M" + multi[1]); ok {
			return append(languages, name)
		}
		return append(languages, "Multi-"+multi[1])
	}

	if reGTMultiWord.MatchString(filename) {
		languages = append(languages, "Multi")
		seen["Multi"] = struct{}{}
	}

	for _, pattern := range gtLangListPatterns {
		for _, match := range pattern.re.FindAllStringSubmatch(filename, -1) {
			for _, code := range strings.Split(match[1], pattern.sep) {
				name, ok := NormalizeLanguage(strings.TrimSpace(code))
				if !ok {
					continue
				}
				if _, dup := seen[name]; !dup {
					languages = append(languages, name)
					seen[name] = struct{}{}
				}
			}
		}
	}

	return languages
}

func (*GoodTools) parseReleaseStatus(filename string) ReleaseStatus {
	switch {
	case reGTProto.MatchString(filename):
		return ReleasePrototype
	case reGTBeta.MatchString(filename):
		return ReleaseBeta
	case reGTAlpha.MatchString(filename):
		return ReleaseAlpha
	case reGTDemo.MatchString(filename):
		return ReleaseDemo
	case reGTSample.MatchString(filename):
		return ReleaseSample
	default:
		return ReleaseFinal
	}
}
