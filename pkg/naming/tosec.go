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

// TOSEC convention reference:
// https://www.tosecdev.org/tosec-naming-convention
//
// Canonical TOSEC shape:
//
//	Title v1 (demo) (date)(publisher)(system)(video)(country)(language)
//	(copyright)(devstatus)(media type)(media label)[dump flags][more info]

var (
	reTODateGroup = regexp.MustCompile(`^(?:\d{4}|\d{2}xx)(?:-\d{2})?(?:-\d{2})?$`)
	reTOCopyright = regexp.MustCompile(`\((PD|SW|SW-R|FW|CW|LW|GW)\)`)
	reTOTitle     = regexp.MustCompile(`^([^(\[]+?)(?:\s+v[\d.]+)?\s*(?:\(|$)`)
	reTOVersion   = regexp.MustCompile(`\s+v([\d.]+[a-zA-Z]*)\s*(?:\(|$)`)
	reTOFixed     = regexp.MustCompile(`\[f\d*\]`)
	reTOHacked    = regexp.MustCompile(`\[h\d*\]`)
	reTOTrained   = regexp.MustCompile(`\[t\d*\]`)
	reTOBad       = regexp.MustCompile(`\[b\d*\]`)
	reTOAlternate = regexp.MustCompile(`\[a\d*\]`)
	reTOMoreInfo  = regexp.MustCompile(`(?i)\[([^\]]*more info[^\]]*)\]`)
	reTOMultiLang = regexp.MustCompile(`^[Mm]\d$`)
	reTOLangPart  = regexp.MustCompile(`^[a-z]{2}$`)
)

// toDevStatuses maps TOSEC development status words to release statuses.
var toDevStatuses = map[string]ReleaseStatus{
	"demo":           ReleaseDemo,
	"demo-kiosk":     ReleaseDemoKiosk,
	"demo-playable":  ReleaseDemoPlayable,
	"demo-rolling":   ReleaseDemoRolling,
	"demo-slideshow": ReleaseDemoSlideshow,
	"alpha":          ReleaseAlpha,
	"beta":           ReleaseBeta,
	"preview":        ReleasePreview,
	"proto":          ReleasePrototype,
}

// toCopyrights maps TOSEC copyright status codes to copyright statuses.
var toCopyrights = map[string]CopyrightStatus{
	"PD":   CopyrightPublicDomain,
	"SW":   CopyrightShareware,
	"SW-R": CopyrightSharewareReg,
	"FW":   CopyrightFreeware,
	"CW":   CopyrightCardware,
	"LW":   CopyrightLicenseware,
	"GW":   CopyrightGiftware,
}

var toVideoStandards = []string{"NTSC", "PAL", "SECAM", "NTSC-PAL"}

var toMediaWords = []string{"Disk", "Disc", "File", "Tape", "Part", "Side"}

// TOSEC parses ROM filenames following The Old School Emulation Center
// naming convention.
type TOSEC struct {
	platform string
}

// NewTOSEC creates a TOSEC parser with an optional platform hint.
func NewTOSEC(platform string) *TOSEC {
	return &TOSEC{platform: platform}
}

// FormatName implements Parser.
func (*TOSEC) FormatName() string {
	return "TOSEC"
}

// Platform implements PlatformScoped.
func (p *TOSEC) Platform() string {
	return p.platform
}

// CanParse reports whether the filename carries TOSEC markers: a date group
// like (1994) or (19xx-MM-DD), single-letter dump flag runs, or a TOSEC
// copyright status code.
func (*TOSEC) CanParse(filename string) bool {
	name := stripExtension(filename)
	if reTOSECDate.MatchString(name) {
		return true
	}
	if reTOSECFlags.MatchString(name) {
		return true
	}
	return reTOCopyright.MatchString(name)
}

// Parse implements Parser. TOSEC tags are positional, so most extraction
// walks the ordered parenthetical groups rather than matching the whole name.
func (p *TOSEC) Parse(filename string) *Metadata {
	name := stripExtension(filename)

	m := newMetadata(filename)

	if title := reTOTitle.FindStringSubmatch(name); title != nil {
		m.CleanName = strings.TrimSpace(title[1])
	}

	// Version sits in the title area, before the first parenthesis.
	titleArea := name
	if i := strings.IndexByte(name, '('); i != -1 {
		titleArea = name[:i]
	}
	if ver := reTOVersion.FindStringSubmatch(titleArea); ver != nil {
		m.Version = ver[1]
	}

	groups := extractRawTags(name).Parentheses

	date := p.parseDate(groups)
	if date != "" {
		m.Extra["tosec_date"] = date
	}

	publisher := p.parsePublisher(groups, date)
	if publisher != "" {
		m.Extra["publisher"] = publisher
	}

	for _, group := range groups {
		if status, ok := toDevStatuses[group]; ok {
			m.ReleaseStatus = status
		}
	}

	if system := p.parseSystem(groups, publisher); system != "" {
		m.Extra["system"] = system
	}

	for _, group := range groups {
		for _, std := range toVideoStandards {
			if group == std {
				m.Extra["video_standard"] = std
			}
		}
	}

	m.Regions = p.parseCountries(groups)
	m.Languages = p.parseLanguages(groups)

	for _, group := range groups {
		if status, ok := toCopyrights[group]; ok {
			m.CopyrightStatus = status
		}
	}

	p.parseMedia(groups, m)

	m.DumpQuality = p.parseDumpQuality(name)

	if info := reTOMoreInfo.FindStringSubmatch(name); info != nil {
		m.Extra["more_info"] = info[1]
	}

	m.RawTags = extractRawTags(name)

	return m
}

// parseDate finds the mandatory TOSEC date group: full dates like 1994-03-14,
// partial dates like 1994 or 1994-03, and wildcard decades like 19xx.
func (*TOSEC) parseDate(groups []string) string {
	for _, group := range groups {
		if reTODateGroup.MatchString(group) {
			return group
		}
	}
	return ""
}

// parsePublisher returns the group immediately after the date group, which is
// where TOSEC mandates the publisher.
func (*TOSEC) parsePublisher(groups []string, date string) string {
	if date == "" {
		return ""
	}
	for i, group := range groups {
		if group == date && i+1 < len(groups) {
			return groups[i+1]
		}
	}
	return ""
}

// parseSystem guesses the system group by elimination: the first group after
// the publisher that is not a date, video standard, country code, language,
// copyright code, or development status.
func (*TOSEC) parseSystem(groups []string, publisher string) string {
	for _, group := range groups {
		if publisher == "" || group == publisher {
			continue
		}
		if reTODateGroup.MatchString(group) {
			continue
		}
		if group == "NTSC" || group == "PAL" || group == "SECAM" {
			continue
		}
		if _, ok := tosecCountries[strings.ToUpper(group)]; ok {
			continue
		}
		if _, ok := NormalizeLanguage(group); ok {
			continue
		}
		if _, ok := toCopyrights[group]; ok {
			continue
		}
		if _, ok := toDevStatuses[group]; ok {
			continue
		}
		if parts := strings.Split(group, "-"); len(parts) > 1 {
			if allTOSECCountries(parts) || allTOSECLanguages(parts) {
				continue
			}
		}
		return group
	}
	return ""
}

func allTOSECCountries(parts []string) bool {
	for _, part := range parts {
		if _, ok := tosecCountries[part]; !ok {
			return false
		}
	}
	return true
}

func allTOSECLanguages(parts []string) bool {
	for _, part := range parts {
		if !reTOLangPart.MatchString(part) {
			return false
		}
	}
	return true
}

// parseCountries resolves TOSEC 2-letter country codes, including
// dash-joined multi-country groups like (US-EU), normalizing against the
// shared region table where possible. Country codes are uppercase in TOSEC;
// lowercase lookalikes are language codes and must not match here.
func (*TOSEC) parseCountries(groups []string) []string {
	regions := []string{}
	seen := map[string]struct{}{}

	add := func(country string) {
		name, ok := NormalizeRegion(country)
		if !ok {
			name = country
		}
		if _, dup := seen[name]; !dup {
			regions = append(regions, name)
			seen[name] = struct{}{}
		}
	}

	for _, group := range groups {
		if country, ok := tosecCountries[group]; ok {
			add(country)
			continue
		}
		if parts := strings.Split(group, "-"); len(parts) > 1 && allTOSECCountries(parts) {
			for _, part := range parts {
				add(tosecCountries[part])
			}
		}
	}

	return regions
}

// parseLanguages resolves TOSEC language groups: 2-letter lowercase codes,
// multi-language shorthand (M2-M9), and dash-joined lists like (en-de-fr).
func (*TOSEC) parseLanguages(groups []string) []string {
	languages := []string{}
	seen := map[string]struct{}{}

	add := func(name string) {
		if _, dup := seen[name]; !dup {
			languages = append(languages, name)
			seen[name] = struct{}{}
		}
	}

	for _, group := range groups {
		if reTOLangPart.MatchString(group) {
			if name, ok := NormalizeLanguage(group); ok {
				add(name)
			}
			continue
		}
		if reTOMultiLang.MatchString(group) {
			if name, ok := NormalizeLanguage(strings.ToUpper(group)); ok {
				add(name)
			}
			continue
		}
		if parts := strings.Split(group, "-"); len(parts) > 1 && allTOSECLanguages(parts) {
			for _, part := range parts {
				if name, ok := NormalizeLanguage(part); ok {
					add(name)
				}
			}
		}
	}

	return languages
}

// parseMedia extracts the media type word and its label from groups like
// (Disk 1 of 2) or (Side B).
func (*TOSEC) parseMedia(groups []string, m *Metadata) {
	for _, group := range groups {
		for _, word := range toMediaWords {
			if !strings.HasPrefix(group, word) {
				continue
			}
			m.MediaType = word
			if rest := strings.TrimSpace(group[len(word):]); rest != "" {
				m.MediaLabel = rest
			}
		}
	}
}

// parseDumpQuality checks TOSEC dump flags in fixed priority order.
func (*TOSEC) parseDumpQuality(name string) DumpQuality {
	switch {
	case strings.Contains(name, "[cr]"):
		return DumpCracked
	case reTOFixed.MatchString(name):
		return DumpFixed
	case reTOHacked.MatchString(name):
		return DumpHacked
	case strings.Contains(name, "[m]"):
		return DumpModified
	case strings.Contains(name, "[p]"):
		return DumpPirated
	case reTOTrained.MatchString(name):
		return DumpTrained
	case strings.Contains(name, "[tr]"):
		return DumpTranslated
	case strings.Contains(name, "[o]"):
		return DumpOverdump
	case strings.Contains(name, "[u]"):
		return DumpUnderdump
	case strings.Contains(name, "[v]"):
		return DumpVirus
	case reTOBad.MatchString(name):
		return DumpBad
	case reTOAlternate.MatchString(name):
		return DumpAlternate
	case strings.Contains(name, "[!]"):
		return DumpVerified
	default:
		return DumpUnknown
	}
}
