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

// Package naming decodes ROM filenames tagged under community naming
// conventions (GoodTools, No-Intro, TOSEC) into normalized metadata records.
// Parsing is a pure function of the filename text: it never touches the
// filesystem and never fails, an unrecognized filename simply degrades to a
// record full of defaults.
package naming

// DumpQuality represents the technical integrity of a ROM image as declared
// by its dump tags.
type DumpQuality string

const (
	DumpVerified   DumpQuality = "verified"   // [!]
	DumpGood       DumpQuality = "good"       // no tag in No-Intro
	DumpBad        DumpQuality = "bad"        // [b]
	DumpOverdump   DumpQuality = "overdump"   // [o]
	DumpUnderdump  DumpQuality = "underdump"  // [u] in No-Intro/TOSEC
	DumpFixed      DumpQuality = "fixed"      // [f]
	DumpHacked     DumpQuality = "hacked"     // [h]
	DumpModified   DumpQuality = "modified"   // [m] in No-Intro/TOSEC
	DumpCracked    DumpQuality = "cracked"    // [cr] in No-Intro/TOSEC
	DumpPirated    DumpQuality = "pirated"    // [p]
	DumpTrained    DumpQuality = "trained"    // [t]
	DumpTranslated DumpQuality = "translated" // [tr] in No-Intro/TOSEC
	DumpAlternate  DumpQuality = "alternate"  // [a] in GoodTools/TOSEC
	DumpPending    DumpQuality = "pending"    // [!p] in GoodTools
	DumpVirus      DumpQuality = "virus"      // [v] in TOSEC
	DumpUnknown    DumpQuality = "unknown"
)

// ROMType classifies how a ROM relates to its original release. Exactly one
// type applies to a record; translation carries extra sub-fields on Metadata.
type ROMType string

const (
	ROMTypeOriginal    ROMType = "original"
	ROMTypeHack        ROMType = "hack"
	ROMTypeTranslation ROMType = "translation"
	ROMTypePirate      ROMType = "pirate"
	ROMTypeTrained     ROMType = "trained"
	ROMTypeHomebrew    ROMType = "homebrew"
)

// ReleaseStatus represents the development status of a release.
type ReleaseStatus string

const (
	ReleaseFinal         ReleaseStatus = "final"
	ReleaseAlpha         ReleaseStatus = "alpha"
	ReleaseBeta          ReleaseStatus = "beta"
	ReleaseDemo          ReleaseStatus = "demo"
	ReleaseDemoKiosk     ReleaseStatus = "demo-kiosk"
	ReleaseDemoPlayable  ReleaseStatus = "demo-playable"
	ReleaseDemoRolling   ReleaseStatus = "demo-rolling"
	ReleaseDemoSlideshow ReleaseStatus = "demo-slideshow"
	ReleasePreview       ReleaseStatus = "preview"
	ReleasePrototype     ReleaseStatus = "prototype"
	ReleaseSample        ReleaseStatus = "sample"
)

// CopyrightStatus represents the licensing status of a release.
type CopyrightStatus string

const (
	CopyrightCommercial   CopyrightStatus = "commercial"
	CopyrightPublicDomain CopyrightStatus = "pd"
	CopyrightShareware    CopyrightStatus = "shareware"
	CopyrightSharewareReg CopyrightStatus = "shareware-registered"
	CopyrightFreeware     CopyrightStatus = "freeware"
	CopyrightCardware     CopyrightStatus = "cardware"
	CopyrightLicenseware  CopyrightStatus = "licenseware"
	CopyrightGiftware     CopyrightStatus = "giftware"
	CopyrightUnlicensed   CopyrightStatus = "unlicensed"
	CopyrightHomebrew     CopyrightStatus = "homebrew"
)

// RawTags holds every bracketed and parenthetical span found in a filename,
// verbatim and in scan order, whether or not it was semantically recognized.
// This is the audit trail for diagnostics and fallback display.
type RawTags struct {
	Brackets    []string
	Parentheses []string
}

// Metadata is the normalized record extracted from a single filename. One
// record is built per Parse call and is not mutated afterwards.
//
// Regions and Languages contain only canonical names, deduplicated and in
// first-seen order. Translation fields are populated only when ROMType is
// ROMTypeTranslation.
type Metadata struct {
	CleanName        string
	OriginalFilename string

	DumpQuality     DumpQuality
	ROMType         ROMType
	ReleaseStatus   ReleaseStatus
	ReleaseNumber   int // numbered protos/betas/demos, 0 if absent
	CopyrightStatus CopyrightStatus

	Regions   []string
	Languages []string

	Version  string
	Revision string

	MediaType  string // CD, DVD, Cart, Disk, Tape, etc.
	MediaLabel string // Disc 1, Side A, etc.

	IsBIOS      bool
	IsMulticart bool
	AltVersion  string

	TranslationLanguage string
	TranslationVersion  string
	TranslationAuthor   string
	IsOldTranslation    bool // [T-]

	// SpecialFeatures holds platform feature flags such as sgb_enhanced.
	SpecialFeatures map[string]bool

	// Extra holds convention-specific values merged flat into the output map.
	Extra map[string]any

	RawTags RawTags
}

// newMetadata returns a record with every field at its documented default.
func newMetadata(filename string) *Metadata {
	return &Metadata{
		OriginalFilename: filename,
		DumpQuality:      DumpUnknown,
		ROMType:          ROMTypeOriginal,
		ReleaseStatus:    ReleaseFinal,
		CopyrightStatus:  CopyrightCommercial,
		Regions:          []string{},
		Languages:        []string{},
		SpecialFeatures:  map[string]bool{},
		Extra:            map[string]any{},
	}
}

// IsBeta reports whether the release status is beta.
func (m *Metadata) IsBeta() bool { return m.ReleaseStatus == ReleaseBeta }

// IsPrototype reports whether the release status is prototype.
func (m *Metadata) IsPrototype() bool { return m.ReleaseStatus == ReleasePrototype }

// IsDemo reports whether the release status is any demo variant.
func (m *Metadata) IsDemo() bool {
	switch m.ReleaseStatus {
	case ReleaseDemo, ReleaseDemoKiosk, ReleaseDemoPlayable,
		ReleaseDemoRolling, ReleaseDemoSlideshow:
		return true
	default:
		return false
	}
}

// IsAlpha reports whether the release status is alpha.
func (m *Metadata) IsAlpha() bool { return m.ReleaseStatus == ReleaseAlpha }

// IsSample reports whether the release status is sample.
func (m *Metadata) IsSample() bool { return m.ReleaseStatus == ReleaseSample }

// IsUnlicensed reports whether the copyright status is unlicensed.
func (m *Metadata) IsUnlicensed() bool { return m.CopyrightStatus == CopyrightUnlicensed }

// Parser is implemented once per supported naming convention.
//
// CanParse is a fast, conservative acceptance test and must not panic on any
// input. Parse is total: it always returns a fully populated record, with
// defaults for anything that did not match. FormatName identifies the
// convention for provenance tagging of results.
type Parser interface {
	CanParse(filename string) bool
	Parse(filename string) *Metadata
	FormatName() string
}

// PlatformScoped is optionally implemented by parsers constructed with a
// platform hint. The registry uses it to skip parsers whose tag vocabulary is
// scoped to a different platform than the caller's hint.
type PlatformScoped interface {
	Platform() string
}
