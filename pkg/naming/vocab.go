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
	"strings"
	"unicode"
)

// Static tag vocabulary shared by all conventions. All tables are built once
// at package init and never mutated afterwards, so lookups are safe from
// concurrent Parse calls without synchronization.

// regionDef pairs a canonical region name with the code and name variants
// that map to it. Order matters: the first definition claiming a variant wins
// when the reverse index is built.
type regionDef struct {
	Name     string
	Variants []string
}

var regionDefs = []regionDef{
	// Primary regions first so their short codes take precedence.
	{"USA", []string{"US", "U", "USA", "United States"}},
	{"Europe", []string{"EU", "E", "Europe", "EUR"}},
	{"Japan", []string{"JP", "J", "Japan", "JPN"}},
	{"World", []string{"W", "World"}},
	{"Argentina", []string{"AR", "Argentina"}},
	{"Asia", []string{"AS", "Asia"}},
	{"Australia", []string{"AU", "A", "Australia"}},
	{"Austria", []string{"AT", "Austria"}},
	{"Belgium", []string{"BE", "Belgium"}},
	{"Brazil", []string{"BR", "B", "Brazil"}},
	{"Canada", []string{"CA", "Canada"}},
	{"Chile", []string{"CL", "Chile"}},
	{"China", []string{"CN", "C", "China"}},
	{"Colombia", []string{"CO", "Colombia"}},
	{"Czech Republic", []string{"CZ", "Czech", "Czech Republic"}},
	{"Denmark", []string{"DK", "Z", "Denmark"}},
	{"Finland", []string{"FI", "Y", "Finland"}},
	{"France", []string{"FR", "F", "France"}},
	{"Germany", []string{"DE", "G", "Germany"}},
	{"Greece", []string{"GR", "Greece"}},
	{"Hong Kong", []string{"HK", "Hong Kong"}},
	{"Hungary", []string{"HU", "Hungary"}},
	{"India", []string{"IN", "India"}},
	{"Ireland", []string{"IE", "Ireland"}},
	{"Israel", []string{"IL", "Israel"}},
	{"Italy", []string{"IT", "I", "Italy"}},
	{"Korea", []string{"KR", "K", "Korea", "South Korea"}},
	{"Latin America", []string{"Latin America"}},
	{"Mexico", []string{"MX", "Mexico"}},
	{"Netherlands", []string{"NL", "D", "N", "Netherlands", "Dutch"}},
	{"New Zealand", []string{"NZ", "New Zealand"}},
	{"Norway", []string{"NO", "Norway"}},
	{"Poland", []string{"PL", "Poland"}},
	{"Portugal", []string{"PT", "Portugal"}},
	{"Russia", []string{"RU", "Russia"}},
	{"Scandinavia", []string{"Scandinavia"}},
	{"Singapore", []string{"SG", "Singapore"}},
	{"Slovakia", []string{"SK", "Slovakia"}},
	{"South Africa", []string{"ZA", "South Africa"}},
	{"Spain", []string{"ES", "S", "Spain"}},
	{"Sweden", []string{"SE", "X", "Sweden"}},
	{"Switzerland", []string{"CH", "Switzerland"}},
	{"Taiwan", []string{"TW", "Taiwan"}},
	{"Turkey", []string{"TR", "Turkey"}},
	{"United Kingdom", []string{"GB", "UK", "United Kingdom"}},
	{"Ukraine", []string{"UA", "Ukraine"}},
	{"Unknown", []string{"-", "Unknown"}},
}

// regionIndex maps every variant (as written, uppercased, and title-cased) to
// its canonical name. Built once in init.
var regionIndex = buildRegionIndex()

func buildRegionIndex() map[string]string {
	idx := make(map[string]string, len(regionDefs)*3)
	put := func(key, name string) {
		if _, ok := idx[key]; !ok {
			idx[key] = name
		}
	}
	for _, def := range regionDefs {
		for _, v := range def.Variants {
			put(v, def.Name)
			put(strings.ToUpper(v), def.Name)
			put(titleCase(v), def.Name)
		}
	}
	return idx
}

// titleCase capitalizes the first letter of every space-separated word and
// lowercases the rest, matching how region names appear in filenames.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// NormalizeRegion maps a region code or name variant to its canonical name.
// The second return is false when the code is not recognized.
func NormalizeRegion(code string) (string, bool) {
	if name, ok := regionIndex[code]; ok {
		return name, true
	}
	if name, ok := regionIndex[strings.ToUpper(code)]; ok {
		return name, true
	}
	if name, ok := regionIndex[titleCase(code)]; ok {
		return name, true
	}
	return "", false
}

// languageNames maps ISO 639-1 codes (lowercase) to canonical language names.
var languageNames = map[string]string{
	"ar": "Arabic", "bg": "Bulgarian", "ca": "Catalan", "cs": "Czech",
	"cy": "Welsh", "da": "Danish", "de": "German", "el": "Greek",
	"en": "English", "es": "Spanish", "et": "Estonian", "eu": "Basque",
	"fa": "Persian", "fi": "Finnish", "fr": "French", "ga": "Irish",
	"gd": "Gaelic", "he": "Hebrew", "hi": "Hindi", "hr": "Croatian",
	"hu": "Hungarian", "id": "Indonesian", "is": "Icelandic", "it": "Italian",
	"ja": "Japanese", "ko": "Korean", "lt": "Lithuanian", "lv": "Latvian",
	"ms": "Malay", "nl": "Dutch", "no": "Norwegian", "pl": "Polish",
	"pt": "Portuguese", "ro": "Romanian", "ru": "Russian", "sk": "Slovak",
	"sl": "Slovenian", "sq": "Albanian", "sr": "Serbian", "sv": "Swedish",
	"ta": "Tamil", "te": "Telugu", "th": "Thai", "tr": "Turkish",
	"uk": "Ukrainian", "ur": "Urdu", "vi": "Vietnamese", "yi": "Yiddish",
	"zh": "Chinese",
}

// languageNames3 maps 3-letter ROM language codes (as used inside GoodTools
// translation tags) to canonical language names.
var languageNames3 = map[string]string{
	"eng": "English", "ger": "German", "fre": "French", "spa": "Spanish",
	"ita": "Italian", "rus": "Russian", "por": "Portuguese", "dut": "Dutch",
	"swe": "Swedish", "nor": "Norwegian", "fin": "Finnish", "dan": "Danish",
	"pol": "Polish", "cze": "Czech", "gre": "Greek", "hun": "Hungarian",
	"tur": "Turkish", "ara": "Arabic", "heb": "Hebrew", "jpn": "Japanese",
	"kor": "Korean", "chi": "Chinese", "bra": "Portuguese",
}

// multiLanguageNames maps multi-language shorthand codes to display names.
var multiLanguageNames = map[string]string{
	"M2": "Two languages", "M3": "Three languages", "M4": "Four languages",
	"M5": "Five languages", "M6": "Six languages", "M7": "Seven languages",
	"M8": "Eight languages", "M9": "Nine languages",
}

// NormalizeLanguage maps a 2-letter ISO code, 3-letter ROM code, or
// multi-language shorthand (M2-M9) to a canonical language name. The second
// return is false when the code is not recognized.
func NormalizeLanguage(code string) (string, bool) {
	if name, ok := multiLanguageNames[strings.ToUpper(code)]; ok {
		return name, true
	}
	lower := strings.ToLower(code)
	if name, ok := languageNames[lower]; ok {
		return name, true
	}
	if name, ok := languageNames3[lower]; ok {
		return name, true
	}
	return "", false
}

// tosecCountries maps TOSEC 2-letter country codes to country names. TOSEC
// defines more countries than the shared region table, so codes are resolved
// here first and then normalized against the region table where possible.
var tosecCountries = map[string]string{
	"AE": "United Arab Emirates", "AL": "Albania", "AS": "Asia",
	"AT": "Austria", "AU": "Australia", "BA": "Bosnia and Herzegovina",
	"BE": "Belgium", "BG": "Bulgaria", "BR": "Brazil", "CA": "Canada",
	"CH": "Switzerland", "CL": "Chile", "CN": "China",
	"CS": "Serbia and Montenegro", "CY": "Cyprus", "CZ": "Czech Republic",
	"DE": "Germany", "DK": "Denmark", "EE": "Estonia", "EG": "Egypt",
	"ES": "Spain", "EU": "Europe", "FI": "Finland", "FR": "France",
	"GB": "United Kingdom", "GR": "Greece", "HK": "Hong Kong",
	"HR": "Croatia", "HU": "Hungary", "ID": "Indonesia", "IE": "Ireland",
	"IL": "Israel", "IN": "India", "IR": "Iran", "IS": "Iceland",
	"IT": "Italy", "JO": "Jordan", "JP": "Japan", "KR": "South Korea",
	"LT": "Lithuania", "LU": "Luxembourg", "LV": "Latvia", "MN": "Mongolia",
	"MX": "Mexico", "MY": "Malaysia", "NL": "Netherlands", "NO": "Norway",
	"NP": "Nepal", "NZ": "New Zealand", "OM": "Oman", "PE": "Peru",
	"PH": "Philippines", "PL": "Poland", "PT": "Portugal", "QA": "Qatar",
	"RO": "Romania", "RU": "Russia", "SE": "Sweden", "SG": "Singapore",
	"SI": "Slovenia", "SK": "Slovakia", "TH": "Thailand", "TR": "Turkey",
	"TW": "Taiwan", "UA": "Ukraine", "US": "United States",
	"VE": "Venezuela", "YU": "Yugoslavia", "ZA": "South Africa",
	"-": "Unknown",
}

// supportedPlatforms is the set of platform identifiers the engine accepts as
// hints. Membership gates can-parse checks for platform-scoped conventions.
var supportedPlatforms = map[string]struct{}{
	// Nintendo
	"nes": {}, "snes": {}, "n64": {}, "gamecube": {}, "wii": {}, "wiiu": {},
	"switch": {}, "game_boy": {}, "game_boy_color": {}, "game_boy_advance": {},
	"ds": {}, "3ds": {}, "virtual_boy": {}, "pokemon_mini": {},
	// Sega
	"master_system": {}, "sega_genesis": {}, "sega_cd": {}, "sega_32x": {},
	"saturn": {}, "dreamcast": {}, "game_gear": {}, "sg-1000": {},
	"sega_pico": {},
	// Sony
	"playstation": {}, "ps2": {}, "ps3": {}, "ps4": {}, "ps5": {}, "psp": {},
	"ps_vita": {},
	// Microsoft
	"xbox": {}, "xbox_360": {}, "xbox_one": {}, "xbox_series": {},
	// Atari
	"atari_2600": {}, "atari_5200": {}, "atari_7800": {}, "atari_jaguar": {},
	"atari_lynx": {},
	// Other
	"turbografx_16": {}, "pc_engine": {}, "neo_geo": {}, "neo_geo_pocket": {},
	"neo_geo_pocket_color": {}, "wonderswan": {}, "wonderswan_color": {},
	"3do": {}, "amiga": {}, "amstrad_cpc": {}, "commodore_64": {}, "msx": {},
	"msx2": {}, "zx_spectrum": {}, "colecovision": {}, "intellivision": {},
	"odyssey2": {}, "vectrex": {},
}

// KnownPlatform reports whether id is a recognized platform identifier.
// Matching is case-insensitive.
func KnownPlatform(id string) bool {
	_, ok := supportedPlatforms[strings.ToLower(id)]
	return ok
}
