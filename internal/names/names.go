// Package names builds pronounceable names for generated places.
package names

import (
	"fmt"
	"strings"

	"cosmos-server/internal/random"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	onsets = []string{
		"", "b", "br", "c", "ch", "d", "dr", "f", "g", "gl", "h", "k", "kr", "l", "m",
		"n", "p", "ph", "qu", "r", "s", "sh", "st", "t", "th", "tr", "v", "vr", "x", "z",
	}
	nuclei = []string{"a", "e", "i", "o", "u", "ae", "ai", "au", "ei", "io", "ou", "y"}
	codas  = []string{"", "", "", "n", "r", "s", "l", "th", "x", "m", "nd", "rk"}
)

// sectorNames label level-0 sectors in index order.
var sectorNames = []string{
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta",
	"Iota", "Kappa", "Lambda", "Mu", "Nu", "Xi", "Omicron", "Pi",
	"Rho", "Sigma", "Tau", "Upsilon", "Phi", "Chi", "Psi", "Omega",
	"Prime", "Core", "Frontier", "Outer", "Inner", "Central", "Remote",
	"Azure", "Crimson", "Golden", "Silver", "Emerald", "Violet", "Amber",
}

var systemNames = []string{
	"Altair", "Vega", "Sirius", "Arcturus", "Capella", "Rigel", "Procyon",
	"Betelgeuse", "Aldebaran", "Spica", "Antares", "Pollux", "Fomalhaut",
	"Deneb", "Regulus", "Adhara", "Castor", "Gacrux", "Bellatrix", "Elnath",
	"Miaplacidus", "Alnilam", "Alnair", "Alioth", "Dubhe", "Mirfak", "Wezen",
	"Sargas", "Kaus", "Avior", "Menkalinan", "Atria", "Alhena", "Peacock",
	"Alsephina", "Mirzam", "Polaris", "Alphard", "Hamal", "Algieba", "Diphda",
	"Mizar", "Nunki", "Menkent", "Mirach", "Alpheratz", "Rasalhague", "Kochab",
	"Saiph", "Zubenelgenubi", "Enif", "Schedar", "Markab", "Unukalhai", "Tau",
}

// Word strings syllables together and title-cases the result.
func Word(s *random.Stream, syllables int) string {
	var b strings.Builder
	for range syllables {
		b.WriteString(random.Pick(s, onsets))
		b.WriteString(random.Pick(s, nuclei))
		b.WriteString(random.Pick(s, codas))
	}
	// A Caser keeps state, so each call gets its own.
	return cases.Title(language.English).String(b.String())
}

func Galaxy(s *random.Stream) string {
	return Word(s, s.IntRange(2, 3))
}

// System either borrows a catalogue name with a number or makes one up.
func System(s *random.Stream) string {
	if s.Chance(0.25) {
		return fmt.Sprintf("%s %d", random.Pick(s, systemNames), s.IntRange(2, 999))
	}
	return Word(s, s.IntRange(2, 3))
}

// Sector names the sector at ordinal, cycling through the list and adding a
// number once it wraps.
func Sector(ordinal int) string {
	name := sectorNames[ordinal%len(sectorNames)]
	if round := ordinal / len(sectorNames); round > 0 {
		return fmt.Sprintf("%s %d", name, round+1)
	}
	return name
}

// SubSector appends a 1-based child number to the parent's name.
func SubSector(parent string, child int) string {
	return fmt.Sprintf("%s-%d", parent, child+1)
}
