// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textutil holds the small text helpers shared by the extractor and
// the renderer: whitespace and bullet normalization, case-insensitive
// de-duplication, safe substrings, and Indonesian date formatting.
package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reNBSP       = regexp.MustCompile(`[\x{00a0}\x{2007}\x{202f}]`)
	reZeroWidth  = regexp.MustCompile(`[\x{200b}\x{200c}\x{200d}\x{feff}]`)
)

// bulletPrefix matches list markers at the start of a line: glyph bullets
// and "1." / "1)" numbering followed by a space.
var bulletPrefix = regexp.MustCompile(`^\s*(?:[-–—•·*▪►→>✓✔]+|\d{1,2}[.)](?:\s|$))\s*`)

// Normalize cleans pasted text before pattern matching. Line breaks are
// kept; everything else is collapsed to single spaces and trailing spaces
// are removed.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = norm.NFC.String(s)
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reZeroWidth.ReplaceAllString(s, "")
	s = reNBSP.ReplaceAllString(s, " ")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.Join(lines, "\n")
}

// StripBullet removes a leading list marker and surrounding spaces.
func StripBullet(line string) string {
	return strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
}

// NonEmptyLines splits s on newlines and returns the trimmed, non-blank lines.
func NonEmptyLines(s string) []string {
	out := []string{}
	for _, line := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// FoldKey returns the case-folded, trimmed comparison key for s.
func FoldKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// DedupeFold trims every entry, drops blanks, and keeps only the first
// occurrence of entries that are equal under case folding. The result is
// never nil.
func DedupeFold(lines []string) []string {
	out := make([]string, 0, len(lines))
	seen := make(map[string]bool, len(lines))
	for _, l := range lines {
		k := FoldKey(l)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, strings.TrimSpace(l))
	}
	return out
}

// Substring returns s[start:end] for byte offsets such as regexp match
// indices. Both bounds are clamped to the string and moved back to the start
// of the rune they fall in, so the result is never split mid-rune. It never
// panics.
func Substring(s string, start, end int) string {
	start, end = runeStart(s, start), runeStart(s, end)
	if start >= end {
		return ""
	}
	return s[start:end]
}

func runeStart(s string, i int) int {
	if i <= 0 {
		return 0
	}
	if i >= len(s) {
		return len(s)
	}
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

// residentSplit separates names in free resident input.
var residentSplit = regexp.MustCompile(`(?i)\n|,|;|\s&\s|\sdan\s`)

// JoinResidents normalizes free resident input (one per line, comma or
// semicolon separated, bulleted or numbered) into a single comma-joined line.
func JoinResidents(s string) string {
	var names []string
	for _, part := range residentSplit.Split(Normalize(s), -1) {
		if name := StripBullet(part); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(DedupeFold(names), ", ")
}
