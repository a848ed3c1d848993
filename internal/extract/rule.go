// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
)

// Rule is one extraction strategy. It returns the captured value and
// whether it matched. A match with a blank capture counts as a miss.
type Rule func(text string) (string, bool)

// Apply runs the rule and returns "" on a miss.
func (r Rule) Apply(text string) string {
	if v, ok := r(text); ok {
		return v
	}
	return ""
}

// FirstOf composes rules left to right; the first rule that matches wins.
func FirstOf(rules ...Rule) Rule {
	return func(text string) (string, bool) {
		for _, r := range rules {
			if v, ok := r(text); ok {
				return v, true
			}
		}
		return "", false
	}
}

// Map post-processes a rule's capture. A blank result becomes a miss so
// that a following strategy can still run.
func (r Rule) Map(fn func(string) string) Rule {
	return func(text string) (string, bool) {
		v, ok := r(text)
		if !ok {
			return "", false
		}
		v = strings.TrimSpace(fn(v))
		return v, v != ""
	}
}

// Pattern returns a rule yielding the first submatch of re (or the whole
// match when re has no groups).
func Pattern(re *regexp.Regexp) Rule {
	return func(text string) (string, bool) {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return "", false
		}
		v := m[0]
		if len(m) > 1 {
			v = m[1]
		}
		v = strings.TrimSpace(v)
		return v, v != ""
	}
}

// Labeled captures what follows a case-insensitive label, optionally
// followed by ":", "=", "." or "-". Without a unit the capture runs to the
// end of the line; with a unit it stops before the unit suffix.
func Labeled(label, unit string) Rule {
	head := `(?im)\b(?:` + label + `)\b\.?[ ]*[:=\-]?[ ]*`
	if unit == "" {
		return Pattern(regexp.MustCompile(head + `([^\n]*)$`))
	}
	return Pattern(regexp.MustCompile(head + `([^\n]*?)[ ]*(?:` + unit + `)\b`))
}

// LineLabeled captures the rest of the line after a label that starts the
// line (bullets allowed), so the label word inside narrative is ignored.
func LineLabeled(label string) Rule {
	return Pattern(regexp.MustCompile(`(?im)^[ \-•*]*(?:` + label + `)\b\.?[ ]*[:=\-]?[ ]*([^\n]*)$`))
}

// locator finds a label in text and returns the [start, end) offsets of the
// first acceptable match, or nil.
type locator func(text string) []int

// at locates the first match of pattern.
func at(pattern string) locator {
	re := regexp.MustCompile(pattern)
	return func(text string) []int {
		return re.FindStringIndex(text)
	}
}

// vitalValue is the shape of a vital-sign reading: two or three digits,
// an optional decimal, then a unit, a separator, or the end of the line.
var vitalValue = regexp.MustCompile(`^[ ]*\d{2,3}(?:[.,]\d+)?[ ]*(?:x|°|C\b|mmHg|%|,|;|\n|$)`)

// sectionAt locates the first match of pattern that opens a section.
// Single-letter section labels collide with vital-sign labels inside an
// exam line ("S: 36.5", "P: 20 x/m"), so a label in the middle of a line
// followed by a vital-shaped value is skipped. A label that starts a line
// always opens a section.
func sectionAt(pattern string) locator {
	re := regexp.MustCompile(pattern)
	return func(text string) []int {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if startsLine(text, loc[0]) || !vitalValue.MatchString(text[loc[1]:]) {
				return loc
			}
		}
		return nil
	}
}

// startsLine reports whether the match starting at i begins a line. The
// match may include the whitespace before the label.
func startsLine(text string, i int) bool {
	for i < len(text) && text[i] == ' ' {
		i++
	}
	if i < len(text) && text[i] == '\n' {
		return true
	}
	j := i
	for j > 0 && text[j-1] == ' ' {
		j--
	}
	return j == 0 || text[j-1] == '\n'
}

// earliest returns the smallest start offset among the ends found in text,
// or len(text) when none is found.
func earliest(text string, ends []locator) int {
	cut := len(text)
	for _, end := range ends {
		if loc := end(text); loc != nil && loc[0] < cut {
			cut = loc[0]
		}
	}
	return cut
}

// Block captures everything between the end of the start label and the
// start of the nearest end label (or the end of the text), across lines.
func Block(start locator, ends ...locator) Rule {
	return func(text string) (string, bool) {
		loc := start(text)
		if loc == nil {
			return "", false
		}
		rest := text[loc[1]:]
		v := strings.TrimSpace(rest[:earliest(rest, ends)])
		return v, v != ""
	}
}

// Prefix captures the text before the nearest end label. It is the fallback
// for unlabeled leading content of a section.
func Prefix(ends ...locator) Rule {
	return func(text string) (string, bool) {
		v := strings.TrimSpace(text[:earliest(text, ends)])
		return v, v != ""
	}
}
