// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/soap-preop/internal/textutil"
)

// labHeading is the synthesized first line of a lab block.
const labHeading = "Lab Darah"

// labKey is one recognized analyte: the display key and the spellings that
// may appear in a pasted report.
type labKey struct {
	key     string
	aliases string
}

// labKeys is checked in this order; output follows it regardless of the
// order of the source report.
var labKeys = []labKey{
	{"WBC", `WBC|Leukosit`},
	{"RBC", `RBC|Eritrosit`},
	{"HGB", `HGB|Hb|Hemoglobin`},
	{"HCT", `HCT|Hematokrit`},
	{"PLT", `PLT|Trombosit`},
	{"CT", `CT`},
	{"BT", `BT`},
	{"aPTT", `aPTT`},
	{"PT", `PT`},
	{"INR", `INR`},
	{"GDS", `GDS`},
	{"HBsAg", `HBsAg`},
	{"Kesan", `Kesan`},
}

var (
	labDate = regexp.MustCompile(`\((\d{1,2}[/.\-]\d{1,2}[/.\-]\d{2,4})\)`)

	// anyLabKey finds the start of the next "key :" pair on a line.
	anyLabKey = regexp.MustCompile(`(?i)\b(?:` + allAliases() + `)\b[ ]*[:=]`)

	labPatterns = compileLabPatterns()
)

func allAliases() string {
	parts := make([]string, 0, len(labKeys))
	for _, k := range labKeys {
		parts = append(parts, k.aliases)
	}
	return strings.Join(parts, "|")
}

func compileLabPatterns() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(labKeys))
	for i, k := range labKeys {
		out[i] = regexp.MustCompile(`(?im)\b(?:` + k.aliases + `)\b[ ]*[:=][ ]*([^\n]*)$`)
	}
	return out
}

// LabItems mines "key : value" pairs for the recognized analytes from an
// arbitrary pasted lab report. The result starts with a heading line
// ("Lab Darah (dd/mm/yyyy)" when a parenthesized date is present) followed by
// one line per found key. It is empty when no key is found.
func LabItems(labText string) []string {
	text := textutil.Normalize(labText)
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	var lines []string
	for i, k := range labKeys {
		v, ok := labValue(labPatterns[i], text)
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s : %s", k.key, v))
	}
	if len(lines) == 0 {
		return []string{}
	}

	heading := labHeading
	if m := labDate.FindStringSubmatch(text); m != nil {
		heading = fmt.Sprintf("%s (%s)", labHeading, m[1])
	}
	return textutil.DedupeFold(append([]string{heading}, lines...))
}

// labValue returns the value after the first occurrence of the key, cut
// before any other key that follows on the same line.
func labValue(re *regexp.Regexp, text string) (string, bool) {
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		v := m[1]
		if loc := anyLabKey.FindStringIndex(v); loc != nil {
			v = v[:loc[0]]
		}
		v = strings.Trim(strings.TrimSpace(v), ",;")
		if v != "" {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}
