// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// identity is the positional content of the patient identity line:
// name / sex / age / payer / care type / room.
type identity struct {
	honorific string
	name      string
	sex       string
	age       string
	payer     string
	careType  string
	room      string
}

var (
	honorificPrefix = regexp.MustCompile(`(?i)^[ \-•*]*(By\.?[ ]*Ny|Sdri|Sdr|Tn|Ny|Nn|An|By)\.[ ]*`)
	sexPattern      = regexp.MustCompile(`(?i)^(Laki-laki|Laki|Perempuan|Pria|Wanita|L|P)\b`)
	agePattern      = regexp.MustCompile(`(?i)\b\d{1,3}[ ]*(?:tahun|thn|th|bulan|bln|minggu|mgg|hari)\b\.?`)

	// segmentTail marks where an identity segment runs into other content:
	// an RM label or a SOAP section label on the same line.
	segmentTail = regexp.MustCompile(`(?i)[ ]+(?:No\.?[ ]*)?RM\b.*$|[ ]+[SOAP][ ]*:.*$`)
	rmSegment   = regexp.MustCompile(`(?i)^(?:No\.?[ ]*)?RM\b`)
)

// identityLine finds the patient identity line: first a line starting with
// an honorific, then a line with at least three "/"-separated segments that
// contain letters, whose second segment is a sex or which carries an age.
// The second condition keeps lab shorthand ("CT/BT/GDS ...") out.
func identityLine(text string) string {
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		if honorificPrefix.MatchString(line) {
			return strings.TrimSpace(line)
		}
	}
	for _, line := range lines {
		segs := strings.Split(line, "/")
		lettered := 0
		for _, seg := range segs {
			if strings.IndexFunc(seg, unicode.IsLetter) >= 0 {
				lettered++
			}
		}
		if lettered >= 3 && !strings.Contains(segs[0], ":") && looksLikeIdentity(segs) {
			return strings.TrimSpace(line)
		}
	}
	return ""
}

func looksLikeIdentity(segs []string) bool {
	if len(segs) > 1 && sexPattern.MatchString(strings.TrimSpace(segs[1])) {
		return true
	}
	for _, seg := range segs {
		if agePattern.MatchString(seg) {
			return true
		}
	}
	return false
}

// parseIdentity splits the identity line on "/" and assigns the segments
// positionally. Missing trailing segments leave their fields empty.
func parseIdentity(text string) identity {
	var id identity
	line := identityLine(text)
	if line == "" {
		return id
	}

	var segs []string
	for _, raw := range strings.Split(line, "/") {
		seg := strings.TrimSpace(raw)
		if rmSegment.MatchString(seg) {
			continue
		}
		segs = append(segs, strings.TrimSpace(segmentTail.ReplaceAllString(seg, "")))
	}

	slot := func(i int) string {
		if i < len(segs) {
			return segs[i]
		}
		return ""
	}

	id.honorific, id.name = splitHonorific(slot(0))
	id.sex = firstMatchOr(sexPattern, slot(1))
	id.age = firstMatchOr(agePattern, slot(2))
	id.payer = slot(3)
	id.careType = slot(4)
	id.room = slot(5)
	return id
}

// splitHonorific separates "An. Fikri" into ("An.", "Fikri"). A name
// followed by a parenthetical keeps only the part before it.
func splitHonorific(seg string) (string, string) {
	seg = strings.TrimSpace(seg)
	var honorific string
	if loc := honorificPrefix.FindStringSubmatchIndex(seg); loc != nil {
		honorific = normalizeHonorific(seg[loc[2]:loc[3]])
		seg = seg[loc[1]:]
	}
	if i := strings.IndexAny(seg, "(,"); i >= 0 {
		seg = seg[:i]
	}
	return honorific, strings.TrimSpace(seg)
}

// normalizeHonorific renders a prefix in its canonical spelling with a dot.
func normalizeHonorific(h string) string {
	compact := strings.ToLower(strings.Join(strings.Fields(strings.ReplaceAll(h, ".", " ")), " "))
	switch compact {
	case "tn":
		return "Tn."
	case "ny":
		return "Ny."
	case "nn":
		return "Nn."
	case "an":
		return "An."
	case "sdr":
		return "Sdr."
	case "sdri":
		return "Sdri."
	case "by":
		return "By."
	case "by ny", "byny":
		return "By. Ny."
	}
	return h + "."
}

// firstMatchOr returns the first match of re in s, or s itself.
func firstMatchOr(re *regexp.Regexp, s string) string {
	if m := re.FindString(s); m != "" {
		return strings.TrimSpace(m)
	}
	return s
}
