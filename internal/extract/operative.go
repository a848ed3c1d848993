// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/soap-preop/internal/textutil"
)

var (
	proToken    = regexp.MustCompile(`(?i)\bpro\b\.?[ ]*:?`)
	dalamToken  = regexp.MustCompile(`(?i)\bdalam\b`)
	boilerplate = regexp.MustCompile(`(?i)[ ,]*(?:\bmenunggu\s+penjadwalan\b|\bpada\s+hari\b|\bpukul\b|\bjam\b|\bdi\b).*$`)
)

// ProcedureAndAnesthesia mines the operative line of a note. It takes the
// last line of the plan section that contains the token "Pro" (later
// restatements supersede earlier ones), splits it at "dalam" into procedure
// and anesthesia, and strips scheduling boilerplate from both. Without a plan
// section the whole text is searched. Both values are empty when no line
// matches.
func ProcedureAndAnesthesia(raw string) (procedure, anesthesia string) {
	return procedureAndAnesthesia(textutil.Normalize(raw))
}

func procedureAndAnesthesia(text string) (string, string) {
	scope := FirstOf(planRule, Prefix()).Apply(text)
	lines := strings.Split(scope, "\n")

	for i := len(lines) - 1; i >= 0; i-- {
		loc := proToken.FindStringIndex(lines[i])
		if loc == nil {
			continue
		}
		rest := textutil.Substring(lines[i], loc[1], len(lines[i]))

		var procedure, anesthesia string
		if d := dalamToken.FindStringIndex(rest); d != nil {
			procedure = textutil.Substring(rest, 0, d[0])
			anesthesia = textutil.Substring(rest, d[1], len(rest))
		} else {
			procedure = rest
		}
		return cleanOperative(procedure), cleanOperative(anesthesia)
	}
	return "", ""
}

// cleanOperative removes trailing scheduling phrases ("menunggu penjadwalan",
// "pada hari …", "Pukul …", "di …") and stray punctuation.
func cleanOperative(s string) string {
	s = boilerplate.ReplaceAllString(s, "")
	return strings.Trim(strings.TrimSpace(s), ".,;:- ")
}
