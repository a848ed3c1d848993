// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
)

// SOAP section labels. The single letters are matched case-sensitively and
// must start a line or follow whitespace.
var (
	labelS = sectionAt(`(?m)(?:^|\s)S[ ]*:`)
	labelO = sectionAt(`(?m)(?:^|\s)O[ ]*:`)
	labelA = sectionAt(`(?m)(?:^|\s)A[ ]*:`)
	labelP = sectionAt(`(?m)(?:^|\s)P[ ]*:`)

	labelResident  = at(`(?im)^[ ]*Residen\w*\b`)
	labelAttending = at(`(?im)^[ ]*DPJP\b`)
	labelClosing   = at(`(?im)^[ ]*(?:Mohon\b|Terima\s+kasih\b|Demikian\b)`)

	labelGeneral    = at(`(?im)^[ \-•*]*Status\s+Generalis\b[ ]*[:\-]?`)
	labelLocal      = at(`(?im)^[ \-•*]*Status\s+Lokalis\b[ ]*[:\-]?`)
	labelExtraoral  = at(`(?im)(?:^|\s)(?:E\.?O|Ekstra[ ]?oral)\b[ ]*[:\-]`)
	labelIntraoral  = at(`(?im)(?:^|\s)(?:I\.?O|Intra[ ]?oral)\b[ ]*[:\-]`)
	labelSupporting = at(`(?im)^[ \-•*]*(?:Pemeriksaan\s+)?Penunjang\b[ ]*[:\-]?`)
)

var (
	subjectiveRule = Block(labelS, labelO, labelA, labelP)
	objectiveRule  = Block(labelO, labelA, labelP)
	assessmentRule = Block(labelA, labelP, labelResident, labelAttending, labelClosing)
	planRule       = Block(labelP, labelResident, labelAttending, labelClosing)

	// generalRule prefers an explicit "Status Generalis" block and falls
	// back to whatever leads the O section before the local exam.
	generalRule = FirstOf(
		Block(labelGeneral, labelLocal, labelExtraoral, labelIntraoral, labelSupporting),
		Prefix(labelLocal, labelExtraoral, labelIntraoral, labelSupporting),
	)
	extraoralRule  = Block(labelExtraoral, labelIntraoral, labelSupporting)
	intraoralRule  = Block(labelIntraoral, labelSupporting)
	supportingRule = Block(labelSupporting)
)

// residentRule takes the names on the label line, or the lines under a bare
// "Residen:" heading up to the DPJP line.
var residentRule = FirstOf(
	LineLabeled(`Residen\w*`),
	Block(labelResident, labelAttending, labelClosing).Map(trimLeadPunct),
)

var attendingRule = FirstOf(
	LineLabeled(`DPJP`),
	Block(labelAttending, labelClosing).Map(trimLeadPunct).Map(firstLine),
)

var medicalRecordRule = FirstOf(
	Pattern(regexp.MustCompile(`(?i)\b(?:No\.?[ ]*)?RM\b\.?[ ]*[:=\-]?[ ]*([0-9][0-9.\-/]*)`)),
	Pattern(regexp.MustCompile(`(?i)\bRekam\s+Medis\b[ ]*[:=\-]?[ ]*([0-9][0-9.\-/]*)`)),
).Map(func(s string) string { return strings.TrimRight(s, ".-/") })

var greetingRule = Pattern(regexp.MustCompile(
	`(?im)^[ ]*((?:Assalam|Selamat|Salam|Halo|Izin|Permisi|Shalom|Om Swastiastu)[^\n]*)$`))

var facilityRule = FirstOf(
	Pattern(regexp.MustCompile(`(?im)\b(?:RS|Rumah\s+Sakit)[ ]*:[ ]*([^\n]+)$`)).Map(stripDecoration),
	Pattern(regexp.MustCompile(`\b(RS[A-Z]{0,4}(?:[ ]+[A-Z][A-Z0-9]+)+)\b`)),
)

var careTypeRule = Pattern(regexp.MustCompile(`(?i)\((Rawat\s+(?:Jalan|Inap))\)`))

// Vital-sign rules. Each value stops before its unit when one is written.
var (
	weightRule = FirstOf(
		Labeled(`BB|Berat\s+Badan`, `kg`),
		Pattern(regexp.MustCompile(`(?i)\b(?:BB|Berat\s+Badan)\b[ ]*[:=]?[ ]*(\d+(?:[.,]\d+)?)`)),
	)
	heightRule = FirstOf(
		Labeled(`TB|Tinggi\s+Badan`, `cm`),
		Pattern(regexp.MustCompile(`(?i)\b(?:TB|Tinggi\s+Badan)\b[ ]*[:=]?[ ]*(\d+(?:[.,]\d+)?)`)),
	)
	bloodPressureRule = Pattern(regexp.MustCompile(`(?i)\b(?:TD|Tekanan\s+Darah|BP)\b[ ]*[:=]?[ ]*(\d{2,3}[ ]*/[ ]*\d{2,3})`))
	pulseRule         = Pattern(regexp.MustCompile(`(?i)\b(?:Nadi|HR|N)\b[ ]*[:=][ ]*(\d{2,3})`))
	respirationRule   = FirstOf(
		Pattern(regexp.MustCompile(`(?i)\b(?:RR|Pernapasan)\b[ ]*[:=][ ]*(\d{2})\b`)),
		Pattern(regexp.MustCompile(`(?m)\bP[ ]*:[ ]*(\d{2})[ ]*(?:x|kali|,|;|$)`)),
	)

	// The single-letter temperature labels also name sections, so they need
	// a decimal or a degree/Celsius suffix.
	temperatureRule = FirstOf(
		Pattern(regexp.MustCompile(`(?i)\b(?:Suhu|Temp)\b[ ]*[:=][ ]*(\d{2}(?:[.,]\d{1,2})?)`)),
		Pattern(regexp.MustCompile(`\b[TS][ ]*[:=][ ]*(\d{2}[.,]\d{1,2})`)),
		Pattern(regexp.MustCompile(`\b[TS][ ]*[:=][ ]*(\d{2})[ ]*(?:°|C\b)`)),
	)
	spo2Rule          = Pattern(regexp.MustCompile(`(?i)\bSpO2\b[ ]*[:=]?[ ]*(\d{2,3})`))
)

// firstLine returns the first non-blank line of s.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			return t
		}
	}
	return ""
}

// trimLeadPunct drops label punctuation left at the start of a block.
func trimLeadPunct(s string) string {
	return strings.TrimLeft(strings.TrimSpace(s), ".,;:-= ")
}

// stripDecoration trims punctuation that often trails a labeled value.
func stripDecoration(s string) string {
	return strings.Trim(strings.TrimSpace(s), ".,;:-")
}
