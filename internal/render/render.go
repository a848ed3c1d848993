// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render assembles the Pre-Op SOAP report text from a finalized
// FieldModel and explicit report inputs. Rendering is deterministic: the
// same inputs always produce byte-identical output.
package render

import (
	"strings"

	"github.com/pdiddy/soap-preop/internal/textutil"
	"github.com/pdiddy/soap-preop/pkg/types"
)

// Bullet is the prefix written before every list item.
const Bullet = "- "

// Report renders the full report. Sections appear in a fixed order:
// greeting, identity, S, O (general, extraoral, intraoral, supporting), A,
// P (plan items then the procedure line), medications when present,
// closing, resident, attending. Empty narrative sections render as an empty
// line under their heading. A raw supporting block that is only whitespace
// does not replace the item list.
func Report(m types.FieldModel, in types.ReportInput) string {
	var b strings.Builder
	w := func(lines ...string) {
		for _, l := range lines {
			b.WriteString(l)
			b.WriteByte('\n')
		}
	}

	w(in.Greeting)
	w(headerLine(m, in.Schedule))
	w("")
	w(IdentityLine(m, in))
	w("RM: " + m.MedicalRecord)
	w("")

	w("S:", m.Subjective, "")

	w("O:")
	w("Status Generalis:", m.GeneralExam, "")
	w("Status Lokalis:")
	w("EO:", m.Extraoral)
	w("IO:", m.Intraoral, "")
	w("Pemeriksaan Penunjang:")
	if strings.TrimSpace(in.SupportingRaw) != "" {
		b.WriteString(in.SupportingRaw)
		if !strings.HasSuffix(in.SupportingRaw, "\n") {
			b.WriteByte('\n')
		}
	} else {
		w(BulletLines(textutil.DedupeFold(in.SupportingItems))...)
	}
	w("")

	w("A:")
	w(BulletLines(textutil.NonEmptyLines(m.Assessment))...)
	w("")

	w("P:")
	w(BulletLines(textutil.DedupeFold(in.PlanItems))...)
	w(bullet(ProcedureLine(m, in.Schedule)))

	if meds := textutil.DedupeFold(in.Medications); len(meds) > 0 {
		w("", "Obat:")
		w(BulletLines(meds)...)
	}

	w("", in.Closing, "")
	w("Residen: " + in.Residents)
	w("DPJP: " + in.Attending)

	return b.String()
}

// headerLine names the facility and the report date.
func headerLine(m types.FieldModel, s types.Schedule) string {
	parts := []string{"SOAP Pre-Op"}
	if m.Facility != "" {
		parts = append(parts, m.Facility)
	}
	head := strings.Join(parts, " ")
	if s.ReportDate.IsZero() {
		return head
	}
	return head + ", " + textutil.DayName(s.ReportDate) + " " + textutil.FormatDate(s.ReportDate)
}

// IdentityLine joins name, sex, age, payer, care type, and room with " / ".
// Payer, care type, and room come from the report inputs.
func IdentityLine(m types.FieldModel, in types.ReportInput) string {
	return strings.Join([]string{
		m.DisplayName(), m.Sex, m.Age, in.Payer, in.CareType, in.Room,
	}, " / ")
}

// ProcedureLine states procedure, anesthesia, operation day and date, time,
// zone, and facility, e.g. "Pro odontektomi dalam general anestesi pada hari
// Rabu, 31/12/2025 Pukul 08.00 WITA di RSGMP UNHAS".
func ProcedureLine(m types.FieldModel, s types.Schedule) string {
	var b strings.Builder
	b.WriteString("Pro " + s.Procedure)
	if s.Anesthesia != "" {
		b.WriteString(" dalam " + s.Anesthesia)
	}
	if !s.OperationDate.IsZero() {
		b.WriteString(" pada hari " + textutil.DayName(s.OperationDate) + ", " + textutil.FormatDate(s.OperationDate))
	}
	if s.OperationTime != "" {
		b.WriteString(" Pukul " + s.OperationTime)
		if s.TimeZone != "" {
			b.WriteString(" " + s.TimeZone)
		}
	}
	if m.Facility != "" {
		b.WriteString(" di " + m.Facility)
	}
	return b.String()
}

// BulletLines prefixes every line with Bullet unless it already carries it.
func BulletLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, bullet(l))
	}
	return out
}

func bullet(line string) string {
	if strings.HasPrefix(line, Bullet) {
		return line
	}
	return Bullet + line
}
