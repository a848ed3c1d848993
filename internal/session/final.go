// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"github.com/pdiddy/soap-preop/internal/calc"
	"github.com/pdiddy/soap-preop/internal/extract"
	"github.com/pdiddy/soap-preop/internal/render"
	"github.com/pdiddy/soap-preop/internal/textutil"
	"github.com/pdiddy/soap-preop/pkg/types"
)

// Final merges the parsed model, the overrides, and the configured defaults
// into the renderer's inputs. Required values still empty after the merge
// get placeholders.
func (s *Session) Final(cfg types.Config) (types.FieldModel, types.ReportInput) {
	m := s.Overrides.Apply(s.Parsed)

	m.Facility = orDefault(m.Facility, cfg.Facility)
	m.Name = orDefault(m.Name, MissingPlaceholder)
	m.Sex = orDefault(m.Sex, MissingPlaceholder)
	m.Age = orDefault(m.Age, MissingPlaceholder)
	m.MedicalRecord = orDefault(m.MedicalRecord, MissingPlaceholder)

	sched := s.Schedule
	sched.Procedure = orDefault(sched.Procedure, ProcedurePlaceholder)
	sched.Anesthesia = orDefault(sched.Anesthesia, cfg.Anesthesia)
	sched.TimeZone = orDefault(sched.TimeZone, cfg.TimeZoneLabel)

	in := types.ReportInput{
		Schedule:        sched,
		Greeting:        orDefault(m.Greeting, cfg.Greeting),
		Closing:         cfg.Closing,
		Payer:           orDefault(m.Payer, cfg.Payer),
		CareType:        orDefault(m.CareType, cfg.CareType),
		Room:            orDefault(m.Room, RoomPlaceholder),
		SupportingRaw:   m.SupportingRaw,
		SupportingItems: s.supportingItems(m),
		PlanItems:       s.planItems(m, sched, cfg),
		Medications:     textutil.DedupeFold(s.Medications),
		Residents:       orDefault(textutil.JoinResidents(m.Residents), MissingPlaceholder),
		Attending:       orDefault(s.attending(m, cfg), MissingPlaceholder),
	}
	return m, in
}

// Report renders the finalized session.
func (s *Session) Report(cfg types.Config) string {
	return render.Report(s.Final(cfg))
}

func (s *Session) supportingItems(m types.FieldModel) []string {
	items := m.SupportingItems
	if s.UseLabItems {
		items = append(append([]string{}, items...), extract.LabItems(s.LabText)...)
	}
	return textutil.DedupeFold(items)
}

// planItems is the picked library items, then custom lines, then the
// derived IVFD, fasting, and antibiotic lines.
func (s *Session) planItems(m types.FieldModel, sched types.Schedule, cfg types.Config) []string {
	picks := cfg.DefaultPlan
	if s.PlanPicked {
		picks = s.PlanPicks
	}
	items := append(append([]string{}, picks...), s.CustomPlan...)
	items = append(items, calc.PlanLines(calc.PlanOptions{
		OperationTime:         sched.OperationTime,
		TimeZone:              sched.TimeZone,
		Weight:                m.Vitals.Weight,
		DripFactor:            cfg.DripFactor,
		Fluid:                 cfg.Fluid,
		AntibioticName:        cfg.Antibiotic,
		FastingHours:          cfg.FastingHours,
		AntibioticLeadMinutes: cfg.AntibioticLeadMinutes,
		IncludeIV:             s.Derive.IV,
		IncludeFasting:        s.Derive.Fasting,
		IncludeAntibiotic:     s.Derive.Antibiotic,
	})...)
	return textutil.DedupeFold(items)
}

// attending prefers a typed name, then the chosen preset, then the parsed
// name, then the first preset.
func (s *Session) attending(m types.FieldModel, cfg types.Config) string {
	if s.Overrides.Attending != nil {
		return m.Attending
	}
	if s.AttendingPreset >= 0 && s.AttendingPreset < len(cfg.Attendings) {
		return cfg.Attendings[s.AttendingPreset]
	}
	if m.Attending != "" {
		return m.Attending
	}
	if len(cfg.Attendings) > 0 {
		return cfg.Attendings[0]
	}
	return ""
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
