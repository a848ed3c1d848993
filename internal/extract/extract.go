// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls a best-effort FieldModel out of a free-text SOAP
// note. Every field is produced by an ordered list of rules composed with
// FirstOf; a miss on every rule leaves the field empty. Extraction never
// fails.
package extract

import (
	"strings"

	"github.com/pdiddy/soap-preop/internal/textutil"
	"github.com/pdiddy/soap-preop/pkg/types"
)

// Extract parses raw note text into a FieldModel. Empty input yields an
// all-empty model.
func Extract(raw string) types.FieldModel {
	m := types.NewFieldModel()

	text := textutil.Normalize(raw)
	if strings.TrimSpace(text) == "" {
		return m
	}

	m.Greeting = greetingRule.Apply(text)

	id := parseIdentity(text)
	m.Honorific = id.honorific
	m.Name = id.name
	m.Sex = id.sex
	m.Age = id.age
	m.Payer = id.payer
	m.CareType = FirstOf(constant(id.careType), careTypeRule).Apply(text)
	m.Room = id.room
	m.Facility = facilityRule.Apply(text)
	m.MedicalRecord = medicalRecordRule.Apply(text)

	m.Vitals = types.Vitals{
		Weight:        weightRule.Apply(text),
		Height:        heightRule.Apply(text),
		BloodPressure: bloodPressureRule.Apply(text),
		Pulse:         pulseRule.Apply(text),
		Respiration:   respirationRule.Apply(text),
		Temperature:   temperatureRule.Apply(text),
		SpO2:          spo2Rule.Apply(text),
	}

	m.Subjective = subjectiveRule.Apply(text)

	objective := objectiveRule.Apply(text)
	m.GeneralExam = generalRule.Apply(objective)
	m.Extraoral = extraoralRule.Apply(objective)
	m.Intraoral = intraoralRule.Apply(objective)
	m.SupportingItems = BulletItems(supportingRule.Apply(objective))

	m.Assessment = assessmentRule.Apply(text)
	m.Plan = planRule.Apply(text)
	m.Procedure, m.Anesthesia = procedureAndAnesthesia(text)

	m.Residents = textutil.JoinResidents(residentRule.Apply(text))
	m.Attending = attendingRule.Apply(text)

	return m
}

// BulletItems turns a captured block into an ordered item list: bullet
// glyphs stripped, blank lines dropped, case-insensitive duplicates removed.
func BulletItems(block string) []string {
	var items []string
	for _, line := range strings.Split(block, "\n") {
		if item := textutil.StripBullet(line); item != "" {
			items = append(items, item)
		}
	}
	return textutil.DedupeFold(items)
}

// constant is a rule that matches when v is non-blank. It lets an already
// parsed value take precedence in a FirstOf chain.
func constant(v string) Rule {
	return func(string) (string, bool) {
		v := strings.TrimSpace(v)
		return v, v != ""
	}
}
