// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FieldModel is the canonical record for one patient encounter. It is built
// fresh by the extractor for every raw-text submission and afterwards changed
// only through Overrides. Every text field defaults to "" and every list to an
// empty, non-nil slice.
type FieldModel struct {
	// Greeting is the opening salutation line of the source note, if any.
	Greeting string `json:"greeting" yaml:"greeting"`

	// Honorific is the name prefix (Tn., Ny., An., Nn., Sdr., By.).
	Honorific string `json:"honorific" yaml:"honorific"`

	Name          string `json:"name" yaml:"name"`
	Sex           string `json:"sex" yaml:"sex"`
	Age           string `json:"age" yaml:"age"`
	Payer         string `json:"payer" yaml:"payer"`
	CareType      string `json:"care_type" yaml:"care_type"`
	Room          string `json:"room" yaml:"room"`
	Facility      string `json:"facility" yaml:"facility"`
	MedicalRecord string `json:"medical_record" yaml:"medical_record"`

	Vitals Vitals `json:"vitals" yaml:"vitals"`

	// Subjective is the S section.
	Subjective string `json:"subjective" yaml:"subjective"`

	// GeneralExam is the general status (Status Generalis) part of O.
	GeneralExam string `json:"general_exam" yaml:"general_exam"`

	// Extraoral and Intraoral are the local status (Status Lokalis) parts of O.
	Extraoral string `json:"extraoral" yaml:"extraoral"`
	Intraoral string `json:"intraoral" yaml:"intraoral"`

	// Assessment is the A section.
	Assessment string `json:"assessment" yaml:"assessment"`

	// Plan is the raw P section as written in the source note.
	Plan string `json:"plan" yaml:"plan"`

	// SupportingItems lists lab and imaging findings, deduplicated
	// case-insensitively in first-seen order.
	SupportingItems []string `json:"supporting_items" yaml:"supporting_items"`

	// SupportingRaw is a pre-formatted supporting-exam block that is rendered
	// verbatim. When non-empty it takes precedence over SupportingItems.
	SupportingRaw string `json:"supporting_raw" yaml:"supporting_raw"`

	// Residents is the comma-joined resident line.
	Residents string `json:"residents" yaml:"residents"`

	// Attending is the supervising physician (DPJP).
	Attending string `json:"attending" yaml:"attending"`

	// Procedure and Anesthesia are mined from the operative line of the plan.
	// They seed the schedule; the editor owns the final values.
	Procedure  string `json:"procedure" yaml:"procedure"`
	Anesthesia string `json:"anesthesia" yaml:"anesthesia"`
}

// Vitals holds labeled measurements found in the note. Values keep the text
// as written, without units.
type Vitals struct {
	Weight        string `json:"weight" yaml:"weight"`
	Height        string `json:"height" yaml:"height"`
	BloodPressure string `json:"blood_pressure" yaml:"blood_pressure"`
	Pulse         string `json:"pulse" yaml:"pulse"`
	Respiration   string `json:"respiration" yaml:"respiration"`
	Temperature   string `json:"temperature" yaml:"temperature"`
	SpO2          string `json:"spo2" yaml:"spo2"`
}

// NewFieldModel returns a model with every list initialized.
func NewFieldModel() FieldModel {
	return FieldModel{
		SupportingItems: []string{},
	}
}

// DisplayName joins the honorific and the name.
func (m FieldModel) DisplayName() string {
	switch {
	case m.Honorific == "":
		return m.Name
	case m.Name == "":
		return m.Honorific
	default:
		return m.Honorific + " " + m.Name
	}
}
