// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Overrides records values the user typed in the editing step. A nil field
// means "keep the parsed value"; a non-nil field always wins, even when it
// points at an empty string.
type Overrides struct {
	Honorific     *string `json:"honorific,omitempty" yaml:"honorific,omitempty"`
	Name          *string `json:"name,omitempty" yaml:"name,omitempty"`
	Sex           *string `json:"sex,omitempty" yaml:"sex,omitempty"`
	Age           *string `json:"age,omitempty" yaml:"age,omitempty"`
	Payer         *string `json:"payer,omitempty" yaml:"payer,omitempty"`
	CareType      *string `json:"care_type,omitempty" yaml:"care_type,omitempty"`
	Room          *string `json:"room,omitempty" yaml:"room,omitempty"`
	Facility      *string `json:"facility,omitempty" yaml:"facility,omitempty"`
	MedicalRecord *string `json:"medical_record,omitempty" yaml:"medical_record,omitempty"`

	Weight *string `json:"weight,omitempty" yaml:"weight,omitempty"`
	Height *string `json:"height,omitempty" yaml:"height,omitempty"`

	Subjective  *string `json:"subjective,omitempty" yaml:"subjective,omitempty"`
	GeneralExam *string `json:"general_exam,omitempty" yaml:"general_exam,omitempty"`
	Extraoral   *string `json:"extraoral,omitempty" yaml:"extraoral,omitempty"`
	Intraoral   *string `json:"intraoral,omitempty" yaml:"intraoral,omitempty"`
	Assessment  *string `json:"assessment,omitempty" yaml:"assessment,omitempty"`

	SupportingItems *[]string `json:"supporting_items,omitempty" yaml:"supporting_items,omitempty"`
	SupportingRaw   *string   `json:"supporting_raw,omitempty" yaml:"supporting_raw,omitempty"`

	Residents *string `json:"residents,omitempty" yaml:"residents,omitempty"`
	Attending *string `json:"attending,omitempty" yaml:"attending,omitempty"`
}

// Apply returns a copy of m with every set override written over the parsed
// value. m itself is not modified.
func (o Overrides) Apply(m FieldModel) FieldModel {
	out := m
	out.SupportingItems = append([]string{}, m.SupportingItems...)

	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	set(&out.Honorific, o.Honorific)
	set(&out.Name, o.Name)
	set(&out.Sex, o.Sex)
	set(&out.Age, o.Age)
	set(&out.Payer, o.Payer)
	set(&out.CareType, o.CareType)
	set(&out.Room, o.Room)
	set(&out.Facility, o.Facility)
	set(&out.MedicalRecord, o.MedicalRecord)
	set(&out.Vitals.Weight, o.Weight)
	set(&out.Vitals.Height, o.Height)
	set(&out.Subjective, o.Subjective)
	set(&out.GeneralExam, o.GeneralExam)
	set(&out.Extraoral, o.Extraoral)
	set(&out.Intraoral, o.Intraoral)
	set(&out.Assessment, o.Assessment)
	set(&out.SupportingRaw, o.SupportingRaw)
	set(&out.Residents, o.Residents)
	set(&out.Attending, o.Attending)

	if o.SupportingItems != nil {
		out.SupportingItems = append([]string{}, (*o.SupportingItems)...)
	}
	return out
}

// IsEmpty reports whether no override has been set.
func (o Overrides) IsEmpty() bool {
	return o == (Overrides{})
}
