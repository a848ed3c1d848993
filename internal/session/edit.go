// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/soap-preop/internal/calc"
	"github.com/pdiddy/soap-preop/internal/extract"
	"github.com/pdiddy/soap-preop/internal/textutil"
	"github.com/pdiddy/soap-preop/pkg/types"
)

// ErrUnknownKey is returned by Set and Unset for a key that names no
// editable field.
var ErrUnknownKey = errors.New("unknown field")

// ErrInvalidValue wraps a value that failed validation for its key.
var ErrInvalidValue = errors.New("invalid value")

// overrideFields maps edit keys to the override each one sets.
func (s *Session) overrideFields() map[string]**string {
	o := &s.Overrides
	return map[string]**string{
		"honorific":      &o.Honorific,
		"name":           &o.Name,
		"sex":            &o.Sex,
		"age":            &o.Age,
		"payer":          &o.Payer,
		"care_type":      &o.CareType,
		"room":           &o.Room,
		"facility":       &o.Facility,
		"rm":             &o.MedicalRecord,
		"weight":         &o.Weight,
		"height":         &o.Height,
		"subjective":     &o.Subjective,
		"general":        &o.GeneralExam,
		"extraoral":      &o.Extraoral,
		"intraoral":      &o.Intraoral,
		"assessment":     &o.Assessment,
		"supporting_raw": &o.SupportingRaw,
		"residents":      &o.Residents,
		"attending":      &o.Attending,
	}
}

// workflowKeys are the editable keys that are not FieldModel overrides.
var workflowKeys = []string{
	"supporting_items",
	"report_date", "operation_date", "operation_time", "timezone",
	"procedure", "anesthesia",
	"plan", "custom_plan", "medications",
	"derive_iv", "derive_fasting", "derive_antibiotic",
	"attending_preset", "lab", "use_lab",
}

// Keys lists every editable key in sorted order.
func (s *Session) Keys() []string {
	keys := append([]string{}, workflowKeys...)
	for k := range s.overrideFields() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set validates and records one edit. List values are separated by newlines
// or semicolons. Dates use dd/mm/yyyy and are read in loc.
func (s *Session) Set(key, value string, cfg types.Config, loc *time.Location, now time.Time) error {
	if err := s.set(key, value, cfg, loc); err != nil {
		return err
	}
	s.UpdatedAt = now
	return nil
}

func (s *Session) set(key, value string, cfg types.Config, loc *time.Location) error {
	if dst, ok := s.overrideFields()[key]; ok {
		v := value
		*dst = &v
		return nil
	}

	invalid := func(why string) error {
		return fmt.Errorf("%w for %s: %q (%s)", ErrInvalidValue, key, value, why)
	}

	switch key {
	case "supporting_items":
		items := extract.BulletItems(strings.Join(splitList(value), "\n"))
		s.Overrides.SupportingItems = &items
	case "report_date", "operation_date":
		t, ok := textutil.ParseDate(strings.TrimSpace(value), loc)
		if !ok {
			return invalid("want dd/mm/yyyy")
		}
		if key == "report_date" {
			s.Schedule.ReportDate = t
		} else {
			s.Schedule.OperationDate = t
		}
	case "operation_time":
		c, ok := calc.ParseTime(value)
		if !ok {
			return invalid("want HH.MM")
		}
		s.Schedule.OperationTime = c.String()
	case "timezone":
		s.Schedule.TimeZone = strings.TrimSpace(value)
	case "procedure":
		s.Schedule.Procedure = strings.TrimSpace(value)
		s.ProcedureSet = true
	case "anesthesia":
		s.Schedule.Anesthesia = strings.TrimSpace(value)
		s.AnesthesiaSet = true
	case "plan":
		picks, err := pickPlan(splitList(value), cfg.PlanLibrary)
		if err != nil {
			return invalid(err.Error())
		}
		s.PlanPicks = picks
		s.PlanPicked = true
	case "custom_plan":
		s.CustomPlan = textutil.DedupeFold(splitList(value))
	case "medications":
		s.Medications = textutil.DedupeFold(splitList(value))
	case "derive_iv", "derive_fasting", "derive_antibiotic":
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return invalid("want true or false")
		}
		switch key {
		case "derive_iv":
			s.Derive.IV = b
		case "derive_fasting":
			s.Derive.Fasting = b
		default:
			s.Derive.Antibiotic = b
		}
	case "attending_preset":
		i, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || i < -1 || i >= len(cfg.Attendings) {
			return invalid(fmt.Sprintf("want -1..%d", len(cfg.Attendings)-1))
		}
		s.AttendingPreset = i
	case "lab":
		s.LabText = value
	case "use_lab":
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return invalid("want true or false")
		}
		s.UseLabItems = b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// Unset drops an override so the parsed value applies again.
func (s *Session) Unset(key string) error {
	if dst, ok := s.overrideFields()[key]; ok {
		*dst = nil
		return nil
	}
	switch key {
	case "supporting_items":
		s.Overrides.SupportingItems = nil
	case "procedure":
		s.ProcedureSet = false
		s.Schedule.Procedure = s.Parsed.Procedure
	case "anesthesia":
		s.AnesthesiaSet = false
		s.Schedule.Anesthesia = s.Parsed.Anesthesia
	case "plan":
		s.PlanPicks, s.PlanPicked = nil, false
	case "custom_plan":
		s.CustomPlan = nil
	case "medications":
		s.Medications = nil
	case "attending_preset":
		s.AttendingPreset = -1
	case "lab":
		s.LabText = ""
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// pickPlan resolves picks against the library. A pick is either a library
// item (matched case-insensitively) or its 1-based index.
func pickPlan(picks, library []string) ([]string, error) {
	out := make([]string, 0, len(picks))
	for _, p := range picks {
		if i, err := strconv.Atoi(p); err == nil {
			if i < 1 || i > len(library) {
				return nil, fmt.Errorf("no plan item %d", i)
			}
			out = append(out, library[i-1])
			continue
		}
		item, ok := findFold(library, p)
		if !ok {
			return nil, fmt.Errorf("%q is not in the plan library", p)
		}
		out = append(out, item)
	}
	return textutil.DedupeFold(out), nil
}

func findFold(items []string, want string) (string, bool) {
	k := textutil.FoldKey(want)
	for _, it := range items {
		if textutil.FoldKey(it) == k {
			return it, true
		}
	}
	return "", false
}

// splitList splits on newlines and semicolons and drops blank entries.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(value, func(r rune) bool { return r == '\n' || r == ';' }) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
