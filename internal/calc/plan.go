// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package calc

import (
	"fmt"
	"strings"
)

const (
	macroDrip = 20
	microDrip = 60
)

// PlanOptions selects which derived plan lines to produce and the inputs
// they need.
type PlanOptions struct {
	OperationTime string
	TimeZone      string

	// Weight is the body weight as written ("25", "25 kg", "12,5").
	Weight     string
	DripFactor int
	Fluid      string

	AntibioticName        string
	FastingHours          int
	AntibioticLeadMinutes int

	IncludeIV         bool
	IncludeFasting    bool
	IncludeAntibiotic bool
}

// PlanLines returns the derived IVFD, fasting, and antibiotic lines in that
// order. A line whose input is invalid (unparseable time or weight) is
// omitted.
func PlanLines(o PlanOptions) []string {
	lines := []string{}

	if o.IncludeIV {
		if w, ok := ParseNumber(o.Weight); ok {
			if line, ok := IVLine(o.Fluid, w, o.DripFactor); ok {
				lines = append(lines, line)
			}
		}
	}

	op, ok := ParseTime(o.OperationTime)
	if !ok {
		return lines
	}
	if o.IncludeFasting {
		lines = append(lines, FastingLine(op, o.FastingHours, o.TimeZone))
	}
	if o.IncludeAntibiotic {
		lines = append(lines, AntibioticLine(op, o.AntibioticLeadMinutes, o.AntibioticName, o.TimeZone))
	}
	return lines
}

// IVLine formats the maintenance infusion for a weight, e.g.
// "IVFD RL 22 tpm (makrodrips)". It reports false when the rate rounds to 0.
func IVLine(fluid string, weightKg float64, dripFactor int) (string, bool) {
	tpm := DropsPerMinute(MaintenanceRate(weightKg), dripFactor)
	if tpm == 0 {
		return "", false
	}
	head := "IVFD"
	if fluid = strings.TrimSpace(fluid); fluid != "" {
		head += " " + fluid
	}
	return fmt.Sprintf("%s %d tpm (%s)", head, tpm, dripLabel(dripFactor)), true
}

func dripLabel(factor int) string {
	switch factor {
	case macroDrip:
		return "makrodrips"
	case microDrip:
		return "mikrodrips"
	default:
		return fmt.Sprintf("%d tetes/mL", factor)
	}
}

// FastingOnset is the operation time minus the fasting period.
func FastingOnset(op Clock, hours int) Clock {
	return op.Minus(hours * 60)
}

// AntibioticTime is the operation time minus the prophylaxis lead.
func AntibioticTime(op Clock, leadMinutes int) Clock {
	return op.Minus(leadMinutes)
}

// FastingLine formats "Puasa mulai HH.MM <zone>".
func FastingLine(op Clock, hours int, zone string) string {
	return strings.TrimSpace(fmt.Sprintf("Puasa mulai %s %s", FastingOnset(op, hours), zone))
}

// AntibioticLine formats "Antibiotik profilaksis <drug> jam HH.MM <zone>".
func AntibioticLine(op Clock, leadMinutes int, drug, zone string) string {
	head := "Antibiotik profilaksis"
	if drug = strings.TrimSpace(drug); drug != "" {
		head += " " + drug
	}
	return strings.TrimSpace(fmt.Sprintf("%s jam %s %s", head, AntibioticTime(op, leadMinutes), zone))
}
