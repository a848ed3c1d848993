// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want Clock
		ok   bool
	}{
		{"08.00", Clock{8, 0}, true},
		{"8:30", Clock{8, 30}, true},
		{" 23.59 ", Clock{23, 59}, true},
		{"0.5", Clock{0, 5}, true},
		{"00:00", Clock{0, 0}, true},
		{"24.00", Clock{}, false},
		{"12.60", Clock{}, false},
		{"123.00", Clock{}, false},
		{"8", Clock{}, false},
		{"08-00", Clock{}, false},
		{"jam 8", Clock{}, false},
		{"", Clock{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseTime(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubtractMinutes(t *testing.T) {
	tests := []struct {
		name           string
		h, m, minutes  int
		wantH, wantM   int
	}{
		{"fasting six hours", 8, 0, 360, 2, 0},
		{"midnight wrap", 0, 30, 60, 23, 30},
		{"previous evening", 1, 0, 360, 19, 0},
		{"zero", 10, 15, 0, 10, 15},
		{"full day", 10, 15, 1440, 10, 15},
		{"more than a day", 10, 15, 1500, 9, 15},
		{"negative adds", 23, 30, 60 * -1, 0, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := SubtractMinutes(tt.h, tt.m, tt.minutes)
			assert.Equal(t, tt.wantH, h)
			assert.Equal(t, tt.wantM, m)
		})
	}
}

func TestClock(t *testing.T) {
	assert.Equal(t, "07.00", Clock{8, 0}.Minus(60).String())
	assert.Equal(t, "23.05", Clock{0, 5}.Minus(60).String())
}

func TestMaintenanceRate(t *testing.T) {
	tests := []struct {
		weight float64
		want   float64
	}{
		{0, 0},
		{-5, 0},
		{math.NaN(), 0},
		{5, 20},
		{10, 40},
		{15, 50},
		{20, 60},
		{25, 65},
		{70, 110},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, MaintenanceRate(tt.weight), 1e-9, "weight %v", tt.weight)
	}
}

func TestDropsPerMinute(t *testing.T) {
	assert.Equal(t, 22, DropsPerMinute(65, 20))
	assert.Equal(t, 65, DropsPerMinute(65, 60))
	assert.Equal(t, 13, DropsPerMinute(40, 20))
	assert.Equal(t, 0, DropsPerMinute(0, 20))
	assert.Equal(t, 0, DropsPerMinute(-10, 20))
	assert.Equal(t, 0, DropsPerMinute(65, 0))
	assert.Equal(t, 0, DropsPerMinute(math.NaN(), 20))
	assert.Equal(t, 0, DropsPerMinute(math.Inf(1), 20))
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"25", 25, true},
		{"25 kg", 25, true},
		{"12,5", 12.5, true},
		{" 60.5kg", 60.5, true},
		{"kg", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseNumber(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPlanLines(t *testing.T) {
	opts := PlanOptions{
		OperationTime:         "08.00",
		TimeZone:              "WITA",
		Weight:                "25 kg",
		DripFactor:            20,
		Fluid:                 "RL",
		AntibioticName:        "Ceftriaxone inj 1 gr",
		FastingHours:          6,
		AntibioticLeadMinutes: 60,
		IncludeIV:             true,
		IncludeFasting:        true,
		IncludeAntibiotic:     true,
	}
	assert.Equal(t, []string{
		"IVFD RL 22 tpm (makrodrips)",
		"Puasa mulai 02.00 WITA",
		"Antibiotik profilaksis Ceftriaxone inj 1 gr jam 07.00 WITA",
	}, PlanLines(opts))

	t.Run("invalid time keeps iv line", func(t *testing.T) {
		o := opts
		o.OperationTime = "nanti"
		assert.Equal(t, []string{"IVFD RL 22 tpm (makrodrips)"}, PlanLines(o))
	})

	t.Run("invalid weight drops iv line", func(t *testing.T) {
		o := opts
		o.Weight = ""
		o.IncludeAntibiotic = false
		assert.Equal(t, []string{"Puasa mulai 02.00 WITA"}, PlanLines(o))
	})

	t.Run("early operation wraps to previous day", func(t *testing.T) {
		o := opts
		o.OperationTime = "00:30"
		o.IncludeIV = false
		assert.Equal(t, []string{
			"Puasa mulai 18.30 WITA",
			"Antibiotik profilaksis Ceftriaxone inj 1 gr jam 23.30 WITA",
		}, PlanLines(o))
	})

	t.Run("nothing selected", func(t *testing.T) {
		assert.Equal(t, []string{}, PlanLines(PlanOptions{OperationTime: "08.00"}))
	})
}

func TestIVLine(t *testing.T) {
	line, ok := IVLine("NaCl 0.9%", 8, 60)
	assert.True(t, ok)
	assert.Equal(t, "IVFD NaCl 0.9% 32 tpm (mikrodrips)", line)

	line, ok = IVLine("", 25, 15)
	assert.True(t, ok)
	assert.Equal(t, "IVFD 16 tpm (15 tetes/mL)", line)

	_, ok = IVLine("RL", 0, 20)
	assert.False(t, ok)
}

func TestAntibioticLineWithoutDrug(t *testing.T) {
	assert.Equal(t, "Antibiotik profilaksis jam 07.00 WITA", AntibioticLine(Clock{8, 0}, 60, "", "WITA"))
	assert.Equal(t, "Puasa mulai 02.00", FastingLine(Clock{8, 0}, 6, ""))
}
