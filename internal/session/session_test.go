// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/soap-preop/pkg/types"
)

const note = `Tn. Ahmad Fauzi / L / 45 tahun / BPJS / Rawat Jalan / Lontara 3 Bed 2
RM: 123456
S: Bengkak pipi kanan
O:
Status Generalis: KU baik, BB: 60 kg
EO: Edema regio bukal dextra
IO: Gigi 48 impaksi
Pemeriksaan Penunjang:
- OPG X-Ray
A: Impaksi gigi 48
P:
- Pro odontektomi gigi 48 dalam general anestesi
Residen: drg. Reza
DPJP: drg. Abul Fauzi`

var (
	wita = time.FixedZone("WITA", 8*60*60)
	now  = time.Date(2025, 12, 30, 9, 15, 0, 0, wita)
)

func parsed(t *testing.T) *Session {
	t.Helper()
	s := New(now, types.DefaultConfig())
	s.Parse(note, now, zerolog.Nop())
	return s
}

func TestNewDefaults(t *testing.T) {
	cfg := types.DefaultConfig()
	s := New(now, cfg)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, time.Date(2025, 12, 30, 0, 0, 0, 0, wita), s.Schedule.ReportDate)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, wita), s.Schedule.OperationDate)
	assert.Equal(t, "08.00", s.Schedule.OperationTime)
	assert.Equal(t, "WITA", s.Schedule.TimeZone)
	assert.Equal(t, -1, s.AttendingPreset)
	assert.NotNil(t, s.Parsed.SupportingItems)
}

func TestParseSeedsSchedule(t *testing.T) {
	s := parsed(t)
	assert.Equal(t, "Ahmad Fauzi", s.Parsed.Name)
	assert.Equal(t, "odontektomi gigi 48", s.Schedule.Procedure)
	assert.Equal(t, "general anestesi", s.Schedule.Anesthesia)
}

func TestOverridesSurviveReparse(t *testing.T) {
	cfg := types.DefaultConfig()
	s := parsed(t)
	require.NoError(t, s.Set("name", "Ahmad F.", cfg, wita, now))
	require.NoError(t, s.Set("procedure", "odontektomi 38 dan 48", cfg, wita, now))

	s.Parse("Tn. Budi / L / 30 tahun\nP: Pro eksisi dalam lokal anestesi", now, zerolog.Nop())

	m, in := s.Final(cfg)
	assert.Equal(t, "Budi", s.Parsed.Name)
	assert.Equal(t, "Ahmad F.", m.Name)
	assert.Equal(t, "odontektomi 38 dan 48", in.Schedule.Procedure)
	assert.Equal(t, "lokal anestesi", in.Schedule.Anesthesia)
}

func TestReparseReplacesAnesthesia(t *testing.T) {
	cfg := types.DefaultConfig()
	tests := []struct {
		name   string
		second string
		want   string
	}{
		{"new note names none", "P: Pro odontektomi gigi 48", cfg.Anesthesia},
		{"new note names another", "P: Pro odontektomi gigi 48 dalam sedasi", "sedasi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(now, cfg)
			s.Parse("P: Pro insisi dalam lokal anestesi", now, zerolog.Nop())
			require.Equal(t, "lokal anestesi", s.Schedule.Anesthesia)

			s.Parse(tt.second, now, zerolog.Nop())
			_, in := s.Final(cfg)
			assert.Equal(t, "odontektomi gigi 48", in.Schedule.Procedure)
			assert.Equal(t, tt.want, in.Schedule.Anesthesia)
		})
	}
}

func TestUnsetAnesthesia(t *testing.T) {
	cfg := types.DefaultConfig()
	s := parsed(t)
	require.NoError(t, s.Set("anesthesia", "lokal anestesi", cfg, wita, now))

	s.Parse("P: Pro eksisi dalam sedasi", now, zerolog.Nop())
	assert.Equal(t, "lokal anestesi", s.Schedule.Anesthesia)

	require.NoError(t, s.Unset("anesthesia"))
	assert.False(t, s.AnesthesiaSet)
	assert.Equal(t, "sedasi", s.Schedule.Anesthesia)

	s.Parse(note, now, zerolog.Nop())
	assert.Equal(t, "general anestesi", s.Schedule.Anesthesia)
}

func TestEmptyOverrideWins(t *testing.T) {
	cfg := types.DefaultConfig()
	s := parsed(t)
	require.NoError(t, s.Set("extraoral", "", cfg, wita, now))

	m, _ := s.Final(cfg)
	assert.Empty(t, m.Extraoral)

	require.NoError(t, s.Unset("extraoral"))
	m, _ = s.Final(cfg)
	assert.Equal(t, "Edema regio bukal dextra", m.Extraoral)
}

func TestSetValidation(t *testing.T) {
	cfg := types.DefaultConfig()
	s := parsed(t)

	tests := []struct {
		key, value string
		want       error
	}{
		{"nickname", "x", ErrUnknownKey},
		{"operation_time", "jam delapan", ErrInvalidValue},
		{"operation_date", "31 Desember", ErrInvalidValue},
		{"derive_iv", "maybe", ErrInvalidValue},
		{"attending_preset", "3", ErrInvalidValue},
		{"plan", "Pulang", ErrInvalidValue},
		{"plan", "9", ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			assert.ErrorIs(t, s.Set(tt.key, tt.value, cfg, wita, now), tt.want)
		})
	}
	assert.ErrorIs(t, s.Unset("nickname"), ErrUnknownKey)
}

func TestFinalDefaultsAndPlaceholders(t *testing.T) {
	cfg := types.DefaultConfig()
	s := New(now, cfg)
	s.Parse("S: nyeri", now, zerolog.Nop())

	m, in := s.Final(cfg)
	assert.Equal(t, "RSGMP UNHAS", m.Facility)
	assert.Equal(t, MissingPlaceholder, m.Name)
	assert.Equal(t, MissingPlaceholder, m.MedicalRecord)
	assert.Equal(t, ProcedurePlaceholder, in.Schedule.Procedure)
	assert.Equal(t, RoomPlaceholder, in.Room)
	assert.Equal(t, "BPJS", in.Payer)
	assert.Equal(t, "Rawat Inap", in.CareType)
	assert.Equal(t, cfg.Greeting, in.Greeting)
	assert.Equal(t, cfg.Attendings[0], in.Attending)
	assert.Equal(t, MissingPlaceholder, in.Residents)
	assert.Equal(t, cfg.DefaultPlan, in.PlanItems)
}

func TestFinalPlanItems(t *testing.T) {
	cfg := types.DefaultConfig()
	s := parsed(t)
	require.NoError(t, s.Set("plan", "1; Antibiotik profilaksis (isi sesuai); acc ts anestesi", cfg, wita, now))
	require.NoError(t, s.Set("custom_plan", "Informed consent", cfg, wita, now))
	for _, k := range []string{"derive_iv", "derive_fasting", "derive_antibiotic"} {
		require.NoError(t, s.Set(k, "true", cfg, wita, now))
	}

	_, in := s.Final(cfg)
	assert.Equal(t, []string{
		"ACC TS Anestesi",
		"Antibiotik profilaksis (isi sesuai)",
		"Informed consent",
		"IVFD RL 33 tpm (makrodrips)",
		"Puasa mulai 02.00 WITA",
		"Antibiotik profilaksis Ceftriaxone inj 1 gr jam 07.00 WITA",
	}, in.PlanItems)
}

func TestFinalAttendingPreset(t *testing.T) {
	cfg := types.DefaultConfig()
	s := parsed(t)

	_, in := s.Final(cfg)
	assert.Equal(t, "drg. Abul Fauzi", in.Attending)

	require.NoError(t, s.Set("attending_preset", "2", cfg, wita, now))
	_, in = s.Final(cfg)
	assert.Equal(t, cfg.Attendings[2], in.Attending)

	require.NoError(t, s.Set("attending", "drg. Lain, Sp.B.M.Mf.", cfg, wita, now))
	_, in = s.Final(cfg)
	assert.Equal(t, "drg. Lain, Sp.B.M.Mf.", in.Attending)
}

func TestFinalLabMerge(t *testing.T) {
	cfg := types.DefaultConfig()
	s := parsed(t)
	require.NoError(t, s.Set("lab", "Hasil Lab (29/12/2025)\nHemoglobin: 13.2 g/dL\nTrombosit: 250", cfg, wita, now))
	require.NoError(t, s.Set("use_lab", "true", cfg, wita, now))

	_, in := s.Final(cfg)
	assert.Equal(t, []string{
		"OPG X-Ray",
		"Lab Darah (29/12/2025)",
		"HGB : 13.2 g/dL",
		"PLT : 250",
	}, in.SupportingItems)
}

func TestReportRendersSession(t *testing.T) {
	cfg := types.DefaultConfig()
	s := parsed(t)
	out := s.Report(cfg)

	assert.Contains(t, out, "Tn. Ahmad Fauzi / L / 45 tahun / BPJS / Rawat Jalan / Lontara 3 Bed 2")
	assert.Contains(t, out, "- Pro odontektomi gigi 48 dalam general anestesi pada hari Rabu, 31/12/2025 Pukul 08.00 WITA di RSGMP UNHAS")
	assert.Equal(t, out, s.Report(cfg))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := types.DefaultConfig()
	path := filepath.Join(t.TempDir(), "nested", "session.yaml")

	s := parsed(t)
	require.NoError(t, s.Set("room", "", cfg, wita, now))
	require.NoError(t, s.Set("supporting_items", "- Foto thorax\n- OPG", cfg, wita, now))
	require.NoError(t, s.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, s.Report(cfg), got.Report(cfg))
	require.NotNil(t, got.Overrides.Room)
	assert.Empty(t, *got.Overrides.Room)
	require.NotNil(t, got.Overrides.SupportingItems)
	assert.Equal(t, []string{"Foto thorax", "OPG"}, *got.Overrides.SupportingItems)
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.yaml")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrNoSession)

	s, err := LoadOrNew(path, now, types.DefaultConfig())
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
}

func TestReset(t *testing.T) {
	cfg := types.DefaultConfig()
	s := parsed(t)
	id := s.ID
	require.NoError(t, s.Set("name", "X", cfg, wita, now))

	s.Reset(now, cfg)
	assert.NotEqual(t, id, s.ID)
	assert.Empty(t, s.Raw)
	assert.True(t, s.Overrides.IsEmpty())
	assert.Empty(t, s.Parsed.Name)
}
