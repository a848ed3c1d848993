// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session holds the parse → edit → render workflow context. A
// Session owns the raw note, the freshly parsed FieldModel, the user's
// overrides, and the schedule. Re-parsing replaces only the parsed model;
// overrides survive until Reset.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/soap-preop/internal/extract"
	"github.com/pdiddy/soap-preop/pkg/types"
)

// Placeholders written into the report when the editor left a required
// value empty.
const (
	ProcedurePlaceholder = "(isi tindakan)"
	RoomPlaceholder      = "(isi kamar/bed)"
	MissingPlaceholder   = "-"
)

// Derive selects the computed plan lines appended after the picked items.
type Derive struct {
	IV         bool `yaml:"iv"`
	Fasting    bool `yaml:"fasting"`
	Antibiotic bool `yaml:"antibiotic"`
}

// Session is the on-disk workflow context.
type Session struct {
	ID        string    `yaml:"id"`
	CreatedAt time.Time `yaml:"created_at"`
	UpdatedAt time.Time `yaml:"updated_at"`

	Raw     string `yaml:"raw"`
	LabText string `yaml:"lab_text,omitempty"`

	// UseLabItems appends the mined lab lines to the supporting items.
	UseLabItems bool `yaml:"use_lab_items"`

	Parsed    types.FieldModel `yaml:"parsed"`
	Overrides types.Overrides  `yaml:"overrides"`
	Schedule  types.Schedule   `yaml:"schedule"`

	// PlanPicks are items chosen from the plan library. Until PlanPicked is
	// set the configured default picks apply.
	PlanPicks  []string `yaml:"plan_picks,omitempty"`
	PlanPicked bool     `yaml:"plan_picked"`
	CustomPlan []string `yaml:"custom_plan,omitempty"`

	Medications []string `yaml:"medications,omitempty"`
	Derive      Derive   `yaml:"derive"`

	// AttendingPreset indexes Config.Attendings. -1 keeps the parsed
	// attending. A typed attending override wins over any preset.
	AttendingPreset int `yaml:"attending_preset"`

	// ProcedureSet and AnesthesiaSet record that the editor typed these
	// schedule values, so a re-parse must not replace them.
	ProcedureSet  bool `yaml:"procedure_set"`
	AnesthesiaSet bool `yaml:"anesthesia_set"`
}

// New starts an empty session. The report date is today and the operation
// date tomorrow, both in now's location.
func New(now time.Time, cfg types.Config) *Session {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Parsed:    types.NewFieldModel(),
		Schedule: types.Schedule{
			ReportDate:    today,
			OperationDate: today.AddDate(0, 0, 1),
			OperationTime: cfg.OperationTime,
			TimeZone:      cfg.TimeZoneLabel,
			Anesthesia:    cfg.Anesthesia,
		},
		AttendingPreset: -1,
	}
}

// Parse replaces the parsed model with a fresh extraction of raw. Overrides
// are kept. The extracted procedure and anesthesia replace the schedule
// values unless the editor set them; an empty anesthesia falls back to the
// configured default at Final.
func (s *Session) Parse(raw string, now time.Time, log zerolog.Logger) {
	s.Raw = raw
	s.Parsed = extract.Extract(raw)
	s.UpdatedAt = now

	if !s.ProcedureSet {
		s.Schedule.Procedure = s.Parsed.Procedure
	}
	if !s.AnesthesiaSet {
		s.Schedule.Anesthesia = s.Parsed.Anesthesia
	}

	log.Debug().
		Str("session", s.ID).
		Str("name", s.Parsed.Name).
		Str("rm", s.Parsed.MedicalRecord).
		Int("supporting", len(s.Parsed.SupportingItems)).
		Bool("procedure", s.Parsed.Procedure != "").
		Bool("overrides", !s.Overrides.IsEmpty()).
		Msg("parsed note")
}

// Reset clears the note, the parsed model, and every edit. The session gets
// a new ID.
func (s *Session) Reset(now time.Time, cfg types.Config) {
	*s = *New(now, cfg)
}

// ErrNoSession is returned by Load when the session file does not exist.
var ErrNoSession = errors.New("no session")

// Load reads a session file.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w at %s", ErrNoSession, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading session file: %w", err)
	}
	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing session file: %w", err)
	}
	if s.Parsed.SupportingItems == nil {
		s.Parsed.SupportingItems = []string{}
	}
	return &s, nil
}

// LoadOrNew reads path, or starts a new session when the file is missing.
func LoadOrNew(path string, now time.Time, cfg types.Config) (*Session, error) {
	s, err := Load(path)
	if errors.Is(err, ErrNoSession) {
		return New(now, cfg), nil
	}
	return s, err
}

// Save writes the session to path, creating parent directories.
func (s *Session) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}
