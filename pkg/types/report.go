// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Schedule holds the operative scheduling inputs. The editor owns these; the
// extractor only suggests Procedure and Anesthesia.
type Schedule struct {
	// ReportDate is the date the report is written (default: today).
	ReportDate time.Time `json:"report_date" yaml:"report_date"`

	// OperationDate is the scheduled operation date (default: tomorrow).
	OperationDate time.Time `json:"operation_date" yaml:"operation_date"`

	// OperationTime is the clock time as typed, "HH.MM" or "HH:MM".
	OperationTime string `json:"operation_time" yaml:"operation_time"`

	// TimeZone is the zone label printed after clock times (e.g. "WITA").
	TimeZone string `json:"timezone" yaml:"timezone"`

	Anesthesia string `json:"anesthesia" yaml:"anesthesia"`
	Procedure  string `json:"procedure" yaml:"procedure"`
}

// ReportInput carries the explicit parameters the renderer needs on top of a
// finalized FieldModel. Placeholders for missing required values are the
// caller's responsibility.
type ReportInput struct {
	Schedule Schedule `json:"schedule" yaml:"schedule"`

	Greeting string `json:"greeting" yaml:"greeting"`
	Closing  string `json:"closing" yaml:"closing"`

	Payer    string `json:"payer" yaml:"payer"`
	CareType string `json:"care_type" yaml:"care_type"`
	Room     string `json:"room" yaml:"room"`

	// SupportingRaw is rendered verbatim and wins over SupportingItems when
	// non-empty.
	SupportingRaw   string   `json:"supporting_raw" yaml:"supporting_raw"`
	SupportingItems []string `json:"supporting_items" yaml:"supporting_items"`

	PlanItems   []string `json:"plan_items" yaml:"plan_items"`
	Medications []string `json:"medications" yaml:"medications"`

	Residents string `json:"residents" yaml:"residents"`
	Attending string `json:"attending" yaml:"attending"`
}
