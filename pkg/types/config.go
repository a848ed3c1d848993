// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Config holds the caller-side defaults for the parse → edit → render
// workflow. Fields carry mapstructure tags for viper and yaml tags for the
// example config file.
type Config struct {
	// Facility is the hospital name used when the note does not name one.
	Facility string `mapstructure:"facility" yaml:"facility"`

	// Payer and CareType seed the identity line when the note omits them.
	Payer    string `mapstructure:"payer" yaml:"payer"`
	CareType string `mapstructure:"care_type" yaml:"care_type"`

	// Location is the IANA zone used for "now" (e.g. "Asia/Makassar").
	Location string `mapstructure:"location" yaml:"location"`

	// TimeZoneLabel is printed after clock times (e.g. "WITA").
	TimeZoneLabel string `mapstructure:"timezone_label" yaml:"timezone_label"`

	// OperationTime is the default operation clock time, "HH.MM".
	OperationTime string `mapstructure:"operation_time" yaml:"operation_time"`

	// Anesthesia is the default anesthesia type.
	Anesthesia string `mapstructure:"anesthesia" yaml:"anesthesia"`

	Greeting string `mapstructure:"greeting" yaml:"greeting"`
	Closing  string `mapstructure:"closing" yaml:"closing"`

	// Attendings is the DPJP preset list; the first entry is the default.
	Attendings []string `mapstructure:"attendings" yaml:"attendings"`

	// PlanLibrary lists generic plan items the editor may pick from.
	PlanLibrary []string `mapstructure:"plan_library" yaml:"plan_library"`

	// DefaultPlan lists the plan items picked when the editor picks nothing.
	DefaultPlan []string `mapstructure:"default_plan" yaml:"default_plan"`

	// FastingHours is the fasting lead before the operation (default 6).
	FastingHours int `mapstructure:"fasting_hours" yaml:"fasting_hours"`

	// AntibioticLeadMinutes is the prophylactic antibiotic lead (default 60).
	AntibioticLeadMinutes int `mapstructure:"antibiotic_lead_minutes" yaml:"antibiotic_lead_minutes"`

	// DripFactor is drops per mL of the infusion set (20 macro, 60 micro).
	DripFactor int `mapstructure:"drip_factor" yaml:"drip_factor"`

	Fluid      string `mapstructure:"fluid" yaml:"fluid"`
	Antibiotic string `mapstructure:"antibiotic" yaml:"antibiotic"`

	// SessionFile is where the workflow context lives between commands.
	SessionFile string `mapstructure:"session_file" yaml:"session_file"`

	// LogLevel is a zerolog level name.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Facility:      "RSGMP UNHAS",
		Payer:         "BPJS",
		CareType:      "Rawat Inap",
		Location:      "Asia/Makassar",
		TimeZoneLabel: "WITA",
		OperationTime: "08.00",
		Anesthesia:    "general anestesi",
		Greeting:      "Assalamualaikum, selamat pagi dokter. Izin melaporkan pasien rencana operasi",
		Closing:       "Mohon arahan dan koreksi, terima kasih dokter 🙏",
		Attendings: []string{
			"drg. Husnul Basyar, Sp.B.M.Mf.",
			"drg. Abul Fauzi, Sp.B.M.Mf., Subsp.Tr.Mf.S.Tm.",
			"Dr. drg. Andi Tajrin, M.Kes., Sp.B.M.Mf., Subsp.C.O.Mf.",
		},
		PlanLibrary: []string{
			"ACC TS Anestesi",
			"IVFD (isi sesuai)",
			"Puasa pre-op (isi sesuai)",
			"Sikat gigi sebelum tidur & sebelum ke kamar operasi",
			"Gunakan masker bedah saat ke kamar operasi",
			"Antibiotik profilaksis (isi sesuai)",
			"Siap darah/PRC (jika perlu)",
		},
		DefaultPlan: []string{
			"ACC TS Anestesi",
			"Sikat gigi sebelum tidur & sebelum ke kamar operasi",
			"Gunakan masker bedah saat ke kamar operasi",
		},
		FastingHours:          6,
		AntibioticLeadMinutes: 60,
		DripFactor:            20,
		Fluid:                 "RL",
		Antibiotic:            "Ceftriaxone inj 1 gr",
		SessionFile:           ".soap-preop/session.yaml",
		LogLevel:              "info",
	}
}
