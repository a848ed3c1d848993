// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"crlf", "a\r\nb\rc", "a\nb\nc"},
		{"tabs and spaces", "KU\t\tbaik   sekali", "KU baik sekali"},
		{"trailing spaces", "S: demam   \nO: baik ", "S: demam\nO: baik"},
		{"nbsp", "BB :\u00a025 kg", "BB : 25 kg"},
		{"zero width", "R\u200bM 123", "RM 123"},
		{"keeps blank lines", "a\n\nb", "a\n\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestStripBullet(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"- OPG X-Ray", "OPG X-Ray"},
		{"• Thorax", "Thorax"},
		{"  * CT/BT  ", "CT/BT"},
		{"1. Lab darah", "Lab darah"},
		{"2) HBsAg", "HBsAg"},
		{"-- double", "double"},
		{"1.5 cm", "1.5 cm"},
		{"M. Fikri", "M. Fikri"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StripBullet(tt.in))
		})
	}
}

func TestDedupeFold(t *testing.T) {
	in := []string{"  OPG X-Ray ", "", "opg x-ray", "Thorax", "   ", "THORAX", "Lab"}
	got := DedupeFold(in)
	assert.Equal(t, []string{"OPG X-Ray", "Thorax", "Lab"}, got)

	assert.Equal(t, got, DedupeFold(got), "dedupe must be idempotent")
	assert.NotNil(t, DedupeFold(nil))
	assert.Empty(t, DedupeFold(nil))
}

func TestDedupeFoldUnicode(t *testing.T) {
	got := DedupeFold([]string{"Édema gingiva", "édema GINGIVA"})
	assert.Equal(t, []string{"Édema gingiva"}, got)
}

func TestNonEmptyLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, NonEmptyLines("\n a \n\n b\n"))
	assert.Equal(t, []string{}, NonEmptyLines(""))
}

func TestSubstring(t *testing.T) {
	assert.Equal(t, "bc", Substring("abcd", 1, 3))
	assert.Equal(t, "abcd", Substring("abcd", -5, 99))
	assert.Equal(t, "", Substring("abcd", 3, 1))
	assert.Equal(t, "é", Substring("héllo", 1, 3))
	assert.Equal(t, "éllo", Substring("héllo", 2, 99))
	assert.Equal(t, "h", Substring("héllo", 0, 2))
}

func TestJoinResidents(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"comma list", "drg. Reza, drg. Mike,drg. Amal", "drg. Reza, drg. Mike, drg. Amal"},
		{"lines with bullets", "- drg. Reza\n- drg. Mike\n\n", "drg. Reza, drg. Mike"},
		{"numbered", "1. drg. Reza\n2. drg. Mike", "drg. Reza, drg. Mike"},
		{"dan and ampersand", "drg. Reza dan drg. Mike & drg. Amal", "drg. Reza, drg. Mike, drg. Amal"},
		{"duplicates", "drg. Reza; DRG. REZA", "drg. Reza"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinResidents(tt.in))
		})
	}
}

func TestDayNames(t *testing.T) {
	assert.Equal(t, "Senin", LocalDayName("Monday"))
	assert.Equal(t, "Minggu", LocalDayName("Sunday"))
	assert.Equal(t, "Someday", LocalDayName("Someday"))

	// 2025-12-31 is a Wednesday.
	d := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Rabu", DayName(d))
	assert.Equal(t, "31/12/2025", FormatDate(d))
	assert.Equal(t, "05/01/2026", FormatDate(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)))
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"05/01/2026", "05-01-2026", "2026-01-05", "5/1/2026"} {
		t.Run(in, func(t *testing.T) {
			got, ok := ParseDate(in, time.UTC)
			require.True(t, ok)
			assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), got)
		})
	}
	_, ok := ParseDate("besok", time.UTC)
	assert.False(t, ok)
}
