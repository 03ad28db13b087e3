package literal

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestFormatStrings(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"plain", "Milk", "'Milk'"},
		{"empty", "", "''"},
		{"embedded quote", "O'Reilly", "'O''Reilly'"},
		{"only quotes", "''", "''''''"},
		{"unicode", "Käse", "'Käse'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.value); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatNull(t *testing.T) {
	if got := Format(nil); got != "null" {
		t.Fatalf("Format(nil) = %q, want null", got)
	}

	var s *string
	if got := Format(s); got != "null" {
		t.Fatalf("Format((*string)(nil)) = %q, want null", got)
	}

	var d *decimal.Decimal
	if got := Format(d); got != "null" {
		t.Fatalf("Format((*decimal.Decimal)(nil)) = %q, want null", got)
	}
}

func TestFormatNumbersAndBooleans(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"int", 42, "42"},
		{"negative int", -7, "-7"},
		{"int64", int64(9007199254740993), "9007199254740993"},
		{"uint", uint(18), "18"},
		{"float64", 2.55, "2.55"},
		{"float64 integral", 10.0, "10"},
		{"float32", float32(0.5), "0.5"},
		{"true", true, "true"},
		{"false", false, "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.value); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatDecimal(t *testing.T) {
	d := decimal.RequireFromString("2.55")
	if got := Format(d); got != "2.55" {
		t.Fatalf("Format(decimal 2.55) = %q, want 2.55", got)
	}

	// Exactness is the point of using decimal over float.
	d = decimal.RequireFromString("0.1").Add(decimal.RequireFromString("0.2"))
	if got := Format(d); got != "0.3" {
		t.Fatalf("Format(0.1+0.2) = %q, want 0.3", got)
	}
}

func TestFormatGuid(t *testing.T) {
	id := uuid.MustParse("0f7b6e12-3c4d-4d6e-9f8a-1b2c3d4e5f60")
	if got := Format(id); got != "0f7b6e12-3c4d-4d6e-9f8a-1b2c3d4e5f60" {
		t.Fatalf("Format(uuid) = %q, want unquoted canonical form", got)
	}
}

func TestFormatDateTimeOffset(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	ts := time.Date(2024, 8, 15, 9, 19, 4, 0, loc)
	if got := Format(ts); got != "2024-08-15T08:19:04Z" {
		t.Fatalf("Format(time) = %q, want 2024-08-15T08:19:04Z", got)
	}
}

func TestFormatPointerDereference(t *testing.T) {
	n := 10
	if got := Format(&n); got != "10" {
		t.Fatalf("Format(*int) = %q, want 10", got)
	}

	s := "O'Reilly"
	if got := Format(&s); got != "'O''Reilly'" {
		t.Fatalf("Format(*string) = %q, want 'O''Reilly'", got)
	}
}

func TestFormatFallback(t *testing.T) {
	type weird struct{ A int }
	if got := Format(weird{A: 1}); got != "{1}" {
		t.Fatalf("Format(struct) = %q, want default fmt form {1}", got)
	}
}
