package nps

import (
	"errors"
	"testing"

	apierrors "github.com/parkscout/nps-mcp-server/internal/errors"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"absent defaults to 10", 0, 10},
		{"negative defaults to 10", -5, 10},
		{"minimum passes through", 1, 1},
		{"mid-range passes through", 25, 25},
		{"max passes through", 50, 50},
		{"just above max clamps", 51, 50},
		{"far above max clamps", 10000, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampLimit(tt.limit); got != tt.want {
				t.Errorf("ClampLimit(%d) = %d, want %d", tt.limit, got, tt.want)
			}
		})
	}
}

func TestClampStart(t *testing.T) {
	if got := ClampStart(-1); got != 0 {
		t.Errorf("ClampStart(-1) = %d, want 0", got)
	}
	if got := ClampStart(30); got != 30 {
		t.Errorf("ClampStart(30) = %d, want 30", got)
	}
}

func TestValidStateCodes_Count(t *testing.T) {
	// 50 states + DC + 5 territories
	if got := len(ValidStateCodes()); got != 56 {
		t.Errorf("valid code count = %d, want 56", got)
	}
}

func TestNormalizeStateCodes_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single code", "CA", []string{"CA"}},
		{"lowercase", "ca", []string{"CA"}},
		{"multiple with spaces", " ca , NV ,ut", []string{"CA", "NV", "UT"}},
		{"territory", "PR", []string{"PR"}},
		{"district", "dc", []string{"DC"}},
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeStateCodes(tt.input)
			if err != nil {
				t.Fatalf("NormalizeStateCodes(%q) returned error: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("NormalizeStateCodes(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("code[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalizeStateCodes_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantInvalid []string
	}{
		{"single invalid", "XX", []string{"XX"}},
		{"invalid among valid", "CA,XX,NV", []string{"XX"}},
		{"multiple invalid", "ZZ,CA,QQ", []string{"ZZ", "QQ"}},
		{"lowercase invalid", "xx", []string{"XX"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeStateCodes(tt.input)
			if err == nil {
				t.Fatalf("NormalizeStateCodes(%q) expected error", tt.input)
			}

			var sc *apierrors.InvalidStateCodesError
			if !errors.As(err, &sc) {
				t.Fatalf("error type = %T, want *InvalidStateCodesError", err)
			}
			if len(sc.Invalid) != len(tt.wantInvalid) {
				t.Fatalf("invalid = %v, want %v", sc.Invalid, tt.wantInvalid)
			}
			for i := range sc.Invalid {
				if sc.Invalid[i] != tt.wantInvalid[i] {
					t.Errorf("invalid[%d] = %q, want %q", i, sc.Invalid[i], tt.wantInvalid[i])
				}
			}
			if len(sc.Valid) != 56 {
				t.Errorf("valid set size = %d, want 56", len(sc.Valid))
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	n, err := parseCount("/parks", "total", "497")
	if err != nil {
		t.Fatalf("parseCount returned error: %v", err)
	}
	if n != 497 {
		t.Errorf("parseCount = %d, want 497", n)
	}

	// Empty counters coerce to zero
	n, err = parseCount("/parks", "start", "")
	if err != nil {
		t.Fatalf("parseCount on empty returned error: %v", err)
	}
	if n != 0 {
		t.Errorf("parseCount on empty = %d, want 0", n)
	}
}

func TestParseCount_NonNumeric(t *testing.T) {
	_, err := parseCount("/parks", "total", "lots")
	if err == nil {
		t.Fatal("expected error for non-numeric counter")
	}

	var ue *apierrors.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("error type = %T, want *UpstreamError", err)
	}
	if ue.Endpoint != "/parks" {
		t.Errorf("endpoint = %q, want %q", ue.Endpoint, "/parks")
	}
}
