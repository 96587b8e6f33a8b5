package club

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims and collapses", "  Ana   Silva ", "ana silva"},
		{"already normalized", "ana silva", "ana silva"},
		{"lower-cases", "CARLOS Dias", "carlos dias"},
		{"tabs and newlines", "\tJoao\n Pedro ", "joao pedro"},
		{"empty", "", ""},
		{"whitespace only", "   \t ", ""},
		{"single name", " Zico ", "zico"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeName(tt.input); got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeNameEquality(t *testing.T) {
	if NormalizeName("  Ana   Silva ") != NormalizeName("ana silva") {
		t.Error("expected differently spaced spellings to normalize equal")
	}
}
