package domain

import "testing"

func TestParseSummaryMode(t *testing.T) {
	tests := []struct {
		value string
		want  SummaryMode
		ok    bool
	}{
		{"", SummaryModeAuto, true},
		{"auto", SummaryModeAuto, true},
		{"local", SummaryModeLocal, true},
		{"remote", "", false},
		{"LOCAL", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseSummaryMode(tt.value)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseSummaryMode(%q) = (%q, %v), want (%q, %v)", tt.value, got, ok, tt.want, tt.ok)
		}
	}
}
