package normalize

import "testing"

func TestTranslateVehicleType(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Strab", "tram"},
		{"Bus", "bus"},
		{"Schienenschleifzug", "railgrinder"},
		{"Unknown", "Unknown"},
		{"Oldtimer", "Oldtimer"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := TranslateVehicleType(tt.input); got != tt.expected {
			t.Errorf("TranslateVehicleType(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
