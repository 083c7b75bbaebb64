package normalize

import "testing"

func TestScheduleToSeconds(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"late with space", "+ 03:30", 210},
		{"late without space", "+03:30", 210},
		{"early", "- 03:20", -200},
		{"on time", "00:00", 0},
		{"unsigned offset", "01:15", 75},
		{"future departure", "ab: 14:05", 0},
		{"free text", "Oldtimer", 0},
		{"empty", "", 0},
		{"single digit groups", "3:3", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScheduleToSeconds(tt.input)
			if got != tt.expected {
				t.Errorf("ScheduleToSeconds(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsFutureDeparture(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"ab: 14:05", true},
		{"  ab: 09:00", true},
		{"+ 03:30", false},
		{"00:00", false},
		{"Oldtimer", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsFutureDeparture(tt.input); got != tt.expected {
			t.Errorf("IsFutureDeparture(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
