package decode

import (
	"errors"
	"testing"
)

const jsonFixture = `[
  {"fzg": 601, "linie": 4, "lat": "50.9795", "lng": "11.0328", "schedule": "+ 03:30", "ziel": "Hauptbahnhof", "typ": "Strab", "klima": true},
  {"fzg": 218, "linie": 9, "lat": "50.99", "lng": "11.04", "schedule": "ab: 14:05", "ziel": null, "typ": "Bus"}
]`

func TestJSONDecode(t *testing.T) {
	markers, err := JSON{}.Decode([]byte(jsonFixture))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(markers) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(markers))
	}

	if markers[0]["fzg"] != "601" {
		t.Errorf("numeric field not kept literally: %q", markers[0]["fzg"])
	}
	if markers[0]["klima"] != "true" {
		t.Errorf("boolean field = %q, want %q", markers[0]["klima"], "true")
	}
	if markers[1]["schedule"] != "ab: 14:05" {
		t.Errorf("schedule = %q", markers[1]["schedule"])
	}
	// null values do not appear as keys
	if _, ok := markers[1]["ziel"]; ok {
		t.Error("null field should be absent from the marker")
	}
}

func TestJSONDecode_PreservesFractionalDigits(t *testing.T) {
	markers, err := JSON{}.Decode([]byte(`[{"lat": 50.9795, "lng": 11.0328}]`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if markers[0]["lat"] != "50.9795" {
		t.Errorf("lat = %q, want the literal digits", markers[0]["lat"])
	}
}

func TestJSONDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `[{"fzg": 601`},
		{"object instead of array", `{"fzg": 601}`},
		{"plain text", `kein json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := JSON{}.Decode([]byte(tt.body))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var derr *DecodeError
			if !errors.As(err, &derr) {
				t.Fatalf("expected *DecodeError, got %T", err)
			}
		})
	}
}
