package sink

import (
	"testing"
	"time"

	"tramflux/internal/normalize"
)

func TestFromSample(t *testing.T) {
	delay := 210
	at := time.Unix(1700000000, 0)
	s := normalize.Sample{
		Latitude:     50.9795,
		Longitude:    11.0328,
		DelaySeconds: &delay,
		Tags:         map[string]string{"vehicle": "601", "vehicle_type": "tram"},
	}

	p := FromSample("vehicle_position", s, at)

	if p.Measurement != "vehicle_position" {
		t.Errorf("measurement = %q", p.Measurement)
	}
	if !p.Time.Equal(at) {
		t.Errorf("time = %v, want %v", p.Time, at)
	}
	if p.Fields["latitude"] != 50.9795 || p.Fields["longitude"] != 11.0328 {
		t.Errorf("coordinate fields = %v", p.Fields)
	}
	if p.Fields["delay"] != 210 {
		t.Errorf("delay field = %v, want 210", p.Fields["delay"])
	}
	if p.Tags["vehicle"] != "601" {
		t.Errorf("tags = %v", p.Tags)
	}
}

func TestFromSample_OmittedDelayStaysOmitted(t *testing.T) {
	s := normalize.Sample{
		Latitude:  50.98,
		Longitude: 11.03,
		Tags:      map[string]string{},
	}

	p := FromSample("vehicle_position", s, time.Now())

	if _, ok := p.Fields["delay"]; ok {
		t.Error("delay field present for a not-yet-departed vehicle, want omitted")
	}
	if len(p.Fields) != 2 {
		t.Errorf("fields = %v, want only coordinates", p.Fields)
	}
}
