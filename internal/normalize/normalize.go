// Package normalize converts loosely typed upstream markers into canonical
// position samples: coordinate sanitization, delay string interpretation,
// vehicle type translation and the tag/field split for time-series storage.
// Normalization is pure and total; a malformed field degrades to an omitted
// tag or a NaN coordinate, never to an error, so one corrupt marker cannot
// abort its siblings.
package normalize

import (
	"strconv"
	"strings"

	"tramflux/internal/marker"
)

// Sample is the canonical position record, built fresh per marker per cycle
// and handed straight to the sink. Tags hold only present values; absent
// upstream fields are omitted, never written as empty or zero placeholders.
type Sample struct {
	Latitude     float64
	Longitude    float64
	DelaySeconds *int // nil when the vehicle has not departed yet
	Tags         map[string]string
}

// Upstream field aliases, one list per canonical field. The early XML feed
// capitalizes attribute names, the JSON revision uses lowercase; both are
// accepted so the normalizer is version-blind.
var (
	latField      = []string{"lat", "Lat"}
	lngField      = []string{"lng", "Lng"}
	vehicleField  = []string{"fzg", "Fzg"}
	routeField    = []string{"linie", "Linie"}
	tripField     = []string{"kurs", "Kurs"}
	scheduleField = []string{"schedule", "Abweichung"}
	destField     = []string{"ziel", "Zielschild"}
	patternField  = []string{"fahrt", "Fahrt"}
	typeField     = []string{"typ", "Typ"}
	variantField  = []string{"variante", "Variante"}
	acField       = []string{"klima", "Klima"}
	wifiField     = []string{"wlan", "WLAN"}
	activeField   = []string{"aktiv", "Aktiv"}
)

// Normalize builds the canonical sample for one raw marker.
func Normalize(raw marker.Raw) Sample {
	s := Sample{Tags: make(map[string]string)}

	lat, _ := raw.Lookup(latField...)
	lng, _ := raw.Lookup(lngField...)
	s.Latitude = FixLocation(lat)
	s.Longitude = FixLocation(lng)

	// A future departure has no delay yet; the field is omitted, which is
	// distinct from an on-time 0.
	if sched, ok := raw.Lookup(scheduleField...); ok && strings.TrimSpace(sched) != "" && !IsFutureDeparture(sched) {
		d := ScheduleToSeconds(sched)
		s.DelaySeconds = &d
	}

	s.intTag("vehicle", raw, vehicleField)
	s.intTag("route", raw, routeField)
	s.intTag("trip", raw, tripField)
	s.intTag("trip_pattern", raw, patternField)
	s.strTag("destination", raw, destField)
	s.strTag("service_variant", raw, variantField)

	if t, _ := raw.Lookup(typeField...); strings.TrimSpace(t) != "" {
		s.Tags["vehicle_type"] = TranslateVehicleType(strings.TrimSpace(t))
	}

	// Boolean tags are asymmetric on purpose: always present, and anything
	// but the exact upstream true marker counts as false, absence included.
	ac, _ := raw.Lookup(acField...)
	wifi, _ := raw.Lookup(wifiField...)
	active, _ := raw.Lookup(activeField...)
	s.Tags["has_ac"] = strconv.FormatBool(isTrueMarker(ac))
	s.Tags["has_wifi"] = strconv.FormatBool(isTrueMarker(wifi))
	s.Tags["active"] = strconv.FormatBool(isTrueMarker(active))

	return s
}

// intTag includes a numeric-looking upstream field only when it parses as an
// integer; anything else is omitted rather than written as zero.
func (s *Sample) intTag(key string, raw marker.Raw, names []string) {
	v, ok := raw.Lookup(names...)
	if !ok {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return
	}
	s.Tags[key] = strconv.Itoa(n)
}

// strTag includes a string field only when non-empty after trimming.
func (s *Sample) strTag(key string, raw marker.Raw, names []string) {
	v, ok := raw.Lookup(names...)
	if !ok {
		return
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return
	}
	s.Tags[key] = v
}

func isTrueMarker(v string) bool {
	return v == "J" || v == "true"
}
