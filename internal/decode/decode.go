// Package decode turns a raw feed payload into the upstream-ordered marker
// sequence. The upstream response format changed across feed versions (XML
// attributes, then a JSON array, plus a GTFS-Realtime mirror); each format
// is a Decoder variant pinned by configuration, never sniffed from the
// payload.
package decode

import (
	"fmt"

	"tramflux/internal/marker"
)

// DecodeError reports a malformed or unexpectedly shaped payload.
type DecodeError struct {
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decoder produces raw markers in upstream order. No sorting, no dedup.
type Decoder interface {
	Decode(body []byte) ([]marker.Raw, error)
}

// ForVersion selects the decoder variant for a configured feed version.
func ForVersion(version string) (Decoder, error) {
	switch version {
	case "xml":
		return XML{}, nil
	case "json":
		return JSON{}, nil
	case "gtfsrt":
		return GTFSRT{}, nil
	}
	return nil, fmt.Errorf("decode: unknown feed version %q", version)
}
