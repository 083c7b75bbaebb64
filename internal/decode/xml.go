package decode

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"tramflux/internal/marker"
)

// markerRoot is the element whose direct children are the marker records.
// Pinned by the upstream contract.
const markerRoot = "Fahrzeuge"

// XML decodes the attribute-based XML feed version. Attributes and child
// element text nodes are folded uniformly into the marker's key/value
// record; entities are resolved by the tokenizer. The whole document is
// token-walked, so any well-formedness violation fails the decode even when
// it occurs after the last marker.
type XML struct{}

func (XML) Decode(body []byte) ([]marker.Raw, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))

	var markers []marker.Raw
	rootSeen := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &DecodeError{Format: "xml", Err: err}
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if !rootSeen {
			if se.Name.Local != markerRoot {
				return nil, &DecodeError{Format: "xml", Err: fmt.Errorf("unexpected root element %q", se.Name.Local)}
			}
			rootSeen = true
			continue
		}
		m, err := decodeMarkerElement(dec, se)
		if err != nil {
			return nil, &DecodeError{Format: "xml", Err: err}
		}
		markers = append(markers, m)
	}
	if !rootSeen {
		return nil, &DecodeError{Format: "xml", Err: errors.New("marker collection root not found")}
	}
	return markers, nil
}

// decodeMarkerElement consumes tokens up to the marker's end element. Marker
// fields arrive as attributes; some feed revisions additionally nest single
// elements whose text content is the value.
func decodeMarkerElement(dec *xml.Decoder, start xml.StartElement) (marker.Raw, error) {
	m := make(marker.Raw, len(start.Attr))
	for _, a := range start.Attr {
		m[a.Name.Local] = a.Value
	}

	depth := 0
	var field string
	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			field = t.Name.Local
			text.Reset()
			for _, a := range t.Attr {
				m[a.Name.Local] = a.Value
			}
		case xml.CharData:
			if depth > 0 {
				text.Write(t)
			}
		case xml.EndElement:
			if depth == 0 {
				return m, nil
			}
			m[field] = text.String()
			field = ""
			depth--
		}
	}
}
