package decode

import (
	"strconv"

	gtfs "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"tramflux/internal/marker"
)

// GTFSRT decodes a GTFS-Realtime FeedMessage and maps each vehicle position
// entity onto the portal's lowercase field names, so the normalizer stays
// format-blind. Entities without a position are skipped.
type GTFSRT struct{}

func (GTFSRT) Decode(body []byte) ([]marker.Raw, error) {
	var msg gtfs.FeedMessage
	if err := proto.Unmarshal(body, &msg); err != nil {
		return nil, &DecodeError{Format: "gtfsrt", Err: err}
	}

	markers := make([]marker.Raw, 0, len(msg.Entity))
	for _, ent := range msg.Entity {
		vp := ent.GetVehicle()
		if vp == nil || vp.GetPosition() == nil {
			continue
		}
		pos := vp.GetPosition()
		m := marker.Raw{
			"lat": formatCoord(pos.GetLatitude()),
			"lng": formatCoord(pos.GetLongitude()),
		}
		if id := vp.GetVehicle().GetId(); id != "" {
			m["fzg"] = id
		}
		if route := vp.GetTrip().GetRouteId(); route != "" {
			m["linie"] = route
		}
		if trip := vp.GetTrip().GetTripId(); trip != "" {
			m["kurs"] = trip
		}
		markers = append(markers, m)
	}
	return markers, nil
}

func formatCoord(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
