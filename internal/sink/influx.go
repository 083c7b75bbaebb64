package sink

import (
	"context"
	"fmt"

	client "github.com/influxdata/influxdb1-client/v2"
)

// Influx writes points into an InfluxDB 1.x database, one point per write.
type Influx struct {
	client   client.Client
	database string
}

func NewInflux(addr, username, password, database string) (*Influx, error) {
	c, err := client.NewHTTPClient(client.HTTPConfig{
		Addr:     addr,
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	return &Influx{client: c, database: database}, nil
}

// EnsureSchema creates the target database. CREATE DATABASE is idempotent in
// InfluxDB 1.x, so this doubles as the existence check.
func (s *Influx) EnsureSchema(ctx context.Context) error {
	q := client.NewQuery(fmt.Sprintf("CREATE DATABASE %q", s.database), "", "")
	resp, err := s.client.Query(q)
	if err != nil {
		return err
	}
	return resp.Error()
}

func (s *Influx) WritePoint(ctx context.Context, p Point) error {
	bp, err := client.NewBatchPoints(client.BatchPointsConfig{
		Database:  s.database,
		Precision: "s",
	})
	if err != nil {
		return &WriteError{Measurement: p.Measurement, Err: err}
	}
	// NaN coordinates are rejected here by the line protocol, which is the
	// intended failure point for markers with unparseable locations.
	pt, err := client.NewPoint(p.Measurement, p.Tags, p.Fields, p.Time)
	if err != nil {
		return &WriteError{Measurement: p.Measurement, Err: err}
	}
	bp.AddPoint(pt)
	if err := s.client.Write(bp); err != nil {
		return &WriteError{Measurement: p.Measurement, Err: err}
	}
	return nil
}

func (s *Influx) Close() error { return s.client.Close() }
