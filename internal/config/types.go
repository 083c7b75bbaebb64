package config

// Failure policies for the poll loop.
const (
	// PolicyContinue logs a failed cycle and waits for the next interval.
	PolicyContinue = "continue"
	// PolicyTerminate exits the process so an external supervisor restarts
	// it from scratch.
	PolicyTerminate = "terminate"
	// PolicyLog records a failed per-marker write and carries on.
	PolicyLog = "log"
)

// UpstreamConfig pins the portal endpoints and the payload format. The
// format is fixed per deployment, never auto-detected.
type UpstreamConfig struct {
	BaseURL     string `yaml:"baseURL" validate:"required,url"`
	DataURL     string `yaml:"dataURL" validate:"required,url"`
	FeedVersion string `yaml:"feedVersion" validate:"required,oneof=xml json gtfsrt"`
	TimeoutMS   int    `yaml:"timeoutMS" validate:"gte=0"`
}

// PollConfig controls the loop cadence and its failure policies.
type PollConfig struct {
	IntervalMS   int    `yaml:"intervalMS" validate:"gte=0"`
	OnCycleError string `yaml:"onCycleError" validate:"omitempty,oneof=continue terminate"`
	OnWriteError string `yaml:"onWriteError" validate:"omitempty,oneof=log terminate"`
}

// InfluxConfig contains the InfluxDB 1.x connection settings.
type InfluxConfig struct {
	Addr     string `yaml:"addr" validate:"omitempty,url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// SinkConfig selects and configures the time-series store.
type SinkConfig struct {
	Driver      string       `yaml:"driver" validate:"omitempty,oneof=influx sqlite"`
	Measurement string       `yaml:"measurement"`
	SQLitePath  string       `yaml:"sqlitePath"`
	Influx      InfluxConfig `yaml:"influx"`
}

// StatusConfig configures the optional HTTP status endpoint.
type StatusConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port" validate:"omitempty,gt=0"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Upstream UpstreamConfig `yaml:"upstream" validate:"required"`
	Poll     PollConfig     `yaml:"poll"`
	Sink     SinkConfig     `yaml:"sink"`
	Status   StatusConfig   `yaml:"status"`
}
