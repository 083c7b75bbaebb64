package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Load reads the application configuration from the first readable path,
// applies environment overrides and defaults, and validates the result. The
// loaded config is returned, not stored in a package global, so components
// can be constructed and tested in isolation.
func Load(paths ...string) (*AppConfig, error) {
	if len(paths) == 0 {
		paths = []string{"config.yml", "/etc/tramflux/config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	cfg.applyDefaults()

	v := validator.New()
	if err := v.Struct(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Credentials and deployment-specific endpoints may come from the
// environment instead of the config file.
func (c *AppConfig) applyEnv() {
	c.Sink.Influx.Addr = envStr("TRAMFLUX_INFLUX_ADDR", c.Sink.Influx.Addr)
	c.Sink.Influx.Username = envStr("TRAMFLUX_INFLUX_USER", c.Sink.Influx.Username)
	c.Sink.Influx.Password = envStr("TRAMFLUX_INFLUX_PASSWORD", c.Sink.Influx.Password)
	c.Sink.Influx.Database = envStr("TRAMFLUX_INFLUX_DB", c.Sink.Influx.Database)
	c.Sink.SQLitePath = envStr("TRAMFLUX_SQLITE_PATH", c.Sink.SQLitePath)
	c.Poll.IntervalMS = envInt("TRAMFLUX_POLL_INTERVAL_MS", c.Poll.IntervalMS)
}

func (c *AppConfig) applyDefaults() {
	if c.Upstream.TimeoutMS == 0 {
		c.Upstream.TimeoutMS = 10000
	}
	if c.Poll.IntervalMS == 0 {
		c.Poll.IntervalMS = 30000
	}
	if c.Poll.OnCycleError == "" {
		c.Poll.OnCycleError = PolicyContinue
	}
	if c.Poll.OnWriteError == "" {
		c.Poll.OnWriteError = PolicyLog
	}
	if c.Sink.Driver == "" {
		c.Sink.Driver = "influx"
	}
	if c.Sink.Measurement == "" {
		c.Sink.Measurement = "vehicle_position"
	}
	if c.Sink.SQLitePath == "" {
		c.Sink.SQLitePath = "./tramflux.db"
	}
	if c.Sink.Influx.Addr == "" {
		c.Sink.Influx.Addr = "http://localhost:8086"
	}
	if c.Sink.Influx.Database == "" {
		c.Sink.Influx.Database = "tramflux"
	}
	if c.Status.Port == 0 {
		c.Status.Port = 8080
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
