package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/edgewatch/edgewatch/internal/sensor"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultReadings     = 10
	DefaultTickInterval = 1 * time.Second
	DefaultOutputPath   = "edge_health_log.json"
)

// Config is the top-level configuration tree.
// Fields map 1:1 to config.example.yaml.
type Config struct {
	Monitor MonitorConfig `yaml:"monitor"`
}

// MonitorConfig holds all monitor-run settings.
type MonitorConfig struct {
	// Readings is the number of ticks in one run. 0 means continuous:
	// the monitor runs until its context is cancelled.
	Readings int `yaml:"readings"`

	// TickInterval is the pause between consecutive samples.
	TickInterval time.Duration `yaml:"tick_interval"`

	// OutputPath is where the JSON report is written. Overwritten on each run.
	OutputPath string `yaml:"output_path"`

	// PromOutputPath, when non-empty, enables the Prometheus textfile sink.
	PromOutputPath string `yaml:"prom_output_path"`

	// Seed seeds the sampler's random source. 0 means time-seeded.
	Seed int64 `yaml:"seed"`

	// Sensors is the ordered list of simulated sensors. Order determines
	// generation order, so runs with a fixed Seed are reproducible.
	Sensors []SensorConfig `yaml:"sensors"`
}

// SensorConfig describes one simulated sensor.
type SensorConfig struct {
	// Name is the unique sensor identifier, used as the key in readings,
	// anomaly sets and the health summary.
	Name string `yaml:"name"`

	// Min and Max delimit the normal operating range. Values strictly
	// outside it are flagged as anomalies.
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`

	// GenMin and GenMax delimit the synthetic generation range. They are
	// wider than [Min, Max] in the default config so anomalies occur.
	GenMin float64 `yaml:"gen_min"`
	GenMax float64 `yaml:"gen_max"`
}

// Bounds returns the sensor's normal operating range.
func (s SensorConfig) Bounds() sensor.Bounds {
	return sensor.Bounds{Min: s.Min, Max: s.Max}
}

// Range returns the sensor's generation range.
func (s SensorConfig) Range() sensor.Range {
	return sensor.Range{Lo: s.GenMin, Hi: s.GenMax}
}

// Names returns the sensor names in configuration order.
func (m MonitorConfig) Names() []string {
	out := make([]string, len(m.Sensors))
	for i, s := range m.Sensors {
		out[i] = s.Name
	}
	return out
}

// BoundsByName returns the per-sensor normal operating ranges.
func (m MonitorConfig) BoundsByName() map[string]sensor.Bounds {
	out := make(map[string]sensor.Bounds, len(m.Sensors))
	for _, s := range m.Sensors {
		out[s.Name] = s.Bounds()
	}
	return out
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with the defaults from Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config pre-populated with the built-in sensor set and
// run parameters. It is valid on its own, so the binary runs without a
// config file at all.
func Default() *Config {
	return &Config{
		Monitor: MonitorConfig{
			Readings:     DefaultReadings,
			TickInterval: DefaultTickInterval,
			OutputPath:   DefaultOutputPath,
			Sensors: []SensorConfig{
				{Name: "temperature", Min: 19.0, Max: 24.0, GenMin: 18.5, GenMax: 24.5},
				{Name: "vibration", Min: 0.1, Max: 1.0, GenMin: 0.05, GenMax: 1.1},
				{Name: "voltage", Min: 110.0, Max: 125.0, GenMin: 108.0, GenMax: 127.0},
			},
		},
	}
}

// validate checks required fields and structural constraints.
func validate(cfg *Config) error {
	m := cfg.Monitor
	if m.Readings < 0 {
		return fmt.Errorf("monitor.readings must not be negative")
	}
	if m.TickInterval <= 0 {
		return fmt.Errorf("monitor.tick_interval must be positive")
	}
	if m.OutputPath == "" {
		return fmt.Errorf("monitor.output_path is required")
	}
	if len(m.Sensors) == 0 {
		return fmt.Errorf("monitor.sensors must list at least one sensor")
	}
	seen := make(map[string]bool, len(m.Sensors))
	for i, s := range m.Sensors {
		if s.Name == "" {
			return fmt.Errorf("sensors[%d]: name is required", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("sensors[%d] %q: duplicate name", i, s.Name)
		}
		seen[s.Name] = true
		if s.Min >= s.Max {
			return fmt.Errorf("sensors[%d] %q: min must be below max", i, s.Name)
		}
		if s.GenMin >= s.GenMax {
			return fmt.Errorf("sensors[%d] %q: gen_min must be below gen_max", i, s.Name)
		}
	}
	return nil
}
