package sink

import (
	"os"
	"path/filepath"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// parseTextfile reads the emitted file back through the Prometheus text
// parser, the same way a textfile collector would.
func parseTextfile(t *testing.T, path string) map[string]*dto.MetricFamily {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open textfile: %v", err)
	}
	defer f.Close()

	var parser expfmt.TextParser
	mfs, err := parser.TextToMetricFamilies(f)
	if err != nil {
		t.Fatalf("parse textfile: %v", err)
	}
	return mfs
}

func TestPromSink_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edgewatch.prom")
	s := &PromSink{Path: path}

	if err := s.Write(testReport()); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	mfs := parseTextfile(t, path)

	avg, ok := mfs["edgewatch_sensor_avg"]
	if !ok {
		t.Fatalf("edgewatch_sensor_avg missing; families: %d", len(mfs))
	}
	if got := len(avg.GetMetric()); got != 3 {
		t.Fatalf("sensor_avg samples: got %d, want 3", got)
	}

	found := false
	for _, m := range avg.GetMetric() {
		for _, lp := range m.GetLabel() {
			if lp.GetName() == "sensor" && lp.GetValue() == "temperature" {
				found = true
				if v := m.GetGauge().GetValue(); v != 22.17 {
					t.Errorf("temperature avg sample = %v, want 22.17", v)
				}
			}
		}
	}
	if !found {
		t.Error("no sensor_avg sample labelled sensor=temperature")
	}

	if _, ok := mfs["edgewatch_sensor_std_dev"]; !ok {
		t.Error("edgewatch_sensor_std_dev missing")
	}

	readings, ok := mfs["edgewatch_readings_total"]
	if !ok {
		t.Fatal("edgewatch_readings_total missing")
	}
	if v := readings.GetMetric()[0].GetGauge().GetValue(); v != 3 {
		t.Errorf("readings_total = %v, want 3", v)
	}
}

func TestPromSink_CustomNamespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.prom")
	s := &PromSink{Path: path, Namespace: "navalhealth"}

	if err := s.Write(testReport()); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	mfs := parseTextfile(t, path)
	if _, ok := mfs["navalhealth_sensor_avg"]; !ok {
		t.Error("namespaced family navalhealth_sensor_avg missing")
	}
	if _, ok := mfs["edgewatch_sensor_avg"]; ok {
		t.Error("default namespace leaked into namespaced output")
	}
}

func TestPromSink_WriteFailure(t *testing.T) {
	s := &PromSink{Path: filepath.Join(t.TempDir(), "missing-dir", "out.prom")}
	if err := s.Write(testReport()); err == nil {
		t.Fatal("expected error writing into a missing directory, got nil")
	}
}
