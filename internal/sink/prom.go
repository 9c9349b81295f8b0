package sink

import (
	"bytes"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const defaultNamespace = "edgewatch"

// PromSink writes the health summary in Prometheus text exposition format,
// textfile-collector style: a local scrape agent (e.g. node_exporter) can
// pick the file up without this process opening any network listener.
type PromSink struct {
	// Path is the output file. An existing file is truncated.
	Path string

	// Namespace prefixes every metric name. Empty means "edgewatch".
	Namespace string
}

// Write renders rep's summary into gauge families and overwrites the file
// at Path.
//
// Emitted metrics, one sample per sensor label:
//
//	<ns>_sensor_avg{sensor="..."}
//	<ns>_sensor_std_dev{sensor="..."}
//	<ns>_readings_total
func (s *PromSink) Write(rep *Report) error {
	ns := s.Namespace
	if ns == "" {
		ns = defaultNamespace
	}

	// A private registry per write keeps stale sensors from a previous
	// config out of the output.
	reg := prometheus.NewRegistry()
	avg := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: ns,
		Name:      "sensor_avg",
		Help:      "Mean sensor value over the completed run.",
	}, []string{"sensor"})
	stdDev := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: ns,
		Name:      "sensor_std_dev",
		Help:      "Sample standard deviation of the sensor over the completed run.",
	}, []string{"sensor"})
	readings := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: ns,
		Name:      "readings_total",
		Help:      "Number of readings collected in the completed run.",
	})
	reg.MustRegister(avg, stdDev, readings)

	for name, st := range rep.Summary {
		avg.WithLabelValues(name).Set(st.Avg)
		stdDev.WithLabelValues(name).Set(st.StdDev)
	}
	readings.Set(float64(len(rep.Readings)))

	mfs, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("sink: gather metrics: %w", err)
	}

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("sink: encode %s: %w", mf.GetName(), err)
		}
	}

	if err := os.WriteFile(s.Path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("sink: write prom textfile: %w", err)
	}
	return nil
}
