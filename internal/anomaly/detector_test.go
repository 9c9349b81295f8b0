package anomaly

import (
	"testing"

	"github.com/edgewatch/edgewatch/internal/sensor"
)

func testBounds() map[string]sensor.Bounds {
	return map[string]sensor.Bounds{
		"temperature": {Min: 19.0, Max: 24.0},
		"vibration":   {Min: 0.1, Max: 1.0},
		"voltage":     {Min: 110.0, Max: 125.0},
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		reading sensor.Reading
		want    Set
	}{
		{
			name:    "all within bounds",
			reading: sensor.Reading{"temperature": 20.0, "vibration": 0.5, "voltage": 115.0},
			want:    Set{},
		},
		{
			name:    "temperature above max",
			reading: sensor.Reading{"temperature": 25.0, "vibration": 0.5, "voltage": 115.0},
			want:    Set{"temperature": 25.0},
		},
		{
			name:    "vibration below min",
			reading: sensor.Reading{"temperature": 20.0, "vibration": 0.05, "voltage": 115.0},
			want:    Set{"vibration": 0.05},
		},
		{
			name:    "values exactly at the bounds are normal",
			reading: sensor.Reading{"temperature": 24.0, "vibration": 0.1, "voltage": 125.0},
			want:    Set{},
		},
		{
			name:    "multiple anomalies in one reading",
			reading: sensor.Reading{"temperature": 18.6, "vibration": 1.05, "voltage": 115.0},
			want:    Set{"temperature": 18.6, "vibration": 1.05},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := New(testBounds())
			got, err := d.Detect(tc.reading)
			if err != nil {
				t.Fatalf("Detect() unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("Detect() = %v, want %v", got, tc.want)
			}
			for name, v := range tc.want {
				if got[name] != v {
					t.Errorf("anomaly %s = %v, want %v", name, got[name], v)
				}
			}
		})
	}
}

func TestDetect_UnknownSensor(t *testing.T) {
	d := New(testBounds())
	_, err := d.Detect(sensor.Reading{"humidity": 55.0})
	if err == nil {
		t.Fatal("expected error for sensor without bounds, got nil")
	}
}

func TestDetect_Deterministic(t *testing.T) {
	d := New(testBounds())
	r := sensor.Reading{"temperature": 25.0, "vibration": 0.5, "voltage": 115.0}

	for i := 0; i < 5; i++ {
		got, err := d.Detect(r)
		if err != nil {
			t.Fatalf("Detect() error: %v", err)
		}
		if len(got) != 1 || got["temperature"] != 25.0 {
			t.Fatalf("Detect() run %d = %v, want {temperature: 25}", i, got)
		}
	}
}

func TestSetBounds(t *testing.T) {
	d := New(testBounds())
	r := sensor.Reading{"temperature": 25.0}

	got, err := d.Detect(r)
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("before SetBounds: got %v, want one anomaly", got)
	}

	d.SetBounds(map[string]sensor.Bounds{"temperature": {Min: 19.0, Max: 30.0}})

	got, err = d.Detect(r)
	if err != nil {
		t.Fatalf("Detect() after SetBounds error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("after widening bounds: got %v, want empty set", got)
	}
}
