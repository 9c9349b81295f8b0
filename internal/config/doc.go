// Package config loads and watches the monitor configuration file.
//
// Top-level types:
//   - Config{Monitor} — full config tree parsed from YAML
//   - MonitorConfig — readings, tick_interval, output_path, prom_output_path,
//     seed, sensors []
//   - SensorConfig — name, min/max normal bounds, gen_min/gen_max generation
//     range; Bounds() and Range() convert to the shared sensor types
//
// Load(path) reads the YAML file, applies the defaults from Default()
// (10 readings, 1s tick, edge_health_log.json, the three built-in sensors),
// then validates required fields and per-sensor range ordering. Default()
// alone is a complete, valid configuration so no file is required.
//
// Watch(ctx, path, onChange) uses fsnotify to detect file changes and calls
// onChange with the newly parsed Config. It handles the rename→create pattern
// used by atomic-save editors by re-adding the watch after a rename event.
package config
