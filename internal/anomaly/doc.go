// Package anomaly flags sensor values that fall strictly outside their
// configured [min, max] bounds. Detection is stateless per reading; the
// Detector only holds the bounds table, which is hot-swappable for config
// reloads.
package anomaly
