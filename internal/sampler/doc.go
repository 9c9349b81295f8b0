// Package sampler generates synthetic sensor readings. Each Generate call
// draws one value per configured sensor from its generation range, which is
// deliberately wider than the sensor's normal bounds so that anomalies occur
// during simulated runs.
package sampler
