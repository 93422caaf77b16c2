package alerts

import (
	"io"

	"gopkg.in/yaml.v2"
)

// Config holds the threshold configuration for alert evaluation. Thresholds
// are reference data maintained outside this service and loaded at startup.
type Config struct {
	Thresholds []Threshold `yaml:"thresholds"`
}

type Threshold struct {
	DeviceID     string   `yaml:"deviceID"`
	SensorTypeID string   `yaml:"sensorType"`
	Low          *float64 `yaml:"low,omitempty"`
	High         *float64 `yaml:"high,omitempty"`
}

func NewConfig(config io.ReadCloser) (*Config, error) {
	defer config.Close()

	b, err := io.ReadAll(config)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// ThresholdsFor returns the configured bounds for a device and sensor type,
// or ok=false when none are configured.
func (c *Config) ThresholdsFor(deviceID, sensorTypeID string) (low, high *float64, ok bool) {
	if c == nil {
		return nil, nil, false
	}

	for _, t := range c.Thresholds {
		if t.DeviceID == deviceID && t.SensorTypeID == sensorTypeID {
			return t.Low, t.High, true
		}
	}

	return nil, nil, false
}
