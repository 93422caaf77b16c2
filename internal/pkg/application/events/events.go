package events

import (
	"context"
	"errors"
	"fmt"
	"io"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"golang.org/x/sys/unix"
	yaml "gopkg.in/yaml.v2"
)

const alertEventType = "iot-telemetry.alert"

//go:generate moq -rm -out notifier_mock.go . Notifier

// Notifier pushes created alerts to external subscriber endpoints as
// cloud events. Delivery is best effort and never blocks alert creation.
type Notifier interface {
	Send(ctx context.Context, device types.Device, sensorType types.SensorType, alert types.Alert) error
}

type notifier struct {
	subscribers map[string][]SubscriberConfig
}

func New(cfg *Config) Notifier {
	n := &notifier{
		subscribers: make(map[string][]SubscriberConfig),
	}

	if cfg != nil {
		for _, s := range cfg.Notifications {
			n.subscribers[s.Type] = s.Subscribers
		}
	}

	return n
}

func (n *notifier) Send(ctx context.Context, device types.Device, sensorType types.SensorType, alert types.Alert) error {
	if s, ok := n.subscribers[alertEventType]; !ok || len(s) == 0 {
		return nil
	}

	c, err := cloudevents.NewClientHTTP()
	if err != nil {
		return err
	}

	event := cloudevents.NewEvent()
	event.SetID(fmt.Sprintf("%s:%d", alert.ID, alert.CreatedAt.Unix()))
	event.SetTime(alert.CreatedAt)
	event.SetSource("github.com/diwise/iot-telemetry")
	event.SetType(alertEventType)

	err = event.SetData(cloudevents.ApplicationJSON, types.NewAlertView(device, sensorType, alert))
	if err != nil {
		return err
	}

	logger := logging.GetFromContext(ctx)

	for _, s := range n.subscribers[alertEventType] {
		ctxWithTarget := cloudevents.ContextWithTarget(ctx, s.Endpoint)

		result := c.Send(ctxWithTarget, event)
		if cloudevents.IsUndelivered(result) || errors.Is(result, unix.ECONNREFUSED) {
			logger.Error("failed to send alert event", "endpoint", s.Endpoint, "err", result.Error())
			err = fmt.Errorf("%w", result)
		}
	}

	return err
}

type SubscriberConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type Notification struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Type        string             `yaml:"type"`
	Subscribers []SubscriberConfig `yaml:"subscribers"`
}

type Config struct {
	Notifications []Notification `yaml:"notifications"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := Config{}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
