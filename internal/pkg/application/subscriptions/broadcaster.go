package subscriptions

import (
	"context"

	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

//go:generate moq -rm -out broadcaster_mock.go . Broadcaster

// Broadcaster fans one event out to every current subscriber of a device.
// Publish never blocks on subscriber I/O: events are enqueued on each
// subscriber's bounded channel and drained by the connection's own writer.
type Broadcaster interface {
	PublishReading(ctx context.Context, device types.Device, sensorType types.SensorType, reading types.Reading)
	PublishAlert(ctx context.Context, device types.Device, sensorType types.SensorType, alert types.Alert)
}

type broadcaster struct {
	registry *Registry
}

func NewBroadcaster(registry *Registry) Broadcaster {
	return &broadcaster{registry: registry}
}

func (b *broadcaster) PublishReading(ctx context.Context, device types.Device, sensorType types.SensorType, reading types.Reading) {
	b.publish(ctx, device.DeviceID, Message{
		Type: MessageTypeReading,
		Data: types.NewReadingView(device, sensorType, reading),
	})
}

func (b *broadcaster) PublishAlert(ctx context.Context, device types.Device, sensorType types.SensorType, alert types.Alert) {
	b.publish(ctx, device.DeviceID, Message{
		Type: MessageTypeAlert,
		Data: types.NewAlertView(device, sensorType, alert),
	})
}

func (b *broadcaster) publish(ctx context.Context, deviceID string, msg Message) {
	_, dropped := b.registry.deliver(deviceID, msg)

	if dropped > 0 {
		log := logging.GetFromContext(ctx)
		log.Warn("dropped slow subscribers", "device_id", deviceID, "event", msg.Type, "count", dropped)
	}
}
