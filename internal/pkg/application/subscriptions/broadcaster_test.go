package subscriptions

import (
	"context"
	"testing"
	"time"

	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/matryer/is"
)

func TestPublishReadingWrapsViewInEnvelope(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	registry := NewRegistry()
	s := NewSubscriber("greenhouse-01")
	registry.Register(s)

	device := types.Device{DeviceID: "greenhouse-01", Name: "Greenhouse 1"}
	sensorType := types.SensorType{ID: "temperature", Name: "Temperature", Unit: "°C"}
	reading := types.Reading{
		ID:           "a8e7c3a0-1b2c-4d5e-8f90-112233445566",
		DeviceID:     "greenhouse-01",
		SensorTypeID: "temperature",
		Value:        21.5,
		ObservedAt:   time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	NewBroadcaster(registry).PublishReading(ctx, device, sensorType, reading)

	msg := <-s.Events()
	is.Equal(MessageTypeReading, msg.Type)

	view, ok := msg.Data.(types.ReadingView)
	is.True(ok)
	is.Equal("Greenhouse 1", view.Device)
	is.Equal("Temperature", view.SensorType)
	is.Equal(21.5, view.Value)
	is.Equal("°C", view.Unit)
	is.Equal("2025-01-01T12:00:00Z", view.Timestamp)
}

func TestPublishAlertWrapsViewInEnvelope(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	registry := NewRegistry()
	s := NewSubscriber("greenhouse-01")
	registry.Register(s)

	threshold, actual := 32.0, 33.0
	device := types.Device{DeviceID: "greenhouse-01", Name: "Greenhouse 1"}
	sensorType := types.SensorType{ID: "temperature", Name: "Temperature", Unit: "°C"}
	alert := types.Alert{
		ID:             "b5b1f1d4-58b5-4f29-9a3f-665544332211",
		DeviceID:       "greenhouse-01",
		SensorTypeID:   "temperature",
		AlertType:      types.AlertTypeHigh,
		ThresholdValue: &threshold,
		ActualValue:    &actual,
		CreatedAt:      time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	NewBroadcaster(registry).PublishAlert(ctx, device, sensorType, alert)

	msg := <-s.Events()
	is.Equal(MessageTypeAlert, msg.Type)

	view, ok := msg.Data.(types.AlertView)
	is.True(ok)
	is.Equal(types.AlertTypeHigh, view.AlertType)
	is.Equal(&threshold, view.ThresholdValue)
	is.True(!view.IsResolved)
}

func TestPublishToDeviceWithoutSubscribersIsANoOp(t *testing.T) {
	ctx := context.Background()

	registry := NewRegistry()
	b := NewBroadcaster(registry)

	b.PublishReading(ctx, types.Device{DeviceID: "greenhouse-01"}, types.SensorType{}, types.Reading{})
	b.PublishAlert(ctx, types.Device{DeviceID: "greenhouse-01"}, types.SensorType{}, types.Alert{})
}
