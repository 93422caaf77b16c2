package alerts

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/diwise/iot-telemetry/internal/pkg/application/events"
	"github.com/diwise/iot-telemetry/internal/pkg/application/subscriptions"
	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

const thresholdYaml string = `
thresholds:
  - deviceID: greenhouse-01
    sensorType: temperature
    low: 25
    high: 32
`

func testSetup(t *testing.T) (*is.I, *AlertStorageMock, *messaging.MsgContextMock, AlertService) {
	is := is.New(t)

	s := &AlertStorageMock{
		AddAlertFunc: func(ctx context.Context, alert types.Alert) error {
			return nil
		},
		GetDeviceFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error) {
			return types.Device{DeviceID: "greenhouse-01", Name: "Greenhouse 1", Tenant: "default"}, nil
		},
		GetSensorTypeFunc: func(ctx context.Context, sensorTypeID string) (types.SensorType, error) {
			return types.SensorType{ID: sensorTypeID, Name: "Temperature", Unit: "°C"}, nil
		},
		UnresolvedAlertExistsFunc: func(ctx context.Context, deviceID, sensorTypeID, alertType string) (bool, error) {
			return false, nil
		},
	}
	m := &messaging.MsgContextMock{
		RegisterTopicMessageHandlerFunc: func(routingKey string, handler messaging.TopicMessageHandler) error {
			return nil
		},
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	cfg, err := NewConfig(io.NopCloser(bytes.NewBufferString(thresholdYaml)))
	is.NoErr(err)

	svc := New(s, m, cfg, &events.NotifierMock{}, &subscriptions.BroadcasterMock{})

	return is, s, m, svc
}

func newReading(value float64) types.Reading {
	return types.Reading{
		ID:           "f2b0f9e2-46b5-4a89-8d95-0a9d0c08e573",
		DeviceID:     "greenhouse-01",
		SensorTypeID: "temperature",
		Value:        value,
		ObservedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestEvaluateCreatesHighAlert(t *testing.T) {
	is, s, m, svc := testSetup(t)
	ctx := context.Background()

	device := types.Device{DeviceID: "greenhouse-01", Name: "Greenhouse 1", Tenant: "default"}
	sensorType := types.SensorType{ID: "temperature", Name: "Temperature", Unit: "°C"}

	alert, err := svc.Evaluate(ctx, device, sensorType, newReading(33))
	is.NoErr(err)

	is.True(alert != nil)
	is.Equal(types.AlertTypeHigh, alert.AlertType)
	is.Equal(32.0, *alert.ThresholdValue)
	is.Equal(33.0, *alert.ActualValue)

	is.Equal(1, len(s.AddAlertCalls()))
	is.Equal(1, len(m.PublishOnTopicCalls()))
	is.Equal("alerts.alertCreated", m.PublishOnTopicCalls()[0].Message.TopicName())
}

func TestEvaluateCreatesLowAlert(t *testing.T) {
	is, s, _, svc := testSetup(t)
	ctx := context.Background()

	device := types.Device{DeviceID: "greenhouse-01", Tenant: "default"}
	sensorType := types.SensorType{ID: "temperature", Name: "Temperature", Unit: "°C"}

	alert, err := svc.Evaluate(ctx, device, sensorType, newReading(20))
	is.NoErr(err)

	is.True(alert != nil)
	is.Equal(types.AlertTypeLow, alert.AlertType)
	is.Equal(25.0, *alert.ThresholdValue)
	is.Equal(1, len(s.AddAlertCalls()))
}

func TestEvaluateWithinBoundsCreatesNothing(t *testing.T) {
	is, s, m, svc := testSetup(t)
	ctx := context.Background()

	device := types.Device{DeviceID: "greenhouse-01", Tenant: "default"}
	sensorType := types.SensorType{ID: "temperature", Name: "Temperature", Unit: "°C"}

	alert, err := svc.Evaluate(ctx, device, sensorType, newReading(30))
	is.NoErr(err)

	is.True(alert == nil)
	is.Equal(0, len(s.AddAlertCalls()))
	is.Equal(0, len(m.PublishOnTopicCalls()))
}

func TestEvaluateWithoutThresholdsCreatesNothing(t *testing.T) {
	is, s, _, svc := testSetup(t)
	ctx := context.Background()

	device := types.Device{DeviceID: "some-other-device", Tenant: "default"}
	sensorType := types.SensorType{ID: "temperature", Name: "Temperature", Unit: "°C"}

	alert, err := svc.Evaluate(ctx, device, sensorType, newReading(99))
	is.NoErr(err)

	is.True(alert == nil)
	is.Equal(0, len(s.AddAlertCalls()))
}

func TestEvaluateSuppressesDuplicateAlert(t *testing.T) {
	is, s, m, svc := testSetup(t)
	ctx := context.Background()

	s.AddAlertFunc = func(ctx context.Context, alert types.Alert) error {
		return storage.ErrAlreadyExist
	}

	device := types.Device{DeviceID: "greenhouse-01", Tenant: "default"}
	sensorType := types.SensorType{ID: "temperature", Name: "Temperature", Unit: "°C"}

	alert, err := svc.Evaluate(ctx, device, sensorType, newReading(33))
	is.NoErr(err)

	is.True(alert == nil)
	is.Equal(0, len(m.PublishOnTopicCalls()))
}

func TestEvaluateSkipsCreateWhenUnresolvedAlertExists(t *testing.T) {
	is, s, m, svc := testSetup(t)
	ctx := context.Background()

	s.UnresolvedAlertExistsFunc = func(ctx context.Context, deviceID, sensorTypeID, alertType string) (bool, error) {
		return true, nil
	}

	device := types.Device{DeviceID: "greenhouse-01", Tenant: "default"}
	sensorType := types.SensorType{ID: "temperature", Name: "Temperature", Unit: "°C"}

	alert, err := svc.Evaluate(ctx, device, sensorType, newReading(33))
	is.NoErr(err)

	is.True(alert == nil)
	is.Equal(0, len(s.AddAlertCalls()))
	is.Equal(0, len(m.PublishOnTopicCalls()))
}

func TestResolvePublishesAlertResolved(t *testing.T) {
	is, s, m, svc := testSetup(t)
	ctx := context.Background()

	s.GetAlertFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
		return types.Alert{ID: "alert-01", DeviceID: "greenhouse-01", AlertType: types.AlertTypeHigh, Tenant: "default"}, nil
	}
	s.ResolveAlertFunc = func(ctx context.Context, alertID, tenant string) error {
		return nil
	}

	err := svc.Resolve(ctx, "alert-01", []string{"default"})
	is.NoErr(err)

	is.Equal(1, len(s.ResolveAlertCalls()))
	is.Equal("default", s.ResolveAlertCalls()[0].Tenant)
	is.Equal(1, len(m.PublishOnTopicCalls()))
	is.Equal("alerts.alertResolved", m.PublishOnTopicCalls()[0].Message.TopicName())
}

func TestResolveUnknownAlertReturnsNotFound(t *testing.T) {
	is, s, _, svc := testSetup(t)
	ctx := context.Background()

	s.GetAlertFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
		return types.Alert{}, storage.ErrNoRows
	}

	err := svc.Resolve(ctx, "no-such-alert", []string{"default"})
	is.Equal(ErrAlertNotFound, err)
}

func TestDeviceStatusHandlerCreatesOfflineAlert(t *testing.T) {
	is, s, _, svc := testSetup(t)
	ctx := context.Background()
	log := slog.Default()

	s.QueryAlertsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error) {
		return types.Collection[types.Alert]{}, nil
	}

	msg := &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			b, _ := json.Marshal(deviceStatus{
				DeviceID:  "greenhouse-01",
				Code:      1,
				Tenant:    "default",
				Timestamp: "2025-01-01T00:00:00Z",
			})
			return b
		},
	}

	handler := NewDeviceStatusHandler(svc)
	handler(ctx, msg, log)

	is.Equal(1, len(s.AddAlertCalls()))
	is.Equal(types.AlertTypeOffline, s.AddAlertCalls()[0].Alert.AlertType)
	is.Equal("", s.AddAlertCalls()[0].Alert.SensorTypeID)
}

func TestDeviceStatusHandlerResolvesOfflineAlertOnRecovery(t *testing.T) {
	is, s, _, svc := testSetup(t)
	ctx := context.Background()
	log := slog.Default()

	s.QueryAlertsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error) {
		return types.Collection[types.Alert]{
			Data: []types.Alert{
				{ID: "alert-01", DeviceID: "greenhouse-01", AlertType: types.AlertTypeOffline, Tenant: "default"},
			},
			Count:      1,
			TotalCount: 1,
		}, nil
	}
	s.GetAlertFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
		return types.Alert{ID: "alert-01", DeviceID: "greenhouse-01", AlertType: types.AlertTypeOffline, Tenant: "default"}, nil
	}
	s.ResolveAlertFunc = func(ctx context.Context, alertID, tenant string) error {
		return nil
	}

	msg := &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			b, _ := json.Marshal(deviceStatus{
				DeviceID:  "greenhouse-01",
				Code:      0,
				Tenant:    "default",
				Timestamp: "2025-01-01T00:00:00Z",
			})
			return b
		},
	}

	handler := NewDeviceStatusHandler(svc)
	handler(ctx, msg, log)

	is.Equal(0, len(s.AddAlertCalls()))
	is.Equal(1, len(s.ResolveAlertCalls()))
	is.Equal("alert-01", s.ResolveAlertCalls()[0].AlertID)
}

func TestThresholdsFor(t *testing.T) {
	is := is.New(t)

	cfg, err := NewConfig(io.NopCloser(bytes.NewBufferString(thresholdYaml)))
	is.NoErr(err)

	low, high, ok := cfg.ThresholdsFor("greenhouse-01", "temperature")
	is.True(ok)
	is.Equal(25.0, *low)
	is.Equal(32.0, *high)

	_, _, ok = cfg.ThresholdsFor("greenhouse-01", "humidity")
	is.True(!ok)
}
