package alerts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/iot-telemetry/internal/pkg/application/events"
	"github.com/diwise/iot-telemetry/internal/pkg/application/subscriptions"
	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-telemetry/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

var ErrAlertNotFound = fmt.Errorf("alert not found")

//go:generate moq -rm -out alertservice_mock.go . AlertService
type AlertService interface {
	// Evaluate checks a stored reading against the configured thresholds and
	// creates an alert when a bound is exceeded. It returns nil when the
	// reading is within bounds, when no thresholds are configured, or when an
	// unresolved alert of the same kind already exists for the device.
	Evaluate(ctx context.Context, device types.Device, sensorType types.SensorType, reading types.Reading) (*types.Alert, error)

	Query(ctx context.Context, params map[string][]string, tenants []string) (types.Collection[types.Alert], error)
	GetByID(ctx context.Context, alertID string, tenants []string) (types.Alert, error)
	GetByDeviceID(ctx context.Context, deviceID string, offset, limit int, tenants []string) (types.Collection[types.Alert], error)
	Add(ctx context.Context, alert types.Alert) (*types.Alert, error)
	Resolve(ctx context.Context, alertID string, tenants []string) error
}

//go:generate moq -rm -out alertstorage_mock.go . AlertStorage
type AlertStorage interface {
	AddAlert(ctx context.Context, alert types.Alert) error
	GetAlert(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error)
	QueryAlerts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error)
	UnresolvedAlertExists(ctx context.Context, deviceID, sensorTypeID, alertType string) (bool, error)
	ResolveAlert(ctx context.Context, alertID, tenant string) error
	GetDevice(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error)
	GetSensorType(ctx context.Context, sensorTypeID string) (types.SensorType, error)
}

type alertSvc struct {
	storage     AlertStorage
	messenger   messaging.MsgContext
	config      *Config
	notifier    events.Notifier
	broadcaster subscriptions.Broadcaster
}

func New(s AlertStorage, m messaging.MsgContext, cfg *Config, n events.Notifier, b subscriptions.Broadcaster) AlertService {
	svc := &alertSvc{
		storage:     s,
		messenger:   m,
		config:      cfg,
		notifier:    n,
		broadcaster: b,
	}

	svc.messenger.RegisterTopicMessageHandler("device-status", NewDeviceStatusHandler(svc))

	return svc
}

func (svc *alertSvc) Evaluate(ctx context.Context, device types.Device, sensorType types.SensorType, reading types.Reading) (*types.Alert, error) {
	low, high, ok := svc.config.ThresholdsFor(device.DeviceID, sensorType.ID)
	if !ok {
		return nil, nil
	}

	var alertType string
	var threshold float64

	switch {
	case high != nil && reading.Value > *high:
		alertType = types.AlertTypeHigh
		threshold = *high
	case low != nil && reading.Value < *low:
		alertType = types.AlertTypeLow
		threshold = *low
	default:
		return nil, nil
	}

	// the unique constraint settles the race between concurrent creates
	exists, err := svc.storage.UnresolvedAlertExists(ctx, device.DeviceID, sensorType.ID, alertType)
	if err == nil && exists {
		return nil, nil
	}

	value := reading.Value

	return svc.Add(ctx, types.Alert{
		DeviceID:       device.DeviceID,
		SensorTypeID:   sensorType.ID,
		AlertType:      alertType,
		Message:        thresholdMessage(sensorType, alertType, value, threshold),
		ThresholdValue: &threshold,
		ActualValue:    &value,
		Tenant:         device.Tenant,
		CreatedAt:      reading.ObservedAt,
	})
}

func thresholdMessage(sensorType types.SensorType, alertType string, value, threshold float64) string {
	direction := "above"
	if alertType == types.AlertTypeLow {
		direction = "below"
	}
	return fmt.Sprintf("%s value %g%s is %s threshold %g%s", sensorType.Name, value, sensorType.Unit, direction, threshold, sensorType.Unit)
}

// Add persists an alert and fans it out to message bus, notification
// subscribers and connected websocket clients. A concurrent attempt to create
// the same unresolved alert is suppressed and returns (nil, nil).
func (svc *alertSvc) Add(ctx context.Context, alert types.Alert) (*types.Alert, error) {
	if alert.DeviceID == "" {
		return nil, fmt.Errorf("no deviceID is set on alert")
	}
	if alert.ID == "" {
		alert.ID = uuid.NewString()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now().UTC()
	}

	err := svc.storage.AddAlert(ctx, alert)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExist) {
			return nil, nil
		}
		return nil, err
	}

	log := logging.GetFromContext(ctx)

	err = svc.messenger.PublishOnTopic(ctx, &AlertCreated{
		Alert:     alert,
		Tenant:    alert.Tenant,
		Timestamp: alert.CreatedAt,
	})
	if err != nil {
		log.Error("failed to publish alert", "alert_id", alert.ID, "err", err.Error())
	}

	device, err := svc.storage.GetDevice(ctx, storage.WithDeviceID(alert.DeviceID))
	if err != nil {
		log.Error("could not fetch device for alert fan out", "device_id", alert.DeviceID, "err", err.Error())
		return &alert, nil
	}

	sensorType := types.SensorType{}
	if alert.SensorTypeID != "" {
		sensorType, err = svc.storage.GetSensorType(ctx, alert.SensorTypeID)
		if err != nil {
			log.Error("could not fetch sensor type for alert fan out", "sensor_type", alert.SensorTypeID, "err", err.Error())
		}
	}

	svc.broadcaster.PublishAlert(ctx, device, sensorType, alert)

	err = svc.notifier.Send(ctx, device, sensorType, alert)
	if err != nil {
		log.Error("failed to notify subscribers", "alert_id", alert.ID, "err", err.Error())
	}

	return &alert, nil
}

func (svc *alertSvc) Query(ctx context.Context, params map[string][]string, tenants []string) (types.Collection[types.Alert], error) {
	conditions := storage.ParseConditions(ctx, params)
	conditions = append(conditions, storage.WithTenants(tenants))

	alerts, err := svc.storage.QueryAlerts(ctx, conditions...)
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	return alerts, nil
}

func (svc *alertSvc) GetByID(ctx context.Context, alertID string, tenants []string) (types.Alert, error) {
	alert, err := svc.storage.GetAlert(ctx, storage.WithAlertID(alertID), storage.WithTenants(tenants))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Alert{}, ErrAlertNotFound
		}
		return types.Alert{}, err
	}

	return alert, nil
}

func (svc *alertSvc) GetByDeviceID(ctx context.Context, deviceID string, offset, limit int, tenants []string) (types.Collection[types.Alert], error) {
	alerts, err := svc.storage.QueryAlerts(ctx, storage.WithDeviceID(deviceID), storage.WithOffset(offset), storage.WithLimit(limit), storage.WithTenants(tenants))
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	return alerts, nil
}

func (svc *alertSvc) Resolve(ctx context.Context, alertID string, tenants []string) error {
	alert, err := svc.storage.GetAlert(ctx, storage.WithAlertID(alertID), storage.WithTenants(tenants))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrAlertNotFound
		}
		return err
	}

	if alert.Resolved {
		return nil
	}

	err = svc.storage.ResolveAlert(ctx, alertID, alert.Tenant)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrAlertNotFound
		}
		return err
	}

	return svc.messenger.PublishOnTopic(ctx, &AlertResolved{
		ID:        alert.ID,
		Tenant:    alert.Tenant,
		Timestamp: time.Now().UTC(),
	})
}
