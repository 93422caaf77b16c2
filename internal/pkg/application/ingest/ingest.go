package ingest

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/diwise/iot-telemetry/internal/pkg/application/alerts"
	"github.com/diwise/iot-telemetry/internal/pkg/application/subscriptions"
	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-telemetry/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

var ErrDeviceNotFound = fmt.Errorf("device not found")
var ErrSensorTypeNotFound = fmt.Errorf("sensor type not found")
var ErrInvalidValue = fmt.Errorf("value must be a finite number")

//go:generate moq -rm -out ingestservice_mock.go . IngestService
type IngestService interface {
	// Ingest validates and persists one reading, evaluates alert thresholds
	// and fans the stored reading (and any created alert) out to subscribers.
	// The returned error reflects persistence only: delivery problems are
	// handled downstream and never fail an ingested reading.
	Ingest(ctx context.Context, reading types.Reading) (types.Reading, error)

	Query(ctx context.Context, deviceID string, params map[string][]string, tenants []string) (types.Collection[types.Reading], error)
	Latest(ctx context.Context, deviceID string, tenants []string) ([]types.Reading, error)
}

//go:generate moq -rm -out readingstorage_mock.go . ReadingStorage
type ReadingStorage interface {
	AddReading(ctx context.Context, reading types.Reading) error
	QueryReadings(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Reading], error)
	LatestReadings(ctx context.Context, deviceID string) ([]types.Reading, error)
	GetDevice(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error)
	GetSensorType(ctx context.Context, sensorTypeID string) (types.SensorType, error)
}

type svc struct {
	storage     ReadingStorage
	messenger   messaging.MsgContext
	alerts      alerts.AlertService
	broadcaster subscriptions.Broadcaster

	// one mutex per device id, so persistence order equals publish order
	// within a device stream
	sequencers sync.Map
}

func New(s ReadingStorage, m messaging.MsgContext, a alerts.AlertService, b subscriptions.Broadcaster) IngestService {
	return &svc{
		storage:     s,
		messenger:   m,
		alerts:      a,
		broadcaster: b,
	}
}

func (s *svc) Ingest(ctx context.Context, reading types.Reading) (types.Reading, error) {
	if reading.DeviceID == "" || reading.SensorTypeID == "" {
		return types.Reading{}, fmt.Errorf("deviceID and sensorTypeID are required")
	}

	if math.IsNaN(reading.Value) || math.IsInf(reading.Value, 0) {
		return types.Reading{}, ErrInvalidValue
	}

	device, err := s.storage.GetDevice(ctx, storage.WithDeviceID(reading.DeviceID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Reading{}, ErrDeviceNotFound
		}
		return types.Reading{}, err
	}

	sensorType, err := s.storage.GetSensorType(ctx, reading.SensorTypeID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Reading{}, ErrSensorTypeNotFound
		}
		return types.Reading{}, err
	}

	if reading.ID == "" {
		reading.ID = uuid.NewString()
	}
	if reading.ObservedAt.IsZero() {
		reading.ObservedAt = time.Now().UTC()
	}

	mu, _ := s.sequencers.LoadOrStore(device.DeviceID, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
	defer mu.(*sync.Mutex).Unlock()

	err = s.storage.AddReading(ctx, reading)
	if err != nil {
		return types.Reading{}, err
	}

	log := logging.GetFromContext(ctx)

	// the reading is recorded at this point, evaluation and fan out problems
	// are logged but do not fail the ingest. The reading is broadcast before
	// evaluation so subscribers see it ahead of any alert it triggers.
	s.broadcaster.PublishReading(ctx, device, sensorType, reading)

	_, err = s.alerts.Evaluate(ctx, device, sensorType, reading)
	if err != nil {
		log.Error("alert evaluation failed", "device_id", device.DeviceID, "err", err.Error())
	}

	err = s.messenger.PublishOnTopic(ctx, &ReadingStored{
		Reading:   reading,
		Tenant:    device.Tenant,
		Timestamp: reading.ObservedAt,
	})
	if err != nil {
		log.Error("failed to publish reading", "reading_id", reading.ID, "err", err.Error())
	}

	return reading, nil
}

func (s *svc) Query(ctx context.Context, deviceID string, params map[string][]string, tenants []string) (types.Collection[types.Reading], error) {
	_, err := s.storage.GetDevice(ctx, storage.WithDeviceID(deviceID), storage.WithTenants(tenants))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Collection[types.Reading]{}, ErrDeviceNotFound
		}
		return types.Collection[types.Reading]{}, err
	}

	conditions := storage.ParseConditions(ctx, params)
	conditions = append(conditions, storage.WithDeviceID(deviceID))

	return s.storage.QueryReadings(ctx, conditions...)
}

func (s *svc) Latest(ctx context.Context, deviceID string, tenants []string) ([]types.Reading, error) {
	_, err := s.storage.GetDevice(ctx, storage.WithDeviceID(deviceID), storage.WithTenants(tenants))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}

	return s.storage.LatestReadings(ctx, deviceID)
}
