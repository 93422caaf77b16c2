package devices

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-telemetry/pkg/types"
)

var ErrDeviceNotFound = fmt.Errorf("device not found")
var ErrDeviceAlreadyExist = fmt.Errorf("device already exists")
var ErrSensorTypeNotFound = fmt.Errorf("sensor type not found")

//go:generate moq -rm -out deviceservice_mock.go . DeviceService
type DeviceService interface {
	Query(ctx context.Context, params map[string][]string, tenants []string) (types.Collection[types.Device], error)
	GetByID(ctx context.Context, deviceID string, tenants []string) (types.Device, error)
	Create(ctx context.Context, device types.Device) error
	SetActive(ctx context.Context, deviceID string, active bool, tenants []string) error

	SensorTypes(ctx context.Context) (types.Collection[types.SensorType], error)
	GetSensorType(ctx context.Context, sensorTypeID string) (types.SensorType, error)
	CreateSensorType(ctx context.Context, sensorType types.SensorType) error
}

//go:generate moq -rm -out devicestorage_mock.go . DeviceStorage
type DeviceStorage interface {
	AddDevice(ctx context.Context, device types.Device) error
	GetDevice(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error)
	QueryDevices(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Device], error)
	SetActive(ctx context.Context, deviceID string, active bool) error

	AddSensorType(ctx context.Context, sensorType types.SensorType) error
	GetSensorType(ctx context.Context, sensorTypeID string) (types.SensorType, error)
	QuerySensorTypes(ctx context.Context) (types.Collection[types.SensorType], error)
}

type service struct {
	storage DeviceStorage
}

func New(s DeviceStorage) DeviceService {
	return &service{storage: s}
}

func (s *service) Query(ctx context.Context, params map[string][]string, tenants []string) (types.Collection[types.Device], error) {
	conditions := storage.ParseConditions(ctx, params)
	conditions = append(conditions, storage.WithTenants(tenants))

	return s.storage.QueryDevices(ctx, conditions...)
}

func (s *service) GetByID(ctx context.Context, deviceID string, tenants []string) (types.Device, error) {
	device, err := s.storage.GetDevice(ctx, storage.WithDeviceID(deviceID), storage.WithTenants(tenants))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Device{}, ErrDeviceNotFound
		}
		return types.Device{}, err
	}

	return device, nil
}

func (s *service) Create(ctx context.Context, device types.Device) error {
	if device.DeviceID == "" {
		return fmt.Errorf("no deviceID is set on device")
	}
	if device.Name == "" {
		device.Name = device.DeviceID
	}
	if device.Tenant == "" {
		device.Tenant = "default"
	}

	err := s.storage.AddDevice(ctx, device)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExist) {
			return ErrDeviceAlreadyExist
		}
		return err
	}

	return nil
}

func (s *service) SetActive(ctx context.Context, deviceID string, active bool, tenants []string) error {
	_, err := s.GetByID(ctx, deviceID, tenants)
	if err != nil {
		return err
	}

	return s.storage.SetActive(ctx, deviceID, active)
}

func (s *service) SensorTypes(ctx context.Context) (types.Collection[types.SensorType], error) {
	return s.storage.QuerySensorTypes(ctx)
}

func (s *service) GetSensorType(ctx context.Context, sensorTypeID string) (types.SensorType, error) {
	sensorType, err := s.storage.GetSensorType(ctx, sensorTypeID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.SensorType{}, ErrSensorTypeNotFound
		}
		return types.SensorType{}, err
	}

	return sensorType, nil
}

func (s *service) CreateSensorType(ctx context.Context, sensorType types.SensorType) error {
	if sensorType.ID == "" || sensorType.Name == "" {
		return fmt.Errorf("sensor type id and name are required")
	}

	return s.storage.AddSensorType(ctx, sensorType)
}
