package devices

import (
	"context"
	"errors"
	"testing"

	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/matryer/is"
)

func TestCreateDefaultsNameAndTenant(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &DeviceStorageMock{
		AddDeviceFunc: func(ctx context.Context, device types.Device) error {
			return nil
		},
	}

	err := New(s).Create(ctx, types.Device{DeviceID: "greenhouse-01"})
	is.NoErr(err)

	is.Equal(1, len(s.AddDeviceCalls()))
	is.Equal("greenhouse-01", s.AddDeviceCalls()[0].Device.Name)
	is.Equal("default", s.AddDeviceCalls()[0].Device.Tenant)
}

func TestCreateDuplicateDevice(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &DeviceStorageMock{
		AddDeviceFunc: func(ctx context.Context, device types.Device) error {
			return storage.ErrAlreadyExist
		},
	}

	err := New(s).Create(ctx, types.Device{DeviceID: "greenhouse-01"})
	is.True(errors.Is(err, ErrDeviceAlreadyExist))
}

func TestGetByIDNotFound(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &DeviceStorageMock{
		GetDeviceFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error) {
			return types.Device{}, storage.ErrNoRows
		},
	}

	_, err := New(s).GetByID(ctx, "no-such-device", []string{"default"})
	is.True(errors.Is(err, ErrDeviceNotFound))
}

func TestSetActiveChecksVisibilityFirst(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &DeviceStorageMock{
		GetDeviceFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error) {
			return types.Device{}, storage.ErrNoRows
		},
	}

	err := New(s).SetActive(ctx, "greenhouse-01", false, []string{"other-tenant"})
	is.True(errors.Is(err, ErrDeviceNotFound))
	is.Equal(0, len(s.SetActiveCalls()))
}
