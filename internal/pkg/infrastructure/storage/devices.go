package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddDevice(ctx context.Context, device types.Device) error {
	if device.DeviceID == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"device_id":   device.DeviceID,
		"name":        device.Name,
		"device_type": device.DeviceType,
		"location":    device.Location,
		"description": device.Description,
		"tenant":      device.Tenant,
		"active":      device.Active,
	}

	ct, err := s.pool.Exec(ctx, `
		INSERT INTO devices (device_id, name, device_type, location, description, tenant, active)
		VALUES (@device_id, @name, @device_type, @location, @description, @tenant, @active)
		ON CONFLICT (device_id) DO NOTHING
	`, args)
	if err != nil {
		return err
	}

	if ct.RowsAffected() == 0 {
		return ErrAlreadyExist
	}

	return nil
}

func (s *Storage) GetDevice(ctx context.Context, conditions ...ConditionFunc) (types.Device, error) {
	condition := &Condition{timeColumn: "created_on"}
	for _, f := range conditions {
		f(condition)
	}

	var device types.Device
	var createdOn time.Time

	query := fmt.Sprintf(`
		SELECT device_id, name, device_type, COALESCE(location,''), COALESCE(description,''), tenant, active, created_on
		FROM devices
		WHERE %s
	`, condition.Where())

	err := s.pool.QueryRow(ctx, query, condition.NamedArgs()).Scan(
		&device.DeviceID, &device.Name, &device.DeviceType, &device.Location,
		&device.Description, &device.Tenant, &device.Active, &createdOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Device{}, ErrNoRows
		}
		return types.Device{}, err
	}

	device.CreatedAt = createdOn

	return device, nil
}

func (s *Storage) QueryDevices(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Device], error) {
	condition := &Condition{timeColumn: "created_on"}
	for _, f := range conditions {
		f(condition)
	}

	var device types.Device
	var createdOn time.Time
	var count int64

	query := fmt.Sprintf(`
		SELECT device_id, name, device_type, COALESCE(location,''), COALESCE(description,''), tenant, active, created_on, count(*) OVER () AS count
		FROM devices
		WHERE %s
		ORDER BY %s %s
		%s
	`, condition.Where(), condition.SortBy("created_on"), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.Device]{}, err
	}

	devices := make([]types.Device, 0)

	_, err = pgx.ForEachRow(rows, []any{
		&device.DeviceID, &device.Name, &device.DeviceType, &device.Location,
		&device.Description, &device.Tenant, &device.Active, &createdOn, &count,
	}, func() error {
		device.CreatedAt = createdOn
		devices = append(devices, device)
		return nil
	})
	if err != nil {
		return types.Collection[types.Device]{}, err
	}

	return types.Collection[types.Device]{
		Data:       devices,
		Count:      uint64(len(devices)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

func (s *Storage) SetActive(ctx context.Context, deviceID string, active bool) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE devices
		SET active = @active, modified_on = CURRENT_TIMESTAMP
		WHERE device_id = @device_id
	`, pgx.NamedArgs{
		"device_id": deviceID,
		"active":    active,
	})
	if err != nil {
		return err
	}

	return nil
}
