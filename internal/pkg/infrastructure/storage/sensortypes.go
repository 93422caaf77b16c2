package storage

import (
	"context"
	"errors"

	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddSensorType(ctx context.Context, sensorType types.SensorType) error {
	if sensorType.ID == "" {
		return ErrNoID
	}

	ct, err := s.pool.Exec(ctx, `
		INSERT INTO sensor_types (sensor_type_id, name, unit, description)
		VALUES (@sensor_type_id, @name, @unit, @description)
		ON CONFLICT (sensor_type_id) DO NOTHING
	`, pgx.NamedArgs{
		"sensor_type_id": sensorType.ID,
		"name":           sensorType.Name,
		"unit":           sensorType.Unit,
		"description":    sensorType.Description,
	})
	if err != nil {
		return err
	}

	if ct.RowsAffected() == 0 {
		return ErrAlreadyExist
	}

	return nil
}

func (s *Storage) GetSensorType(ctx context.Context, sensorTypeID string) (types.SensorType, error) {
	var st types.SensorType

	err := s.pool.QueryRow(ctx, `
		SELECT sensor_type_id, name, unit, COALESCE(description,'')
		FROM sensor_types
		WHERE sensor_type_id = @sensor_type_id
	`, pgx.NamedArgs{
		"sensor_type_id": sensorTypeID,
	}).Scan(&st.ID, &st.Name, &st.Unit, &st.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.SensorType{}, ErrNoRows
		}
		return types.SensorType{}, err
	}

	return st, nil
}

func (s *Storage) QuerySensorTypes(ctx context.Context) (types.Collection[types.SensorType], error) {
	rows, err := s.pool.Query(ctx, `
		SELECT sensor_type_id, name, unit, COALESCE(description,'')
		FROM sensor_types
		ORDER BY sensor_type_id ASC
	`)
	if err != nil {
		return types.Collection[types.SensorType]{}, err
	}

	var st types.SensorType
	sensorTypes := make([]types.SensorType, 0)

	_, err = pgx.ForEachRow(rows, []any{&st.ID, &st.Name, &st.Unit, &st.Description}, func() error {
		sensorTypes = append(sensorTypes, st)
		return nil
	})
	if err != nil {
		return types.Collection[types.SensorType]{}, err
	}

	return types.Collection[types.SensorType]{
		Data:       sensorTypes,
		Count:      uint64(len(sensorTypes)),
		Limit:      uint64(len(sensorTypes)),
		TotalCount: uint64(len(sensorTypes)),
	}, nil
}
