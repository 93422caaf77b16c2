package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddReading(ctx context.Context, reading types.Reading) error {
	if reading.ID == "" {
		return ErrNoID
	}

	var payload *string
	if len(reading.Payload) > 0 {
		p := string(reading.Payload)
		payload = &p
	}

	args := pgx.NamedArgs{
		"reading_id":     reading.ID,
		"device_id":      reading.DeviceID,
		"sensor_type_id": reading.SensorTypeID,
		"value":          reading.Value,
		"observed_at":    reading.ObservedAt.UTC(),
		"payload":        payload,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO readings (reading_id, device_id, sensor_type_id, value, observed_at, payload)
		VALUES (@reading_id, @device_id, @sensor_type_id, @value, @observed_at, @payload)
	`, args)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) QueryReadings(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Reading], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT reading_id, device_id, sensor_type_id, value, observed_at, payload, count(*) OVER () AS count
		FROM readings
		WHERE %s
		ORDER BY %s %s
		%s
	`, condition.Where(), condition.SortBy("observed_at"), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.Reading]{}, err
	}

	readings, count, err := scanReadings(rows)
	if err != nil {
		return types.Collection[types.Reading]{}, err
	}

	return types.Collection[types.Reading]{
		Data:       readings,
		Count:      uint64(len(readings)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

// LatestReadings returns, for one device, the most recent reading per sensor
// type. Ties on observed_at fall back to insertion order. The reduction is
// done by the database so the result does not depend on row ordering.
func (s *Storage) LatestReadings(ctx context.Context, deviceID string) ([]types.Reading, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT DISTINCT ON (sensor_type_id) reading_id, device_id, sensor_type_id, value, observed_at, payload, 0::bigint
		FROM readings
		WHERE device_id = @device_id
		ORDER BY sensor_type_id ASC, observed_at DESC, seq DESC
	`, pgx.NamedArgs{
		"device_id": deviceID,
	})
	if err != nil {
		return nil, err
	}

	readings, _, err := scanReadings(rows)
	if err != nil {
		return nil, err
	}

	return readings, nil
}

func scanReadings(rows pgx.Rows) ([]types.Reading, int64, error) {
	var readingID, deviceID, sensorTypeID string
	var value float64
	var observedAt time.Time
	var payload json.RawMessage
	var count int64

	readings := make([]types.Reading, 0)

	_, err := pgx.ForEachRow(rows, []any{&readingID, &deviceID, &sensorTypeID, &value, &observedAt, &payload, &count}, func() error {
		readings = append(readings, types.Reading{
			ID:           readingID,
			DeviceID:     deviceID,
			SensorTypeID: sensorTypeID,
			Value:        value,
			ObservedAt:   observedAt,
			Payload:      payload,
		})
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return readings, count, nil
}
