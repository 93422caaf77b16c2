package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/jackc/pgx/v5"
)

// AddAlert stores a new alert. A partial unique index guards against a second
// unresolved alert for the same device, sensor type and category, which closes
// the check-then-create race between concurrent evaluations: the losing insert
// is rejected by the database and reported as ErrAlreadyExist.
func (s *Storage) AddAlert(ctx context.Context, alert types.Alert) error {
	if alert.ID == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"alert_id":        alert.ID,
		"device_id":       alert.DeviceID,
		"sensor_type_id":  alert.SensorTypeID,
		"alert_type":      alert.AlertType,
		"message":         alert.Message,
		"threshold_value": alert.ThresholdValue,
		"actual_value":    alert.ActualValue,
		"tenant":          alert.Tenant,
		"created_on":      alert.CreatedAt.UTC(),
	}

	ct, err := s.pool.Exec(ctx, `
		INSERT INTO alerts (alert_id, device_id, sensor_type_id, alert_type, message, threshold_value, actual_value, tenant, created_on)
		VALUES (@alert_id, @device_id, @sensor_type_id, @alert_type, @message, @threshold_value, @actual_value, @tenant, @created_on)
		ON CONFLICT (device_id, sensor_type_id, alert_type) WHERE NOT resolved DO NOTHING
	`, args)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	if ct.RowsAffected() == 0 {
		return ErrAlreadyExist
	}

	return nil
}

func (s *Storage) GetAlert(ctx context.Context, conditions ...ConditionFunc) (types.Alert, error) {
	condition := &Condition{timeColumn: "created_on"}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT alert_id, device_id, sensor_type_id, alert_type, message, threshold_value, actual_value, resolved, tenant, created_on, resolved_on
		FROM alerts
		WHERE %s
	`, condition.Where())

	var alert types.Alert

	err := s.pool.QueryRow(ctx, query, condition.NamedArgs()).Scan(
		&alert.ID, &alert.DeviceID, &alert.SensorTypeID, &alert.AlertType, &alert.Message,
		&alert.ThresholdValue, &alert.ActualValue, &alert.Resolved, &alert.Tenant,
		&alert.CreatedAt, &alert.ResolvedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Alert{}, ErrNoRows
		}
		return types.Alert{}, err
	}

	return alert, nil
}

func (s *Storage) QueryAlerts(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Alert], error) {
	condition := &Condition{timeColumn: "created_on"}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT alert_id, device_id, sensor_type_id, alert_type, message, threshold_value, actual_value, resolved, tenant, created_on, resolved_on, count(*) OVER () AS count
		FROM alerts
		WHERE %s
		ORDER BY %s %s
		%s
	`, condition.Where(), condition.SortBy("created_on"), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	var alertID, deviceID, sensorTypeID, alertType, message, tenant string
	var thresholdValue, actualValue *float64
	var resolved bool
	var createdOn time.Time
	var resolvedOn *time.Time
	var count int64

	alerts := make([]types.Alert, 0)

	_, err = pgx.ForEachRow(rows, []any{
		&alertID, &deviceID, &sensorTypeID, &alertType, &message,
		&thresholdValue, &actualValue, &resolved, &tenant, &createdOn, &resolvedOn, &count,
	}, func() error {
		alerts = append(alerts, types.Alert{
			ID:             alertID,
			DeviceID:       deviceID,
			SensorTypeID:   sensorTypeID,
			AlertType:      alertType,
			Message:        message,
			ThresholdValue: thresholdValue,
			ActualValue:    actualValue,
			Resolved:       resolved,
			Tenant:         tenant,
			CreatedAt:      createdOn,
			ResolvedAt:     resolvedOn,
		})
		return nil
	})
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	return types.Collection[types.Alert]{
		Data:       alerts,
		Count:      uint64(len(alerts)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

// UnresolvedAlertExists reports whether an unresolved alert is already on
// record for the given device, sensor type and category.
func (s *Storage) UnresolvedAlertExists(ctx context.Context, deviceID, sensorTypeID, alertType string) (bool, error) {
	var exists bool

	err := s.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM alerts
			WHERE device_id = @device_id AND sensor_type_id = @sensor_type_id AND alert_type = @alert_type AND NOT resolved
		)
	`, pgx.NamedArgs{
		"device_id":      deviceID,
		"sensor_type_id": sensorTypeID,
		"alert_type":     alertType,
	}).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (s *Storage) ResolveAlert(ctx context.Context, alertID, tenant string) error {
	ct, err := s.pool.Exec(ctx, `
		UPDATE alerts
		SET resolved = TRUE, resolved_on = CURRENT_TIMESTAMP
		WHERE alert_id = @alert_id AND tenant = @tenant AND NOT resolved
	`, pgx.NamedArgs{
		"alert_id": alertID,
		"tenant":   tenant,
	})
	if err != nil {
		return err
	}

	if ct.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}
