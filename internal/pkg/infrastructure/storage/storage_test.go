package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/google/uuid"
	"github.com/matryer/is"
)

func testSetup(t *testing.T) (context.Context, *Storage) {
	ctx := context.Background()

	config := Config{
		host:     "localhost",
		user:     "postgres",
		password: "password",
		port:     "5432",
		dbname:   "postgres",
		sslmode:  "disable",
	}

	s, err := New(ctx, config)
	if err != nil {
		t.SkipNow()
	}

	err = s.CreateTables(ctx)
	if err != nil {
		t.SkipNow()
	}

	err = SeedSensorTypes(ctx, s, []types.SensorType{
		{ID: "temperature", Name: "Temperature", Unit: "°C"},
		{ID: "humidity", Name: "Humidity", Unit: "%"},
		{ID: "light", Name: "Light", Unit: "lux"},
	})
	if err != nil {
		t.SkipNow()
	}

	return ctx, s
}

func seedDevice(t *testing.T, ctx context.Context, s *Storage) types.Device {
	device := types.Device{
		DeviceID: uuid.NewString(),
		Name:     "Greenhouse 1",
		Tenant:   "default",
		Active:   true,
	}

	err := s.AddDevice(ctx, device)
	if err != nil {
		t.Fatal(err)
	}

	return device
}

func TestAddDeviceTwiceReturnsAlreadyExist(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	device := seedDevice(t, ctx, s)

	err := s.AddDevice(ctx, device)
	is.True(errors.Is(err, ErrAlreadyExist))
}

func TestGetDeviceWithTenants(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	device := seedDevice(t, ctx, s)

	fromDb, err := s.GetDevice(ctx, WithDeviceID(device.DeviceID), WithTenants([]string{"default"}))
	is.NoErr(err)
	is.Equal(device.DeviceID, fromDb.DeviceID)

	_, err = s.GetDevice(ctx, WithDeviceID(device.DeviceID), WithTenants([]string{"other"}))
	is.True(errors.Is(err, ErrNoRows))
}

func TestLatestReadingsPerSensorType(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	device := seedDevice(t, ctx, s)
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	add := func(sensorTypeID string, value float64, observedAt time.Time) {
		err := s.AddReading(ctx, types.Reading{
			ID:           uuid.NewString(),
			DeviceID:     device.DeviceID,
			SensorTypeID: sensorTypeID,
			Value:        value,
			ObservedAt:   observedAt,
		})
		is.NoErr(err)
	}

	add("temperature", 20, base)
	add("temperature", 21, base.Add(time.Minute))
	add("humidity", 50, base)
	add("humidity", 52, base.Add(2*time.Minute))

	latest, err := s.LatestReadings(ctx, device.DeviceID)
	is.NoErr(err)
	is.Equal(2, len(latest))

	byType := map[string]types.Reading{}
	for _, r := range latest {
		byType[r.SensorTypeID] = r
	}

	is.Equal(21.0, byType["temperature"].Value)
	is.Equal(52.0, byType["humidity"].Value)
}

func TestLatestReadingsTieBreaksOnInsertionOrder(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	device := seedDevice(t, ctx, s)
	observedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	first := uuid.NewString()
	second := uuid.NewString()

	for _, id := range []string{first, second} {
		err := s.AddReading(ctx, types.Reading{
			ID:           id,
			DeviceID:     device.DeviceID,
			SensorTypeID: "temperature",
			Value:        20,
			ObservedAt:   observedAt,
		})
		is.NoErr(err)
	}

	latest, err := s.LatestReadings(ctx, device.DeviceID)
	is.NoErr(err)
	is.Equal(1, len(latest))
	is.Equal(second, latest[0].ID)
}

func TestDuplicateUnresolvedAlertIsRejected(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	device := seedDevice(t, ctx, s)

	alert := types.Alert{
		ID:           uuid.NewString(),
		DeviceID:     device.DeviceID,
		SensorTypeID: "temperature",
		AlertType:    types.AlertTypeHigh,
		Message:      "too hot",
		Tenant:       "default",
		CreatedAt:    time.Now().UTC(),
	}

	err := s.AddAlert(ctx, alert)
	is.NoErr(err)

	alert.ID = uuid.NewString()
	err = s.AddAlert(ctx, alert)
	is.True(errors.Is(err, ErrAlreadyExist))

	// resolving the first alert opens the slot again
	unresolved, err := s.QueryAlerts(ctx, WithDeviceID(device.DeviceID), WithResolved(false))
	is.NoErr(err)
	is.Equal(1, len(unresolved.Data))

	err = s.ResolveAlert(ctx, unresolved.Data[0].ID, "default")
	is.NoErr(err)

	alert.ID = uuid.NewString()
	err = s.AddAlert(ctx, alert)
	is.NoErr(err)
}

func TestResolveUnknownAlertReturnsNoRows(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	err := s.ResolveAlert(ctx, uuid.NewString(), "default")
	is.True(errors.Is(err, ErrNoRows))
}

func TestQueryReadingsWithConditions(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	device := seedDevice(t, ctx, s)
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		err := s.AddReading(ctx, types.Reading{
			ID:           uuid.NewString(),
			DeviceID:     device.DeviceID,
			SensorTypeID: "temperature",
			Value:        float64(20 + i),
			ObservedAt:   base.Add(time.Duration(i) * time.Minute),
		})
		is.NoErr(err)
	}

	collection, err := s.QueryReadings(ctx, WithDeviceID(device.DeviceID), WithLimit(3), WithSortDesc(true))
	is.NoErr(err)
	is.Equal(3, len(collection.Data))
	is.Equal(uint64(5), collection.TotalCount)
	is.Equal(24.0, collection.Data[0].Value)
}
