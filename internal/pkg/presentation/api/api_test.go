package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diwise/iot-telemetry/internal/pkg/application/alerts"
	"github.com/diwise/iot-telemetry/internal/pkg/application/devices"
	"github.com/diwise/iot-telemetry/internal/pkg/application/ingest"
	"github.com/diwise/iot-telemetry/internal/pkg/presentation/api/auth"
	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func authedRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(auth.WithAllowedTenants(req.Context(), []string{"default"}))
}

func TestIngestReadingHandler(t *testing.T) {
	is := is.New(t)

	svc := &ingest.IngestServiceMock{
		IngestFunc: func(ctx context.Context, reading types.Reading) (types.Reading, error) {
			reading.ID = "0e7f1c3d-2b11-4a57-9a2e-c1f9a7b09f2a"
			return reading, nil
		},
	}

	body := bytes.NewBufferString(`{"deviceID":"greenhouse-01","sensorTypeID":"temperature","value":21.5}`)
	req := authedRequest(http.MethodPost, "/api/v0/readings", body)
	res := httptest.NewRecorder()

	ingestReadingHandler(discardLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusCreated, res.Code)
	is.Equal(1, len(svc.IngestCalls()))
	is.Equal("greenhouse-01", svc.IngestCalls()[0].Reading.DeviceID)
}

func TestIngestReadingHandlerUnknownDevice(t *testing.T) {
	is := is.New(t)

	svc := &ingest.IngestServiceMock{
		IngestFunc: func(ctx context.Context, reading types.Reading) (types.Reading, error) {
			return types.Reading{}, ingest.ErrDeviceNotFound
		},
	}

	body := bytes.NewBufferString(`{"deviceID":"no-such-device","sensorTypeID":"temperature","value":21.5}`)
	req := authedRequest(http.MethodPost, "/api/v0/readings", body)
	res := httptest.NewRecorder()

	ingestReadingHandler(discardLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusNotFound, res.Code)
}

func TestIngestReadingHandlerInvalidValue(t *testing.T) {
	is := is.New(t)

	svc := &ingest.IngestServiceMock{
		IngestFunc: func(ctx context.Context, reading types.Reading) (types.Reading, error) {
			return types.Reading{}, ingest.ErrInvalidValue
		},
	}

	body := bytes.NewBufferString(`{"deviceID":"greenhouse-01","sensorTypeID":"temperature","value":21.5}`)
	req := authedRequest(http.MethodPost, "/api/v0/readings", body)
	res := httptest.NewRecorder()

	ingestReadingHandler(discardLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)
}

func TestGetLatestReadingsHandler(t *testing.T) {
	is := is.New(t)

	deviceSvc := &devices.DeviceServiceMock{
		GetByIDFunc: func(ctx context.Context, deviceID string, tenants []string) (types.Device, error) {
			return types.Device{DeviceID: deviceID, Name: "Greenhouse 1", Tenant: "default"}, nil
		},
		SensorTypesFunc: func(ctx context.Context) (types.Collection[types.SensorType], error) {
			return types.Collection[types.SensorType]{
				Data: []types.SensorType{{ID: "temperature", Name: "Temperature", Unit: "°C"}},
			}, nil
		},
	}
	ingestSvc := &ingest.IngestServiceMock{
		LatestFunc: func(ctx context.Context, deviceID string, tenants []string) ([]types.Reading, error) {
			return []types.Reading{
				{
					ID:           "0e7f1c3d-2b11-4a57-9a2e-c1f9a7b09f2a",
					DeviceID:     deviceID,
					SensorTypeID: "temperature",
					Value:        21.5,
					ObservedAt:   time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
				},
			}, nil
		},
	}

	req := authedRequest(http.MethodGet, "/api/v0/devices/greenhouse-01/readings/latest", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("deviceID", "greenhouse-01")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	res := httptest.NewRecorder()
	getLatestReadingsHandler(discardLogger(), deviceSvc, ingestSvc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	var views []types.ReadingView
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &views))
	is.Equal(1, len(views))
	is.Equal("Greenhouse 1", views[0].Device)
	is.Equal("Temperature", views[0].SensorType)
	is.Equal("°C", views[0].Unit)
	is.Equal("2025-01-01T12:00:00Z", views[0].Timestamp)
}

func TestResolveAlertHandler(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		ResolveFunc: func(ctx context.Context, alertID string, tenants []string) error {
			return nil
		},
	}

	req := authedRequest(http.MethodPatch, "/api/v0/alerts/alert-01", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("alertID", "alert-01")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	res := httptest.NewRecorder()
	resolveAlertHandler(discardLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusNoContent, res.Code)
	is.Equal(1, len(svc.ResolveCalls()))
	is.Equal([]string{"default"}, svc.ResolveCalls()[0].Tenants)
}

func TestResolveAlertHandlerNotFound(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		ResolveFunc: func(ctx context.Context, alertID string, tenants []string) error {
			return alerts.ErrAlertNotFound
		},
	}

	req := authedRequest(http.MethodPatch, "/api/v0/alerts/no-such-alert", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("alertID", "no-such-alert")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	res := httptest.NewRecorder()
	resolveAlertHandler(discardLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusNotFound, res.Code)
}

func TestGetDeviceDetailsNotFound(t *testing.T) {
	is := is.New(t)

	svc := &devices.DeviceServiceMock{
		GetByIDFunc: func(ctx context.Context, deviceID string, tenants []string) (types.Device, error) {
			return types.Device{}, devices.ErrDeviceNotFound
		},
	}

	req := authedRequest(http.MethodGet, "/api/v0/devices/no-such-device", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("deviceID", "no-such-device")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	res := httptest.NewRecorder()
	getDeviceDetails(discardLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusNotFound, res.Code)
}

func TestGetSensorTypeDetails(t *testing.T) {
	is := is.New(t)

	svc := &devices.DeviceServiceMock{
		GetSensorTypeFunc: func(ctx context.Context, sensorTypeID string) (types.SensorType, error) {
			return types.SensorType{ID: sensorTypeID, Name: "Temperature", Unit: "°C"}, nil
		},
	}

	req := authedRequest(http.MethodGet, "/api/v0/sensortypes/temperature", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("sensorTypeID", "temperature")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	res := httptest.NewRecorder()
	getSensorTypeDetails(discardLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	var sensorType types.SensorType
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &sensorType))
	is.Equal("temperature", sensorType.ID)
	is.Equal("°C", sensorType.Unit)
}

func TestGetSensorTypeDetailsNotFound(t *testing.T) {
	is := is.New(t)

	svc := &devices.DeviceServiceMock{
		GetSensorTypeFunc: func(ctx context.Context, sensorTypeID string) (types.SensorType, error) {
			return types.SensorType{}, devices.ErrSensorTypeNotFound
		},
	}

	req := authedRequest(http.MethodGet, "/api/v0/sensortypes/no-such-type", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("sensorTypeID", "no-such-type")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	res := httptest.NewRecorder()
	getSensorTypeDetails(discardLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusNotFound, res.Code)
}

func TestCreateDeviceHandlerConflict(t *testing.T) {
	is := is.New(t)

	svc := &devices.DeviceServiceMock{
		CreateFunc: func(ctx context.Context, device types.Device) error {
			return devices.ErrDeviceAlreadyExist
		},
	}

	body := bytes.NewBufferString(`{"deviceID":"greenhouse-01","name":"Greenhouse 1"}`)
	req := authedRequest(http.MethodPost, "/api/v0/devices", body)
	res := httptest.NewRecorder()

	createDeviceHandler(discardLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusConflict, res.Code)
}
