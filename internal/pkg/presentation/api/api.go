package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"log/slog"

	"github.com/diwise/iot-telemetry/internal/pkg/application/alerts"
	"github.com/diwise/iot-telemetry/internal/pkg/application/devices"
	"github.com/diwise/iot-telemetry/internal/pkg/application/ingest"
	"github.com/diwise/iot-telemetry/internal/pkg/application/subscriptions"
	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-telemetry/internal/pkg/presentation/api/auth"
	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("iot-telemetry/api")

func RegisterHandlers(ctx context.Context, router *chi.Mux, policies io.Reader, deviceSvc devices.DeviceService, ingestSvc ingest.IngestService, alertSvc alerts.AlertService, registry *subscriptions.Registry) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	authenticator, err := auth.NewAuthenticator(ctx, log, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	router.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Route("/devices", func(r chi.Router) {
				r.Get("/", queryDevicesHandler(log, deviceSvc))
				r.Post("/", createDeviceHandler(log, deviceSvc))
				r.Get("/{deviceID}", getDeviceDetails(log, deviceSvc))
				r.Patch("/{deviceID}", patchDeviceHandler(log, deviceSvc))

				r.Get("/{deviceID}/readings", getReadingsHandler(log, deviceSvc, ingestSvc))
				r.Get("/{deviceID}/readings/latest", getLatestReadingsHandler(log, deviceSvc, ingestSvc))
				r.Get("/{deviceID}/stream", streamHandler(log, deviceSvc, ingestSvc, registry))
			})

			r.Post("/readings", ingestReadingHandler(log, ingestSvc))

			r.Route("/sensortypes", func(r chi.Router) {
				r.Get("/", querySensorTypesHandler(log, deviceSvc))
				r.Post("/", createSensorTypeHandler(log, deviceSvc))
				r.Get("/{sensorTypeID}", getSensorTypeDetails(log, deviceSvc))
			})

			r.Route("/alerts", func(r chi.Router) {
				r.Get("/", queryAlertsHandler(log, deviceSvc, alertSvc))
				r.Patch("/{alertID}", resolveAlertHandler(log, alertSvc))
			})
		})
	})

	return router, nil
}

func ingestReadingHandler(log *slog.Logger, svc ingest.IngestService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "ingest-reading")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var reading types.Reading
		err = json.Unmarshal(body, &reading)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		stored, err := svc.Ingest(ctx, reading)
		if err != nil {
			requestLogger.Error("unable to ingest reading", "device_id", reading.DeviceID, "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		b, err := json.Marshal(stored)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write(b)
	}
}

func getReadingsHandler(log *slog.Logger, deviceSvc devices.DeviceService, ingestSvc ingest.IngestService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "get-readings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceID := chi.URLParam(r, "deviceID")

		readings, err := ingestSvc.Query(ctx, deviceID, r.URL.Query(), allowedTenants)
		if err != nil {
			requestLogger.Error("unable to fetch readings", "device_id", deviceID, "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		device, sensorTypes, err := viewData(ctx, deviceSvc, deviceID, allowedTenants)
		if err != nil {
			requestLogger.Error("unable to fetch view data", "device_id", deviceID, "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		views := lo.Map(readings.Data, func(reading types.Reading, _ int) types.ReadingView {
			return types.NewReadingView(device, sensorTypes[reading.SensorTypeID], reading)
		})

		b, err := json.Marshal(views)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func getLatestReadingsHandler(log *slog.Logger, deviceSvc devices.DeviceService, ingestSvc ingest.IngestService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "get-latest-readings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceID := chi.URLParam(r, "deviceID")

		readings, err := ingestSvc.Latest(ctx, deviceID, allowedTenants)
		if err != nil {
			requestLogger.Error("unable to fetch latest readings", "device_id", deviceID, "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		device, sensorTypes, err := viewData(ctx, deviceSvc, deviceID, allowedTenants)
		if err != nil {
			requestLogger.Error("unable to fetch view data", "device_id", deviceID, "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		views := lo.Map(readings, func(reading types.Reading, _ int) types.ReadingView {
			return types.NewReadingView(device, sensorTypes[reading.SensorTypeID], reading)
		})

		b, err := json.Marshal(views)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func queryDevicesHandler(log *slog.Logger, svc devices.DeviceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "query-devices")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection, err := svc.Query(ctx, r.URL.Query(), allowedTenants)
		if err != nil {
			requestLogger.Error("unable to fetch devices", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(collection.Data)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func getDeviceDetails(log *slog.Logger, svc devices.DeviceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "get-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceID := chi.URLParam(r, "deviceID")
		if deviceID != "" {
			requestLogger = requestLogger.With(slog.String("device_id", deviceID))
		}

		device, err := svc.GetByID(ctx, deviceID, allowedTenants)
		if errors.Is(err, devices.ErrDeviceNotFound) {
			requestLogger.Debug("device not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch device", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(device)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func createDeviceHandler(log *slog.Logger, svc devices.DeviceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var d types.Device
		err = json.Unmarshal(body, &d)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.Create(ctx, d)
		if err != nil {
			requestLogger.Error("unable to create device", "err", err.Error())
			if errors.Is(err, devices.ErrDeviceAlreadyExist) {
				w.WriteHeader(http.StatusConflict)
				return
			}
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
	}
}

func patchDeviceHandler(log *slog.Logger, svc devices.DeviceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "patch-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceID := chi.URLParam(r, "deviceID")
		if deviceID != "" {
			requestLogger = requestLogger.With(slog.String("device_id", deviceID))
		}

		b, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var fields struct {
			Active *bool `json:"active"`
		}
		err = json.Unmarshal(b, &fields)
		if err != nil || fields.Active == nil {
			requestLogger.Error("no patchable fields in body")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.SetActive(ctx, deviceID, *fields.Active, allowedTenants)
		if err != nil {
			requestLogger.Error("unable to update device", "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

func querySensorTypesHandler(log *slog.Logger, svc devices.DeviceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-sensor-types")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection, err := svc.SensorTypes(ctx)
		if err != nil {
			requestLogger.Error("unable to fetch sensor types", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(collection.Data)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func getSensorTypeDetails(log *slog.Logger, svc devices.DeviceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-sensor-type")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		sensorTypeID := chi.URLParam(r, "sensorTypeID")

		sensorType, err := svc.GetSensorType(ctx, sensorTypeID)
		if errors.Is(err, devices.ErrSensorTypeNotFound) {
			requestLogger.Debug("sensor type not found", "sensor_type", sensorTypeID)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch sensor type", "sensor_type", sensorTypeID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(sensorType)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func createSensorTypeHandler(log *slog.Logger, svc devices.DeviceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-sensor-type")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var st types.SensorType
		err = json.Unmarshal(body, &st)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.CreateSensorType(ctx, st)
		if err != nil {
			requestLogger.Error("unable to create sensor type", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
	}
}

func queryAlertsHandler(log *slog.Logger, deviceSvc devices.DeviceService, alertSvc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "query-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection, err := alertSvc.Query(ctx, r.URL.Query(), allowedTenants)
		if err != nil {
			requestLogger.Error("unable to fetch alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		sensorTypes := sensorTypesByID(ctx, deviceSvc)
		deviceNames := map[string]types.Device{}

		views := lo.Map(collection.Data, func(alert types.Alert, _ int) types.AlertView {
			device, ok := deviceNames[alert.DeviceID]
			if !ok {
				var lookupErr error
				device, lookupErr = deviceSvc.GetByID(ctx, alert.DeviceID, allowedTenants)
				if lookupErr != nil {
					device = types.Device{DeviceID: alert.DeviceID, Name: alert.DeviceID}
				}
				deviceNames[alert.DeviceID] = device
			}
			return types.NewAlertView(device, sensorTypes[alert.SensorTypeID], alert)
		})

		b, err := json.Marshal(views)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func resolveAlertHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "resolve-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")
		if alertID != "" {
			requestLogger = requestLogger.With(slog.String("alert_id", alertID))
		}

		err = svc.Resolve(ctx, alertID, allowedTenants)
		if err != nil {
			requestLogger.Error("unable to resolve alert", "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// viewData fetches the device and the sensor type lookup table needed to
// render reading views.
func viewData(ctx context.Context, svc devices.DeviceService, deviceID string, tenants []string) (types.Device, map[string]types.SensorType, error) {
	device, err := svc.GetByID(ctx, deviceID, tenants)
	if err != nil {
		return types.Device{}, nil, err
	}

	return device, sensorTypesByID(ctx, svc), nil
}

func sensorTypesByID(ctx context.Context, svc devices.DeviceService) map[string]types.SensorType {
	byID := map[string]types.SensorType{}

	collection, err := svc.SensorTypes(ctx)
	if err != nil {
		return byID
	}

	for _, st := range collection.Data {
		byID[st.ID] = st
	}

	return byID
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, ingest.ErrDeviceNotFound),
		errors.Is(err, ingest.ErrSensorTypeNotFound),
		errors.Is(err, devices.ErrDeviceNotFound),
		errors.Is(err, devices.ErrSensorTypeNotFound),
		errors.Is(err, alerts.ErrAlertNotFound),
		errors.Is(err, storage.ErrNoRows):
		return http.StatusNotFound
	case errors.Is(err, ingest.ErrInvalidValue):
		return http.StatusBadRequest
	case errors.Is(err, devices.ErrDeviceAlreadyExist):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
