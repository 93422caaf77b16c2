package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/diwise/iot-telemetry/internal/pkg/application/devices"
	"github.com/diwise/iot-telemetry/internal/pkg/application/ingest"
	"github.com/diwise/iot-telemetry/internal/pkg/application/subscriptions"
	"github.com/diwise/iot-telemetry/internal/pkg/presentation/api/auth"
	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/matryer/is"
)

func streamTestServer(t *testing.T, registry *subscriptions.Registry) *httptest.Server {
	deviceSvc := &devices.DeviceServiceMock{
		GetByIDFunc: func(ctx context.Context, deviceID string, tenants []string) (types.Device, error) {
			if deviceID != "greenhouse-01" {
				return types.Device{}, devices.ErrDeviceNotFound
			}
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

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(auth.WithAllowedTenants(req.Context(), []string{"default"})))
		})
	})
	r.Get("/api/v0/devices/{deviceID}/stream", streamHandler(discardLogger(), deviceSvc, ingestSvc, registry))

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return server
}

func dialStream(t *testing.T, server *httptest.Server, deviceID string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v0/devices/" + deviceID + "/stream"

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestStreamSendsSnapshotOnConnect(t *testing.T) {
	is := is.New(t)

	registry := subscriptions.NewRegistry()
	server := streamTestServer(t, registry)

	conn := dialStream(t, server, "greenhouse-01")

	var msg struct {
		Type string              `json:"type"`
		Data []types.ReadingView `json:"data"`
	}
	is.NoErr(conn.ReadJSON(&msg))

	is.Equal(subscriptions.MessageTypeSnapshot, msg.Type)
	is.Equal(1, len(msg.Data))
	is.Equal("Greenhouse 1", msg.Data[0].Device)
	is.Equal(21.5, msg.Data[0].Value)
}

func TestStreamForwardsPublishedReadingsInOrder(t *testing.T) {
	is := is.New(t)

	registry := subscriptions.NewRegistry()
	server := streamTestServer(t, registry)

	conn := dialStream(t, server, "greenhouse-01")

	var snapshot subscriptions.Message
	is.NoErr(conn.ReadJSON(&snapshot))
	is.Equal(subscriptions.MessageTypeSnapshot, snapshot.Type)

	// wait for the pumps to be registered
	deadline := time.Now().Add(time.Second)
	for registry.Count("greenhouse-01") == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	is.Equal(1, registry.Count("greenhouse-01"))

	broadcaster := subscriptions.NewBroadcaster(registry)
	device := types.Device{DeviceID: "greenhouse-01", Name: "Greenhouse 1"}
	sensorType := types.SensorType{ID: "temperature", Name: "Temperature", Unit: "°C"}

	for i := 0; i < 3; i++ {
		broadcaster.PublishReading(context.Background(), device, sensorType, types.Reading{
			DeviceID:     "greenhouse-01",
			SensorTypeID: "temperature",
			Value:        float64(20 + i),
			ObservedAt:   time.Date(2025, 1, 1, 12, i, 0, 0, time.UTC),
		})
	}

	for i := 0; i < 3; i++ {
		var msg struct {
			Type string            `json:"type"`
			Data types.ReadingView `json:"data"`
		}
		is.NoErr(conn.ReadJSON(&msg))
		is.Equal(subscriptions.MessageTypeReading, msg.Type)
		is.Equal(float64(20+i), msg.Data.Value)
	}
}

func TestStreamDeliversReadingCommittedDuringSnapshotQuery(t *testing.T) {
	is := is.New(t)

	registry := subscriptions.NewRegistry()
	broadcaster := subscriptions.NewBroadcaster(registry)

	device := types.Device{DeviceID: "greenhouse-01", Name: "Greenhouse 1", Tenant: "default"}
	sensorType := types.SensorType{ID: "temperature", Name: "Temperature", Unit: "°C"}

	deviceSvc := &devices.DeviceServiceMock{
		GetByIDFunc: func(ctx context.Context, deviceID string, tenants []string) (types.Device, error) {
			return device, nil
		},
		SensorTypesFunc: func(ctx context.Context) (types.Collection[types.SensorType], error) {
			return types.Collection[types.SensorType]{Data: []types.SensorType{sensorType}}, nil
		},
	}

	// a reading committed and broadcast while the snapshot query runs must
	// reach the subscriber, queued behind the snapshot
	ingestSvc := &ingest.IngestServiceMock{
		LatestFunc: func(ctx context.Context, deviceID string, tenants []string) ([]types.Reading, error) {
			broadcaster.PublishReading(ctx, device, sensorType, types.Reading{
				ID:           "2b114a57-9a2e-4e7f-8c3d-c1f9a7b09f2a",
				DeviceID:     deviceID,
				SensorTypeID: "temperature",
				Value:        22.5,
				ObservedAt:   time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
			})
			return []types.Reading{}, nil
		},
	}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(auth.WithAllowedTenants(req.Context(), []string{"default"})))
		})
	})
	r.Get("/api/v0/devices/{deviceID}/stream", streamHandler(discardLogger(), deviceSvc, ingestSvc, registry))

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	conn := dialStream(t, server, "greenhouse-01")
	conn.SetReadDeadline(time.Now().Add(time.Second))

	var snapshot struct {
		Type string              `json:"type"`
		Data []types.ReadingView `json:"data"`
	}
	is.NoErr(conn.ReadJSON(&snapshot))
	is.Equal(subscriptions.MessageTypeSnapshot, snapshot.Type)
	is.Equal(0, len(snapshot.Data))

	var msg struct {
		Type string            `json:"type"`
		Data types.ReadingView `json:"data"`
	}
	is.NoErr(conn.ReadJSON(&msg))
	is.Equal(subscriptions.MessageTypeReading, msg.Type)
	is.Equal(22.5, msg.Data.Value)
}

func TestStreamAnswersPingWithPong(t *testing.T) {
	is := is.New(t)

	registry := subscriptions.NewRegistry()
	server := streamTestServer(t, registry)

	conn := dialStream(t, server, "greenhouse-01")

	var snapshot subscriptions.Message
	is.NoErr(conn.ReadJSON(&snapshot))

	is.NoErr(conn.WriteJSON(subscriptions.Message{Type: subscriptions.MessageTypePing}))

	var msg subscriptions.Message
	conn.SetReadDeadline(time.Now().Add(time.Second))
	is.NoErr(conn.ReadJSON(&msg))
	is.Equal(subscriptions.MessageTypePong, msg.Type)
}

func TestStreamRefusesUnknownDeviceBeforeUpgrade(t *testing.T) {
	is := is.New(t)

	registry := subscriptions.NewRegistry()
	server := streamTestServer(t, registry)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v0/devices/no-such-device/stream"

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	is.True(err != nil)
	is.Equal(http.StatusNotFound, resp.StatusCode)
}

func TestStreamUnregistersOnClose(t *testing.T) {
	is := is.New(t)

	registry := subscriptions.NewRegistry()
	server := streamTestServer(t, registry)

	conn := dialStream(t, server, "greenhouse-01")

	var snapshot subscriptions.Message
	is.NoErr(conn.ReadJSON(&snapshot))

	deadline := time.Now().Add(time.Second)
	for registry.Count("greenhouse-01") == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	is.Equal(1, registry.Count("greenhouse-01"))

	conn.Close()

	deadline = time.Now().Add(time.Second)
	for registry.Count("greenhouse-01") != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	is.Equal(0, registry.Count("greenhouse-01"))
}
