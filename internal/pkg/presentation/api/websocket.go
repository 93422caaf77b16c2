package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/diwise/iot-telemetry/internal/pkg/application/devices"
	"github.com/diwise/iot-telemetry/internal/pkg/application/ingest"
	"github.com/diwise/iot-telemetry/internal/pkg/application/subscriptions"
	"github.com/diwise/iot-telemetry/internal/pkg/presentation/api/auth"
	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/samber/lo"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// cross origin dashboards are allowed, the authenticator has already
		// vetted the caller before the upgrade
		return true
	},
}

// streamHandler upgrades the request to a websocket and streams the device's
// readings and alerts to the peer. The connection is refused before the
// upgrade if the device is unknown or not visible to the caller's tenants.
// Right after the upgrade the peer receives a latest_data snapshot, then
// pushed events in delivery order. Inbound {"type":"ping"} messages are
// answered with a pong on a side channel so they never reorder the stream.
func streamHandler(log *slog.Logger, deviceSvc devices.DeviceService, ingestSvc ingest.IngestService, registry *subscriptions.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "subscribe-device-stream")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceID := chi.URLParam(r, "deviceID")
		requestLogger = requestLogger.With(slog.String("device_id", deviceID))

		device, err := deviceSvc.GetByID(ctx, deviceID, allowedTenants)
		if err != nil {
			requestLogger.Debug("refusing stream subscription", "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			requestLogger.Error("websocket upgrade failed", "err", err.Error())
			return
		}

		// registration happens before the snapshot query so a reading
		// committed in between is not lost: it queues in the subscriber's
		// channel and is delivered right after the snapshot
		subscriber := subscriptions.NewSubscriber(device.DeviceID)
		registry.Register(subscriber)

		latest, err := ingestSvc.Latest(ctx, deviceID, allowedTenants)
		if err != nil {
			requestLogger.Error("unable to fetch snapshot", "err", err.Error())
			registry.Unregister(subscriber)
			conn.Close()
			return
		}

		sensorTypes := sensorTypesByID(ctx, deviceSvc)

		snapshot := subscriptions.Message{
			Type: subscriptions.MessageTypeSnapshot,
			Data: lo.Map(latest, func(reading types.Reading, _ int) types.ReadingView {
				return types.NewReadingView(device, sensorTypes[reading.SensorTypeID], reading)
			}),
		}

		conn.SetWriteDeadline(time.Now().Add(writeWait))
		err = conn.WriteJSON(snapshot)
		if err != nil {
			requestLogger.Error("unable to write snapshot", "err", err.Error())
			registry.Unregister(subscriber)
			conn.Close()
			return
		}

		requestLogger.Debug("stream subscriber connected")

		pongs := make(chan struct{}, 8)

		go writePump(conn, subscriber, registry, pongs)
		readPump(conn, subscriber, registry, pongs, requestLogger)

		requestLogger.Debug("stream subscriber disconnected")
	}
}

// readPump consumes inbound messages until the peer goes away. Liveness
// probes are forwarded to the write pump, everything else is ignored.
func readPump(conn *websocket.Conn, subscriber *subscriptions.Subscriber, registry *subscriptions.Registry, pongs chan<- struct{}, log *slog.Logger) {
	defer func() {
		registry.Unregister(subscriber)
		conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg subscriptions.Message

		err := conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				log.Debug("websocket closed unexpectedly", "err", err.Error())
			}
			return
		}

		if msg.Type == subscriptions.MessageTypePing {
			select {
			case pongs <- struct{}{}:
			default:
			}
		}
	}
}

// writePump owns all writes to the connection: pushed events in FIFO order,
// pong answers and protocol level keepalive pings.
func writePump(conn *websocket.Conn, subscriber *subscriptions.Subscriber, registry *subscriptions.Registry, pongs <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		registry.Unregister(subscriber)
		conn.Close()
	}()

	for {
		select {
		case msg, ok := <-subscriber.Events():
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// unregistered, either by us or as a slow consumer
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		case <-pongs:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(subscriptions.Message{Type: subscriptions.MessageTypePong}); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
