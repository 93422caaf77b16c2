package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

type deviceStatus struct {
	DeviceID  string   `json:"deviceID"`
	Code      int      `json:"statusCode"`
	Messages  []string `json:"statusMessages,omitempty"`
	Tenant    string   `json:"tenant"`
	Timestamp string   `json:"timestamp"`
}

var tracer = otel.Tracer("iot-telemetry/alert")

// NewDeviceStatusHandler reacts to device status messages from the bus. A non
// zero status code raises an offline alert for the device, a zero code
// resolves any open offline alert.
func NewDeviceStatusHandler(svc AlertService) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "device-status")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		status := deviceStatus{}

		err = json.Unmarshal(itm.Body(), &status)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		alerts, err := svc.GetByDeviceID(ctx, status.DeviceID, 0, 100, []string{status.Tenant})
		if err != nil {
			log.Error("could not fetch alerts", "device_id", status.DeviceID, "err", err.Error())
			return
		}
		if alerts.TotalCount > alerts.Count {
			log.Warn("too many alerts found", "device_id", status.DeviceID)
		}

		if status.Code == 0 {
			for _, a := range alerts.Data {
				if a.AlertType == types.AlertTypeOffline && !a.Resolved {
					err := svc.Resolve(ctx, a.ID, []string{a.Tenant})
					if err != nil {
						log.Error("could not resolve alert", "alert_id", a.ID, "err", err.Error())
						continue
					}
				}
			}
			return
		}

		ts, err := time.Parse(time.RFC3339, status.Timestamp)
		if err != nil {
			ts = time.Now().UTC()
		}

		_, err = svc.Add(ctx, types.Alert{
			DeviceID:  status.DeviceID,
			AlertType: types.AlertTypeOffline,
			Message:   fmt.Sprintf("no communication from device %s", status.DeviceID),
			Tenant:    status.Tenant,
			CreatedAt: ts,
		})
		if err != nil {
			log.Error("could not create alert", "device_id", status.DeviceID, "err", err.Error())
		}
	}
}
