package alerts

import (
	"encoding/json"
	"time"

	"github.com/diwise/iot-telemetry/pkg/types"
)

type AlertCreated struct {
	Alert     types.Alert `json:"alert"`
	Tenant    string      `json:"tenant"`
	Timestamp time.Time   `json:"timestamp"`
}

func (a *AlertCreated) ContentType() string {
	return "application/json"
}
func (a *AlertCreated) TopicName() string {
	return "alerts.alertCreated"
}
func (a *AlertCreated) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type AlertResolved struct {
	ID        string    `json:"id"`
	Tenant    string    `json:"tenant"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *AlertResolved) ContentType() string {
	return "application/json"
}
func (a *AlertResolved) TopicName() string {
	return "alerts.alertResolved"
}
func (a *AlertResolved) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}
