package ingest

import (
	"encoding/json"
	"time"

	"github.com/diwise/iot-telemetry/pkg/types"
)

type ReadingStored struct {
	Reading   types.Reading `json:"reading"`
	Tenant    string        `json:"tenant"`
	Timestamp time.Time     `json:"timestamp"`
}

func (r *ReadingStored) ContentType() string {
	return "application/json"
}
func (r *ReadingStored) TopicName() string {
	return "telemetry.readingStored"
}
func (r *ReadingStored) Body() []byte {
	b, _ := json.Marshal(r)
	return b
}
