package types

import (
	"encoding/json"
	"time"
)

type Device struct {
	DeviceID    string    `json:"deviceID"`
	Name        string    `json:"name"`
	DeviceType  string    `json:"deviceType,omitzero"`
	Location    string    `json:"location,omitzero"`
	Description string    `json:"description,omitzero"`
	Tenant      string    `json:"tenant"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

type SensorType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Unit        string `json:"unit"`
	Description string `json:"description,omitzero"`
}

// Reading is one immutable measurement. Payload is an opaque blob that is
// stored and returned verbatim.
type Reading struct {
	ID           string          `json:"id"`
	DeviceID     string          `json:"deviceID"`
	SensorTypeID string          `json:"sensorTypeID"`
	Value        float64         `json:"value"`
	ObservedAt   time.Time       `json:"observedAt"`
	Payload      json.RawMessage `json:"payload,omitempty"`
}

const (
	AlertTypeHigh    string = "high"
	AlertTypeLow     string = "low"
	AlertTypeError   string = "error"
	AlertTypeOffline string = "offline"
)

type Alert struct {
	ID             string     `json:"id"`
	DeviceID       string     `json:"deviceID"`
	SensorTypeID   string     `json:"sensorTypeID,omitzero"`
	AlertType      string     `json:"alertType"`
	Message        string     `json:"message"`
	ThresholdValue *float64   `json:"thresholdValue,omitempty"`
	ActualValue    *float64   `json:"actualValue,omitempty"`
	Resolved       bool       `json:"resolved"`
	Tenant         string     `json:"tenant"`
	CreatedAt      time.Time  `json:"createdAt"`
	ResolvedAt     *time.Time `json:"resolvedAt,omitempty"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}

// ReadingView is the wire shape dashboards read, both from the REST api and
// from pushed websocket events. Field names are part of the public contract.
type ReadingView struct {
	ID         string  `json:"id"`
	Device     string  `json:"device"`
	SensorType string  `json:"sensor_type"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	Timestamp  string  `json:"timestamp"`
}

type AlertView struct {
	ID             string   `json:"id"`
	Device         string   `json:"device"`
	SensorType     string   `json:"sensor_type"`
	AlertType      string   `json:"alert_type"`
	Message        string   `json:"message"`
	ThresholdValue *float64 `json:"threshold_value"`
	ActualValue    *float64 `json:"actual_value"`
	IsResolved     bool     `json:"is_resolved"`
	CreatedAt      string   `json:"created_at"`
}

func NewReadingView(device Device, sensorType SensorType, r Reading) ReadingView {
	return ReadingView{
		ID:         r.ID,
		Device:     device.Name,
		SensorType: sensorType.Name,
		Value:      r.Value,
		Unit:       sensorType.Unit,
		Timestamp:  r.ObservedAt.UTC().Format(time.RFC3339),
	}
}

func NewAlertView(device Device, sensorType SensorType, a Alert) AlertView {
	return AlertView{
		ID:             a.ID,
		Device:         device.Name,
		SensorType:     sensorType.Name,
		AlertType:      a.AlertType,
		Message:        a.Message,
		ThresholdValue: a.ThresholdValue,
		ActualValue:    a.ActualValue,
		IsResolved:     a.Resolved,
		CreatedAt:      a.CreatedAt.UTC().Format(time.RFC3339),
	}
}
