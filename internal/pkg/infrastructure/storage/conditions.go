package storage

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	DeviceID     string
	SensorTypeID string
	AlertID      string
	AlertType    string

	Resolved *bool
	Active   *bool

	Tenant  string
	Tenants []string

	NotBefore time.Time
	NotAfter  time.Time

	// column the NotBefore/NotAfter bounds apply to, observed_at unless
	// the querying store says otherwise
	timeColumn string

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.DeviceID != "" {
		args["device_id"] = c.DeviceID
	}
	if c.SensorTypeID != "" {
		args["sensor_type_id"] = c.SensorTypeID
	}
	if c.AlertID != "" {
		args["alert_id"] = c.AlertID
	}
	if c.AlertType != "" {
		args["alert_type"] = c.AlertType
	}
	if c.Resolved != nil {
		args["resolved"] = *c.Resolved
	}
	if c.Active != nil {
		args["active"] = *c.Active
	}
	if c.Tenant != "" {
		args["tenant"] = c.Tenant
	}
	if c.Tenants != nil {
		args["tenants"] = c.Tenants
	}
	if !c.NotBefore.IsZero() {
		args["not_before"] = c.NotBefore.UTC()
	}
	if !c.NotAfter.IsZero() {
		args["not_after"] = c.NotAfter.UTC()
	}

	return args
}

func (c Condition) Where() string {
	where := []string{"1=1"}

	if c.DeviceID != "" {
		where = append(where, "device_id = @device_id")
	}
	if c.SensorTypeID != "" {
		where = append(where, "sensor_type_id = @sensor_type_id")
	}
	if c.AlertID != "" {
		where = append(where, "alert_id = @alert_id")
	}
	if c.AlertType != "" {
		where = append(where, "alert_type = @alert_type")
	}
	if c.Resolved != nil {
		where = append(where, "resolved = @resolved")
	}
	if c.Active != nil {
		where = append(where, "active = @active")
	}

	if len(c.Tenant) > 0 && len(c.Tenants) > 0 && slices.Contains(c.Tenants, c.Tenant) {
		where = append(where, "tenant = @tenant")
	} else if len(c.Tenants) > 0 {
		where = append(where, "tenant = ANY(@tenants)")
	}

	timeColumn := c.timeColumn
	if timeColumn == "" {
		timeColumn = "observed_at"
	}

	if !c.NotBefore.IsZero() {
		where = append(where, timeColumn+" >= @not_before")
	}
	if !c.NotAfter.IsZero() {
		where = append(where, timeColumn+" <= @not_after")
	}

	return strings.Join(where, " AND ")
}

func (c Condition) SortBy(def string) string {
	if c.sortBy == "" {
		return def
	}
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "DESC"
	}
	return c.sortOrder
}

func (c Condition) Offset() int {
	if c.offset == nil {
		return 0
	}
	return *c.offset
}

func (c Condition) Limit() int {
	if c.limit == nil {
		return 0
	}
	return *c.limit
}

func (c Condition) OffsetLimit() string {
	offsetLimit := ""

	if c.offset != nil {
		offsetLimit += fmt.Sprintf("OFFSET %d ", *c.offset)
	}
	if c.limit != nil {
		offsetLimit += fmt.Sprintf("LIMIT %d ", *c.limit)
	}

	return offsetLimit
}

func WithDeviceID(deviceID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.DeviceID = deviceID
		return c
	}
}

func WithSensorTypeID(sensorTypeID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.SensorTypeID = sensorTypeID
		return c
	}
}

func WithAlertID(alertID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertID = alertID
		return c
	}
}

func WithAlertType(alertType string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertType = alertType
		return c
	}
}

func WithResolved(resolved bool) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Resolved = &resolved
		return c
	}
}

func WithActive(active bool) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Active = &active
		return c
	}
}

func WithTenant(tenant string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Tenants = unique(append(c.Tenants, tenant))
		c.Tenant = tenant
		return c
	}
}

func WithTenants(tenants []string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Tenants = unique(tenants)
		return c
	}
}

func WithNotBefore(ts time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.NotBefore = ts
		return c
	}
}

func WithNotAfter(ts time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.NotAfter = ts
		return c
	}
}

func WithSortBy(sortBy string) ConditionFunc {
	return func(c *Condition) *Condition {
		switch strings.ToLower(sortBy) {
		case "device_id":
			c.sortBy = "device_id"
		case "sensor_type":
			fallthrough
		case "sensor_type_id":
			c.sortBy = "sensor_type_id"
		case "observed_at":
			fallthrough
		case "timestamp":
			c.sortBy = "observed_at"
		case "created_on":
			c.sortBy = "created_on"
		case "value":
			c.sortBy = "value"
		}
		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		if desc {
			c.sortOrder = "DESC"
		} else {
			c.sortOrder = "ASC"
		}
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func unique(s []string) []string {
	seen := make(map[string]bool)
	list := []string{}
	for _, entry := range s {
		if !seen[entry] {
			seen[entry] = true
			list = append(list, entry)
		}
	}
	return list
}

func ParseConditions(ctx context.Context, params map[string][]string) []ConditionFunc {
	log := logging.GetFromContext(ctx)

	conditions := make([]ConditionFunc, 0)

	for k, v := range params {
		switch strings.ToLower(k) {
		case "device_id":
			conditions = append(conditions, WithDeviceID(v[0]))
		case "sensor_type":
			fallthrough
		case "sensor_type_id":
			conditions = append(conditions, WithSensorTypeID(v[0]))
		case "alert_type":
			conditions = append(conditions, WithAlertType(v[0]))
		case "is_resolved":
			fallthrough
		case "resolved":
			resolved, _ := strconv.ParseBool(v[0])
			conditions = append(conditions, WithResolved(resolved))
		case "active":
			active, _ := strconv.ParseBool(v[0])
			conditions = append(conditions, WithActive(active))
		case "limit":
			limit, _ := strconv.Atoi(v[0])
			conditions = append(conditions, WithLimit(limit))
		case "offset":
			offset, _ := strconv.Atoi(v[0])
			conditions = append(conditions, WithOffset(offset))
		case "sortby":
			conditions = append(conditions, WithSortBy(v[0]))
		case "sortorder":
			conditions = append(conditions, WithSortDesc(strings.EqualFold(v[0], "desc")))
		case "tenant":
			conditions = append(conditions, WithTenant(v[0]))
		case "from":
			if t, err := time.Parse(time.RFC3339, v[0]); err == nil {
				conditions = append(conditions, WithNotBefore(t))
			}
		case "to":
			if t, err := time.Parse(time.RFC3339, v[0]); err == nil {
				conditions = append(conditions, WithNotAfter(t))
			}
		default:
			log.Debug("unknown query parameter", "param", k, "value", v[0])
		}
	}

	return conditions
}
