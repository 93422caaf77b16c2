package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows       = errors.New("no rows in result set")
	ErrStoreFailed  = errors.New("could not store data")
	ErrNoID         = errors.New("data contains no id")
	ErrAlreadyExist = errors.New("already exists")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) CreateTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS devices (
			device_id	TEXT	NOT NULL,
			name		TEXT	NOT NULL,
			device_type	TEXT	NOT NULL DEFAULT 'ESP32',
			location	TEXT	NULL,
			description	TEXT	NULL,
			tenant		TEXT	NOT NULL,
			active		BOOLEAN	NOT NULL DEFAULT TRUE,
			created_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_devices PRIMARY KEY (device_id)
		);

		CREATE TABLE IF NOT EXISTS sensor_types (
			sensor_type_id	TEXT	NOT NULL,
			name			TEXT	NOT NULL,
			unit			TEXT	NOT NULL,
			description		TEXT	NULL,
			CONSTRAINT pkey_sensor_types PRIMARY KEY (sensor_type_id),
			CONSTRAINT ux_sensor_types_name UNIQUE (name)
		);

		CREATE TABLE IF NOT EXISTS readings (
			reading_id		TEXT	NOT NULL,
			device_id		TEXT	NOT NULL,
			sensor_type_id	TEXT	NOT NULL,
			value			DOUBLE PRECISION NOT NULL,
			observed_at		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			payload			JSONB	NULL,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			seq				BIGINT GENERATED ALWAYS AS IDENTITY,
			CONSTRAINT pkey_readings PRIMARY KEY (reading_id)
		);

		CREATE TABLE IF NOT EXISTS alerts (
			alert_id		TEXT	NOT NULL,
			device_id		TEXT	NOT NULL,
			sensor_type_id	TEXT	NOT NULL DEFAULT '',
			alert_type		TEXT	NOT NULL,
			message			TEXT	NOT NULL,
			threshold_value	DOUBLE PRECISION NULL,
			actual_value	DOUBLE PRECISION NULL,
			resolved		BOOLEAN	NOT NULL DEFAULT FALSE,
			tenant			TEXT	NOT NULL,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			resolved_on		timestamp with time zone NULL,
			CONSTRAINT pkey_alerts PRIMARY KEY (alert_id)
		);

		CREATE INDEX IF NOT EXISTS readings_latest_idx ON readings (device_id, sensor_type_id, observed_at DESC, seq DESC);
		CREATE INDEX IF NOT EXISTS readings_observed_at_idx ON readings (observed_at DESC);
		CREATE INDEX IF NOT EXISTS alerts_device_idx ON alerts (device_id) WHERE NOT resolved;
		CREATE UNIQUE INDEX IF NOT EXISTS ux_alerts_unresolved ON alerts (device_id, sensor_type_id, alert_type) WHERE NOT resolved;
	`)
	if err != nil {
		return err
	}

	return nil
}

func SeedSensorTypes(ctx context.Context, s *Storage, sensorTypes []types.SensorType) error {
	for _, st := range sensorTypes {
		err := s.AddSensorType(ctx, st)
		if err != nil && !errors.Is(err, ErrAlreadyExist) {
			return err
		}
	}

	return nil
}

func (s *Storage) Close() {
	s.pool.Close()
}
