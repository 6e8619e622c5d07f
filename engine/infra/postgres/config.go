package postgres

import "time"

// Config controls the pgx pool used by the store.
type Config struct {
	DSN               string
	MaxConns          int32
	MinConns          int32
	ConnectTimeout    time.Duration
	PingTimeout       time.Duration
	HealthCheckPeriod time.Duration
}
