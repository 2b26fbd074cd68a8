package store

import (
	"time"

	"scotuspredict/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string
	PG      PGConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int
	PingTimeout    time.Duration
}

// FromEnv reads SERVICE_PGSQL_* style keys from c; an empty DBURL leaves pg disabled
func FromEnv(c config.Conf, appName string) Config {
	url := c.MayString("DBURL", "")
	return Config{
		AppName: appName,
		PG: PGConfig{
			Enabled:        url != "",
			URL:            url,
			MaxConns:       int32(c.MayInt("MAX_CONNS", 4)),
			LogSQL:         c.MayBool("LOG_SQL", false),
			SlowQueryMs:    c.MayInt("SLOW_MS", 200),
			ConnectRetries: c.MayInt("CONNECT_RETRIES", 6),
			PingTimeout:    c.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
	}
}
