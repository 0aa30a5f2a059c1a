package store

import "time"

// Config selects and configures the backends Open brings up
type Config struct {
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures the laudo database
type PGConfig struct {
	Enabled  bool
	URL      string
	MaxConns int32

	// LogSQL installs the query tracer; statements slower than SlowQueryMs log at warn
	LogSQL      bool
	SlowQueryMs int

	// zero picks defaultConnectRetries and defaultPingTimeout
	ConnectRetries int
	PingTimeout    time.Duration
}

// CHConfig configures the optional snapshot sink
type CHConfig struct {
	Enabled bool
	URL     string

	ClientName string
	ClientTag  string
}

const (
	defaultConnectRetries = 8
	defaultPingTimeout    = 3 * time.Second

	backoffStart = 250 * time.Millisecond
	backoffMax   = 4 * time.Second
)

func (c PGConfig) retries() int {
	if c.ConnectRetries > 0 {
		return c.ConnectRetries
	}
	return defaultConnectRetries
}

func (c PGConfig) pingTimeout() time.Duration {
	if c.PingTimeout > 0 {
		return c.PingTimeout
	}
	return defaultPingTimeout
}
