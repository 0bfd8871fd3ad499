// Package mysql provides a MySQL adapter for edudash.
//
// MySQL is the reference store for the literacy dataset.
package mysql

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"time"

	drv "github.com/go-sql-driver/mysql"
	"github.com/leapstack-labs/edudash/pkg/adapter"
)

const defaultPort = 3306

var dialect = &adapter.Dialect{
	Name:        "mysql",
	Placeholder: adapter.PlaceholderQuestion,
	Goose:       "mysql",
}

// Adapter implements the adapter.Adapter interface for MySQL.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new MySQL adapter instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{
		BaseSQLAdapter: adapter.BaseSQLAdapter{Logger: logger},
	}
}

// Dialect returns the SQL dialect for this adapter.
func (a *Adapter) Dialect() *adapter.Dialect {
	return dialect
}

// Connect establishes a connection to MySQL.
func (a *Adapter) Connect(ctx context.Context, cfg adapter.Config) error {
	a.Logger.Debug("connecting to mysql", slog.String("host", cfg.Host), slog.String("database", cfg.Database))

	if err := a.Open(ctx, "mysql", buildMySQLDSN(cfg)); err != nil {
		return err
	}
	a.Cfg = cfg
	return nil
}

// buildMySQLDSN constructs a go-sql-driver DSN such as
// user:pass@tcp(localhost:3306)/Global_literacy?parseTime=true.
func buildMySQLDSN(cfg adapter.Config) string {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == 0 {
		port = defaultPort
	}

	c := drv.NewConfig()
	c.User = cfg.Username
	c.Passwd = cfg.Password
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(host, strconv.Itoa(port))
	c.DBName = cfg.Database
	c.ParseTime = true

	if tls, ok := cfg.Options["tls"]; ok {
		c.TLSConfig = tls
	}
	if raw, ok := cfg.Options["read_timeout"]; ok {
		if d, err := time.ParseDuration(raw); err == nil {
			c.ReadTimeout = d
		}
	}

	return c.FormatDSN()
}

var _ adapter.Adapter = (*Adapter)(nil)
