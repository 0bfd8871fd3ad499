package core

import (
	"database/sql"
	"strconv"
)

// AdapterConfig holds configuration for connecting to a database.
type AdapterConfig struct {
	Type     string
	Path     string
	Host     string
	Port     int
	Database string
	Username string
	Password string
	Options  map[string]string
}

// Address returns a credential-free description of the configured store,
// suitable for logs and user-facing messages.
func (c AdapterConfig) Address() string {
	switch {
	case c.Host != "" && c.Port != 0:
		return c.Type + "://" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.Database
	case c.Host != "":
		return c.Type + "://" + c.Host + "/" + c.Database
	case c.Path != "":
		return c.Type + ":" + c.Path
	case c.Database != "":
		return c.Type + ":" + c.Database
	default:
		return c.Type
	}
}

// Rows wraps sql.Rows to provide a consistent interface.
type Rows struct {
	*sql.Rows
}
