package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/leapstack-labs/edudash/pkg/adapter"
	"github.com/leapstack-labs/edudash/pkg/core"
)

var outputModes = []string{"auto", "text", "markdown", "json"}

// Validate checks the whole configuration and reports every problem found
// in a single *core.ConfigurationError.
func (c *Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	s := c.Store
	switch {
	case s.Type == "":
		add("store.type is required")
	case !adapter.IsRegistered(s.Type):
		add("store.type %q is not supported (available: %s)", s.Type, strings.Join(adapter.ListAdapters(), ", "))
	}

	switch s.Type {
	case "mysql", "postgres":
		if s.Database == "" {
			add("store.database is required for %s", s.Type)
		}
		if s.Port < 0 || s.Port > 65535 {
			add("store.port %d is out of range", s.Port)
		}
		if strings.Contains(s.Password, "${") {
			add("store.password references an unset environment variable")
		}
	}

	if raw, ok := s.Options["read_timeout"]; ok && s.Type == "mysql" {
		if d, err := time.ParseDuration(raw); err != nil || d <= 0 {
			add("store.options.read_timeout %q must be a positive duration such as 30s", raw)
		}
	}

	if c.QueryTimeout <= 0 {
		add("query_timeout must be positive")
	}
	if c.ConnectTimeout <= 0 {
		add("connect_timeout must be positive")
	}
	if c.UI.Port <= 0 || c.UI.Port > 65535 {
		add("ui.port %d is out of range", c.UI.Port)
	}
	if !contains(outputModes, c.OutputFormat) {
		add("output %q must be one of %s", c.OutputFormat, strings.Join(outputModes, ", "))
	}

	if len(problems) > 0 {
		return &core.ConfigurationError{Problems: problems}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
