package commands

import (
	"errors"
	"log/slog"

	"github.com/leapstack-labs/edudash/internal/catalog"
	"github.com/leapstack-labs/edudash/internal/cli/config"
	"github.com/leapstack-labs/edudash/internal/cli/output"
	"github.com/leapstack-labs/edudash/internal/executor"
	"github.com/leapstack-labs/edudash/internal/profile"
	"github.com/leapstack-labs/edudash/pkg/adapter"
	"github.com/leapstack-labs/edudash/pkg/format"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
	Provider *adapter.Provider
}

// NewCommandContext builds the dependencies of one command invocation from
// the config and logger carried by the command context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	provider := adapter.NewProvider(cfg.Store.AdapterConfig(),
		adapter.WithConnectTimeout(cfg.ConnectTimeout),
		adapter.WithLogger(logger))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
		Provider: provider,
	}
}

// Executor returns an executor for cat over the command's provider.
func (c *CommandContext) Executor(cat *catalog.Catalog) *executor.Executor {
	return executor.New(cat, c.Provider,
		executor.WithTimeout(c.Cfg.QueryTimeout),
		executor.WithLogger(c.Logger))
}

// Reporter returns a country profile reporter over the command's provider.
func (c *CommandContext) Reporter() *profile.Reporter {
	return profile.New(c.Provider,
		profile.WithTimeout(c.Cfg.QueryTimeout),
		profile.WithLogger(c.Logger))
}

// noticeError presents a store failure with the dashboard's wording while
// keeping the original error reachable through errors.As.
type noticeError struct {
	err error
}

func (e *noticeError) Error() string { return format.Error(e.err) }

func (e *noticeError) Unwrap() error { return e.err }

// notice wraps err for display. A nil error stays nil.
func notice(err error) error {
	if err == nil {
		return nil
	}
	var n *noticeError
	if errors.As(err, &n) {
		return err
	}
	return &noticeError{err: err}
}
