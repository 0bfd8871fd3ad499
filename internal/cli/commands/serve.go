package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/leapstack-labs/edudash/internal/catalog"
	"github.com/leapstack-labs/edudash/internal/gallery"
	"github.com/leapstack-labs/edudash/internal/ui"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand(cat *catalog.Catalog) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the education dashboard web UI",
		Long: `Start a local web server with three views:

- Query runner over the predefined catalog
- Gallery of exploratory chart images
- Country profile with the adult literacy line chart`,
		Example: `  # Start on the default port
  edudash serve

  # Serve a SQLite store on port 3000
  edudash serve --store sqlite --path literacy.db --ui-port 3000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, cat)
		},
	}

	cmd.Flags().Int("ui-port", 0, "Port to serve on (default: 8501)")
	cmd.Flags().String("assets-dir", "", "Directory holding the gallery images")
	cmd.Flags().Bool("watch", true, "Refresh the gallery when images change")
	cmd.Flags().String("session-secret", "", "Key for the session cookie (random when empty)")
	cmd.Flags().Duration("status-interval", 0, "How often the store status badge is refreshed")

	return cmd
}

func runServe(cmd *cobra.Command, cat *catalog.Catalog) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	secret := cfg.UI.SessionSecret
	if secret == "" {
		generated, err := randomSecret()
		if err != nil {
			return err
		}
		secret = generated
		cmdCtx.Logger.Debug("generated session secret; selections are forgotten on restart")
	}

	srv := ui.NewServer(ui.Config{
		Executor:       cmdCtx.Executor(cat),
		Reporter:       cmdCtx.Reporter(),
		Gallery:        gallery.New(cfg.UI.AssetsDir),
		Status:         cmdCtx.Provider,
		StatusInterval: cfg.UI.StatusInterval,
		Port:           cfg.UI.Port,
		Watch:          cfg.UI.Watch,
		SessionSecret:  secret,
		Logger:         cmdCtx.Logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Education dashboard on http://localhost:%d (store %s)\n",
		cfg.UI.Port, cmdCtx.Provider.Address())

	err := srv.Serve(ctx)
	if ctx.Err() != nil {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Shutting down")
		return nil
	}
	return err
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
