// Package cli provides the command-line interface for edudash.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/leapstack-labs/edudash/internal/catalog"
	"github.com/leapstack-labs/edudash/internal/cli/commands"
	"github.com/leapstack-labs/edudash/internal/cli/config"
	"github.com/spf13/cobra"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	cat := catalog.Default()

	rootCmd := &cobra.Command{
		Use:   "edudash",
		Short: "edudash - Education Dashboard",
		Long: `edudash explores a global education dataset: adult and youth literacy,
illiteracy and GDP per schooling year by country and year.

It runs a fixed catalog of analytical queries, shows a gallery of
exploratory charts and plots the adult literacy history of any country,
either in the terminal or in a local web dashboard.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "version" {
				return nil
			}

			cfg, used, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger := newLogger(cmd, cfg.Verbose)
			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)

			if used != "" {
				logger.Debug("using config file", slog.String("path", used))
			}
			logger.Debug("store configured", slog.String("store", cfg.Store.AdapterConfig().Address()))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set version template
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Education dashboard over the global literacy dataset
`)

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./edudash.yaml)")
	pf.String("store", "", "Store type: mysql, postgres, sqlite, duckdb")
	pf.String("host", "", "Store host")
	pf.Int("port", 0, "Store port")
	pf.String("user", "", "Store user")
	pf.String("password", "", "Store password (supports ${VAR})")
	pf.String("database", "", "Database name")
	pf.String("path", "", "Database file for sqlite and duckdb")
	pf.Duration("query-timeout", 0, "Deadline for each statement")
	pf.Duration("connect-timeout", 0, "Deadline for opening a connection")
	pf.String("seeds-dir", "", "Path to seeds directory")
	pf.BoolP("verbose", "v", false, "Verbose output")
	pf.StringP("output", "o", "", "Output format (auto|text|markdown|json)")

	// Register completion for output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "markdown", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Register completion for store flag
	_ = rootCmd.RegisterFlagCompletionFunc("store", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"mysql", "postgres", "sqlite", "duckdb"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version, BuildDate, GitCommit))
	rootCmd.AddCommand(commands.NewServeCommand(cat))
	rootCmd.AddCommand(commands.NewQueryCommand(cat))
	rootCmd.AddCommand(commands.NewCountryCommand())
	rootCmd.AddCommand(commands.NewGalleryCommand())
	rootCmd.AddCommand(commands.NewSeedCommand())
	rootCmd.AddCommand(commands.NewShellCommand(cat))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// newLogger builds the process logger: text on stderr, debug when verbose.
func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for edudash.

To load completions:

Bash:
  $ source <(edudash completion bash)

Zsh:
  $ edudash completion zsh > "${fpath[1]}/_edudash"

Fish:
  $ edudash completion fish | source

PowerShell:
  PS> edudash completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
