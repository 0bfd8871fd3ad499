package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/edudash/internal/catalog"
	"github.com/leapstack-labs/edudash/internal/chart"
	"github.com/leapstack-labs/edudash/internal/cli/output"
	"github.com/leapstack-labs/edudash/internal/executor"
	"github.com/leapstack-labs/edudash/internal/profile"
	"github.com/leapstack-labs/edudash/pkg/format"
	"github.com/spf13/cobra"
)

const shellPrompt = "edudash> "

var shellCommands = []string{".help", ".list", ".countries", ".country ", ".format ", ".quit"}

// NewShellCommand creates the interactive shell command.
func NewShellCommand(cat *catalog.Catalog) *cobra.Command {
	var history string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell over the query catalog",
		Long: `Start an interactive shell. Type a query number or label to run it,
or a dot-command such as .countries or .country Zambia.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			sh := &shell{
				cat:      cat,
				exec:     cmdCtx.Executor(cat),
				reporter: cmdCtx.Reporter(),
				format:   "table",
				out:      cmd.OutOrStdout(),
			}

			if history == "" {
				history = defaultHistoryFile()
			}

			rl, err := readline.NewEx(&readline.Config{
				Prompt:          shellPrompt,
				HistoryFile:     history,
				AutoComplete:    newShellCompleter(cat),
				InterruptPrompt: "^C",
				EOFPrompt:       ".quit",
				Stdout:          cmd.OutOrStdout(),
				Stderr:          cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("failed to initialize shell: %w", err)
			}
			defer func() { _ = rl.Close() }()

			_, _ = fmt.Fprintf(sh.out, "Education dashboard shell (store: %s)\n", cmdCtx.Provider.Address())
			_, _ = fmt.Fprintln(sh.out, "Type .help for commands, .quit to exit")
			_, _ = fmt.Fprintln(sh.out)

			return sh.loop(cmd.Context(), rl)
		},
	}

	cmd.Flags().StringVar(&history, "history", "", "History file (default: user cache dir)")
	return cmd
}

func defaultHistoryFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	dir = filepath.Join(dir, "edudash")
	if err := os.MkdirAll(dir, 0750); err != nil {
		return ""
	}
	return filepath.Join(dir, "shell_history")
}

// lineReader is the part of a readline instance the shell loop uses.
type lineReader interface {
	Readline() (string, error)
}

type shell struct {
	cat      *catalog.Catalog
	exec     *executor.Executor
	reporter *profile.Reporter
	format   string
	out      io.Writer
}

func (s *shell) loop(ctx context.Context, rl lineReader) error {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if quit := s.handle(ctx, strings.TrimSpace(line)); quit {
			return nil
		}
	}
}

// handle runs one input line and reports whether the shell should exit.
func (s *shell) handle(ctx context.Context, line string) bool {
	if line == "" {
		return false
	}
	if strings.HasPrefix(line, ".") {
		return s.dotCommand(ctx, line)
	}

	label, err := s.cat.Resolve(line)
	if err != nil {
		s.println(err.Error())
		return false
	}

	table, err := s.exec.Run(ctx, label)
	if err != nil {
		s.println(format.Error(err))
		return false
	}
	if table.Empty() {
		s.println(format.EmptyResult)
		return false
	}
	if err := output.RenderTable(s.out, table, s.format); err != nil {
		s.println(err.Error())
		return false
	}
	s.println(format.Success(table.Len()))
	s.println("")
	return false
}

func (s *shell) dotCommand(ctx context.Context, line string) bool {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case ".quit", ".exit":
		return true
	case ".help":
		s.help()
	case ".list":
		for _, label := range s.cat.Labels() {
			s.println(label)
		}
	case ".countries":
		countries, err := s.reporter.ListCountries(ctx)
		if err != nil {
			s.println(format.Error(err))
			return false
		}
		s.println(strings.Join(countries, ", "))
	case ".country":
		if arg == "" {
			s.println("Usage: .country <name>")
			return false
		}
		s.country(ctx, arg)
	case ".format":
		if !slices.Contains(output.TableFormats, arg) {
			s.println("Usage: .format " + strings.Join(output.TableFormats, "|"))
			return false
		}
		s.format = arg
	default:
		s.println("Unknown command: " + name + " (type .help)")
	}
	return false
}

func (s *shell) country(ctx context.Context, name string) {
	series, err := s.reporter.SeriesFor(ctx, name)
	if err != nil {
		s.println(format.Error(err))
		return
	}
	if len(series.Valid()) == 0 {
		s.println(format.EmptySeries)
		return
	}
	s.println(series.Country + "  " + chart.Sparkline(series))
	if err := output.RenderTable(s.out, seriesTable(series), s.format); err != nil {
		s.println(err.Error())
	}
}

func (s *shell) help() {
	s.println(`Commands:
  <n> | <label>     Run a catalog query by number or label
  .list             List the catalog
  .countries        List the countries
  .country <name>   Show the adult literacy series of a country
  .format <f>       Set the table format (` + strings.Join(output.TableFormats, ", ") + `)
  .help             Show this help
  .quit             Exit`)
}

func (s *shell) println(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}

// shellCompleter completes catalog labels and dot-commands.
type shellCompleter struct {
	candidates []string
}

func newShellCompleter(cat *catalog.Catalog) *shellCompleter {
	return &shellCompleter{candidates: append(cat.Labels(), shellCommands...)}
}

// Do implements readline.AutoCompleter.
func (c *shellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	prefix := string(line[:pos])
	var out [][]rune
	for _, cand := range c.candidates {
		if len(cand) > len(prefix) && strings.HasPrefix(cand, prefix) {
			out = append(out, []rune(cand[len(prefix):]))
		}
	}
	return out, len([]rune(prefix))
}

var _ readline.AutoCompleter = (*shellCompleter)(nil)
