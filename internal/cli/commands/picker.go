package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leapstack-labs/edudash/internal/cli/output"
	"github.com/spf13/cobra"
)

var errNoSelection = errors.New("no selection made")

type pickItem string

func (i pickItem) Title() string       { return string(i) }
func (i pickItem) Description() string { return "" }
func (i pickItem) FilterValue() string { return string(i) }

// picker is a filterable single-choice list.
type picker struct {
	list   list.Model
	choice string
}

func newPicker(title string, options []string) picker {
	items := make([]list.Item, len(options))
	for i, o := range options {
		items[i] = pickItem(o)
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, 80, 20)
	l.Title = title
	l.SetShowStatusBar(false)
	return picker{list: l}
}

func (p picker) Init() tea.Cmd { return nil }

func (p picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.list.SetSize(msg.Width, msg.Height)
		return p, nil
	case tea.KeyMsg:
		// While typing a filter every key belongs to the list.
		if p.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := p.list.SelectedItem().(pickItem); ok {
				p.choice = string(item)
			}
			return p, tea.Quit
		case "esc", "ctrl+c":
			return p, tea.Quit
		}
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

func (p picker) View() string { return p.list.View() }

// pick runs the picker full screen and returns the chosen option.
func pick(ctx context.Context, in io.Reader, out io.Writer, title string, options []string) (string, error) {
	if len(options) == 0 {
		return "", errors.New("nothing to choose from")
	}

	prog := tea.NewProgram(newPicker(title, options),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen())
	final, err := prog.Run()
	if err != nil {
		return "", fmt.Errorf("picker failed: %w", err)
	}

	choice := final.(picker).choice
	if choice == "" {
		return "", errNoSelection
	}
	return choice, nil
}

// interactive reports whether the command may prompt the user.
func interactive(cmd *cobra.Command) bool {
	return output.IsInputTerminal(cmd.InOrStdin()) && output.IsTerminal(cmd.OutOrStdout())
}
