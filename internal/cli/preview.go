package cli

import (
	"bytes"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbox/pkg/layout"
	"github.com/matzehuels/stackbox/pkg/pipeline"
)

var (
	previewActionStyle = lipgloss.NewStyle().Foreground(colorWhite)
	previewOpStyle     = lipgloss.NewStyle().Foreground(colorCyan)
)

// previewCommand creates the preview command, an interactive page browser.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		flags       renderFlags
		inputFormat string
	)

	cmd := &cobra.Command{
		Use:   "preview [document]",
		Short: "Browse the laid out pages and their actions interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.options(cmd, c.config)
			opts.Format = pipeline.FormatDump

			result, err := c.execute(cmd.Context(), args[0], inputFormat, opts)
			if err != nil {
				return err
			}
			if result.Layout.IsEmpty() {
				printWarning("Document produced no pages")
				return nil
			}

			p := tea.NewProgram(NewPageModel(args[0], result.Layout), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	flags.register(cmd, false)
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "document encoding when reading stdin: json (default), toml")

	return cmd
}

// =============================================================================
// PageModel - Interactive page browser
// =============================================================================

// PageModel is the bubbletea model for browsing pages. Left and right switch
// pages; up and down scroll the current page's actions.
type PageModel struct {
	Title  string
	Pages  layout.MultiLayout
	Page   int
	Offset int
	Height int

	actions [][]string
}

// NewPageModel creates a page browser over ml.
func NewPageModel(title string, ml layout.MultiLayout) PageModel {
	actions := make([][]string, len(ml.Layouts))
	for i, l := range ml.Layouts {
		actions[i] = formatActions(l.Actions)
	}
	return PageModel{
		Title:   title,
		Pages:   ml,
		Height:  15,
		actions: actions,
	}
}

func (m PageModel) Init() tea.Cmd {
	return nil
}

func (m PageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.Page > 0 {
				m.Page--
				m.Offset = 0
			}
		case "right", "l":
			if m.Page < m.Pages.Len()-1 {
				m.Page++
				m.Offset = 0
			}
		case "up", "k":
			if m.Offset > 0 {
				m.Offset--
			}
		case "down", "j":
			if m.Offset < len(m.actions[m.Page])-m.Height {
				m.Offset++
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-m.Pages.Len()-12, 5)
	}
	return m, nil
}

func (m PageModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ page  ↑/↓ scroll  q quit"))
	b.WriteString("\n\n")
	b.WriteString(pageTable(m.Pages, m.Page))
	b.WriteString("\n\n")

	lines := m.actions[m.Page]
	end := min(m.Offset+m.Height, len(lines))
	for _, line := range lines[m.Offset:end] {
		op, rest, _ := strings.Cut(line, " ")
		b.WriteString("  " + previewOpStyle.Render(op) + " " + previewActionStyle.Render(rest) + "\n")
	}
	if len(lines) == 0 {
		b.WriteString(StyleDim.Render("  (no actions)") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  page %d/%d · actions %d-%d of %d",
		m.Page+1, m.Pages.Len(), min(m.Offset+1, end), end, len(lines))))
	return b.String()
}

// formatActions serializes each action to one line.
func formatActions(actions []layout.Action) []string {
	lines := make([]string, 0, len(actions))
	var buf bytes.Buffer
	for _, a := range actions {
		buf.Reset()
		if err := a.Serialize(&buf); err != nil {
			lines = append(lines, "error "+err.Error())
			continue
		}
		lines = append(lines, buf.String())
	}
	return lines
}
