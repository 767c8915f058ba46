package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// newViewCmd creates the view command, an interactive scrollable viewer for
// trees too tall for one screen. It takes the same tree options as render
// but always displays text.
func newViewCmd(configPath *string) *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "Browse a rendered tree interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyRenderConfig(cmd, *configPath, &opts); err != nil {
				return err
			}
			opts.format = formatText
			return runView(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.reroot, "reroot", "", "re-root the tree at the named node before rendering")
	cmd.Flags().BoolVar(&opts.ascii, "ascii", false, "use ASCII glyphs instead of box-drawing characters")
	cmd.Flags().BoolVar(&opts.noCollapse, "no-collapse", false, "keep unary chains instead of collapsing them")

	return cmd
}

func runView(ctx context.Context, input string, opts *renderOpts) error {
	root, err := loadTree(input, opts)
	if err != nil {
		return err
	}

	data, err := renderTree(ctx, root, opts)
	if err != nil {
		return err
	}

	model := newViewerModel(input, string(data))
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// chromeLines is the number of screen lines taken by header and footer.
const chromeLines = 4

// viewerModel is the bubbletea model for the scrollable tree viewer.
type viewerModel struct {
	title  string
	lines  []string
	offset int
	height int
}

func newViewerModel(title, content string) viewerModel {
	return viewerModel{
		title:  title,
		lines:  strings.Split(strings.TrimRight(content, "\n"), "\n"),
		height: 20,
	}
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.offset = m.clamp(m.offset - 1)
		case "down", "j":
			m.offset = m.clamp(m.offset + 1)
		case "pgup", "b":
			m.offset = m.clamp(m.offset - m.height)
		case "pgdown", "f", " ":
			m.offset = m.clamp(m.offset + m.height)
		case "g", "home":
			m.offset = 0
		case "G", "end":
			m.offset = m.clamp(len(m.lines))
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - chromeLines
		if m.height < 1 {
			m.height = 1
		}
		m.offset = m.clamp(m.offset)
	}
	return m, nil
}

// clamp keeps the scroll offset within the content.
func (m viewerModel) clamp(offset int) int {
	max := len(m.lines) - m.height
	if max < 0 {
		max = 0
	}
	if offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func (m viewerModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("↑/↓ scroll  f/b page  g/G jump  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.lines) {
		end = len(m.lines)
	}
	for _, line := range m.lines[m.offset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(styleStatus.Render(fmt.Sprintf("  [%d-%d/%d]", m.offset+1, end, len(m.lines))))
	return b.String()
}
