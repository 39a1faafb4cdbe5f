package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "gooze.dev/pkg/strmut/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Padding(0, 1)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayReports shows the candidate tables in a scrollable pager.
func (t *TUI) DisplayReports(ctx context.Context, reports []m.Report) error {
	return t.page(ctx, "strmut - string mutations", renderReports(reports))
}

// DisplayMutation shows the applied mutation with a colored diff.
func (t *TUI) DisplayMutation(ctx context.Context, mutation m.Mutation) error {
	content := renderMutationHeader(mutation) + "\n" + colorizeDiff(string(mutation.DiffCode))
	return t.page(ctx, "strmut - mutation "+mutation.ID, content)
}

func (t *TUI) page(ctx context.Context, title, content string) error {
	program := tea.NewProgram(
		newPagerModel(title, content),
		tea.WithContext(ctx),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}

	return nil
}

// pagerModel is the Bubble Tea model for scrolling through rendered output.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{title: title, content: content}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pm, tea.Quit
		}

	case tea.WindowSizeMsg:
		margin := lipgloss.Height(pm.headerView()) + lipgloss.Height(pm.footerView())

		if !pm.ready {
			pm.viewport = viewport.New(msg.Width, msg.Height-margin)
			pm.viewport.SetContent(pm.content)
			pm.ready = true
		} else {
			pm.viewport.Width = msg.Width
			pm.viewport.Height = msg.Height - margin
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if !pm.ready {
		return "\n  Loading..."
	}

	return pm.headerView() + "\n" + pm.viewport.View() + "\n" + pm.footerView()
}

func (pm pagerModel) headerView() string {
	return titleStyle.Render(pm.title)
}

func (pm pagerModel) footerView() string {
	return footerStyle.Render(fmt.Sprintf("%3.f%%  q: quit  j/k: scroll", pm.viewport.ScrollPercent()*100))
}

func colorizeDiff(diff string) string {
	lines := strings.Split(diff, "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			continue
		case strings.HasPrefix(line, "@@"):
			lines[i] = hunkStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addedStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removedStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}
