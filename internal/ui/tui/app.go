package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/draw/internal/domain"
)

type screen int

const (
	screenScripts screen = iota
	screenFrames
)

const frameListWidth = 32

type scriptItem struct {
	ref domain.ScriptRef
	rel string
}

func (i scriptItem) Title() string       { return i.ref.Name }
func (i scriptItem) Description() string { return i.rel }
func (i scriptItem) FilterValue() string { return i.ref.Name }

type frameItem struct {
	snap domain.Snapshot
}

func (i frameItem) Title() string       { return frameTitle(i.snap) }
func (i frameItem) Description() string { return frameDescription(i.snap) }
func (i frameItem) FilterValue() string { return i.snap.Command }

type model struct {
	theme Theme
	deps  Deps

	scr     screen
	scripts list.Model
	frames  list.Model

	cwd            string
	workspaceFound bool
	workspaceRoot  string

	rendering bool
	current   domain.ScriptRef
	snapshots []domain.Snapshot
	report    domain.RenderReport
	renderErr error

	toast         string
	width, height int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	scripts := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	scripts.Title = "Scripts"
	scripts.SetShowStatusBar(false)
	scripts.SetFilteringEnabled(true)
	scripts.SetShowHelp(false)

	frames := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	frames.Title = "Snapshots"
	frames.SetShowStatusBar(false)
	frames.SetFilteringEnabled(false)
	frames.SetShowHelp(false)

	m := model{
		theme:   DefaultTheme(),
		deps:    deps,
		scr:     screenScripts,
		scripts: scripts,
		frames:  frames,
	}

	if deps.WorkspaceRoot != "" {
		m.workspaceFound = true
		m.workspaceRoot = deps.WorkspaceRoot
	}
	if deps.Script != nil {
		m.scr = screenFrames
		m.rendering = true
		m.current = *deps.Script
	}
	return m
}

func (m model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.deps.WorkspaceRoot != "" {
		cmds = append(cmds, cmdLoadScripts(m.deps.WorkspaceRoot))
	} else {
		cmds = append(cmds, cmdRefreshWorkspace(m.deps))
	}
	if m.deps.Script != nil {
		_, cmd := startRenderAsync(m.deps.WorkspaceRoot, *m.deps.Script, m.deps.Logger)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.scripts.SetSize(msg.Width-4, msg.Height-10)
		m.frames.SetSize(frameListWidth, msg.Height-12)
		return m, nil

	case workspaceRefreshedMsg:
		m.cwd = msg.cwd
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		if !msg.found {
			return m, nil
		}
		return m, cmdLoadScripts(msg.root)

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace created at " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case scriptsLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			rel, err := filepath.Rel(msg.root, r.Path)
			if err != nil {
				rel = r.Path
			}
			items = append(items, scriptItem{ref: r, rel: rel})
		}
		return m, m.scripts.SetItems(items)

	case renderDoneMsg:
		return m.applyRender(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.scr == screenScripts && m.scripts.FilterState() == list.Filtering {
			break
		}
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenScripts:
		m.scripts, cmd = m.scripts.Update(msg)
	case screenFrames:
		m.frames, cmd = m.frames.Update(msg)
	}
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch m.scr {
	case screenScripts:
		switch msg.String() {
		case "q":
			return m, tea.Quit, true
		case "enter":
			it, ok := m.scripts.SelectedItem().(scriptItem)
			if !ok {
				return m, nil, true
			}
			next, cmd := m.startRender(it.ref)
			return next, cmd, true
		case "i":
			if m.workspaceFound || m.cwd == "" {
				return m, nil, true
			}
			return m, cmdInitWorkspaceHere(m.deps, m.cwd), true
		case "r":
			return m, cmdRefreshWorkspace(m.deps), true
		}

	case screenFrames:
		switch msg.String() {
		case "q", "esc", "b":
			if !m.workspaceFound && msg.String() == "q" {
				return m, tea.Quit, true
			}
			m.scr = screenScripts
			m.toast = ""
			return m, nil, true
		case "r":
			if m.rendering || m.current.Path == "" {
				return m, nil, true
			}
			next, cmd := m.startRender(m.current)
			return next, cmd, true
		case "home", "g":
			m.frames.Select(0)
			return m, nil, true
		case "end", "G":
			if len(m.snapshots) > 0 {
				m.frames.Select(len(m.snapshots) - 1)
			}
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m model) startRender(ref domain.ScriptRef) (model, tea.Cmd) {
	m.scr = screenFrames
	m.rendering = true
	m.current = ref
	m.snapshots = nil
	m.renderErr = nil
	m.toast = ""
	_, cmd := startRenderAsync(m.workspaceRoot, ref, m.deps.Logger)
	return m, cmd
}

func (m model) applyRender(msg renderDoneMsg) (tea.Model, tea.Cmd) {
	m.rendering = false
	m.scr = screenFrames
	m.current = msg.script
	m.snapshots = msg.snapshots
	m.report = msg.report
	m.renderErr = msg.err

	items := make([]list.Item, 0, len(msg.snapshots))
	for _, s := range msg.snapshots {
		items = append(items, frameItem{snap: s})
	}
	cmd := m.frames.SetItems(items)
	if len(items) > 0 {
		m.frames.Select(len(items) - 1)
	}

	if msg.err != nil {
		m.toast = userMessage(msg.err)
	} else {
		m.toast = fmt.Sprintf("Rendered %d snapshot(s)", len(msg.snapshots))
	}
	return m, cmd
}

func (m model) selectedSnapshot() (domain.Snapshot, bool) {
	it, ok := m.frames.SelectedItem().(frameItem)
	if !ok {
		return domain.Snapshot{}, false
	}
	return it.snap, true
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("draw") + "\n" +
		m.theme.Subtitle.Render("ASCII canvas viewer: step through the snapshot of every command") + "\n"

	var banner string
	switch {
	case m.workspaceFound:
		banner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	case m.scr == screenScripts:
		banner = m.theme.Card.Render("⚠ No workspace found.\n\nPress i to create one here.")
	}

	var body, help string
	switch m.scr {
	case screenScripts:
		body = m.theme.Card.Render(m.scripts.View())
		help = "↑/↓ navigate • enter render • / search • r refresh • q quit"

	case screenFrames:
		body = m.framesView()
		help = "↑/↓ step • g/G first/last • r re-render • esc back • q quit"
	}

	out := header + "\n" + banner + "\n\n" + body + "\n"
	if m.toast != "" {
		style := m.theme.OK
		if m.renderErr != nil {
			style = m.theme.Error
		}
		out += style.Render(m.toast) + "\n"
	}
	return wrap.Render(out + m.theme.Help.Render(help))
}

func (m model) framesView() string {
	if m.rendering {
		return m.theme.Card.Render(fmt.Sprintf("Rendering %s…", m.current.Name))
	}

	summary := m.theme.Subtitle.Render(renderReportSummary(m.report, m.renderErr))

	snap, ok := m.selectedSnapshot()
	if !ok {
		return m.theme.Card.Render("No snapshots: the first command failed.\n\n" + summary)
	}

	maxCols, maxRows := 0, 0
	if m.width > 0 {
		maxCols = m.width - frameListWidth - 16
		maxRows = m.height - 14
	}
	canvas := m.theme.Canvas.Render(clampLines(snap.Text, maxCols, maxRows))

	right := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render(frameTitle(snap)),
		canvas,
		summary,
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, m.frames.View(), "  ", right)
}
