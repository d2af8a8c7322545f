// Package app is the root Bubble Tea model: it owns the navigator, the
// shared user state, and snapshot persistence, and builds a fresh screen
// for every view transition.
package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cognitrain/internal/assessment"
	"github.com/abhisek/cognitrain/internal/game"
	"github.com/abhisek/cognitrain/internal/narrator"
	"github.com/abhisek/cognitrain/internal/router"
	"github.com/abhisek/cognitrain/internal/screen"
	assessscr "github.com/abhisek/cognitrain/internal/screens/assessment"
	"github.com/abhisek/cognitrain/internal/screens/dashboard"
	"github.com/abhisek/cognitrain/internal/screens/flow"
	"github.com/abhisek/cognitrain/internal/screens/gameplay"
	"github.com/abhisek/cognitrain/internal/screens/gameselect"
	"github.com/abhisek/cognitrain/internal/screens/landing"
	"github.com/abhisek/cognitrain/internal/screens/loading"
	"github.com/abhisek/cognitrain/internal/screens/results"
	"github.com/abhisek/cognitrain/internal/stats"
	"github.com/abhisek/cognitrain/internal/store"
	"github.com/abhisek/cognitrain/internal/timedphase"
	"github.com/abhisek/cognitrain/internal/ui/layout"
	"github.com/abhisek/cognitrain/internal/ui/theme"
	"github.com/abhisek/cognitrain/internal/view"
)

const (
	snapshotKeep   = 20
	narrateTimeout = 45 * time.Second
	persistTimeout = 5 * time.Second
	startupTimeout = 5 * time.Second
)

// Options carries the app's injected dependencies. Narrator may be nil
// when no LLM provider is configured; the results screen then shows the
// static fallback.
type Options struct {
	SnapshotRepo store.SnapshotRepo
	EventRepo    store.EventRepo
	Narrator     *narrator.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts Options

	nav    *router.Navigator
	active screen.Screen
	state  *userState

	rng *rand.Rand
	clk timedphase.Clock

	// orch holds the most recent completed assessment until its
	// narrative arrives.
	orch *assessment.Orchestrator

	selectedGame game.Type

	width  int
	height int
}

func newAppModel(opts Options) *AppModel {
	m := &AppModel{
		opts:  opts,
		state: newUserState(),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		clk:   timedphase.SystemClock{},
	}
	m.nav = router.New(view.Loading, m.fallbackView)
	m.active = loading.New()
	return m
}

// fallbackView decides where an empty-history Back lands.
func (m *AppModel) fallbackView() view.View {
	if m.state.hasProfile() {
		return view.Dashboard
	}
	return view.Landing
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(m.loadState(), m.active.Init())
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			return m, m.toggleTheme()
		}

	case stateLoadedMsg:
		return m, m.handleStateLoaded(msg)

	case router.NavigateMsg:
		m.nav.Navigate(msg.View)
		return m, m.setView(msg.View)

	case router.BackMsg:
		return m, m.setView(m.nav.Back())

	case router.ResetMsg:
		m.nav.Reset(msg.View)
		return m, m.setView(msg.View)

	case flow.ProfileCreatedMsg:
		m.state.Name = msg.Name
		m.nav.Reset(view.Assessment)
		return m, tea.Batch(m.saveSnapshot(), m.setView(view.Assessment))

	case flow.AssessmentCompletedMsg:
		return m, m.handleAssessmentCompleted(msg)

	case flow.NarrativeReadyMsg:
		return m, m.handleNarrativeReady(msg)

	case flow.GameChosenMsg:
		m.selectedGame = msg.Type
		m.nav.Navigate(view.Game)
		return m, m.setView(view.Game)

	case flow.GameFinishedMsg:
		m.state.Stats = stats.Update(m.state.Stats, msg.Result.CompletedAt)
		return m, m.saveSnapshot()

	case snapshotSavedMsg:
		if msg.err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save snapshot: %v\n", msg.err)
		}
		return m, nil
	}

	return m, m.forward(msg)
}

func (m *AppModel) handleStateLoaded(msg stateLoadedMsg) tea.Cmd {
	if msg.err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load saved state: %v\n", msg.err)
	}
	if msg.state != nil {
		m.state = msg.state
	}
	theme.Apply(m.state.darkTheme())

	initial := view.Landing
	if m.state.hasProfile() {
		initial = view.Dashboard
	}
	m.nav.Reset(initial)
	return m.setView(initial)
}

func (m *AppModel) handleAssessmentCompleted(msg flow.AssessmentCompletedMsg) tea.Cmd {
	m.orch = msg.Orch
	scores := msg.Orch.Scores()
	m.state.Assessment = &scores

	m.nav.Reset(view.Results)
	return tea.Batch(
		m.saveSnapshot(),
		m.narrateCmd(msg.Orch),
		m.setView(view.Results),
	)
}

func (m *AppModel) handleNarrativeReady(msg flow.NarrativeReadyMsg) tea.Cmd {
	var cmds []tea.Cmd
	if msg.Err == nil && m.orch != nil && m.orch.SessionID == msg.SessionID {
		if m.orch.MergeNarrative(msg.Text) {
			scores := m.orch.Scores()
			m.state.Assessment = &scores
			cmds = append(cmds, m.saveSnapshot())
		}
	}
	cmds = append(cmds, m.forward(msg))
	return tea.Batch(cmds...)
}

// forward passes a message to the active screen.
func (m *AppModel) forward(msg tea.Msg) tea.Cmd {
	if m.active == nil {
		return nil
	}
	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)
	return cmd
}

// setView builds a fresh screen for the view and runs its Init.
func (m *AppModel) setView(v view.View) tea.Cmd {
	m.active = m.buildScreen(v)
	return m.active.Init()
}

func (m *AppModel) buildScreen(v view.View) screen.Screen {
	switch v {
	case view.Landing:
		return landing.New()
	case view.Assessment:
		return assessscr.New(m.rng, m.clk, m.opts.EventRepo)
	case view.Results:
		var scores assessment.ScoreSet
		if m.state.Assessment != nil {
			scores = *m.state.Assessment
		}
		pending := m.opts.Narrator != nil && scores.Narrative == ""
		return results.New(m.state.Name, scores, pending)
	case view.GameSelection:
		return gameselect.New(m.opts.EventRepo)
	case view.Game:
		if m.selectedGame == game.QuickMath {
			return gameplay.NewQuickMath(m.rng, m.clk, m.opts.EventRepo)
		}
		return gameplay.NewMemoryMatch(m.rng, m.clk, m.opts.EventRepo)
	case view.Dashboard:
		return dashboard.New(m.state.Name, m.state.Assessment, m.state.Stats)
	default:
		return loading.New()
	}
}

func (m *AppModel) loadState() tea.Cmd {
	repo := m.opts.SnapshotRepo
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
		defer cancel()
		snap, err := repo.Latest(ctx)
		if err != nil {
			return stateLoadedMsg{state: newUserState(), err: err}
		}
		return stateLoadedMsg{state: stateFromSnapshot(snap)}
	}
}

// saveSnapshot persists the current state asynchronously and prunes old
// snapshots.
func (m *AppModel) saveSnapshot() tea.Cmd {
	repo := m.opts.SnapshotRepo
	data := m.state.snapshotData()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		err := repo.Save(ctx, &store.Snapshot{
			Timestamp: time.Now(),
			Data:      data,
		})
		if err == nil {
			err = repo.Prune(ctx, snapshotKeep)
		}
		return snapshotSavedMsg{err: err}
	}
}

func (m *AppModel) narrateCmd(orch *assessment.Orchestrator) tea.Cmd {
	svc := m.opts.Narrator
	sessionID := orch.SessionID
	if svc == nil {
		return func() tea.Msg {
			return flow.NarrativeReadyMsg{SessionID: sessionID, Err: errors.New("narrator unavailable")}
		}
	}
	scores := orch.Scores()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), narrateTimeout)
		defer cancel()
		text, err := svc.Narrate(ctx, scores)
		return flow.NarrativeReadyMsg{SessionID: sessionID, Text: text, Err: err}
	}
}

func (m *AppModel) toggleTheme() tea.Cmd {
	dark := !m.state.darkTheme()
	theme.Apply(dark)
	if dark {
		m.state.Settings["theme"] = "dark"
	} else {
		m.state.Settings["theme"] = "light"
	}
	return m.saveSnapshot()
}

func (m *AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	title := ""
	if m.active != nil {
		title = m.active.Title()
	}
	header := layout.RenderHeader(title, m.state.Stats.GamesPlayed, m.state.Stats.CurrentStreak, m.width)

	hints := []layout.KeyHint{
		{Key: "Ctrl+T", Description: "Theme"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := m.active.(screen.KeyHintProvider); ok {
		if custom := hp.KeyHints(); len(custom) > 0 {
			hints = append(custom, layout.KeyHint{Key: "Ctrl+T", Description: "Theme"})
		}
	}
	footer := layout.RenderFooter(hints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := ""
	if m.active != nil {
		content = m.active.View(m.width, contentHeight)
	}
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
