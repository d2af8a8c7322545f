// Package router tracks which view is displayed and the ordered history
// of views behind it.
package router

import (
	"github.com/abhisek/cognitrain/internal/view"

	tea "charm.land/bubbletea/v2"
)

// NavigateMsg requests a forward transition to a view.
type NavigateMsg struct {
	View view.View
}

// BackMsg requests a transition to the most recent history entry.
type BackMsg struct{}

// ResetMsg requests a jump to a view with the history cleared. Sent when
// a flow completes and its intermediate screens should not be reachable
// via Back.
type ResetMsg struct {
	View view.View
}

// Navigate returns a command that moves the app to the given view.
func Navigate(v view.View) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{View: v} }
}

// Back returns a command that pops the navigation history.
func Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}

// Reset returns a command that jumps to v and clears history.
func Reset(v view.View) tea.Cmd {
	return func() tea.Msg { return ResetMsg{View: v} }
}

// Fallback decides where an empty-history Back lands. The app wires this
// to its loaded state: Dashboard when an assessment result and a user
// name both exist, Landing otherwise.
type Fallback func() view.View

// Navigator holds the current view and the previous views behind it.
// History contains only previous views, never the current one.
type Navigator struct {
	current  view.View
	history  []view.View
	fallback Fallback
}

// New creates a navigator displaying initial.
func New(initial view.View, fallback Fallback) *Navigator {
	return &Navigator{current: initial, fallback: fallback}
}

// Current returns the displayed view.
func (n *Navigator) Current() view.View {
	return n.current
}

// Navigate pushes the current view onto history and switches to v.
func (n *Navigator) Navigate(v view.View) {
	n.history = append(n.history, n.current)
	n.current = v
}

// Back pops the most recent history entry and switches to it. With empty
// history it switches to the fallback view instead.
func (n *Navigator) Back() view.View {
	if len(n.history) == 0 {
		n.current = n.fallback()
		return n.current
	}
	n.current = n.history[len(n.history)-1]
	n.history = n.history[:len(n.history)-1]
	return n.current
}

// Reset clears history and jumps directly to v without recording the
// current view. Used when a flow completes and its intermediate screens
// should not be reachable via Back.
func (n *Navigator) Reset(v view.View) {
	n.history = n.history[:0]
	n.current = v
}

// Depth returns the number of history entries.
func (n *Navigator) Depth() int {
	return len(n.history)
}
