package router

import (
	"testing"

	"github.com/abhisek/cognitrain/internal/view"
)

func landingFallback() view.View { return view.Landing }

func TestNavigatePushesCurrentToHistory(t *testing.T) {
	n := New(view.Dashboard, landingFallback)

	n.Navigate(view.GameSelection)
	if n.Current() != view.GameSelection {
		t.Errorf("current = %v, want GameSelection", n.Current())
	}
	if n.Depth() != 1 {
		t.Errorf("depth = %d, want 1", n.Depth())
	}

	n.Navigate(view.Game)
	if n.Depth() != 2 {
		t.Errorf("depth = %d, want 2", n.Depth())
	}
}

func TestBackPopsHistory(t *testing.T) {
	n := New(view.Dashboard, landingFallback)
	n.Navigate(view.GameSelection)
	n.Navigate(view.Game)

	if got := n.Back(); got != view.GameSelection {
		t.Errorf("back = %v, want GameSelection", got)
	}
	if got := n.Back(); got != view.Dashboard {
		t.Errorf("back = %v, want Dashboard", got)
	}
	if n.Depth() != 0 {
		t.Errorf("depth = %d, want 0", n.Depth())
	}
}

func TestBackOnEmptyHistoryUsesFallback(t *testing.T) {
	tests := []struct {
		name     string
		fallback Fallback
		want     view.View
	}{
		{"returning user", func() view.View { return view.Dashboard }, view.Dashboard},
		{"fresh user", landingFallback, view.Landing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New(view.Results, tt.fallback)
			if got := n.Back(); got != tt.want {
				t.Errorf("back = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResetClearsHistory(t *testing.T) {
	n := New(view.Landing, landingFallback)
	n.Navigate(view.Assessment)
	n.Navigate(view.Results)

	n.Reset(view.Dashboard)
	if n.Current() != view.Dashboard {
		t.Errorf("current = %v, want Dashboard", n.Current())
	}
	if n.Depth() != 0 {
		t.Errorf("depth = %d, want 0", n.Depth())
	}
	if got := n.Back(); got != view.Landing {
		t.Errorf("back after reset = %v, want fallback Landing", got)
	}
}
