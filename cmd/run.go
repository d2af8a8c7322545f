package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/cognitrain/internal/app"
	"github.com/abhisek/cognitrain/internal/llm"
	"github.com/abhisek/cognitrain/internal/narrator"
	"github.com/abhisek/cognitrain/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		SnapshotRepo: st.SnapshotRepo(),
		EventRepo:    eventRepo,
	}

	// The narrator is optional. Without a provider the results screen
	// shows the built-in profile text instead.
	provider, err := buildProvider(cmd.Context(), eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
	} else {
		opts.Narrator = narrator.New(provider, narrator.DefaultConfig())
	}

	return app.Run(opts)
}

// buildProvider constructs the LLM provider from COGNITRAIN_* env vars,
// falling back to probing the well-known provider API key vars.
func buildProvider(ctx context.Context, eventRepo store.EventRepo) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return llm.NewProvider(ctx, cfg, eventRepo)
}
