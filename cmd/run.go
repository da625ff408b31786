package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/astiages123/auditpath/internal/app"
	"github.com/astiages123/auditpath/internal/llm"
	"github.com/astiages123/auditpath/internal/store"
)

// runApp opens the database, wires the LLM provider if one is
// configured, and hands control to the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := context.Background()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolving database path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer st.Close()

	log := newLogger(dbPath)
	defer log.Sync() //nolint:errcheck

	provider, err := llm.NewProviderFromEnv(ctx, st.Events(), log)
	if err != nil {
		// The app still works without a provider; wrong answers just
		// will not spawn follow-up questions.
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Follow-up generation will be unavailable.")
		provider = nil
	}

	return app.Run(app.Options{
		Store:    st,
		Provider: provider,
		Log:      log,
		UserID:   localUserID(),
		CourseID: resolveCourseID(cmd),
	})
}
