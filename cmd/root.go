package cmd

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/astiages123/auditpath/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "auditpath",
	Short: "AI study companion for certification exams",
	Long:  "AuditPath is a terminal app that turns your course notes into a spaced-review question bank for certification exam prep.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides AUDITPATH_DB env var)")
	rootCmd.PersistentFlags().String("course", "default", "Course name; separate courses keep separate progress")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then AUDITPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// localUserID derives the single-profile user id. There is no account
// table; the id is deterministic so every command lands on the same
// rows.
func localUserID() uuid.UUID {
	name := os.Getenv("AUDITPATH_USER")
	if name == "" {
		name = "local"
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("auditpath://user/"+name))
}

// resolveCourseID derives the course id from the --course flag the same
// way.
func resolveCourseID(cmd *cobra.Command) uuid.UUID {
	name, _ := cmd.Flags().GetString("course")
	if name == "" {
		name = "default"
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("auditpath://course/"+name))
}

// newLogger writes structured logs next to the database so they never
// interleave with TUI output. Falls back to a no-op logger.
func newLogger(dbPath string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	logPath := filepath.Join(filepath.Dir(dbPath), "auditpath.log")
	cfg.OutputPaths = []string{logPath}
	cfg.ErrorOutputPaths = []string{logPath}

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
