package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/astiages123/auditpath/internal/llm"
	"github.com/astiages123/auditpath/internal/quizgen"
	"github.com/astiages123/auditpath/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate [chunk-id]",
	Short: "Generate questions for imported chunks",
	Long:  "Runs the question generation pipeline. Without arguments every chunk that is not yet completed is processed in reading order; pass a chunk id to regenerate a single chunk. With --refresh-concept, one fresh archive question is generated for that concept instead.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().String("refresh-concept", "", "Generate one fresh archive question for this concept (requires a chunk id)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
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
		return err
	}

	pipeline := quizgen.New(provider, st.Questions(), st.Chunks(), quizgen.DefaultConfig(), log)

	if concept, _ := cmd.Flags().GetString("refresh-concept"); concept != "" {
		if len(args) != 1 {
			return fmt.Errorf("--refresh-concept requires a chunk id")
		}
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid chunk id %q: %w", args[0], err)
		}
		qid, err := pipeline.GenerateArchiveRefresh(ctx, id, concept)
		if err != nil {
			return fmt.Errorf("refreshing concept %q: %w", concept, err)
		}
		fmt.Printf("Added archive question %s for %q\n", qid, concept)
		return nil
	}

	var targets []uuid.UUID
	if len(args) == 1 {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid chunk id %q: %w", args[0], err)
		}
		targets = append(targets, id)
	} else {
		infos, err := st.Chunks().ListByCourse(ctx, resolveCourseID(cmd))
		if err != nil {
			return fmt.Errorf("listing chunks: %w", err)
		}
		for _, info := range infos {
			rec, err := st.Chunks().GetWithContent(ctx, info.ID)
			if err != nil {
				return fmt.Errorf("loading chunk %s: %w", info.ID, err)
			}
			if rec.Status != quizgen.StatusCompleted {
				targets = append(targets, info.ID)
			}
		}
	}

	if len(targets) == 0 {
		fmt.Println("Nothing to generate. All chunks are completed.")
		return nil
	}

	var failed int
	for i, id := range targets {
		rec, err := st.Chunks().GetWithContent(ctx, id)
		if err != nil {
			return fmt.Errorf("loading chunk %s: %w", id, err)
		}
		fmt.Printf("[%d/%d] %s\n", i+1, len(targets), rec.Title)

		// A chunk stuck in processing means an earlier run crashed;
		// reset it so generation can resume.
		if err := pipeline.Recover(ctx, id); err != nil {
			return fmt.Errorf("recovering chunk %s: %w", id, err)
		}

		summary, err := pipeline.GenerateChunk(ctx, id, quizgen.AllCategories, func(p quizgen.Progress) {
			src := "new"
			if p.FromCache {
				src = "cached"
			}
			fmt.Printf("  %d/%d  %s (%s, %s)\n", p.Saved, p.Target, p.Concept, p.Category, src)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "  chunk failed: %v\n", err)
			failed++
			continue
		}

		fmt.Printf("  saved %d questions (%d from cache)\n", summary.Saved, summary.Cached)
		for _, f := range summary.Failures {
			fmt.Printf("  skipped %s (%s): %s\n", f.Concept, f.Category, f.Reason)
		}
		if !summary.ChunkDone {
			fmt.Println("  chunk is below quota; rerun generate to retry the skipped concepts")
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d chunks failed", failed, len(targets))
	}
	return nil
}
