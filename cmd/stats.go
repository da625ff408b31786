package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/astiages123/auditpath/internal/shelf"
	"github.com/astiages123/auditpath/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mastery and answer statistics for the course",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
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

	userID := localUserID()
	courseID := resolveCourseID(cmd)

	rows, err := st.MasteryOverview(ctx, userID, courseID)
	if err != nil {
		return fmt.Errorf("loading mastery overview: %w", err)
	}
	if len(rows) == 0 {
		fmt.Println("No chunks imported yet. Run: auditpath import <files>")
		return nil
	}

	fmt.Println("Chunk mastery")
	fmt.Println(strings.Repeat("-", 72))
	for _, r := range rows {
		title := r.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		last := "-"
		if r.LastReviewedSession > 0 {
			last = fmt.Sprintf("s%d", r.LastReviewedSession)
		}
		fmt.Printf("%3d  %-40s  %3d/100  %3dq  last %s\n",
			r.Position+1, title, r.MasteryScore, r.QuestionCount, last)
	}

	statuses, err := st.CountStatuses(ctx, userID, courseID)
	if err != nil {
		return fmt.Errorf("counting question statuses: %w", err)
	}
	fmt.Println()
	fmt.Printf("Questions: %d active, %d archived, %d follow-ups pending\n",
		statuses[string(shelf.StatusActive)],
		statuses[string(shelf.StatusArchived)],
		statuses[string(shelf.StatusPendingFollowup)])

	totals, err := st.AnswerHistory(ctx, userID, courseID)
	if err != nil {
		return fmt.Errorf("loading answer history: %w", err)
	}
	if totals.Answered > 0 {
		fmt.Printf("Answers:   %d total, %d correct (%d%%), %d within time\n",
			totals.Answered, totals.Correct, totals.Correct*100/totals.Answered, totals.Fast)
	} else {
		fmt.Println("Answers:   none yet")
	}

	return nil
}
