package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/astiages123/auditpath/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase your study progress",
	Long:  "Deletes mastery scores, question statuses, session state, and answer history. Imported chunks and generated questions are kept.",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		fmt.Print("This erases all study progress (questions are kept). Type 'reset' to confirm: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) != "reset" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolving database path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer st.Close()

	if err := st.ResetUserData(ctx, localUserID()); err != nil {
		return fmt.Errorf("resetting progress: %w", err)
	}

	fmt.Println("Progress erased. Your chunks and questions are untouched.")
	return nil
}
