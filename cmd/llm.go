package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/astiages123/auditpath/internal/llm"
	"github.com/astiages123/auditpath/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM configuration and usage",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE:  runLLMList,
}

var llmUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show token usage grouped by purpose",
	RunE:  runLLMUsage,
}

var llmDoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check which LLM provider is configured",
	RunE:  runLLMDoctor,
}

func init() {
	llmListCmd.Flags().Int("limit", 20, "Maximum number of requests to show")
	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmUsageCmd)
	llmCmd.AddCommand(llmDoctorCmd)
}

func openStoreForLLM(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolving database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return st, nil
}

func runLLMList(cmd *cobra.Command, args []string) error {
	st, err := openStoreForLLM(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	events, err := st.ListLLMRequests(context.Background(), limit)
	if err != nil {
		return fmt.Errorf("listing requests: %w", err)
	}
	if len(events) == 0 {
		fmt.Println("No LLM requests recorded yet.")
		return nil
	}

	for _, e := range events {
		status := "ok"
		if !e.Success {
			status = "FAILED"
		}
		fmt.Printf("#%-5d %s  %-10s %-22s %-18s in:%-6d out:%-6d %5dms  %s\n",
			e.Sequence,
			e.Timestamp.Format(time.DateTime),
			e.Provider, e.Model, e.Purpose,
			e.InputTokens, e.OutputTokens, e.LatencyMs, status)
		if e.ErrorMessage != "" {
			fmt.Printf("       %s\n", e.ErrorMessage)
		}
	}
	return nil
}

func runLLMUsage(cmd *cobra.Command, args []string) error {
	st, err := openStoreForLLM(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	rows, err := st.LLMUsageByPurpose(context.Background())
	if err != nil {
		return fmt.Errorf("aggregating usage: %w", err)
	}
	if len(rows) == 0 {
		fmt.Println("No LLM requests recorded yet.")
		return nil
	}

	fmt.Printf("%-20s %8s %12s %12s %10s\n", "PURPOSE", "CALLS", "IN TOKENS", "OUT TOKENS", "AVG MS")
	for _, r := range rows {
		fmt.Printf("%-20s %8d %12d %12d %10d\n",
			r.Purpose, r.Calls, r.InputTokens, r.OutputTokens, r.AvgLatencyMs)
	}
	return nil
}

func runLLMDoctor(cmd *cobra.Command, args []string) error {
	cfg, ok := llm.DiscoverConfig()
	if !ok {
		fmt.Println("No LLM provider configured.")
		fmt.Println("Set one of: AUDITPATH_GEMINI_API_KEY, AUDITPATH_OPENAI_API_KEY, AUDITPATH_ANTHROPIC_API_KEY")
		return nil
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Provider %q selected but invalid: %v\n", cfg.Provider, err)
		return nil
	}

	model := ""
	switch cfg.Provider {
	case "anthropic":
		model = cfg.Anthropic.Model
	case "openai":
		model = cfg.OpenAI.Model
	case "gemini":
		model = cfg.Gemini.Model
	}

	fmt.Printf("Provider: %s\n", cfg.Provider)
	if model != "" {
		fmt.Printf("Model:    %s\n", model)
	}
	fmt.Printf("Timeout:  %s\n", cfg.Timeout)
	fmt.Println("Ready. Follow-up and question generation are available.")
	return nil
}
