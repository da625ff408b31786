package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/astiages123/auditpath/internal/quizgen"
	"github.com/astiages123/auditpath/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import course notes as study chunks",
	Long:  "Reads markdown or plain-text files and stores each section as a chunk. Files are split on second-level headings; a file without headings becomes a single chunk.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
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

	courseID := resolveCourseID(cmd)

	// New chunks continue after whatever is already imported.
	existing, err := st.Chunks().ListByCourse(ctx, courseID)
	if err != nil {
		return fmt.Errorf("listing chunks: %w", err)
	}
	position := len(existing)

	var imported int
	for _, path := range args {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		for _, sec := range splitSections(string(raw), path) {
			words := strings.Fields(sec.content)
			if len(words) == 0 {
				continue
			}

			_, err := st.Chunks().Create(ctx, store.ChunkRecord{
				CourseID:     courseID,
				Title:        sec.title,
				Content:      sec.content,
				Position:     position,
				WordCount:    len(words),
				DensityScore: lexicalDensity(words),
				Status:       quizgen.StatusPending,
			})
			if err != nil {
				return fmt.Errorf("saving chunk %q: %w", sec.title, err)
			}

			fmt.Printf("%3d  %s (%d words)\n", position+1, sec.title, len(words))
			position++
			imported++
		}
	}

	if imported == 0 {
		return fmt.Errorf("no non-empty sections found in the given files")
	}
	fmt.Printf("\nImported %d chunks. Next: auditpath generate\n", imported)
	return nil
}

type section struct {
	title   string
	content string
}

// splitSections cuts a document on "## " headings. The heading becomes
// the chunk title; content before the first heading, or a file with no
// headings at all, is titled after the file.
func splitSections(text, path string) []section {
	fallback := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var out []section
	title := fallback
	var body []string

	flush := func() {
		content := strings.TrimSpace(strings.Join(body, "\n"))
		if content != "" {
			out = append(out, section{title: title, content: content})
		}
		body = body[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if h, ok := strings.CutPrefix(line, "## "); ok {
			flush()
			title = strings.TrimSpace(h)
			if title == "" {
				title = fallback
			}
			continue
		}
		body = append(body, line)
	}
	flush()

	return out
}

// lexicalDensity is a crude proxy for how information-dense a chunk is:
// the ratio of distinct words to total words, case-folded. Repetitive
// filler scores low, terminology-heavy text scores high.
func lexicalDensity(words []string) float64 {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[strings.ToLower(strings.Trim(w, ".,;:!?()\"'"))] = struct{}{}
	}
	return float64(len(seen)) / float64(len(words))
}
