package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/astiages123/auditpath/internal/router"
)

func TestAccuracy(t *testing.T) {
	s := New(Input{Answered: 8, Correct: 6})
	if got := s.Accuracy(); got != 75 {
		t.Errorf("expected accuracy 75, got %d", got)
	}
}

func TestAccuracyZeroAnswered(t *testing.T) {
	s := New(Input{})
	if got := s.Accuracy(); got != 0 {
		t.Errorf("expected accuracy 0 for empty session, got %d", got)
	}
}

func TestViewShowsTotals(t *testing.T) {
	s := New(Input{SessionNumber: 3, Answered: 10, Correct: 7, Fast: 4})
	v := s.View(80, 24)

	for _, want := range []string{"Session 3 complete", "10", "7", "4"} {
		if !strings.Contains(v, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestViewEmptyQueue(t *testing.T) {
	s := New(Input{SessionNumber: 1})
	v := s.View(80, 24)

	if !strings.Contains(v, "Nothing due for review today.") {
		t.Error("expected empty-queue message")
	}
}

func TestViewMarksResumed(t *testing.T) {
	s := New(Input{SessionNumber: 2, Resumed: true, Answered: 1, Correct: 1})
	v := s.View(80, 24)

	if !strings.Contains(v, "(resumed)") {
		t.Error("expected resumed marker in title")
	}
}

func TestAnyKeyPops(t *testing.T) {
	s := New(Input{Answered: 1})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from key press")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
