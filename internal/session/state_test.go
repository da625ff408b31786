package session

import (
	"testing"

	"github.com/google/uuid"

	"github.com/astiages123/auditpath/internal/queue"
)

func testQueue(n int) []queue.Item {
	items := make([]queue.Item, n)
	for i := range items {
		items[i] = queue.Item{QuestionID: uuid.New()}
	}
	return items
}

func readyState(n int) State {
	s := Reduce(State{}, Initialize{})
	s = Reduce(s, Initialized{SessionID: "s1", SessionNumber: 3, Queue: testQueue(n)})
	return s
}

func playingState(n int) State {
	return Reduce(readyState(n), BeginPlay{})
}

func TestReduceHappyPath(t *testing.T) {
	s := State{}
	if s.Phase != PhaseIdle {
		t.Fatalf("zero state phase = %v", s.Phase)
	}

	s = Reduce(s, Initialize{})
	if s.Phase != PhaseInitializing {
		t.Fatalf("phase = %v, want initializing", s.Phase)
	}

	s = Reduce(s, Initialized{SessionID: "s1", SessionNumber: 3, Queue: testQueue(25)})
	if s.Phase != PhaseReady {
		t.Fatalf("phase = %v, want ready", s.Phase)
	}
	if s.BatchEnd != BatchSize {
		t.Errorf("batch end = %d, want %d", s.BatchEnd, BatchSize)
	}

	s = Reduce(s, BeginPlay{})
	if s.Phase != PhasePlaying {
		t.Fatalf("phase = %v, want playing", s.Phase)
	}
}

func TestReduceBatchBoundaryIntermission(t *testing.T) {
	s := playingState(25)

	for i := 0; i < BatchSize-1; i++ {
		s = Reduce(s, NextQuestion{})
		if s.Phase != PhasePlaying {
			t.Fatalf("phase = %v at cursor %d, want playing", s.Phase, s.Cursor)
		}
	}

	s = Reduce(s, NextQuestion{})
	if s.Phase != PhaseIntermission {
		t.Fatalf("phase = %v at cursor %d, want intermission", s.Phase, s.Cursor)
	}

	s = Reduce(s, ResumePlay{})
	if s.Phase != PhasePlaying {
		t.Fatalf("phase = %v, want playing after resume", s.Phase)
	}
	if s.BatchEnd != 2*BatchSize {
		t.Errorf("batch end = %d, want %d", s.BatchEnd, 2*BatchSize)
	}
}

func TestReduceFinishedPastQueueEnd(t *testing.T) {
	s := playingState(3)
	for i := 0; i < 2; i++ {
		s = Reduce(s, NextQuestion{})
	}
	if s.Phase != PhasePlaying {
		t.Fatalf("phase = %v before last item, want playing", s.Phase)
	}
	s = Reduce(s, NextQuestion{})
	if s.Phase != PhaseFinished {
		t.Fatalf("phase = %v, want finished", s.Phase)
	}
}

func TestReduceShortFinalBatch(t *testing.T) {
	// 3 items: the only batch ends at the queue end, not at BatchSize.
	s := readyState(3)
	if s.BatchEnd != 3 {
		t.Errorf("batch end = %d, want 3", s.BatchEnd)
	}
}

func TestReduceOptimisticTotals(t *testing.T) {
	s := playingState(5)

	s = Reduce(s, AnswerSubmitted{Correct: true, Fast: true})
	s = Reduce(s, AnswerSubmitted{Correct: true, Fast: false})
	s = Reduce(s, AnswerSubmitted{Correct: false, Fast: false})

	if s.Answered != 3 || s.Correct != 2 || s.Fast != 1 {
		t.Errorf("totals = %d/%d/%d, want 3/2/1", s.Answered, s.Correct, s.Fast)
	}
}

func TestReduceInjectScaffolding(t *testing.T) {
	s := playingState(5)
	s = Reduce(s, NextQuestion{}) // cursor 1

	injected := queue.Item{QuestionID: uuid.New(), Reason: "scaffolding"}
	before := s.BatchEnd
	s = Reduce(s, InjectScaffolding{Item: injected})

	if len(s.Queue) != 6 {
		t.Fatalf("queue length = %d, want 6", len(s.Queue))
	}
	if s.Queue[2].QuestionID != injected.QuestionID {
		t.Errorf("injected item not immediately after cursor")
	}
	if s.BatchEnd != before+1 {
		t.Errorf("batch end = %d, want grown to %d", s.BatchEnd, before+1)
	}

	// The injected item is served next.
	s = Reduce(s, NextQuestion{})
	cur, ok := s.Current()
	if !ok || cur.QuestionID != injected.QuestionID {
		t.Errorf("next item is not the injected one")
	}
}

func TestReduceErrorFromAnyNonTerminal(t *testing.T) {
	phases := []State{
		{Phase: PhaseIdle},
		{Phase: PhaseInitializing},
		{Phase: PhaseReady},
		{Phase: PhasePlaying},
		{Phase: PhaseIntermission},
	}
	for _, s := range phases {
		got := Reduce(s, Fail{Message: "boom"})
		if got.Phase != PhaseError || got.ErrMsg != "boom" {
			t.Errorf("from %v: phase = %v msg = %q", s.Phase, got.Phase, got.ErrMsg)
		}
	}

	// Finished is terminal.
	got := Reduce(State{Phase: PhaseFinished}, Fail{Message: "boom"})
	if got.Phase != PhaseFinished {
		t.Errorf("finished moved to %v on fail", got.Phase)
	}
}

func TestReduceReinitializeAfterError(t *testing.T) {
	s := Reduce(State{Phase: PhaseError, ErrMsg: "boom"}, Initialize{})
	if s.Phase != PhaseInitializing || s.ErrMsg != "" {
		t.Errorf("phase = %v msg = %q, want clean initializing", s.Phase, s.ErrMsg)
	}
}

func TestReduceIgnoresInvalidActions(t *testing.T) {
	s := readyState(5)

	got := Reduce(s, NextQuestion{})
	if got.Cursor != 0 || got.Phase != PhaseReady {
		t.Errorf("next question applied outside playing")
	}

	got = Reduce(s, AnswerSubmitted{Correct: true})
	if got.Answered != 0 {
		t.Errorf("answer applied outside playing")
	}

	got = Reduce(s, ResumePlay{})
	if got.Phase != PhaseReady {
		t.Errorf("resume applied outside intermission")
	}
}

func TestReduceEmptyQueueFinishesImmediately(t *testing.T) {
	s := Reduce(State{}, Initialize{})
	s = Reduce(s, Initialized{SessionID: "s1", SessionNumber: 1})
	if s.Phase != PhaseFinished {
		t.Errorf("phase = %v, want finished for empty queue", s.Phase)
	}
}

func TestReduceResumeCursorMidQueue(t *testing.T) {
	s := Reduce(State{}, Initialize{})
	s = Reduce(s, Initialized{SessionID: "s1", SessionNumber: 2, Resumed: true, Queue: testQueue(25), Cursor: 13})
	if s.Phase != PhaseReady {
		t.Fatalf("phase = %v, want ready", s.Phase)
	}
	if s.Cursor != 13 {
		t.Errorf("cursor = %d, want 13", s.Cursor)
	}
	if s.BatchEnd != 20 {
		t.Errorf("batch end = %d, want 20", s.BatchEnd)
	}
}
