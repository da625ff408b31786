// Package session runs one study session as a state machine: a pure
// reducer over a tagged action type, with all store and generation
// side effects kept in the Runner. The UI dispatches actions and renders
// whatever State says; it never mutates State directly.
package session

import "github.com/astiages123/auditpath/internal/queue"

// Phase is the session lifecycle position.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseInitializing
	PhaseReady
	PhasePlaying
	PhaseIntermission
	PhaseFinished
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInitializing:
		return "initializing"
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseIntermission:
		return "intermission"
	case PhaseFinished:
		return "finished"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// BatchSize is the number of questions between intermissions.
const BatchSize = 10

// State is the full session snapshot. Values only; Reduce returns a new
// State and never mutates its input's slices in place.
type State struct {
	Phase Phase

	// SessionID identifies this run for caching and telemetry.
	SessionID string

	// SessionNumber is the server-side daily counter value.
	SessionNumber int

	// NewSession is true when this run incremented the daily counter.
	NewSession bool

	// Resumed is true when the queue was restored from a cached
	// snapshot rather than rebuilt.
	Resumed bool

	// Queue is the flat review queue. Scaffolding injections splice
	// into it after the cursor.
	Queue []queue.Item

	// Cursor indexes the current question in Queue.
	Cursor int

	// BatchEnd is the exclusive end index of the current batch.
	// Injections grow it so a remedial question stays in the batch
	// that produced it.
	BatchEnd int

	// Optimistic running totals, updated before persistence resolves.
	Answered int
	Correct  int
	Fast     int

	// ErrMsg is set when Phase is PhaseError.
	ErrMsg string
}

// Current returns the item under the cursor.
func (s State) Current() (queue.Item, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Queue) {
		return queue.Item{}, false
	}
	return s.Queue[s.Cursor], true
}

// Remaining returns how many queue items are at or after the cursor.
func (s State) Remaining() int {
	if s.Cursor >= len(s.Queue) {
		return 0
	}
	return len(s.Queue) - s.Cursor
}

// Action is the closed set of session events. Reduce switches on the
// concrete type.
type Action interface{ isAction() }

// Initialize begins loading a session. Valid from idle, error, and
// finished; re-initializing after an error is the retry path.
type Initialize struct{}

// Initialized carries the loaded session into ready.
type Initialized struct {
	SessionID     string
	SessionNumber int
	NewSession    bool
	Resumed       bool
	Queue         []queue.Item
	Cursor        int
}

// BeginPlay starts the first (or resumed) batch.
type BeginPlay struct{}

// AnswerSubmitted applies the optimistic totals for one answer.
type AnswerSubmitted struct {
	Correct bool
	Fast    bool
}

// NextQuestion advances the cursor, crossing into intermission at batch
// boundaries and into finished past the end of the queue.
type NextQuestion struct{}

// ResumePlay leaves an intermission and opens the next batch.
type ResumePlay struct{}

// InjectScaffolding splices a remedial item in right after the cursor.
type InjectScaffolding struct {
	Item queue.Item
}

// Fail moves any non-terminal phase to error.
type Fail struct {
	Message string
}

func (Initialize) isAction()        {}
func (Initialized) isAction()       {}
func (BeginPlay) isAction()         {}
func (AnswerSubmitted) isAction()   {}
func (NextQuestion) isAction()      {}
func (ResumePlay) isAction()        {}
func (InjectScaffolding) isAction() {}
func (Fail) isAction()              {}

// Reduce computes the next state. Pure: no clock, no store, no
// randomness. Actions that are invalid for the current phase are
// ignored and the state passes through unchanged.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case Initialize:
		if s.Phase != PhaseIdle && s.Phase != PhaseError && s.Phase != PhaseFinished {
			return s
		}
		return State{Phase: PhaseInitializing}

	case Initialized:
		if s.Phase != PhaseInitializing {
			return s
		}
		next := State{
			Phase:         PhaseReady,
			SessionID:     act.SessionID,
			SessionNumber: act.SessionNumber,
			NewSession:    act.NewSession,
			Resumed:       act.Resumed,
			Queue:         act.Queue,
			Cursor:        act.Cursor,
		}
		next.BatchEnd = batchEnd(act.Cursor, len(act.Queue))
		if len(act.Queue) == 0 || act.Cursor >= len(act.Queue) {
			next.Phase = PhaseFinished
		}
		return next

	case BeginPlay:
		if s.Phase != PhaseReady {
			return s
		}
		s.Phase = PhasePlaying
		return s

	case AnswerSubmitted:
		if s.Phase != PhasePlaying {
			return s
		}
		s.Answered++
		if act.Correct {
			s.Correct++
		}
		if act.Fast {
			s.Fast++
		}
		return s

	case NextQuestion:
		if s.Phase != PhasePlaying {
			return s
		}
		s.Cursor++
		switch {
		case s.Cursor >= len(s.Queue):
			s.Phase = PhaseFinished
		case s.Cursor >= s.BatchEnd:
			s.Phase = PhaseIntermission
		}
		return s

	case ResumePlay:
		if s.Phase != PhaseIntermission {
			return s
		}
		s.Phase = PhasePlaying
		s.BatchEnd = s.Cursor + BatchSize
		if s.BatchEnd > len(s.Queue) {
			s.BatchEnd = len(s.Queue)
		}
		return s

	case InjectScaffolding:
		if s.Phase != PhasePlaying {
			return s
		}
		at := s.Cursor + 1
		spliced := make([]queue.Item, 0, len(s.Queue)+1)
		spliced = append(spliced, s.Queue[:at]...)
		spliced = append(spliced, act.Item)
		spliced = append(spliced, s.Queue[at:]...)
		s.Queue = spliced
		s.BatchEnd++
		return s

	case Fail:
		if s.Phase == PhaseFinished {
			return s
		}
		s.Phase = PhaseError
		s.ErrMsg = act.Message
		return s
	}

	return s
}

// batchEnd returns the exclusive end of the batch containing cursor.
func batchEnd(cursor, queueLen int) int {
	end := (cursor/BatchSize + 1) * BatchSize
	if end > queueLen {
		end = queueLen
	}
	return end
}
