package shelf

import "testing"

func TestTransitionThreeStrikesArchives(t *testing.T) {
	in := TransitionInput{Status: StatusActive, SessionNumber: 10}

	for i := 0; i < 2; i++ {
		out := Transition(TransitionInput{
			Status:        in.Status,
			SuccessStreak: i,
			Correct:       true,
			Fast:          true,
			SessionNumber: 10,
		})
		if out.Status != StatusActive {
			t.Fatalf("streak %d: status = %q, want active", i, out.Status)
		}
		if out.SuccessStreak != i+1 {
			t.Fatalf("streak %d: success streak = %d, want %d", i, out.SuccessStreak, i+1)
		}
	}

	out := Transition(TransitionInput{
		Status:        StatusActive,
		SuccessStreak: 2,
		Correct:       true,
		Fast:          true,
		SessionNumber: 10,
	})
	if out.Status != StatusArchived {
		t.Errorf("third fast correct: status = %q, want archived", out.Status)
	}
	if out.SuccessStreak != 0 {
		t.Errorf("streak should reset on archive, got %d", out.SuccessStreak)
	}
	if !out.Archived {
		t.Error("expected Archived flag on threshold crossing")
	}
}

func TestTransitionCorrectButSlow(t *testing.T) {
	out := Transition(TransitionInput{
		Status:        StatusActive,
		SuccessStreak: 2,
		FailStreak:    1,
		Correct:       true,
		Fast:          false,
		SessionNumber: 5,
	})
	if out.SuccessStreak != 2 {
		t.Errorf("slow correct must not advance streak, got %d", out.SuccessStreak)
	}
	if out.Status != StatusActive {
		t.Errorf("status = %q, want active", out.Status)
	}
	if out.FailStreak != 0 {
		t.Errorf("correct answer should clear fail streak, got %d", out.FailStreak)
	}
}

func TestTransitionIncorrectResets(t *testing.T) {
	tests := []struct {
		name       string
		status     Status
		streak     int
		wantStatus Status
	}{
		{"active with streak", StatusActive, 2, StatusPendingFollowup},
		{"active no streak", StatusActive, 0, StatusPendingFollowup},
		{"already pending", StatusPendingFollowup, 1, StatusPendingFollowup},
		{"archived falls back to active", StatusArchived, 0, StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Transition(TransitionInput{
				Status:        tt.status,
				SuccessStreak: tt.streak,
				FailStreak:    1,
				Correct:       false,
				SessionNumber: 8,
			})
			if out.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", out.Status, tt.wantStatus)
			}
			if out.SuccessStreak != 0 {
				t.Errorf("incorrect must reset streak, got %d", out.SuccessStreak)
			}
			if out.FailStreak != 2 {
				t.Errorf("fail streak = %d, want 2", out.FailStreak)
			}
		})
	}
}

func TestTransitionScheduleOnlyWhenPending(t *testing.T) {
	pending := Transition(TransitionInput{Status: StatusActive, Correct: false, SessionNumber: 8})
	if pending.NextReviewSession == 0 {
		t.Error("pending followup must be scheduled")
	}

	demoted := Transition(TransitionInput{Status: StatusArchived, Correct: false, SessionNumber: 8})
	if demoted.NextReviewSession != 0 {
		t.Errorf("demoted archive item must not be scheduled, got %d", demoted.NextReviewSession)
	}

	archived := Transition(TransitionInput{Status: StatusActive, SuccessStreak: 2, Correct: true, Fast: true, SessionNumber: 8})
	if archived.NextReviewSession != 0 {
		t.Errorf("archived item must not be scheduled, got %d", archived.NextReviewSession)
	}
}

func TestTransitionEmptyStatusDefaultsActive(t *testing.T) {
	out := Transition(TransitionInput{Correct: true, Fast: true, SessionNumber: 1})
	if out.Status != StatusActive {
		t.Errorf("status = %q, want active", out.Status)
	}
	if out.SuccessStreak != 1 {
		t.Errorf("streak = %d, want 1", out.SuccessStreak)
	}
}

func TestTransitionArchivedStaysOnCorrect(t *testing.T) {
	out := Transition(TransitionInput{Status: StatusArchived, Correct: true, Fast: true, SessionNumber: 3})
	if out.Status != StatusArchived {
		t.Errorf("status = %q, want archived", out.Status)
	}
	if out.Archived {
		t.Error("re-touch must not re-report an archive transition")
	}
}

func TestNextReviewSessionGrowth(t *testing.T) {
	tests := []struct {
		session int
		streak  int
		want    int
	}{
		{10, 0, 11},
		{10, 1, 13},
		{10, 2, 17},
		{10, 5, 17}, // clamped to widest interval
		{10, -1, 11},
	}

	for _, tt := range tests {
		got := NextReviewSession(tt.session, tt.streak)
		if got != tt.want {
			t.Errorf("NextReviewSession(%d, %d) = %d, want %d", tt.session, tt.streak, got, tt.want)
		}
	}
}
