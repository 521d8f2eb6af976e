package model

import "testing"

func TestLevelOrder(t *testing.T) {
	cases := []struct {
		level DifficultyLevel
		want  int
	}{
		{Level1, 1},
		{Level2, 2},
		{Level3, 3},
		{Level4, 4},
		{Level5, 5},
		{DifficultyLevel("LEVEL_9"), 0},
		{DifficultyLevel(""), 0},
	}
	for _, tc := range cases {
		if got := tc.level.Order(); got != tc.want {
			t.Errorf("Order(%q) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestLevelTier(t *testing.T) {
	cases := []struct {
		level DifficultyLevel
		want  Proficiency
	}{
		{Level1, Beginner},
		{Level2, Intermediate},
		{Level3, Advanced},
		{Level4, Expert},
		{Level5, Expert},
	}
	for _, tc := range cases {
		if got := tc.level.Tier(); got != tc.want {
			t.Errorf("Tier(%q) = %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestLevelByOrder(t *testing.T) {
	for i, want := range Levels {
		got, ok := LevelByOrder(i + 1)
		if !ok || got != want {
			t.Errorf("LevelByOrder(%d) = %q, %v, want %q", i+1, got, ok, want)
		}
	}
	if _, ok := LevelByOrder(0); ok {
		t.Error("LevelByOrder(0) should not resolve")
	}
	if _, ok := LevelByOrder(6); ok {
		t.Error("LevelByOrder(6) should not resolve")
	}
}

func TestProficiencyOutranks(t *testing.T) {
	if !Expert.Outranks(Advanced) {
		t.Error("EXPERT should outrank ADVANCED")
	}
	if !Intermediate.Outranks(Beginner) {
		t.Error("INTERMEDIATE should outrank BEGINNER")
	}
	if Beginner.Outranks(Beginner) {
		t.Error("a tier should not outrank itself")
	}
	if Beginner.Outranks(Expert) {
		t.Error("BEGINNER should not outrank EXPERT")
	}
	if !Beginner.Outranks(Proficiency("BOGUS")) {
		t.Error("any known tier should outrank an unknown one")
	}
}

func TestStatusTerminal(t *testing.T) {
	if StatusInProgress.Terminal() {
		t.Error("IN_PROGRESS must not be terminal")
	}
	for _, s := range []AssessmentStatus{StatusPassed, StatusFailed, StatusExpired} {
		if !s.Terminal() {
			t.Errorf("%s must be terminal", s)
		}
	}
}
