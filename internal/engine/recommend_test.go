package engine

import "testing"

func TestSuggestTitlesMorning(t *testing.T) {
	got := SuggestTitles(GoalReduce, 8)
	want := []string{
		"drink a glass of water on waking",
		"brisk 10-minute walk",
		"avoid sugar in next meal",
	}
	if len(got) != len(want) {
		t.Fatalf("len=%d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("title %d=%q, want %q", i, got[i], want[i])
		}
	}
}

func TestSuggestTitlesEvening(t *testing.T) {
	got := SuggestTitles(GoalReduce, 20)
	if len(got) != 2 {
		t.Fatalf("len=%d, want 2 (no water reminder after noon)", len(got))
	}
	if got[0] != "brisk 10-minute walk" || got[1] != "avoid sugar in next meal" {
		t.Fatalf("titles=%v", got)
	}
}

func TestSuggestTitlesByGoal(t *testing.T) {
	if got := SuggestTitles(GoalMuscle, 15); got[0] != "3 sets of 8-12 push-ups" {
		t.Fatalf("muscle titles=%v", got)
	}
	// body is the default for anything else
	if got := SuggestTitles(GoalBody, 15); got[0] != "3x30s planks" {
		t.Fatalf("body titles=%v", got)
	}
	if got := SuggestTitles(Goal("whatever"), 15); got[0] != "3x30s planks" {
		t.Fatalf("unknown goal titles=%v", got)
	}
}

func TestSuggestMissionsFresh(t *testing.T) {
	ms := SuggestMissions(GoalMuscle, 9)
	if len(ms) != 3 {
		t.Fatalf("len=%d, want 3", len(ms))
	}
	seen := map[int64]bool{}
	for _, m := range ms {
		if m.Done {
			t.Fatalf("mission %q starts done", m.Title)
		}
		if seen[m.ID] {
			t.Fatalf("duplicate id %d", m.ID)
		}
		seen[m.ID] = true
	}
}
