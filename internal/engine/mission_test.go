package engine

import "testing"

func TestMissionCodecRoundTrip(t *testing.T) {
	in := []Mission{
		{ID: 3, Title: "3x30s planks", Done: false},
		{ID: 2, Title: "brisk 10-minute walk", Done: true},
		{ID: 1, Title: "post-workout protein shake", Done: false},
	}
	out := DecodeMissions(EncodeMissions(in))
	if len(out) != len(in) {
		t.Fatalf("len=%d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("mission %d: got %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestDecodeMissionsLenient(t *testing.T) {
	if got := DecodeMissions(""); got != nil {
		t.Fatalf("empty input: got %v, want nil", got)
	}
	if got := DecodeMissions("total garbage"); got != nil {
		t.Fatalf("garbage input: got %v, want nil", got)
	}

	// A damaged record is dropped without losing the rest.
	raw := "1|walk|false;oops;2|planks|true;x|y|maybe"
	got := DecodeMissions(raw)
	if len(got) != 2 {
		t.Fatalf("len=%d, want 2 surviving records", len(got))
	}
	if got[0].Title != "walk" || got[1].Title != "planks" || !got[1].Done {
		t.Fatalf("surviving records wrong: %+v", got)
	}
}

func TestSanitizeTitle(t *testing.T) {
	if got := SanitizeTitle("  walk  "); got != "walk" {
		t.Fatalf("trim: got %q", got)
	}
	got := SanitizeTitle("sets|reps; rest")
	if got != "sets/reps/ rest" {
		t.Fatalf("delimiters: got %q", got)
	}
	// Sanitized titles always survive a round-trip.
	ms := []Mission{{ID: 1, Title: got}}
	back := DecodeMissions(EncodeMissions(ms))
	if len(back) != 1 || back[0].Title != got {
		t.Fatalf("round-trip after sanitize: %+v", back)
	}
}

func TestNewMissionIDUnique(t *testing.T) {
	seen := map[int64]bool{}
	for i := 0; i < 500; i++ {
		id := NewMissionID()
		if seen[id] {
			t.Fatalf("duplicate id %d after %d generations", id, i)
		}
		seen[id] = true
	}
}
