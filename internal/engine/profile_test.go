package engine

import (
	"context"
	"testing"
)

func TestProfileRoundTrip(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	p := NewProfile()
	p.FirstName = "Ana"
	p.WeightKg = "70"
	p.HeightCm = "175"
	p.Goal = GoalMuscle
	p.VoiceTone = VoiceMilitary
	p.LanguageTag = "es-CO"
	if err := p.Save(ctx, kv); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := LoadProfile(ctx, kv)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *p {
		t.Fatalf("round trip: got %+v, want %+v", got, p)
	}
}

func TestLoadProfileDefaults(t *testing.T) {
	kv := newTestKV(t)

	p, err := LoadProfile(context.Background(), kv)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if p.FirstName != "" || p.WeightKg != "" {
		t.Fatalf("fresh profile not blank: %+v", p)
	}
	if p.Goal != DefaultGoal || p.Intensity != IntensityModerate || p.VoiceTone != VoiceSoft {
		t.Fatalf("fresh profile enums: %+v", p)
	}
	if p.LanguageTag != "en-US" {
		t.Fatalf("language=%q, want en-US", p.LanguageTag)
	}
}

func TestEnumParsing(t *testing.T) {
	if got := ParseGoal(" Reduce "); got != GoalReduce {
		t.Fatalf("ParseGoal=%q", got)
	}
	if got := ParseGoal("nonsense"); got != GoalBody {
		t.Fatalf("ParseGoal fallback=%q, want body", got)
	}
	if got := ParseIntensity("HARD"); got != IntensityHard {
		t.Fatalf("ParseIntensity=%q", got)
	}
	if got := ParseIntensity(""); got != IntensityModerate {
		t.Fatalf("ParseIntensity fallback=%q", got)
	}
	if got := ParseVoiceTone("military"); got != VoiceMilitary {
		t.Fatalf("ParseVoiceTone=%q", got)
	}
	if got := ParseVoiceTone("loud"); got != VoiceSoft {
		t.Fatalf("ParseVoiceTone fallback=%q", got)
	}
}

func TestVoiceTonePitchRate(t *testing.T) {
	softPitch, _ := VoiceSoft.PitchRate()
	milPitch, milRate := VoiceMilitary.PitchRate()
	if softPitch <= milPitch {
		t.Fatalf("soft pitch %v should be above military %v", softPitch, milPitch)
	}
	if milRate <= 1.0 {
		t.Fatalf("military rate=%v, want brisk", milRate)
	}
}
