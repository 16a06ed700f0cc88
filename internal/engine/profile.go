package engine

import (
	"context"
	"strings"

	"drillcoach/internal/storage"
)

type Goal string

const (
	GoalReduce Goal = "reduce"
	GoalMuscle Goal = "muscle"
	GoalBody   Goal = "body"
)

func (g Goal) IsValid() bool {
	switch g {
	case GoalReduce, GoalMuscle, GoalBody:
		return true
	default:
		return false
	}
}

// DefaultGoal is used when user input is missing/invalid.
const DefaultGoal Goal = GoalBody

// ParseGoal parses user input to a Goal.
func ParseGoal(input string) Goal {
	g := Goal(strings.TrimSpace(strings.ToLower(input)))
	if g.IsValid() {
		return g
	}
	return DefaultGoal
}

type Intensity string

const (
	IntensityModerate Intensity = "moderate"
	IntensityFirm     Intensity = "firm"
	IntensityHard     Intensity = "hard"
)

func (i Intensity) IsValid() bool {
	switch i {
	case IntensityModerate, IntensityFirm, IntensityHard:
		return true
	default:
		return false
	}
}

func ParseIntensity(input string) Intensity {
	i := Intensity(strings.TrimSpace(strings.ToLower(input)))
	if i.IsValid() {
		return i
	}
	return IntensityModerate
}

type VoiceTone string

const (
	VoiceSoft     VoiceTone = "soft"
	VoiceFirm     VoiceTone = "firm"
	VoiceMilitary VoiceTone = "military"
)

func (t VoiceTone) IsValid() bool {
	switch t {
	case VoiceSoft, VoiceFirm, VoiceMilitary:
		return true
	default:
		return false
	}
}

func ParseVoiceTone(input string) VoiceTone {
	t := VoiceTone(strings.TrimSpace(strings.ToLower(input)))
	if t.IsValid() {
		return t
	}
	return VoiceSoft
}

// PitchRate maps the tone to fixed speech parameters.
func (t VoiceTone) PitchRate() (pitch, rate float64) {
	switch t {
	case VoiceFirm:
		return 0.95, 1.05
	case VoiceMilitary:
		return 0.8, 1.15
	default:
		return 1.1, 0.95
	}
}

// Profile holds the registration form state. Numeric fields stay free-form
// strings; parsing is deferred and lenient.
type Profile struct {
	FirstName   string
	LastName    string
	Country     string
	BirthYear   string
	WeightKg    string
	HeightCm    string
	Goal        Goal
	Intensity   Intensity
	VoiceTone   VoiceTone
	LanguageTag string
}

const (
	keyProfileFirstName = "profile.firstName"
	keyProfileLastName  = "profile.lastName"
	keyProfileCountry   = "profile.country"
	keyProfileBirthYear = "profile.birthYear"
	keyProfileWeightKg  = "profile.weightKg"
	keyProfileHeightCm  = "profile.heightCm"
	keyProfileGoal      = "profile.goal"
	keyProfileIntensity = "profile.intensity"
	keyProfileVoiceTone = "profile.voiceTone"
	keyProfileLanguage  = "profile.languageTag"
)

// NewProfile returns the all-blank defaults a fresh install starts with.
func NewProfile() *Profile {
	return &Profile{
		Goal:        DefaultGoal,
		Intensity:   IntensityModerate,
		VoiceTone:   VoiceSoft,
		LanguageTag: "en-US",
	}
}

// LoadProfile reads the persisted profile. Missing keys keep their defaults;
// a profile load never fails on bad data.
func LoadProfile(ctx context.Context, kv *storage.KV) (*Profile, error) {
	p := NewProfile()

	fields := []struct {
		key string
		dst *string
	}{
		{keyProfileFirstName, &p.FirstName},
		{keyProfileLastName, &p.LastName},
		{keyProfileCountry, &p.Country},
		{keyProfileBirthYear, &p.BirthYear},
		{keyProfileWeightKg, &p.WeightKg},
		{keyProfileHeightCm, &p.HeightCm},
	}
	for _, f := range fields {
		v, ok, err := kv.GetString(ctx, f.key)
		if err != nil {
			return nil, err
		}
		if ok {
			*f.dst = v
		}
	}

	if v, ok, err := kv.GetString(ctx, keyProfileGoal); err != nil {
		return nil, err
	} else if ok {
		p.Goal = ParseGoal(v)
	}
	if v, ok, err := kv.GetString(ctx, keyProfileIntensity); err != nil {
		return nil, err
	} else if ok {
		p.Intensity = ParseIntensity(v)
	}
	if v, ok, err := kv.GetString(ctx, keyProfileVoiceTone); err != nil {
		return nil, err
	} else if ok {
		p.VoiceTone = ParseVoiceTone(v)
	}
	if v, ok, err := kv.GetString(ctx, keyProfileLanguage); err != nil {
		return nil, err
	} else if ok && v != "" {
		p.LanguageTag = v
	}

	return p, nil
}

// Save writes every profile field under its own key.
func (p *Profile) Save(ctx context.Context, kv *storage.KV) error {
	sets := []struct {
		key   string
		value string
	}{
		{keyProfileFirstName, p.FirstName},
		{keyProfileLastName, p.LastName},
		{keyProfileCountry, p.Country},
		{keyProfileBirthYear, p.BirthYear},
		{keyProfileWeightKg, p.WeightKg},
		{keyProfileHeightCm, p.HeightCm},
		{keyProfileGoal, string(p.Goal)},
		{keyProfileIntensity, string(p.Intensity)},
		{keyProfileVoiceTone, string(p.VoiceTone)},
		{keyProfileLanguage, p.LanguageTag},
	}
	for _, s := range sets {
		if err := kv.SetString(ctx, s.key, s.value); err != nil {
			return err
		}
	}
	return nil
}
