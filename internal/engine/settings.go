package engine

import (
	"context"

	"drillcoach/internal/storage"
)

const (
	keyVoiceVolume = "voiceVolume"
	keySfxVolume   = "sfxVolume"

	// DefaultVolume applies when a volume was never set.
	DefaultVolume = 0.8
)

// Volumes are the audio preferences from the settings panel, each in [0,1].
type Volumes struct {
	Voice float64
	Sfx   float64
}

func LoadVolumes(ctx context.Context, kv *storage.KV) (Volumes, error) {
	v := Volumes{Voice: DefaultVolume, Sfx: DefaultVolume}

	if f, ok, err := kv.GetFloat(ctx, keyVoiceVolume); err != nil {
		return v, err
	} else if ok {
		v.Voice = clamp01(f)
	}
	if f, ok, err := kv.GetFloat(ctx, keySfxVolume); err != nil {
		return v, err
	} else if ok {
		v.Sfx = clamp01(f)
	}
	return v, nil
}

func SaveVoiceVolume(ctx context.Context, kv *storage.KV, v float64) error {
	return kv.SetFloat(ctx, keyVoiceVolume, clamp01(v))
}

func SaveSfxVolume(ctx context.Context, kv *storage.KV, v float64) error {
	return kv.SetFloat(ctx, keySfxVolume, clamp01(v))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
