package engine

import (
	"context"
	"testing"
)

func TestLoadVolumesDefaults(t *testing.T) {
	kv := newTestKV(t)

	v, err := LoadVolumes(context.Background(), kv)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if v.Voice != DefaultVolume || v.Sfx != DefaultVolume {
		t.Fatalf("volumes=%+v, want defaults %v", v, DefaultVolume)
	}
}

func TestSaveVolumesClamped(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	if err := SaveVoiceVolume(ctx, kv, 1.7); err != nil {
		t.Fatalf("save voice: %v", err)
	}
	if err := SaveSfxVolume(ctx, kv, -0.3); err != nil {
		t.Fatalf("save sfx: %v", err)
	}

	v, err := LoadVolumes(ctx, kv)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if v.Voice != 1 {
		t.Fatalf("voice=%v, want clamped to 1", v.Voice)
	}
	if v.Sfx != 0 {
		t.Fatalf("sfx=%v, want clamped to 0", v.Sfx)
	}
}
