package game

// Tone is a short programmatic sound-effect cue.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneError   Tone = "error"
	ToneAck     Tone = "ack"
	ToneTimeout Tone = "timeout"
)

// Tones is the external playback collaborator. Play is fire-and-forget,
// fire-once; volume is 0..1.
type Tones interface {
	Play(tone Tone, volume float64)
}
