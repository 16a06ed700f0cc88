package engine

// Speaker is the external speech-output collaborator. Speak is
// fire-and-forget; Stop cancels any in-flight speech.
type Speaker interface {
	Speak(text, languageTag string, pitch, rate float64)
	Stop()
}
