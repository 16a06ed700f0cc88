package engine

import (
	"fmt"
	"strings"
	"sync"
)

type Role string

const (
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

type ChatMessage struct {
	Role Role
	Text string
}

// Chat is the scripted coaching assistant. The transcript is append-only and
// session-scoped; every reply is also sent to the speech collaborator.
type Chat struct {
	profile *Profile
	speaker Speaker

	mu         sync.Mutex
	transcript []ChatMessage
}

func NewChat(profile *Profile, speaker Speaker) *Chat {
	return &Chat{profile: profile, speaker: speaker}
}

// Send appends the user message and the assistant reply to the transcript,
// requests spoken output of the reply, and returns it. It never fails:
// unmatched input falls through to a generic acknowledgment.
func (c *Chat) Send(input string) string {
	reply := c.reply(input)

	c.mu.Lock()
	c.transcript = append(c.transcript,
		ChatMessage{Role: RoleUser, Text: input},
		ChatMessage{Role: RoleAssistant, Text: reply},
	)
	c.mu.Unlock()

	pitch, rate := c.profile.VoiceTone.PitchRate()
	c.speaker.Speak(reply, c.profile.LanguageTag, pitch, rate)
	return reply
}

func (c *Chat) Transcript() []ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]ChatMessage, len(c.transcript))
	copy(out, c.transcript)
	return out
}

// Keyword routing is ordered; the first matching rule wins.
func (c *Chat) reply(input string) string {
	lower := strings.ToLower(input)

	switch {
	case strings.Contains(lower, "bmi"), strings.Contains(lower, "imc"):
		rep := ComputeBMI(c.profile.WeightKg, c.profile.HeightCm)
		if rep == nil {
			return "I need your weight and height first. Update your profile and ask me again."
		}
		return fmt.Sprintf("Your BMI is %.1f, which reads as %s. Keep your missions up and we adjust from there.", rep.Value, strings.ToLower(string(rep.Category)))
	case strings.Contains(lower, "weight"), strings.Contains(lower, "lose"):
		return "A small daily calorie deficit plus steady walking beats crash plans. Log a walk mission today."
	case strings.Contains(lower, "muscle"):
		return "Eat a modest surplus with enough protein and push your sets close to failure. Recovery counts as training."
	case strings.Contains(lower, "routine"):
		return "Try this: 5-minute warm-up, 3 rounds of squats, push-ups and planks, then stretch. Three times a week."
	default:
		return "Copy that. Tell me about your weight, muscle or routine goals and I will point you at a mission."
	}
}
