package game

import (
	"sync"
	"time"

	"drillcoach/internal/clock"
)

// Question is one timed multiple-choice entry. Exactly four options, one
// correct index.
type Question struct {
	Text    string
	Options [4]string
	Correct int
}

// The bank is fixed and ordered; the question for a level is
// bank[level % len(bank)].
var questionBank = []Question{
	{
		Text:    "How many large muscle groups should a full-body session cover?",
		Options: [4]string{"One", "Two", "All major groups", "Only arms"},
		Correct: 2,
	},
	{
		Text:    "What does BMI compare?",
		Options: [4]string{"Weight and height", "Age and weight", "Height and age", "Reps and sets"},
		Correct: 0,
	},
	{
		Text:    "Which habit helps most with fat loss?",
		Options: [4]string{"Skipping breakfast", "A steady calorie deficit", "Training only weekends", "Avoiding all carbs"},
		Correct: 1,
	},
	{
		Text:    "When is protein intake most useful for muscle growth?",
		Options: [4]string{"Only at night", "Spread through the day", "Once a week", "Never"},
		Correct: 1,
	},
	{
		Text:    "How long should a basic plank hold last for a beginner?",
		Options: [4]string{"2 seconds", "30 seconds", "10 minutes", "An hour"},
		Correct: 1,
	},
	{
		Text:    "What should you do right after waking to start the day well?",
		Options: [4]string{"Drink water", "Eat candy", "Skip stretching", "Check your rank"},
		Correct: 0,
	},
	{
		Text:    "Which is a sign you should lower workout intensity?",
		Options: [4]string{"Feeling energized", "Sharp joint pain", "Light sweat", "Mild fatigue"},
		Correct: 1,
	},
	{
		Text:    "How many rest days per week suit a new lifter?",
		Options: [4]string{"Zero", "Two or three", "Six", "Rest is optional"},
		Correct: 1,
	},
}

// QuizState is a snapshot for rendering and tests.
type QuizState struct {
	Level     int
	Score     int
	Question  Question
	Remaining int
}

// Quiz is the timed multiple-choice state machine. No terminal state: it
// cycles levels indefinitely.
type Quiz struct {
	tones     Tones
	sched     clock.Scheduler
	sfxVolume float64

	mu         sync.Mutex
	level      int
	score      int
	question   Question
	remaining  int
	running    bool
	cancelTick func()
	tickGen    uint64

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

func NewQuiz(tones Tones, sched clock.Scheduler, sfxVolume float64) *Quiz {
	q := &Quiz{
		tones:     tones,
		sched:     sched,
		sfxVolume: sfxVolume,
		subs:      map[int]func(){},
	}
	q.enterLevelLocked(1)
	return q
}

// Start begins the countdown. Starting a running quiz is a no-op.
func (q *Quiz) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.running {
		return
	}
	q.running = true
	q.restartTickLocked()
}

// Stop halts the countdown, leaving level and score as they are.
func (q *Quiz) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.running = false
	if q.cancelTick != nil {
		q.cancelTick()
		q.cancelTick = nil
	}
}

// Answer submits an option index. Correct advances a level and banks 10
// points; incorrect drops one level (floored at 1) and resets the score.
// Either way the question and countdown regenerate for the new level.
func (q *Quiz) Answer(index int) {
	q.mu.Lock()
	if index == q.question.Correct {
		q.tones.Play(ToneSuccess, q.sfxVolume)
		q.score += 10
		q.enterLevelLocked(q.level + 1)
	} else {
		q.tones.Play(ToneError, q.sfxVolume)
		q.score = 0
		next := q.level - 1
		if next < 1 {
			next = 1
		}
		q.enterLevelLocked(next)
	}
	if q.running {
		q.restartTickLocked()
	}
	q.mu.Unlock()

	q.notify()
}

func (q *Quiz) State() QuizState {
	q.mu.Lock()
	defer q.mu.Unlock()
	return QuizState{
		Level:     q.level,
		Score:     q.score,
		Question:  q.question,
		Remaining: q.remaining,
	}
}

// Subscribe registers a change callback and returns its unsubscribe func.
func (q *Quiz) Subscribe(fn func()) (cancel func()) {
	q.subMu.Lock()
	id := q.nextSub
	q.nextSub++
	q.subs[id] = fn
	q.subMu.Unlock()

	return func() {
		q.subMu.Lock()
		delete(q.subs, id)
		q.subMu.Unlock()
	}
}

// TimeForLevel is the countdown budget: 25 seconds minus two per level,
// floored at 10.
func TimeForLevel(level int) int {
	penalty := level * 2
	if penalty > 15 {
		penalty = 15
	}
	return 25 - penalty
}

// QuestionForLevel selects from the fixed bank.
func QuestionForLevel(level int) Question {
	return questionBank[level%len(questionBank)]
}

func (q *Quiz) enterLevelLocked(level int) {
	q.level = level
	q.question = QuestionForLevel(level)
	q.remaining = TimeForLevel(level)
}

// restartTickLocked replaces the pending tick so a stale countdown never
// fires against a new level. Cancellation alone is not enough: a callback
// already dispatched by the scheduler cannot be stopped, so each tick carries
// the generation it was scheduled for and late arrivals are dropped.
func (q *Quiz) restartTickLocked() {
	if q.cancelTick != nil {
		q.cancelTick()
	}
	q.tickGen++
	gen := q.tickGen
	q.cancelTick = q.sched.After(time.Second, func() { q.tick(gen) })
}

func (q *Quiz) tick(gen uint64) {
	q.mu.Lock()
	if !q.running || gen != q.tickGen {
		q.mu.Unlock()
		return
	}

	q.remaining--
	if q.remaining <= 0 {
		q.tones.Play(ToneTimeout, q.sfxVolume)
		q.score = 0
		q.enterLevelLocked(1)
	}
	q.restartTickLocked()
	q.mu.Unlock()

	q.notify()
}

func (q *Quiz) notify() {
	q.subMu.Lock()
	fns := make([]func(), 0, len(q.subs))
	for _, fn := range q.subs {
		fns = append(fns, fn)
	}
	q.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
