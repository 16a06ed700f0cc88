package engine

import (
	"context"
	"sync"

	"drillcoach/internal/storage"
)

const (
	keyMissions = "missions"
	keyXP       = "experiencePoints"
)

// MissionXPBonus is awarded exactly once per not-done -> done transition.
// Toggling back does not subtract: the asymmetry prevents farming XP by
// flipping a mission repeatedly.
const MissionXPBonus = 10

// Store owns the mission list and experience points. All mutations are
// serialized behind one mutex (single-writer discipline) and persisted to the
// key-value collaborator before observers are notified.
type Store struct {
	kv *storage.KV

	mu       sync.Mutex
	missions []Mission
	xp       int

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// NewStore loads persisted state. A missing or damaged missions value falls
// back to an empty list; a missing XP value falls back to zero.
func NewStore(ctx context.Context, kv *storage.KV) (*Store, error) {
	s := &Store{kv: kv, subs: map[int]func(){}}

	raw, _, err := kv.GetString(ctx, keyMissions)
	if err != nil {
		return nil, err
	}
	s.missions = DecodeMissions(raw)

	xp, ok, err := kv.GetInt(ctx, keyXP)
	if err != nil {
		return nil, err
	}
	if ok && xp > 0 {
		s.xp = xp
	}

	return s, nil
}

// Missions returns a copy of the list, newest first.
func (s *Store) Missions() []Mission {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Mission, len(s.missions))
	copy(out, s.missions)
	return out
}

func (s *Store) XP() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.xp
}

func (s *Store) Rank() Rank {
	return RankForXP(s.XP())
}

// Add creates a mission from the title and prepends it. A blank title is a
// no-op and returns nil.
func (s *Store) Add(ctx context.Context, title string) (*Mission, error) {
	t := SanitizeTitle(title)
	if t == "" {
		return nil, nil
	}

	s.mu.Lock()
	m := Mission{ID: NewMissionID(), Title: t}
	s.missions = append([]Mission{m}, s.missions...)
	err := s.persistMissions(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.notify()
	return &m, nil
}

// Toggle flips the mission's done flag. An unknown id is a silent no-op and
// returns nil. The false -> true transition awards MissionXPBonus atomically
// with the flip; true -> false awards nothing.
func (s *Store) Toggle(ctx context.Context, id int64) (*Mission, error) {
	s.mu.Lock()
	var toggled *Mission
	for i := range s.missions {
		if s.missions[i].ID != id {
			continue
		}
		s.missions[i].Done = !s.missions[i].Done
		if s.missions[i].Done {
			s.xp += MissionXPBonus
		}
		m := s.missions[i]
		toggled = &m
		break
	}
	if toggled == nil {
		s.mu.Unlock()
		return nil, nil
	}

	err := s.persistMissions(ctx)
	if err == nil && toggled.Done {
		err = s.kv.SetInt(ctx, keyXP, s.xp)
	}
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.notify()
	return toggled, nil
}

// Recommend prepends the recommender's suggestions for the goal and
// hour-of-day without touching existing missions.
func (s *Store) Recommend(ctx context.Context, goal Goal, hour int) ([]Mission, error) {
	suggested := SuggestMissions(goal, hour)
	if len(suggested) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	s.missions = append(append([]Mission{}, suggested...), s.missions...)
	err := s.persistMissions(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.notify()
	return suggested, nil
}

// Subscribe registers a change callback and returns its unsubscribe func.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// callers hold s.mu
func (s *Store) persistMissions(ctx context.Context) error {
	return s.kv.SetString(ctx, keyMissions, EncodeMissions(s.missions))
}
