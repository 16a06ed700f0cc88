package engine

// SuggestTitles returns the recommendation titles for the goal and
// hour-of-day (0-23), in the order they should appear. Mornings prepend a
// hydration reminder ahead of the goal-based list.
func SuggestTitles(goal Goal, hour int) []string {
	var out []string
	if hour < 12 {
		out = append(out, "drink a glass of water on waking")
	}
	switch goal {
	case GoalReduce:
		out = append(out, "brisk 10-minute walk", "avoid sugar in next meal")
	case GoalMuscle:
		out = append(out, "3 sets of 8-12 push-ups", "post-workout protein shake")
	default:
		out = append(out, "3x30s planks", "farmer's carry 4x40m moderate load")
	}
	return out
}

// SuggestMissions wraps the titles as fresh not-done missions with unique ids.
func SuggestMissions(goal Goal, hour int) []Mission {
	titles := SuggestTitles(goal, hour)
	out := make([]Mission, 0, len(titles))
	for _, t := range titles {
		out = append(out, Mission{ID: NewMissionID(), Title: t})
	}
	return out
}
