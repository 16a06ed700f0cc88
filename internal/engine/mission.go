package engine

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// Mission is a user-tracked to-do item. Completing it awards a fixed XP bonus
// once; missions are never deleted.
type Mission struct {
	ID    int64
	Title string
	Done  bool
}

var missionSeq atomic.Int64

// NewMissionID generates a unique, roughly time-ordered id. The counter salt
// keeps ids distinct when several missions are created within the same
// millisecond.
func NewMissionID() int64 {
	return time.Now().UnixMilli()*1000 + missionSeq.Add(1)%1000
}

// Missions serialize as semicolon-separated `id|title|done` records. Titles
// are sanitized on the way in (see SanitizeTitle), so the delimiters can
// never appear inside a record.
const (
	missionRecordSep = ";"
	missionFieldSep  = "|"
)

// SanitizeTitle trims the title and substitutes the serialization delimiters
// so a stored list can always be decoded.
func SanitizeTitle(title string) string {
	t := strings.TrimSpace(title)
	t = strings.ReplaceAll(t, missionFieldSep, "/")
	t = strings.ReplaceAll(t, missionRecordSep, "/")
	return t
}

func EncodeMissions(missions []Mission) string {
	records := make([]string, 0, len(missions))
	for _, m := range missions {
		records = append(records, strings.Join([]string{
			strconv.FormatInt(m.ID, 10),
			m.Title,
			strconv.FormatBool(m.Done),
		}, missionFieldSep))
	}
	return strings.Join(records, missionRecordSep)
}

// DecodeMissions tolerates a missing, empty, or damaged stored value: records
// that do not parse are dropped, and garbage input yields an empty list.
func DecodeMissions(raw string) []Mission {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var out []Mission
	for _, rec := range strings.Split(raw, missionRecordSep) {
		parts := strings.Split(rec, missionFieldSep)
		if len(parts) != 3 {
			continue
		}
		id, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			continue
		}
		done, err := strconv.ParseBool(parts[2])
		if err != nil {
			continue
		}
		out = append(out, Mission{ID: id, Title: parts[1], Done: done})
	}
	return out
}
