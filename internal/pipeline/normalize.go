package pipeline

import (
	"fmt"
	"strings"

	"flyover/internal"
)

// emptyMarkers are the placeholder values the survey tool emits for an
// unanswered question. All of them normalize to the empty string.
var emptyMarkers = map[string]struct{}{
	"":     {},
	"(空)":  {},
	"（空）": {},
	"-":    {},
	"—":    {},
	"无":   {},
	"NULL": {},
	"null": {},
}

// NormalizeString trims the value and collapses the survey tool's
// "unanswered" placeholders to the empty string.
func NormalizeString(v string) string {
	s := strings.TrimSpace(v)
	if _, blank := emptyMarkers[s]; blank {
		return ""
	}
	return s
}

// NormalizeCell maps one raw grid cell to its canonical string form.
// Datetime cells render as YYYY-MM-DD HH:MM:SS; everything else goes
// through NormalizeString. Total: the worst case is the empty string.
func NormalizeCell(c internal.Cell) string {
	switch c.Kind {
	case internal.CellBlank:
		return ""
	case internal.CellTime:
		t := c.Time
		return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
	default:
		return NormalizeString(c.Text)
	}
}

// NormalizeTrack maps a raw track answer onto the closed category set.
// The survey answer carries suffixes ("物理类", "历史类（首选）"), so matching
// is by substring. Unrecognized non-empty answers are preserved for the
// validator instead of being coerced.
func NormalizeTrack(raw string) internal.Track {
	s := NormalizeString(raw)
	switch {
	case s == "":
		return internal.Track{Kind: internal.TrackUnspecified}
	case strings.Contains(s, "物理"):
		return internal.Track{Kind: internal.TrackPhysics}
	case strings.Contains(s, "历史"):
		return internal.Track{Kind: internal.TrackHistory}
	default:
		return internal.Track{Kind: internal.TrackOther, Raw: s}
	}
}

// ParseTrack reads a persisted track value back into the variant. Persisted
// values are already normalized, so matching is exact; anything else is an
// unrecognized value that must fail validation downstream.
func ParseTrack(v string) internal.Track {
	switch s := strings.TrimSpace(v); s {
	case "":
		return internal.Track{Kind: internal.TrackUnspecified}
	case "物理":
		return internal.Track{Kind: internal.TrackPhysics}
	case "历史":
		return internal.Track{Kind: internal.TrackHistory}
	default:
		return internal.Track{Kind: internal.TrackOther, Raw: s}
	}
}
