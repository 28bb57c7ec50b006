package pipeline

import (
	"testing"

	"flyover/internal"
)

func TestNormalizeStringSentinels(t *testing.T) {
	sentinels := []string{"", "(空)", "（空）", "-", "—", "无", "NULL", "null"}
	for _, s := range sentinels {
		if got := NormalizeString(s); got != "" {
			t.Fatalf("NormalizeString(%q)=%q want empty", s, got)
		}
	}
}

func TestNormalizeStringTrims(t *testing.T) {
	if got := NormalizeString("  清华大学  "); got != "清华大学" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeStringIdempotent(t *testing.T) {
	inputs := []string{"清华大学", "639", "物理", "2023-06-25 14:03:05", "a - b"}
	for _, in := range inputs {
		once := NormalizeString(in)
		if twice := NormalizeString(once); twice != once {
			t.Fatalf("not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestNormalizeCellDatetime(t *testing.T) {
	c := internal.Cell{
		Kind: internal.CellTime,
		Time: internal.CellClock{Year: 2023, Month: 6, Day: 25, Hour: 14, Minute: 3, Second: 5},
	}
	if got := NormalizeCell(c); got != "2023-06-25 14:03:05" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeCellBlank(t *testing.T) {
	if got := NormalizeCell(internal.Cell{Kind: internal.CellBlank}); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := NormalizeCell(internal.Cell{Kind: internal.CellText, Text: "（空）"}); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeTrack(t *testing.T) {
	cases := []struct {
		in   string
		kind internal.TrackKind
		str  string
	}{
		{"物理类", internal.TrackPhysics, "物理"},
		{"物理", internal.TrackPhysics, "物理"},
		{"历史类（首选历史）", internal.TrackHistory, "历史"},
		{"", internal.TrackUnspecified, ""},
		{"（空）", internal.TrackUnspecified, ""},
		{"艺术类", internal.TrackOther, "艺术类"},
	}
	for _, tc := range cases {
		tr := NormalizeTrack(tc.in)
		if tr.Kind != tc.kind || tr.String() != tc.str {
			t.Fatalf("NormalizeTrack(%q) = %+v want kind=%s str=%q", tc.in, tr, tc.kind, tc.str)
		}
	}
}

func TestParseTrackExact(t *testing.T) {
	// Persisted values match exactly: a raw survey answer that slipped
	// through unnormalized must come back as TrackOther.
	if tr := ParseTrack("物理类"); tr.Kind != internal.TrackOther {
		t.Fatalf("got %+v", tr)
	}
	if tr := ParseTrack("历史"); tr.Kind != internal.TrackHistory {
		t.Fatalf("got %+v", tr)
	}
	if tr := ParseTrack(""); tr.Kind != internal.TrackUnspecified {
		t.Fatalf("got %+v", tr)
	}
}
