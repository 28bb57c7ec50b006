package record

import (
	"strings"
	"testing"

	"flyover/internal"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	sub := internal.Submission{
		Nickname:         "Alan",
		ExamYear:         "2023",
		Track:            internal.Track{Kind: internal.TrackPhysics},
		GaokaoScore:      "639",
		GaokaoRank:       "1200",
		University:       "北京航空航天大学",
		Major:            "通信工程",
		UniversityReview: `评价里有 "引号" 和 \反斜杠`,
	}

	doc, err := Encode(sub)
	if err != nil {
		t.Fatal(err)
	}
	text := string(doc)
	if !strings.HasPrefix(text, "---\n") || !strings.HasSuffix(text, "---\n") {
		t.Fatalf("fences: %q", text)
	}
	// Required keys stay present even when empty.
	for _, key := range []string{"sz_mock1_rank:", "advice:", "track:"} {
		if !strings.Contains(text, key) {
			t.Fatalf("missing key %s in %q", key, text)
		}
	}

	got, err := Decode(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got.Nickname != sub.Nickname || got.UniversityReview != sub.UniversityReview {
		t.Fatalf("%+v", got)
	}
	if got.Track.Kind != internal.TrackPhysics {
		t.Fatalf("track %+v", got.Track)
	}
}

func TestEncodeKeyOrderStable(t *testing.T) {
	doc, err := Encode(internal.Submission{Track: internal.Track{Kind: internal.TrackUnspecified}})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(doc)), "\n")
	// fence + 12 keys + fence
	if len(lines) != len(Keys)+2 {
		t.Fatalf("lines=%d: %q", len(lines), doc)
	}
	for i, k := range Keys {
		if !strings.HasPrefix(lines[i+1], string(k)+":") {
			t.Fatalf("line %d = %q want key %s", i+1, lines[i+1], k)
		}
	}
}

func TestDecodeHandEditedScalars(t *testing.T) {
	// Hand-edited files may drop the quoting; numbers must still coerce.
	doc := "---\nnickname: Alan\nexam_year: 2023\ntrack: \"历史\"\ngaokao_score: 612.0\n---\n"
	sub, err := Decode([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if sub.ExamYear != "2023" || sub.GaokaoScore != "612" {
		t.Fatalf("%+v", sub)
	}
	if sub.Track.Kind != internal.TrackHistory {
		t.Fatalf("track %+v", sub.Track)
	}
}

func TestDecodeNoFrontMatter(t *testing.T) {
	sub, err := Decode([]byte("# just a heading\n"))
	if err != nil {
		t.Fatal(err)
	}
	if sub.Track.Kind != internal.TrackUnspecified || sub.Nickname != "" {
		t.Fatalf("%+v", sub)
	}
}

func TestDecodeBrokenFrontMatter(t *testing.T) {
	if _, err := Decode([]byte("---\n: [broken\n---\n")); err == nil {
		t.Fatal("expected error")
	}
}

func TestSplitFrontMatter(t *testing.T) {
	fm, body := SplitFrontMatter([]byte("---\ntitle: \"X\"\n---\nbody here\n"))
	if string(fm) != "title: \"X\"\n" {
		t.Fatalf("fm=%q", fm)
	}
	if string(body) != "body here\n" {
		t.Fatalf("body=%q", body)
	}
}
