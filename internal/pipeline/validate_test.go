package pipeline

import (
	"errors"
	"strings"
	"testing"

	"flyover/internal"
)

func TestValidateTrack(t *testing.T) {
	ok := []internal.Track{
		{Kind: internal.TrackPhysics},
		{Kind: internal.TrackHistory},
		{Kind: internal.TrackUnspecified},
	}
	for _, tr := range ok {
		if err := Validate(internal.Submission{Track: tr}); err != nil {
			t.Fatalf("track %+v: %v", tr, err)
		}
	}

	err := Validate(internal.Submission{Track: internal.Track{Kind: internal.TrackOther, Raw: "艺术类"}})
	if err == nil {
		t.Fatal("expected error")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("type %T", err)
	}
	if vErr.Value != "艺术类" || !strings.Contains(err.Error(), "艺术类") {
		t.Fatalf("%v", err)
	}
}
