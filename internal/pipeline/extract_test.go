package pipeline

import (
	"testing"

	"flyover/internal"
)

func text(v string) internal.Cell { return internal.Cell{Kind: internal.CellText, Text: v} }

func TestExtractRow(t *testing.T) {
	cm := ColumnMap{
		FieldNickname: 0, FieldExamYear: 1, FieldTrack: 2,
		FieldGaokaoScore: 3, FieldGaokaoRank: 4, FieldUniversity: 5, FieldMajor: 6,
		FieldAdvice: 7,
	}
	row := []internal.Cell{
		text(" Alan "), text("2023"), text("物理类"), text("639"), text("1200"),
		text("北京航空航天大学"), text("通信工程"), text("（空）"),
	}

	sub := Extract(row, cm)
	if sub.Nickname != "Alan" || sub.ExamYear != "2023" {
		t.Fatalf("%+v", sub)
	}
	if sub.Track.Kind != internal.TrackPhysics {
		t.Fatalf("track %+v", sub.Track)
	}
	if sub.Advice != "" {
		t.Fatalf("advice %q", sub.Advice)
	}
	// Unmapped fields resolve to empty, not an error.
	if sub.UniversityReview != "" || sub.SubmitTime != "" {
		t.Fatalf("%+v", sub)
	}
}

func TestExtractShortRow(t *testing.T) {
	cm := ColumnMap{FieldNickname: 0, FieldMajor: 9}
	sub := Extract([]internal.Cell{text("Bea")}, cm)
	if sub.Nickname != "Bea" || sub.Major != "" {
		t.Fatalf("%+v", sub)
	}
}

func TestRowEmpty(t *testing.T) {
	if !RowEmpty([]internal.Cell{text("  "), text("（空）"), {Kind: internal.CellBlank}}) {
		t.Fatal("want empty")
	}
	if RowEmpty([]internal.Cell{text("-"), text("x")}) {
		t.Fatal("want non-empty")
	}
	if !RowEmpty(nil) {
		t.Fatal("nil row is empty")
	}
}
