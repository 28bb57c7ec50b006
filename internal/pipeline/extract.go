package pipeline

import (
	"flyover/internal"
)

// CellAt normalizes the cell of the given logical field, or returns the
// empty string when the field is unmapped or the row is short. Required
// field presence is enforced once at schema resolution, never per row.
func CellAt(row []internal.Cell, cm ColumnMap, f Field) string {
	idx, ok := cm[f]
	if !ok || idx >= len(row) {
		return ""
	}
	return NormalizeCell(row[idx])
}

// Extract turns one data row into the canonical Submission.
func Extract(row []internal.Cell, cm ColumnMap) internal.Submission {
	return internal.Submission{
		Nickname:         CellAt(row, cm, FieldNickname),
		ExamYear:         CellAt(row, cm, FieldExamYear),
		Track:            NormalizeTrack(CellAt(row, cm, FieldTrack)),
		SZMock1Rank:      CellAt(row, cm, FieldSZMock1Rank),
		SZMock2Rank:      CellAt(row, cm, FieldSZMock2Rank),
		GaokaoScore:      CellAt(row, cm, FieldGaokaoScore),
		GaokaoRank:       CellAt(row, cm, FieldGaokaoRank),
		University:       CellAt(row, cm, FieldUniversity),
		Major:            CellAt(row, cm, FieldMajor),
		UniversityReview: CellAt(row, cm, FieldUniversityReview),
		MajorReview:      CellAt(row, cm, FieldMajorReview),
		Advice:           CellAt(row, cm, FieldAdvice),
		SubmitTime:       CellAt(row, cm, FieldSubmitTime),
	}
}

// RowEmpty reports whether every cell of the row normalizes to empty.
// Survey exports carry trailing blank rows; those are skipped, not emitted.
func RowEmpty(row []internal.Cell) bool {
	for _, c := range row {
		if NormalizeCell(c) != "" {
			return false
		}
	}
	return true
}
