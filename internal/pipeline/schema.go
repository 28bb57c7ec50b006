package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Field names one logical column of the submission schema. The names double
// as the front-matter keys of the persisted record files.
type Field string

const (
	FieldNickname         Field = "nickname"
	FieldExamYear         Field = "exam_year"
	FieldTrack            Field = "track"
	FieldSZMock1Rank      Field = "sz_mock1_rank"
	FieldSZMock2Rank      Field = "sz_mock2_rank"
	FieldGaokaoScore      Field = "gaokao_score"
	FieldGaokaoRank       Field = "gaokao_rank"
	FieldUniversity       Field = "university"
	FieldMajor            Field = "major"
	FieldUniversityReview Field = "university_review"
	FieldMajorReview      Field = "major_review"
	FieldAdvice           Field = "advice"
	FieldSubmitTime       Field = "submit_time"
)

// ColumnMap assigns each resolved logical field its column index in the
// source grid. Fields with no matching header are absent.
type ColumnMap map[Field]int

// fieldPatterns drives header resolution. The survey tool renames columns
// between questionnaire revisions, so each field carries an ordered list of
// alternatives: an earlier pattern wins over a later one even when the later
// one matches a header further left.
var fieldPatterns = []struct {
	field    Field
	patterns []*regexp.Regexp
}{
	{FieldNickname, compile(`昵称`)},
	{FieldExamYear, compile(`高考年份`)},
	{FieldTrack, compile(`选科`, `科目`)},
	{FieldSZMock1Rank, compile(`深一模`)},
	{FieldSZMock2Rank, compile(`深二模`)},
	{FieldGaokaoScore, compile(`高考分数`, `高考成绩`)},
	{FieldGaokaoRank, compile(`高考.*排名`, `省排名`, `省.*位次`)},
	{FieldUniversity, compile(`录取院校`, `录取学校`)},
	{FieldMajor, compile(`录取专业`, `就读专业`)},
	{FieldUniversityReview, compile(`院校评价`)},
	{FieldMajorReview, compile(`专业评价`)},
	{FieldAdvice, compile(`学弟学妹`, `建议`)},
	{FieldSubmitTime, compile(`提交.*时间`)},
}

var requiredFields = []Field{
	FieldExamYear,
	FieldTrack,
	FieldGaokaoScore,
	FieldGaokaoRank,
	FieldUniversity,
	FieldMajor,
}

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

// SchemaError reports every required field left unresolved, so one failed
// run is enough to see the whole extent of a questionnaire rename.
type SchemaError struct {
	Missing []Field
}

func (e *SchemaError) Error() string {
	names := make([]string, 0, len(e.Missing))
	for _, f := range e.Missing {
		names = append(names, "- "+string(f))
	}
	return fmt.Sprintf("Excel 表头缺少必要字段（可能是问卷又改名了）：\n%s", strings.Join(names, "\n"))
}

// Resolve maps the normalized header row onto the logical schema. A missing
// optional field is silently absent from the result; any missing required
// field aborts with a SchemaError before a single record is extracted.
func Resolve(headers []string) (ColumnMap, error) {
	folded := make([]string, 0, len(headers))
	for _, h := range headers {
		// NFKC folds full-width punctuation and digits so a header typed
		// in either width still matches.
		folded = append(folded, norm.NFKC.String(h))
	}

	out := ColumnMap{}
	for _, fp := range fieldPatterns {
		if idx := findColumn(folded, fp.patterns); idx >= 0 {
			out[fp.field] = idx
		}
	}

	missing := []Field{}
	for _, f := range requiredFields {
		if _, ok := out[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	return out, nil
}

func findColumn(headers []string, patterns []*regexp.Regexp) int {
	for _, re := range patterns {
		for i, h := range headers {
			if re.MatchString(h) {
				return i
			}
		}
	}
	return -1
}
