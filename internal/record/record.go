// Package record reads and writes the canonical submission files: one
// markdown document per record, a fixed-order front-matter block of string
// values, and an empty body reserved for future content.
package record

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"flyover/internal"
	"flyover/internal/pipeline"
)

// Keys is the persisted front-matter key order. Required keys are always
// written, even when empty, so a reader can rely on their presence.
var Keys = []pipeline.Field{
	pipeline.FieldNickname,
	pipeline.FieldExamYear,
	pipeline.FieldTrack,
	pipeline.FieldSZMock1Rank,
	pipeline.FieldSZMock2Rank,
	pipeline.FieldGaokaoScore,
	pipeline.FieldGaokaoRank,
	pipeline.FieldUniversity,
	pipeline.FieldMajor,
	pipeline.FieldUniversityReview,
	pipeline.FieldMajorReview,
	pipeline.FieldAdvice,
}

// Encode renders a Submission as its persisted document. Values are always
// double-quoted so free text cannot break the front matter.
func Encode(sub internal.Submission) ([]byte, error) {
	values := fieldValues(sub)

	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range Keys {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: string(k)},
			&yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: values[k]},
		)
	}

	body, err := yaml.Marshal(root)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	buf.WriteString("---\n")
	buf.Write(body)
	buf.WriteString("---\n")
	return buf.Bytes(), nil
}

func fieldValues(sub internal.Submission) map[pipeline.Field]string {
	return map[pipeline.Field]string{
		pipeline.FieldNickname:         sub.Nickname,
		pipeline.FieldExamYear:         sub.ExamYear,
		pipeline.FieldTrack:            sub.Track.String(),
		pipeline.FieldSZMock1Rank:      sub.SZMock1Rank,
		pipeline.FieldSZMock2Rank:      sub.SZMock2Rank,
		pipeline.FieldGaokaoScore:      sub.GaokaoScore,
		pipeline.FieldGaokaoRank:       sub.GaokaoRank,
		pipeline.FieldUniversity:       sub.University,
		pipeline.FieldMajor:            sub.Major,
		pipeline.FieldUniversityReview: sub.UniversityReview,
		pipeline.FieldMajorReview:      sub.MajorReview,
		pipeline.FieldAdvice:           sub.Advice,
	}
}

// Decode parses a persisted document back into a Submission. Source files
// may be hand-edited, so scalar types are coerced leniently; a document
// without front matter decodes as all-empty rather than failing.
func Decode(doc []byte) (internal.Submission, error) {
	fm, _ := SplitFrontMatter(doc)
	if fm == nil {
		return internal.Submission{Track: internal.Track{Kind: internal.TrackUnspecified}}, nil
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(fm, &raw); err != nil {
		return internal.Submission{}, fmt.Errorf("front matter: %w", err)
	}

	get := func(f pipeline.Field) string { return scalarString(raw[string(f)]) }
	return internal.Submission{
		Nickname:         get(pipeline.FieldNickname),
		ExamYear:         get(pipeline.FieldExamYear),
		Track:            pipeline.ParseTrack(get(pipeline.FieldTrack)),
		SZMock1Rank:      get(pipeline.FieldSZMock1Rank),
		SZMock2Rank:      get(pipeline.FieldSZMock2Rank),
		GaokaoScore:      get(pipeline.FieldGaokaoScore),
		GaokaoRank:       get(pipeline.FieldGaokaoRank),
		University:       get(pipeline.FieldUniversity),
		Major:            get(pipeline.FieldMajor),
		UniversityReview: get(pipeline.FieldUniversityReview),
		MajorReview:      get(pipeline.FieldMajorReview),
		Advice:           get(pipeline.FieldAdvice),
	}, nil
}

// SplitFrontMatter separates the leading front-matter block from the body.
// fm is nil when the document has no block at all.
func SplitFrontMatter(doc []byte) (fm, body []byte) {
	const fence = "---\n"
	text := strings.ReplaceAll(string(doc), "\r\n", "\n")
	if !strings.HasPrefix(text, fence) {
		return nil, doc
	}
	rest := text[len(fence):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return nil, doc
	}
	fm = []byte(rest[:end+1])
	tail := rest[end+1:]
	if i := strings.Index(tail, "\n"); i >= 0 {
		tail = tail[i+1:]
	} else {
		tail = ""
	}
	return fm, []byte(tail)
}

func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}
