package pipeline

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"flyover/internal"
	"flyover/internal/util"
)

const tokenHexLen = 10

// token derives the short content hash shared by filenames and slugs:
// sha1 over the delimiter-joined stable fields plus one disambiguator,
// truncated to a fixed width. Pure; identical inputs always collide.
func token(stable []string, disambiguator string) string {
	base := strings.Join(append(append([]string{}, stable...), disambiguator), "|")
	sum := sha1.Sum([]byte(base))
	return hex.EncodeToString(sum[:])[:tokenHexLen]
}

// stableFields is the identity-bearing subset of a record: the required
// fields only. Nickname is free text the contributor may change and the
// timestamp may be absent, so neither participates.
func stableFields(sub internal.Submission) []string {
	return []string{
		sub.ExamYear,
		sub.Track.String(),
		sub.GaokaoScore,
		sub.GaokaoRank,
		sub.University,
		sub.Major,
	}
}

// SourceFilename names the persisted record file for row seq. The sequence
// position disambiguates genuinely duplicated rows; the sanitized timestamp
// keeps the name readable. ts is the record's submit time, or the fallback
// chosen by the importer when the survey omitted one.
func SourceFilename(sub internal.Submission, seq int, ts string) string {
	safe := util.SanitizeToken(ts)
	h := token(append([]string{safe}, stableFields(sub)...), fmt.Sprintf("%d", seq))
	return fmt.Sprintf("submission-%s-%04d-%s.md", safe, seq, h)
}

// Slug names the published page for a record. The disambiguator is the
// persisted source filename, so the slug survives in-place edits of the
// source file and is untouched by nickname changes.
func Slug(sub internal.Submission, sourceName string) string {
	return "case-" + token(stableFields(sub), sourceName)
}
