// Package site renders the published documents: per-case detail pages, the
// aggregation views, the advice digest, the essay index and the homepage
// stamp. Everything here is a pure projection of the canonical record set.
package site

import (
	"fmt"
	"strings"

	"flyover/internal"
)

// Display substitutes the NULL sentinel for an empty optional field.
func Display(v string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return "NULL"
}

// DisplayNickname is the nickname-specific sentinel rule.
func DisplayNickname(v string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return "Anonymous"
}

// Title composes the page title: 昵称 | 高考分数 | 录取院校 | 录取专业.
func Title(sub internal.Submission) string {
	return fmt.Sprintf("%s | %s | %s | %s",
		DisplayNickname(sub.Nickname),
		Display(sub.GaokaoScore),
		Display(sub.University),
		Display(sub.Major),
	)
}

// RenderCase renders the detail page of a valid record. sourcePath is the
// canonical file the page was generated from, shown in the footer.
func RenderCase(sub internal.Submission, sourcePath string) string {
	t := Title(sub)

	lines := []string{
		"---",
		fmt.Sprintf("title: %q", t),
		"---",
		"",
		"# " + t,
		"",
		"## 基本信息",
		"",
		"- 昵称：" + DisplayNickname(sub.Nickname),
		"- 考试年份：" + Display(sub.ExamYear),
		"- 选科：" + Display(sub.Track.String()),
		"- 深一模校排（选填）：" + Display(sub.SZMock1Rank),
		"- 深二模校排（选填）：" + Display(sub.SZMock2Rank),
		"- 高考分数：" + Display(sub.GaokaoScore),
		"- 高考排名：" + Display(sub.GaokaoRank),
		"- 录取院校：" + Display(sub.University),
		"- 录取专业：" + Display(sub.Major),
		"",
		"## 院校评价（选填）",
		"",
		Display(sub.UniversityReview),
		"",
		"## 专业评价（选填）",
		"",
		Display(sub.MajorReview),
		"",
		"## 给学弟学妹的建议（选填）",
		"",
		Display(sub.Advice),
		"",
		"> 备注：本案例由校友投稿整理，仅供参考。",
		fmt.Sprintf("> 来源文件：`%s`", sourcePath),
		"",
	}
	return strings.Join(lines, "\n")
}

// RenderDegraded renders the minimal error page of a record that failed
// validation. It keeps the normal title so the record stays discoverable
// in every listing.
func RenderDegraded(sub internal.Submission, reason string) string {
	t := Title(sub)
	return fmt.Sprintf("---\ntitle: %q\n---\n\n# %s\n\n**字段校验失败：** %s\n", t, t, reason)
}
