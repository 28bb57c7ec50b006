package site

import (
	"fmt"
	"sort"
	"strings"

	"flyover/internal"
)

// RenderIndex renders the flat listing of every case, valid and degraded
// alike, sorted by title. Links are relative to the cases directory so the
// published path prefix never leaks into the output.
func RenderIndex(cases []internal.PublishedCase) string {
	sorted := append([]internal.PublishedCase(nil), cases...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Title < sorted[j].Title })

	lines := []string{
		"# 案例总览",
		"",
		fmt.Sprintf("当前收录：**%d** 条。点击标题进入详情页。", len(sorted)),
		"",
	}
	for _, c := range sorted {
		lines = append(lines, fmt.Sprintf("- [%s](%s/)", c.Title, c.Slug))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}
