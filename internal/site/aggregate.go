package site

import (
	"fmt"
	"sort"
	"strings"

	"flyover/internal"
)

// Entry is one shown line of an aggregation view.
type Entry struct {
	Label string
	Text  string
}

// Group is one keyed section of an aggregation view. Entries keep the
// processing order of the canonical record set; only the group keys get a
// total order.
type Group struct {
	Key     string
	Entries []Entry
}

// GroupCases groups every case by key and keeps the entries whose review
// text is non-empty after trimming. Every case lands in exactly one group
// per axis; a group may end up with zero entries, which renders as a single
// NULL placeholder line.
func GroupCases(cases []internal.PublishedCase, key, label, review func(internal.PublishedCase) string) []Group {
	byKey := map[string][]Entry{}
	order := []string{}
	for _, c := range cases {
		k := key(c)
		if _, seen := byKey[k]; !seen {
			order = append(order, k)
		}
		entries := byKey[k]
		if text := strings.TrimSpace(review(c)); text != "" {
			entries = append(entries, Entry{Label: label(c), Text: text})
		}
		byKey[k] = entries
	}

	sort.Strings(order)
	out := make([]Group, 0, len(order))
	for _, k := range order {
		out = append(out, Group{Key: k, Entries: byKey[k]})
	}
	return out
}

// RenderGroups renders one aggregation page. Section counts reflect shown
// entries, not group membership.
func RenderGroups(heading, intro string, groups []Group) string {
	lines := []string{"# " + heading, "", intro, ""}
	for _, g := range groups {
		lines = append(lines, fmt.Sprintf("## %s（%d）", g.Key, len(g.Entries)), "")
		if len(g.Entries) == 0 {
			lines = append(lines, "- NULL")
		} else {
			for _, e := range g.Entries {
				lines = append(lines, fmt.Sprintf("- **%s**：%s", e.Label, e.Text))
			}
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// AdviceEntries collects the ungrouped advice digest: one entry per case
// with non-empty advice, sorted by case title.
func AdviceEntries(cases []internal.PublishedCase) []Entry {
	sorted := append([]internal.PublishedCase(nil), cases...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Title < sorted[j].Title })

	out := []Entry{}
	for _, c := range sorted {
		if text := strings.TrimSpace(c.Advice); text != "" {
			out = append(out, Entry{Label: c.Title, Text: text})
		}
	}
	return out
}

// RenderExperience renders the advice digest page.
func RenderExperience(entries []Entry) string {
	lines := []string{
		"# 查看经验",
		"",
		"本页汇总所有已收录案例的 **给学弟学妹的建议**。",
		"",
	}
	if len(entries) == 0 {
		lines = append(lines, "- NULL")
	} else {
		for _, e := range entries {
			lines = append(lines, fmt.Sprintf("- **%s**：%s", e.Label, e.Text))
		}
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}
