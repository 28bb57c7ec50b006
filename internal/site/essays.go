package site

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"flyover/internal/record"
)

// Essay is one long-form contributor post.
type Essay struct {
	Title string
	Link  string
}

// ListEssays scans the seniors directory for posts and resolves each title:
// front-matter override first, then the first top-level heading, then the
// filename stem. A missing directory is fatal; the essay section is part of
// the required site structure.
func ListEssays(dir string) ([]Essay, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("缺少目录：%s（请先创建该目录）", dir)
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	essays := []Essay{}
	for _, p := range paths {
		if strings.EqualFold(filepath.Base(p), "index.md") {
			continue
		}
		doc, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		stem := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		essays = append(essays, Essay{Title: essayTitle(doc, stem), Link: stem + "/"})
	}

	sort.Slice(essays, func(i, j int) bool { return essays[i].Title < essays[j].Title })
	return essays, nil
}

func essayTitle(doc []byte, stem string) string {
	fm, body := record.SplitFrontMatter(doc)
	if fm != nil {
		meta := map[string]any{}
		if err := yaml.Unmarshal(fm, &meta); err == nil {
			if t, ok := meta["title"].(string); ok && strings.TrimSpace(t) != "" {
				return strings.TrimSpace(t)
			}
		}
	}

	if h1 := firstH1(body); h1 != "" {
		return h1
	}
	return stem
}

// firstH1 walks the markdown AST for the first level-1 heading.
func firstH1(body []byte) string {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	title := ""
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || h.Level != 1 {
			return ast.WalkContinue, nil
		}
		title = strings.TrimSpace(string(h.Lines().Value(body)))
		return ast.WalkStop, nil
	})
	return title
}

// RenderEssayIndex renders the seniors landing page.
func RenderEssayIndex(essays []Essay) string {
	lines := []string{
		"# 学长学姐说",
		"",
		"本栏目收录来自学长学姐投稿的**长文分享**。",
		"",
	}

	if len(essays) == 0 {
		lines = append(lines,
			"当前暂无长文投稿。你可以将长文 Markdown 放入 `docs/seniors/` 目录后重新构建。",
			"")
		return strings.Join(lines, "\n")
	}

	lines = append(lines, fmt.Sprintf("当前收录：**%d** 篇。", len(essays)), "")
	for _, e := range essays {
		lines = append(lines, fmt.Sprintf("- [%s](%s)", e.Title, e.Link))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}
