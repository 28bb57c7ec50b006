package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeEssay(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestListEssaysTitleResolution(t *testing.T) {
	dir := t.TempDir()
	writeEssay(t, dir, "a-with-override.md", "---\ntitle: \"覆盖标题\"\n---\n\n# 正文标题\n")
	writeEssay(t, dir, "b-with-h1.md", "一些前言\n\n# 我的高三这一年\n\n正文\n")
	writeEssay(t, dir, "c-bare.md", "没有任何标题的内容\n")
	writeEssay(t, dir, "index.md", "# 占位索引\n")

	essays, err := ListEssays(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(essays) != 3 {
		t.Fatalf("%+v", essays)
	}

	titles := map[string]bool{}
	for _, e := range essays {
		titles[e.Title] = true
		if strings.Contains(e.Link, "/index") {
			t.Fatalf("index leaked into listing: %+v", e)
		}
		if !strings.HasSuffix(e.Link, "/") || strings.Contains(e.Link, "..") || strings.HasPrefix(e.Link, "/") {
			t.Fatalf("link not relative: %q", e.Link)
		}
	}
	for _, want := range []string{"覆盖标题", "我的高三这一年", "c-bare"} {
		if !titles[want] {
			t.Fatalf("missing title %q in %+v", want, essays)
		}
	}
}

func TestListEssaysSortedByTitle(t *testing.T) {
	dir := t.TempDir()
	writeEssay(t, dir, "zz.md", "# Alpha story\n")
	writeEssay(t, dir, "aa.md", "# Beta story\n")

	essays, err := ListEssays(dir)
	if err != nil {
		t.Fatal(err)
	}
	if essays[0].Title != "Alpha story" || essays[1].Title != "Beta story" {
		t.Fatalf("order: %+v", essays)
	}
}

func TestListEssaysMissingDir(t *testing.T) {
	if _, err := ListEssays(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error")
	}
}

func TestRenderEssayIndexEmpty(t *testing.T) {
	page := RenderEssayIndex(nil)
	if !strings.Contains(page, "当前暂无长文投稿") {
		t.Fatalf("page:\n%s", page)
	}
}
