// Package ingest turns the survey workbook into the canonical record set.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"flyover/internal/config"
	"flyover/internal/pipeline"
	"flyover/internal/record"
)

// Importer rewrites docs/cases_raw from the single source workbook. The
// clock is injected because timestamp-less submissions fall back to the
// current time for their filename.
type Importer struct {
	cfg config.Config
	now func() time.Time
}

func NewImporter(cfg config.Config, now func() time.Time) *Importer {
	if now == nil {
		now = time.Now
	}
	return &Importer{cfg: cfg, now: now}
}

type ImportResult struct {
	Workbook string
	Written  int
}

// Run locates the workbook, resolves its schema and rewrites the canonical
// record set from scratch. Any schema-level problem aborts before the first
// record file is touched.
func (im *Importer) Run() (ImportResult, error) {
	workbook, err := im.findWorkbook()
	if err != nil {
		return ImportResult{}, err
	}

	grid, err := pipeline.LoadGrid(workbook)
	if err != nil {
		return ImportResult{}, err
	}
	if len(grid) == 0 {
		return ImportResult{}, fmt.Errorf("%s: Excel 为空或缺少表头行", filepath.Base(workbook))
	}

	headers := make([]string, 0, len(grid[0]))
	for _, c := range grid[0] {
		headers = append(headers, pipeline.NormalizeCell(c))
	}
	colmap, err := pipeline.Resolve(headers)
	if err != nil {
		return ImportResult{}, err
	}

	if err := im.resetRawDir(); err != nil {
		return ImportResult{}, err
	}

	written := 0
	seq := 0
	for _, row := range grid[1:] {
		if pipeline.RowEmpty(row) {
			continue
		}
		seq++
		sub := pipeline.Extract(row, colmap)

		ts := sub.SubmitTime
		if ts == "" {
			ts = im.now().In(im.cfg.Location()).Format("2006-01-02 15:04:05")
		}

		name := pipeline.SourceFilename(sub, seq, ts)
		doc, err := record.Encode(sub)
		if err != nil {
			return ImportResult{}, fmt.Errorf("encode row %d: %w", seq, err)
		}
		if err := os.WriteFile(filepath.Join(im.cfg.RawDir(), name), doc, 0o644); err != nil {
			return ImportResult{}, err
		}
		written++
	}

	return ImportResult{Workbook: filepath.Base(workbook), Written: written}, nil
}

// findWorkbook enforces the single-source convention: exactly one xlsx in
// the docs dir. Zero or several is a hard stop, because picking one
// silently would rebuild the whole site from the wrong submission set.
func (im *Importer) findWorkbook() (string, error) {
	matches, err := filepath.Glob(filepath.Join(im.cfg.DocsDir, "*.xlsx"))
	if err != nil {
		return "", err
	}
	if len(matches) != 1 {
		return "", fmt.Errorf("docs 目录下应当且只能存在一个 xlsx 文件，当前找到 %d 个", len(matches))
	}
	return matches[0], nil
}

func (im *Importer) resetRawDir() error {
	dir := im.cfg.RawDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	old, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return err
	}
	for _, p := range old {
		if err := os.Remove(p); err != nil {
			return err
		}
	}
	return nil
}
