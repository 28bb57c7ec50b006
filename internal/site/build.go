package site

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"flyover/internal"
	"flyover/internal/config"
	"flyover/internal/pipeline"
	"flyover/internal/record"
)

// Builder regenerates every published document from the canonical record
// set. A failing record degrades to an error page; only structural problems
// (missing dirs, missing markers) abort the build.
type Builder struct {
	cfg config.Config
	now func() time.Time
}

func NewBuilder(cfg config.Config, now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{cfg: cfg, now: now}
}

type BuildResult struct {
	Cases    []internal.PublishedCase
	Degraded int
	Essays   int
}

func (b *Builder) Run() (BuildResult, error) {
	if err := os.MkdirAll(b.cfg.OutDir(), 0o755); err != nil {
		return BuildResult{}, err
	}

	rawFiles, err := filepath.Glob(filepath.Join(b.cfg.RawDir(), "*.md"))
	if err != nil {
		return BuildResult{}, err
	}
	sort.Strings(rawFiles)

	result := BuildResult{}
	for _, raw := range rawFiles {
		published, err := b.buildCase(raw)
		if err != nil {
			return BuildResult{}, err
		}
		if published.Status == internal.CaseDegraded {
			result.Degraded++
		}
		result.Cases = append(result.Cases, published)
	}

	if err := b.writeListings(result.Cases); err != nil {
		return BuildResult{}, err
	}

	essays, err := ListEssays(b.cfg.SeniorsDir())
	if err != nil {
		return BuildResult{}, err
	}
	result.Essays = len(essays)
	if err := os.WriteFile(b.cfg.SeniorsIndexFile(), []byte(RenderEssayIndex(essays)), 0o644); err != nil {
		return BuildResult{}, err
	}

	if err := StampHomepage(b.cfg.HomeFile(), b.now().In(b.cfg.Location())); err != nil {
		return BuildResult{}, err
	}

	return result, nil
}

// buildCase renders one record, valid or degraded, and returns its listing
// projection. Decode and validation failures stay local to the record.
func (b *Builder) buildCase(rawPath string) (internal.PublishedCase, error) {
	blob, err := os.ReadFile(rawPath)
	if err != nil {
		return internal.PublishedCase{}, err
	}

	sub, decodeErr := record.Decode(blob)
	slug := pipeline.Slug(sub, filepath.Base(rawPath))

	failure := ""
	if decodeErr != nil {
		failure = decodeErr.Error()
	} else if err := pipeline.Validate(sub); err != nil {
		failure = err.Error()
	}

	var page string
	status := internal.CaseOK
	if failure != "" {
		status = internal.CaseDegraded
		page = RenderDegraded(sub, failure)
	} else {
		page = RenderCase(sub, b.sourceRef(rawPath))
	}

	outPath := filepath.Join(b.cfg.OutDir(), slug+".md")
	if err := os.WriteFile(outPath, []byte(page), 0o644); err != nil {
		return internal.PublishedCase{}, err
	}

	return internal.PublishedCase{
		Title:            Title(sub),
		Slug:             slug,
		SourceFile:       filepath.Base(rawPath),
		Nickname:         DisplayNickname(sub.Nickname),
		University:       Display(sub.University),
		Major:            Display(sub.Major),
		UniversityReview: sub.UniversityReview,
		MajorReview:      sub.MajorReview,
		Advice:           sub.Advice,
		Status:           status,
		FailureReason:    failure,
	}, nil
}

func (b *Builder) writeListings(cases []internal.PublishedCase) error {
	if err := os.WriteFile(b.cfg.IndexFile(), []byte(RenderIndex(cases)), 0o644); err != nil {
		return err
	}

	byUni := GroupCases(cases,
		func(c internal.PublishedCase) string { return c.University },
		func(c internal.PublishedCase) string { return fmt.Sprintf("%s | %s", c.Nickname, c.Major) },
		func(c internal.PublishedCase) string { return c.UniversityReview },
	)
	page := RenderGroups("按院校", "展示该院校的**院校评价**聚合结果，格式为 `昵称 | 专业：评价`。", byUni)
	if err := os.WriteFile(b.cfg.ByUniversityFile(), []byte(page), 0o644); err != nil {
		return err
	}

	byMajor := GroupCases(cases,
		func(c internal.PublishedCase) string { return c.Major },
		func(c internal.PublishedCase) string { return fmt.Sprintf("%s | %s", c.Nickname, c.University) },
		func(c internal.PublishedCase) string { return c.MajorReview },
	)
	page = RenderGroups("按专业", "展示该专业的**专业评价**聚合结果，格式为 `昵称 | 院校：评价`。", byMajor)
	if err := os.WriteFile(b.cfg.ByMajorFile(), []byte(page), 0o644); err != nil {
		return err
	}

	digest := RenderExperience(AdviceEntries(cases))
	return os.WriteFile(b.cfg.ExperienceFile(), []byte(digest), 0o644)
}

// sourceRef is the footer reference to the canonical file, relative to the
// docs tree so the rendered page never embeds an absolute path.
func (b *Builder) sourceRef(rawPath string) string {
	rel, err := filepath.Rel(filepath.Dir(b.cfg.DocsDir), rawPath)
	if err != nil {
		return filepath.Base(rawPath)
	}
	return filepath.ToSlash(rel)
}
