package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"flyover/internal"
	"flyover/internal/config"
	"flyover/internal/ingest"
	"flyover/internal/site"
	"flyover/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "import":
		res, err := ingest.NewImporter(cfg, time.Now).Run()
		must(err)
		fmt.Printf("[xlsx->md] %s -> %d cases_raw written into %s\n", res.Workbook, res.Written, cfg.RawDir())
	case "build":
		runBuild(cfg)
	case "run":
		res, err := ingest.NewImporter(cfg, time.Now).Run()
		must(err)
		fmt.Printf("[xlsx->md] %s -> %d cases_raw written into %s\n", res.Workbook, res.Written, cfg.RawDir())
		runBuild(cfg)
	case "history":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		limit := fs.Int("limit", 20, "max builds to list")
		_ = fs.Parse(os.Args[2:])
		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()
		builds, err := db.ListBuilds(*limit)
		must(err)
		for _, b := range builds {
			fmt.Printf("build #%d at %s cases=%d degraded=%d tokens +%d -%d\n",
				b.ID, b.StartedAt, b.Cases, b.Degraded, b.TokensNew, b.TokensGone)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func runBuild(cfg config.Config) {
	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	previous, err := db.LatestTokens()
	must(err)

	startedAt := time.Now().In(cfg.Location()).Format("2006-01-02 15:04:05")
	result, err := site.NewBuilder(cfg, time.Now).Run()
	must(err)

	records := make([]internal.LedgerRecord, 0, len(result.Cases))
	for _, c := range result.Cases {
		records = append(records, internal.LedgerRecord{
			Slug:       c.Slug,
			SourceFile: c.SourceFile,
			Title:      c.Title,
			Status:     string(c.Status),
		})
	}

	added, removed := storage.DiffTokens(previous, records)
	run := internal.BuildRun{
		StartedAt:  startedAt,
		Cases:      len(result.Cases),
		Degraded:   result.Degraded,
		TokensNew:  len(added),
		TokensGone: len(removed),
	}
	buildID, err := db.InsertBuild(run, records)
	must(err)

	fmt.Printf("Built %d cases (%d degraded), %d essays. Generated: cases/index.md, cases/by-university.md, cases/by-major.md, experience.md, seniors/index.md\n",
		len(result.Cases), result.Degraded, result.Essays)
	fmt.Printf("ledger: build #%d, tokens +%d -%d\n", buildID, len(added), len(removed))
	for _, slug := range removed {
		fmt.Printf("warning: token gone since previous build: %s\n", slug)
	}
}

func usage() {
	fmt.Println("usage: flyover <command>")
	fmt.Println("commands:")
	fmt.Println("  import            import the survey xlsx into docs/cases_raw")
	fmt.Println("  build             rebuild all published pages from docs/cases_raw")
	fmt.Println("  run               import then build")
	fmt.Println("  history --limit=20  list recorded builds")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
