package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// DocsDir is the root of the site source tree. The survey xlsx, the
	// canonical record set and every rendered page live beneath it.
	DocsDir string

	// DBPath locates the sqlite build ledger.
	DBPath string

	// TimeZone names the zone used for timestamp fallbacks and the
	// homepage stamp.
	TimeZone string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DocsDir:  getEnv("FLYOVER_DOCS_DIR", filepath.Join(cwd, "docs")),
		DBPath:   getEnv("FLYOVER_DB_PATH", filepath.Join(cwd, "data", "builds.db")),
		TimeZone: getEnv("FLYOVER_TIMEZONE", "Asia/Shanghai"),
	}

	return cfg, nil
}

// Location resolves the configured timezone, falling back to UTC if the
// zone database does not know it.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// RawDir holds the persisted canonical record files.
func (c Config) RawDir() string { return filepath.Join(c.DocsDir, "cases_raw") }

// OutDir holds the rendered case pages and aggregation views.
func (c Config) OutDir() string { return filepath.Join(c.DocsDir, "cases") }

// SeniorsDir holds the long-form essay sources.
func (c Config) SeniorsDir() string { return filepath.Join(c.DocsDir, "seniors") }

func (c Config) IndexFile() string        { return filepath.Join(c.OutDir(), "index.md") }
func (c Config) ByUniversityFile() string { return filepath.Join(c.OutDir(), "by-university.md") }
func (c Config) ByMajorFile() string      { return filepath.Join(c.OutDir(), "by-major.md") }
func (c Config) ExperienceFile() string   { return filepath.Join(c.DocsDir, "experience.md") }
func (c Config) SeniorsIndexFile() string { return filepath.Join(c.SeniorsDir(), "index.md") }
func (c Config) HomeFile() string         { return filepath.Join(c.DocsDir, "index.md") }

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
