package site

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	markerStart = "<!-- LAST_UPDATED_START -->"
	markerEnd   = "<!-- LAST_UPDATED_END -->"
)

// StampHomepage rewrites the last-updated block of the homepage in place.
// The marker pair is a required part of the document; its absence is a
// schema-level failure, not something to paper over.
func StampHomepage(path string, ts time.Time) error {
	blob, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	content := string(blob)

	start := strings.Index(content, markerStart)
	end := strings.Index(content, markerEnd)
	if start < 0 || end < 0 || end < start {
		return fmt.Errorf("%s 缺少更新时间标记区块：\n%s\n...\n%s", path, markerStart, markerEnd)
	}

	line := "最后更新时间：" + ts.Format("2006/01/02  15:04:05")
	updated := content[:start] + markerStart + "\n" + line + "\n" + markerEnd + content[end+len(markerEnd):]
	return os.WriteFile(path, []byte(updated), 0o644)
}
