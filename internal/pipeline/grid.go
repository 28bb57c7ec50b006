package pipeline

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"flyover/internal"
)

// datetimeLayouts are the textual datetime shapes seen in survey exports.
// Excelize hands back formatted strings, so datetime typing is recovered by
// parse rather than by cell metadata.
var datetimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006/1/2 15:04:05",
	"2006/1/2 15:04",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
}

// LoadGrid decodes the first sheet of an xlsx workbook into the typed cell
// grid the rest of the pipeline consumes.
func LoadGrid(path string) ([][]internal.Cell, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return gridFromFile(f)
}

// GridFromReader is LoadGrid over an in-memory workbook.
func GridFromReader(r io.Reader) ([][]internal.Cell, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return gridFromFile(f)
}

func gridFromFile(f *excelize.File) ([][]internal.Cell, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	grid := make([][]internal.Cell, 0, len(rows))
	for _, row := range rows {
		cells := make([]internal.Cell, 0, len(row))
		for _, v := range row {
			cells = append(cells, classifyCell(v))
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

func classifyCell(v string) internal.Cell {
	s := strings.TrimSpace(v)
	if s == "" {
		return internal.Cell{Kind: internal.CellBlank}
	}

	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return internal.Cell{
				Kind: internal.CellTime,
				Text: s,
				Time: internal.CellClock{
					Year: t.Year(), Month: int(t.Month()), Day: t.Day(),
					Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(),
				},
			}
		}
	}

	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return internal.Cell{Kind: internal.CellNum, Text: s}
	}

	return internal.Cell{Kind: internal.CellText, Text: v}
}
