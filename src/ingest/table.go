// Package ingest turns spreadsheet files into eventmodels.Tables.
package ingest

import (
	"fmt"
	"strings"

	"github.com/jiaming2012/option-inquiry/src/eventmodels"
)

const (
	headerScanRows    = 10
	headerMinCells    = 5
	emptyHeaderPrefix = "__EMPTY"
	utf8ByteOrderMark = "\ufeff"
)

// DetectHeader returns the index of the first of the leading rows with more than
// headerMinCells non-empty cells. Title rows above the header are skipped this way.
func DetectHeader(records [][]string) int {
	for i := 0; i < len(records) && i < headerScanRows; i++ {
		if countNonEmpty(records[i]) > headerMinCells {
			return i
		}
	}

	return 0
}

// HeaderNames normalizes a raw header row. Blank cells become __EMPTY, __EMPTY_1, ... and
// repeated names get the first free _1, _2, ... suffix so that every column stays addressable.
func HeaderNames(raw []string) []string {
	names := make([]string, len(raw))
	seen := make(map[string]int, len(raw))
	empty := 0

	for i, cell := range raw {
		name := strings.TrimSpace(strings.TrimPrefix(cell, utf8ByteOrderMark))
		if name == "" {
			name = emptyHeaderPrefix
			if empty > 0 {
				name = fmt.Sprintf("%s_%d", emptyHeaderPrefix, empty)
			}
			empty++
		}

		if n, found := seen[name]; found {
			base := name
			for {
				n++
				name = fmt.Sprintf("%s_%d", base, n)
				if _, taken := seen[name]; !taken {
					break
				}
			}
			seen[base] = n
		}

		seen[name] = 0
		names[i] = name
	}

	return names
}

// BuildTable converts raw records into rows keyed by the detected header. Blank rows are
// dropped. Columns beyond the header width are named like blank header cells.
func BuildTable(records [][]string) eventmodels.Table {
	if len(records) == 0 {
		return eventmodels.Table{}
	}

	headerIdx := DetectHeader(records)
	width := len(records[headerIdx])
	for _, rec := range records[headerIdx+1:] {
		if len(rec) > width {
			width = len(rec)
		}
	}

	raw := make([]string, width)
	copy(raw, records[headerIdx])
	header := HeaderNames(raw)

	table := make(eventmodels.Table, 0, len(records)-headerIdx-1)
	for _, rec := range records[headerIdx+1:] {
		if countNonEmpty(rec) == 0 {
			continue
		}

		table = append(table, eventmodels.NewRow(header, rec))
	}

	return table
}

func countNonEmpty(record []string) int {
	n := 0
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			n++
		}
	}

	return n
}
