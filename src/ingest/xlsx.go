package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jiaming2012/option-inquiry/src/eventmodels"
)

// ReadXLSX reads every sheet of an xlsx workbook.
func ReadXLSX(r io.Reader) (eventmodels.Tables, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("ReadXLSX: failed to open workbook: %w", err)
	}

	defer f.Close()

	tables := make(eventmodels.Tables)
	for _, name := range f.GetSheetList() {
		records, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("ReadXLSX: failed to read sheet %s: %w", name, err)
		}

		tables[name] = BuildTable(records)
	}

	return tables, nil
}
