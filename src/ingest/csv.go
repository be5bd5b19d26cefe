package ingest

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/jiaming2012/option-inquiry/src/eventmodels"
)

// ReadCSV reads a single sheet of comma separated values.
func ReadCSV(r io.Reader) (eventmodels.Table, error) {
	records, err := gocsv.LazyCSVReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: failed to read records: %w", err)
	}

	return BuildTable(records), nil
}
