package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/option-inquiry/src/eventmodels"
)

var UnsupportedFormatErr = errors.New("unsupported workbook format")

// LoadWorkbook loads an .xlsx file (all sheets) or a .csv file (one sheet named after the
// file without its extension).
func LoadWorkbook(path string) (eventmodels.Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadWorkbook: failed to open %s: %w", path, err)
	}

	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx", ".xlsm":
		tables, err := ReadXLSX(f)
		if err != nil {
			return nil, fmt.Errorf("LoadWorkbook: %s: %w", path, err)
		}

		return tables, nil
	case ".csv":
		table, err := ReadCSV(f)
		if err != nil {
			return nil, fmt.Errorf("LoadWorkbook: %s: %w", path, err)
		}

		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return eventmodels.Tables{name: table}, nil
	default:
		return nil, fmt.Errorf("LoadWorkbook: %s: %w", ext, UnsupportedFormatErr)
	}
}

// LoadWorkbooks loads and merges several workbooks. Rows of equally named sheets are
// appended in argument order.
func LoadWorkbooks(paths ...string) (eventmodels.Tables, error) {
	tables := make(eventmodels.Tables)
	for _, path := range paths {
		loaded, err := LoadWorkbook(path)
		if err != nil {
			return nil, err
		}

		for name, rows := range loaded {
			log.Debugf("LoadWorkbooks: loaded %d rows from %s!%s", len(rows), filepath.Base(path), name)
		}

		tables = tables.Merge(loaded)
	}

	return tables, nil
}
