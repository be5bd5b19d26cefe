// Package sheets reads quote workbooks hosted on Google Sheets.
package sheets

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/sheets/v4"

	"github.com/jiaming2012/option-inquiry/src/eventmodels"
	"github.com/jiaming2012/option-inquiry/src/ingest"
)

// FetchTables downloads the named sheets of a spreadsheet. With no names every sheet is
// fetched. Rows go through the same header detection as local workbooks.
func FetchTables(ctx context.Context, srv *sheets.Service, spreadsheetId string, names ...string) (eventmodels.Tables, error) {
	if len(names) == 0 {
		listed, err := sheetTitles(ctx, srv, spreadsheetId)
		if err != nil {
			return nil, fmt.Errorf("FetchTables: %w", err)
		}

		names = listed
	}

	tables := make(eventmodels.Tables, len(names))
	for _, name := range names {
		values, err := fetchRows(ctx, srv, spreadsheetId, name)
		if err != nil {
			return nil, fmt.Errorf("FetchTables: %w", err)
		}

		tables[name] = ingest.BuildTable(toRecords(values))
		log.Debugf("FetchTables: fetched %d rows from %s", len(tables[name]), name)
	}

	return tables, nil
}

func sheetTitles(ctx context.Context, srv *sheets.Service, spreadsheetId string) ([]string, error) {
	spreadsheet, err := srv.Spreadsheets.Get(spreadsheetId).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve spreadsheet %s: %w", spreadsheetId, err)
	}

	titles := make([]string, 0, len(spreadsheet.Sheets))
	for _, s := range spreadsheet.Sheets {
		if s.Properties != nil {
			titles = append(titles, s.Properties.Title)
		}
	}

	return titles, nil
}

func fetchRows(ctx context.Context, srv *sheets.Service, spreadsheetId string, sheetName string) ([][]interface{}, error) {
	response, err := srv.Spreadsheets.Values.Get(spreadsheetId, quoteSheetName(sheetName)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet %s: %w", sheetName, err)
	}

	return response.Values, nil
}

// quoteSheetName makes a sheet name safe for A1 notation. Unquoted, "7095" reads as a row.
func quoteSheetName(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func toRecords(values [][]interface{}) [][]string {
	records := make([][]string, len(values))
	for i, row := range values {
		records[i] = make([]string, len(row))
		for j, cell := range row {
			if s, ok := cell.(string); ok {
				records[i][j] = s
			} else if cell != nil {
				records[i][j] = fmt.Sprint(cell)
			}
		}
	}

	return records
}
