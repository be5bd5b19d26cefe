package sheets

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/option-inquiry/src/eventmodels"
	"github.com/jiaming2012/option-inquiry/src/ingest"
)

// NewLoader loads local workbooks and, when spreadsheetId is set, appends the sheets of
// that Google spreadsheet. Credentials come from the environment on every load.
func NewLoader(workbooks []string, spreadsheetId string, sheetNames ...string) ingest.Loader {
	return func(ctx context.Context) (eventmodels.Tables, error) {
		tables, err := ingest.LoadWorkbooks(workbooks...)
		if err != nil {
			return nil, fmt.Errorf("Loader: %w", err)
		}

		if spreadsheetId == "" {
			return tables, nil
		}

		srv, err := NewClientFromEnv(ctx)
		if err != nil {
			return nil, fmt.Errorf("Loader: failed to initialize google sheets: %w", err)
		}

		remote, err := FetchTables(ctx, srv, spreadsheetId, sheetNames...)
		if err != nil {
			return nil, fmt.Errorf("Loader: %w", err)
		}

		log.Infof("fetched %d sheets from spreadsheet %s", len(remote), spreadsheetId)
		return tables.Merge(remote), nil
	}
}
