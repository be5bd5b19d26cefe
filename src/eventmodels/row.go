package eventmodels

import "strings"

// Row is one spreadsheet record: a read-only mapping of column name to cell value that
// remembers the order the columns appeared in the header.
type Row struct {
	keys   []string
	values map[string]string
}

// NewRow pairs header names with cell values. Missing cells are empty strings; duplicate
// header names keep their first position and last value.
func NewRow(header []string, cells []string) Row {
	r := Row{
		keys:   make([]string, 0, len(header)),
		values: make(map[string]string, len(header)),
	}

	for i, key := range header {
		val := ""
		if i < len(cells) {
			val = strings.TrimSpace(cells[i])
		}

		if _, found := r.values[key]; !found {
			r.keys = append(r.keys, key)
		}

		r.values[key] = val
	}

	return r
}

// RowFromPairs builds a row from alternating key, value arguments.
func RowFromPairs(pairs ...string) Row {
	var header, cells []string
	for i := 0; i+1 < len(pairs); i += 2 {
		header = append(header, pairs[i])
		cells = append(cells, pairs[i+1])
	}

	return NewRow(header, cells)
}

func (r Row) Get(key string) (string, bool) {
	v, found := r.values[key]
	return v, found
}

// Value returns the cell under key, or "" when the column is absent.
func (r Row) Value(key string) string {
	return r.values[key]
}

// FirstNonEmpty returns the first cell among keys that holds a non-empty value.
func (r Row) FirstNonEmpty(keys ...string) (string, string, bool) {
	for _, key := range keys {
		if v := r.values[key]; v != "" {
			return key, v, true
		}
	}

	return "", "", false
}

// Matches reports whether any of keys holds exactly value.
func (r Row) Matches(value string, keys ...string) bool {
	for _, key := range keys {
		if v, found := r.values[key]; found && v == value {
			return true
		}
	}

	return false
}

// Keys returns the column names in header order.
func (r Row) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// FindKey returns the first column, in header order, accepted by match.
func (r Row) FindKey(match func(key string) bool) (string, bool) {
	for _, key := range r.keys {
		if match(key) {
			return key, true
		}
	}

	return "", false
}

func (r Row) Len() int {
	return len(r.keys)
}

type Table []Row

// Tables maps sheet name to its rows.
type Tables map[string]Table

// Merge appends the rows of other into a new Tables value; neither input is modified.
func (t Tables) Merge(other Tables) Tables {
	out := make(Tables, len(t)+len(other))
	for name, rows := range t {
		out[name] = append(Table(nil), rows...)
	}

	for name, rows := range other {
		out[name] = append(out[name], rows...)
	}

	return out
}
