package tables

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/option-inquiry/src/eventmodels"
	"github.com/jiaming2012/option-inquiry/src/utils"
)

// ColumnPolicy describes which free-text headers carry a quote for one (side, structure).
// A header qualifies when it holds the tenor token, every Require token, no Exclude token,
// and at least one AnyOf token when AnyOf is set.
type ColumnPolicy struct {
	Require []string
	Exclude []string
	AnyOf   []string
}

// For puts a higher strike is the in-the-money side, hence the swapped ratio sets.
var columnPolicies = map[eventmodels.OptionType]map[eventmodels.Structure]ColumnPolicy{
	eventmodels.Call: {
		eventmodels.StructureAtTheMoney:    {Exclude: []string{"call", "put"}},
		eventmodels.StructureInTheMoney:    {Require: []string{"call"}, AnyOf: []string{"80", "90", "95"}},
		eventmodels.StructureOutOfTheMoney: {Require: []string{"call"}, AnyOf: []string{"103", "105", "110"}},
	},
	eventmodels.Put: {
		eventmodels.StructureAtTheMoney:    {Require: []string{"put"}, Exclude: []string{"call"}},
		eventmodels.StructureInTheMoney:    {Require: []string{"put"}, AnyOf: []string{"103", "105", "110"}},
		eventmodels.StructureOutOfTheMoney: {Require: []string{"put"}, AnyOf: []string{"90", "95", "97"}},
	},
}

func PolicyFor(side eventmodels.OptionType, structure eventmodels.Structure) (ColumnPolicy, bool) {
	policy, found := columnPolicies[side][structure]
	return policy, found
}

func (p ColumnPolicy) Accepts(header string, tenorToken string) bool {
	if !ContainsToken(header, tenorToken) {
		return false
	}

	for _, token := range p.Require {
		if !ContainsToken(header, token) {
			return false
		}
	}

	for _, token := range p.Exclude {
		if ContainsToken(header, token) {
			return false
		}
	}

	if len(p.AnyOf) == 0 {
		return true
	}

	for _, token := range p.AnyOf {
		if ContainsToken(header, token) {
			return true
		}
	}

	return false
}

// ContainsToken is a case-insensitive substring match that respects digit boundaries: a
// token starting with a digit may not follow one, and a token ending in a digit may not be
// followed by one. So "2m" does not match "12m(...)" and "90" does not match "190", while
// "call" still matches "90call".
func ContainsToken(header, token string) bool {
	if token == "" {
		return false
	}

	h := strings.ToLower(header)
	tok := strings.ToLower(token)
	leadingDigit := isDigit(tok[0])
	trailingDigit := isDigit(tok[len(tok)-1])

	for offset := 0; offset <= len(h)-len(tok); {
		i := strings.Index(h[offset:], tok)
		if i < 0 {
			return false
		}

		start := offset + i
		end := start + len(tok)
		leftOK := !leadingDigit || start == 0 || !isDigit(h[start-1])
		rightOK := !trailingDigit || end == len(h) || !isDigit(h[end])
		if leftOK && rightOK {
			return true
		}

		offset = start + 1
	}

	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// FindQuotedColumn returns the first header of row, in header order, that carries the
// quote for the requested contract. Custom structures never match.
func FindQuotedColumn(row eventmodels.Row, tenor eventmodels.Tenor, side eventmodels.OptionType, structure eventmodels.Structure) (string, bool) {
	policy, found := PolicyFor(side, structure)
	if !found {
		return "", false
	}

	token := tenor.Token()
	return row.FindKey(func(key string) bool {
		return policy.Accepts(key, token)
	})
}

type QuotedPrice struct {
	Column string
	Price  float64
}

// FindQuotedPrice scans the vanilla quote sheet for a real quote of code. Rows for the code
// are tried in order; a matching cell that is not a positive number is skipped.
func FindQuotedPrice(t eventmodels.Tables, names SheetNames, code string, tenor eventmodels.Tenor, side eventmodels.OptionType, structure eventmodels.Structure) (QuotedPrice, bool) {
	names = names.WithDefaults()
	code = strings.TrimSpace(code)

	for _, row := range t[names.VanillaQuote] {
		if !row.Matches(code, quoteCodeColumns...) {
			continue
		}

		column, found := FindQuotedColumn(row, tenor, side, structure)
		if !found {
			continue
		}

		price, ok := utils.ParsePositive(row.Value(column))
		if !ok {
			log.WithFields(log.Fields{
				"underlying": code,
				"column":     column,
				"value":      row.Value(column),
			}).Debug("FindQuotedPrice: ignoring non-positive quote cell")
			continue
		}

		return QuotedPrice{Column: column, Price: price}, true
	}

	return QuotedPrice{}, false
}
