package tables

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/option-inquiry/src/eventmodels"
	"github.com/jiaming2012/option-inquiry/src/utils"
)

// SyntheticPrice derives a stable spot price in [10, 109] from the security code.
func SyntheticPrice(code string) float64 {
	return utils.Round(float64(utils.CharCodeSeed(code)%100+10), 2)
}

// SpotPrice reads the first non-empty price column of row. A value that is not a positive
// number is reported as missing.
func SpotPrice(row eventmodels.Row) (float64, bool) {
	_, raw, found := row.FirstNonEmpty(PriceColumns...)
	if !found {
		return 0, false
	}

	return utils.ParsePositive(raw)
}

// FindUnderlying resolves the name and spot price of code. It searches the reference sheet,
// then the vanilla quote sheet, and falls back to a synthetic underlying. It never fails.
func FindUnderlying(t eventmodels.Tables, names SheetNames, code string) eventmodels.UnderlyingInfo {
	code = strings.TrimSpace(code)
	names = names.WithDefaults()

	if info, found := findInSheet(t[names.Reference], code, referenceCodeColumns, referenceNameColumns); found {
		return info
	}

	if info, found := findInSheet(t[names.VanillaQuote], code, quoteCodeColumns, quoteNameColumns); found {
		return info
	}

	log.WithField("underlying", code).Debug("FindUnderlying: not in any sheet, synthesizing")

	return eventmodels.UnderlyingInfo{
		Code:      code,
		Name:      syntheticNamePrefix + code,
		SpotPrice: SyntheticPrice(code),
		Synthetic: true,
	}
}

func findInSheet(sheet eventmodels.Table, code string, codeColumns, nameColumns []string) (eventmodels.UnderlyingInfo, bool) {
	for _, row := range sheet {
		if !row.Matches(code, codeColumns...) {
			continue
		}

		info := eventmodels.UnderlyingInfo{Code: code, Name: unknownName}
		if _, name, ok := row.FirstNonEmpty(nameColumns...); ok {
			info.Name = name
		}

		if price, ok := SpotPrice(row); ok {
			info.SpotPrice = price
		} else {
			info.SpotPrice = SyntheticPrice(code)
			info.Synthetic = true
		}

		return info, true
	}

	return eventmodels.UnderlyingInfo{}, false
}

// ListUnderlyings enumerates every security in the reference and vanilla quote sheets,
// first occurrence wins.
func ListUnderlyings(t eventmodels.Tables, names SheetNames) []eventmodels.UnderlyingInfo {
	names = names.WithDefaults()
	seen := make(map[string]bool)
	var out []eventmodels.UnderlyingInfo

	collect := func(sheet eventmodels.Table, codeColumns, nameColumns []string) {
		for _, row := range sheet {
			_, code, ok := row.FirstNonEmpty(codeColumns...)
			if !ok || seen[code] {
				continue
			}

			seen[code] = true
			if info, found := findInSheet(eventmodels.Table{row}, code, codeColumns, nameColumns); found {
				out = append(out, info)
			}
		}
	}

	collect(t[names.Reference], referenceCodeColumns, referenceNameColumns)
	collect(t[names.VanillaQuote], quoteCodeColumns, quoteNameColumns)

	return out
}
