package tables

// SheetNames names the workbook sheets the engine reads by convention.
type SheetNames struct {
	Reference    string `yaml:"reference"`
	VanillaQuote string `yaml:"vanilla_quote"`
	Snowball     string `yaml:"snowball"`
}

var DefaultSheetNames = SheetNames{
	Reference:    "7095",
	VanillaQuote: "香草看涨报价",
	Snowball:     "雪球报价",
}

// WithDefaults fills empty names from DefaultSheetNames.
func (n SheetNames) WithDefaults() SheetNames {
	if n.Reference == "" {
		n.Reference = DefaultSheetNames.Reference
	}

	if n.VanillaQuote == "" {
		n.VanillaQuote = DefaultSheetNames.VanillaQuote
	}

	if n.Snowball == "" {
		n.Snowball = DefaultSheetNames.Snowball
	}

	return n
}

var (
	referenceCodeColumns = []string{"代码", "证券代码"}
	referenceNameColumns = []string{"标的", "证券简称"}
	quoteCodeColumns     = []string{"证券代码"}
	quoteNameColumns     = []string{"证券简称"}

	// PriceColumns are tried in order when reading a spot price from a row.
	PriceColumns = []string{"现价", "最新价", "收盘价", "price"}
)

const unknownName = "未知"

const syntheticNamePrefix = "股票"
