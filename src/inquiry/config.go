package inquiry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jiaming2012/option-inquiry/src/tables"
)

const DefaultQuoteSourceLabel = "多家券商"

type Config struct {
	Sheets           tables.SheetNames `yaml:"sheets"`
	QuoteSourceLabel string            `yaml:"quote_source_label"`
}

func DefaultConfig() Config {
	return Config{
		Sheets:           tables.DefaultSheetNames,
		QuoteSourceLabel: DefaultQuoteSourceLabel,
	}
}

func (c Config) withDefaults() Config {
	c.Sheets = c.Sheets.WithDefaults()
	if c.QuoteSourceLabel == "" {
		c.QuoteSourceLabel = DefaultQuoteSourceLabel
	}

	return c
}

func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("ParseConfig: failed to unmarshal yaml: %w", err)
	}

	return cfg.withDefaults(), nil
}

// LoadConfig reads an engine config file. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig: failed to read %s: %w", path, err)
	}

	return ParseConfig(data)
}
