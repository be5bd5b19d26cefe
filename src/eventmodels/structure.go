package eventmodels

import (
	"fmt"
	"strings"
)

// Structure is the moneyness structure requested for a quote.
type Structure string

const (
	StructureAtTheMoney    Structure = "atm"
	StructureInTheMoney    Structure = "itm"
	StructureOutOfTheMoney Structure = "otm"
	StructureCustom        Structure = "custom"
)

func (s Structure) Validate() error {
	switch s {
	case StructureAtTheMoney, StructureInTheMoney, StructureOutOfTheMoney, StructureCustom:
		return nil
	}

	return fmt.Errorf("Structure: Validate: invalid structure: %s", s)
}

func ParseStructure(s string) (Structure, error) {
	st := Structure(strings.ToLower(strings.TrimSpace(s)))
	if err := st.Validate(); err != nil {
		return "", err
	}

	return st, nil
}
