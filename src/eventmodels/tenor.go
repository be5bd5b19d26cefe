package eventmodels

import (
	"fmt"
	"strings"
)

// Tenor is the contract duration bucket, e.g. 2W or 1M.
type Tenor string

const (
	Tenor2W  Tenor = "2W"
	Tenor1M  Tenor = "1M"
	Tenor2M  Tenor = "2M"
	Tenor3M  Tenor = "3M"
	Tenor6M  Tenor = "6M"
	Tenor12M Tenor = "12M"
)

var Tenors = []Tenor{Tenor2W, Tenor1M, Tenor2M, Tenor3M, Tenor6M, Tenor12M}

func (t Tenor) Validate() error {
	for _, known := range Tenors {
		if t == known {
			return nil
		}
	}

	return fmt.Errorf("Tenor: Validate: invalid tenor: %s", t)
}

// Token is the lower-cased code used inside free-text quote sheet headers, e.g. "1m".
func (t Tenor) Token() string {
	return strings.ToLower(string(t))
}

func ParseTenor(s string) (Tenor, error) {
	t := Tenor(strings.ToUpper(strings.TrimSpace(s)))
	if err := t.Validate(); err != nil {
		return "", err
	}

	return t, nil
}
