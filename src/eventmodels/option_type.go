package eventmodels

import (
	"fmt"
	"strings"
)

type OptionType string

func (o OptionType) Validate() error {
	if o != Call && o != Put {
		return fmt.Errorf("OptionType: Validate: invalid option type: %s", o)
	}

	return nil
}

func ParseOptionType(s string) (OptionType, error) {
	o := OptionType(strings.ToLower(strings.TrimSpace(s)))
	if err := o.Validate(); err != nil {
		return "", err
	}

	return o, nil
}

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)
