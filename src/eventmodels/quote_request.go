package eventmodels

import (
	"fmt"
	"strings"
	"time"
)

const ExpiryDateLayout = "2006-01-02"

// QuoteRequest describes the option contract a caller wants quoted.
type QuoteRequest struct {
	UnderlyingCode    string      `json:"stockCode" schema:"stockCode"`
	Side              OptionType  `json:"optionType" schema:"optionType"`
	Tenor             Tenor       `json:"term" schema:"term"`
	Structure         Structure   `json:"structureType" schema:"structureType"`
	ProductType       ProductType `json:"productType,omitempty" schema:"productType"`
	CustomStrikeRatio *float64    `json:"strikePriceRatio,omitempty" schema:"strikePriceRatio"`
	CustomStrike      *float64    `json:"strikePrice,omitempty" schema:"strikePrice"`
	CustomExpiry      string      `json:"expiryDate,omitempty" schema:"expiryDate"`
}

// Product returns the requested product type, defaulting to vanilla.
func (r QuoteRequest) Product() ProductType {
	if r.ProductType == "" {
		return ProductTypeVanilla
	}

	return r.ProductType
}

// Normalize trims the code and canonicalizes the case of the enum fields.
func (r QuoteRequest) Normalize() QuoteRequest {
	r.UnderlyingCode = strings.TrimSpace(r.UnderlyingCode)
	r.Side = OptionType(strings.ToLower(strings.TrimSpace(string(r.Side))))
	r.Tenor = Tenor(strings.ToUpper(strings.TrimSpace(string(r.Tenor))))
	r.Structure = Structure(strings.ToLower(strings.TrimSpace(string(r.Structure))))
	r.ProductType = ProductType(strings.ToLower(strings.TrimSpace(string(r.ProductType))))
	r.CustomExpiry = strings.TrimSpace(r.CustomExpiry)
	return r
}

// Validate checks the request shape. Every failure wraps InvalidRequestErr.
func (r QuoteRequest) Validate() error {
	if strings.TrimSpace(r.UnderlyingCode) == "" {
		return fmt.Errorf("QuoteRequest.Validate: missing underlying code: %w", InvalidRequestErr)
	}

	if err := r.Side.Validate(); err != nil {
		return fmt.Errorf("QuoteRequest.Validate: %v: %w", err, InvalidRequestErr)
	}

	if err := r.Tenor.Validate(); err != nil {
		return fmt.Errorf("QuoteRequest.Validate: %v: %w", err, InvalidRequestErr)
	}

	if err := r.Structure.Validate(); err != nil {
		return fmt.Errorf("QuoteRequest.Validate: %v: %w", err, InvalidRequestErr)
	}

	if err := r.Product().Validate(); err != nil {
		return fmt.Errorf("QuoteRequest.Validate: %v: %w", err, InvalidRequestErr)
	}

	if r.Structure == StructureCustom {
		if r.CustomStrike == nil {
			return fmt.Errorf("QuoteRequest.Validate: custom structure requires a strike: %w", InvalidRequestErr)
		}

		if *r.CustomStrike <= 0 {
			return fmt.Errorf("QuoteRequest.Validate: custom strike must be positive, found %v: %w", *r.CustomStrike, InvalidRequestErr)
		}

		if r.CustomExpiry != "" {
			if _, err := time.Parse(ExpiryDateLayout, r.CustomExpiry); err != nil {
				return fmt.Errorf("QuoteRequest.Validate: invalid custom expiry %q: %w", r.CustomExpiry, InvalidRequestErr)
			}
		}
	}

	return nil
}
