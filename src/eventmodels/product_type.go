package eventmodels

import "fmt"

type ProductType string

const (
	ProductTypeVanilla  ProductType = "vanilla"
	ProductTypeSnowball ProductType = "snowball"
)

func (p ProductType) Validate() error {
	if p != ProductTypeVanilla && p != ProductTypeSnowball {
		return fmt.Errorf("ProductType: Validate: invalid product type: %s", p)
	}

	return nil
}
