package payload

import (
	"regexp"
	"soko/internal/core"

	"github.com/jellydator/validation"
)

var (
	decimalRegex = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
	centsRegex   = regexp.MustCompile(`^[0-9]+$`)
)

// ListEnergyRequest carries the producer form: amount in energy units and
// price in whole cents.
type ListEnergyRequest struct {
	Amount string `json:"amount"`
	Price  string `json:"price"`
}

func (l *ListEnergyRequest) Validate() error {
	return validation.ValidateStruct(l,
		validation.Field(&l.Amount, validation.Required, validation.Match(decimalRegex)),
		validation.Field(&l.Price, validation.Required, validation.Match(centsRegex)),
	)
}

func (l ListEnergyRequest) ToOrder() core.ListOrder {
	return core.ListOrder{
		Amount: l.Amount,
		Price:  l.Price,
	}
}
