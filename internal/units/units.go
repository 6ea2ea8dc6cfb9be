// Package units converts between user-entered decimal quantities and the integer
// smallest units the marketplace contract stores.
//
// Energy amounts carry 8 implied decimals. Prices are entered in whole cents and
// stored as cents * 10^4, which is the 6-decimal payment token's smallest unit.
package units

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	EnergyDecimals = 8
	CentScale      = 4
)

var ErrInvalidQuantity error = errors.New("invalid quantity")

// EnergyToSmallest converts a displayed energy quantity ("1000", "0.5") to smallest units.
func EnergyToSmallest(value string) (*big.Int, error) {
	d, err := parsePositive(value)
	if err != nil {
		return nil, err
	}

	scaled := d.Shift(EnergyDecimals)
	if !scaled.IsInteger() {
		return nil, fmt.Errorf("%w: %q has more than %d decimal places", ErrInvalidQuantity, value, EnergyDecimals)
	}

	return scaled.BigInt(), nil
}

// CentsToSmallest converts a whole-cent price to smallest units.
func CentsToSmallest(value string) (*big.Int, error) {
	d, err := parsePositive(value)
	if err != nil {
		return nil, err
	}

	if !d.IsInteger() {
		return nil, fmt.Errorf("%w: price %q must be a whole number of cents", ErrInvalidQuantity, value)
	}

	return d.Shift(CentScale).BigInt(), nil
}

func FormatEnergy(amount *big.Int) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -EnergyDecimals).String()
}

func FormatCents(price *big.Int) string {
	if price == nil {
		return "0"
	}
	return decimal.NewFromBigInt(price, -CentScale).String()
}

func parsePositive(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a number", ErrInvalidQuantity, value)
	}

	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: %q must be greater than zero", ErrInvalidQuantity, value)
	}

	return d, nil
}
