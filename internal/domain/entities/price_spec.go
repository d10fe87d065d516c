package entities

import (
	"fmt"

	apperrors "github.com/zatekoja/hospitalservices/pkg/errors"
)

// PriceLimit is the upper bound of every price field.
const PriceLimit = 100000

// PriceSpec is the price of a service: a fixed price or a min/max range.
// Fixed mode keeps the range at zero; range mode keeps Price at zero.
type PriceSpec struct {
	Price    float64 `json:"price" db:"price"`
	MinPrice float64 `json:"min_price" db:"min_price"`
	MaxPrice float64 `json:"max_price" db:"max_price"`
}

// FixedPrice builds a fixed-mode price.
func FixedPrice(price float64) PriceSpec {
	return PriceSpec{Price: price}
}

// PriceRange builds a range-mode price.
func PriceRange(minPrice, maxPrice float64) PriceSpec {
	return PriceSpec{MinPrice: minPrice, MaxPrice: maxPrice}
}

// IsFixed reports whether the fixed price is the active mode.
func (p PriceSpec) IsFixed() bool {
	return p.Price != 0
}

// IsRange reports whether the min/max range is the active mode.
func (p PriceSpec) IsRange() bool {
	return p.Price == 0 && p.MaxPrice != 0
}

// Validate checks field bounds first and the pricing mode second.
// It must run before every create and update of a service.
func (p PriceSpec) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"price", p.Price},
		{"min_price", p.MinPrice},
		{"max_price", p.MaxPrice},
	}
	for _, f := range fields {
		if f.value < 0 || f.value > PriceLimit {
			return apperrors.NewValidationError(
				apperrors.CodeBoundsViolation,
				fmt.Sprintf("%s must be between 0 and %d", f.name, PriceLimit),
			)
		}
	}

	if p.Price == 0 && p.MinPrice == 0 && p.MaxPrice == 0 {
		return apperrors.NewValidationError(
			apperrors.CodeRangeViolation,
			"the price of the service is not determined: set either price or min_price and max_price",
		)
	}

	if p.Price == 0 {
		if p.MaxPrice < p.MinPrice {
			return apperrors.NewValidationError(
				apperrors.CodeRangeViolation,
				"max_price can not be less than min_price",
			)
		}
		return nil
	}

	if p.MaxPrice != 0 || p.MinPrice > 0 {
		return apperrors.NewValidationError(
			apperrors.CodeExclusivityViolation,
			"set either price or min_price and max_price, not both",
		)
	}

	return nil
}
