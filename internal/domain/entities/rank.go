package entities

import (
	"fmt"

	apperrors "github.com/zatekoja/hospitalservices/pkg/errors"
)

// Rank value bounds, both inclusive
const (
	MinRankValue = 0
	MaxRankValue = 10
)

// Rank is a single user's score of a hospital or a service.
// An author holds at most one rank per target.
type Rank struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
	Attachment
	Label string `json:"label,omitempty"`
}

// Validate checks the rank before it is written
func (r *Rank) Validate() error {
	if err := ValidateRankValue(r.Value); err != nil {
		return err
	}
	return r.Attachment.Validate()
}

// ValidateRankValue rejects values outside [MinRankValue, MaxRankValue]
func ValidateRankValue(value int) error {
	if value < MinRankValue || value > MaxRankValue {
		return apperrors.NewValidationError(
			apperrors.CodeOutOfRange,
			fmt.Sprintf("rank must be between %d and %d", MinRankValue, MaxRankValue),
		)
	}
	return nil
}

// AverageRank returns sum/count rounded half-up to one decimal place,
// or 0 when there are no ranks. Rank values are non-negative integers,
// so the rounding is done exactly in tenths.
func AverageRank(sum, count int64) float64 {
	if count <= 0 {
		return 0
	}
	tenths := (20*sum + count) / (2 * count)
	return float64(tenths) / 10
}
