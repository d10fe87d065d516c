package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	apperrors "github.com/zatekoja/hospitalservices/pkg/errors"
)

func TestPriceSpec_Validate(t *testing.T) {
	tests := []struct {
		name     string
		spec     entities.PriceSpec
		wantCode string
	}{
		{"fixed price", entities.FixedPrice(50), ""},
		{"range", entities.PriceRange(10, 60), ""},
		{"range starting at zero", entities.PriceRange(0, 60), ""},
		{"degenerate range", entities.PriceRange(40, 40), ""},
		{"upper limit is inclusive", entities.FixedPrice(entities.PriceLimit), ""},
		{"all zero", entities.PriceSpec{}, apperrors.CodeRangeViolation},
		{"max below min", entities.PriceRange(60, 10), apperrors.CodeRangeViolation},
		{"price with max", entities.PriceSpec{Price: 50, MaxPrice: 60}, apperrors.CodeExclusivityViolation},
		{"price with min", entities.PriceSpec{Price: 50, MinPrice: 10}, apperrors.CodeExclusivityViolation},
		{"price with full range", entities.PriceSpec{Price: 50, MinPrice: 10, MaxPrice: 60}, apperrors.CodeExclusivityViolation},
		{"negative price", entities.FixedPrice(-1), apperrors.CodeBoundsViolation},
		{"price over limit", entities.FixedPrice(entities.PriceLimit + 1), apperrors.CodeBoundsViolation},
		{"max over limit", entities.PriceRange(10, entities.PriceLimit+0.5), apperrors.CodeBoundsViolation},
		// bounds are checked before exclusivity
		{"bounds before exclusivity", entities.PriceSpec{Price: 50, MinPrice: -3}, apperrors.CodeBoundsViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation), "got %v", err)
			assert.True(t, apperrors.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestPriceSpec_Modes(t *testing.T) {
	assert.True(t, entities.FixedPrice(50).IsFixed())
	assert.False(t, entities.FixedPrice(50).IsRange())
	assert.True(t, entities.PriceRange(10, 60).IsRange())
	assert.False(t, entities.PriceRange(10, 60).IsFixed())
}

func TestPriceSpec_RevalidatesAfterMutation(t *testing.T) {
	spec := entities.FixedPrice(50)
	assert.NoError(t, spec.Validate())

	spec.MaxPrice = 80
	assert.True(t, apperrors.HasCode(spec.Validate(), apperrors.CodeExclusivityViolation))
}
