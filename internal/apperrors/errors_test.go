package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/growth_estimator/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestDomainMathErrors(t *testing.T) {
	wrapped := fmt.Errorf("revenue: %w", apperrors.ErrDivisionByZero)

	assert.True(t, errors.Is(wrapped, apperrors.ErrDivisionByZero))
	assert.True(t, errors.Is(wrapped, apperrors.ErrDomainMath))
	assert.True(t, errors.Is(apperrors.ErrZeroWeightSum, apperrors.ErrDomainMath))
	assert.False(t, errors.Is(wrapped, apperrors.ErrZeroWeightSum))
	assert.False(t, errors.Is(apperrors.ErrValidation, apperrors.ErrDomainMath))
}
