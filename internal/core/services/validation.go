package services

import (
	"fmt"

	"github.com/kash-money/kash_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// validateMoneyPrecision rejects amounts finer than cents. Monetary values
// are stored with exactly two fractional digits.
func validateMoneyPrecision(amount decimal.Decimal, field string) error {
	if amount.Exponent() < -2 {
		return fmt.Errorf("%w: %s must have at most 2 decimal places", apperrors.ErrValidation, field)
	}
	return nil
}

// validateNonNegativeMoney additionally rejects negative amounts.
func validateNonNegativeMoney(amount decimal.Decimal, field string) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", apperrors.ErrValidation, field)
	}
	return validateMoneyPrecision(amount, field)
}
