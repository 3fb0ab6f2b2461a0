package order

import (
	"comptoirs/internal/pkg/errs"
)

// Discount is the fraction taken off an order's total, expressed as a value
// in [0, 1]. Every order carries a defined discount; orders without one use
// NoDiscount rather than a null value.
type Discount float64

// NoDiscount is the default discount applied to new orders.
const NoDiscount Discount = 0

// NewDiscount creates a Discount from a fraction, validating its range.
func NewDiscount(rate float64) (Discount, error) {
	d := Discount(rate)
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return d, nil
}

// Validate checks that the discount lies within [0, 1].
func (d Discount) Validate() error {
	if d < 0 || d > 1 {
		return errs.NewValueIsOutOfRangeError("discount", float64(d), 0, 1)
	}
	return nil
}

// Rate returns the discount as a plain fraction.
func (d Discount) Rate() float64 {
	return float64(d)
}
