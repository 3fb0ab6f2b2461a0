// Package services contains stateless domain services that encode business
// policy spanning more than one aggregate.
package services

import (
	"fmt"

	"comptoirs/internal/core/domain/model/order"
	"comptoirs/internal/pkg/errs"
)

const (
	// DefaultVolumeThreshold is the historical article count a client must
	// exceed to earn the volume discount.
	DefaultVolumeThreshold = 100

	// DefaultVolumeDiscountRate is the discount granted above the threshold.
	DefaultVolumeDiscountRate = 0.15
)

// VolumeDiscountPolicy decides the discount for a new order from the client's
// cumulative historical quantity of ordered articles. Clients strictly above
// the threshold get the discount rate; everyone else gets NoDiscount.
//
// The threshold and rate are policy configuration, not algorithm structure;
// both can be overridden at construction time.
type VolumeDiscountPolicy struct {
	threshold int
	rate      order.Discount
}

// NewVolumeDiscountPolicy creates the policy with the default threshold and rate.
func NewVolumeDiscountPolicy() VolumeDiscountPolicy {
	policy, _ := NewVolumeDiscountPolicyWithParams(DefaultVolumeThreshold, DefaultVolumeDiscountRate)
	return policy
}

// NewVolumeDiscountPolicyWithParams creates the policy with a custom threshold
// and rate. The threshold must not be negative and the rate must be a valid
// discount fraction.
func NewVolumeDiscountPolicyWithParams(threshold int, rate float64) (VolumeDiscountPolicy, error) {
	if threshold < 0 {
		return VolumeDiscountPolicy{}, errs.NewValueIsInvalidErrorWithCause("threshold is invalid",
			fmt.Errorf("%d is negative", threshold))
	}

	discount, err := order.NewDiscount(rate)
	if err != nil {
		return VolumeDiscountPolicy{}, err
	}

	return VolumeDiscountPolicy{
		threshold: threshold,
		rate:      discount,
	}, nil
}

// ForTotalOrdered returns the discount for a client with the given historical
// total of ordered articles. Exactly at the threshold no discount applies.
func (p VolumeDiscountPolicy) ForTotalOrdered(totalArticles int) order.Discount {
	if totalArticles > p.threshold {
		return p.rate
	}
	return order.NoDiscount
}
