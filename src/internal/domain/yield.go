package domain

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

// Yielder is implemented by the products that accrue interest.
type Yielder interface {
	Account
	ApplyYield() Yield
}

// Yield describes one application of interest: Gross = balance*Rate and the
// balance moved by Gross-Fee.
type Yield struct {
	Rate  decimal.Decimal
	Gross decimal.Decimal
	Fee   decimal.Decimal
}

func (y Yield) Net() decimal.Decimal {
	return y.Gross.Sub(y.Fee)
}

// RateSampler draws a rate from the closed range [min, max].
type RateSampler interface {
	Sample(min decimal.Decimal, max decimal.Decimal) decimal.Decimal
}

type UniformSampler struct {
	rng *rand.Rand
}

var defaultSampler RateSampler = UniformSampler{}

// NewUniformSampler returns a sampler with a reproducible sequence.
func NewUniformSampler(seed uint64) UniformSampler {
	return UniformSampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s UniformSampler) Sample(min decimal.Decimal, max decimal.Decimal) decimal.Decimal {
	var f float64
	if s.rng != nil {
		f = s.rng.Float64()
	} else {
		f = rand.Float64()
	}
	return min.Add(max.Sub(min).Mul(decimal.NewFromFloat(f)))
}

// FixedRate always yields the same rate, ignoring the range.
type FixedRate decimal.Decimal

func (r FixedRate) Sample(decimal.Decimal, decimal.Decimal) decimal.Decimal {
	return decimal.Decimal(r)
}
