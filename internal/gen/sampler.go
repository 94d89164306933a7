// Package gen synthesizes the maternal-health dataset: patients, their
// pregnancies, prenatal visits, deliveries and birth outcomes, following
// ENP 2021 distributions with year-linear trends.
//
// All randomness flows through a single seeded Sampler, so a fixed seed
// reproduces the dataset byte for byte.
package gen

import (
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Sampler owns the RNG and the fake-data source for one generation run.
// Not safe for concurrent use; generation is single-pass by design.
type Sampler struct {
	rng   *rand.Rand
	faker *gofakeit.Faker
}

// NewSampler creates a Sampler seeded for reproducible output.
func NewSampler(seed int64) *Sampler {
	return &Sampler{
		rng:   rand.New(rand.NewSource(seed)),
		faker: gofakeit.New(uint64(seed)),
	}
}

// Float64 returns a uniform draw from [0,1).
func (s *Sampler) Float64() float64 {
	return s.rng.Float64()
}

// Chance returns true with probability p.
func (s *Sampler) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// IntBetween returns a uniform integer in [lo, hi], inclusive on both ends.
func (s *Sampler) IntBetween(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

// Uniform returns a uniform float in [lo, hi).
func (s *Sampler) Uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Normal returns a normally distributed float with the given mean and stddev.
func (s *Sampler) Normal(mean, stddev float64) float64 {
	return s.rng.NormFloat64()*stddev + mean
}

// WeightedIndex picks an index proportionally to weights. Weights need not
// sum to 1. Panics on an empty slice.
func (s *Sampler) WeightedIndex(weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}

	target := s.rng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if target < cum {
			return i
		}
	}
	return len(weights) - 1
}

// Pick returns a uniformly chosen element.
func (s *Sampler) Pick(items []string) string {
	return items[s.rng.Intn(len(items))]
}

// PickInt returns a uniformly chosen element.
func (s *Sampler) PickInt(items []int) int {
	return items[s.rng.Intn(len(items))]
}

// SampleIndices returns k distinct indices drawn from [0, n).
// k is clamped to n.
func (s *Sampler) SampleIndices(n, k int) []int {
	if k > n {
		k = n
	}
	return s.rng.Perm(n)[:k]
}

// DateBetween returns a uniform date in [start, end], at day granularity.
func (s *Sampler) DateBetween(start, end time.Time) time.Time {
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, s.IntBetween(0, days))
}

// FemaleFirstName returns a French female first name.
func (s *Sampler) FemaleFirstName() string {
	return s.Pick(frenchFemaleFirstNames)
}

// LastName returns a French family name.
func (s *Sampler) LastName() string {
	return s.Pick(frenchLastNames)
}

// PersonName returns a synthetic full name for attending staff.
func (s *Sampler) PersonName() string {
	return s.faker.Name()
}

// City returns a synthetic city for facility names.
func (s *Sampler) City() string {
	return s.faker.City()
}

// Country returns a synthetic country for non-French nationalities.
func (s *Sampler) Country() string {
	return s.faker.Country()
}
