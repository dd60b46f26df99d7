// Package statistics accumulates weighted samples, such as a per-flop count
// weighted by how many raw flops the canonical flop stands for.
package statistics

import (
	"fmt"
	"math"
	"slices"
)

type sample struct {
	value  float64
	weight float64
}

// Statistics tracks a weighted sample. The zero value is ready to use.
type Statistics struct {
	Count  int
	Weight float64
	Sum    float64 // sum of value*weight
	SumSq  float64 // sum of value*value*weight
	Min    float64
	Max    float64

	samples []sample
}

// Add records value with the given weight. Non-positive weights are ignored.
func (s *Statistics) Add(value, weight float64) {
	if weight <= 0 {
		return
	}
	if s.Count == 0 || value < s.Min {
		s.Min = value
	}
	if s.Count == 0 || value > s.Max {
		s.Max = value
	}
	s.Count++
	s.Weight += weight
	s.Sum += value * weight
	s.SumSq += value * value * weight
	s.samples = append(s.samples, sample{value, weight})
}

// Merge folds other into s.
func (s *Statistics) Merge(other *Statistics) {
	for _, smp := range other.samples {
		s.Add(smp.value, smp.weight)
	}
}

// Mean returns the weighted mean
func (s *Statistics) Mean() float64 {
	if s.Weight == 0 {
		return 0
	}
	return s.Sum / s.Weight
}

// Variance returns the weighted population variance
func (s *Statistics) Variance() float64 {
	if s.Weight == 0 {
		return 0
	}
	mean := s.Mean()
	return max(s.SumSq/s.Weight-mean*mean, 0)
}

// StdDev returns the weighted population standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Median returns the weighted median.
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the smallest value whose cumulative weight reaches
// p (0.0 to 1.0) of the total.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.samples) == 0 {
		return 0
	}
	sorted := slices.SortedFunc(slices.Values(s.samples), func(a, b sample) int {
		switch {
		case a.value < b.value:
			return -1
		case a.value > b.value:
			return 1
		default:
			return 0
		}
	})

	target := p * s.Weight
	cum := 0.0
	for _, smp := range sorted {
		cum += smp.weight
		if cum >= target {
			return smp.value
		}
	}
	return sorted[len(sorted)-1].value
}

// Validate checks that the running totals agree with the recorded samples.
func (s *Statistics) Validate() error {
	if s.Count != len(s.samples) {
		return fmt.Errorf("count mismatch: Count=%d, samples=%d", s.Count, len(s.samples))
	}
	weight := 0.0
	for _, smp := range s.samples {
		weight += smp.weight
	}
	if math.Abs(weight-s.Weight) > 1e-6 {
		return fmt.Errorf("weight mismatch: Weight=%.6f, samples=%.6f", s.Weight, weight)
	}
	return nil
}
