package config

import (
	"fmt"
	"sync"
)

// Parameter identifies one of the four scored physicochemical parameters.
type Parameter string

// Scored parameters.
const (
	ParameterDose            Parameter = "dose"
	ParameterMolecularWeight Parameter = "molecular_weight"
	ParameterMeltingPoint    Parameter = "melting_point"
	ParameterLogP            Parameter = "log_p"
)

// Parameters lists the scored parameters in display order.
var Parameters = []Parameter{
	ParameterDose,
	ParameterMolecularWeight,
	ParameterMeltingPoint,
	ParameterLogP,
}

// DeliveryMethod is a delivery route.
type DeliveryMethod string

// Delivery routes.
const (
	DeliveryTransdermal  DeliveryMethod = "transdermal"
	DeliveryTransmucosal DeliveryMethod = "transmucosal"
)

// DeliveryMethods lists both scored routes.
var DeliveryMethods = []DeliveryMethod{DeliveryTransdermal, DeliveryTransmucosal}

// ParameterSpec declares one scored parameter: its weight in the total, its
// unit, and the instruction used for dedicated single-field LLM queries.
type ParameterSpec struct {
	Name                  Parameter `yaml:"name"`
	Weight                float64   `yaml:"weight"`
	Unit                  string    `yaml:"unit"`
	DisplayOrder          int       `yaml:"display_order"`
	ExtractionInstruction string    `yaml:"extraction_instruction"`
}

// RubricRange is one rubric row: a value interval mapped to a score for one
// (parameter, delivery route) pair. Nil bounds are unbounded.
type RubricRange struct {
	Parameter      Parameter      `yaml:"parameter"`
	DeliveryMethod DeliveryMethod `yaml:"delivery_method"`
	Min            *float64       `yaml:"min,omitempty"`
	Max            *float64       `yaml:"max,omitempty"`
	Score          int            `yaml:"score"`
	IsExclusion    bool           `yaml:"is_exclusion"`
	RangeText      string         `yaml:"range_text"`
}

// Contains reports whether v falls inside the (inclusive) interval.
func (r *RubricRange) Contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// Width returns the interval width, or +Inf semantics via ok=false for
// unbounded intervals. Used only for narrower-range tie-breaking.
func (r *RubricRange) Width() (float64, bool) {
	if r.Min == nil || r.Max == nil {
		return 0, false
	}
	return *r.Max - *r.Min, true
}

// ScoringConfig groups the parameter specs and rubric rows.
type ScoringConfig struct {
	Parameters []ParameterSpec `yaml:"parameters"`
	Ranges     []RubricRange   `yaml:"ranges"`

	mu      sync.RWMutex
	weights map[Parameter]float64
	specs   map[Parameter]*ParameterSpec
}

// Weight returns the configured weight for a parameter (0 if unknown).
func (s *ScoringConfig) Weight(p Parameter) float64 {
	s.index()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.weights[p]
}

// Spec returns the ParameterSpec for a parameter.
func (s *ScoringConfig) Spec(p Parameter) (*ParameterSpec, error) {
	s.index()
	s.mu.RLock()
	defer s.mu.RUnlock()
	spec, ok := s.specs[p]
	if !ok {
		return nil, fmt.Errorf("scoring: unknown parameter %q", p)
	}
	return spec, nil
}

// RangesFor returns the rubric rows for one (parameter, route) pair.
func (s *ScoringConfig) RangesFor(p Parameter, m DeliveryMethod) []RubricRange {
	var out []RubricRange
	for _, r := range s.Ranges {
		if r.Parameter == p && r.DeliveryMethod == m {
			out = append(out, r)
		}
	}
	return out
}

func (s *ScoringConfig) index() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.weights != nil {
		return
	}
	s.weights = make(map[Parameter]float64, len(s.Parameters))
	s.specs = make(map[Parameter]*ParameterSpec, len(s.Parameters))
	for i := range s.Parameters {
		spec := &s.Parameters[i]
		s.weights[spec.Name] = spec.Weight
		s.specs[spec.Name] = spec
	}
}

// Validate checks weight totals and rubric coverage.
func (s *ScoringConfig) Validate() error {
	var total float64
	for _, p := range s.Parameters {
		if p.Weight < 0 || p.Weight > 1 {
			return fmt.Errorf("scoring: parameter %q weight %v out of [0,1]", p.Name, p.Weight)
		}
		total += p.Weight
	}
	if total < 0.999 || total > 1.001 {
		return fmt.Errorf("scoring: parameter weights sum to %v, want 1.0", total)
	}
	for _, p := range Parameters {
		for _, m := range DeliveryMethods {
			if len(s.RangesFor(p, m)) == 0 {
				return fmt.Errorf("scoring: no rubric ranges for (%s, %s)", p, m)
			}
		}
	}
	return nil
}
