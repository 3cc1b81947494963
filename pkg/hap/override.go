package hap

import "slices"

// Optional is an override facet: a value and whether it is present.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// Override providers. Typed accessors may implement any of these to supply
// override facets; absent interfaces mean the facet is not overridden.
type (
	MaxIntProvider interface {
		MaxInt() (int, bool)
	}
	MinIntProvider interface {
		MinInt() (int, bool)
	}
	MaxFloatProvider interface {
		MaxFloat() (float32, bool)
	}
	MinFloatProvider interface {
		MinFloat() (float32, bool)
	}
	ValidValuesProvider interface {
		ValidValues() ([]int, bool)
	}
)

// cloneValid returns a copy so later changes by the caller are not seen.
func cloneValid(values []int) []int {
	if values == nil {
		return []int{}
	}
	return slices.Clone(values)
}
