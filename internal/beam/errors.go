package beam

import "fmt"

// IntervalError reports malformed distributed-load bounds.
type IntervalError struct {
	Start  float64
	End    float64
	Length float64
}

func (e *IntervalError) Error() string {
	if e.Start > e.End {
		return fmt.Sprintf("invalid load interval: start=%.4g > end=%.4g", e.Start, e.End)
	}
	return fmt.Sprintf("load interval [%.4g, %.4g] outside beam [0, %.4g]", e.Start, e.End, e.Length)
}

// DegenerateLoadError reports a distributed load whose resultant force is
// numerically zero, leaving its centroid undefined.
type DegenerateLoadError struct {
	Start float64
	End   float64
}

func (e *DegenerateLoadError) Error() string {
	return fmt.Sprintf("distributed load over [%.4g, %.4g] has zero resultant force; centroid is undefined", e.Start, e.End)
}

// SupportError reports a support configuration that does not yield a
// statically determinate system: anything other than exactly two distinct
// support positions.
type SupportError struct {
	Count int
	X1    float64
	X2    float64
}

func (e *SupportError) Error() string {
	if e.Count != 2 {
		return fmt.Sprintf("statically determinate solution requires exactly 2 supports, got %d", e.Count)
	}
	return fmt.Sprintf("supports coincide at x=%.4g: system is singular", e.X1)
}

// RangeError reports an internal-force query outside the beam.
type RangeError struct {
	X      float64
	Length float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("query position x=%.4g outside beam [0, %.4g]", e.X, e.Length)
}
