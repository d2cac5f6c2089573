package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Divo0/engineering-Program/internal/beam"
	"github.com/Divo0/engineering-Program/internal/loadexpr"
)

// distLoad pairs a constructed distributed load with its expression source,
// kept for report annotations.
type distLoad struct {
	load *beam.DistributedLoad
	expr string
}

// parsePointLoad parses a "position:magnitude" flag value.
func parsePointLoad(spec string) (beam.PointLoad, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return beam.PointLoad{}, fmt.Errorf("point load %q: expected position:magnitude", spec)
	}
	pos, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return beam.PointLoad{}, fmt.Errorf("point load %q: bad position: %v", spec, err)
	}
	mag, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return beam.PointLoad{}, fmt.Errorf("point load %q: bad magnitude: %v", spec, err)
	}
	return beam.PointLoad{Position: pos, Magnitude: mag}, nil
}

// parseDistLoad parses an "expr@start:end" flag value, compiles the intensity
// expression in the sandboxed evaluator, and constructs the distributed load.
// The expression is probed at the interval ends and midpoint so evaluation
// errors surface here rather than deep inside quadrature.
func parseDistLoad(spec string, length float64) (distLoad, error) {
	at := strings.LastIndex(spec, "@")
	if at < 0 {
		return distLoad{}, fmt.Errorf("distributed load %q: expected expr@start:end", spec)
	}
	src := strings.TrimSpace(spec[:at])
	bounds := strings.SplitN(spec[at+1:], ":", 2)
	if len(bounds) != 2 {
		return distLoad{}, fmt.Errorf("distributed load %q: expected expr@start:end", spec)
	}
	start, err := strconv.ParseFloat(strings.TrimSpace(bounds[0]), 64)
	if err != nil {
		return distLoad{}, fmt.Errorf("distributed load %q: bad start: %v", spec, err)
	}
	end, err := strconv.ParseFloat(strings.TrimSpace(bounds[1]), 64)
	if err != nil {
		return distLoad{}, fmt.Errorf("distributed load %q: bad end: %v", spec, err)
	}

	fn, err := loadexpr.Compile(src)
	if err != nil {
		return distLoad{}, err
	}
	for _, x := range []float64{start, (start + end) / 2, end} {
		if _, err := fn.Eval(x); err != nil {
			return distLoad{}, err
		}
	}

	dl, err := beam.NewDistributedLoad(fn.Intensity(), start, end, length)
	if err != nil {
		return distLoad{}, err
	}
	return distLoad{load: dl, expr: src}, nil
}

// buildModel assembles the validated beam model from raw flag values.
func buildModel(length float64, pointSpecs, distSpecs []string, supports []float64) (*beam.Model, []distLoad, error) {
	points := make([]beam.PointLoad, 0, len(pointSpecs))
	for _, spec := range pointSpecs {
		p, err := parsePointLoad(spec)
		if err != nil {
			return nil, nil, err
		}
		points = append(points, p)
	}

	dists := make([]distLoad, 0, len(distSpecs))
	loads := make([]*beam.DistributedLoad, 0, len(distSpecs))
	for _, spec := range distSpecs {
		dl, err := parseDistLoad(spec, length)
		if err != nil {
			return nil, nil, err
		}
		dists = append(dists, dl)
		loads = append(loads, dl.load)
	}

	sup := make([]beam.Support, 0, len(supports))
	for _, x := range supports {
		sup = append(sup, beam.Support{Position: x})
	}

	m, err := beam.NewModel(length, points, loads, sup)
	if err != nil {
		return nil, nil, err
	}
	return m, dists, nil
}
