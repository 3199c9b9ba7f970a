package dly

import (
	"fmt"
	"sort"
)

// Elements stored in tenths of a degree Celsius on disk.
const (
	elemTmax = "TMAX"
	elemTmin = "TMIN"
)

type breakpoint struct {
	x, y float64
}

// Interpolate fills every missing value of the view by linear interpolation
// of value over the independent column, using the present rows as
// breakpoints. Points outside the breakpoint range are clamped to the
// nearest boundary value. The fill happens in place on the given view, which
// is also returned; callers must treat it as destructive.
//
// When adjustTempUnits is set, every TMAX and TMIN value (including freshly
// filled ones) is divided by 10 afterwards, converting the on-disk tenths of
// a degree to degrees Celsius. A view without those elements is a no-op for
// this step.
//
// Fails with ErrNoReferenceValues when the view holds no present rows to
// interpolate from, gaps or not.
func Interpolate(view []DayRow, independent Column, adjustTempUnits bool) ([]DayRow, error) {
	if independent == ColElement || independent == ColValue {
		return nil, fmt.Errorf("%w: %v cannot be the independent column", ErrUnknownColumn, independent)
	}

	var points []breakpoint
	var missing []int
	for i, row := range view {
		if row.Value == nil {
			missing = append(missing, i)
			continue
		}
		points = append(points, breakpoint{x: independentValue(row, independent), y: float64(*row.Value)})
	}

	// No present rows means there is nothing to interpolate against, even
	// when there are no gaps to fill (an empty view included).
	if len(points) == 0 {
		return nil, ErrNoReferenceValues
	}

	if len(missing) > 0 {
		// The breakpoints are already ascending for the usual day-ordered
		// single-month view, but nothing guarantees that for arbitrary
		// views, so sort defensively.
		sort.Slice(points, func(i, j int) bool { return points[i].x < points[j].x })

		for _, i := range missing {
			x := independentValue(view[i], independent)
			view[i].Value = addr(float32(interp(x, points)))
		}
	}

	if adjustTempUnits {
		rescaleElement(view, elemTmin, 10)
		rescaleElement(view, elemTmax, 10)
	}

	return view, nil
}

// interp is one-dimensional linear interpolation with clamping at both ends.
func interp(x float64, points []breakpoint) float64 {
	if x <= points[0].x {
		return points[0].y
	}
	if last := points[len(points)-1]; x >= last.x {
		return last.y
	}

	i := sort.Search(len(points), func(i int) bool { return points[i].x >= x })
	lo, hi := points[i-1], points[i]
	if hi.x == lo.x {
		return lo.y
	}
	return lo.y + (x-lo.x)/(hi.x-lo.x)*(hi.y-lo.y)
}

func independentValue(row DayRow, col Column) float64 {
	switch col {
	case ColMonth:
		return float64(row.Month)
	case ColDay:
		return float64(row.Day)
	default:
		return float64(row.Year)
	}
}

// rescaleElement divides the values of all rows of one element by factor.
// Fresh pointers are set so rows shared with an unfiltered view are not
// rescaled behind the caller's back.
func rescaleElement(view []DayRow, element string, factor float32) {
	for i := range view {
		if view[i].Element != element || view[i].Value == nil {
			continue
		}
		view[i].Value = addr(*view[i].Value / factor)
	}
}
