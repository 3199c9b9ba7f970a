package dly

import (
	"errors"
	"math"
	"testing"
)

// aprilTmax is the 30-row single-element view the interpolation cases use:
// day 1 holds 56 (tenths of a degree), day 3 is missing.
func aprilTmax(t *testing.T) []DayRow {
	t.Helper()

	view := ApplyAll(loadTestFile(t, LoadOptions{}).Rows(), []Filter{
		mustFilter(t, ColYear, OpEq, 1950),
		mustFilter(t, ColMonth, OpEq, 4),
		mustFilter(t, ColElement, OpEq, "TMAX"),
	})

	if len(view) != 30 {
		t.Fatalf("Got %v rows, wanted 30", len(view))
	}
	if view[2].Value != nil {
		t.Fatal("Day 3 should be missing before interpolation")
	}
	if view[0].Value == nil || *view[0].Value != 56 {
		t.Fatal("Day 1 should hold the raw value 56")
	}
	return view
}

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestInterpolate(t *testing.T) {
	view, err := Interpolate(aprilTmax(t), ColDay, true)
	if err != nil {
		t.Fatal(err)
	}

	if view[2].Value == nil {
		t.Fatal("Day 3 should have been filled")
	}
	// linear between day 2 (60) and day 4 (80), then divided by 10
	if !approxEqual(*view[2].Value, 7.0) {
		t.Errorf("Got %v, wanted 7.0", *view[2].Value)
	}
	if !approxEqual(*view[0].Value, 5.6) {
		t.Errorf("Got %v, wanted 5.6", *view[0].Value)
	}
}

func TestInterpolateRawUnits(t *testing.T) {
	view, err := Interpolate(aprilTmax(t), ColDay, false)
	if err != nil {
		t.Fatal(err)
	}

	if !approxEqual(*view[0].Value, 56) {
		t.Errorf("Got %v, wanted 56", *view[0].Value)
	}
	if !approxEqual(*view[2].Value, 70) {
		t.Errorf("Got %v, wanted 70", *view[2].Value)
	}
}

func TestInterpolateMutatesView(t *testing.T) {
	view := aprilTmax(t)
	if _, err := Interpolate(view, ColDay, true); err != nil {
		t.Fatal(err)
	}

	// the caller's reference observes the fill, per the destructive contract
	if view[2].Value == nil {
		t.Error("The given view should observe the gap fill")
	}
}

func TestInterpolateClamping(t *testing.T) {
	view := []DayRow{
		{Day: 1, Element: "PRCP", Value: nil},
		{Day: 2, Element: "PRCP", Value: addr(float32(10))},
		{Day: 3, Element: "PRCP", Value: addr(float32(20))},
		{Day: 4, Element: "PRCP", Value: nil},
	}

	view, err := Interpolate(view, ColDay, true)
	if err != nil {
		t.Fatal(err)
	}

	// outside the breakpoint range the boundary value is used
	if *view[0].Value != 10 {
		t.Errorf("Got %v, wanted 10", *view[0].Value)
	}
	if *view[3].Value != 20 {
		t.Errorf("Got %v, wanted 20", *view[3].Value)
	}
}

func TestInterpolateUnsortedView(t *testing.T) {
	// breakpoints deliberately out of day order
	view := []DayRow{
		{Day: 9, Element: "PRCP", Value: addr(float32(90))},
		{Day: 1, Element: "PRCP", Value: addr(float32(10))},
		{Day: 5, Element: "PRCP", Value: nil},
	}

	view, err := Interpolate(view, ColDay, false)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(*view[2].Value, 50) {
		t.Errorf("Got %v, wanted 50", *view[2].Value)
	}
}

func TestInterpolateNoReferenceValues(t *testing.T) {
	// a view with no present rows has nothing to interpolate against,
	// whether it has gaps or is empty altogether
	cases := []struct {
		name string
		view []DayRow
	}{
		{"all missing", []DayRow{
			{Day: 1, Element: "TMAX", Value: nil},
			{Day: 2, Element: "TMAX", Value: nil},
		}},
		{"empty view", []DayRow{}},
	}

	for _, c := range cases {
		if _, err := Interpolate(c.view, ColDay, true); !errors.Is(err, ErrNoReferenceValues) {
			t.Errorf("%s: got %v, wanted ErrNoReferenceValues", c.name, err)
		}
	}
}

func TestInterpolateBadIndependentColumn(t *testing.T) {
	if _, err := Interpolate([]DayRow{}, ColElement, true); err == nil {
		t.Error("Expected an error for the element column")
	}
	if _, err := Interpolate([]DayRow{}, ColValue, true); err == nil {
		t.Error("Expected an error for the value column")
	}
}

func TestInterpolateAdjustsOnlyTemperatureElements(t *testing.T) {
	view := []DayRow{
		{Day: 1, Element: "PRCP", Value: addr(float32(100))},
		{Day: 2, Element: "TMIN", Value: addr(float32(100))},
		{Day: 3, Element: "SNOW", Value: addr(float32(100))},
	}

	view, err := Interpolate(view, ColDay, true)
	if err != nil {
		t.Fatal(err)
	}

	if *view[0].Value != 100 || *view[2].Value != 100 {
		t.Error("Non-temperature elements should be left alone")
	}
	if *view[1].Value != 10 {
		t.Errorf("Got %v, wanted 10", *view[1].Value)
	}
}
