package dly

import (
	"fmt"
	"strconv"
	"strings"
)

// Column identifies one of the five table columns.
type Column int8

const (
	ColYear Column = iota
	ColMonth
	ColDay
	ColElement
	ColValue
)

var columnNames = [...]string{"year", "month", "day", "element", "value"}

func (c Column) String() string {
	if c < ColYear || c > ColValue {
		return fmt.Sprintf("Column(%d)", int8(c))
	}
	return columnNames[c]
}

// ParseColumn maps a column name to its tag, so the stringly form only
// exists at the boundary.
func ParseColumn(name string) (Column, error) {
	for i, s := range columnNames {
		if s == name {
			return Column(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// Operator is the comparison a Filter performs.
type Operator int8

const (
	OpEq Operator = iota
	OpLt
	OpLte
	OpGt
	OpGte
)

var operatorNames = [...]string{"eq", "lt", "lte", "gt", "gte"}

func (o Operator) String() string {
	if o < OpEq || o > OpGte {
		return fmt.Sprintf("Operator(%d)", int8(o))
	}
	return operatorNames[o]
}

func ParseOperator(name string) (Operator, error) {
	for i, s := range operatorNames {
		if s == name {
			return Operator(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, name)
}

// Filter is an immutable predicate over a single column of a view. The zero
// value is not usable, construct with NewFilter or ParseFilter.
type Filter struct {
	column Column
	op     Operator
	number float64
	text   string
}

// NewFilter builds a predicate comparing the named column to a literal.
// The literal must be a string for the element column and a number for the
// other four. Construction fails before any data is touched.
func NewFilter(column Column, op Operator, literal any) (Filter, error) {
	if column < ColYear || column > ColValue {
		return Filter{}, fmt.Errorf("%w: %v", ErrUnknownColumn, column)
	}
	if op < OpEq || op > OpGte {
		return Filter{}, fmt.Errorf("%w: %v", ErrUnknownOperator, op)
	}

	f := Filter{column: column, op: op}
	if column == ColElement {
		text, ok := literal.(string)
		if !ok {
			return Filter{}, fmt.Errorf("column element requires a string literal, got %T", literal)
		}
		f.text = text
		return f, nil
	}

	switch v := literal.(type) {
	case int:
		f.number = float64(v)
	case int8:
		f.number = float64(v)
	case int16:
		f.number = float64(v)
	case int32:
		f.number = float64(v)
	case int64:
		f.number = float64(v)
	case float32:
		f.number = float64(v)
	case float64:
		f.number = v
	default:
		return Filter{}, fmt.Errorf("column %v requires a numeric literal, got %T", column, literal)
	}
	return f, nil
}

// ParseFilter builds a Filter from its "column:operator:literal" command line
// form, e.g. "year:gte:1900" or "element:eq:TMAX".
func ParseFilter(spec string) (Filter, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 {
		return Filter{}, fmt.Errorf("filter %q is not of the form 'column:operator:literal'", spec)
	}

	column, err := ParseColumn(parts[0])
	if err != nil {
		return Filter{}, err
	}
	op, err := ParseOperator(parts[1])
	if err != nil {
		return Filter{}, err
	}

	if column == ColElement {
		return NewFilter(column, op, parts[2])
	}
	number, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return Filter{}, fmt.Errorf("filter %q: literal %q is not numeric", spec, parts[2])
	}
	return NewFilter(column, op, number)
}

// Apply returns the subsequence of rows satisfying the predicate, in their
// original order. The input view is never mutated.
func (f Filter) Apply(view []DayRow) []DayRow {
	out := make([]DayRow, 0, len(view))
	for _, row := range view {
		if f.match(row) {
			out = append(out, row)
		}
	}
	return out
}

// ApplyAll applies filters left to right, each narrowing the previous view,
// so the result satisfies the conjunction of all predicates.
func ApplyAll(view []DayRow, filters []Filter) []DayRow {
	for _, f := range filters {
		view = f.Apply(view)
	}
	return view
}

func (f Filter) match(row DayRow) bool {
	switch f.column {
	case ColElement:
		return compareStrings(f.op, row.Element, f.text)
	case ColValue:
		// missing values never satisfy a value predicate
		if row.Value == nil {
			return false
		}
		return compareNumbers(f.op, float64(*row.Value), f.number)
	case ColMonth:
		return compareNumbers(f.op, float64(row.Month), f.number)
	case ColDay:
		return compareNumbers(f.op, float64(row.Day), f.number)
	default:
		return compareNumbers(f.op, float64(row.Year), f.number)
	}
}

func compareNumbers(op Operator, a, b float64) bool {
	switch op {
	case OpLt:
		return a < b
	case OpLte:
		return a <= b
	case OpGt:
		return a > b
	case OpGte:
		return a >= b
	default:
		return a == b
	}
}

func compareStrings(op Operator, a, b string) bool {
	switch op {
	case OpLt:
		return a < b
	case OpLte:
		return a <= b
	case OpGt:
		return a > b
	case OpGte:
		return a >= b
	default:
		return a == b
	}
}
