package domain

import (
	"errors"
	"fmt"
	"math"
)

// Comparator is the relation a rule checks between a reading value and its
// threshold.
type Comparator string

// Comparator constants.
const (
	CompareGT Comparator = "GT"
	CompareLT Comparator = "LT"
	CompareGE Comparator = "GE"
	CompareLE Comparator = "LE"
	CompareEQ Comparator = "EQ"
)

// Comparison errors. A rule that hits one of these does not fire.
var (
	ErrUnknownComparator = errors.New("unknown comparator")
	ErrNonFiniteOperand  = errors.New("non-finite operand")
)

// Valid reports whether the comparator is a known value.
func (c Comparator) Valid() bool {
	switch c {
	case CompareGT, CompareLT, CompareGE, CompareLE, CompareEQ:
		return true
	default:
		return false
	}
}

// Symbol returns the mathematical symbol for the comparator.
func (c Comparator) Symbol() string {
	switch c {
	case CompareGT:
		return ">"
	case CompareLT:
		return "<"
	case CompareGE:
		return ">="
	case CompareLE:
		return "<="
	case CompareEQ:
		return "=="
	default:
		return "?"
	}
}

// Compare evaluates value <c> threshold. Operands that are NaN or infinite
// and unknown comparators yield an error instead of a result.
func (c Comparator) Compare(value, threshold float64) (bool, error) {
	if !isFinite(value) || !isFinite(threshold) {
		return false, fmt.Errorf("%w: value=%v threshold=%v", ErrNonFiniteOperand, value, threshold)
	}

	switch c {
	case CompareGT:
		return value > threshold, nil
	case CompareLT:
		return value < threshold, nil
	case CompareGE:
		return value >= threshold, nil
	case CompareLE:
		return value <= threshold, nil
	case CompareEQ:
		return value == threshold, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownComparator, string(c))
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
