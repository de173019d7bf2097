package verbs

import (
	"math"

	"github.com/gomix-k/gomix-k/optable"
	"github.com/gomix-k/gomix-k/value"
)

// toFloat widens any numeric atom (Int, Float, Char, ±Inf) to a float64 for
// scalar arithmetic; ok is false for a non-numeric operand (^type).
func toFloat(v value.Value) (float64, bool) {
	switch t := v.(type) {
	case value.Int:
		return float64(t.I), true
	case value.Float:
		return t.F, true
	case value.Char:
		return float64(t.C), true
	case value.PInf:
		return math.Inf(1), true
	case value.NInf:
		return math.Inf(-1), true
	}
	return 0, false
}

// isExactInt reports whether v's numeric type carries no fractional part
// by construction, so an arithmetic result computed from two such operands
// should stay an Int rather than getting promoted to Float.
func isExactInt(v value.Value) bool {
	switch v.(type) {
	case value.Int, value.Char:
		return true
	}
	return false
}

// fromFloat narrows a computed float64 back to the narrowest atom that
// represents it: ±Inf collapses to PInf/NInf, otherwise Int when both
// source operands were exact and Float when either was a Float — "Float
// dominates" per spec.md §4.6.
func fromFloat(f float64, wantInt bool) value.Value {
	if math.IsInf(f, 1) {
		return value.PInf{}
	}
	if math.IsInf(f, -1) {
		return value.NInf{}
	}
	if wantInt {
		return value.Int{I: int64(f)}
	}
	return value.Float{F: f}
}

func scalarNumeric(l, r value.Value, op func(a, b float64) float64) (value.Value, *Kerr) {
	lf, lok := toFloat(l)
	rf, rok := toFloat(r)
	if !lok || !rok {
		return value.Nil{}, ErrType
	}
	return fromFloat(op(lf, rf), isExactInt(l) && isExactInt(r)), nil
}

func addScalar(l, r value.Value) (value.Value, *Kerr) {
	return scalarNumeric(l, r, func(a, b float64) float64 { return a + b })
}

func subScalar(l, r value.Value) (value.Value, *Kerr) {
	return scalarNumeric(l, r, func(a, b float64) float64 { return a - b })
}

func mulScalar(l, r value.Value) (value.Value, *Kerr) {
	return scalarNumeric(l, r, func(a, b float64) float64 { return a * b })
}

// divScalar always yields Float, treating division by zero as signed
// infinity rather than a domain error, per spec.md §4.6.
func divScalar(l, r value.Value) (value.Value, *Kerr) {
	lf, lok := toFloat(l)
	rf, rok := toFloat(r)
	if !lok || !rok {
		return value.Nil{}, ErrType
	}
	if rf == 0 {
		if lf < 0 {
			return value.NInf{}, nil
		}
		return value.PInf{}, nil
	}
	return fromFloat(lf/rf, false), nil
}

func negateScalar(x value.Value) (value.Value, *Kerr) {
	f, ok := toFloat(x)
	if !ok {
		return value.Nil{}, ErrType
	}
	return fromFloat(-f, isExactInt(x)), nil
}

// sqrtScalar is monadic `%`. A negative operand is a domain error, mirroring
// spec.md §7's `^domain` illustration.
func sqrtScalar(x value.Value) (value.Value, *Kerr) {
	f, ok := toFloat(x)
	if !ok {
		return value.Nil{}, ErrType
	}
	if f < 0 {
		return value.Nil{}, ErrDomain
	}
	return value.Float{F: math.Sqrt(f)}, nil
}

func add(l, r value.Value) (value.Value, *Kerr)  { return broadcastBinary(l, r, addScalar) }
func sub(l, r value.Value) (value.Value, *Kerr)  { return broadcastBinary(l, r, subScalar) }
func mul(l, r value.Value) (value.Value, *Kerr)  { return broadcastBinary(l, r, mulScalar) }
func div(l, r value.Value) (value.Value, *Kerr)  { return broadcastBinary(l, r, divScalar) }
func negate(x value.Value) (value.Value, *Kerr)  { return mapUnary(x, negateScalar) }
func sqrtFn(x value.Value) (value.Value, *Kerr)  { return mapUnary(x, sqrtScalar) }

func init() {
	registerUnary(optable.Minus, negate)
	registerUnary(optable.Percent, sqrtFn)
	unaryMath := func(fn func(float64) float64, keepInt bool) UnaryFn {
		return func(x value.Value) (value.Value, *Kerr) {
			return mapUnary(x, func(a value.Value) (value.Value, *Kerr) {
				f, ok := toFloat(a)
				if !ok {
					return value.Nil{}, ErrType
				}
				return fromFloat(fn(f), keepInt && isExactInt(a)), nil
			})
		}
	}
	registerUnary(optable.Sin, unaryMath(math.Sin, false))
	registerUnary(optable.Cos, unaryMath(math.Cos, false))
	registerUnary(optable.Abs, unaryMath(math.Abs, true))
	registerBinary(optable.Plus, add)
	registerBinary(optable.Minus, sub)
	registerBinary(optable.Star, mul)
	registerBinary(optable.Percent, div)
}
