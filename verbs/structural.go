package verbs

import (
	"github.com/gomix-k/gomix-k/optable"
	"github.com/gomix-k/gomix-k/value"
)

// countFn is monadic `#`: atoms count as 1, Nil as 0, Vector/Dict as their
// length.
func countFn(x value.Value) (value.Value, *Kerr) {
	switch t := x.(type) {
	case value.Nil:
		return value.Int{I: 0}, nil
	case *value.Vector:
		return value.Int{I: int64(len(t.Items))}, nil
	case *value.Dict:
		return value.Int{I: int64(len(t.Keys.Items))}, nil
	default:
		return value.Int{I: 1}, nil
	}
}

func asVector(x value.Value) *value.Vector {
	if v, ok := x.(*value.Vector); ok {
		return v
	}
	return &value.Vector{Items: []value.Value{x}}
}

// takeFn is dyadic `#`: an Int reshapes its right operand cyclically to
// the requested length (negative counts from the end); an Int-vector of
// dims reshapes recursively, chunking a flat cyclic take of length ∏dims.
func takeFn(l, r value.Value) (value.Value, *Kerr) {
	src := asVector(r).Items
	if len(src) == 0 {
		src = []value.Value{value.Int{I: 0}}
	}
	if n, ok := l.(value.Int); ok {
		return &value.Vector{Items: cyclicTake(src, n.I)}, nil
	}
	dimsVec, ok := l.(*value.Vector)
	if !ok {
		return value.Nil{}, ErrType
	}
	dims := make([]int64, len(dimsVec.Items))
	total := int64(1)
	for i, d := range dimsVec.Items {
		n, ok := d.(value.Int)
		if !ok {
			return value.Nil{}, ErrType
		}
		dim := n.I
		if dim < 0 {
			dim = 0
		}
		dims[i] = dim
		total *= dim
	}
	flat := cyclicTake(src, total)
	return reshape(flat, dims), nil
}

// cyclicTake builds a flat slice of length |n|, repeating src cyclically;
// a negative n takes the trailing |n| elements of the infinite cyclic
// repetition instead of the leading ones.
func cyclicTake(src []value.Value, n int64) []value.Value {
	count := n
	if count < 0 {
		count = -count
	}
	out := make([]value.Value, count)
	if n >= 0 {
		for i := int64(0); i < count; i++ {
			out[i] = src[i%int64(len(src))]
		}
		return out
	}
	for i := int64(0); i < count; i++ {
		offset := count - 1 - i
		idx := (int64(len(src)) - 1 - offset%int64(len(src)) + int64(len(src))) % int64(len(src))
		out[i] = src[idx]
	}
	return out
}

// reshape chunks a flat slice into nested Vectors per dims, outermost
// dimension first.
func reshape(flat []value.Value, dims []int64) value.Value {
	if len(dims) <= 1 {
		return &value.Vector{Items: flat}
	}
	chunkLen := 1
	for _, d := range dims[1:] {
		chunkLen *= int(d)
	}
	items := make([]value.Value, dims[0])
	for i := range items {
		items[i] = reshape(flat[i*chunkLen:(i+1)*chunkLen], dims[1:])
	}
	return &value.Vector{Items: items}
}

// floorScalar is the per-atom step of monadic `_` (floorFn): floor on
// numbers, ASCII lowercase on Char.
func floorScalar(x value.Value) (value.Value, *Kerr) {
	if c, ok := x.(value.Char); ok {
		if c.C >= 'A' && c.C <= 'Z' {
			return value.Char{C: c.C + ('a' - 'A')}, nil
		}
		return c, nil
	}
	f, ok := toFloat(x)
	if !ok {
		return value.Nil{}, ErrType
	}
	return fromFloat(floor(f), true), nil
}

func floor(f float64) float64 {
	i := int64(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return float64(i)
}

func floorFn(x value.Value) (value.Value, *Kerr) { return mapUnary(x, floorScalar) }

// dropFn is dyadic `_`: an Int chops from the front (positive) or back
// (negative); an Int-vector removes every element matching any listed
// value; a callable filters, keeping elements the predicate calls falsy.
func dropFn(l, r value.Value) (value.Value, *Kerr) {
	vec, ok := r.(*value.Vector)
	if !ok {
		return value.Nil{}, ErrType
	}
	if n, ok := l.(value.Int); ok {
		count := n.I
		size := int64(len(vec.Items))
		switch {
		case count >= 0:
			if count > size {
				count = size
			}
			return &value.Vector{Items: append([]value.Value{}, vec.Items[count:]...)}, nil
		default:
			count = -count
			if count > size {
				count = size
			}
			return &value.Vector{Items: append([]value.Value{}, vec.Items[:size-count]...)}, nil
		}
	}
	if excl, ok := l.(*value.Vector); ok {
		out := []value.Value{}
		for _, it := range vec.Items {
			drop := false
			for _, e := range excl.Items {
				if matchValues(e, it) {
					drop = true
					break
				}
			}
			if !drop {
				out = append(out, it)
			}
		}
		return &value.Vector{Items: out}, nil
	}
	if value.Callable(l) {
		out := []value.Value{}
		for _, it := range vec.Items {
			res, err := callValue(l, []value.Value{it})
			if err != nil {
				return value.Nil{}, err
			}
			f, _ := toFloat(res)
			if f == 0 {
				out = append(out, it)
			}
		}
		return &value.Vector{Items: out}, nil
	}
	return value.Nil{}, ErrType
}

// enumFn is monadic `!`: a non-negative Int n yields `0..n-1`; a negative
// Int yields the |n|x|n| identity matrix; a Vector of dims yields the
// Cartesian axis-index rows (one row per axis, each of length ∏dims).
func enumFn(x value.Value) (value.Value, *Kerr) {
	if n, ok := x.(value.Int); ok {
		if n.I >= 0 {
			items := make([]value.Value, n.I)
			for i := range items {
				items[i] = value.Int{I: int64(i)}
			}
			return &value.Vector{Items: items}, nil
		}
		size := -n.I
		rows := make([]value.Value, size)
		for i := int64(0); i < size; i++ {
			row := make([]value.Value, size)
			for j := int64(0); j < size; j++ {
				if i == j {
					row[j] = value.Int{I: 1}
				} else {
					row[j] = value.Int{I: 0}
				}
			}
			rows[i] = &value.Vector{Items: row}
		}
		return &value.Vector{Items: rows}, nil
	}
	dimsVec, ok := x.(*value.Vector)
	if !ok {
		return value.Nil{}, ErrType
	}
	dims := make([]int64, len(dimsVec.Items))
	total := int64(1)
	for i, d := range dimsVec.Items {
		n, ok := d.(value.Int)
		if !ok {
			return value.Nil{}, ErrType
		}
		dims[i] = n.I
		total *= n.I
	}
	axes := make([]value.Value, len(dims))
	stride := int64(1)
	strides := make([]int64, len(dims))
	for i := len(dims) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= dims[i]
	}
	for a := range dims {
		row := make([]value.Value, total)
		for p := int64(0); p < total; p++ {
			row[p] = value.Int{I: (p / strides[a]) % dims[a]}
		}
		axes[a] = &value.Vector{Items: row}
	}
	return &value.Vector{Items: axes}, nil
}

// keyFn is dyadic `!`: pairs two equal-length atom-only vectors into a
// Dict.
func keyFn(l, r value.Value) (value.Value, *Kerr) {
	lv, lok := l.(*value.Vector)
	rv, rok := r.(*value.Vector)
	if !lok || !rok {
		return value.Nil{}, ErrType
	}
	if len(lv.Items) != len(rv.Items) {
		return value.Nil{}, ErrLength
	}
	return &value.Dict{Keys: lv, Values: rv}, nil
}

// flipFn is monadic `+`: transposes a Vector-of-equal-length-Vectors; an
// atom or a Vector of atoms flips to itself.
func flipFn(x value.Value) (value.Value, *Kerr) {
	vec, ok := x.(*value.Vector)
	if !ok {
		return x, nil
	}
	if len(vec.Items) == 0 {
		return vec, nil
	}
	first, ok := vec.Items[0].(*value.Vector)
	if !ok {
		return vec, nil
	}
	n := len(first.Items)
	for _, row := range vec.Items {
		rv, ok := row.(*value.Vector)
		if !ok || len(rv.Items) != n {
			return value.Nil{}, ErrLength
		}
	}
	out := make([]value.Value, n)
	for i := 0; i < n; i++ {
		col := make([]value.Value, len(vec.Items))
		for j, row := range vec.Items {
			col[j] = row.(*value.Vector).Items[i]
		}
		out[i] = &value.Vector{Items: col}
	}
	return &value.Vector{Items: out}, nil
}

// firstFn is monadic `*`: the first element of a Vector (Nil if empty), or
// the atom itself.
func firstFn(x value.Value) (value.Value, *Kerr) {
	vec, ok := x.(*value.Vector)
	if !ok {
		return x, nil
	}
	if len(vec.Items) == 0 {
		return value.Nil{}, nil
	}
	return vec.Items[0], nil
}

// enlistFn is monadic `,`: wraps x in a new 1-element Vector.
func enlistFn(x value.Value) (value.Value, *Kerr) {
	return &value.Vector{Items: []value.Value{x}}, nil
}

// concatFn is dyadic `,`: appends r's elements (or r itself, if an atom)
// after l's.
func concatFn(l, r value.Value) (value.Value, *Kerr) {
	out := append([]value.Value{}, asVector(l).Items...)
	out = append(out, asVector(r).Items...)
	return &value.Vector{Items: out}, nil
}

func init() {
	registerUnary(optable.Hash, countFn)
	registerBinary(optable.Hash, takeFn)
	registerUnary(optable.Underscore, floorFn)
	registerBinary(optable.Underscore, dropFn)
	registerUnary(optable.Bang, enumFn)
	registerBinary(optable.Bang, keyFn)
	registerUnary(optable.Plus, flipFn)
	registerUnary(optable.Star, firstFn) // binary Star (mul) is registered in numeric.go's init
	registerUnary(optable.Comma, enlistFn)
	registerBinary(optable.Comma, concatFn)
}
