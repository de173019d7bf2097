package verbs

import (
	"sort"

	"github.com/gomix-k/gomix-k/optable"
	"github.com/gomix-k/gomix-k/value"
)

func minScalar(l, r value.Value) (value.Value, *Kerr) {
	return scalarNumeric(l, r, func(a, b float64) float64 {
		if a < b {
			return a
		}
		return b
	})
}

func maxScalar(l, r value.Value) (value.Value, *Kerr) {
	return scalarNumeric(l, r, func(a, b float64) float64 {
		if a > b {
			return a
		}
		return b
	})
}

// orderLess compares two atoms under the language's order: Syms
// lexicographically by name, everything else numerically. A mismatch
// between a Sym and a numeric atom (or any other unordered pair) is a
// domain error, matching grade's "heterogeneous input" rule.
func orderLess(l, r value.Value) (bool, *Kerr) {
	ls, lSym := l.(value.Sym)
	rs, rSym := r.(value.Sym)
	if lSym && rSym {
		return ls.Name < rs.Name, nil
	}
	if lSym != rSym {
		return false, ErrDomain
	}
	lf, lok := toFloat(l)
	rf, rok := toFloat(r)
	if !lok || !rok {
		return false, ErrDomain
	}
	return lf < rf, nil
}

func lessScalar(l, r value.Value) (value.Value, *Kerr) {
	less, err := orderLess(l, r)
	if err != nil {
		return value.Nil{}, err
	}
	if less {
		return value.Int{I: 1}, nil
	}
	return value.Int{I: 0}, nil
}

func moreScalar(l, r value.Value) (value.Value, *Kerr) {
	less, err := orderLess(r, l)
	if err != nil {
		return value.Nil{}, err
	}
	if less {
		return value.Int{I: 1}, nil
	}
	return value.Int{I: 0}, nil
}

func notScalar(x value.Value) (value.Value, *Kerr) {
	f, ok := toFloat(x)
	if !ok {
		return value.Nil{}, ErrType
	}
	if f == 0 {
		return value.Int{I: 1}, nil
	}
	return value.Int{I: 0}, nil
}

// whereFn expands an Int-vector `v` into a flat Int-vector repeating each
// index i exactly v[i] times.
func whereFn(x value.Value) (value.Value, *Kerr) {
	vec, ok := x.(*value.Vector)
	if !ok {
		n, ok := x.(value.Int)
		if !ok {
			return value.Nil{}, ErrType
		}
		vec = &value.Vector{Items: []value.Value{n}}
	}
	items := []value.Value{}
	for i, it := range vec.Items {
		n, ok := it.(value.Int)
		if !ok {
			return value.Nil{}, ErrType
		}
		for j := int64(0); j < n.I; j++ {
			items = append(items, value.Int{I: int64(i)})
		}
	}
	return &value.Vector{Items: items}, nil
}

func reverseFn(x value.Value) (value.Value, *Kerr) {
	vec, ok := x.(*value.Vector)
	if !ok {
		return x, nil
	}
	out := make([]value.Value, len(vec.Items))
	for i, it := range vec.Items {
		out[len(vec.Items)-1-i] = it
	}
	return &value.Vector{Items: out}, nil
}

func grade(x value.Value, descending bool) (value.Value, *Kerr) {
	vec, ok := x.(*value.Vector)
	if !ok {
		return value.Nil{}, ErrType
	}
	idx := make([]int, len(vec.Items))
	for i := range idx {
		idx[i] = i
	}
	var domErr *Kerr
	sort.SliceStable(idx, func(a, b int) bool {
		x, y := vec.Items[idx[a]], vec.Items[idx[b]]
		if descending {
			x, y = y, x
		}
		less, err := orderLess(x, y)
		if err != nil {
			domErr = err
			return false
		}
		return less
	})
	if domErr != nil {
		return value.Nil{}, domErr
	}
	out := make([]value.Value, len(idx))
	for i, v := range idx {
		out[i] = value.Int{I: int64(v)}
	}
	return &value.Vector{Items: out}, nil
}

func gradeUp(x value.Value) (value.Value, *Kerr)   { return grade(x, false) }
func gradeDown(x value.Value) (value.Value, *Kerr) { return grade(x, true) }

// sortAscending is monadic `^`: grade-up applied to rearrange the vector
// itself rather than return the permutation.
func sortAscending(x value.Value) (value.Value, *Kerr) {
	vec, ok := x.(*value.Vector)
	if !ok {
		return value.Nil{}, ErrType
	}
	perm, err := gradeUp(vec)
	if err != nil {
		return value.Nil{}, err
	}
	pv := perm.(*value.Vector)
	out := make([]value.Value, len(pv.Items))
	for i, p := range pv.Items {
		out[i] = vec.Items[p.(value.Int).I]
	}
	return &value.Vector{Items: out}, nil
}

// group is monadic `=`: buckets a Vector's elements into a Dict of
// distinct value -> Int-vector of positions, hash-bucketed for candidate
// lookup and confirmed with matchValues to resolve collisions.
func group(x value.Value) (value.Value, *Kerr) {
	vec, ok := x.(*value.Vector)
	if !ok {
		return value.Nil{}, ErrType
	}
	type bucket struct {
		key   value.Value
		idxes []value.Value
	}
	buckets := map[uint64][]*bucket{}
	order := []*bucket{}
	for i, it := range vec.Items {
		h := hashValue(it)
		var b *bucket
		for _, cand := range buckets[h] {
			if matchValues(cand.key, it) {
				b = cand
				break
			}
		}
		if b == nil {
			b = &bucket{key: it}
			buckets[h] = append(buckets[h], b)
			order = append(order, b)
		}
		b.idxes = append(b.idxes, value.Int{I: int64(i)})
	}
	keys := make([]value.Value, len(order))
	vals := make([]value.Value, len(order))
	for i, b := range order {
		keys[i] = b.key
		vals[i] = &value.Vector{Items: b.idxes}
	}
	return &value.Dict{Keys: &value.Vector{Items: keys}, Values: &value.Vector{Items: vals}}, nil
}

func min_(l, r value.Value) (value.Value, *Kerr) { return broadcastBinary(l, r, minScalar) }
func max_(l, r value.Value) (value.Value, *Kerr) { return broadcastBinary(l, r, maxScalar) }
func lt(l, r value.Value) (value.Value, *Kerr)   { return broadcastBinary(l, r, lessScalar) }
func gt(l, r value.Value) (value.Value, *Kerr)   { return broadcastBinary(l, r, moreScalar) }
func eq(l, r value.Value) (value.Value, *Kerr)   { return broadcastBinary(l, r, matchScalar) }
func not_(x value.Value) (value.Value, *Kerr)    { return mapUnary(x, notScalar) }

func init() {
	registerUnary(optable.Amp, whereFn)
	registerBinary(optable.Amp, min_)
	registerUnary(optable.Bar, reverseFn)
	registerBinary(optable.Bar, max_)
	registerUnary(optable.Tilde, not_)
	registerBinary(optable.Tilde, matchScalar)
	registerUnary(optable.Less, gradeUp)
	registerBinary(optable.Less, lt)
	registerUnary(optable.More, gradeDown)
	registerBinary(optable.More, gt)
	registerUnary(optable.Equal, group)
	registerBinary(optable.Equal, eq)
	registerUnary(optable.Caret, sortAscending)
	registerBinary(optable.Caret, func(l, r value.Value) (value.Value, *Kerr) {
		return value.Nil{}, ErrNYI
	})
}
