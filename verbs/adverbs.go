package verbs

import (
	"github.com/gomix-k/gomix-k/optable"
	"github.com/gomix-k/gomix-k/value"
)

// invoke calls a callable child with args: a bare Verb goes straight through
// Apply, everything else (Lambda, Projection, a nested Adverb) goes through
// the Caller hook, which is how a user-defined function or another adverb
// reaches the evaluator without this package importing it.
func invoke(child value.Value, args []value.Value) (value.Value, *Kerr) {
	if v, ok := child.(value.Verb); ok {
		return Apply(v.Op, args)
	}
	return callValue(child, args)
}

// ApplyAdverb is the entry point the evaluator calls when a Call node's Fn
// evaluates to a value.Adverb: it dispatches on the adverb's Op plus the
// shape of its Child, the table spec.md §4.5 lays out (callable child →
// reduce/scan/map; Int child → decode/encode; Char child → join/split).
func ApplyAdverb(adv value.Adverb, args []value.Value) (value.Value, *Kerr) {
	switch adv.Op {
	case optable.Slash:
		if adv.EachRight {
			return eachRight(adv.Child, args)
		}
		return overOrDecodeOrJoin(adv.Child, args)
	case optable.Backslash:
		if adv.EachLeft {
			return eachLeft(adv.Child, args)
		}
		return scanOrEncodeOrSplit(adv.Child, args)
	case optable.Tick:
		return each(adv.Child, args)
	case optable.TickColon:
		return eachPrior(adv.Child, args)
	default:
		return value.Nil{}, ErrNYI
	}
}

func listArg(args []value.Value) (seed value.Value, hasSeed bool, list *value.Vector, err *Kerr) {
	switch len(args) {
	case 1:
		v, ok := args[0].(*value.Vector)
		if !ok {
			v = &value.Vector{Items: []value.Value{args[0]}}
		}
		return nil, false, v, nil
	case 2:
		v, ok := args[1].(*value.Vector)
		if !ok {
			v = &value.Vector{Items: []value.Value{args[1]}}
		}
		return args[0], true, v, nil
	default:
		return nil, false, nil, ErrRank
	}
}

// overOrDecodeOrJoin implements `/` when not used as each-right: a callable
// child reduces the list left to right (optionally seeded); an Int child
// decodes a list of digits in that uniform base; a Char child joins a list
// of char-vectors with that separator.
func overOrDecodeOrJoin(child value.Value, args []value.Value) (value.Value, *Kerr) {
	if base, ok := child.(value.Int); ok {
		return decode(base.I, args)
	}
	if sep, ok := child.(value.Char); ok {
		return joinFn(sep, args)
	}
	if sepVec, ok := child.(*value.Vector); ok && value.IsCharVector(sepVec) {
		return joinVecFn(sepVec, args)
	}
	seed, hasSeed, list, kerr := listArg(args)
	if kerr != nil {
		return value.Nil{}, kerr
	}
	if len(list.Items) == 0 {
		if hasSeed {
			return seed, nil
		}
		return value.Nil{}, nil
	}
	var acc value.Value
	start := 0
	if hasSeed {
		acc = seed
	} else {
		acc = list.Items[0]
		start = 1
	}
	for _, it := range list.Items[start:] {
		next, kerr := invoke(child, []value.Value{acc, it})
		if kerr != nil {
			return value.Nil{}, kerr
		}
		acc = next
	}
	return acc, nil
}

// scanOrEncodeOrSplit implements `\`: the running-total (scan) dual of
// overOrDecodeOrJoin — a callable child returns every intermediate
// accumulator instead of just the last; an Int child encodes a number as
// digits in that base; a Char child splits a char-vector on that separator.
func scanOrEncodeOrSplit(child value.Value, args []value.Value) (value.Value, *Kerr) {
	if base, ok := child.(value.Int); ok {
		if len(args) != 1 {
			return value.Nil{}, ErrRank
		}
		n, ok := args[0].(value.Int)
		if !ok {
			return value.Nil{}, ErrType
		}
		return encode(base.I, n.I), nil
	}
	if sep, ok := child.(value.Char); ok {
		return splitFn(sep, args)
	}
	if sepVec, ok := child.(*value.Vector); ok && value.IsCharVector(sepVec) {
		return splitVecFn(sepVec, args)
	}
	seed, hasSeed, list, kerr := listArg(args)
	if kerr != nil {
		return value.Nil{}, kerr
	}
	out := make([]value.Value, 0, len(list.Items)+1)
	var acc value.Value
	start := 0
	if hasSeed {
		acc = seed
	} else if len(list.Items) > 0 {
		acc = list.Items[0]
		start = 1
	} else {
		return &value.Vector{Items: out}, nil
	}
	out = append(out, acc)
	for _, it := range list.Items[start:] {
		next, kerr := invoke(child, []value.Value{acc, it})
		if kerr != nil {
			return value.Nil{}, kerr
		}
		acc = next
		out = append(out, acc)
	}
	return &value.Vector{Items: out}, nil
}

// decode folds a digit list into a single number using a uniform base,
// `acc = acc*base + digit` left to right — `10/1 2 3` reads "1 2 3" in
// base 10 and yields 123.
func decode(base int64, args []value.Value) (value.Value, *Kerr) {
	seed, hasSeed, list, kerr := listArg(args)
	if kerr != nil {
		return value.Nil{}, kerr
	}
	var acc int64
	if hasSeed {
		n, ok := seed.(value.Int)
		if !ok {
			return value.Nil{}, ErrType
		}
		acc = n.I
	}
	for _, it := range list.Items {
		d, ok := it.(value.Int)
		if !ok {
			return value.Nil{}, ErrType
		}
		acc = acc*base + d.I
	}
	return value.Int{I: acc}, nil
}

// encode is decode's inverse: repeatedly divides n by base, collecting
// remainders least-significant-first, then reverses — `10\123` yields
// `1 2 3`. n == 0 encodes as a single zero digit.
func encode(base, n int64) value.Value {
	if n == 0 {
		return &value.Vector{Items: []value.Value{value.Int{I: 0}}}
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []int64
	for n > 0 {
		digits = append(digits, n%base)
		n /= base
	}
	items := make([]value.Value, len(digits))
	for i, d := range digits {
		if neg {
			d = -d
		}
		items[len(digits)-1-i] = value.Int{I: d}
	}
	return &value.Vector{Items: items}
}

// joinFn is Over with a Char separator: concatenates a list of char-vectors
// with sep between each pair.
func joinFn(sep value.Char, args []value.Value) (value.Value, *Kerr) {
	return joinVecFn(&value.Vector{Items: []value.Value{sep}}, args)
}

func joinVecFn(sep *value.Vector, args []value.Value) (value.Value, *Kerr) {
	_, _, list, kerr := listArg(args)
	if kerr != nil {
		return value.Nil{}, kerr
	}
	out := []value.Value{}
	for i, it := range list.Items {
		if i > 0 {
			out = append(out, sep.Items...)
		}
		piece, ok := it.(*value.Vector)
		if !ok {
			out = append(out, it)
			continue
		}
		out = append(out, piece.Items...)
	}
	return &value.Vector{Items: out}, nil
}

// splitFn is Scan with a Char separator: breaks a single char-vector into
// the list of pieces between occurrences of sep.
func splitFn(sep value.Char, args []value.Value) (value.Value, *Kerr) {
	return splitVecFn(&value.Vector{Items: []value.Value{sep}}, args)
}

func splitVecFn(sep *value.Vector, args []value.Value) (value.Value, *Kerr) {
	if len(args) != 1 {
		return value.Nil{}, ErrRank
	}
	src, ok := args[0].(*value.Vector)
	if !ok {
		return value.Nil{}, ErrType
	}
	pieces := []value.Value{}
	cur := []value.Value{}
	n := len(sep.Items)
	for i := 0; i < len(src.Items); i++ {
		if n > 0 && i+n <= len(src.Items) && sliceMatches(src.Items[i:i+n], sep.Items) {
			pieces = append(pieces, &value.Vector{Items: cur})
			cur = []value.Value{}
			i += n - 1
			continue
		}
		cur = append(cur, src.Items[i])
	}
	pieces = append(pieces, &value.Vector{Items: cur})
	return &value.Vector{Items: pieces}, nil
}

func sliceMatches(a, b []value.Value) bool {
	for i := range a {
		if !matchValues(a[i], b[i]) {
			return false
		}
	}
	return true
}

// each implements `'`: unary maps child over one list's elements; binary
// zips two equal-length lists, calling child on each pair (`^length` on a
// mismatch, unless one side is a scalar, broadcast to every pair).
func each(child value.Value, args []value.Value) (value.Value, *Kerr) {
	switch len(args) {
	case 1:
		vec, ok := args[0].(*value.Vector)
		if !ok {
			return invoke(child, []value.Value{args[0]})
		}
		out := make([]value.Value, len(vec.Items))
		for i, it := range vec.Items {
			r, kerr := invoke(child, []value.Value{it})
			if kerr != nil {
				return value.Nil{}, kerr
			}
			out[i] = r
		}
		return &value.Vector{Items: out}, nil
	case 2:
		lv, lok := args[0].(*value.Vector)
		rv, rok := args[1].(*value.Vector)
		n := 0
		switch {
		case lok && rok:
			if len(lv.Items) != len(rv.Items) {
				return value.Nil{}, ErrLength
			}
			n = len(lv.Items)
		case lok:
			n = len(lv.Items)
		case rok:
			n = len(rv.Items)
		default:
			return invoke(child, args)
		}
		out := make([]value.Value, n)
		for i := 0; i < n; i++ {
			l := args[0]
			if lok {
				l = lv.Items[i]
			}
			r := args[1]
			if rok {
				r = rv.Items[i]
			}
			v, kerr := invoke(child, []value.Value{l, r})
			if kerr != nil {
				return value.Nil{}, kerr
			}
			out[i] = v
		}
		return &value.Vector{Items: out}, nil
	default:
		return value.Nil{}, ErrRank
	}
}

// eachRight implements `/:`: `x f/: y` calls `f[x;yᵢ]` for every element of
// y, holding x fixed.
func eachRight(child value.Value, args []value.Value) (value.Value, *Kerr) {
	if len(args) != 2 {
		return value.Nil{}, ErrRank
	}
	x := args[0]
	yv, ok := args[1].(*value.Vector)
	if !ok {
		return invoke(child, args)
	}
	out := make([]value.Value, len(yv.Items))
	for i, y := range yv.Items {
		v, kerr := invoke(child, []value.Value{x, y})
		if kerr != nil {
			return value.Nil{}, kerr
		}
		out[i] = v
	}
	return &value.Vector{Items: out}, nil
}

// eachLeft implements `\:`: `x f\: y` calls `f[xᵢ;y]` for every element of
// x, holding y fixed.
func eachLeft(child value.Value, args []value.Value) (value.Value, *Kerr) {
	if len(args) != 2 {
		return value.Nil{}, ErrRank
	}
	xv, ok := args[0].(*value.Vector)
	if !ok {
		return invoke(child, args)
	}
	y := args[1]
	out := make([]value.Value, len(xv.Items))
	for i, x := range xv.Items {
		v, kerr := invoke(child, []value.Value{x, y})
		if kerr != nil {
			return value.Nil{}, kerr
		}
		out[i] = v
	}
	return &value.Vector{Items: out}, nil
}

// eachPrior implements `':`: `f':x` calls `f[xᵢ;xᵢ₋₁]` for each i>0 and
// passes x[0] through unchanged for i==0 — the pairwise-consecutive pattern
// used for running differences (`-':x`) and the like. A seeded 2-arg call
// uses the seed as x[-1] instead of passing x[0] through.
func eachPrior(child value.Value, args []value.Value) (value.Value, *Kerr) {
	seed, hasSeed, list, kerr := listArg(args)
	if kerr != nil {
		return value.Nil{}, kerr
	}
	if len(list.Items) == 0 {
		return &value.Vector{Items: []value.Value{}}, nil
	}
	out := make([]value.Value, len(list.Items))
	start := 0
	if hasSeed {
		prev := seed
		for i, it := range list.Items {
			v, kerr := invoke(child, []value.Value{it, prev})
			if kerr != nil {
				return value.Nil{}, kerr
			}
			out[i] = v
			prev = it
		}
		return &value.Vector{Items: out}, nil
	}
	out[0] = list.Items[0]
	start = 1
	for i := start; i < len(list.Items); i++ {
		v, kerr := invoke(child, []value.Value{list.Items[i], list.Items[i-1]})
		if kerr != nil {
			return value.Nil{}, kerr
		}
		out[i] = v
	}
	return &value.Vector{Items: out}, nil
}
