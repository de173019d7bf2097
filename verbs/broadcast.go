package verbs

import "github.com/gomix-k/gomix-k/value"

// broadcastBinary implements the conformance harness spec.md §4.6 assigns
// to the nine elementwise arithmetic/comparison verbs: recurse into a
// Dict's Values (keeping Keys untouched), zip two equal-length Vectors or
// broadcast a scalar across one, and fall back to the scalar op when
// neither side is a Vector or Dict.
func broadcastBinary(l, r value.Value, scalar BinaryFn) (value.Value, *Kerr) {
	if ld, ok := l.(*value.Dict); ok {
		nv, err := scalar2Vector(ld.Values, r, scalar)
		if err != nil {
			return value.Nil{}, err
		}
		return &value.Dict{Keys: ld.Keys, Values: nv}, nil
	}
	if rd, ok := r.(*value.Dict); ok {
		nv, err := scalar2Vector(l, rd.Values, scalar)
		if err != nil {
			return value.Nil{}, err
		}
		return &value.Dict{Keys: rd.Keys, Values: nv}, nil
	}
	return broadcastVectors(l, r, scalar)
}

// scalar2Vector applies broadcastVectors and type-asserts the result back
// to *value.Vector, which it always is when at least one side is a Dict's
// Values vector.
func scalar2Vector(l, r value.Value, scalar BinaryFn) (*value.Vector, *Kerr) {
	v, err := broadcastVectors(l, r, scalar)
	if err != nil {
		return nil, err
	}
	vec, ok := v.(*value.Vector)
	if !ok {
		vec = &value.Vector{Items: []value.Value{v}}
	}
	return vec, nil
}

func broadcastVectors(l, r value.Value, scalar BinaryFn) (value.Value, *Kerr) {
	lv, lIsVec := l.(*value.Vector)
	rv, rIsVec := r.(*value.Vector)
	switch {
	case lIsVec && rIsVec:
		if len(lv.Items) != len(rv.Items) {
			return value.Nil{}, ErrLength
		}
		out := make([]value.Value, len(lv.Items))
		for i := range lv.Items {
			v, err := scalar(lv.Items[i], rv.Items[i])
			if err != nil {
				return value.Nil{}, err
			}
			out[i] = v
		}
		return &value.Vector{Items: out}, nil
	case lIsVec:
		out := make([]value.Value, len(lv.Items))
		for i := range lv.Items {
			v, err := scalar(lv.Items[i], r)
			if err != nil {
				return value.Nil{}, err
			}
			out[i] = v
		}
		return &value.Vector{Items: out}, nil
	case rIsVec:
		out := make([]value.Value, len(rv.Items))
		for i := range rv.Items {
			v, err := scalar(l, rv.Items[i])
			if err != nil {
				return value.Nil{}, err
			}
			out[i] = v
		}
		return &value.Vector{Items: out}, nil
	default:
		return scalar(l, r)
	}
}

// mapUnary applies an elementwise scalar unary op (negate, sqrt, not) the
// same way broadcastBinary does for binary ops: recurse through a Dict's
// Values, map over a Vector's items, or apply directly to an atom.
func mapUnary(x value.Value, scalar UnaryFn) (value.Value, *Kerr) {
	if d, ok := x.(*value.Dict); ok {
		nv, err := mapUnary(d.Values, scalar)
		if err != nil {
			return value.Nil{}, err
		}
		vec, ok := nv.(*value.Vector)
		if !ok {
			vec = &value.Vector{Items: []value.Value{nv}}
		}
		return &value.Dict{Keys: d.Keys, Values: vec}, nil
	}
	if v, ok := x.(*value.Vector); ok {
		out := make([]value.Value, len(v.Items))
		for i, it := range v.Items {
			r, err := scalar(it)
			if err != nil {
				return value.Nil{}, err
			}
			out[i] = r
		}
		return &value.Vector{Items: out}, nil
	}
	return scalar(x)
}
