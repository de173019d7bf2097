package eval

import (
	"github.com/gomix-k/gomix-k/ast"
	"github.com/gomix-k/gomix-k/value"
	"github.com/gomix-k/gomix-k/verbs"
)

// evalCall handles every `f[...]`/`v[...]` shape: Fn is evaluated first,
// then every Arg, then dispatched by callValue — indexing and calling
// share this one AST node because in this language indexing IS calling,
// with the indexed Vector/Dict acting as its own callable.
func (e *Evaluator) evalCall(n *ast.Call) (value.Value, *verbs.Kerr) {
	fn, err := e.Eval(n.Fn)
	if err != nil {
		return value.Nil{}, err
	}
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.Eval(a)
		if err != nil {
			return value.Nil{}, err
		}
		args[i] = v
	}
	return e.callValue(fn, args)
}

// callValue is the single call-dispatch point shared by evalCall and the
// verbs.Caller hook (drop's predicate filter, every adverb combinator
// reach user callables through it).
func (e *Evaluator) callValue(fn value.Value, args []value.Value) (value.Value, *verbs.Kerr) {
	switch t := fn.(type) {
	case value.Verb:
		return verbs.Apply(t.Op, args)
	case value.Adverb:
		return verbs.ApplyAdverb(t, args)
	case *value.Lambda:
		return e.callArity(t, t.Params, args)
	case *value.Projection:
		return e.callProjection(t, args)
	case *value.Vector, *value.Dict:
		cur := fn
		for _, a := range args {
			v, err := indexValue(cur, a)
			if err != nil {
				return value.Nil{}, err
			}
			cur = v
		}
		return cur, nil
	default:
		// An atom indexed by anything behaves as an infinite vector of
		// itself: x[i] on a scalar always returns x.
		if len(args) > 0 {
			return fn, nil
		}
		return value.Nil{}, verbs.ErrType
	}
}

// callArity invokes lam if args fills every parameter exactly, or builds a
// Projection when fewer are supplied — under-supplying a call is how a
// partial application is written, e.g. `f:{x+y}; add1:f[1]`. Over-supplying
// is `^rank`.
func (e *Evaluator) callArity(lam *value.Lambda, params []string, args []value.Value) (value.Value, *verbs.Kerr) {
	if len(args) > len(params) {
		return value.Nil{}, verbs.ErrRank
	}
	if len(args) < len(params) {
		return &value.Projection{Underlying: lam, Args: append([]value.Value{}, args...), Arity: len(params)}, nil
	}
	e.Env.Push()
	for i, p := range params {
		e.Env.Set(p, args[i])
	}
	result, err := e.evalBody(lam.Body)
	e.Env.Pop()
	if err == nil && !lam.HasReturn {
		return value.Nil{}, nil
	}
	return result, err
}

func (e *Evaluator) callProjection(p *value.Projection, args []value.Value) (value.Value, *verbs.Kerr) {
	combined := append(append([]value.Value{}, p.Args...), args...)
	if len(combined) > p.Arity {
		return value.Nil{}, verbs.ErrRank
	}
	if len(combined) < p.Arity {
		return &value.Projection{Underlying: p.Underlying, Args: combined, Arity: p.Arity}, nil
	}
	return e.callValue(p.Underlying, combined)
}

func (e *Evaluator) evalBody(body []ast.Node) (value.Value, *verbs.Kerr) {
	var last value.Value = value.Nil{}
	for _, expr := range body {
		v, err := e.Eval(expr)
		if err != nil {
			return value.Nil{}, err
		}
		last = v
	}
	return last, nil
}

// indexValue is the read side of indexing: a Vector index maps over
// itself elementwise (`v[1 2]` reads two elements at once); an
// out-of-range Int index into a Vector reads as `Int 0` rather than
// erroring (DESIGN.md Open Question 1); a Dict is looked up by matching
// key, Nil on a miss; any other value (an atom) broadcasts to itself
// regardless of index, the same convention the broadcast harness uses.
func indexValue(v value.Value, idx value.Value) (value.Value, *verbs.Kerr) {
	if iv, ok := idx.(*value.Vector); ok {
		out := make([]value.Value, len(iv.Items))
		for i, it := range iv.Items {
			r, err := indexValue(v, it)
			if err != nil {
				return value.Nil{}, err
			}
			out[i] = r
		}
		return &value.Vector{Items: out}, nil
	}
	switch t := v.(type) {
	case *value.Vector:
		i, ok := idx.(value.Int)
		if !ok {
			return value.Nil{}, verbs.ErrType
		}
		if i.I < 0 || i.I >= int64(len(t.Items)) {
			return value.Int{I: 0}, nil
		}
		return t.Items[i.I], nil
	case *value.Dict:
		for i, k := range t.Keys.Items {
			if verbs.Match(k, idx) {
				return t.Values.Items[i], nil
			}
		}
		return value.Nil{}, nil
	default:
		return v, nil
	}
}
