package eval

import (
	"github.com/gomix-k/gomix-k/ast"
	"github.com/gomix-k/gomix-k/value"
	"github.com/gomix-k/gomix-k/verbs"
)

// evalAssign handles both `name:rhs` and indexed `name[i]:rhs`/
// `name[i;j]:rhs`. A bare assign just binds in the current frame (the
// global frame outside a lambda call); an indexed assign reads the
// existing binding, mutates a path through it, and rebinds the result.
func (e *Evaluator) evalAssign(n *ast.Assign) (value.Value, *verbs.Kerr) {
	rhs, err := e.Eval(n.Value)
	if err != nil {
		return value.Nil{}, err
	}
	if len(n.Index) == 0 {
		e.Env.Set(n.Name, rhs)
		return rhs, nil
	}
	cur, ok := e.Env.Get(n.Name)
	if !ok {
		return value.Nil{}, verbs.ErrVar
	}
	updated, err := e.setIndexed(cur, n.Index, rhs)
	if err != nil {
		return value.Nil{}, err
	}
	e.Env.Set(n.Name, updated)
	return rhs, nil
}

// setIndexed threads an assignment down one bracket level at a time: a
// Vector index must name an existing element — out of range (negative or
// past the end) is `^length`, matching original_source/eval.c's range
// check, not a grow-on-write. A Vector-valued index performs a batched
// update (`a[0 2]:10 20`): the index vector's length must equal the RHS
// vector's length, `^length` otherwise. A Dict index appends a new
// key/Nil pair on a miss. Vector and Dict are pointer-backed, so mutating
// the nested container in place and returning it keeps everything
// referring to the same value other bindings may share reflected in the
// rebind.
func (e *Evaluator) setIndexed(container value.Value, idxNodes []ast.Node, rhs value.Value) (value.Value, *verbs.Kerr) {
	idxVal, err := e.Eval(idxNodes[0])
	if err != nil {
		return nil, err
	}
	switch c := container.(type) {
	case *value.Vector:
		switch idx := idxVal.(type) {
		case value.Int:
			if idx.I < 0 || idx.I >= int64(len(c.Items)) {
				return nil, verbs.ErrLength
			}
			if len(idxNodes) == 1 {
				c.Items[idx.I] = rhs
				return c, nil
			}
			updated, err := e.setIndexed(c.Items[idx.I], idxNodes[1:], rhs)
			if err != nil {
				return nil, err
			}
			c.Items[idx.I] = updated
			return c, nil
		case *value.Vector:
			if len(idxNodes) != 1 {
				return nil, verbs.ErrType
			}
			rhsVec, ok := rhs.(*value.Vector)
			if !ok || len(rhsVec.Items) != len(idx.Items) {
				return nil, verbs.ErrLength
			}
			positions := make([]int64, len(idx.Items))
			for i, iv := range idx.Items {
				ii, ok := iv.(value.Int)
				if !ok {
					return nil, verbs.ErrType
				}
				if ii.I < 0 || ii.I >= int64(len(c.Items)) {
					return nil, verbs.ErrLength
				}
				positions[i] = ii.I
			}
			for i, pos := range positions {
				c.Items[pos] = rhsVec.Items[i]
			}
			return c, nil
		default:
			return nil, verbs.ErrType
		}
	case *value.Dict:
		pos := -1
		for i, k := range c.Keys.Items {
			if verbs.Match(k, idxVal) {
				pos = i
				break
			}
		}
		if pos == -1 {
			c.Keys.Items = append(c.Keys.Items, idxVal)
			c.Values.Items = append(c.Values.Items, value.Nil{})
			pos = len(c.Keys.Items) - 1
		}
		if len(idxNodes) == 1 {
			c.Values.Items[pos] = rhs
			return c, nil
		}
		updated, err := e.setIndexed(c.Values.Items[pos], idxNodes[1:], rhs)
		if err != nil {
			return nil, err
		}
		c.Values.Items[pos] = updated
		return c, nil
	default:
		return nil, verbs.ErrType
	}
}
