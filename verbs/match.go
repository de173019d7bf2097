package verbs

import "github.com/gomix-k/gomix-k/value"

// matchValues is the full structural equality `~` (binary) computes,
// reused by group (=) to bucket equal atoms and exposed to the evaluator
// for the `match` testable property spec.md §8 names. Two Nils always
// match (DESIGN.md Open Question 2); Lambda and Projection — genuinely
// pointer-backed in this value model — compare by identity, since no
// structural notion of "two functions are the same" is defined; a bare
// Verb or Adverb compares by its operator tag instead, since those are
// plain value types with no address to speak of.
func matchValues(l, r value.Value) bool {
	switch lt := l.(type) {
	case value.Nil:
		_, ok := r.(value.Nil)
		return ok
	case value.Int:
		rt, ok := r.(value.Int)
		return ok && lt.I == rt.I
	case value.Float:
		rt, ok := r.(value.Float)
		return ok && lt.F == rt.F
	case value.Char:
		rt, ok := r.(value.Char)
		return ok && lt.C == rt.C
	case value.PInf:
		_, ok := r.(value.PInf)
		return ok
	case value.NInf:
		_, ok := r.(value.NInf)
		return ok
	case value.Sym:
		rt, ok := r.(value.Sym)
		return ok && lt.Name == rt.Name
	case *value.Vector:
		rt, ok := r.(*value.Vector)
		if !ok || len(lt.Items) != len(rt.Items) {
			return false
		}
		for i := range lt.Items {
			if !matchValues(lt.Items[i], rt.Items[i]) {
				return false
			}
		}
		return true
	case *value.Dict:
		rt, ok := r.(*value.Dict)
		return ok && matchValues(lt.Keys, rt.Keys) && matchValues(lt.Values, rt.Values)
	case value.Verb:
		rt, ok := r.(value.Verb)
		return ok && lt.Op == rt.Op
	case value.Adverb:
		rt, ok := r.(value.Adverb)
		return ok && lt.Op == rt.Op && lt.EachRight == rt.EachRight &&
			lt.EachLeft == rt.EachLeft && matchValues(lt.Child, rt.Child)
	case *value.Lambda:
		rt, ok := r.(*value.Lambda)
		return ok && lt == rt
	case *value.Projection:
		rt, ok := r.(*value.Projection)
		return ok && lt == rt
	default:
		return false
	}
}

// Match exposes matchValues to callers outside verbs — the evaluator's
// Dict-key lookup during indexing and indexed assignment.
func Match(l, r value.Value) bool { return matchValues(l, r) }

func matchScalar(l, r value.Value) (value.Value, *Kerr) {
	if matchValues(l, r) {
		return value.Int{I: 1}, nil
	}
	return value.Int{I: 0}, nil
}
