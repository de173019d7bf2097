// Package verbs implements the GoMix-K verb library: elementwise arithmetic
// and comparison with Dict/Vector broadcast, the structural verbs (count,
// take, drop, enum, key, flip, first, reverse, grade, group, sort, match),
// and the adverb combinators (over, scan, each, each-left, each-right,
// each-prior, decode, encode, join, split). Grounded on the teacher's
// std/math.go and std/arrays.go builtin-table style, reworked to the `^kind`
// error-tag contract and broadcast rules original_source/builtins.c and
// spec.md §4.6/§7 describe rather than the teacher's GoMixObject/createError
// convention.
package verbs

// Kerr is one of the tagged runtime errors from spec.md §7: evaluation
// returns value.Nil alongside a Kerr, and the caller is responsible for
// printing `tag\n` to stdout at the point of detection.
type Kerr struct{ Tag string }

func (e *Kerr) Error() string { return e.Tag }

var (
	ErrType   = &Kerr{"^type"}
	ErrRank   = &Kerr{"^rank"}
	ErrLength = &Kerr{"^length"}
	ErrDomain = &Kerr{"^domain"}
	ErrVar    = &Kerr{"^var"}
	ErrAssign = &Kerr{"^assign"}
	ErrNYI    = &Kerr{"^nyi"}
	ErrParse  = &Kerr{"^parse"}
	ErrIO     = &Kerr{"^io"}
	ErrOOM    = &Kerr{"^oom"}
)
