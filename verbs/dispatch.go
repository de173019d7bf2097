package verbs

import (
	"github.com/gomix-k/gomix-k/optable"
	"github.com/gomix-k/gomix-k/value"
)

// UnaryFn and BinaryFn are the shapes every verb's slot implementations
// take. A nil *Kerr return means success.
type UnaryFn func(x value.Value) (value.Value, *Kerr)
type BinaryFn func(l, r value.Value) (value.Value, *Kerr)

var unaryTable = map[optable.Kind]UnaryFn{}
var binaryTable = map[optable.Kind]BinaryFn{}

// CallFunc invokes any callable value.Value (Lambda, Projection, Verb,
// Adverb) with a fixed argument list — the same dispatch the evaluator's
// Call node handling performs. Caller is set once, by eval's init, so a
// handful of verbs that need to invoke a user callable (drop's predicate
// filter; every adverb combinator) can reach it without verbs importing
// eval, which would cycle back since eval imports verbs for Apply.
type CallFunc func(fn value.Value, args []value.Value) (value.Value, *Kerr)

var Caller CallFunc

func callValue(fn value.Value, args []value.Value) (value.Value, *Kerr) {
	if Caller == nil {
		return value.Nil{}, ErrNYI
	}
	return Caller(fn, args)
}

// registerUnary and registerBinary populate the slot tables from each
// concern's own init(), the same "one init() per file appends its table"
// shape the teacher's std package uses for its Builtins slice.
func registerUnary(k optable.Kind, f UnaryFn)  { unaryTable[k] = f }
func registerBinary(k optable.Kind, f BinaryFn) { binaryTable[k] = f }

// Apply is the Verb(u,b) dispatch spec.md §4.4 describes: a 1-arg call
// invokes the unary slot, a 2-arg call the binary slot, and any other
// arity is a rank error. An empty slot (a verb token with no meaning at
// the supplied arity, like monadic `$`) is ^nyi, not ^rank.
func Apply(op optable.Kind, args []value.Value) (value.Value, *Kerr) {
	switch len(args) {
	case 1:
		f, ok := unaryTable[op]
		if !ok {
			return value.Nil{}, ErrNYI
		}
		return f(args[0])
	case 2:
		f, ok := binaryTable[op]
		if !ok {
			return value.Nil{}, ErrNYI
		}
		return f(args[0], args[1])
	default:
		return value.Nil{}, ErrRank
	}
}

// HasUnary and HasBinary let the evaluator report ^rank (verb exists but
// not at this arity) rather than ^nyi (verb has no meaning here at all) —
// both are empty-slot lookups, but optable.Desc is the source of truth for
// which is which; these just expose whether a slot is actually wired.
func HasUnary(op optable.Kind) bool  { _, ok := unaryTable[op]; return ok }
func HasBinary(op optable.Kind) bool { _, ok := binaryTable[op]; return ok }
