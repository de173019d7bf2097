package verbs

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/gomix-k/gomix-k/value"
)

// hashValue is the candidate key group (=) buckets atoms by before
// confirming equality with matchValues — an FNV-1a digest over a Sym's
// bytes, and an IEEE-754 "pun" (reinterpreting the bit pattern as an
// integer) for Int/Float/Char, per spec.md §4.6's "open-addressed hashing
// ... with explicit IEEE-aware hashing for Float; Sym by FNV over bytes".
// Collisions are resolved by matchValues, so an imprecise hash only costs
// performance, never correctness.
func hashValue(v value.Value) uint64 {
	switch t := v.(type) {
	case value.Int:
		return punHash(uint64(t.I))
	case value.Float:
		return punHash(math.Float64bits(t.F))
	case value.Char:
		return punHash(uint64(t.C))
	case value.Sym:
		h := fnv.New64a()
		_, _ = h.Write([]byte(t.Name))
		return h.Sum64()
	case value.PInf:
		return punHash(math.Float64bits(math.Inf(1)))
	case value.NInf:
		return punHash(math.Float64bits(math.Inf(-1)))
	case value.Nil:
		return 0
	default:
		return uint64(v.Kind())
	}
}

func punHash(bits uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], bits)
	h := fnv.New64a()
	_, _ = h.Write(b[:])
	return h.Sum64()
}
