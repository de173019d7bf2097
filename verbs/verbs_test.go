package verbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomix-k/gomix-k/optable"
	"github.com/gomix-k/gomix-k/value"
)

func vec(items ...value.Value) *value.Vector { return &value.Vector{Items: items} }
func ints(xs ...int64) *value.Vector {
	items := make([]value.Value, len(xs))
	for i, x := range xs {
		items[i] = value.Int{I: x}
	}
	return &value.Vector{Items: items}
}

func TestAdd_ScalarAndBroadcast(t *testing.T) {
	v, err := Apply(optable.Plus, []value.Value{value.Int{I: 2}, value.Int{I: 3}})
	require.Nil(t, err)
	assert.Equal(t, value.Int{I: 5}, v)

	v, err = Apply(optable.Plus, []value.Value{ints(1, 2, 3), value.Int{I: 10}})
	require.Nil(t, err)
	assert.Equal(t, ints(11, 12, 13), v)
}

func TestDiv_AlwaysFloatSignedInfOnZero(t *testing.T) {
	v, err := Apply(optable.Percent, []value.Value{value.Int{I: 1}, value.Int{I: 0}})
	require.Nil(t, err)
	assert.Equal(t, value.PInf{}, v)

	v, err = Apply(optable.Percent, []value.Value{value.Int{I: -1}, value.Int{I: 0}})
	require.Nil(t, err)
	assert.Equal(t, value.NInf{}, v)

	v, err = Apply(optable.Percent, []value.Value{value.Int{I: 4}, value.Int{I: 2}})
	require.Nil(t, err)
	assert.Equal(t, value.Float{F: 2}, v)
}

func TestSqrt_DomainErrorOnNegative(t *testing.T) {
	_, err := Apply(optable.Percent, []value.Value{value.Int{I: -4}})
	require.NotNil(t, err)
	assert.Equal(t, ErrDomain, err)
}

func TestMatch_StructuralWholeCompare(t *testing.T) {
	v, err := Apply(optable.Tilde, []value.Value{ints(1, 2, 3), ints(1, 2, 3)})
	require.Nil(t, err)
	assert.Equal(t, value.Int{I: 1}, v)

	v, err = Apply(optable.Tilde, []value.Value{ints(1, 2, 3), ints(1, 2, 4)})
	require.Nil(t, err)
	assert.Equal(t, value.Int{I: 0}, v)

	v, err = Apply(optable.Tilde, []value.Value{value.Nil{}, value.Nil{}})
	require.Nil(t, err)
	assert.Equal(t, value.Int{I: 1}, v)
}

func TestMatch_Reflexive(t *testing.T) {
	cases := []value.Value{
		value.Int{I: 42}, value.Float{F: 1.5}, value.Char{C: 'z'},
		value.Sym{Name: "abc"}, ints(1, 2, 3), value.Nil{},
	}
	for _, c := range cases {
		assert.True(t, matchValues(c, c))
	}
}

func TestGradeUp_ProducesAscendingOrder(t *testing.T) {
	x := ints(3, 1, 2)
	v, err := Apply(optable.Less, []value.Value{x})
	require.Nil(t, err)
	idx := v.(*value.Vector)
	require.Len(t, idx.Items, 3)
	assert.Equal(t, []value.Value{value.Int{I: 1}, value.Int{I: 2}, value.Int{I: 0}}, idx.Items)
}

func TestSortAscending(t *testing.T) {
	x := ints(3, 1, 2)
	v, err := Apply(optable.Caret, []value.Value{x})
	require.Nil(t, err)
	assert.Equal(t, ints(1, 2, 3), v)
}

func TestWhere(t *testing.T) {
	v, err := Apply(optable.Amp, []value.Value{ints(2, 0, 1)})
	require.Nil(t, err)
	assert.Equal(t, ints(0, 0, 2), v)
}

func TestReverse(t *testing.T) {
	v, err := Apply(optable.Bar, []value.Value{ints(1, 2, 3)})
	require.Nil(t, err)
	assert.Equal(t, ints(3, 2, 1), v)
}

func TestGroup(t *testing.T) {
	v, err := Apply(optable.Equal, []value.Value{ints(1, 2, 1, 3, 2)})
	require.Nil(t, err)
	d := v.(*value.Dict)
	require.Len(t, d.Keys.Items, 3)
	for i, k := range d.Keys.Items {
		idxs := d.Values.Items[i].(*value.Vector)
		switch k.(value.Int).I {
		case 1:
			assert.Equal(t, ints(0, 2), idxs)
		case 2:
			assert.Equal(t, ints(1, 4), idxs)
		case 3:
			assert.Equal(t, ints(3), idxs)
		}
	}
}

func TestCount(t *testing.T) {
	v, err := Apply(optable.Hash, []value.Value{ints(1, 2, 3)})
	require.Nil(t, err)
	assert.Equal(t, value.Int{I: 3}, v)

	v, err = Apply(optable.Hash, []value.Value{value.Int{I: 9}})
	require.Nil(t, err)
	assert.Equal(t, value.Int{I: 1}, v)
}

func TestTake_CyclicAndNegative(t *testing.T) {
	v, err := Apply(optable.Hash, []value.Value{value.Int{I: 5}, ints(1, 2, 3)})
	require.Nil(t, err)
	assert.Equal(t, ints(1, 2, 3, 1, 2), v)

	v, err = Apply(optable.Hash, []value.Value{value.Int{I: -2}, ints(1, 2, 3)})
	require.Nil(t, err)
	assert.Equal(t, ints(2, 3), v)
}

func TestTake_Reshape(t *testing.T) {
	v, err := Apply(optable.Hash, []value.Value{ints(2, 3), ints(1, 2, 3, 4, 5, 6)})
	require.Nil(t, err)
	outer := v.(*value.Vector)
	require.Len(t, outer.Items, 2)
	assert.Equal(t, ints(1, 2, 3), outer.Items[0])
	assert.Equal(t, ints(4, 5, 6), outer.Items[1])
}

func TestTake_ReshapeNegativeDimClampsToZero(t *testing.T) {
	v, err := Apply(optable.Hash, []value.Value{ints(-1, 3), ints(1, 2, 3)})
	require.Nil(t, err)
	outer := v.(*value.Vector)
	assert.Len(t, outer.Items, 0)
}

func TestDrop_IntAndPredicate(t *testing.T) {
	v, err := Apply(optable.Underscore, []value.Value{value.Int{I: 2}, ints(1, 2, 3, 4)})
	require.Nil(t, err)
	assert.Equal(t, ints(3, 4), v)

	v, err = Apply(optable.Underscore, []value.Value{value.Int{I: -1}, ints(1, 2, 3, 4)})
	require.Nil(t, err)
	assert.Equal(t, ints(1, 2, 3), v)
}

func TestEnum_NonNegativeAndIdentity(t *testing.T) {
	v, err := Apply(optable.Bang, []value.Value{value.Int{I: 3}})
	require.Nil(t, err)
	assert.Equal(t, ints(0, 1, 2), v)

	v, err = Apply(optable.Bang, []value.Value{value.Int{I: -2}})
	require.Nil(t, err)
	assert.Equal(t, vec(ints(1, 0), ints(0, 1)), v)
}

func TestKey(t *testing.T) {
	keys := vec(value.Sym{Name: "a"}, value.Sym{Name: "b"})
	vals := ints(1, 2)
	v, err := Apply(optable.Bang, []value.Value{keys, vals})
	require.Nil(t, err)
	d := v.(*value.Dict)
	assert.Equal(t, keys, d.Keys)
	assert.Equal(t, vals, d.Values)
}

func TestFlip_Transpose(t *testing.T) {
	m := vec(ints(1, 2, 3), ints(4, 5, 6))
	v, err := Apply(optable.Plus, []value.Value{m})
	require.Nil(t, err)
	assert.Equal(t, vec(ints(1, 4), ints(2, 5), ints(3, 6)), v)
}

func TestFirst(t *testing.T) {
	v, err := Apply(optable.Star, []value.Value{ints(7, 8, 9)})
	require.Nil(t, err)
	assert.Equal(t, value.Int{I: 7}, v)
}

func TestEnlistAndConcat(t *testing.T) {
	v, err := Apply(optable.Comma, []value.Value{value.Int{I: 5}})
	require.Nil(t, err)
	assert.Equal(t, ints(5), v)

	v, err = Apply(optable.Comma, []value.Value{ints(1, 2), ints(3, 4)})
	require.Nil(t, err)
	assert.Equal(t, ints(1, 2, 3, 4), v)
}

func TestDecode(t *testing.T) {
	v, err := overOrDecodeOrJoin(value.Int{I: 10}, []value.Value{ints(1, 2, 3)})
	require.Nil(t, err)
	assert.Equal(t, value.Int{I: 123}, v)
}

func TestEncode(t *testing.T) {
	v := encode(10, 123)
	assert.Equal(t, ints(1, 2, 3), v)

	v = encode(10, 0)
	assert.Equal(t, ints(0), v)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	digits := encode(8, 4521)
	back, err := overOrDecodeOrJoin(value.Int{I: 8}, []value.Value{digits})
	require.Nil(t, err)
	assert.Equal(t, value.Int{I: 4521}, back)
}

func TestJoinSplit_RoundTrip(t *testing.T) {
	words := vec(value.NewString("ab"), value.NewString("cd"), value.NewString("ef"))
	joined, err := joinFn(value.Char{C: ','}, []value.Value{words})
	require.Nil(t, err)
	assert.True(t, value.IsCharVector(joined.(*value.Vector)))
	assert.Equal(t, "ab,cd,ef", value.AsGoString(joined.(*value.Vector)))

	split, err := splitFn(value.Char{C: ','}, []value.Value{joined})
	require.Nil(t, err)
	pieces := split.(*value.Vector)
	require.Len(t, pieces.Items, 3)
	assert.Equal(t, "ab", value.AsGoString(pieces.Items[0].(*value.Vector)))
	assert.Equal(t, "cd", value.AsGoString(pieces.Items[1].(*value.Vector)))
	assert.Equal(t, "ef", value.AsGoString(pieces.Items[2].(*value.Vector)))
}

func TestOver_ReduceWithVerbChild(t *testing.T) {
	v, err := overOrDecodeOrJoin(value.Verb{Op: optable.Plus}, []value.Value{ints(1, 2, 3, 4)})
	require.Nil(t, err)
	assert.Equal(t, value.Int{I: 10}, v)
}

func TestOver_SeededReduce(t *testing.T) {
	v, err := overOrDecodeOrJoin(value.Verb{Op: optable.Plus}, []value.Value{value.Int{I: 100}, ints(1, 2, 3)})
	require.Nil(t, err)
	assert.Equal(t, value.Int{I: 106}, v)
}

func TestScan_RunningTotal(t *testing.T) {
	v, err := scanOrEncodeOrSplit(value.Verb{Op: optable.Plus}, []value.Value{ints(1, 2, 3, 4)})
	require.Nil(t, err)
	assert.Equal(t, ints(1, 3, 6, 10), v)
}

func TestEach_UnaryMap(t *testing.T) {
	v, err := each(value.Verb{Op: optable.Minus}, []value.Value{ints(1, 2, 3)})
	require.Nil(t, err)
	assert.Equal(t, ints(-1, -2, -3), v)
}

func TestEach_BinaryZipLengthMismatch(t *testing.T) {
	_, err := each(value.Verb{Op: optable.Plus}, []value.Value{ints(1, 2), ints(1, 2, 3)})
	require.NotNil(t, err)
	assert.Equal(t, ErrLength, err)
}

func TestEachRight(t *testing.T) {
	v, err := eachRight(value.Verb{Op: optable.Minus}, []value.Value{value.Int{I: 10}, ints(1, 2, 3)})
	require.Nil(t, err)
	assert.Equal(t, ints(9, 8, 7), v)
}

func TestEachLeft(t *testing.T) {
	v, err := eachLeft(value.Verb{Op: optable.Minus}, []value.Value{ints(1, 2, 3), value.Int{I: 10}})
	require.Nil(t, err)
	assert.Equal(t, ints(-9, -8, -7), v)
}

func TestEachPrior_RunningDifference(t *testing.T) {
	v, err := eachPrior(value.Verb{Op: optable.Minus}, []value.Value{ints(10, 13, 17, 18)})
	require.Nil(t, err)
	assert.Equal(t, ints(10, 3, 4, 1), v)
}
