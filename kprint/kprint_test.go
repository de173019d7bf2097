package kprint

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gomix-k/gomix-k/value"
	"github.com/gomix-k/gomix-k/verbs"
)

func ints(xs ...int64) *value.Vector {
	items := make([]value.Value, len(xs))
	for i, x := range xs {
		items[i] = value.Int{I: x}
	}
	return &value.Vector{Items: items}
}

func TestSprint_Atoms(t *testing.T) {
	assert.Equal(t, "5", Sprint(value.Int{I: 5}))
	assert.Equal(t, "-3", Sprint(value.Int{I: -3}))
	assert.Equal(t, "3.5", Sprint(value.Float{F: 3.5}))
	assert.Equal(t, "0w", Sprint(value.PInf{}))
	assert.Equal(t, "-0w", Sprint(value.NInf{}))
	assert.Equal(t, "`sym", Sprint(value.Sym{Name: "sym"}))
}

func TestSprint_SingletonVectorHasLeadingComma(t *testing.T) {
	assert.Equal(t, ",5", Sprint(ints(5)))
}

func TestSprint_PlainVectorIsSpaceJoined(t *testing.T) {
	assert.Equal(t, "1 2 3", Sprint(ints(1, 2, 3)))
}

func TestSprint_EmptyVector(t *testing.T) {
	assert.Equal(t, "!0", Sprint(&value.Vector{}))
}

func TestSprint_CharVectorIsBareString(t *testing.T) {
	v := value.NewString("hello")
	assert.Equal(t, "hello", Sprint(v))
}

func TestSprint_MatrixIsColumnAligned(t *testing.T) {
	m := &value.Vector{Items: []value.Value{
		ints(1, 20, 3),
		ints(400, 5, 6),
	}}
	assert.Equal(t, "  1 20 3\n400  5 6", Sprint(m))
}

func TestSprint_Dict(t *testing.T) {
	d := &value.Dict{
		Keys:   &value.Vector{Items: []value.Value{value.Sym{Name: "a"}, value.Sym{Name: "b"}}},
		Values: ints(1, 2),
	}
	assert.Equal(t, "`a|1\n`b|2", Sprint(d))
}

func TestPrint_AppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	require := assert.New(t)
	err := Print(&buf, value.Int{I: 7})
	require.NoError(err)
	require.Equal("7\n", buf.String())
}

func TestPrintError_FormatsTagOnly(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, PrintError(&buf, verbs.ErrLength))
	assert.Equal(t, "^length\n", buf.String())
}
