package parser

import (
	"testing"

	"github.com/gomix-k/gomix-k/ast"
	"github.com/gomix-k/gomix-k/optable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, src string) ast.Node {
	t.Helper()
	p := NewParser(src)
	seq := p.Parse()
	require.Empty(t, p.Errors, "parse errors for %q: %v", src, p.Errors)
	require.Len(t, seq.Exprs, 1)
	return seq.Exprs[0]
}

func TestParser_Strand(t *testing.T) {
	node := parseOne(t, "1 2 3")
	lit, ok := node.(*ast.Literal)
	require.True(t, ok)
	assert.Len(t, lit.Strand, 3)
}

func TestParser_DyadicAdd(t *testing.T) {
	node := parseOne(t, "1 2 3 + 10")
	bin, ok := node.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, optable.Plus, bin.Op)
}

func TestParser_OverAdverb(t *testing.T) {
	node := parseOne(t, "+/!5")
	call, ok := node.(*ast.Call)
	require.True(t, ok)
	adv, ok := call.Fn.(*ast.Adverb)
	require.True(t, ok)
	assert.Equal(t, optable.Slash, adv.Op)
	assert.IsType(t, &ast.VerbLit{}, adv.Child)
}

func TestParser_Assign(t *testing.T) {
	node := parseOne(t, "f:{x+y}")
	assign, ok := node.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "f", assign.Name)
	assert.IsType(t, &ast.Lambda{}, assign.Value)
}

func TestParser_IndexedAssign(t *testing.T) {
	node := parseOne(t, "a[1]:99")
	assign, ok := node.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "a", assign.Name)
	assert.Len(t, assign.Index, 1)
}

func TestParser_Conditional(t *testing.T) {
	node := parseOne(t, `$[0;"t";"f"]`)
	cond, ok := node.(*ast.Conditional)
	require.True(t, ok)
	assert.NotNil(t, cond.Cond)
}

func TestParser_EachAdverb(t *testing.T) {
	node := parseOne(t, "{x*x}'1 2 3")
	bin, ok := node.(*ast.Call)
	require.True(t, ok)
	adv, ok := bin.Fn.(*ast.Adverb)
	require.True(t, ok)
	assert.Equal(t, optable.Tick, adv.Op)
}

func TestParser_DecodeJuxtaposition(t *testing.T) {
	node := parseOne(t, "10/1 2 3")
	call, ok := node.(*ast.Call)
	require.True(t, ok)
	adv, ok := call.Fn.(*ast.Adverb)
	require.True(t, ok)
	assert.Equal(t, optable.Slash, adv.Op)
	lit, ok := adv.Child.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, int64(10), lit.IntVal)
	require.Len(t, call.Args, 1)
	arg, ok := call.Args[0].(*ast.Literal)
	require.True(t, ok)
	assert.Len(t, arg.Strand, 3)
}

func TestParser_CommaConcat(t *testing.T) {
	node := parseOne(t, "1,2")
	bin, ok := node.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, optable.Comma, bin.Op)
}

func TestParser_EachPrior(t *testing.T) {
	node := parseOne(t, "{x+y}':1 2 3")
	call, ok := node.(*ast.Call)
	require.True(t, ok)
	adv, ok := call.Fn.(*ast.Adverb)
	require.True(t, ok)
	assert.Equal(t, optable.TickColon, adv.Op)
}

func TestParser_ParenList(t *testing.T) {
	node := parseOne(t, "(1 2 3;4 5 6)")
	list, ok := node.(*ast.List)
	require.True(t, ok)
	assert.Len(t, list.Elements, 2)
}

func TestParser_MonadicNegate(t *testing.T) {
	node := parseOne(t, "-3+4")
	un, ok := node.(*ast.Unary)
	require.True(t, ok)
	assert.Equal(t, optable.Minus, un.Op)
	_, innerIsBinary := un.Operand.(*ast.Binary)
	assert.True(t, innerIsBinary, "right-assoc: -3+4 should parse as -(3+4)")
}

// parse(text) == parse(" "+text+" ") — whitespace-insensitivity of the
// grammar, modulo WSBefore's effect on adverb-vs-verb disambiguation, which
// this case doesn't exercise.
func TestParser_WhitespaceInsensitive(t *testing.T) {
	a := printAST(t, "1 2 3 + 10")
	b := printAST(t, "  1 2 3 + 10  ")
	assert.Equal(t, a, b)
}

func printAST(t *testing.T, src string) string {
	t.Helper()
	p := NewParser(src)
	seq := p.Parse()
	require.Empty(t, p.Errors)
	printer := &ast.Printer{}
	seq.Accept(printer)
	return printer.Buf.String()
}
