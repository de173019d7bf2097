// Package ast defines the GoMix-K abstract syntax tree node kinds produced
// by the parser and walked by the evaluator. It depends on nothing but
// lexer and optable so that both parser and value can depend on it without
// creating an import cycle between the grammar and the runtime value model.
package ast

import (
	"github.com/gomix-k/gomix-k/lexer"
	"github.com/gomix-k/gomix-k/optable"
)

// Visitor implements double dispatch over every node kind, used by the
// debug AST printer and available to any future tooling that wants to walk
// the tree without switching on a NodeKind constant.
type Visitor interface {
	VisitLiteral(n *Literal)
	VisitVar(n *Var)
	VisitUnary(n *Unary)
	VisitBinary(n *Binary)
	VisitCall(n *Call)
	VisitSeq(n *Seq)
	VisitList(n *List)
	VisitConditional(n *Conditional)
	VisitAdverb(n *Adverb)
	VisitLambda(n *Lambda)
	VisitAssign(n *Assign)
	VisitVerbLit(n *VerbLit)
}

// Node is the base type every AST node implements.
type Node interface {
	Literal() string
	Accept(v Visitor)
}

// LitKind discriminates the payload carried by a Literal node. Kept
// separate from value.Kind so this package never has to import value.
type LitKind int

const (
	LitInt LitKind = iota
	LitFloat
	LitChar
	LitString // char vector
	LitSymbol
	LitPInf
	LitNInf
)

// Literal is a number, string, symbol, or infinity literal, or a strand of
// adjacent atom literals (stranding folds several Literal nodes into one
// vector-valued Literal at parse time — see parser.parseStrand).
type Literal struct {
	Tok      lexer.Token
	Kind     LitKind
	IntVal   int64
	FloatVal float64
	CharVal  byte
	StrVal   string
	SymVal   string
	// Strand holds element literals when this node represents a
	// whitespace-separated run of atoms, e.g. `1 2 3`. Empty for a single
	// atom literal.
	Strand []*Literal
}

func (n *Literal) Literal() string   { return n.Tok.Literal }
func (n *Literal) Accept(v Visitor)  { v.VisitLiteral(n) }

// Var references a bound name, e.g. `x` or a user-defined lambda name.
type Var struct {
	Tok  lexer.Token
	Name string
}

func (n *Var) Literal() string  { return n.Tok.Literal }
func (n *Var) Accept(v Visitor) { v.VisitVar(n) }

// VerbLit is a bare reference to a built-in verb used as a value, e.g. the
// `+` in `f:+` or `+/` (over) before any operand is supplied.
type VerbLit struct {
	Tok lexer.Token
	Op  optable.Kind
}

func (n *VerbLit) Literal() string  { return n.Tok.Literal }
func (n *VerbLit) Accept(v Visitor) { v.VisitVerbLit(n) }

// Unary applies a verb's unary meaning to a single operand, e.g. `-x` or
// `#x` (count) or `!5` (enumerate).
type Unary struct {
	Tok     lexer.Token
	Op      optable.Kind
	Operand Node
}

func (n *Unary) Literal() string  { return n.Tok.Literal }
func (n *Unary) Accept(v Visitor) { v.VisitUnary(n) }

// Binary applies a verb's binary meaning to two operands, e.g. `x+y` or
// `x#y` (take/reshape).
type Binary struct {
	Tok         lexer.Token
	Op          optable.Kind
	Left, Right Node
}

func (n *Binary) Literal() string  { return n.Tok.Literal }
func (n *Binary) Accept(v Visitor) { v.VisitBinary(n) }

// Call applies Fn to Args: `f[a;b]`, juxtaposition of a derived verb
// (`+/1 2 3`), or vector/dict indexing `v[i]`/`v[i;j]` — in K these share
// one AST shape because indexing IS calling, with the indexed value acting
// as its own callable. A parenthesised argument glued to a callable
// (`f(x)`) is not parsed as a Call.
type Call struct {
	Tok  lexer.Token
	Fn   Node
	Args []Node
}

func (n *Call) Literal() string  { return n.Tok.Literal }
func (n *Call) Accept(v Visitor) { v.VisitCall(n) }

// Seq is a `;`-separated top-level sequence of expressions, evaluated in
// order; the whole Seq's value is its last element's value. The REPL and
// RunFile print each element's result separately, skipping any element
// whose root is an Assign.
type Seq struct {
	Tok   lexer.Token
	Exprs []Node
}

func (n *Seq) Literal() string  { return n.Tok.Literal }
func (n *Seq) Accept(v Visitor) { v.VisitSeq(n) }

// List is a parenthesized `;`-separated list, e.g. `(1 2 3; 4 5 6)`,
// evaluated into a Vector whose items need not share a type.
type List struct {
	Tok      lexer.Token
	Elements []Node
}

func (n *List) Literal() string  { return n.Tok.Literal }
func (n *List) Accept(v Visitor) { v.VisitList(n) }

// Conditional is `$[cond;then;else]`.
type Conditional struct {
	Tok              lexer.Token
	Cond, Then, Else Node
}

func (n *Conditional) Literal() string  { return n.Tok.Literal }
func (n *Conditional) Accept(v Visitor) { v.VisitConditional(n) }

// Adverb attaches a combinator (over/scan/each/each-right/each-left) to a
// Child verb or lambda expression, without yet calling it. The resulting
// value.Adverb is itself callable: `+/` builds an Adverb, `+/[1 2 3]` (or
// bare `+/1 2 3`) calls it.
type Adverb struct {
	Tok       lexer.Token
	Op        optable.Kind
	Child     Node
	EachRight bool
	EachLeft  bool
}

func (n *Adverb) Literal() string  { return n.Tok.Literal }
func (n *Adverb) Accept(v Visitor) { v.VisitAdverb(n) }

// Lambda is a `{[x;y] e1;e2}` function literal. Params is empty when the
// source used no explicit parameter list, in which case the evaluator
// infers implicit x/y/z arity by scanning Body (see eval.ImplicitParams).
// HasReturn is false when the body ends with a trailing `;` (`{1;2;}`),
// which suppresses the call's result (the call evaluates to Nil) rather
// than yielding the last expression's value.
type Lambda struct {
	Tok       lexer.Token
	Params    []string
	Body      []Node
	HasReturn bool
}

func (n *Lambda) Literal() string  { return n.Tok.Literal }
func (n *Lambda) Accept(v Visitor) { v.VisitLambda(n) }

// Assign is `name:rhs` (Index == nil) or indexed assignment
// `name[i]:rhs`/`name[i;j]:rhs` (Index holds one Node per bracket level).
type Assign struct {
	Tok   lexer.Token
	Name  string
	Index []Node
	Value Node
}

func (n *Assign) Literal() string  { return n.Tok.Literal }
func (n *Assign) Accept(v Visitor) { v.VisitAssign(n) }
