// Package optable holds the static verb operator descriptor table:
// one entry per single-character verb token, naming its unary and binary
// meaning and how it prints. It mirrors the nekoarch/k `op_table`/`op_infos`
// pair: a small data table other packages (parser, verbs, kprint) key off
// of, rather than re-deriving operator metadata ad hoc.
package optable

import "github.com/gomix-k/gomix-k/lexer"

// Kind names a verb by what it does, independent of which token spells it.
// The parser and evaluator both switch on Kind rather than on TokenType so
// that dispatch stays in one place.
type Kind int

const (
	Plus Kind = iota
	Minus
	Star
	Percent
	Amp
	Bar
	Tilde
	Caret
	Bang
	Hash
	Underscore
	Slash
	Backslash
	Tick
	TickColon
	Less
	More
	Colon
	Equal
	Dollar
	Comma
	Sin
	Cos
	Abs
)

// Desc describes one verb: its display text and whether it has a unary
// and/or binary meaning. A verb invoked with the arity it doesn't support
// is a `^rank` error, decided by the evaluator using these flags.
type Desc struct {
	Kind       Kind
	Text       string // canonical source spelling, used when reprinting a bare verb
	HasUnary   bool
	HasBinary  bool
	IsAdverb   bool // `/ \ ' /: \:` — combinators rather than verbs
	Precedence int  // reserved for future infix-precedence needs; K is uniformly right-assoc today
}

var table = map[lexer.TokenType]Desc{
	lexer.PLUS_OP:       {Plus, "+", true, true, false, 0},
	lexer.MINUS_OP:      {Minus, "-", true, true, false, 0},
	lexer.STAR_OP:       {Star, "*", true, true, false, 0},
	lexer.PERCENT_OP:    {Percent, "%", true, true, false, 0},
	lexer.AMP_OP:        {Amp, "&", true, true, false, 0},
	lexer.BAR_OP:        {Bar, "|", true, true, false, 0},
	lexer.TILDE_OP:      {Tilde, "~", true, true, false, 0},
	lexer.CARET_OP:      {Caret, "^", true, true, false, 0},
	lexer.BANG_OP:       {Bang, "!", true, true, false, 0},
	lexer.HASH_OP:       {Hash, "#", true, true, false, 0},
	lexer.UNDERSCORE_OP: {Underscore, "_", true, true, false, 0},
	lexer.SLASH_OP:      {Slash, "/", false, false, true, 0},
	lexer.BACKSLASH_OP:  {Backslash, "\\", false, false, true, 0},
	lexer.TICK_OP:       {Tick, "'", false, false, true, 0},
	lexer.LESS_OP:       {Less, "<", true, true, false, 0},
	lexer.MORE_OP:       {More, ">", true, true, false, 0},
	lexer.COLON_OP:      {Colon, ":", false, false, false, 0},
	lexer.EQUAL_OP:      {Equal, "=", true, true, false, 0},
	lexer.DOLLAR_OP:     {Dollar, "$", false, false, false, 0},
	lexer.COMMA_DELIM:   {Comma, ",", true, true, false, 0},
	lexer.SIN_OP:        {Sin, "sin", true, false, false, 0},
	lexer.COS_OP:        {Cos, "cos", true, false, false, 0},
	lexer.ABS_OP:        {Abs, "abs", true, false, false, 0},
}

// Lookup returns the descriptor for a verb-shaped token and whether one
// exists (false for tokens that are never a verb, e.g. a paren or semicolon).
func Lookup(tt lexer.TokenType) (Desc, bool) {
	d, ok := table[tt]
	return d, ok
}

// EachRight and EachLeft are spelled `/:` and `\:`: an adverb token
// immediately followed by `:` with no space. The lexer emits `/` and `:`
// (or `\` and `:`) as separate tokens; the parser folds the pair back
// together using IsAdverb plus a zero-gap check, the same whitespace-
// sensitivity the rest of the grammar relies on.
const (
	EachRightSuffix = ":" // attached to Slash
	EachLeftSuffix  = ":" // attached to Backslash
)
