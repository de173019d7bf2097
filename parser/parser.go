// Package parser implements the GoMix-K recursive-descent parser: a single
// right-associative expression grammar (no separate statement grammar,
// unlike the teacher language) producing the ast.Node tree the evaluator
// walks. Context sensitivity — telling `f/x` from `f / x`, or a negative
// literal from subtraction — rides entirely on lexer.Token.WSBefore.
package parser

import (
	"fmt"

	"github.com/gomix-k/gomix-k/ast"
	"github.com/gomix-k/gomix-k/lexer"
	"github.com/gomix-k/gomix-k/optable"
)

// Parser holds a two-token lookahead window (cur, peek) over a Lexer. Parse
// errors are collected rather than panicking, so a REPL can report `^parse`
// and keep running instead of dying on one bad line.
type Parser struct {
	Lex    lexer.Lexer
	cur    lexer.Token
	peek   lexer.Token
	Errors []string
}

// NewParser tokenizes source lazily from the start and primes the two-token
// lookahead window.
func NewParser(source string) *Parser {
	p := &Parser{Lex: lexer.NewLexer(source)}
	p.cur = p.Lex.NextToken()
	p.peek = p.Lex.NextToken()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.Lex.NextToken()
}

func (p *Parser) expect(tt lexer.TokenType) lexer.Token {
	tok := p.cur
	if p.cur.Type != tt {
		p.Errors = append(p.Errors, fmt.Sprintf("^parse at %d:%d: expected %v, got %v %q",
			p.cur.Line, p.cur.Column, tt, p.cur.Type, p.cur.Literal))
	} else {
		p.advance()
	}
	return tok
}

// Parse consumes the whole token stream and returns the top-level Seq.
func (p *Parser) Parse() *ast.Seq {
	tok := p.cur
	exprs := []ast.Node{}
	for p.cur.Type != lexer.EOF_TYPE {
		exprs = append(exprs, p.parseExpr())
		for p.cur.Type == lexer.SEMICOLON_DELIM {
			p.advance()
		}
	}
	return &ast.Seq{Tok: tok, Exprs: exprs}
}

// verbKindOf resolves a token to its optable.Kind. TICK_OP is special: the
// lexer folds `':` into one token (literal "':"), so the each/each-prior
// distinction is made here on the literal rather than in the table, which
// is keyed by TokenType alone.
func verbKindOf(tok lexer.Token) (optable.Kind, bool) {
	d, ok := optable.Lookup(tok.Type)
	if !ok {
		return 0, false
	}
	if tok.Type == lexer.TICK_OP && tok.Literal == "':" {
		return optable.TickColon, true
	}
	return d.Kind, true
}

func isVerbToken(tt lexer.TokenType) bool {
	d, ok := optable.Lookup(tt)
	return ok && (d.HasUnary || d.HasBinary)
}

func isAdverbToken(tt lexer.TokenType) bool {
	d, ok := optable.Lookup(tt)
	return ok && d.IsAdverb
}

// isVerbShaped reports whether a node is syntactically a verb or a
// derived verb (an adverb attached to one) — the only shapes that apply to
// a following operand by bare juxtaposition, with no call syntax. A Var
// never does, even when it happens to hold a Lambda at eval time: plain
// lambda calls require explicit `f[x]` brackets.
func isVerbShaped(n ast.Node) bool {
	switch n.(type) {
	case *ast.VerbLit, *ast.Adverb:
		return true
	}
	return false
}

// parseExpr parses one full expression: an optional leading monadic verb
// application, the resulting (or plain) noun, then either an assignment
// (when the noun is a valid target and `:` follows) or an optional trailing
// dyadic verb application consuming everything to its right (hence
// right-assoc). Every K expression is one of these
// three shapes, never a mix requiring precedence climbing. Juxtaposition
// application (`-x`, `+/!5`, `10/1 2 3`) is handled uniformly right after
// the noun is parsed, whichever of the two branches produced it, since a
// derived verb like `+/` or `10/` only becomes callable once attachPostfix
// has already glued the adverb on.
func (p *Parser) parseExpr() ast.Node {
	var left ast.Node

	leadingVerb := isVerbToken(p.cur.Type)
	if leadingVerb {
		left = p.parseVerbAtom()
	} else {
		left = p.parsePrimary()
	}

	if isVerbShaped(left) && isValueStart(p.cur.Type) {
		tok := p.cur
		operand := p.parseExpr()
		if vl, ok := left.(*ast.VerbLit); ok {
			left = &ast.Unary{Tok: tok, Op: vl.Op, Operand: operand}
		} else {
			left = &ast.Call{Tok: tok, Fn: left, Args: []ast.Node{operand}}
		}
	}

	if p.cur.Type == lexer.COLON_OP {
		if name, index, ok := assignTarget(left); ok {
			tok := p.cur
			p.advance()
			rhs := p.parseExpr()
			return &ast.Assign{Tok: tok, Name: name, Index: index, Value: rhs}
		}
	}

	if isVerbToken(p.cur.Type) {
		verbTok := p.cur
		verbNode := p.parseVerbAtom()
		right := p.parseExpr()
		if vl, ok := verbNode.(*ast.VerbLit); ok {
			return &ast.Binary{Tok: verbTok, Op: vl.Op, Left: left, Right: right}
		}
		return &ast.Call{Tok: verbTok, Fn: verbNode, Args: []ast.Node{left, right}}
	}

	return left
}

// assignTarget reports whether node is a valid assignment left-hand side —
// a bare variable, or a call whose Fn is a variable (indexed assignment) —
// and extracts the name and index expressions.
func assignTarget(node ast.Node) (string, []ast.Node, bool) {
	switch n := node.(type) {
	case *ast.Var:
		return n.Name, nil, true
	case *ast.Call:
		if v, ok := n.Fn.(*ast.Var); ok {
			return v.Name, n.Args, true
		}
	}
	return "", nil, false
}

// parseVerbAtom consumes a single verb token as a value in its own right
// (so it can be assigned, passed as an argument, or wrapped by an adverb),
// then applies any postfix call/adverb attachment.
func (p *Parser) parseVerbAtom() ast.Node {
	tok := p.cur
	op, _ := verbKindOf(tok)
	p.advance()
	var node ast.Node = &ast.VerbLit{Tok: tok, Op: op}
	return p.attachPostfix(node)
}

// parsePrimary parses a noun: a literal (possibly stranded), a variable, a
// parenthesized group/list, a lambda literal, or a conditional — then
// applies postfix call/adverb attachment.
func (p *Parser) parsePrimary() ast.Node {
	var node ast.Node
	switch p.cur.Type {
	case lexer.NUMBER_LIT:
		node = p.parseAtomStrand()
	case lexer.STRING_LIT:
		tok := p.cur
		p.advance()
		node = &ast.Literal{Tok: tok, Kind: ast.LitString, StrVal: tok.Literal}
	case lexer.SYMBOL_LIT:
		tok := p.cur
		p.advance()
		node = &ast.Literal{Tok: tok, Kind: ast.LitSymbol, SymVal: tok.Literal}
	case lexer.IDENTIFIER_ID:
		tok := p.cur
		p.advance()
		node = &ast.Var{Tok: tok, Name: tok.Literal}
	case lexer.LEFT_PAREN:
		node = p.parseParenOrList()
	case lexer.LEFT_BRACE:
		node = p.parseLambda()
	case lexer.DOLLAR_OP:
		node = p.parseConditional()
	default:
		return p.parseVerbAtom()
	}
	return p.attachPostfix(node)
}

// attachPostfix repeatedly attaches `[args]` calls and whitespace-free
// adverb tokens to node until neither applies.
func (p *Parser) attachPostfix(node ast.Node) ast.Node {
	for {
		switch {
		case p.cur.Type == lexer.LEFT_BRACKET:
			tok := p.cur
			p.advance()
			args := p.parseArgList(lexer.RIGHT_BRACKET)
			node = &ast.Call{Tok: tok, Fn: node, Args: args}
		case isAdverbToken(p.cur.Type) && !p.cur.WSBefore:
			node = p.parseAdverbAttach(node)
		default:
			return node
		}
	}
}

func (p *Parser) parseAdverbAttach(child ast.Node) ast.Node {
	tok := p.cur
	op, _ := verbKindOf(tok)
	p.advance()
	eachRight, eachLeft := false, false
	if (tok.Type == lexer.SLASH_OP || tok.Type == lexer.BACKSLASH_OP) &&
		p.cur.Type == lexer.COLON_OP && !p.cur.WSBefore {
		if tok.Type == lexer.SLASH_OP {
			eachRight = true
		} else {
			eachLeft = true
		}
		p.advance()
	}
	return &ast.Adverb{Tok: tok, Op: op, Child: child, EachRight: eachRight, EachLeft: eachLeft}
}

// parseArgList parses a `;`-separated list of expressions up to and
// including the closing token.
func (p *Parser) parseArgList(closer lexer.TokenType) []ast.Node {
	args := []ast.Node{}
	if p.cur.Type == closer {
		p.advance()
		return args
	}
	args = append(args, p.parseExpr())
	for p.cur.Type == lexer.SEMICOLON_DELIM {
		p.advance()
		args = append(args, p.parseExpr())
	}
	p.expect(closer)
	return args
}

// parseParenOrList parses `(expr)` as a grouping, or `(e1;e2;...)` as a
// List literal (which evaluates to a Vector).
func (p *Parser) parseParenOrList() ast.Node {
	tok := p.cur
	p.advance()
	exprs := []ast.Node{p.parseExpr()}
	isList := false
	for p.cur.Type == lexer.SEMICOLON_DELIM {
		isList = true
		p.advance()
		exprs = append(exprs, p.parseExpr())
	}
	p.expect(lexer.RIGHT_PAREN)
	if !isList {
		return exprs[0]
	}
	return &ast.List{Tok: tok, Elements: exprs}
}

// parseLambda parses `{[x;y] e1;e2;...}`. The parameter list is optional;
// when absent the evaluator infers implicit x/y/z arity from Body.
func (p *Parser) parseLambda() ast.Node {
	tok := p.cur
	p.advance()
	var params []string
	if p.cur.Type == lexer.LEFT_BRACKET {
		p.advance()
		for p.cur.Type != lexer.RIGHT_BRACKET && p.cur.Type != lexer.EOF_TYPE {
			params = append(params, p.cur.Literal)
			p.advance()
			if p.cur.Type == lexer.SEMICOLON_DELIM {
				p.advance()
			}
		}
		p.expect(lexer.RIGHT_BRACKET)
	}
	body := []ast.Node{}
	hasReturn := true
	for p.cur.Type != lexer.RIGHT_BRACE && p.cur.Type != lexer.EOF_TYPE {
		body = append(body, p.parseExpr())
		if p.cur.Type == lexer.SEMICOLON_DELIM {
			p.advance()
			hasReturn = false
		} else {
			hasReturn = true
			break
		}
	}
	p.expect(lexer.RIGHT_BRACE)
	return &ast.Lambda{Tok: tok, Params: params, Body: body, HasReturn: hasReturn}
}

// parseConditional parses `$[cond;then;else]`.
func (p *Parser) parseConditional() ast.Node {
	tok := p.cur
	p.advance()
	p.expect(lexer.LEFT_BRACKET)
	cond := p.parseExpr()
	p.expect(lexer.SEMICOLON_DELIM)
	then := p.parseExpr()
	p.expect(lexer.SEMICOLON_DELIM)
	els := p.parseExpr()
	p.expect(lexer.RIGHT_BRACKET)
	return &ast.Conditional{Tok: tok, Cond: cond, Then: then, Else: els}
}

// parseAtomStrand collects one or more adjacent atom literals into a single
// Literal node (Strand populated when more than one atom is present). A
// `-` that's separated from the prior atom by whitespace but glued to the
// following digits continues the strand as a negative atom, rather than
// being read as subtraction — this is the one heuristic spec.md calls out
// by name for the parser to get right.
func (p *Parser) parseAtomStrand() *ast.Literal {
	first := p.parseNumberLiteral()
	items := []*ast.Literal{first}
	for {
		if p.cur.Type == lexer.NUMBER_LIT {
			items = append(items, p.parseNumberLiteral())
			continue
		}
		if p.cur.Type == lexer.MINUS_OP && p.cur.WSBefore &&
			p.peek.Type == lexer.NUMBER_LIT && !p.peek.WSBefore {
			p.advance()
			lit := p.parseNumberLiteral()
			negateLiteral(lit)
			items = append(items, lit)
			continue
		}
		break
	}
	if len(items) == 1 {
		return items[0]
	}
	return &ast.Literal{Tok: items[0].Tok, Kind: items[0].Kind, Strand: items}
}

func negateLiteral(lit *ast.Literal) {
	switch lit.Kind {
	case ast.LitInt:
		lit.IntVal = -lit.IntVal
	case ast.LitFloat:
		lit.FloatVal = -lit.FloatVal
	case ast.LitPInf:
		lit.Kind = ast.LitNInf
	}
}

func (p *Parser) parseNumberLiteral() *ast.Literal {
	tok := p.cur
	p.advance()
	lit := &ast.Literal{Tok: tok}
	text := tok.Literal
	if n := len(text); n > 0 && (text[n-1] == 'w' || text[n-1] == 'W') {
		lit.Kind = ast.LitPInf
		return lit
	}
	if hasFloatShape(text) {
		lit.Kind = ast.LitFloat
		lit.FloatVal = parseFloatLiteral(text)
		return lit
	}
	lit.Kind = ast.LitInt
	lit.IntVal = parseIntLiteral(text)
	return lit
}
