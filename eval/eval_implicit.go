package eval

import "github.com/gomix-k/gomix-k/ast"

// implicitScanner walks a lambda body collecting which of the implicit
// parameter names x/y/z it references, stopping at a nested Lambda since
// that one owns its own x/y/z scope rather than inheriting the outer
// lambda's.
type implicitScanner struct{ used map[string]bool }

func (s *implicitScanner) VisitLiteral(n *ast.Literal) {}
func (s *implicitScanner) VisitVerbLit(n *ast.VerbLit) {}
func (s *implicitScanner) VisitLambda(n *ast.Lambda)   {}

func (s *implicitScanner) VisitVar(n *ast.Var) {
	if n.Name == "x" || n.Name == "y" || n.Name == "z" {
		s.used[n.Name] = true
	}
}

func (s *implicitScanner) VisitUnary(n *ast.Unary) { n.Operand.Accept(s) }

func (s *implicitScanner) VisitBinary(n *ast.Binary) {
	n.Left.Accept(s)
	n.Right.Accept(s)
}

func (s *implicitScanner) VisitCall(n *ast.Call) {
	n.Fn.Accept(s)
	for _, a := range n.Args {
		a.Accept(s)
	}
}

func (s *implicitScanner) VisitSeq(n *ast.Seq) {
	for _, e := range n.Exprs {
		e.Accept(s)
	}
}

func (s *implicitScanner) VisitList(n *ast.List) {
	for _, e := range n.Elements {
		e.Accept(s)
	}
}

func (s *implicitScanner) VisitConditional(n *ast.Conditional) {
	n.Cond.Accept(s)
	n.Then.Accept(s)
	n.Else.Accept(s)
}

func (s *implicitScanner) VisitAdverb(n *ast.Adverb) { n.Child.Accept(s) }

func (s *implicitScanner) VisitAssign(n *ast.Assign) {
	for _, idx := range n.Index {
		idx.Accept(s)
	}
	n.Value.Accept(s)
}

// ImplicitParams infers a lambda's parameter list from its body when the
// source gave no explicit `[x;y]` header: arity tracks the highest-named
// implicit variable used (`z` implies `x` and `y` are parameters too, even
// if unreferenced), matching the convention original_source/eval.c's
// surviving implicit-param scan follows.
func ImplicitParams(body []ast.Node) []string {
	s := &implicitScanner{used: map[string]bool{}}
	for _, n := range body {
		n.Accept(s)
	}
	n := 0
	if s.used["x"] {
		n = 1
	}
	if s.used["y"] {
		n = 2
	}
	if s.used["z"] {
		n = 3
	}
	return []string{"x", "y", "z"}[:n]
}
