package ast

import (
	"bytes"
	"fmt"
)

const indentSize = 2

// Printer is a debug Visitor that renders a tree of Node values as indented
// text, in the spirit of the teacher's PrintingVisitor — for tests that
// want to assert on shape without a full evaluator round-trip.
type Printer struct {
	Indent int
	Buf    bytes.Buffer
}

func (p *Printer) pad() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

func (p *Printer) line(format string, args ...interface{}) {
	p.pad()
	p.Buf.WriteString(fmt.Sprintf(format, args...))
	p.Buf.WriteString("\n")
}

func (p *Printer) descend(n Node) {
	p.Indent += indentSize
	n.Accept(p)
	p.Indent -= indentSize
}

func (p *Printer) VisitLiteral(n *Literal) {
	if len(n.Strand) > 0 {
		p.line("Strand(%s)", n.Literal())
		return
	}
	p.line("Literal(%s)", n.Literal())
}

func (p *Printer) VisitVar(n *Var) {
	p.line("Var(%s)", n.Name)
}

func (p *Printer) VisitVerbLit(n *VerbLit) {
	p.line("VerbLit(%s)", n.Literal())
}

func (p *Printer) VisitUnary(n *Unary) {
	p.line("Unary(%s)", n.Literal())
	p.descend(n.Operand)
}

func (p *Printer) VisitBinary(n *Binary) {
	p.line("Binary(%s)", n.Literal())
	p.descend(n.Left)
	p.descend(n.Right)
}

func (p *Printer) VisitCall(n *Call) {
	p.line("Call")
	p.descend(n.Fn)
	for _, a := range n.Args {
		p.descend(a)
	}
}

func (p *Printer) VisitSeq(n *Seq) {
	p.line("Seq")
	for _, e := range n.Exprs {
		p.descend(e)
	}
}

func (p *Printer) VisitList(n *List) {
	p.line("List")
	for _, e := range n.Elements {
		p.descend(e)
	}
}

func (p *Printer) VisitConditional(n *Conditional) {
	p.line("Conditional")
	p.descend(n.Cond)
	p.descend(n.Then)
	p.descend(n.Else)
}

func (p *Printer) VisitAdverb(n *Adverb) {
	p.line("Adverb(%s eachRight=%v eachLeft=%v)", n.Literal(), n.EachRight, n.EachLeft)
	p.descend(n.Child)
}

func (p *Printer) VisitLambda(n *Lambda) {
	p.line("Lambda(params=%v)", n.Params)
	for _, e := range n.Body {
		p.descend(e)
	}
}

func (p *Printer) VisitAssign(n *Assign) {
	p.line("Assign(%s)", n.Name)
	for _, idx := range n.Index {
		p.descend(idx)
	}
	p.descend(n.Value)
}
