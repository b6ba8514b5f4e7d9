// SPDX-License-Identifier: MIT

package expr

import "fmt"

// node is one element of the parsed tree.
type node interface {
	eval(env Env, n int) (value, error)
}

type (
	numberNode struct{ v float64 }
	nameNode   struct{ name string }
	unaryNode  struct {
		neg bool
		x   node
	}
	binaryNode struct {
		op   tokenKind
		l, r node
	}
	callNode struct {
		fn   string
		args []node
	}
)

// Expr is a parsed arithmetic expression. It is immutable and safe for
// concurrent Eval calls.
type Expr struct {
	src   string
	root  node
	vars  []string
	calls []string
}

// Parse compiles src into an Expr.
//
// Grammar (lowest to highest precedence):
//
//	sum     := product (('+' | '-') product)*
//	product := unary (('*' | '/' | '%') unary)*
//	unary   := ('+' | '-') unary | power
//	power   := primary ('**' unary)?
//	primary := NUMBER | NAME | NAME '(' args ')' | 'np' '.' NAME '(' args ')' | '(' sum ')'
//
// So -x**2 is -(x**2) and 2**-1 is 0.5, as in ordinary arithmetic notation.
// Arity of known helpers is checked at parse time. Unknown helpers and
// unbound variables are reported by Eval; Vars and Calls let a caller check
// them up front.
func Parse(src string) (*Expr, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, seenVar: map[string]bool{}, seenCall: map[string]bool{}}
	if p.peek().kind == tokEOF {
		return nil, &SyntaxError{Pos: 0, Msg: "empty expression"}
	}
	root, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, &SyntaxError{Pos: t.pos, Msg: fmt.Sprintf("unexpected %q", t.text)}
	}

	return &Expr{src: src, root: root, vars: p.vars, calls: p.calls}, nil
}

// String returns the source text.
func (e *Expr) String() string { return e.src }

// Vars returns the variable names the expression references, in order of
// first appearance.
func (e *Expr) Vars() []string { return append([]string(nil), e.vars...) }

// Calls returns the helper names the expression calls, in order of first
// appearance.
func (e *Expr) Calls() []string { return append([]string(nil), e.calls...) }

type parser struct {
	toks     []token
	pos      int
	vars     []string
	calls    []string
	seenVar  map[string]bool
	seenCall map[string]bool
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}

	return t
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	t := p.next()
	if t.kind != kind {
		return t, &SyntaxError{Pos: t.pos, Msg: fmt.Sprintf("expected %s, found %s", what, describe(t))}
	}

	return t, nil
}

func describe(t token) string {
	if t.kind == tokEOF {
		return "end of expression"
	}

	return fmt.Sprintf("%q", t.text)
}

func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().kind
		if op != tokPlus && op != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = &binaryNode{op: op, l: left, r: right}
	}
}

func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().kind
		if op != tokStar && op != tokSlash && op != tokPercent {
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &binaryNode{op: op, l: left, r: right}
	}
}

func (p *parser) parseUnary() (node, error) {
	switch p.peek().kind {
	case tokMinus:
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &unaryNode{neg: true, x: x}, nil
	case tokPlus:
		p.next()
		return p.parseUnary()
	}

	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokPow {
		return base, nil
	}
	p.next()
	// right-associative: the exponent is itself a unary/power chain
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return &binaryNode{op: tokPow, l: base, r: exp}, nil
}

func (p *parser) parsePrimary() (node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return &numberNode{v: t.num}, nil
	case tokLParen:
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if _, err = p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return inner, nil
	case tokIdent:
		return p.parseName(t)
	}

	return nil, &SyntaxError{Pos: t.pos, Msg: "unexpected " + describe(t)}
}

// parseName handles a bare variable, a call, or a namespace-qualified call.
func (p *parser) parseName(t token) (node, error) {
	name := t.text
	if name == NamespacePrefix && p.peek().kind == tokDot {
		p.next()
		fn, err := p.expect(tokIdent, "function name after '"+NamespacePrefix+".'")
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokLParen {
			return nil, &SyntaxError{Pos: fn.pos, Msg: fmt.Sprintf("%s.%s must be called", NamespacePrefix, fn.text)}
		}
		return p.parseCall(fn)
	}
	if p.peek().kind == tokLParen {
		return p.parseCall(t)
	}
	if !p.seenVar[name] {
		p.seenVar[name] = true
		p.vars = append(p.vars, name)
	}

	return &nameNode{name: name}, nil
}

func (p *parser) parseCall(fn token) (node, error) {
	if _, err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	var args []node
	if p.peek().kind != tokRParen {
		for {
			arg, err := p.parseSum()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek().kind != tokComma {
				break
			}
			p.next()
		}
	}
	if _, err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	if !p.seenCall[fn.text] {
		p.seenCall[fn.text] = true
		p.calls = append(p.calls, fn.text)
	}
	h, ok := helpers[fn.text]
	if !ok {
		// reported by Eval, and by callers inspecting Calls()
		return &callNode{fn: fn.text, args: args}, nil
	}
	if len(args) < h.minArgs || (h.maxArgs >= 0 && len(args) > h.maxArgs) {
		return nil, &CallError{Func: fn.text, Msg: fmt.Sprintf("takes %s, got %d", h.arity(), len(args))}
	}

	return &callNode{fn: fn.text, args: args}, nil
}
