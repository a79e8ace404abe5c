package graphcalc

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// expr    := term (('+'|'-') term)*
// term    := power (('*'|'/') power)*
// power   := unary ('^' power)?
// unary   := '-' unary | atom
// atom    := num | const | var | call | '(' expr ')'
// call    := funcname '(' expr ')'
//
// Unary minus binds less tightly than ^ on its right, so -x^2 is -(x^2), but a
// minus in an exponent applies only to the exponent, so x^-y*z is (x^(-y))*z.

// Expr is a parsed expression. An Expr is never modified after parsing, so it
// is safe to evaluate concurrently.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// tab is the table the expression was parsed against.
	tab *Table
	// names is the sorted list of names in variable positions.
	names []string
}

// parsectx holds general data for parsing.
type parsectx struct {
	// names is the set of variable names that have been seen this parse.
	names map[string]bool
	// tab resolves constant and function names.
	tab *Table
}

// scanner reads a token list produced by tokenize. Once the scanner reaches
// the EOF token, it returns EOF forever.
type scanner struct {
	toks []lexToken
	i    int
	p    lexToken
}

func (s *scanner) next() lexToken {
	if s.p.kind != tokenNone {
		tok := s.p
		s.p = lexToken{}
		return tok
	}
	tok := s.toks[s.i]
	if s.i < len(s.toks)-1 {
		s.i++
	}
	return tok
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (s *scanner) push(tok lexToken) {
	if s.p.kind != tokenNone {
		panic("graphcalc: double push")
	}
	s.p = tok
}

// must scans the pushed token. Panics if there is no pushed token.
func (s *scanner) must() lexToken {
	tok := s.p
	if tok.kind == tokenNone {
		panic("graphcalc: no pushed token")
	}
	s.p = lexToken{}
	return tok
}

// Parse normalizes and parses an expression so it can be evaluated or
// sampled. The error, if any, matches ErrLex or ErrParse and implements
// InputError.
func Parse(src string) (*Expr, error) {
	return parse(Normalize(src), defaultTable)
}

// parse parses an already normalized expression.
func parse(src string, tab *Table) (*Expr, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	if len(toks) == 1 {
		return nil, &EmptyExpressionError{Col: toks[0].pos}
	}
	scan := &scanner{toks: toks}
	p := parsectx{
		names: make(map[string]bool),
		tab:   tab,
	}
	n, err := parseterm(scan, &p, exprprec)
	if err != nil {
		return nil, err
	}
	if tok := scan.must(); tok.kind != tokenEOF {
		return nil, itShouldNotHaveEndedThisWay(tok, lexToken{})
	}
	ex := Expr{
		n:     n,
		tab:   tab,
		names: make([]string, 0, len(p.names)),
	}
	for k := range p.names {
		ex.names = append(ex.names, k)
	}
	sortstrs(ex.names)
	return &ex, nil
}

// parseterm parses operands and operators more binding than until. If there
// is no error, then parseterm pushes the last token it scans, including EOF.
func parseterm(scan *scanner, p *parsectx, until operator) (*node, error) {
	n, err := parselhs(scan, p, until)
	if err != nil {
		return nil, err
	}
	for {
		tok := scan.next()
		switch tok.kind {
		case tokenOp:
			prec := binop(tok.text)
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, p, prec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: prec.op, left: n, right: rhs}
		case tokenNum, tokenIdent, tokenOpen:
			// Normalize makes every implicit multiplication explicit, so two
			// adjacent terms are an error.
			return nil, &UnexpectedTokenError{Col: tok.pos, Token: tok.text}
		case tokenClose, tokenSep, tokenEOF:
			// End of expression.
			scan.push(tok)
			return n, nil
		default:
			panic("graphcalc: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are unary,
// and any encountered token must be valid as the start of a subexpression.
func parselhs(scan *scanner, p *parsectx, until operator) (*node, error) {
	tok := scan.next()
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
		}
		return &node{kind: nodeNum, name: tok.text, val: v}, nil
	case tokenIdent:
		if p.tab.IsFunc(tok.text) {
			return parsecall(scan, p, tok)
		}
		if _, ok := p.tab.Const(tok.text); ok {
			return &node{kind: nodeConst, name: tok.text}, nil
		}
		p.names[tok.text] = true
		return &node{kind: nodeVar, name: tok.text}, nil
	case tokenOp:
		prec := unop(tok.text)
		if prec.op == nodeNone {
			return nil, &UnexpectedTokenError{Col: tok.pos, Token: tok.text}
		}
		if !prec.moreBinding(until) {
			// x^-y -> x^(-y)
			// Just use the new operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := parseterm(scan, p, prec)
		if err != nil {
			return nil, err
		}
		return &node{kind: prec.op, left: rhs}, nil
	case tokenOpen:
		rhs, err := parseterm(scan, p, exprprec)
		if err != nil {
			return nil, err
		}
		if end := scan.must(); end.kind != tokenClose {
			return nil, itShouldNotHaveEndedThisWay(end, tok)
		}
		return rhs, nil
	case tokenClose:
		return nil, &UnexpectedTokenError{Col: tok.pos, Token: tok.text}
	case tokenSep:
		return nil, &SeparatorError{Col: tok.pos, Sep: tok.text}
	case tokenEOF:
		return nil, &UnexpectedTokenError{Col: tok.pos}
	default:
		panic("graphcalc: unknown token: " + tok.String())
	}
}

// parsecall parses the bracketed argument of a call to the function named by
// fn. Every function takes exactly one argument.
func parsecall(scan *scanner, p *parsectx, fn lexToken) (*node, error) {
	tok := scan.next()
	switch tok.kind {
	case tokenOpen:
		arg, len, err := parsearglist(scan, p, tok)
		if err != nil {
			return nil, err
		}
		if len != 1 {
			return nil, &CallError{Col: tok.pos, Func: fn.text, Len: len}
		}
		return &node{kind: nodeCall, name: fn.text, fn: p.tab.funcs[fn.text], left: arg}, nil
	case tokenNum, tokenIdent, tokenOp:
		// A bare argument, like sin x. Report it as a one-argument call so
		// the message says the call is the problem.
		return nil, &CallError{Col: tok.pos, Func: fn.text, Len: 1}
	default:
		return nil, &CallError{Col: tok.pos, Func: fn.text, Len: 0}
	}
}

// parsearglist parses a bracketed list of zero or more args following the
// open bracket. It returns the first argument and the number of arguments.
func parsearglist(scan *scanner, p *parsectx, open lexToken) (*node, int, error) {
	tok := scan.next()
	if tok.kind == tokenClose {
		return nil, 0, nil
	}
	scan.push(tok)
	var first *node
	len := 0
	for {
		rhs, err := parseterm(scan, p, exprprec)
		if err != nil {
			return nil, 0, err
		}
		if first == nil {
			first = rhs
		}
		len++
		switch end := scan.must(); end.kind {
		case tokenClose:
			return first, len, nil
		case tokenSep:
			// Keep counting so the error reports the whole call.
		case tokenEOF:
			return nil, 0, &BracketError{Col: open.pos, Left: open.text}
		default:
			panic("graphcalc: parseterm ended on non-end token " + end.String())
		}
	}
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token at the end of a subexpression. open is the bracket that the
// expression should have closed, or the zero token if none.
func itShouldNotHaveEndedThisWay(tok, open lexToken) error {
	switch tok.kind {
	case tokenEOF:
		// Unexpected EOF implies an open bracket that was not closed.
		return &BracketError{Col: open.pos, Left: open.text}
	case tokenClose:
		// A close bracket at the top level has no open bracket.
		return &BracketError{Col: tok.pos, Right: tok.text}
	case tokenSep:
		// Separator outside a function call.
		return &SeparatorError{Col: tok.pos, Sep: tok.text}
	default:
		panic("graphcalc: it really should not have ended this way: " + tok.String())
	}
}

// Vars returns the names in variable positions of the expression, sorted.
// Only x can be bound; any other name fails evaluation.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// UsesX returns whether the free variable x appears anywhere in the
// expression.
func (e *Expr) UsesX() bool {
	return e.n.has(func(n *node) bool {
		return n.kind == nodeVar && n.name == FreeVar
	})
}

// String creates a fully parenthesized representation of the parsed
// expression. The result parses to the same expression.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b)
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*":
		return operator{5, false, nodeMul}
	case "/":
		return operator{5, false, nodeDiv}
	case "^":
		return operator{15, true, nodePow}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of nodeNone.
func unop(text string) operator {
	switch text {
	case "-":
		return operator{10, true, nodeNeg}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
