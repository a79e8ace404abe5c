package graphcalc

import (
	"strings"
)

// node is a node in the abstract syntax tree of an expression. Each node has
// exactly one parent, and nodes are never modified after parsing.
type node struct {
	kind nodeKind

	// name is the source text of a number or the name of a variable,
	// constant, or function.
	name string
	// val is the value of a number.
	val float64
	// fn is the function to call for nodeCall.
	fn builtin

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum   // val
	nodeVar   // lookup(name) in the environment
	nodeConst // lookup(name) in the table

	nodeCall // fn(left)

	nodeNeg // -left
	nodeAdd // left + right
	nodeSub // left - right
	nodeMul // left * right
	nodeDiv // left / right
	nodePow // left ^ right
)

//go:generate stringer -type=nodeKind -trimprefix=node

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes n fully parenthesized, so that the result parses back to the
// same tree.
func (n *node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b)
		}
		b.WriteByte('$')
	case nodeNum, nodeVar, nodeConst:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		n.left.fmt(b)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b)
	case nodeAdd:
		n.binfmt(b, " + ")
	case nodeSub:
		n.binfmt(b, " - ")
	case nodeMul:
		n.binfmt(b, " * ")
	case nodeDiv:
		n.binfmt(b, " / ")
	case nodePow:
		n.binfmt(b, " ^ ")
	default:
		panic("graphcalc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) binfmt(b *strings.Builder, op string) {
	n.left.fmt(b)
	b.WriteString(op)
	n.right.fmt(b)
}

// has reports whether any node in the tree rooted at n satisfies f.
func (n *node) has(f func(*node) bool) bool {
	if n == nil {
		return false
	}
	if f(n) {
		return true
	}
	return n.left.has(f) || n.right.has(f)
}
