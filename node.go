package huffman

import (
	"fmt"
	"math"
)

// Node is a node of a Huffman tree: either a *Leaf or an *Internal.  Nodes are
// immutable once constructed.
type Node interface {
	// Count returns the number of occurrences covered by this node.
	Count() uint64

	// Symbol returns the representative symbol of this node, which is the
	// minimum symbol among its leaves.  It is used only for tie-breaking.
	Symbol() Symbol

	fmt.Stringer

	isNode()
}

// Leaf is a Node for a single Symbol.
type Leaf struct {
	count  uint64
	symbol Symbol
}

// NewLeaf constructs a Leaf.
func NewLeaf(count uint64, symbol Symbol) *Leaf {
	return &Leaf{count: count, symbol: symbol}
}

// Count returns the number of occurrences of this Leaf's Symbol.
func (leaf *Leaf) Count() uint64 {
	return leaf.count
}

// Symbol returns this Leaf's Symbol.
func (leaf *Leaf) Symbol() Symbol {
	return leaf.symbol
}

// String returns a short representation of this Leaf.
func (leaf *Leaf) String() string {
	return fmt.Sprintf("Leaf{%d, %d}", leaf.count, leaf.symbol)
}

func (*Leaf) isNode() {}

// Internal is a Node joining two subtrees.
type Internal struct {
	count  uint64
	symbol Symbol
	left   Node
	right  Node
}

// NewInternal constructs an Internal node over left and right.  Its count is
// the sum of theirs (saturating at math.MaxUint64) and its representative
// symbol is the lesser of theirs.
//
func NewInternal(left, right Node) *Internal {
	lc, rc := left.Count(), right.Count()

	// Compute count using saturating addition
	count := lc + rc
	if count < lc {
		count = math.MaxUint64
	}

	symbol := left.Symbol()
	if rs := right.Symbol(); rs < symbol {
		symbol = rs
	}

	return &Internal{count: count, symbol: symbol, left: left, right: right}
}

// Count returns the number of occurrences of all Symbols beneath this node.
func (node *Internal) Count() uint64 {
	return node.count
}

// Symbol returns the minimum Symbol beneath this node.
func (node *Internal) Symbol() Symbol {
	return node.symbol
}

// Left returns the subtree reached by a '0' bit.
func (node *Internal) Left() Node {
	return node.left
}

// Right returns the subtree reached by a '1' bit.
func (node *Internal) Right() Node {
	return node.right
}

// String returns a short representation of this node, without its children.
func (node *Internal) String() string {
	return fmt.Sprintf("Internal{%d, %d}", node.count, node.symbol)
}

func (*Internal) isNode() {}

// Less reports whether a sorts before b: by Count, then by Symbol.
func Less(a, b Node) bool {
	ac, bc := a.Count(), b.Count()
	if ac != bc {
		return ac < bc
	}
	return a.Symbol() < b.Symbol()
}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)
