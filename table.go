package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol to the Path of its Leaf in a Huffman tree.
//
// Symbols that have no Leaf in the tree have no entry; Lookup reports them as
// absent and their Path is empty.  A tree that is a bare Leaf gives that
// Leaf's Symbol an empty, but present, Path.
//
type CodeTable struct {
	paths   [NumSymbols]Path
	present [NumSymbols]bool
	leaves  int
	minSize int
	maxSize int
}

// BuildCodeTable walks the tree rooted at root, assigning '0' to each left
// branch and '1' to each right branch, and records the Path of every Leaf.
func BuildCodeTable(root Node) *CodeTable {
	t := &CodeTable{}

	if leaf, ok := root.(*Leaf); ok {
		t.record(leaf, "")
		return t
	}

	// The walk uses an explicit stack of Internal nodes; Leaves are
	// recorded without being pushed.  The stack depth never exceeds the
	// tree height, which is at most NumSymbols-1.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		node *Internal
		path Path
		x    byte
	}

	stack := make([]stackItem, 0, 16)

	stackTop := func() *stackItem {
		return &stack[len(stack)-1]
	}

	stackPush := func(node *Internal, path Path) {
		assert.Assertf(len(stack) < NumSymbols, "tree deeper than %d", NumSymbols-1)
		stack = append(stack, stackItem{node: node, path: path})
	}

	stackPop := func() {
		stack[len(stack)-1] = stackItem{}
		stack = stack[:len(stack)-1]
	}

	processChild := func(child Node, path Path) {
		switch x := child.(type) {
		case *Internal:
			stackPush(x, path)
		case *Leaf:
			t.record(x, path)
		}
	}

	// And now the tree-walking loop.
	stackPush(root.(*Internal), "")
	for len(stack) != 0 {
		top := stackTop()
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.left, top.path.Child(false))
		case 1:
			processChild(top.node.right, top.path.Child(true))
		case 2:
			stackPop()
		}
	}

	return t
}

// Lookup returns the Path for the given Symbol, and whether the Symbol has a
// Leaf in the tree.
func (t *CodeTable) Lookup(symbol Symbol) (Path, bool) {
	return t.paths[symbol], t.present[symbol]
}

// Encode returns the Path for the given Symbol, or "" if it has none.
func (t *CodeTable) Encode(symbol Symbol) Path {
	return t.paths[symbol]
}

// NumLeaves returns the number of Symbols present in the table.
func (t *CodeTable) NumLeaves() int {
	return t.leaves
}

// MinSize is the bit length of the shortest Path in the table.
func (t *CodeTable) MinSize() int {
	return t.minSize
}

// MaxSize is the bit length of the longest Path in the table.
func (t *CodeTable) MaxSize() int {
	return t.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol.
// Absent Symbols have length 0.
func (t *CodeTable) SizeBySymbol() []int {
	out := make([]int, NumSymbols)
	for symbol := range t.paths {
		out[symbol] = t.paths[symbol].Len()
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.  Absent Symbols are omitted.
func (t *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	for symbol := range t.paths {
		if t.present[symbol] {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, t.paths[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t *CodeTable) record(leaf *Leaf, path Path) {
	assert.Assertf(!t.present[leaf.symbol], "symbol %d has two leaves", leaf.symbol)

	size := path.Len()
	t.paths[leaf.symbol] = path
	t.present[leaf.symbol] = true
	t.leaves++

	if t.leaves == 1 {
		t.minSize = size
		t.maxSize = size
	} else if t.minSize > size {
		t.minSize = size
	} else if t.maxSize < size {
		t.maxSize = size
	}
}
