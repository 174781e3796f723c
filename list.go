package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// List is an ordered sequence of Nodes.  A List is a value: operations that
// change the sequence return a new List and leave the receiver untouched.
//
// Lists produced by InsertSorted, SortUnordered and CoalesceOnce are sorted
// ascending by Less.
//
type List struct {
	nodes []Node
}

// NewList constructs a List holding nodes in the given order.
func NewList(nodes ...Node) List {
	list := List{nodes: make([]Node, len(nodes))}
	copy(list.nodes, nodes)
	return list
}

// BaseList constructs the unsorted List with one Leaf per Symbol, in Symbol
// order.  Symbols with a count of zero are included.
func BaseList(freqs Frequencies) List {
	nodes := make([]Node, NumSymbols)
	for symbol := range freqs {
		nodes[symbol] = NewLeaf(freqs[symbol], Symbol(symbol))
	}
	return List{nodes: nodes}
}

// Len returns the number of Nodes in the List.
func (list List) Len() int {
	return len(list.nodes)
}

// At returns the Node at the given 0-based index.
func (list List) At(index int) (Node, error) {
	if index < 0 || index >= len(list.nodes) {
		return nil, fmt.Errorf("list index %d with length %d: %w", index, len(list.nodes), ErrOutOfRange)
	}
	return list.nodes[index], nil
}

// Nodes returns a copy of the List's Nodes.
func (list List) Nodes() []Node {
	out := make([]Node, len(list.nodes))
	copy(out, list.nodes)
	return out
}

// IsSorted reports whether the List is sorted ascending by Less.
func (list List) IsSorted() bool {
	for i := 1; i < len(list.nodes); i++ {
		if Less(list.nodes[i], list.nodes[i-1]) {
			return false
		}
	}
	return true
}

// InsertSorted returns a new List with node inserted into this already-sorted
// List.  The node goes at the smallest index whose current element is not
// less than node, i.e. before any elements that rank equal to it.
//
func (list List) InsertSorted(node Node) List {
	index := sort.Search(len(list.nodes), func(i int) bool {
		return !Less(list.nodes[i], node)
	})

	nodes := make([]Node, 0, len(list.nodes)+1)
	nodes = append(nodes, list.nodes[:index]...)
	nodes = append(nodes, node)
	nodes = append(nodes, list.nodes[index:]...)
	return List{nodes: nodes}
}

// SortUnordered returns a sorted copy of an arbitrarily ordered List.
//
// The result is the same as recursively sorting the tail and inserting the
// head into it: elements are inserted from last to first.
//
func SortUnordered(list List) List {
	var sorted List
	for i := len(list.nodes) - 1; i >= 0; i-- {
		sorted = sorted.InsertSorted(list.nodes[i])
	}
	return sorted
}

// Dump writes a programmer-readable debugging dump of the List to the given
// writer.
func (list List) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("List{\n")
	for i, node := range list.nodes {
		fmt.Fprintf(&buf, "\t[%d] = %s\n", i, node)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
