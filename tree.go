package huffman

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// CoalesceOnce merges the first two Nodes of a sorted List into a new
// Internal node, the first becoming its left child and the second its right,
// and inserts that node back into the remainder.  The result is one element
// shorter than the input.
//
// The List must hold at least 2 Nodes.
//
func CoalesceOnce(list List) (List, error) {
	if list.Len() < 2 {
		return List{}, fmt.Errorf("coalesce list of length %d, need at least 2: %w", list.Len(), ErrInvalidArgument)
	}

	merged := NewInternal(list.nodes[0], list.nodes[1])
	rest := List{nodes: list.nodes[2:]}
	return rest.InsertSorted(merged), nil
}

// CoalesceAll repeatedly applies CoalesceOnce until a single Node remains,
// and returns that Node as the root of the tree.  A List of length 1 yields
// its only element unchanged.
//
// The List must not be empty.
//
func CoalesceAll(list List) (Node, error) {
	if list.Len() == 0 {
		return nil, fmt.Errorf("coalesce empty list: %w", ErrInvalidArgument)
	}

	for list.Len() > 1 {
		var err error
		list, err = CoalesceOnce(list)
		if err != nil {
			return nil, err
		}
	}
	return list.nodes[0], nil
}

// BuildTree constructs the Huffman tree for the given counts.  Every Symbol
// participates, including those with a count of zero, so the tree always has
// NumSymbols leaves.
//
func BuildTree(freqs Frequencies) Node {
	sorted := SortUnordered(BaseList(freqs))
	assert.Assertf(sorted.IsSorted(), "BaseList of %d leaves did not sort", sorted.Len())

	root, err := CoalesceAll(sorted)
	assert.Assertf(err == nil, "CoalesceAll of %d leaves failed: %v", sorted.Len(), err)
	return root
}

// Walk follows path from root and returns the Node it arrives at.  An empty
// path returns root itself.
func Walk(root Node, path Path) (Node, error) {
	node := root
	for i := 0; i < len(path); i++ {
		internal, ok := node.(*Internal)
		if !ok {
			return nil, fmt.Errorf("path %s continues past leaf at bit %d: %w", path, i, ErrOutOfRange)
		}
		switch path[i] {
		case '0':
			node = internal.left
		case '1':
			node = internal.right
		default:
			return nil, fmt.Errorf("path %s has non-binary character %q at bit %d: %w", path, path[i], i, ErrInvalidArgument)
		}
	}
	return node, nil
}
