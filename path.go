package huffman

import (
	"fmt"
	"strconv"
)

// Path represents a root-to-node route through a Huffman tree as a sequence
// of '0' (left) and '1' (right) characters.  A Leaf's Path is its code.
type Path string

// Len returns the number of bits in the Path.
func (p Path) Len() int {
	return len(p)
}

// Child returns the Path extended by one bit: '1' if right, else '0'.
func (p Path) Child(right bool) Path {
	if right {
		return p + "1"
	}
	return p + "0"
}

// Valid reports whether every character of the Path is '0' or '1'.
func (p Path) Valid() bool {
	for i := 0; i < len(p); i++ {
		if p[i] != '0' && p[i] != '1' {
			return false
		}
	}
	return true
}

// String returns the quoted representation of this Path.
func (p Path) String() string {
	return strconv.Quote(string(p))
}

var _ fmt.Stringer = Path("")
