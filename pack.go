package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Encode concatenates the Path of each byte of input, in input order.
//
// Bytes whose Symbol is absent from the table contribute nothing.  A table
// built by BuildTree has every Symbol present.
//
func Encode(input []byte, t *CodeTable) Path {
	var size int
	for _, b := range input {
		size += t.paths[b].Len()
	}

	var sb strings.Builder
	sb.Grow(size)
	for _, b := range input {
		sb.WriteString(string(t.paths[b]))
	}
	return Path(sb.String())
}

// Pack converts a Path into bytes, eight bits per byte with the first bit in
// the most significant position.  The last byte is padded with '0' bits.  An
// empty Path yields an empty (non-nil) slice.
//
// The amount of padding is not recorded.
//
func Pack(bits Path) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow((bits.Len() + 7) / 8)

	w := bitio.NewWriter(&buf)
	for i := 0; i < len(bits); i++ {
		var bit bool
		switch bits[i] {
		case '0':
			bit = false
		case '1':
			bit = true
		default:
			return nil, fmt.Errorf("pack: non-binary character %q at bit %d: %w", bits[i], i, ErrInvalidArgument)
		}
		if err := w.WriteBool(bit); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// EncodeToBytes encodes input using the Huffman tree rooted at root and packs
// the result.
func EncodeToBytes(input []byte, root Node) []byte {
	out, err := Pack(Encode(input, BuildCodeTable(root)))
	assert.Assertf(err == nil, "Pack of encoded input failed: %v", err)
	return out
}
