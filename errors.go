package huffman

import (
	"errors"
)

// ErrOutOfRange is returned when an index or path reaches past the end of a
// List or tree.
var ErrOutOfRange = errors.New("out of range")

// ErrInvalidArgument is returned when an operation's precondition on its input
// does not hold.
var ErrInvalidArgument = errors.New("invalid argument")
