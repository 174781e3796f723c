// Package huffman builds Huffman prefix codes over the 256-symbol byte
// alphabet and uses them to pack a byte stream into a bit sequence.
//
// The pipeline runs strictly forward:
//
//     CountFrequencies → BaseList → SortUnordered → CoalesceAll → BuildCodeTable → Encode → Pack
//
// BuildTree and EncodeToBytes compose the two halves.  Ties between equally
// frequent nodes are broken by representative symbol, so the output is fully
// deterministic.  The tree itself is not serialized alongside the payload.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
