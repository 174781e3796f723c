package huffman

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// Frequencies holds the number of occurrences of each Symbol, indexed by
// Symbol value.
//
// Input units outside the 256-symbol alphabet are silently skipped.  Byte
// input can never produce such a unit; only CountText, which reads runes, can
// encounter one.
//
type Frequencies [NumSymbols]uint64

// CountFrequencies tallies each byte of data.  Empty input yields all-zero
// counts.
func CountFrequencies(data []byte) Frequencies {
	var freqs Frequencies
	freqs.add(data)
	return freqs
}

// CountText tallies each rune of s.  Runes above MaxSymbol are skipped.
func CountText(s string) Frequencies {
	var freqs Frequencies
	for _, ch := range s {
		if ch >= 0 && ch <= rune(MaxSymbol) {
			freqs[ch]++
		}
	}
	return freqs
}

// CountFrequenciesParallel tallies data by splitting it into at most shards
// contiguous pieces which are counted concurrently.  The result is identical
// to CountFrequencies(data).  The only possible error is ctx.Err().
//
func CountFrequenciesParallel(ctx context.Context, data []byte, shards int) (Frequencies, error) {
	if shards > len(data) {
		shards = len(data)
	}
	if shards <= 1 {
		if err := ctx.Err(); err != nil {
			return Frequencies{}, err
		}
		return CountFrequencies(data), nil
	}

	shardSize := (len(data) + shards - 1) / shards
	partial := make([]Frequencies, shards)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < shards; i++ {
		i := i
		lo := i * shardSize
		hi := lo + shardSize
		if hi > len(data) {
			hi = len(data)
		}
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			partial[i].add(data[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Frequencies{}, err
	}

	var freqs Frequencies
	for i := range partial {
		freqs.merge(&partial[i])
	}
	return freqs, nil
}

// Total returns the sum of all counts.
func (freqs *Frequencies) Total() uint64 {
	var sum uint64
	for _, n := range freqs {
		sum += n
	}
	return sum
}

// Dump writes a programmer-readable listing of the nonzero counts to the given
// writer.
func (freqs *Frequencies) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Frequencies{\n")
	for symbol, n := range freqs {
		if n != 0 {
			fmt.Fprintf(&buf, "\t%d: %d\n", symbol, n)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (freqs *Frequencies) add(data []byte) {
	for _, b := range data {
		freqs[b]++
	}
}

func (freqs *Frequencies) merge(other *Frequencies) {
	for symbol, n := range other {
		freqs[symbol] += n
	}
}
