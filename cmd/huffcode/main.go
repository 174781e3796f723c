// Command huffcode Huffman-encodes a file and writes the packed bits to
// another file.  The tree is not written; the output cannot be decoded on its
// own.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	huffman "github.com/chronos-tachyon/huffcode"
)

func main() {
	var (
		flagIn      = flag.String("in", "", "source file to encode (required)")
		flagOut     = flag.String("out", "", "target file for packed bits (required)")
		flagShards  = flag.Int("shards", 1, "count frequencies over this many concurrent shards")
		flagDump    = flag.Bool("dump", false, "write the code table to stderr")
		flagVerbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *flagIn == "" || *flagOut == "" {
		fmt.Fprintln(os.Stderr, "usage: huffcode -in <source> -out <target> [-shards N] [-dump] [-v]")
		os.Exit(2)
	}

	cfg := config{
		in:     *flagIn,
		out:    *flagOut,
		shards: *flagShards,
		dump:   *flagDump,
	}
	if err := run(context.Background(), logger, cfg); err != nil {
		logger.Error("huffcode failed", "in", cfg.in, "out", cfg.out, "err", err)
		os.Exit(1)
	}
}

type config struct {
	in     string
	out    string
	shards int
	dump   bool
}

func run(ctx context.Context, logger *slog.Logger, cfg config) error {
	data, err := os.ReadFile(cfg.in)
	if err != nil {
		return err
	}
	logger.Debug("read source", "path", cfg.in, "bytes", len(data))

	freqs, err := huffman.CountFrequenciesParallel(ctx, data, cfg.shards)
	if err != nil {
		return fmt.Errorf("count frequencies: %w", err)
	}

	root := huffman.BuildTree(freqs)
	table := huffman.BuildCodeTable(root)
	logger.Debug("built tree",
		"weight", root.Count(),
		"leaves", table.NumLeaves(),
		"min_bits", table.MinSize(),
		"max_bits", table.MaxSize())

	if cfg.dump {
		if _, err := table.Dump(os.Stderr); err != nil {
			return err
		}
	}

	bits := huffman.Encode(data, table)
	packed, err := huffman.Pack(bits)
	if err != nil {
		return fmt.Errorf("pack: %w", err)
	}

	if err := os.WriteFile(cfg.out, packed, 0o644); err != nil {
		return err
	}
	logger.Info("encoded", "in", cfg.in, "out", cfg.out, "bytes_in", len(data), "bits", bits.Len(), "bytes_out", len(packed))
	return nil
}
