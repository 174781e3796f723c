package huffman

import (
	"errors"
	"math/rand"
	"testing"
)

func sumCounts(list List) uint64 {
	var sum uint64
	for _, node := range list.Nodes() {
		sum += node.Count()
	}
	return sum
}

func TestCoalesceOnce(t *testing.T) {
	a := NewLeaf(1, 'a')
	b := NewLeaf(2, 'b')
	c := NewLeaf(5, 'c')

	list := NewList(a, b, c)
	result, err := CoalesceOnce(list)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := result.Len(); n != 2 {
		t.Errorf("expected length 2, got %d", n)
	}

	first, _ := result.At(0)
	merged, ok := first.(*Internal)
	if !ok {
		t.Fatalf("expected merged node first, got %v", first)
	}
	if merged.Count() != 3 {
		t.Errorf("expected merged count 3, got %d", merged.Count())
	}
	if merged.Left() != a || merged.Right() != b {
		t.Errorf("wrong children: %v, %v", merged.Left(), merged.Right())
	}
	if second, _ := result.At(1); second != c {
		t.Errorf("expected %v second, got %v", c, second)
	}
	if sumCounts(list) != sumCounts(result) {
		t.Errorf("total count changed: %d → %d", sumCounts(list), sumCounts(result))
	}
}

func TestCoalesceOnce_TooShort(t *testing.T) {
	for _, list := range []List{{}, NewList(NewLeaf(1, 'a'))} {
		_, err := CoalesceOnce(list)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("length %d: expected ErrInvalidArgument, got %v", list.Len(), err)
		}
	}
}

func TestCoalesceOnce_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	var freqs Frequencies
	for symbol := range freqs {
		freqs[symbol] = uint64(rng.Intn(100))
	}

	list := SortUnordered(BaseList(freqs))
	total := sumCounts(list)
	for list.Len() > 1 {
		k := list.Len()
		var err error
		list, err = CoalesceOnce(list)
		if err != nil {
			t.Fatalf("length %d: unexpected error: %v", k, err)
		}
		if list.Len() != k-1 {
			t.Fatalf("expected length %d, got %d", k-1, list.Len())
		}
		if !list.IsSorted() {
			t.Fatalf("length %d: result not sorted", list.Len())
		}
		if sum := sumCounts(list); sum != total {
			t.Fatalf("length %d: total count changed: %d → %d", list.Len(), total, sum)
		}
	}
}

func TestCoalesceAll(t *testing.T) {
	a := NewLeaf(1, 'a')
	b := NewLeaf(2, 'b')

	root, err := CoalesceAll(NewList(a, b))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	node, ok := root.(*Internal)
	if !ok {
		t.Fatalf("expected Internal root, got %v", root)
	}
	if node.Symbol() != 'a' {
		t.Errorf("expected representative %q, got %q", 'a', node.Symbol())
	}
	if node.Left() != a || node.Right() != b {
		t.Errorf("wrong children: %v, %v", node.Left(), node.Right())
	}
}

func TestCoalesceAll_Single(t *testing.T) {
	leaf := NewLeaf(9, 'q')
	root, err := CoalesceAll(NewList(leaf))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != leaf {
		t.Errorf("expected the leaf itself, got %v", root)
	}
}

func TestCoalesceAll_Empty(t *testing.T) {
	_, err := CoalesceAll(List{})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestBuildTree(t *testing.T) {
	freqs := CountFrequencies([]byte("text"))
	root := BuildTree(freqs)

	if root.Count() != 4 {
		t.Errorf("expected root count 4, got %d", root.Count())
	}
	if root.Symbol() != 0 {
		t.Errorf("expected root representative 0, got %d", root.Symbol())
	}

	type testRow struct {
		path   Path
		symbol Symbol
	}

	testData := [...]testRow{
		{path: "1", symbol: 't'},
		{path: "01", symbol: 'x'},
		{path: "001", symbol: 'e'},
	}
	for _, row := range testData {
		node, err := Walk(root, row.path)
		if err != nil {
			t.Errorf("Walk(%s): unexpected error: %v", row.path, err)
			continue
		}
		leaf, ok := node.(*Leaf)
		if !ok || leaf.Symbol() != row.symbol {
			t.Errorf("Walk(%s): expected leaf %d, got %v", row.path, row.symbol, node)
		}
	}
}

func TestBuildTree_CountEqualsTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	data := make([]byte, 5000)
	rng.Read(data)

	freqs := CountFrequencies(data)
	if root := BuildTree(freqs); root.Count() != freqs.Total() {
		t.Errorf("expected root count %d, got %d", freqs.Total(), root.Count())
	}
}

func TestWalk(t *testing.T) {
	a := NewLeaf(1, 'A')
	b := NewLeaf(2, 'B')
	c := NewLeaf(3, 'C')
	right := NewInternal(b, c)
	root := NewInternal(a, right)

	if node, err := Walk(root, ""); err != nil || node != root {
		t.Errorf("Walk(\"\"): expected root, got %v, %v", node, err)
	}
	if node, err := Walk(root, "1"); err != nil || node != right {
		t.Errorf("Walk(\"1\"): expected %v, got %v, %v", right, node, err)
	}
	if node, err := Walk(root, "11"); err != nil || node != c {
		t.Errorf("Walk(\"11\"): expected %v, got %v, %v", c, node, err)
	}
	if _, err := Walk(root, "00"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Walk(\"00\"): expected ErrOutOfRange, got %v", err)
	}
	if _, err := Walk(root, "1x"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Walk(\"1x\"): expected ErrInvalidArgument, got %v", err)
	}
}
