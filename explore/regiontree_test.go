package explore

import (
	"math/rand"
	"testing"
)

// TestTreeInsertGet verifies Get returns the chunk stored by Insert.
func TestTreeInsertGet(t *testing.T) {
	tree := NewRegionTree()

	coords := []ChunkCoord{
		{0, 0}, {1, 0}, {0, 1}, {-1, -1}, {500, -300}, {-999, 999},
	}
	chunks := make(map[ChunkCoord]*Chunk, len(coords))
	for _, c := range coords {
		ch := NewChunk()
		chunks[c] = ch
		tree.Insert(c.X, c.Y, ch)
	}

	for _, c := range coords {
		got, ok := tree.Get(c.X, c.Y)
		if !ok {
			t.Fatalf("Get(%d,%d) not found", c.X, c.Y)
		}
		if got != chunks[c] {
			t.Errorf("Get(%d,%d) returned wrong chunk", c.X, c.Y)
		}
	}

	if _, ok := tree.Get(7, 7); ok {
		t.Error("Get on never-inserted coordinate returned ok")
	}
}

// TestTreeOverwrite verifies last insert wins at the same leaf.
func TestTreeOverwrite(t *testing.T) {
	tree := NewRegionTree()
	first := NewChunk()
	second := NewChunk()

	tree.Insert(10, 10, first)
	tree.Insert(10, 10, second)

	got, ok := tree.Get(10, 10)
	if !ok || got != second {
		t.Error("second insert at same coordinate did not overwrite")
	}
}

// TestTreeOutOfExtent verifies coordinates outside the extent are
// ignored rather than corrupting the tree.
func TestTreeOutOfExtent(t *testing.T) {
	tree := NewRegionTree()
	tree.Insert(MaxChunkCoord+5, 0, NewChunk())
	if _, ok := tree.Get(MaxChunkCoord+5, 0); ok {
		t.Error("Get outside extent returned ok")
	}
}

// TestTreeLeafInvariant verifies no node ever holds a chunk and
// children simultaneously, across a randomized insert sequence.
func TestTreeLeafInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tree := NewRegionTree()

	for i := 0; i < 300; i++ {
		x := rng.Intn(2*MaxChunkCoord) - MaxChunkCoord
		y := rng.Intn(2*MaxChunkCoord) - MaxChunkCoord
		tree.Insert(x, y, NewChunk())
	}

	var check func(n *regionNode)
	check = func(n *regionNode) {
		if n.chunk != nil && n.children != nil {
			t.Fatalf("node [%d,%d)x[%d,%d) holds chunk and children",
				n.minX, n.maxX, n.minY, n.maxY)
		}
		if n.children != nil {
			for _, child := range n.children {
				check(child)
			}
		}
	}
	check(tree.root)
}

// TestTreeRange verifies traversal visits every stored chunk once.
func TestTreeRange(t *testing.T) {
	tree := NewRegionTree()
	want := map[ChunkCoord]bool{
		{0, 0}: false, {3, -2}: false, {-40, 17}: false,
	}
	for c := range want {
		tree.Insert(c.X, c.Y, NewChunk())
	}

	tree.Range(func(x, y int, c *Chunk) {
		coord := ChunkCoord{X: x, Y: y}
		seen, ok := want[coord]
		if !ok {
			t.Errorf("Range visited unexpected coordinate %v", coord)
			return
		}
		if seen {
			t.Errorf("Range visited %v twice", coord)
		}
		want[coord] = true
	})

	for c, seen := range want {
		if !seen {
			t.Errorf("Range missed %v", c)
		}
	}
}
