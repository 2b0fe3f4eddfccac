package explore

import "testing"

// TestFrontierRing verifies scanning a chunk surrounded by interesting
// neighbors produces the 8-neighbor ring.
func TestFrontierRing(t *testing.T) {
	tree := NewRegionTree()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			tree.Insert(dx, dy, NewChunk())
		}
	}
	f := NewFrontierTracker()

	f.MarkScanned(tree, 0, 0)

	if f.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", f.Len())
	}
	if f.Contains(ChunkCoord{0, 0}) {
		t.Error("scanned chunk remained in frontier")
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if !f.Contains(ChunkCoord{dx, dy}) {
				t.Errorf("neighbor (%d,%d) missing from frontier", dx, dy)
			}
		}
	}
}

// TestFrontierIdempotent verifies scanning twice with unchanged
// neighbor occupancy yields the same set.
func TestFrontierIdempotent(t *testing.T) {
	tree := NewRegionTree()
	tree.Insert(1, 0, NewChunk())
	tree.Insert(0, 1, NewChunk())
	f := NewFrontierTracker()

	f.MarkScanned(tree, 0, 0)
	first := f.Len()
	f.MarkScanned(tree, 0, 0)

	if f.Len() != first {
		t.Errorf("Len() after rescan = %d, want %d", f.Len(), first)
	}
}

// TestFrontierSkipsSettled verifies neighbors that are no longer
// interesting do not join the frontier, and missing neighbors are
// skipped.
func TestFrontierSkipsSettled(t *testing.T) {
	tree := NewRegionTree()
	settled := NewChunk()
	for ly := 0; ly < ChunkSize; ly++ {
		for lx := 0; lx < ChunkSize; lx++ {
			settled.SetCell(lx, ly, CellExplored)
		}
	}
	tree.Insert(1, 0, settled)
	tree.Insert(0, 1, NewChunk())
	f := NewFrontierTracker()

	f.MarkScanned(tree, 0, 0)

	if f.Contains(ChunkCoord{1, 0}) {
		t.Error("settled neighbor joined frontier")
	}
	if !f.Contains(ChunkCoord{0, 1}) {
		t.Error("interesting neighbor missing from frontier")
	}
	// Only (0,1) exists and is interesting; the other 7 neighbors are
	// absent from the tree.
	if f.Len() != 1 {
		t.Errorf("Len() = %d, want 1", f.Len())
	}
}

// TestFrontierScanRemovesSelf verifies a frontier member leaves the set
// once it is itself scanned, even if still interesting.
func TestFrontierScanRemovesSelf(t *testing.T) {
	tree := NewRegionTree()
	tree.Insert(0, 0, NewChunk())
	tree.Insert(1, 0, NewChunk())
	f := NewFrontierTracker()

	f.MarkScanned(tree, 0, 0) // (1,0) joins
	f.MarkScanned(tree, 1, 0) // (1,0) leaves, (0,0) rejoins

	if f.Contains(ChunkCoord{1, 0}) {
		t.Error("(1,0) still in frontier after being scanned")
	}
	if !f.Contains(ChunkCoord{0, 0}) {
		t.Error("(0,0) did not rejoin frontier as neighbor of (1,0)")
	}
}
