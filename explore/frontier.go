package explore

// ChunkCoord addresses a chunk in chunk space.
type ChunkCoord struct {
	X, Y int
}

// FrontierTracker maintains the set of chunk coordinates adjacent to
// unexplored territory, i.e. exploration candidates. The set forms a
// ring around already-scanned chunks and is updated incrementally as
// chunks are scanned.
type FrontierTracker struct {
	set map[ChunkCoord]struct{}
}

// NewFrontierTracker creates an empty frontier.
func NewFrontierTracker() *FrontierTracker {
	return &FrontierTracker{set: make(map[ChunkCoord]struct{})}
}

// MarkScanned updates the frontier after chunk (cx, cy) has been
// scanned: the chunk itself leaves the candidate set, and each of its 8
// neighbors that exists in the tree and is still interesting joins it.
// Adding is idempotent, so rescanning with unchanged neighbor occupancy
// leaves the set unchanged.
func (f *FrontierTracker) MarkScanned(tree *RegionTree, cx, cy int) {
	delete(f.set, ChunkCoord{X: cx, Y: cy})

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			coord := ChunkCoord{X: cx + dx, Y: cy + dy}
			neighbor, ok := tree.Get(coord.X, coord.Y)
			if !ok || !neighbor.StillInteresting() {
				continue
			}
			f.set[coord] = struct{}{}
		}
	}
}

// Remove drops a coordinate from the frontier.
func (f *FrontierTracker) Remove(c ChunkCoord) {
	delete(f.set, c)
}

// Contains reports whether a coordinate is a frontier candidate.
func (f *FrontierTracker) Contains(c ChunkCoord) bool {
	_, ok := f.set[c]
	return ok
}

// Len returns the number of frontier candidates.
func (f *FrontierTracker) Len() int {
	return len(f.set)
}

// Coords returns the frontier candidates in unspecified order.
func (f *FrontierTracker) Coords() []ChunkCoord {
	coords := make([]ChunkCoord, 0, len(f.set))
	for c := range f.set {
		coords = append(coords, c)
	}
	return coords
}

// Reset empties the frontier.
func (f *FrontierTracker) Reset() {
	f.set = make(map[ChunkCoord]struct{})
}
