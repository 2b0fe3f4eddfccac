package explore

// ExplorationState is the persistent exploration memory for one
// explorer: the chunk tree, the frontier, and per-chunk visit
// timestamps. Callers own the state and pass it into planner
// operations, so independent explorers never share memory and tests
// get clean isolation.
type ExplorationState struct {
	Tree     *RegionTree
	Frontier *FrontierTracker

	lastVisit map[ChunkCoord]float64
}

// NewExplorationState creates empty exploration memory.
func NewExplorationState() *ExplorationState {
	return &ExplorationState{
		Tree:      NewRegionTree(),
		Frontier:  NewFrontierTracker(),
		lastVisit: make(map[ChunkCoord]float64),
	}
}

// ChunkAt returns the chunk at (cx, cy), creating and inserting an
// empty one on first visit.
func (s *ExplorationState) ChunkAt(cx, cy int) *Chunk {
	if c, ok := s.Tree.Get(cx, cy); ok {
		return c
	}
	c := NewChunk()
	s.Tree.Insert(cx, cy, c)
	return c
}

// RecordVisit stamps a chunk's last-visit time, starting its cooldown.
func (s *ExplorationState) RecordVisit(c ChunkCoord, now float64) {
	s.lastVisit[c] = now
}

// OnCooldown reports whether a chunk is still inside its visit-cooldown
// window at time now.
func (s *ExplorationState) OnCooldown(c ChunkCoord, now, window float64) bool {
	last, ok := s.lastVisit[c]
	if !ok {
		return false
	}
	return now-last < window
}

// Reset discards all exploration memory. This is the only way the
// memory is cleared; it otherwise persists for the process lifetime.
func (s *ExplorationState) Reset() {
	s.Tree = NewRegionTree()
	s.Frontier = NewFrontierTracker()
	s.lastVisit = make(map[ChunkCoord]float64)
}
