package explore

// Region tree defaults. The extent covers chunk coordinates
// [-MaxChunkCoord, MaxChunkCoord) on both axes; MaxTreeDepth caps the
// recursive subdivision.
const (
	MaxChunkCoord = 1000
	MaxTreeDepth  = 20
)

// RegionTree is a sparse quadtree mapping chunk coordinates to chunks.
// Regions split on demand, so memory scales with visited area rather
// than the full coordinate extent.
type RegionTree struct {
	root *regionNode
}

type regionNode struct {
	minX, minY int
	maxX, maxY int
	depth      int

	// A node holds either a chunk (leaf) or four children, never both
	// after a split.
	chunk    *Chunk
	chunkX   int
	chunkY   int
	children *[4]*regionNode
}

// NewRegionTree creates a region tree over the default extent.
func NewRegionTree() *RegionTree {
	return NewRegionTreeExtent(-MaxChunkCoord, -MaxChunkCoord, MaxChunkCoord, MaxChunkCoord)
}

// NewRegionTreeExtent creates a region tree over chunk coordinates
// [minX, maxX) x [minY, maxY).
func NewRegionTreeExtent(minX, minY, maxX, maxY int) *RegionTree {
	return &RegionTree{
		root: &regionNode{
			minX: minX, minY: minY,
			maxX: maxX, maxY: maxY,
			depth: MaxTreeDepth,
		},
	}
}

// Insert stores a chunk at chunk coordinates (x, y). Inserting at a
// coordinate whose leaf already holds a chunk overwrites it (last
// insert wins). Coordinates outside the tree extent are ignored.
func (t *RegionTree) Insert(x, y int, c *Chunk) {
	if x < t.root.minX || x >= t.root.maxX || y < t.root.minY || y >= t.root.maxY {
		return
	}
	t.root.insert(x, y, c)
}

// Get returns the chunk at chunk coordinates (x, y), or false if no
// leaf exists along that path.
func (t *RegionTree) Get(x, y int) (*Chunk, bool) {
	if x < t.root.minX || x >= t.root.maxX || y < t.root.minY || y >= t.root.maxY {
		return nil, false
	}
	n := t.root
	for {
		if n.chunk != nil {
			// A leaf answers for its whole region regardless of
			// further descent.
			return n.chunk, true
		}
		if n.children == nil {
			return nil, false
		}
		n = n.children[n.quadrant(x, y)]
	}
}

// Range calls fn for every stored chunk with its chunk coordinates.
func (t *RegionTree) Range(fn func(x, y int, c *Chunk)) {
	t.root.walk(fn)
}

func (n *regionNode) insert(x, y int, c *Chunk) {
	// The chunk occupies this node when subdivision has bottomed out or
	// the node is already a leaf.
	if n.depth == 0 || (n.chunk != nil && n.children == nil) {
		n.chunk = c
		n.chunkX = x
		n.chunkY = y
		return
	}
	if n.children == nil {
		n.split()
	}
	n.children[n.quadrant(x, y)].insert(x, y, c)
}

// quadrant selects the child region containing (x, y) by comparing
// against the node midpoint: 0=top-left, 1=top-right, 2=bottom-left,
// 3=bottom-right.
func (n *regionNode) quadrant(x, y int) int {
	midX := (n.minX + n.maxX) / 2
	midY := (n.minY + n.maxY) / 2
	q := 0
	if x >= midX {
		q++
	}
	if y >= midY {
		q += 2
	}
	return q
}

func (n *regionNode) split() {
	midX := (n.minX + n.maxX) / 2
	midY := (n.minY + n.maxY) / 2
	depth := n.depth - 1
	n.children = &[4]*regionNode{
		{minX: n.minX, minY: n.minY, maxX: midX, maxY: midY, depth: depth},
		{minX: midX, minY: n.minY, maxX: n.maxX, maxY: midY, depth: depth},
		{minX: n.minX, minY: midY, maxX: midX, maxY: n.maxY, depth: depth},
		{minX: midX, minY: midY, maxX: n.maxX, maxY: n.maxY, depth: depth},
	}
}

func (n *regionNode) walk(fn func(x, y int, c *Chunk)) {
	if n.chunk != nil {
		fn(n.chunkX, n.chunkY, n.chunk)
		return
	}
	if n.children == nil {
		return
	}
	for _, child := range n.children {
		child.walk(fn)
	}
}
