package explore

// Cell classifies one grid cell of exploration memory.
type Cell uint8

const (
	CellUnexplored Cell = iota
	CellExplored
	CellBlocked
)

// ChunkSize is the edge length of a chunk in cells.
const ChunkSize = 5

// StillInterestingFraction is the minimum unexplored fraction for a chunk
// to remain an exploration candidate.
const StillInterestingFraction = 0.02

// Chunk is a fixed-size occupancy grid, the unit of exploration
// bookkeeping. Cells default to CellUnexplored.
type Chunk struct {
	cells [ChunkSize][ChunkSize]Cell
	dirty bool
}

// NewChunk creates a chunk with all cells unexplored.
func NewChunk() *Chunk {
	return &Chunk{}
}

// Cell returns the cell at local offsets (lx, ly). Out-of-range offsets
// read as unexplored.
func (c *Chunk) Cell(lx, ly int) Cell {
	if lx < 0 || lx >= ChunkSize || ly < 0 || ly >= ChunkSize {
		return CellUnexplored
	}
	return c.cells[ly][lx]
}

// SetCell overwrites the cell at local offsets (lx, ly) and marks the
// chunk dirty. Out-of-range offsets are ignored.
func (c *Chunk) SetCell(lx, ly int, cell Cell) {
	if lx < 0 || lx >= ChunkSize || ly < 0 || ly >= ChunkSize {
		return
	}
	c.cells[ly][lx] = cell
	c.dirty = true
}

// Dirty reports whether any cell has been written. Advisory only.
func (c *Chunk) Dirty() bool {
	return c.dirty
}

// Counts returns the number of cells in each occupancy class.
func (c *Chunk) Counts() (unexplored, explored, blocked int) {
	for ly := 0; ly < ChunkSize; ly++ {
		for lx := 0; lx < ChunkSize; lx++ {
			switch c.cells[ly][lx] {
			case CellUnexplored:
				unexplored++
			case CellExplored:
				explored++
			case CellBlocked:
				blocked++
			}
		}
	}
	return unexplored, explored, blocked
}

// StillInteresting reports whether the chunk remains an exploration
// candidate: true iff its unexplored fraction exceeds
// StillInterestingFraction. Fully scanned chunks drop out of the
// frontier pool through this predicate.
func (c *Chunk) StillInteresting() bool {
	unexplored, _, _ := c.Counts()
	total := ChunkSize * ChunkSize
	return float32(unexplored)/float32(total) > StillInterestingFraction
}
