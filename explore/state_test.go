package explore

import "testing"

func TestStateChunkAt(t *testing.T) {
	s := NewExplorationState()

	a := s.ChunkAt(4, -7)
	b := s.ChunkAt(4, -7)
	if a != b {
		t.Error("ChunkAt returned distinct chunks for the same coordinate")
	}
	if got, ok := s.Tree.Get(4, -7); !ok || got != a {
		t.Error("created chunk not inserted into the tree")
	}
}

func TestStateCooldown(t *testing.T) {
	s := NewExplorationState()
	c := ChunkCoord{X: 1, Y: 2}

	if s.OnCooldown(c, 100, 30) {
		t.Error("unvisited chunk on cooldown")
	}

	s.RecordVisit(c, 100)
	if !s.OnCooldown(c, 129.9, 30) {
		t.Error("chunk off cooldown inside window")
	}
	// The window is half-open: exactly window seconds later is expired.
	if s.OnCooldown(c, 130, 30) {
		t.Error("chunk on cooldown at window boundary")
	}
}

func TestStateReset(t *testing.T) {
	s := NewExplorationState()
	s.ChunkAt(0, 0)
	s.RecordVisit(ChunkCoord{}, 5)
	s.Frontier.MarkScanned(s.Tree, 1, 1)

	s.Reset()

	if _, ok := s.Tree.Get(0, 0); ok {
		t.Error("tree survived Reset")
	}
	if s.Frontier.Len() != 0 {
		t.Error("frontier survived Reset")
	}
	if s.OnCooldown(ChunkCoord{}, 5, 30) {
		t.Error("cooldown stamp survived Reset")
	}
}
