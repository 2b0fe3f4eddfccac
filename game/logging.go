package game

import (
	"fmt"
	"io"
	"sort"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// logWorldState dumps the navigation state of every agent.
func (g *Game) logWorldState() {
	Logf("=== World @ Tick %d (%.1fs) | coverage %.1f%% ===",
		g.tick, g.simTime, g.Coverage()*100)

	ids := make([]uint32, 0, len(g.navs))
	for id := range g.navs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		nav := g.navs[id]
		pos, _ := nav.body.CurrentPosition()

		targetDesc := "no target"
		if target, ok := nav.planner.CurrentTarget(); ok {
			targetDesc = fmt.Sprintf("target (%.1f,%.1f)", target.X, target.Y)
		}

		ps := nav.planner.Stats()
		ws := nav.walker.Stats()
		Logf("  %-12s (%6.1f,%6.1f) %s | walker %s | frontier %d | accepted %d stuck %d dist %.0f",
			agentLabel(id), pos.X, pos.Y, targetDesc, nav.walker.Status(),
			nav.state.Frontier.Len(), ps.TargetsAccepted, ws.StuckSkips,
			nav.body.DistanceTraveled())
	}
	Logf("")
}
