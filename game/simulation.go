package game

import (
	"github.com/pthm-cable/wander/components"
	"github.com/pthm-cable/wander/explore"
	"github.com/pthm-cable/wander/telemetry"
)

// simulationStep runs a single tick: plan, walk, integrate bodies,
// then sync positions back into the ECS and flush telemetry windows.
func (g *Game) simulationStep() {
	query := g.agentFilter.Query()
	for query.Next() {
		pos, exp, _ := query.Get()
		nav, ok := g.navs[exp.ID]
		if !ok {
			continue
		}

		nav.planner.Update()
		g.dispatchWalker(nav, exp.ID)
		nav.walker.Advance()
		nav.body.Step(g.dt)
		g.superviseNav(nav)

		if p, hasPos := nav.body.CurrentPosition(); hasPos {
			*pos = p
		}
		exp.DistanceTraveled = nav.body.DistanceTraveled()
	}

	g.tick++
	g.simTime += float64(g.dt)

	g.flushTelemetry()
}

// dispatchWalker hands the planner's current target to the walker once
// the walker is free. A walker mid-path keeps its path even if the
// planner has already cleared the target on arrival-by-radius.
func (g *Game) dispatchWalker(nav *agentNav, id uint32) {
	target, ok := nav.planner.CurrentTarget()
	if !ok {
		return
	}
	switch nav.walker.State() {
	case explore.WalkerIdle, explore.WalkerCompleted:
		nav.walker.StartWalkingPath([]components.Position{target}, agentLabel(id), false)
	}
}

// superviseNav abandons a target the walker cannot reach. A planner
// target is a single waypoint, and the walker never stuck-skips its
// final waypoint, so a target on unreachable ground would pin the
// agent forever without this guard. The abandoned chunk was already
// cooldown-stamped at acceptance, so the next cycle selects elsewhere.
func (g *Game) superviseNav(nav *agentNav) {
	target, ok := nav.planner.CurrentTarget()
	if !ok {
		nav.watch.Reset()
		return
	}
	switch nav.walker.State() {
	case explore.WalkerToStart, explore.WalkerOnPath:
	default:
		nav.watch.Reset()
		return
	}
	pos, hasPos := nav.body.CurrentPosition()
	if !hasPos {
		return
	}
	if nav.watch.Observe(g.now(), pos, target) {
		nav.walker.Stop()
		nav.planner.ClearTarget()
		nav.watch.Reset()
	}
}

// flushTelemetry emits a stats window when due.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	snap := telemetry.MapSnapshot{AgentCount: len(g.navs)}
	for _, nav := range g.navs {
		telemetry.SnapshotState(&snap, nav.state)
	}

	stats := g.collector.Flush(g.tick, g.Totals(), snap)

	if g.logStats {
		stats.LogStats()
	}
	if g.statsCallback != nil {
		g.statsCallback(stats)
	}
	if err := g.output.WriteTelemetry(stats); err != nil {
		Logf("telemetry write failed: %v", err)
	}
}
