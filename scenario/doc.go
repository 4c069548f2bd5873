// Package scenario generates randomized start/goal assignments for a
// configurable number of agents on a binary occupancy grid.
//
// What:
//
//   - Generate labels the grid's free-cell components fresh (never cached),
//     discards components with fewer than 2 cells, and then, for each agent
//     in turn, picks a component and draws a start and a goal from its
//     remaining cells without replacement.
//   - Cells are physically removed from a component's pool the moment they
//     are assigned, so no cell is ever issued to two agents and start ≠
//     goal holds by construction.
//   - Scenario.Encode emits the scenario file: the agent count on the
//     first line, then one "start_x start_y goal_x goal_y" line per agent.
//
// Distribution:
//
//   - Component selection is uniform over the eligible component list, NOT
//     weighted by component size: small and large free regions are equally
//     likely to host an agent. This is an intended property of the
//     generated benchmark distribution; do not "fix" it by weighting.
//
// Determinism:
//
//   - All randomness flows through an explicit *rand.Rand supplied via
//     WithRNG or WithSeed; there is no hidden global random state. The
//     same seed over the same grid yields byte-identical scenarios.
//     DeriveSeed produces decorrelated per-job seeds for batch runs.
//
// Errors:
//
//   - ErrInsufficientCapacity: the grid's free-cell connectivity cannot
//     host the requested agent count, either before the first agent or
//     mid-run as pools shrink. A hard stop — no partial scenario is ever
//     produced.
//   - ErrAgentCount: a requested agent count below 1.
package scenario
