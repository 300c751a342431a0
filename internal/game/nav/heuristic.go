package nav

// HeuristicDivisor weakens the Manhattan estimate against the 10/14 edge costs.
const HeuristicDivisor = 3

// AnchorHeuristic returns an estimate function toward goal for a width×height area.
// Tile goals use Manhattan distance / 3. Portal goals measure the distance to the edge line,
// since any tile on that edge reaches the portal.
func AnchorHeuristic(goal AnchorKey, width, height int) func(AnchorKey) int {
	w, h := int32(width), int32(height)
	switch {
	case goal.X < 0:
		return func(k AnchorKey) int { return int(k.X-goal.X) / HeuristicDivisor }
	case goal.X >= w:
		return func(k AnchorKey) int { return int(goal.X-k.X) / HeuristicDivisor }
	case goal.Y < 0:
		return func(k AnchorKey) int { return int(k.Y-goal.Y) / HeuristicDivisor }
	case goal.Y >= h:
		return func(k AnchorKey) int { return int(goal.Y-k.Y) / HeuristicDivisor }
	}
	return func(k AnchorKey) int {
		return int(k.Tile().ManhattanTo(goal.Tile())) / HeuristicDivisor
	}
}
