package sim

import (
	"fmt"
	"strings"
)

// Report renders a plain-text round summary: phase, counters, the player and
// the top entries of the leaderboard.
func Report(g *Game, top int) string {
	w := g.world
	s := g.stats

	var b strings.Builder
	fmt.Fprintf(&b, "--- Absorb round report ---\n")
	fmt.Fprintf(&b, "phase=%s tick=%d simulated=%.1fs\n", g.phase, s.Ticks, s.Seconds)
	fmt.Fprintf(&b, "creatures=%d food=%d/%d respawned=%d\n",
		w.NumCreatures(), w.NumFood(), w.FoodTarget(), s.FoodRespawned)
	fmt.Fprintf(&b, "absorptions: player_food=%d player_kills=%d creature_food=%d creature_kills=%d\n",
		s.PlayerFood, s.PlayerKills, s.CreatureFood, s.CreatureKills)

	if p, ok := w.Player(); ok {
		fmt.Fprintf(&b, "player: radius=%.2f speed=%.2f food_eaten=%d at (%.0f,%.0f)\n",
			p.Radius, p.Speed, p.AbsorbedFood, p.Center.X(), p.Center.Y())
	} else {
		b.WriteString("player: absorbed\n")
	}

	board := w.Leaderboard(top)
	if len(board) > 0 {
		b.WriteString("leaderboard:\n")
		for i, row := range board {
			fmt.Fprintf(&b, "  %s\n", FormatStanding(i, row))
		}
	}
	return b.String()
}

// FormatStanding formats a leaderboard row as "1. Player: 42.00".
func FormatStanding(rank int, s Standing) string {
	return fmt.Sprintf("%d. %s: %.2f", rank+1, s.Label, s.Radius)
}
