package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/Absorb/internal/sim"
)

type runStats struct {
	runIndex int
	seed     int64

	phase       sim.Phase
	resolveTick int // -1 when the run hit the tick limit

	firstKillTick       int // first creature absorbed by anyone
	firstPlayerKillTick int // first creature absorbed by the player
	playerLostTick      int
	lastKillTick        int

	// Speed the player gained from eating creatures. Absorbing always speeds
	// the eater up, so this is non-negative.
	playerKillSpeedGain float64

	stats        sim.Stats
	playerRadius float64 // 0 once absorbed
	leader       sim.Standing
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var dt float64
	var top int
	var dumpLog bool

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 36000, "tick limit per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&dt, "dt", 1.0/60, "seconds simulated per tick")
	flag.IntVar(&top, "top", 3, "leaderboard rows printed per run")
	flag.BoolVar(&dumpLog, "log", false, "print each run's event log")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if dt <= 0 {
		fmt.Println("error: -dt must be > 0")
		return
	}

	fmt.Printf("=== Headless Absorb Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d dt=%.4f\n\n", runs, ticks, seedBase, seedStep, dt)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runAutopilot(i+1, seed, ticks, dt, top, dumpLog)
		all = append(all, rs)
	}

	printAggregate(all)
}

// runAutopilot plays one full round with the autopilot steering the player.
func runAutopilot(runIndex int, seed int64, ticks int, dt float64, top int, dumpLog bool) runStats {
	ts := sim.NewTestSim(
		sim.WithSeed(seed),
		sim.WithRandomPopulation(),
		sim.WithAutopilot(),
		sim.WithElapsed(dt),
	)
	resolved := ts.RunUntil(sim.Resolved, ticks)

	rs := runStats{
		runIndex:            runIndex,
		seed:                seed,
		phase:               ts.Game.Phase(),
		resolveTick:         resolved,
		firstKillTick:       firstTick(ts.Log, "absorb", "creature", ""),
		firstPlayerKillTick: firstTick(ts.Log, "absorb", "creature", "P"),
		playerLostTick:      firstTick(ts.Log, "world", "player_lost", ""),
		lastKillTick:        -1,
		playerKillSpeedGain: playerKillSpeedGain(ts.Log),
		stats:               ts.Game.Stats(),
	}
	if e, ok := ts.Log.LastOf("absorb", "creature"); ok {
		rs.lastKillTick = e.Tick
	}
	if p, ok := ts.World.Player(); ok {
		rs.playerRadius = p.Radius
	}
	if board := ts.World.Leaderboard(1); len(board) > 0 {
		rs.leader = board[0]
	}

	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	if dumpLog {
		fmt.Print(ts.Log.Format())
	}
	fmt.Print(sim.Report(ts.Game, top))
	fmt.Printf("markers: first_kill=%d first_player_kill=%d last_kill=%d player_lost=%d resolved=%d\n",
		rs.firstKillTick, rs.firstPlayerKillTick, rs.lastKillTick, rs.playerLostTick, rs.resolveTick)
	fmt.Printf("player_kill_speed_gain=%.2f\n\n", rs.playerKillSpeedGain)
	return rs
}

// firstTick returns the tick of the first entry matching category and key
// recorded by actor (any actor when empty), or -1.
func firstTick(log *sim.EventLog, category, key, actor string) int {
	entries := log.Filter(category, key)
	if actor != "" {
		entries = log.FilterActor(actor)
	}
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Tick
		}
	}
	return -1
}

// playerKillSpeedGain sums the speed the player was credited for each creature
// it absorbed. NumVal holds the absorption cost, which the eater subtracts
// from its speed.
func playerKillSpeedGain(log *sim.EventLog) float64 {
	gain := 0.0
	for _, e := range log.FilterActor("P") {
		if e.Category == "absorb" && e.Key == "creature" {
			gain -= e.NumVal
		}
	}
	return gain
}

// tallyOutcomes counts runs per final phase. Unresolved runs stay in Playing.
func tallyOutcomes(all []runStats) (wins, losses, unresolved int) {
	for _, rs := range all {
		switch rs.phase {
		case sim.PhaseWin:
			wins++
		case sim.PhaseLose:
			losses++
		default:
			unresolved++
		}
	}
	return wins, losses, unresolved
}

// meanResolveTick averages the resolve tick over resolved runs. ok is false
// when no run resolved.
func meanResolveTick(all []runStats) (mean float64, ok bool) {
	sum, n := 0, 0
	for _, rs := range all {
		if rs.resolveTick < 0 {
			continue
		}
		sum += rs.resolveTick
		n++
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// leaderCounts tallies who topped the final leaderboard, most frequent first.
func leaderCounts(all []runStats) []string {
	counts := map[string]int{}
	for _, rs := range all {
		if rs.leader.Label != "" {
			counts[rs.leader.Label]++
		}
	}
	labels := make([]string, 0, len(counts))
	for k := range counts {
		labels = append(labels, k)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = fmt.Sprintf("%s(%d)", l, counts[l])
	}
	return out
}

func printAggregate(all []runStats) {
	wins, losses, unresolved := tallyOutcomes(all)

	totalPlayerFood := 0
	totalPlayerKills := 0
	totalCreatureKills := 0
	totalRespawned := 0
	totalSpeedGain := 0.0
	radiusSum := 0.0
	survivors := 0
	for _, rs := range all {
		totalPlayerFood += rs.stats.PlayerFood
		totalPlayerKills += rs.stats.PlayerKills
		totalCreatureKills += rs.stats.CreatureKills
		totalRespawned += rs.stats.FoodRespawned
		totalSpeedGain += rs.playerKillSpeedGain
		if rs.playerRadius > 0 {
			radiusSum += rs.playerRadius
			survivors++
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d wins=%d losses=%d unresolved=%d\n", len(all), wins, losses, unresolved)
	if mean, ok := meanResolveTick(all); ok {
		fmt.Printf("mean_resolve_tick=%.1f\n", mean)
	} else {
		fmt.Println("mean_resolve_tick=n/a")
	}
	fmt.Printf("avg_per_run: player_food=%.1f player_kills=%.1f creature_kills=%.1f respawned=%.1f\n",
		avg(totalPlayerFood, len(all)), avg(totalPlayerKills, len(all)), avg(totalCreatureKills, len(all)), avg(totalRespawned, len(all)))
	fmt.Printf("avg_player_kill_speed_gain=%.2f\n", totalSpeedGain/float64(len(all)))
	if survivors > 0 {
		fmt.Printf("avg_final_player_radius=%.2f (over %d surviving runs)\n", radiusSum/float64(survivors), survivors)
	}
	fmt.Printf("final_leaders: %s\n", strings.Join(leaderCounts(all), ","))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
