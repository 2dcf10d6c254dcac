package sim

// Stats accumulates counters over the life of a Game.
type Stats struct {
	Ticks   int
	Seconds float64 // simulated time, sum of elapsed values

	PlayerFood    int // pellets eaten by the player
	PlayerKills   int // creatures eaten by the player
	CreatureFood  int // pellets eaten by creatures
	CreatureKills int // creatures eaten by creatures
	PlayerDeaths  int // 0 or 1
	FoodRespawned int
	Creatures     int // live creatures after the last step
}

func (s *Stats) countAbsorb(eater, eaten Kind) {
	switch {
	case eater == KindPlayer && eaten == KindFood:
		s.PlayerFood++
	case eater == KindPlayer && eaten == KindCreature:
		s.PlayerKills++
	case eater == KindCreature && eaten == KindFood:
		s.CreatureFood++
	case eater == KindCreature && eaten == KindCreature:
		s.CreatureKills++
	case eaten == KindPlayer:
		s.PlayerDeaths++
	}
}
