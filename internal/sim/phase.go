package sim

// Phase is the game's win/lose state. Win and Lose are terminal.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWin
	PhaseLose
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWin:
		return "win"
	case PhaseLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase freezes the simulation.
func (p Phase) Terminal() bool {
	return p == PhaseWin || p == PhaseLose
}

// resolvePhase evaluates the end conditions against a finished step.
// A world with neither a player nor creatures matches neither rule and keeps playing.
func resolvePhase(hasPlayer bool, creatures int) Phase {
	switch {
	case hasPlayer && creatures == 0:
		return PhaseWin
	case !hasPlayer && creatures == 1:
		return PhaseLose
	default:
		return PhasePlaying
	}
}
