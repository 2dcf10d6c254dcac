package sim

import "fmt"

// Kind identifies which sort of entity took part in an absorption.
type Kind int

const (
	KindFood Kind = iota
	KindPlayer
	KindCreature
)

func (k Kind) String() string {
	switch k {
	case KindFood:
		return "food"
	case KindPlayer:
		return "player"
	case KindCreature:
		return "creature"
	default:
		return "unknown"
	}
}

// Ref names one participant of an absorption without pointing at it.
type Ref struct {
	Kind Kind
	ID   int
}

var (
	foodRef   = Ref{Kind: KindFood}
	playerRef = Ref{Kind: KindPlayer}
)

func creatureRef(id int) Ref {
	return Ref{Kind: KindCreature, ID: id}
}

// Label is the short actor tag used in event log lines: "P", "F" or "C<id>".
func (r Ref) Label() string {
	switch r.Kind {
	case KindPlayer:
		return "P"
	case KindCreature:
		return fmt.Sprintf("C%d", r.ID)
	default:
		return "F"
	}
}

// Frame is the per-step context handed to entity updates.
type Frame struct {
	Tick    int
	Elapsed float64 // seconds since the previous step
	Log     *EventLog
	Stats   *Stats
}

// absorbed records one successful absorption. radius is the eater's radius
// after the merge and cost the speed delta it was charged.
func (fr *Frame) absorbed(eater, eaten Ref, radius, cost float64) {
	if fr.Stats != nil {
		fr.Stats.countAbsorb(eater.Kind, eaten.Kind)
	}
	if fr.Log == nil {
		return
	}
	if eaten.Kind == KindFood {
		fr.Log.AddVerbose(fr.Tick, eater.Label(), "absorb", eaten.Kind.String(),
			fmt.Sprintf("r=%.2f", radius), cost)
		return
	}
	fr.Log.Add(fr.Tick, eater.Label(), "absorb", eaten.Kind.String(),
		fmt.Sprintf("%s → r=%.2f", eaten.Label(), radius), cost)
}
