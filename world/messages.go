package world

import "github.com/jakecoffman/cp"

type Intent int

const (
	IntentThrust Intent = iota
	IntentBrake
	IntentFire
)

// Input is one frame's worth of player input, already converted to world space.
type Input struct {
	Cursor  cp.Vector
	Intents map[Intent]struct{}
	Now     float64 // monotonic seconds
}

func NewInput(now float64, cursor cp.Vector, intents ...Intent) Input {
	in := Input{
		Cursor:  cursor,
		Intents: make(map[Intent]struct{}, len(intents)),
		Now:     now,
	}
	for _, intent := range intents {
		in.Intents[intent] = struct{}{}
	}
	return in
}

func (in Input) Has(intent Intent) bool {
	_, ok := in.Intents[intent]
	return ok
}
