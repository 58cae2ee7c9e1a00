package world

type ContactKind int

const (
	ContactBegan ContactKind = iota
	ContactEnded
)

func (k ContactKind) String() string {
	switch k {
	case ContactBegan:
		return "began"
	case ContactEnded:
		return "ended"
	}
	return "unknown"
}

// ContactEvent reports that the colliders of two entities started or stopped touching. It is
// advisory: the handles may already be stale by the time the event is drained.
type ContactEvent struct {
	Kind ContactKind
	A, B Handle
}
