package world

import (
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"
)

type MutationKind int

const (
	MutationAdd MutationKind = iota
	MutationRemove
)

func (k MutationKind) String() string {
	switch k {
	case MutationAdd:
		return "add"
	case MutationRemove:
		return "remove"
	}
	return "unknown"
}

// Initializer finishes an Add once the entity is in the Store and has a body. It runs exactly once
// and may hand back one more mutation, which is applied straight away.
type Initializer interface {
	Finalize(h Handle, e *Entity, p *Physics) *Mutation
}

// Placement is the usual initializer: it sets where a new body is and how it moves.
type Placement struct {
	Position        cp.Vector
	Angle           float64
	Velocity        cp.Vector
	AngularVelocity float64
}

func (pl Placement) Finalize(_ Handle, e *Entity, p *Physics) *Mutation {
	if body, ok := e.Physics(); ok {
		p.Place(body, pl)
	}
	return nil
}

// Mutation is a deferred structural change. Remove uses Handle; Add uses Intent and Init.
type Mutation struct {
	Kind   MutationKind
	Handle Handle
	Intent *Entity
	Init   Initializer
}

func AddMutation(intent *Entity, init Initializer) Mutation {
	return Mutation{
		Kind:   MutationAdd,
		Intent: intent,
		Init:   init,
	}
}

func RemoveMutation(h Handle) Mutation {
	return Mutation{
		Kind:   MutationRemove,
		Handle: h,
	}
}

// MutationQueue collects structural changes during a frame and applies them, in order, after the
// read pass.
type MutationQueue struct {
	pending []Mutation
	log     *zap.Logger
}

func NewMutationQueue(log *zap.Logger) *MutationQueue {
	if log == nil {
		log = zap.NewNop()
	}
	return &MutationQueue{
		log: log,
	}
}

func (q *MutationQueue) Submit(m Mutation) {
	q.pending = append(q.pending, m)
}

func (q *MutationQueue) Len() int {
	return len(q.pending)
}

// Pending exposes the queued mutations without consuming them.
func (q *MutationQueue) Pending() []Mutation {
	return q.pending
}

// Apply drains the queue in submission order.
func (q *MutationQueue) Apply(s *Store, p *Physics) {
	pending := q.pending
	q.pending = nil
	for _, m := range pending {
		q.apply(s, p, m)
	}
}

func (q *MutationQueue) apply(s *Store, p *Physics, m Mutation) {
	switch m.Kind {
	case MutationAdd:
		h, err := Commit(s, p, m.Intent)
		if err != nil {
			q.log.Debug("dropping add", zap.Stringer("entity", m.Intent), zap.Error(err))
			return
		}
		q.log.Debug("added", zap.Stringer("entity", m.Intent), zap.Stringer("handle", h))
		if next := Finalize(s, p, h, m.Init); next != nil {
			q.apply(s, p, *next)
		}

	case MutationRemove:
		e := Evict(s, p, m.Handle)
		q.log.Debug("removed", zap.Stringer("entity", e), zap.Stringer("handle", m.Handle))
	}
}

// Commit inserts intent and attaches its body. If attaching fails the slot is released again so
// the Store holds exactly what it held before.
func Commit(s *Store, p *Physics, intent *Entity) (Handle, error) {
	h := s.Insert(intent)
	body, err := p.Attach(intent.Template, h)
	if err != nil {
		s.Remove(h)
		return Handle{}, err
	}
	intent.Body = body
	return h, nil
}

// Finalize runs init against the now live entity.
func Finalize(s *Store, p *Physics, h Handle, init Initializer) *Mutation {
	if init == nil {
		return nil
	}
	e, ok := s.Get(h)
	if !ok {
		return nil
	}
	return init.Finalize(h, e, p)
}

// Evict detaches the entity's body and removes it from the Store. h must be live.
func Evict(s *Store, p *Physics, h Handle) *Entity {
	e, ok := s.Get(h)
	if !ok {
		panic("remove of absent entity " + h.String())
	}
	if body, ok := e.Physics(); ok {
		p.Detach(body)
		e.Body = nil
	}
	return s.Remove(h)
}
