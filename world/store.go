package world

import "fmt"

// Handle addresses a Store slot. The generation changes every time the slot is vacated, so a handle
// kept past its entity's removal never resolves to whatever reuses the slot.
type Handle struct {
	Index      uint32
	Generation uint32
}

func (h Handle) String() string {
	return fmt.Sprintf("%d:%d", h.Index, h.Generation)
}

type slot struct {
	generation uint32
	entity     *Entity
}

// Store is a generational arena of entities.
type Store struct {
	slots []slot
	free  []uint32
	count int
}

func NewStore() *Store {
	return &Store{}
}

// Insert places e in a free slot and records the resulting handle on it.
func (s *Store) Insert(e *Entity) Handle {
	var index uint32
	if n := len(s.free); n > 0 {
		index = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.slots = append(s.slots, slot{})
		index = uint32(len(s.slots) - 1)
	}

	h := Handle{
		Index:      index,
		Generation: s.slots[index].generation,
	}
	s.slots[index].entity = e
	e.Handle = h
	s.count++
	return h
}

func (s *Store) Get(h Handle) (*Entity, bool) {
	if int(h.Index) >= len(s.slots) {
		return nil, false
	}
	sl := s.slots[h.Index]
	if sl.generation != h.Generation || sl.entity == nil {
		return nil, false
	}
	return sl.entity, true
}

func (s *Store) Contains(h Handle) bool {
	_, ok := s.Get(h)
	return ok
}

// Remove evicts and returns the entity behind h. Removing something that is not there means the
// caller's bookkeeping is broken, so it panics.
func (s *Store) Remove(h Handle) *Entity {
	e, ok := s.Get(h)
	if !ok {
		panic(fmt.Sprintf("remove of absent entity %s", h))
	}
	sl := &s.slots[h.Index]
	sl.entity = nil
	sl.generation++
	s.free = append(s.free, h.Index)
	s.count--
	return e
}

func (s *Store) Len() int {
	return s.count
}

// ForEach visits live entities in slot order. The callback must not insert or remove.
func (s *Store) ForEach(callback func(Handle, *Entity)) {
	for i := range s.slots {
		sl := s.slots[i]
		if sl.entity == nil {
			continue
		}
		callback(Handle{Index: uint32(i), Generation: sl.generation}, sl.entity)
	}
}
