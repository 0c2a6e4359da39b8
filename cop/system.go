package cop

import "fmt"

// System processes the entities whose shape it accepts.
type System interface {
	// CanProcess reports whether the system handles entities of e's shape.
	// It is called once per entity when either is registered, never per
	// frame, so it must be deterministic and free of side effects.
	CanProcess(e *Entity) bool
	// Process is called once per frame with the entities that qualified.
	// The slice is the world's own list: component values may be changed,
	// but entities and systems must not be added or removed while it runs.
	// A non-nil error aborts the frame.
	Process(w *World, entities []*Entity) error
}

// SystemName returns a printable name for s.
func SystemName(s System) string {
	if n, ok := s.(fmt.Stringer); ok {
		return n.String()
	}
	return fmt.Sprintf("%T", s)
}
