package cop

import (
	"fmt"
	"io"
	"log"
	"slices"
)

// World owns the system schedule and the registry of live entities.
//
// Systems run in the order they were added, every frame. Adding or deleting
// entities and systems is safe between calls to Process; doing so from
// inside a system's Process is undefined. A World is not safe for
// concurrent use.
type World struct {
	schedule *Schedule
	// Registered entities in registration order, plus lookup by ID
	entities []*Entity
	byID     map[EntityID]*Entity
	// Event manager for system communication
	eventManager *EventManager
	logger       *log.Logger
	frame        uint64
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for registration messages.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWorld creates an empty world
func NewWorld(opts ...Option) *World {
	w := &World{
		schedule:     NewSchedule(),
		byID:         make(map[EntityID]*Entity),
		eventManager: NewEventManager(),
		logger:       log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// AddSystem appends a system and offers it every registered entity, so a
// late system picks up entities created before it. Adding a system twice
// returns ErrSystemExists.
func (w *World) AddSystem(s System) error {
	return w.InsertSystem(s, w.schedule.Len())
}

// InsertSystem is AddSystem at an explicit position; later systems shift.
func (w *World) InsertSystem(s System, index int) error {
	row, err := w.schedule.Insert(index, s)
	if err != nil {
		return err
	}
	for _, e := range w.entities {
		row.AddEntityIfCanProcess(e)
	}
	w.logger.Printf("system %s registered at %d with %d entities", SystemName(s), index, row.Len())
	return nil
}

// DeleteSystem removes a system. Its entities stay registered.
func (w *World) DeleteSystem(s System) bool {
	if !w.schedule.Remove(s) {
		return false
	}
	w.logger.Printf("system %s removed", SystemName(s))
	return true
}

// AddEntity registers e and offers it to every system in order. NewEntity
// calls this; it only needs calling directly to re-add a deleted entity.
func (w *World) AddEntity(e *Entity) error {
	if e == nil {
		return ErrNilEntity
	}
	if e.world != w {
		return fmt.Errorf("%w: %s", ErrForeignEntity, e)
	}
	if _, exists := w.byID[e.ID]; exists {
		return fmt.Errorf("%w: %s", ErrEntityExists, e)
	}
	w.entities = append(w.entities, e)
	w.byID[e.ID] = e
	w.schedule.AddEntity(e)
	return nil
}

// DeleteEntity removes e from every system and from the registry.
func (w *World) DeleteEntity(e *Entity) bool {
	if e == nil {
		return false
	}
	if _, exists := w.byID[e.ID]; !exists {
		return false
	}
	w.schedule.RemoveEntity(e)
	delete(w.byID, e.ID)
	if i := slices.Index(w.entities, e); i >= 0 {
		w.entities = slices.Delete(w.entities, i, i+1)
	}
	return true
}

// Process runs one frame: every system over its entities, in order. The
// first error stops the frame and is returned.
func (w *World) Process() error {
	if err := w.schedule.Process(w); err != nil {
		return fmt.Errorf("frame %d: %w", w.frame, err)
	}
	w.frame++
	return nil
}

// Frame returns the number of frames completed.
func (w *World) Frame() uint64 {
	return w.frame
}

// Schedule returns the world's system schedule.
func (w *World) Schedule() *Schedule {
	return w.schedule
}

// Systems returns the registered systems in processing order.
func (w *World) Systems() []System {
	systems := make([]System, 0, w.schedule.Len())
	for _, row := range w.schedule.Rows() {
		systems = append(systems, row.System())
	}
	return systems
}

// EntitiesFor returns the entities s currently processes.
func (w *World) EntitiesFor(s System) []*Entity {
	row, ok := w.schedule.Row(s)
	if !ok {
		return nil
	}
	return slices.Clone(row.Entities())
}

// GetAllEntities returns a slice of all entities in registration order
func (w *World) GetAllEntities() []*Entity {
	return slices.Clone(w.entities)
}

// GetEntity returns an entity by its ID
func (w *World) GetEntity(id EntityID) (*Entity, bool) {
	e, ok := w.byID[id]
	return e, ok
}

// GetEntitiesWithTag returns all entities with a specific tag
func (w *World) GetEntitiesWithTag(tag string) []*Entity {
	entities := make([]*Entity, 0)
	for _, e := range w.entities {
		if e.HasTag(tag) {
			entities = append(entities, e)
		}
	}
	return entities
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}
