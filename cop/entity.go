package cop

import (
	"errors"
	"fmt"
	"reflect"
	"sync/atomic"
)

// EntityID is a unique identifier for an entity
type EntityID uint64

var nextEntityID uint64 = 0

// NewEntityID generates a new unique entity ID
func NewEntityID() EntityID {
	return EntityID(atomic.AddUint64(&nextEntityID, 1))
}

// Entity is a component set registered with exactly one World.
type Entity struct {
	ID EntityID
	// Tags can be used for quick identification (e.g., "ball", "player")
	Tags map[string]bool

	world *World
	data  reflect.Value
	shape *Shape
}

// NewEntity wraps data, a non-nil pointer to a struct whose exported fields
// are its components, and registers it with world. Registration runs every
// system's CanProcess against the new entity; a panic there is not recovered.
func NewEntity(world *World, data any) (*Entity, error) {
	if world == nil {
		return nil, errors.New("cop: nil world")
	}
	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: entity data must be a non-nil struct pointer, got %T", ErrNotComposite, data)
	}
	shape, err := ShapeOf(rv.Type())
	if err != nil {
		return nil, err
	}

	e := &Entity{
		ID:    NewEntityID(),
		Tags:  make(map[string]bool),
		world: world,
		data:  rv,
		shape: shape,
	}
	if err := world.AddEntity(e); err != nil {
		return nil, err
	}
	return e, nil
}

// World returns the owning world.
func (e *Entity) World() *World {
	return e.world
}

// Data returns the struct pointer the entity was created with.
func (e *Entity) Data() any {
	return e.data.Interface()
}

// Shape returns the member table of the entity's data type.
func (e *Entity) Shape() *Shape {
	return e.shape
}

// Contains reports whether the entity's shape can hold components of type t.
// It looks at the type only, not at which members are currently set.
func (e *Entity) Contains(t reflect.Type) bool {
	return e.shape.Has(t)
}

// ComponentsOfType returns the entity's current components of type t.
func (e *Entity) ComponentsOfType(t reflect.Type) []any {
	return ComponentsOfType(e, t)
}

// Component returns the first component of type t. It is meant for shapes
// known to hold at most one such component.
func (e *Entity) Component(t reflect.Type) (any, bool) {
	return FirstComponentOfType(e, t)
}

// AddTag adds a tag to the entity
func (e *Entity) AddTag(tag string) {
	e.Tags[tag] = true
}

// HasTag checks if the entity has a specific tag
func (e *Entity) HasTag(tag string) bool {
	return e.Tags[tag]
}

// RemoveTag removes a tag from the entity
func (e *Entity) RemoveTag(tag string) {
	delete(e.Tags, tag)
}

func (e *Entity) String() string {
	return fmt.Sprintf("entity %d (%s)", e.ID, e.shape.typ)
}

// Contains reports whether e's shape can hold a T.
func Contains[T any](e *Entity) bool {
	return e.shape.Has(reflect.TypeFor[T]())
}

// Get returns e's first T, or false when the entity has none.
func Get[T any](e *Entity) (T, bool) {
	return FirstOf[T](e)
}

// All returns every T held by e.
func All[T any](e *Entity) []T {
	return ComponentsOf[T](e)
}

// AllOf returns every T held by the given entities, entity by entity.
func AllOf[T any](entities []*Entity) []T {
	out := make([]T, 0, len(entities))
	for _, e := range entities {
		out = append(out, ComponentsOf[T](e)...)
	}
	return out
}
