// Package cop is a small component-oriented processing runtime.
//
// Entities are plain Go structs. Their exported fields are components,
// nested component sets, or slices of either; nothing has to implement an
// interface to be discovered. Systems declare which entity shapes they can
// process and the World keeps, per system, the list of entities that
// qualified when they were registered. Each frame the World runs every
// system over its list in registration order.
//
// A World is not safe for concurrent use.
package cop

import "reflect"

// Component is any value held by an exported field of a component set.
// It exists for documentation; components need not implement anything.
type Component = any

// Set marks a struct as a component set. Embed it to let the struct be
// walked as a nested member of another set:
//
//	type Body struct {
//		cop.Set
//		Area     *components.Area
//		Velocity *components.Velocity
//	}
type Set struct{}

func (Set) componentSet() {}

type componentSet interface {
	componentSet()
}

var componentSetType = reflect.TypeFor[componentSet]()

// isSet reports whether t, or the struct t points to, embeds Set.
func isSet(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct && t.Implements(componentSetType)
}
