package cop

import (
	"fmt"
	"reflect"
	"sync"
)

type slotKind uint8

const (
	slotComponent slotKind = iota
	slotSet
	slotSeqComponent
	slotSeqSet
)

func (k slotKind) String() string {
	switch k {
	case slotComponent:
		return "component"
	case slotSet:
		return "set"
	case slotSeqComponent:
		return "[]component"
	case slotSeqSet:
		return "[]set"
	}
	return "unknown"
}

// slot is one member of a shape: an exported field and how to walk it.
type slot struct {
	name  string
	index int
	typ   reflect.Type
	elem  reflect.Type // element type for sequence slots
	kind  slotKind
}

// Shape is the member table of one struct type. It is built once per type
// and shared by every value of that type.
type Shape struct {
	typ   reflect.Type
	slots []slot

	mu  sync.Mutex
	has map[reflect.Type]bool
}

// Type returns the struct type the shape describes.
func (s *Shape) Type() reflect.Type {
	return s.typ
}

// Members returns the member names in declaration order.
func (s *Shape) Members() []string {
	names := make([]string, len(s.slots))
	for i, sl := range s.slots {
		names[i] = sl.name
	}
	return names
}

// String describes the shape, e.g. "spawners.Ball{Sprite component, Velocity component}".
func (s *Shape) String() string {
	str := s.typ.String() + "{"
	for i, sl := range s.slots {
		if i > 0 {
			str += ", "
		}
		str += sl.name + " " + sl.kind.String()
	}
	return str + "}"
}

var shapes = struct {
	sync.RWMutex
	byType map[reflect.Type]*Shape
}{byType: make(map[reflect.Type]*Shape)}

// ShapeOf returns the shape for t, building and caching it on first use.
// t may be a struct type or a pointer to one.
func ShapeOf(t reflect.Type) (*Shape, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", ErrNotComposite)
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotComposite, t)
	}

	shapes.RLock()
	s, ok := shapes.byType[t]
	shapes.RUnlock()
	if ok {
		return s, nil
	}

	s = buildShape(t)

	shapes.Lock()
	defer shapes.Unlock()
	if existing, ok := shapes.byType[t]; ok {
		return existing, nil
	}
	shapes.byType[t] = s
	return s, nil
}

// RegisterShape builds the shape for T ahead of first use.
func RegisterShape[T any]() (*Shape, error) {
	return ShapeOf(reflect.TypeFor[T]())
}

// mustShape is for types already known to be struct sets.
func mustShape(t reflect.Type) *Shape {
	s, err := ShapeOf(t)
	if err != nil {
		panic(err)
	}
	return s
}

// buildShape only records field types, so self-referencing types need no
// special handling here; nested shapes are resolved lazily by the walks.
func buildShape(t reflect.Type) *Shape {
	s := &Shape{
		typ: t,
		has: make(map[reflect.Type]bool),
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Type == setType {
			continue
		}
		sl := slot{name: f.Name, index: i, typ: f.Type}
		switch {
		case isSet(f.Type):
			sl.kind = slotSet
		case f.Type.Kind() == reflect.Slice || f.Type.Kind() == reflect.Array:
			sl.elem = f.Type.Elem()
			if isSet(sl.elem) {
				sl.kind = slotSeqSet
			} else {
				sl.kind = slotSeqComponent
			}
		default:
			sl.kind = slotComponent
		}
		s.slots = append(s.slots, sl)
	}
	return s
}

var setType = reflect.TypeFor[Set]()
