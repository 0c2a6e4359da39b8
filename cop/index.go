package cop

import (
	"reflect"
	"unsafe"
)

// matches reports whether a member declared as t satisfies a query for target.
// Interface targets match every type that implements them.
func matches(t, target reflect.Type) bool {
	if t == target {
		return true
	}
	return target.Kind() == reflect.Interface && t.Implements(target)
}

// Has reports whether any member path of the shape reaches a member of the
// target type, through nested sets and sequence element types. It needs no
// instance. Results are memoized per target.
func (s *Shape) Has(target reflect.Type) bool {
	if target == nil {
		return false
	}
	s.mu.Lock()
	v, ok := s.has[target]
	s.mu.Unlock()
	if ok {
		return v
	}

	v = shapeHas(s, target, make(map[reflect.Type]bool))

	s.mu.Lock()
	s.has[target] = v
	s.mu.Unlock()
	return v
}

// shapeHas walks the type graph once per set type. A set type already seen
// on this walk contributes no further match.
func shapeHas(s *Shape, target reflect.Type, visited map[reflect.Type]bool) bool {
	if visited[s.typ] {
		return false
	}
	visited[s.typ] = true

	for _, sl := range s.slots {
		switch sl.kind {
		case slotComponent:
			if matches(sl.typ, target) {
				return true
			}
		case slotSet:
			if matches(sl.typ, target) || shapeHas(mustShape(sl.typ), target, visited) {
				return true
			}
		case slotSeqComponent:
			if matches(sl.elem, target) {
				return true
			}
		case slotSeqSet:
			if matches(sl.elem, target) || shapeHas(mustShape(sl.elem), target, visited) {
				return true
			}
		}
	}
	return false
}

// TypeHas is the static capability check for a struct type (or pointer to
// one). It returns false for anything that is not a struct.
func TypeHas(shapeType, target reflect.Type) bool {
	s, err := ShapeOf(shapeType)
	if err != nil {
		return false
	}
	return s.Has(target)
}

// ShapeHas reports whether values of S can hold components of type T.
func ShapeHas[S, T any]() bool {
	return TypeHas(reflect.TypeFor[S](), reflect.TypeFor[T]())
}

type pathKey struct {
	typ reflect.Type
	ptr unsafe.Pointer
}

// walker collects member values matching target in declaration order.
// onPath holds the set pointers and set slices currently being walked so
// that cycles between instances terminate; the same set reached along two
// separate paths is still walked twice.
type walker struct {
	target reflect.Type
	limit  int
	out    []reflect.Value
	onPath map[pathKey]bool
}

func (w *walker) full() bool {
	return w.limit > 0 && len(w.out) >= w.limit
}

func (w *walker) emit(v reflect.Value) {
	if isNil(v) {
		return
	}
	w.out = append(w.out, v)
}

// walkSet walks v, a pointer to or value of a set struct.
func (w *walker) walkSet(v reflect.Value) {
	if isNil(v) {
		return
	}
	if v.Kind() == reflect.Pointer {
		key := pathKey{typ: v.Type(), ptr: v.UnsafePointer()}
		if w.onPath[key] {
			return
		}
		w.onPath[key] = true
		defer delete(w.onPath, key)
		v = v.Elem()
	}

	s := mustShape(v.Type())
	for _, sl := range s.slots {
		if w.full() {
			return
		}
		fv := v.Field(sl.index)
		switch sl.kind {
		case slotComponent:
			if matches(sl.typ, w.target) {
				w.emit(fv)
			}
		case slotSet:
			if matches(sl.typ, w.target) {
				w.emit(fv)
			} else {
				w.walkSet(fv)
			}
		case slotSeqComponent:
			if !matches(sl.elem, w.target) {
				continue
			}
			for i := 0; i < fv.Len() && !w.full(); i++ {
				w.emit(fv.Index(i))
			}
		case slotSeqSet:
			w.walkSeq(fv, matches(sl.elem, w.target))
		}
	}
}

// walkSeq walks a sequence of sets. A slice is on the path while its
// elements are walked, since value elements can reach the same backing
// array again.
func (w *walker) walkSeq(fv reflect.Value, direct bool) {
	if fv.Kind() == reflect.Slice && fv.Len() > 0 {
		key := pathKey{typ: fv.Type(), ptr: fv.UnsafePointer()}
		if w.onPath[key] {
			return
		}
		w.onPath[key] = true
		defer delete(w.onPath, key)
	}
	for i := 0; i < fv.Len() && !w.full(); i++ {
		if direct {
			w.emit(fv.Index(i))
		} else {
			w.walkSet(fv.Index(i))
		}
	}
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	}
	return !v.IsValid()
}

// collect runs the dynamic walk over v, which may be an *Entity, a pointer
// to a struct or a struct value. limit <= 0 means no limit.
func collect(v any, target reflect.Type, limit int) []reflect.Value {
	if e, ok := v.(*Entity); ok {
		if e == nil {
			return nil
		}
		v = e.data.Interface()
	}
	rv := reflect.ValueOf(v)
	if target == nil || isNil(rv) {
		return nil
	}
	t := rv.Type()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	w := &walker{target: target, limit: limit, onPath: make(map[pathKey]bool)}
	w.walkSet(rv)
	return w.out
}

// ComponentsOfType returns every member value of the target type reachable
// from v, in declaration order, sequences in element order. Nil members are
// omitted. A component aliased under several members appears once per member.
func ComponentsOfType(v any, target reflect.Type) []any {
	vals := collect(v, target, 0)
	out := make([]any, len(vals))
	for i, rv := range vals {
		out[i] = rv.Interface()
	}
	return out
}

// FirstComponentOfType returns the first value ComponentsOfType would return.
func FirstComponentOfType(v any, target reflect.Type) (any, bool) {
	vals := collect(v, target, 1)
	if len(vals) == 0 {
		return nil, false
	}
	return vals[0].Interface(), true
}

// ComponentsOf is the typed form of ComponentsOfType.
func ComponentsOf[T any](v any) []T {
	vals := collect(v, reflect.TypeFor[T](), 0)
	out := make([]T, 0, len(vals))
	for _, rv := range vals {
		out = append(out, rv.Interface().(T))
	}
	return out
}

// FirstOf is the typed form of FirstComponentOfType.
func FirstOf[T any](v any) (T, bool) {
	vals := collect(v, reflect.TypeFor[T](), 1)
	if len(vals) == 0 {
		var zero T
		return zero, false
	}
	return vals[0].Interface().(T), true
}
