package cop

import (
	"fmt"
	"reflect"
	"slices"
)

// Row pairs a system with the entities it currently processes.
type Row struct {
	system   System
	entities []*Entity
}

func newRow(s System) *Row {
	return &Row{system: s}
}

// System returns the row's system.
func (r *Row) System() System {
	return r.system
}

// Entities returns the row's entity list. The slice is shared, not copied.
func (r *Row) Entities() []*Entity {
	return r.entities
}

// Len returns the number of entities in the row.
func (r *Row) Len() int {
	return len(r.entities)
}

// Contains reports whether e is in the row.
func (r *Row) Contains(e *Entity) bool {
	return slices.Contains(r.entities, e)
}

// AddEntityIfCanProcess appends e when the system accepts it. An entity
// already in the row is left alone and reported as accepted without asking
// the system again.
func (r *Row) AddEntityIfCanProcess(e *Entity) bool {
	if r.Contains(e) {
		return true
	}
	if !r.system.CanProcess(e) {
		return false
	}
	r.entities = append(r.entities, e)
	return true
}

// RemoveEntity drops e from the row. Removing an absent entity does nothing.
func (r *Row) RemoveEntity(e *Entity) {
	if i := slices.Index(r.entities, e); i >= 0 {
		r.entities = slices.Delete(r.entities, i, i+1)
	}
}

// Process runs the system over the row's list. Changing the list while it
// runs is undefined.
func (r *Row) Process(w *World) error {
	return r.system.Process(w, r.entities)
}

// Schedule is an ordered map from systems to rows. Order is registration
// order, which is processing order.
type Schedule struct {
	rows  []*Row
	index map[System]int
}

// NewSchedule creates an empty schedule.
func NewSchedule() *Schedule {
	return &Schedule{index: make(map[System]int)}
}

// Len returns the number of rows.
func (s *Schedule) Len() int {
	return len(s.rows)
}

// Rows returns the rows in order. The slice must not be modified.
func (s *Schedule) Rows() []*Row {
	return s.rows
}

// IndexOf returns the position of sys, or -1.
func (s *Schedule) IndexOf(sys System) int {
	if !isComparable(sys) {
		return -1
	}
	if i, ok := s.index[sys]; ok {
		return i
	}
	return -1
}

// Row returns the row for sys.
func (s *Schedule) Row(sys System) (*Row, bool) {
	i := s.IndexOf(sys)
	if i < 0 {
		return nil, false
	}
	return s.rows[i], true
}

// Add appends an empty row for sys.
func (s *Schedule) Add(sys System) (*Row, error) {
	return s.Insert(len(s.rows), sys)
}

// Insert places an empty row for sys at index, shifting later rows.
func (s *Schedule) Insert(index int, sys System) (*Row, error) {
	if !isComparable(sys) {
		return nil, fmt.Errorf("%w: %T", ErrSystemNotComparable, sys)
	}
	if _, ok := s.index[sys]; ok {
		return nil, fmt.Errorf("%w: %s", ErrSystemExists, SystemName(sys))
	}
	if index < 0 || index > len(s.rows) {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfRange, index, len(s.rows))
	}
	row := newRow(sys)
	s.rows = slices.Insert(s.rows, index, row)
	s.reindex(index)
	return row, nil
}

// Remove deletes the row for sys. It reports whether a row was removed.
func (s *Schedule) Remove(sys System) bool {
	i := s.IndexOf(sys)
	if i < 0 {
		return false
	}
	delete(s.index, sys)
	s.rows = slices.Delete(s.rows, i, i+1)
	s.reindex(i)
	return true
}

func (s *Schedule) reindex(from int) {
	for i := from; i < len(s.rows); i++ {
		s.index[s.rows[i].system] = i
	}
}

// AddEntity offers e to every row in order.
func (s *Schedule) AddEntity(e *Entity) {
	for _, row := range s.rows {
		row.AddEntityIfCanProcess(e)
	}
}

// RemoveEntity removes e from every row.
func (s *Schedule) RemoveEntity(e *Entity) {
	for _, row := range s.rows {
		row.RemoveEntity(e)
	}
}

// Process runs every row in order and stops at the first error.
func (s *Schedule) Process(w *World) error {
	for _, row := range s.rows {
		if err := row.Process(w); err != nil {
			return fmt.Errorf("process %s: %w", SystemName(row.system), err)
		}
	}
	return nil
}

// isComparable reports whether sys can be used as a map key without panicking.
func isComparable(sys System) bool {
	return sys != nil && reflect.TypeOf(sys).Comparable()
}
