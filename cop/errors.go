package cop

import "errors"

var (
	ErrNotComposite        = errors.New("cop: not a component set")
	ErrSystemExists        = errors.New("cop: system already registered")
	ErrSystemNotComparable = errors.New("cop: system is not comparable")
	ErrIndexOutOfRange     = errors.New("cop: index out of range")
	ErrNilEntity           = errors.New("cop: nil entity")
	ErrEntityExists        = errors.New("cop: entity already registered")
	ErrForeignEntity       = errors.New("cop: entity belongs to another world")
)
