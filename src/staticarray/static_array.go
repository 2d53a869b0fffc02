package staticarray

import "github.com/pkg/errors"

var ErrOutOfRange = errors.New("StaticArray: index out of range")

// StaticArray is a fixed number of slots allocated up front. Its size
// never changes after New.
type StaticArray[T any] struct {
	data []T
	size int
}

func New[T any](size int) *StaticArray[T] {
	return &StaticArray[T]{
		data: make([]T, size),
		size: size,
	}
}

func (a *StaticArray[T]) At(index int) (T, error) {
	var zero T
	if index < 0 || index >= a.size {
		return zero, errors.Wrapf(ErrOutOfRange, "index %d, size %d", index, a.size)
	}
	return a.data[index], nil
}

func (a *StaticArray[T]) SetAt(index int, value T) error {
	if index < 0 || index >= a.size {
		return errors.Wrapf(ErrOutOfRange, "index %d, size %d", index, a.size)
	}
	a.data[index] = value
	return nil
}

// Data exposes the backing slots. Writes through it are visible to the
// array.
func (a *StaticArray[T]) Data() []T {
	if a.size == 0 {
		return nil
	}
	return a.data
}

func (a *StaticArray[T]) Size() int {
	return a.size
}
