package stack

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/hyperbolic-timechamber/fixed-stack-go/src/staticarray"
)

var (
	ErrStackFull       = errors.New("Stack full")
	ErrStackEmpty      = errors.New("Stack is empty.")
	ErrInvalidCapacity = errors.New("Stack: invalid capacity")
)

// StackFullError is returned by Push when the stack already holds
// Capacity values. It matches ErrStackFull under errors.Is.
type StackFullError struct {
	Capacity int
}

func (e StackFullError) Error() string {
	return fmt.Sprintf("Stack is full. Maximum size is %d", e.Capacity)
}

func (e StackFullError) Is(target error) bool {
	return target == ErrStackFull
}

// SimpleStack is the capability set shared by character stacks.
type SimpleStack interface {
	Push(value rune) error
	Pop() (rune, error)
	IsEmpty() bool
	IsFull() bool
}

var _ SimpleStack = (*FixedLengthStack)(nil)

// FixedLengthStack is a character stack whose capacity is fixed at
// construction. Slots [0, tos) of data hold the pushed values in push
// order.
type FixedLengthStack struct {
	data *staticarray.StaticArray[rune]
	tos  int
}

func New(capacity int) (*FixedLengthStack, error) {
	if capacity < 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}
	return &FixedLengthStack{
		data: staticarray.New[rune](capacity),
	}, nil
}

// NewFromStack returns an independent copy of other with the same
// capacity and contents. A nil other yields an empty stack of capacity 0.
func NewFromStack(other *FixedLengthStack) *FixedLengthStack {
	if other == nil {
		return &FixedLengthStack{data: staticarray.New[rune](0)}
	}
	s := &FixedLengthStack{
		data: staticarray.New[rune](other.data.Size()),
		tos:  other.tos,
	}
	copy(s.data.Data(), other.occupied())
	return s
}

// NewFromValues sizes the stack to len(values) and pushes each value in
// order. If a push fails, the partially filled stack is returned along
// with the error.
func NewFromValues(values ...rune) (*FixedLengthStack, error) {
	s := &FixedLengthStack{
		data: staticarray.New[rune](len(values)),
	}
	for _, v := range values {
		if err := s.Push(v); err != nil {
			return s, err
		}
	}
	return s, nil
}

func (s *FixedLengthStack) Push(value rune) error {
	if s.IsFull() {
		return StackFullError{Capacity: s.data.Size()}
	}
	if err := s.data.SetAt(s.tos, value); err != nil {
		return errors.Wrap(err, "push")
	}
	s.tos++
	return nil
}

func (s *FixedLengthStack) Pop() (rune, error) {
	v, err := s.Top()
	if err != nil {
		return 0, err
	}
	s.tos--
	return v, nil
}

func (s *FixedLengthStack) Top() (rune, error) {
	if s.IsEmpty() {
		return 0, ErrStackEmpty
	}
	v, err := s.data.At(s.tos - 1)
	if err != nil {
		return 0, errors.Wrap(err, "top")
	}
	return v, nil
}

func (s *FixedLengthStack) IsEmpty() bool {
	return s.tos == 0
}

func (s *FixedLengthStack) IsFull() bool {
	return s.tos == s.data.Size()
}

func (s *FixedLengthStack) Size() int {
	return s.tos
}

func (s *FixedLengthStack) Capacity() int {
	return s.data.Size()
}

func (s *FixedLengthStack) Clear() {
	s.tos = 0
}

func (s *FixedLengthStack) Clone() *FixedLengthStack {
	return NewFromStack(s)
}

// Values returns the occupied slots from bottom to top.
func (s *FixedLengthStack) Values() []rune {
	out := make([]rune, s.tos)
	copy(out, s.occupied())
	return out
}

func (s *FixedLengthStack) occupied() []rune {
	return s.data.Data()[:s.tos]
}

func (s *FixedLengthStack) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.occupied() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(v)
	}
	b.WriteByte(']')
	return b.String()
}
