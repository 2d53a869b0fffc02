// Package stackdemo drives character stacks past their bounds and reports
// the resulting errors the way a console host program would.
package stackdemo

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/hyperbolic-timechamber/fixed-stack-go/src/stack"
)

// Overrun pushes 'A', 'B', ... onto s until attempts pushes were made or
// the stack reports it is full. A full stack ends the loop; any other
// error is returned.
func Overrun(w io.Writer, s stack.SimpleStack, attempts int) error {
	for i := 0; i < attempts; i++ {
		ch := rune('A' + i)
		fmt.Fprintf(w, "Attempting to push : %c", ch)
		if err := s.Push(ch); err != nil {
			if errors.Is(err, stack.ErrStackFull) {
				fmt.Fprintf(w, "\n%v\n", err)
				return nil
			}
			return errors.Wrapf(err, "push %c", ch)
		}
		fmt.Fprintln(w, " - OK")
	}
	fmt.Fprintln(w)
	return nil
}

// Drain pops up to attempts values from s, stopping at the first
// empty-stack error.
func Drain(w io.Writer, s stack.SimpleStack, attempts int) error {
	for i := 0; i < attempts; i++ {
		fmt.Fprint(w, "Popping next char: ")
		ch, err := s.Pop()
		if err != nil {
			if errors.Is(err, stack.ErrStackEmpty) {
				fmt.Fprintf(w, "\n%v\n", err)
				return nil
			}
			return errors.Wrap(err, "pop")
		}
		fmt.Fprintf(w, "%c\n", ch)
	}
	return nil
}

// Run overfills and then over-empties a stack of the given size.
func Run(w io.Writer, size, attempts int) error {
	s, err := stack.New(size)
	if err != nil {
		return errors.Wrap(err, "new stack")
	}
	if err := Overrun(w, s, attempts); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return Drain(w, s, attempts)
}

// Copy builds a stack from values, copies it, and pops from the copy to
// show the original is left untouched.
func Copy(w io.Writer, values string) error {
	orig, err := stack.NewFromValues([]rune(values)...)
	if err != nil {
		return errors.Wrap(err, "build stack")
	}
	dup := stack.NewFromStack(orig)
	fmt.Fprintf(w, "Original: %v\n", orig)
	fmt.Fprintf(w, "Copy:     %v\n", dup)

	ch, err := dup.Pop()
	switch {
	case errors.Is(err, stack.ErrStackEmpty):
		fmt.Fprintf(w, "Popped from copy: %v\n", err)
	case err != nil:
		return errors.Wrap(err, "pop copy")
	default:
		fmt.Fprintf(w, "Popped from copy: %c\n", ch)
	}

	fmt.Fprintf(w, "Original: %v\n", orig)
	fmt.Fprintf(w, "Copy:     %v\n", dup)
	return nil
}
