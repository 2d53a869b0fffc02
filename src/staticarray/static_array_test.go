package staticarray

import (
	"testing"

	"github.com/pkg/errors"
)

func TestSize(t *testing.T) {
	arr := New[rune](5)
	if arr.Size() != 5 {
		t.Fatalf("expected size 5, got %d", arr.Size())
	}
	empty := New[rune](0)
	if empty.Size() != 0 {
		t.Fatalf("expected size 0, got %d", empty.Size())
	}
}

func TestAtSetAtValidIndex(t *testing.T) {
	arr := New[rune](3)
	for i, v := range []rune{'x', 'y', 'z'} {
		if err := arr.SetAt(i, v); err != nil {
			t.Fatalf("unexpected error at index %d: %v", i, err)
		}
	}
	for i, expected := range []rune{'x', 'y', 'z'} {
		v, err := arr.At(i)
		if err != nil {
			t.Fatalf("unexpected error at index %d", i)
		}
		if v != expected {
			t.Fatalf("index %d: expected %c, got %c", i, expected, v)
		}
	}
}

func TestAtOutOfRange(t *testing.T) {
	arr := New[rune](3)
	for _, idx := range []int{-1, 3, 100} {
		if _, err := arr.At(idx); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("index %d: expected ErrOutOfRange, got %v", idx, err)
		}
	}
}

func TestSetAtOutOfRange(t *testing.T) {
	arr := New[rune](2)
	arr.SetAt(0, 'a')
	arr.SetAt(1, 'b')
	for _, idx := range []int{-1, 2} {
		if err := arr.SetAt(idx, 'q'); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("index %d: expected ErrOutOfRange, got %v", idx, err)
		}
	}
	if string(arr.Data()) != "ab" {
		t.Fatalf("expected ab, got %s", string(arr.Data()))
	}
}

func TestAtOnZeroSize(t *testing.T) {
	arr := New[rune](0)
	if _, err := arr.At(0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestDataReflectsWrites(t *testing.T) {
	arr := New[rune](2)
	arr.SetAt(1, 'k')
	data := arr.Data()
	if len(data) != 2 || data[1] != 'k' {
		t.Fatalf("expected [0 k], got %v", data)
	}
	data[0] = 'j'
	v, _ := arr.At(0)
	if v != 'j' {
		t.Fatalf("expected j, got %c", v)
	}
}

func TestDataOnZeroSize(t *testing.T) {
	if New[rune](0).Data() != nil {
		t.Fatal("expected nil data for zero-size array")
	}
}
