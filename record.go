package bst

import (
	"bytes"
	"cmp"
	"fmt"
)

// Key is a byte string record ordered bytewise.
type Key []byte

func (k Key) Compare(other Key) int {
	return bytes.Compare(k, other)
}

func (k Key) String() string {
	return string(k)
}

func (k Key) Clone() Key {
	return append(Key(nil), k...)
}

// Ordered wraps any ordered scalar as a record.
type Ordered[T cmp.Ordered] struct {
	Value T
}

// Of wraps v as an Ordered record.
func Of[T cmp.Ordered](v T) Ordered[T] {
	return Ordered[T]{Value: v}
}

func (o Ordered[T]) Compare(other Ordered[T]) int {
	return cmp.Compare(o.Value, other.Value)
}

func (o Ordered[T]) String() string {
	return fmt.Sprint(o.Value)
}
