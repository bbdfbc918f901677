package bst

// Record is a value stored in a Tree. Compare must define a total order:
// negative when the receiver sorts before other, zero when equal, positive
// when after.
type Record[R any] interface {
	Compare(other R) int
	String() string
}

// Cloner is implemented by records that share memory with the caller (slices,
// pointers). The tree clones such records so that it owns what it stores.
type Cloner[R any] interface {
	Clone() R
}

func New[R Record[R]]() *Tree[R] {
	return &Tree[R]{}
}
