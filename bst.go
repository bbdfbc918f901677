package bst

import (
	"errors"
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

const (
	// spaces per level in the sideways display
	indentWidth = 4
)

var (
	ErrShortArray = errors.New("destination array is shorter than the tree")
)

type (
	// Tree is an unbalanced binary search tree. The zero value is an empty
	// tree ready to use. A Tree must not be mutated concurrently.
	Tree[R Record[R]] struct {
		size int
		root *node[R]
	}

	node[R Record[R]] struct {
		record      R
		left, right *node[R]
	}

	Callback[R any] func(r R) bool

	traverseAction int

	// sidewaysLevel pairs a node with its display level, root at 1
	sidewaysLevel[R Record[R]] struct {
		node  *node[R]
		level int
	}

	nodePair[R Record[R]] struct {
		a, b *node[R]
	}
)
