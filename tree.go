package bst

import (
	"fmt"
	"io"
	"os"
	"strings"
)

func (t *Tree[R]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *Tree[R]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Insert stores r, or a clone of it when R implements Cloner. It returns
// false and leaves the tree unchanged if an equal record is already present.
func (t *Tree[R]) Insert(r R) bool {
	inserted := t.insert(&t.root, r)
	if inserted {
		t.size++
	}
	return inserted
}

func (t *Tree[R]) insert(curNode **node[R], r R) bool {
	for *curNode != nil {
		curr := *curNode
		switch c := r.Compare(curr.record); {
		case c > 0:
			curNode = &curr.right
		case c < 0:
			curNode = &curr.left
		default:
			return false
		}
	}
	replaceRef(curNode, newNode(r))
	return true
}

// Retrieve returns the stored record equal to target. The record is still
// owned by the tree.
func (t *Tree[R]) Retrieve(target R) (R, bool) {
	curr := t.rootNode()
	for curr != nil {
		c := target.Compare(curr.record)
		if c == 0 {
			return curr.record, true
		}
		if c > 0 {
			curr = curr.right
		} else {
			curr = curr.left
		}
	}

	var zero R
	return zero, false
}

// MakeEmpty drops every node and record. Calling it on an empty tree is a
// no-op.
func (t *Tree[R]) MakeEmpty() {
	if t == nil {
		return
	}
	if t.root != nil {
		t.root.release()
	}
	t.root = nil
	t.size = 0
}

// Equal reports whether both trees hold equal records in the same shape.
// Trees with the same records inserted in a different order may differ.
func (t *Tree[R]) Equal(other *Tree[R]) bool {
	if t == other {
		return true
	}

	stack := []nodePair[R]{{t.rootNode(), other.rootNode()}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.a == nil && p.b == nil {
			continue
		}
		if p.a == nil || p.b == nil {
			return false
		}
		if !p.a.match(p.b.record) {
			return false
		}
		stack = append(stack, nodePair[R]{p.a.right, p.b.right}, nodePair[R]{p.a.left, p.b.left})
	}
	return true
}

func (t *Tree[R]) NotEqual(other *Tree[R]) bool {
	return !t.Equal(other)
}

// Clone returns a new tree built by inserting t's records in pre-order, which
// reproduces t's shape. Cloning an empty tree yields an empty tree.
func (t *Tree[R]) Clone() *Tree[R] {
	c := New[R]()
	c.copyFrom(t)
	return c
}

// Assign replaces t's content with a copy of src. Assigning a tree to itself
// does nothing; assigning an empty or nil tree empties t.
func (t *Tree[R]) Assign(src *Tree[R]) {
	if t == src {
		return
	}
	t.MakeEmpty()
	t.copyFrom(src)
}

func (t *Tree[R]) copyFrom(src *Tree[R]) {
	if src.IsEmpty() {
		return
	}
	src.root.preOrder(func(n *node[R]) {
		t.Insert(n.record)
	})
}

// ForEach calls callback on every record in ascending order until it returns
// false.
func (t *Tree[R]) ForEach(callback Callback[R]) {
	t.rootNode().inOrder(func(n *node[R]) traverseAction {
		if !callback(n.record) {
			return traverseStop
		}
		return traverseContinue
	})
}

// String lists the records in ascending order, each followed by a space, and
// ends with a newline.
func (t *Tree[R]) String() string {
	var sb strings.Builder
	t.ForEach(func(r R) bool {
		sb.WriteString(r.String())
		sb.WriteByte(' ')
		return true
	})
	sb.WriteByte('\n')
	return sb.String()
}

func (t *Tree[R]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}

// DisplaySideways prints the tree rotated a quarter turn to standard output.
func (t *Tree[R]) DisplaySideways() {
	_ = t.Sideways(os.Stdout)
}

// Sideways writes the tree rotated a quarter turn: right subtree on top, left
// subtree below, four spaces of indentation per level.
func (t *Tree[R]) Sideways(w io.Writer) error {
	var stack []sidewaysLevel[R]
	curr, level := t.rootNode(), 1
	for curr != nil || len(stack) > 0 {
		for curr != nil {
			stack = append(stack, sidewaysLevel[R]{curr, level})
			curr = curr.right
			level++
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		indent := strings.Repeat(" ", indentWidth*(top.level+1))
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, top.node.record.String()); err != nil {
			return err
		}
		curr, level = top.node.left, top.level+1
	}
	return nil
}

// ToArray moves the records into dst in ascending order and empties the
// tree. The records are handed over, not copied. dst must hold at least
// Size() records; otherwise ErrShortArray is returned and the tree is left
// as it was.
func (t *Tree[R]) ToArray(dst []R) (int, error) {
	if size := t.Size(); len(dst) < size {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrShortArray, size, len(dst))
	}

	pos := 0
	t.rootNode().inOrder(func(n *node[R]) traverseAction {
		dst[pos] = n.record
		pos++
		return traverseContinue
	})
	t.MakeEmpty()
	return pos, nil
}

// Drain is ToArray into a slice of exactly the right size.
func (t *Tree[R]) Drain() []R {
	dst := make([]R, t.Size())
	n, _ := t.ToArray(dst)
	return dst[:n]
}

// Height returns the height of the subtree rooted at the record equal to
// target, a leaf being 1, or 0 if target is absent. The lookup checks every
// node instead of following the ordering.
func (t *Tree[R]) Height(target R) int {
	if t.IsEmpty() {
		return 0
	}
	return t.root.find(target).height()
}

func (t *Tree[R]) rootNode() *node[R] {
	if t == nil {
		return nil
	}
	return t.root
}
