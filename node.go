package bst

func newNode[R Record[R]](r R) *node[R] {
	return &node[R]{record: own(r)}
}

// own returns the copy of r the tree keeps.
func own[R any](r R) R {
	if c, ok := any(r).(Cloner[R]); ok {
		return c.Clone()
	}
	return r
}

func replaceRef[R Record[R]](oldNode **node[R], newNode *node[R]) {
	*oldNode = newNode
}

func (n *node[R]) match(r R) bool {
	return n.record.Compare(r) == 0
}

// height counts the levels of the subtree rooted at n.
func (n *node[R]) height() int {
	if n == nil {
		return 0
	}

	h := 0
	level := []*node[R]{n}
	for len(level) > 0 {
		h++
		var next []*node[R]
		for _, curr := range level {
			if curr.left != nil {
				next = append(next, curr.left)
			}
			if curr.right != nil {
				next = append(next, curr.right)
			}
		}
		level = next
	}
	return h
}

// find visits every node under n in pre-order and returns the first one
// holding r. It does not use the ordering, so it costs O(n).
func (n *node[R]) find(r R) *node[R] {
	stack := []*node[R]{n}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if curr == nil {
			continue
		}
		if curr.match(r) {
			return curr
		}
		stack = append(stack, curr.right, curr.left)
	}
	return nil
}

// release unlinks the subtree rooted at n in post-order, children before
// their parent, and drops every record it holds.
func (n *node[R]) release() {
	var zero R
	stack := []*node[R]{n}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		if curr.left != nil {
			stack = append(stack, curr.left)
			curr.left = nil
			continue
		}
		if curr.right != nil {
			stack = append(stack, curr.right)
			curr.right = nil
			continue
		}
		stack = stack[:len(stack)-1]
		curr.record = zero
	}
}

// preOrder calls fn on n, then its left subtree, then its right subtree.
func (n *node[R]) preOrder(fn func(*node[R])) {
	stack := []*node[R]{n}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if curr == nil {
			continue
		}
		fn(curr)
		stack = append(stack, curr.right, curr.left)
	}
}

// inOrder calls fn on every node under n in ascending order until fn
// returns traverseStop.
func (n *node[R]) inOrder(fn func(*node[R]) traverseAction) traverseAction {
	var stack []*node[R]
	curr := n
	for curr != nil || len(stack) > 0 {
		for curr != nil {
			stack = append(stack, curr)
			curr = curr.left
		}
		curr = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if fn(curr) == traverseStop {
			return traverseStop
		}
		curr = curr.right
	}
	return traverseContinue
}
