package trie

// Node is a single position in the prefix tree. Each node is reached by
// exactly one byte from its parent; the root is reached by the empty path.
type Node struct {
	children map[byte]*Node
	terminal bool
	value    any
	slugs    []string
}

// Terminal reports whether some registered pattern ends at this node.
func (n *Node) Terminal() bool {
	return n != nil && n.terminal
}

// Value returns the value registered for the pattern ending here, or nil
// for a non-terminal node.
func (n *Node) Value() any {
	if n == nil {
		return nil
	}
	return n.value
}

// SlugNames returns the names of the wildcard segments on the path to this
// node, in pattern order. Unnamed wildcards are reported as "". The slice is
// nil for nodes whose pattern has no wildcard and must not be modified.
func (n *Node) SlugNames() []string {
	if n == nil {
		return nil
	}
	return n.slugs
}

// Child returns the child reached by b, or nil.
func (n *Node) Child(b byte) *Node {
	if n == nil {
		return nil
	}
	return n.children[b]
}

// descend walks path byte by byte starting at n. Missing children are
// created when create is true; otherwise a missing edge yields nil.
func (n *Node) descend(path string, create bool) *Node {
	current := n
	for i := 0; i < len(path); i++ {
		next := current.children[path[i]]
		if next == nil {
			if !create {
				return nil
			}
			if current.children == nil {
				current.children = make(map[byte]*Node, 1)
			}
			next = &Node{}
			current.children[path[i]] = next
		}
		current = next
	}
	return current
}

// insert returns the node at the end of path, creating the missing edges.
// It refuses to hand out a node that already terminates a pattern.
func (n *Node) insert(path string) (*Node, error) {
	node := n.descend(path, true)
	if node.terminal {
		return nil, ErrDuplicateRoute
	}
	return node, nil
}

// find is the read-only counterpart of insert.
func (n *Node) find(path string) *Node {
	return n.descend(path, false)
}

// release drops every descendant post-order, then the slug names. Values
// are caller-owned and only unlinked.
func (n *Node) release() {
	for b, child := range n.children {
		child.release()
		delete(n.children, b)
	}
	n.children = nil
	n.slugs = nil
	n.value = nil
	n.terminal = false
}
