package trie

// frame is a pending position in the depth-first search.
type frame struct {
	node *Node
	at   int
	// captures is the number of captures recorded once this frame is
	// entered.
	captures int
	// segment is the start of the capture this frame records on entry, or
	// -1. The capture ends at at.
	segment int
}

// search finds the terminal node for path, preferring at every branch point
// the literal edge over the wildcard edge. A literal subtree is explored in
// full before the wildcard alternative at the same position is tried, so a
// literal prefix that later dead-ends falls back to capturing the segment.
//
// The search keeps its own stack in m instead of recursing; call depth does
// not grow with the length of path. Capture offsets are written to m's
// scratch buffers. Slot i is owned by the frame that recorded it and
// everything above it on the stack, so backtracking never exposes a stale
// offset for the winning branch.
func search(root *Node, path string, m *MatchResult) (*Node, int) {
	capacity := len(m.scratchStarts)
	stack := append(m.stack[:0], frame{node: root, segment: -1})

	defer func() {
		m.stack = stack[:0]
	}()

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.segment >= 0 {
			m.scratchStarts[f.captures-1] = f.segment
			m.scratchEnds[f.captures-1] = f.at
		}

		if f.at == len(path) {
			if f.node.terminal {
				return f.node, f.captures
			}
			continue
		}

		// Pushed first so that it is popped after the literal subtree.
		wildcard := f.node.children[Wildcard]
		if wildcard != nil && f.at > 0 && path[f.at-1] == Separator {
			end := f.at
			for end < len(path) && path[end] != Separator {
				end++
			}
			next := frame{node: wildcard, at: end, captures: f.captures, segment: -1}
			if f.captures < capacity {
				next.captures++
				next.segment = f.at
			}
			stack = append(stack, next)
		}

		if literal := f.node.children[path[f.at]]; literal != nil {
			stack = append(stack, frame{node: literal, at: f.at + 1, captures: f.captures, segment: -1})
		}
	}

	return nil, 0
}
