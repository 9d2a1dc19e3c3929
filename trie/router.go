package trie

import (
	"fmt"
	"maps"
	"slices"
)

// Router maps path patterns to values. The zero value is an empty router
// ready to use.
//
// Add must not run concurrently with Add or Match. Once registration is
// complete, Match may be called from many goroutines, each with its own
// MatchResult.
type Router struct {
	root      *Node
	size      int
	destroyed bool
}

// New returns an empty router.
func New() *Router {
	return &Router{root: &Node{}}
}

// Add registers value under pattern. In pattern, literal bytes match
// themselves, a segment starting with ':' is a named wildcard whose name
// runs to the next '/', and '*' is an unnamed wildcard. value is stored as
// is and never released by the router.
func (r *Router) Add(pattern string, value any) error {
	return r.AddPattern(Compile(pattern), value)
}

// AddPattern registers value under an already compiled pattern. p.Slugs
// must hold exactly one name per wildcard in p.Path, and be nil when there
// is none; otherwise ErrInvalidPattern is returned.
func (r *Router) AddPattern(p Pattern, value any) error {
	if r.destroyed {
		return fmt.Errorf("trie: add %q: %w", p.Template(), ErrRouterDestroyed)
	}
	if err := p.validate(); err != nil {
		return fmt.Errorf("trie: add %q: %w", p.Path, err)
	}
	if r.root == nil {
		r.root = &Node{}
	}

	node, err := r.root.insert(p.Path)
	if err != nil {
		return fmt.Errorf("trie: add %q: %w", p.Template(), err)
	}

	node.terminal = true
	node.value = value
	node.slugs = p.Slugs
	r.size++

	return nil
}

// Match looks path up and reports whether a registered pattern matched. On
// success res holds the value, the capture offsets into path and the slug
// names; otherwise res is left as it was.
func (r *Router) Match(path string, res *MatchResult) bool {
	if r.root == nil {
		return false
	}
	node, captures := search(r.root, path, res)
	return res.populate(node, captures)
}

// Lookup is a convenience form of Match that returns only the value.
func (r *Router) Lookup(path string) (any, bool) {
	res := MatchResult{}
	if !r.Match(path, &res) {
		return nil, false
	}
	return res.value, true
}

// Find descends the tree along the literal bytes of path without treating
// any byte specially and without creating nodes. It returns nil as soon as
// an edge is missing. To look up a registered pattern, pass its compiled
// Path.
func (r *Router) Find(path string) *Node {
	if r.root == nil {
		return nil
	}
	return r.root.find(path)
}

// Len returns the number of registered patterns.
func (r *Router) Len() int {
	return r.size
}

// Destroy releases the whole tree. Registered values are not touched.
// Afterwards Match never succeeds and Add returns ErrRouterDestroyed.
func (r *Router) Destroy() {
	if r.root != nil {
		r.root.release()
	}
	r.root = nil
	r.size = 0
	r.destroyed = true
}

// WalkFunc is called by Walk for every registered pattern.
type WalkFunc func(p Pattern, value any) error

// Walk calls fn for each registered pattern in byte order of the
// normalized paths. A non-nil error from fn stops the walk and is returned.
func (r *Router) Walk(fn WalkFunc) error {
	if r.root == nil {
		return nil
	}
	return walk(r.root, make([]byte, 0, 64), fn)
}

func walk(n *Node, path []byte, fn WalkFunc) error {
	if n.terminal {
		if err := fn(Pattern{Path: string(path), Slugs: n.slugs}, n.value); err != nil {
			return err
		}
	}
	for _, b := range slices.Sorted(maps.Keys(n.children)) {
		if err := walk(n.children[b], append(path, b), fn); err != nil {
			return err
		}
	}
	return nil
}
