package trie

// MatchResult receives the outcome of Router.Match. It is allocated once
// with a fixed capture capacity and reused across calls; matching does not
// allocate capture storage of its own.
//
// Offsets refer to the path passed to Match and stay meaningful only as
// long as the caller keeps that string. SlugNames is borrowed from the
// router. A MatchResult must not be shared between concurrent Match calls.
type MatchResult struct {
	starts []int
	ends   []int
	count  int
	value  any
	slugs  []string

	// scratch offsets are written while searching and copied into
	// starts/ends only when the search succeeds.
	scratchStarts []int
	scratchEnds   []int
	stack         []frame
}

// NewMatchResult returns a result buffer able to hold maxCaptures captures.
// Captures beyond that are dropped without failing the match.
func NewMatchResult(maxCaptures int) *MatchResult {
	if maxCaptures < 0 {
		maxCaptures = 0
	}
	return &MatchResult{
		starts:        make([]int, maxCaptures),
		ends:          make([]int, maxCaptures),
		scratchStarts: make([]int, maxCaptures),
		scratchEnds:   make([]int, maxCaptures),
	}
}

// Release drops the buffers and every reference held by m. A released
// result has zero capacity.
func (m *MatchResult) Release() {
	*m = MatchResult{}
}

// Reset clears the outcome of the last match but keeps the buffers.
func (m *MatchResult) Reset() {
	m.count = 0
	m.value = nil
	m.slugs = nil
}

// MaxCaptures returns the capture capacity.
func (m *MatchResult) MaxCaptures() int {
	return len(m.starts)
}

// Count returns the number of captures recorded by the last successful
// match.
func (m *MatchResult) Count() int {
	return m.count
}

// Value returns the value registered for the matched pattern.
func (m *MatchResult) Value() any {
	return m.value
}

// SlugNames returns the slug names of the matched pattern, or nil if the
// pattern had no wildcard. The slice belongs to the router.
func (m *MatchResult) SlugNames() []string {
	return m.slugs
}

// Span returns the byte range [start, end) of capture i. It panics if i is
// not less than Count.
func (m *MatchResult) Span(i int) (start, end int) {
	if i < 0 || i >= m.count {
		panic("trie: capture index out of range")
	}
	return m.starts[i], m.ends[i]
}

// Capture returns the text of capture i within path, which must be the
// string that was matched.
func (m *MatchResult) Capture(path string, i int) string {
	start, end := m.Span(i)
	return path[start:end]
}

// SlugName returns the name of capture i, or "" for an unnamed wildcard.
func (m *MatchResult) SlugName(i int) string {
	if i < 0 || i >= len(m.slugs) {
		return ""
	}
	return m.slugs[i]
}

// Params maps every named capture to its text within path. Unnamed
// captures are left out; use Capture to read them. Params returns nil when
// no named capture was recorded.
func (m *MatchResult) Params(path string) map[string]string {
	var params map[string]string
	for i := 0; i < m.count; i++ {
		name := m.SlugName(i)
		if name == "" {
			continue
		}
		if params == nil {
			params = make(map[string]string, m.count)
		}
		params[name] = m.Capture(path, i)
	}
	return params
}

// populate publishes a successful search. A nil or non-terminal node
// leaves m untouched.
func (m *MatchResult) populate(node *Node, captures int) bool {
	if !node.Terminal() {
		return false
	}
	copy(m.starts, m.scratchStarts[:captures])
	copy(m.ends, m.scratchEnds[:captures])
	m.count = captures
	m.value = node.value
	m.slugs = node.slugs
	return true
}
