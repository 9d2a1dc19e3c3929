package routetable

import (
	"errors"
	"fmt"

	"github.com/vitalvas/pathtrie/trie"
)

// DefaultMaxCaptures is the capture capacity used when a table does not set
// max_captures.
const DefaultMaxCaptures = 20

var (
	// ErrNoRoutes is returned when a table declares no route.
	ErrNoRoutes = errors.New("route table is empty")

	// ErrEmptyPattern is returned for a route without a pattern.
	ErrEmptyPattern = errors.New("empty pattern")
)

// Route is a single table entry.
type Route struct {
	Pattern string `yaml:"pattern" toml:"pattern" json:"pattern"`
	Value   string `yaml:"value" toml:"value" json:"value"`
}

// Table is a list of routes plus the capture capacity for result buffers.
type Table struct {
	MaxCaptures int     `yaml:"max_captures,omitempty" toml:"max_captures,omitempty" json:"max_captures,omitempty"`
	Routes      []Route `yaml:"routes" toml:"routes" json:"routes"`
}

// Demo returns the table of the demonstration program.
func Demo() *Table {
	return &Table{
		MaxCaptures: DefaultMaxCaptures,
		Routes: []Route{
			{Pattern: "/", Value: "index page"},
			{Pattern: "/:product/p", Value: "product page"},
			{Pattern: "/:post/b", Value: "blog post page"},
			{Pattern: "/:month/:day/b", Value: "day blog page"},
			{Pattern: "/*/s", Value: "search page"},
		},
	}
}

// Captures returns the capture capacity to allocate result buffers with.
func (t *Table) Captures() int {
	if t.MaxCaptures <= 0 {
		return DefaultMaxCaptures
	}
	return t.MaxCaptures
}

// Validate checks the table without building a router.
func (t *Table) Validate() error {
	if len(t.Routes) == 0 {
		return fmt.Errorf("routetable: %w", ErrNoRoutes)
	}

	var errs []error

	if t.MaxCaptures < 0 {
		errs = append(errs, fmt.Errorf("routetable: negative max_captures %d", t.MaxCaptures))
	}

	seen := make(map[string]int, len(t.Routes))
	for i, route := range t.Routes {
		if route.Pattern == "" {
			errs = append(errs, fmt.Errorf("routetable: route %d: %w", i, ErrEmptyPattern))
			continue
		}

		path := trie.Compile(route.Pattern).Path
		if first, ok := seen[path]; ok {
			errs = append(errs, fmt.Errorf("routetable: route %d %q collides with route %d %q: %w",
				i, route.Pattern, first, t.Routes[first].Pattern, trie.ErrDuplicateRoute))
			continue
		}
		seen[path] = i
	}

	return errors.Join(errs...)
}

// Build validates the table and registers every route. Each route is stored
// in the router as its Route value.
func (t *Table) Build() (*trie.Router, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	r := trie.New()
	for _, route := range t.Routes {
		if err := r.Add(route.Pattern, route); err != nil {
			return nil, fmt.Errorf("routetable: %w", err)
		}
	}

	return r, nil
}
