package mux

import (
	"fmt"
	"net/http"
	"slices"
	"sync"

	"github.com/vitalvas/pathtrie/trie"
)

// DefaultMaxCaptures is the capture capacity used when Router.MaxCaptures
// is zero.
const DefaultMaxCaptures = 20

// Router registers handlers against path patterns and dispatches requests
// to them. Patterns use the trie syntax: ":name" for a named segment and
// "*" for an unnamed one. The request method is not considered.
//
// It implements the http.Handler interface, so it can be registered to serve
// requests:
//
//	r := mux.NewRouter()
//	r.HandleFunc("/:product/p", handler)
//	http.ListenAndServe(":8080", r)
//
// Routes must be registered before the router starts serving.
type Router struct {
	// NotFoundHandler is called when no route matches.
	// If nil, http.NotFoundHandler() is used.
	NotFoundHandler http.Handler

	// MaxCaptures bounds the captures kept per request. Must be set before
	// the first request. Zero means DefaultMaxCaptures.
	MaxCaptures int

	tree        *trie.Router
	routes      []*Route
	middlewares []MiddlewareFunc

	// handlerCache caches the middleware-wrapped handler per route
	// to avoid re-wrapping on every request.
	handlerCache sync.Map // map[*Route]http.Handler

	results     sync.Pool
	resultsOnce sync.Once

	skipClean bool
}

// NewRouter returns a new router instance.
func NewRouter() *Router {
	return &Router{
		tree: trie.New(),
	}
}

// Route is a registered pattern and its handler.
type Route struct {
	pattern trie.Pattern
	handler http.Handler
}

// GetPathTemplate returns the pattern the route was registered with, with
// slugs in ":name" form.
func (r *Route) GetPathTemplate() string {
	return r.pattern.Template()
}

// GetSlugNames returns the wildcard names of the route in pattern order.
// Unnamed wildcards are "". The returned slice is a copy.
func (r *Route) GetSlugNames() []string {
	return slices.Clone(r.pattern.Slugs)
}

// GetHandler returns the handler for the route, if any.
func (r *Route) GetHandler() http.Handler {
	return r.handler
}

// Handle registers a new route for the path pattern. It returns an error
// wrapping trie.ErrDuplicateRoute when the pattern collides with an
// existing one.
func (r *Router) Handle(pattern string, handler http.Handler) (*Route, error) {
	if handler == nil {
		return nil, fmt.Errorf("mux: nil handler for %q", pattern)
	}

	route := &Route{
		pattern: trie.Compile(pattern),
		handler: handler,
	}

	if err := r.tree.AddPattern(route.pattern, route); err != nil {
		return nil, fmt.Errorf("mux: %w", err)
	}

	r.routes = append(r.routes, route)
	return route, nil
}

// HandleFunc registers a new route for the path pattern and handler
// function.
func (r *Router) HandleFunc(pattern string, f func(http.ResponseWriter, *http.Request)) (*Route, error) {
	return r.Handle(pattern, http.HandlerFunc(f))
}

// MustHandle is like Handle but panics if the route cannot be registered.
func (r *Router) MustHandle(pattern string, handler http.Handler) *Route {
	route, err := r.Handle(pattern, handler)
	if err != nil {
		panic(err)
	}
	return route
}

// SkipClean defines the path cleaning behavior. When true, the request
// path is matched as received.
func (r *Router) SkipClean(value bool) *Router {
	r.skipClean = value
	return r
}

// Routes returns the registered routes in registration order.
func (r *Router) Routes() []*Route {
	return r.routes
}

// Walk calls walkFn for every route in byte order of the compiled
// patterns. An error from walkFn stops the walk.
func (r *Router) Walk(walkFn WalkFunc) error {
	return r.tree.Walk(func(_ trie.Pattern, value any) error {
		return walkFn(value.(*Route))
	})
}

// ServeHTTP dispatches the handler registered in the matched route.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	// Normalize the request path per RFC 3986 Section 5.2.4
	// (removing dot segments) unless SkipClean is enabled.
	if !r.skipClean {
		if cleaned := cleanPath(req.URL.Path); cleaned != req.URL.Path {
			u := *req.URL
			u.Path = cleaned
			u.RawPath = ""
			req = req.Clone(req.Context())
			req.URL = &u
		}
	}

	match, ok := r.Match(req.URL.Path)
	if !ok {
		handler := r.NotFoundHandler
		if handler == nil {
			handler = defaultNotFoundHandler
		}
		handler.ServeHTTP(w, req)
		return
	}

	req = setRouteContext(req, match)
	match.Handler.ServeHTTP(w, req)
}

// Match matches path against the registered routes without dispatching.
// The returned handler is already wrapped with the router middleware.
func (r *Router) Match(path string) (*RouteMatch, bool) {
	res := r.acquireResult()
	defer r.results.Put(res)

	if !r.tree.Match(path, res) {
		return nil, false
	}

	route := res.Value().(*Route)
	match := &RouteMatch{
		Route:   route,
		Handler: r.wrappedHandler(route),
	}

	if n := res.Count(); n > 0 {
		match.Captures = make([]string, n)
		for i := range n {
			match.Captures[i] = res.Capture(path, i)
		}
		match.Vars = res.Params(path)
	}

	return match, true
}

func (r *Router) acquireResult() *trie.MatchResult {
	r.resultsOnce.Do(func() {
		capacity := r.MaxCaptures
		if capacity <= 0 {
			capacity = DefaultMaxCaptures
		}
		r.results.New = func() any {
			return trie.NewMatchResult(capacity)
		}
	})
	return r.results.Get().(*trie.MatchResult)
}

func (r *Router) wrappedHandler(route *Route) http.Handler {
	if len(r.middlewares) == 0 {
		return route.handler
	}
	if cached, ok := r.handlerCache.Load(route); ok {
		return cached.(http.Handler)
	}
	wrapped := r.applyMiddleware(route.handler)
	r.handlerCache.Store(route, wrapped)
	return wrapped
}

var defaultNotFoundHandler = http.NotFoundHandler()
