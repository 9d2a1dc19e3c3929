package mux

import (
	"context"
	"net/http"
)

// routeContextKey is an unexported type for the single context key.
type routeContextKey struct{}

// ctxKey is the single context key used to store the route match.
var ctxKey = routeContextKey{}

// RouteMatch stores information about a matched route.
type RouteMatch struct {
	// Route is the matched route.
	Route *Route

	// Handler is the route handler wrapped with the router middleware.
	Handler http.Handler

	// Vars maps the named captures to their text. Nil when the route has
	// no named segment.
	Vars map[string]string

	// Captures holds every captured segment, named or not, in pattern
	// order. Nil when nothing was captured.
	Captures []string
}

// WalkFunc is the type of the function called for each route visited by
// Walk.
type WalkFunc func(route *Route) error

func matchFromRequest(r *http.Request) *RouteMatch {
	if m, ok := r.Context().Value(ctxKey).(*RouteMatch); ok {
		return m
	}
	return nil
}

// Vars returns the route variables for the current request, if any.
func Vars(r *http.Request) map[string]string {
	if m := matchFromRequest(r); m != nil {
		return m.Vars
	}
	return nil
}

// VarGet returns the value of a single route variable by name and a boolean
// indicating whether the variable exists.
func VarGet(r *http.Request, name string) (string, bool) {
	if m := matchFromRequest(r); m != nil && m.Vars != nil {
		val, exists := m.Vars[name]
		return val, exists
	}
	return "", false
}

// Captures returns all captured segments for the current request, including
// those of unnamed wildcards.
func Captures(r *http.Request) []string {
	if m := matchFromRequest(r); m != nil {
		return m.Captures
	}
	return nil
}

// CurrentRoute returns the matched route for the current request, if any.
// This only works when called inside the handler of the matched route
// because the matched route is stored in the request context.
func CurrentRoute(r *http.Request) *Route {
	if m := matchFromRequest(r); m != nil {
		return m.Route
	}
	return nil
}

// CurrentPattern returns the template of the matched route, or "" when the
// request was not routed.
func CurrentPattern(r *http.Request) string {
	if route := CurrentRoute(r); route != nil {
		return route.GetPathTemplate()
	}
	return ""
}

// SetURLVars sets the URL variables for the given request, returning the
// modified request. This is intended for testing route handlers.
func SetURLVars(r *http.Request, val map[string]string) *http.Request {
	m := &RouteMatch{Vars: val}
	if prev := matchFromRequest(r); prev != nil {
		m.Route = prev.Route
		m.Handler = prev.Handler
		m.Captures = prev.Captures
	}
	return setRouteContext(r, m)
}

// setRouteContext stores the match in the request context.
func setRouteContext(r *http.Request, m *RouteMatch) *http.Request {
	ctx := context.WithValue(r.Context(), ctxKey, m)
	return r.WithContext(ctx)
}
