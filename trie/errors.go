package trie

import "errors"

// ErrDuplicateRoute is returned by Router.Add when the normalized form of a
// pattern is already registered. Patterns that differ only in slug names
// ("/:id" and "/:slug") normalize to the same path and collide.
var ErrDuplicateRoute = errors.New("duplicate route")

// ErrRouterDestroyed is returned when registering on a router after Destroy.
var ErrRouterDestroyed = errors.New("router is destroyed")

// ErrInvalidPattern is returned by Router.AddPattern when the slug names do
// not line up with the wildcards of the path.
var ErrInvalidPattern = errors.New("invalid pattern")
