// Package trie implements an in-process path router backed by a byte-wise
// prefix tree.
//
// Patterns are registered against opaque values and concrete paths are
// matched against them. A match reports the value plus the byte ranges of
// the wildcard segments it captured.
//
// # Patterns
//
// Literal bytes match themselves. A segment that starts with ':' is a named
// wildcard ("slug") whose name runs to the next '/' or the end of the
// pattern. A '*' is an unnamed wildcard:
//
//	r := trie.New()
//	r.Add("/", "index page")
//	r.Add("/:product/p", "product page")
//	r.Add("/:month/:day/b", "day blog page")
//	r.Add("/*/s", "search page")
//
// Slugs are compiled to '*' before insertion, so "/:a/p" and "/:b/p"
// collide and the second Add returns ErrDuplicateRoute.
//
// A wildcard matches exactly one segment, possibly empty, and never crosses
// a '/'. It only matches right after a '/', so a pattern cannot start with
// a wildcard. The bytes '*' and ':' are reserved and cannot be matched
// literally. Matching works on raw bytes; '/' is the only separator.
//
// # Matching
//
// At every position the literal continuation is tried first and its whole
// subtree is searched before the wildcard alternative at the same position.
// With "/foo/*", "/*/baz", "/foo/*/a" and "/*/baz/b" registered, the path
// "/foo/baz/b" first follows "/foo/*", fails to find "/a" and then matches
// "/*/baz/b" with "foo" captured.
//
// Results are written into a caller-owned buffer:
//
//	res := trie.NewMatchResult(20)
//	if r.Match("/red-blouse/p", res) {
//	    res.Value()          // "product page"
//	    res.Capture(path, 0) // "red-blouse"
//	    res.SlugName(0)      // "product"
//	}
//
// Captures past the buffer capacity are dropped; the match still succeeds.
// A failed match leaves the buffer unchanged.
//
// # Concurrency
//
// Registration is not synchronized. After the last Add, any number of
// goroutines may call Match, each with its own MatchResult.
package trie
