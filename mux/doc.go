// Package mux implements an HTTP request dispatcher on top of the trie
// path router.
//
// Routes are matched on the request path only. Literal routes win over
// wildcard routes at every position, and a wildcard matches exactly one
// path segment.
//
// # Router
//
// Create a new router and register handlers:
//
//	r := mux.NewRouter()
//	r.HandleFunc("/", IndexHandler)
//	r.HandleFunc("/:product/p", ProductHandler)
//	r.HandleFunc("/:month/:day/b", DayHandler)
//	r.HandleFunc("/*/s", SearchHandler)
//	http.Handle("/", r)
//
// Handle and HandleFunc return an error wrapping trie.ErrDuplicateRoute
// when a pattern collides with a registered one. MustHandle panics instead.
//
// # Path Variables
//
// Named segments are available through Vars and VarGet; every captured
// segment, named or not, through Captures:
//
//	vars := mux.Vars(r)
//	product := vars["product"]
//	all := mux.Captures(r)
//
// CurrentRoute and CurrentPattern return the matched route and its
// template. SetURLVars sets variables on a request for handler tests.
//
// # Error Handling
//
// NotFoundHandler is called when no route matches a request. If nil,
// http.NotFoundHandler() is used. Corresponds to 404 Not Found per
// RFC 9110 Section 15.5.5.
//
// # Middleware
//
// Middleware can be added to a router to wrap matched handlers:
//
//	r.Use(mux.MiddlewareFunc(loggingMiddleware))
//
// # Path Cleaning
//
// By default, the router cleans request paths by removing dot segments per
// RFC 3986 Section 5.2.4. SkipClean disables this behavior:
//
//	r.SkipClean(true)
//
// # Walking Routes
//
// Walk visits every route in byte order of its compiled pattern:
//
//	r.Walk(func(route *mux.Route) error {
//	    fmt.Println(route.GetPathTemplate())
//	    return nil
//	})
package mux
