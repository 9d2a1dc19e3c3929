package mux

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/pathtrie/trie"
)

func TestNewRouter(t *testing.T) {
	t.Run("creates router with empty tree", func(t *testing.T) {
		r := NewRouter()
		require.NotNil(t, r)
		assert.NotNil(t, r.tree)
		assert.Empty(t, r.Routes())
	})
}

func TestRouterHandle(t *testing.T) {
	noop := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {})

	t.Run("returns route with template", func(t *testing.T) {
		r := NewRouter()
		route, err := r.Handle("/:month/:day/b", noop)
		require.NoError(t, err)
		assert.Equal(t, "/:month/:day/b", route.GetPathTemplate())
		assert.Equal(t, []string{"month", "day"}, route.GetSlugNames())
		assert.NotNil(t, route.GetHandler())
	})

	t.Run("slug names are a copy", func(t *testing.T) {
		r := NewRouter()
		route, err := r.Handle("/:id/p", noop)
		require.NoError(t, err)

		names := route.GetSlugNames()
		names[0] = "changed"

		assert.Equal(t, []string{"id"}, route.GetSlugNames())
		m, ok := r.Match("/42/p")
		require.True(t, ok)
		assert.Equal(t, map[string]string{"id": "42"}, m.Vars)
	})

	t.Run("rejects duplicate pattern", func(t *testing.T) {
		r := NewRouter()
		_, err := r.Handle("/:product/p", noop)
		require.NoError(t, err)

		_, err = r.Handle("/:other/p", noop)
		require.Error(t, err)
		assert.True(t, errors.Is(err, trie.ErrDuplicateRoute))
		assert.True(t, strings.HasPrefix(err.Error(), "mux: "))
		assert.Len(t, r.Routes(), 1)
	})

	t.Run("rejects nil handler", func(t *testing.T) {
		r := NewRouter()
		_, err := r.Handle("/x", nil)
		assert.Error(t, err)
	})

	t.Run("MustHandle panics on duplicate", func(t *testing.T) {
		r := NewRouter()
		r.MustHandle("/x", noop)
		assert.Panics(t, func() {
			r.MustHandle("/x", noop)
		})
	})
}

func TestRouterServeHTTP(t *testing.T) {
	t.Run("dispatches to matched handler", func(t *testing.T) {
		r := NewRouter()
		_, err := r.HandleFunc("/hello", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "world")
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/hello", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "world", w.Body.String())
	})

	t.Run("ignores request method", func(t *testing.T) {
		r := NewRouter()
		r.MustHandle("/hello", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "world")
		}))

		for _, method := range []string{http.MethodPost, http.MethodDelete} {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(method, "/hello", nil))
			assert.Equal(t, "world", w.Body.String(), method)
		}
	})

	t.Run("returns 404 for unmatched path", func(t *testing.T) {
		r := NewRouter()
		r.MustHandle("/hello", http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/notfound", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("uses custom NotFoundHandler", func(t *testing.T) {
		r := NewRouter()
		r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, "custom 404")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/notfound", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "custom 404", w.Body.String())
	})

	t.Run("sets Vars in request context", func(t *testing.T) {
		r := NewRouter()
		r.MustHandle("/:product/p", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			fmt.Fprint(w, Vars(req)["product"])
		}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/red-blouse/p", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, "red-blouse", w.Body.String())
	})

	t.Run("sets unnamed captures in request context", func(t *testing.T) {
		r := NewRouter()
		r.MustHandle("/*/s", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			assert.Nil(t, Vars(req))
			fmt.Fprint(w, strings.Join(Captures(req), ","))
		}))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blouses/s", nil))
		assert.Equal(t, "blouses", w.Body.String())
	})

	t.Run("prefers literal route", func(t *testing.T) {
		r := NewRouter()
		r.MustHandle("/foo/*", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "wildcard")
		}))
		r.MustHandle("/foo/bar", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "literal")
		}))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/foo/bar", nil))
		assert.Equal(t, "literal", w.Body.String())

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/foo/qux", nil))
		assert.Equal(t, "wildcard", w.Body.String())
	})

	t.Run("cleans path by default", func(t *testing.T) {
		r := NewRouter()
		r.MustHandle("/users", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "ok")
		}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/users/../users", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("SkipClean matches raw path", func(t *testing.T) {
		r := NewRouter().SkipClean(true)
		r.MustHandle("/a/:id/b", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			id, ok := VarGet(req, "id")
			assert.True(t, ok)
			fmt.Fprintf(w, "[%s]", id)
		}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/a//b", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, "[]", w.Body.String())
	})
}

func TestRouterMatch(t *testing.T) {
	r := NewRouter()
	r.MustHandle("/:month/:day/b", http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))

	t.Run("returns vars and captures", func(t *testing.T) {
		m, ok := r.Match("/january/1/b")
		require.True(t, ok)
		assert.Equal(t, "/:month/:day/b", m.Route.GetPathTemplate())
		assert.Equal(t, map[string]string{"month": "january", "day": "1"}, m.Vars)
		assert.Equal(t, []string{"january", "1"}, m.Captures)
		assert.NotNil(t, m.Handler)
	})

	t.Run("no match", func(t *testing.T) {
		m, ok := r.Match("/january/b")
		assert.False(t, ok)
		assert.Nil(t, m)
	})

	t.Run("unnamed wildcard has no vars", func(t *testing.T) {
		catchAll := NewRouter()
		catchAll.MustHandle("/catch-all/*", http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))

		m, ok := catchAll.Match("/catch-all/x")
		require.True(t, ok)
		assert.Nil(t, m.Vars)
		assert.Equal(t, []string{"x"}, m.Captures)
	})

	t.Run("respects MaxCaptures", func(t *testing.T) {
		small := NewRouter()
		small.MaxCaptures = 1
		small.MustHandle("/:month/:day/b", http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))

		m, ok := small.Match("/january/1/b")
		require.True(t, ok)
		assert.Equal(t, []string{"january"}, m.Captures)
		assert.Equal(t, map[string]string{"month": "january"}, m.Vars)
	})
}

func TestRouterWalk(t *testing.T) {
	r := NewRouter()
	for _, p := range []string{"/b", "/:id/p", "/a"} {
		r.MustHandle(p, http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	}

	var templates []string
	err := r.Walk(func(route *Route) error {
		templates = append(templates, route.GetPathTemplate())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/:id/p", "/a", "/b"}, templates)

	var registered []string
	for _, route := range r.Routes() {
		registered = append(registered, route.GetPathTemplate())
	}
	assert.Equal(t, []string{"/b", "/:id/p", "/a"}, registered)
}

// --- Benchmarks ---

func BenchmarkRouterServeHTTP(b *testing.B) {
	r := NewRouter()
	r.MustHandle("/", http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	r.MustHandle("/:product/p", http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))

	b.Run("static", func(b *testing.B) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for b.Loop() {
			r.ServeHTTP(httptest.NewRecorder(), req)
		}
	})

	b.Run("slug", func(b *testing.B) {
		req := httptest.NewRequest(http.MethodGet, "/red-blouse/p", nil)
		for b.Loop() {
			r.ServeHTTP(httptest.NewRecorder(), req)
		}
	})
}
