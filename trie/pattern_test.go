package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		path  string
		slugs []string
	}{
		{name: "root", raw: "/", path: "/", slugs: nil},
		{name: "literal", raw: "/page/page2", path: "/page/page2", slugs: nil},
		{name: "one slug", raw: "/:product/p", path: "/*/p", slugs: []string{"product"}},
		{name: "two slugs", raw: "/:month/:day/updates", path: "/*/*/updates", slugs: []string{"month", "day"}},
		{name: "slug at end", raw: "/users/:id", path: "/users/*", slugs: []string{"id"}},
		{name: "unnamed wildcard", raw: "/catch-all/*", path: "/catch-all/*", slugs: []string{""}},
		{name: "mixed", raw: "/:a/*/:c", path: "/*/*/*", slugs: []string{"a", "", "c"}},
		{name: "empty slug name", raw: "/:/x", path: "/*/x", slugs: []string{""}},
		{name: "slug inside segment", raw: "/a:b/c", path: "/a*/c", slugs: []string{"b"}},
		{name: "hyphenated name", raw: "/:blog-post/b", path: "/*/b", slugs: []string{"blog-post"}},
		{name: "empty", raw: "", path: "", slugs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Compile(tt.raw)
			assert.Equal(t, tt.path, p.Path)
			assert.Equal(t, tt.slugs, p.Slugs)
			assert.Equal(t, len(tt.slugs), p.Wildcards())
		})
	}
}

func TestPatternTemplate(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{raw: "/", expected: "/"},
		{raw: "/:product/p", expected: "/:product/p"},
		{raw: "/catch-all/*", expected: "/catch-all/*"},
		{raw: "/:a/*/:c", expected: "/:a/*/:c"},
		{raw: "/:/x", expected: "/*/x"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, Compile(tt.raw).Template())
			assert.Equal(t, tt.expected, Compile(tt.raw).String())
		})
	}

	t.Run("missing names render as wildcard", func(t *testing.T) {
		p := Pattern{Path: "/*/*", Slugs: []string{"a"}}
		assert.Equal(t, "/:a/*", p.Template())
	})
}
