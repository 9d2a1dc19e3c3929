package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeInsert(t *testing.T) {
	t.Run("creates missing nodes", func(t *testing.T) {
		root := &Node{}
		n, err := root.insert("/ab")
		require.NoError(t, err)
		require.NotNil(t, n)

		assert.Same(t, n, root.Child('/').Child('a').Child('b'))
		assert.False(t, n.Terminal())
	})

	t.Run("reuses shared prefix", func(t *testing.T) {
		root := &Node{}
		a, err := root.insert("/page1")
		require.NoError(t, err)
		b, err := root.insert("/page2")
		require.NoError(t, err)

		assert.NotSame(t, a, b)
		assert.Len(t, root.Child('/').Child('p').Child('a').Child('g').Child('e').children, 2)
	})

	t.Run("rejects terminal node", func(t *testing.T) {
		root := &Node{}
		n, err := root.insert("/x")
		require.NoError(t, err)
		n.terminal = true

		_, err = root.insert("/x")
		assert.ErrorIs(t, err, ErrDuplicateRoute)
	})

	t.Run("empty path returns root", func(t *testing.T) {
		root := &Node{}
		n, err := root.insert("")
		require.NoError(t, err)
		assert.Same(t, root, n)
	})
}

func TestNodeFind(t *testing.T) {
	root := &Node{}
	_, err := root.insert("/abc")
	require.NoError(t, err)

	t.Run("finds existing prefix", func(t *testing.T) {
		assert.NotNil(t, root.find("/ab"))
	})

	t.Run("missing edge returns nil", func(t *testing.T) {
		assert.Nil(t, root.find("/abd"))
	})

	t.Run("does not create nodes", func(t *testing.T) {
		root.find("/zzz")
		assert.Nil(t, root.Child('/').Child('z'))
	})
}

func TestNodeRelease(t *testing.T) {
	root := &Node{}
	n, err := root.insert("/a/*")
	require.NoError(t, err)

	value := &struct{ name string }{name: "kept"}
	n.terminal = true
	n.value = value
	n.slugs = []string{"id"}

	root.release()

	assert.Nil(t, root.children)
	assert.False(t, n.Terminal())
	assert.Nil(t, n.SlugNames())
	assert.Nil(t, n.children)
	assert.Equal(t, "kept", value.name)
}

func TestNilNode(t *testing.T) {
	var n *Node
	assert.False(t, n.Terminal())
	assert.Nil(t, n.Value())
	assert.Nil(t, n.SlugNames())
	assert.Nil(t, n.Child('a'))
}
