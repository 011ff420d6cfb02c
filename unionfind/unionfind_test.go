package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keiro-dev/keiro/unionfind"
)

func TestUnionFind_Basic(t *testing.T) {
	uf := unionfind.New(6)

	assert.Equal(t, 6, uf.GroupCount())
	assert.False(t, uf.Same(0, 2))

	uf.Union(0, 2)
	uf.Union(1, 3)
	uf.Union(4, 5)
	assert.Equal(t, 3, uf.GroupCount())

	uf.Union(1, 4)
	assert.Equal(t, 2, uf.GroupCount())
	assert.True(t, uf.Same(3, 5))
	assert.False(t, uf.Same(0, 1))

	assert.Equal(t, 2, uf.Size(0))
	assert.Equal(t, 4, uf.Size(5))
	assert.Equal(t, []int{0, 2}, uf.Members(2))
	assert.Equal(t, []int{1, 3, 4, 5}, uf.Members(4))
	assert.Equal(t, []int{0, 1}, uf.Roots())
}

func TestUnionFind_UnionIdempotent(t *testing.T) {
	uf := unionfind.New(3)
	uf.Union(0, 1)
	uf.Union(0, 1)
	uf.Union(1, 0)

	assert.Equal(t, 2, uf.Size(0))
	assert.Equal(t, 2, uf.GroupCount())
}

func TestUnionFind_AllGroupMembers(t *testing.T) {
	uf := unionfind.New(4)
	uf.Union(0, 3)

	groups := uf.AllGroupMembers()
	require.Len(t, groups, 3)
	assert.Equal(t, []int{0, 3}, groups[uf.Find(0)])
}

func TestIDUnionFind_Basic(t *testing.T) {
	uf := unionfind.NewID()
	for _, id := range []string{"a", "b", "c", "d"} {
		uf.Insert(id)
	}

	assert.Equal(t, 4, uf.GroupCount())

	uf.Union("a", "b")
	uf.Union("c", "d")
	assert.True(t, uf.Same("a", "b"))
	assert.False(t, uf.Same("b", "c"))
	assert.Equal(t, 2, uf.Size("a"))

	uf.Union("b", "d")
	assert.True(t, uf.Same("a", "d"))
	assert.Equal(t, 4, uf.Size("c"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, uf.Members("d"))
	assert.Equal(t, []string{"a"}, uf.Roots())
}

func TestIDUnionFind_Unknown(t *testing.T) {
	uf := unionfind.NewID()
	uf.Insert("a")

	assert.Equal(t, "", uf.Find("ghost"))
	assert.False(t, uf.Same("ghost", "ghost"))
	assert.False(t, uf.Same("a", "ghost"))
	assert.Equal(t, 0, uf.Size("ghost"))
	assert.Nil(t, uf.Members("ghost"))
}

func TestIDUnionFind_InsertIdempotent(t *testing.T) {
	uf := unionfind.NewID()
	uf.Insert("a")
	uf.Insert("a")

	assert.Equal(t, 1, uf.GroupCount())
	assert.Equal(t, 1, uf.Size("a"))
}

func TestIDUnionFind_InsertGroup(t *testing.T) {
	uf := unionfind.NewID()
	uf.InsertGroup([]string{"x", "y", "z"})
	uf.Insert("w")

	assert.Equal(t, 2, uf.GroupCount())
	assert.True(t, uf.Same("x", "z"))
	assert.False(t, uf.Same("x", "w"))

	groups := uf.AllGroupMembers()
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"x", "y", "z"}, groups[uf.Find("y")])
}

// Deep chains must stay cheap: path compression flattens the tree, so a
// long run of unions followed by finds terminates quickly.
func TestUnionFind_PathCompression(t *testing.T) {
	const n = 1000
	uf := unionfind.New(n)
	for i := 1; i < n; i++ {
		uf.Union(i-1, i)
	}

	root := uf.Find(0)
	for i := 0; i < n; i++ {
		require.Equal(t, root, uf.Find(i))
	}
	assert.Equal(t, n, uf.Size(0))
	assert.Equal(t, 1, uf.GroupCount())
}
