package unionfind

// UnionFind is a disjoint-set structure over the fixed universe 0..n-1.
//
// parents[i] holds the parent of element i, except at a root, where it
// holds the negated size of the group. The fresh state is therefore all
// -1: n singleton groups.
type UnionFind struct {
	n       int
	parents []int
}

// New creates a UnionFind of n singleton elements 0..n-1.
func New(n int) *UnionFind {
	parents := make([]int, n)
	for i := range parents {
		parents[i] = -1
	}

	return &UnionFind{n: n, parents: parents}
}

// Find returns the root of the group containing x, compressing the path
// so every visited element points directly at the root afterwards.
func (u *UnionFind) Find(x int) int {
	if u.parents[x] < 0 {
		return x
	}
	u.parents[x] = u.Find(u.parents[x])

	return u.parents[x]
}

// Union merges the groups containing x and y, attaching the smaller group
// under the larger. On equal sizes y's root is attached under x's. Merging
// elements already in one group is a no-op.
func (u *UnionFind) Union(x, y int) {
	rootX, rootY := u.Find(x), u.Find(y)
	if rootX == rootY {
		return
	}

	// Roots store negated sizes, so the smaller value is the bigger group.
	if u.parents[rootX] > u.parents[rootY] {
		u.parents[rootY] += u.parents[rootX]
		u.parents[rootX] = rootY
	} else {
		u.parents[rootX] += u.parents[rootY]
		u.parents[rootY] = rootX
	}
}

// Same reports whether x and y are in the same group.
func (u *UnionFind) Same(x, y int) bool { return u.Find(x) == u.Find(y) }

// Size returns the number of elements in the group containing x.
func (u *UnionFind) Size(x int) int { return -u.parents[u.Find(x)] }

// Members returns every element in the group containing x, ascending.
func (u *UnionFind) Members(x int) []int {
	root := u.Find(x)
	var out []int
	for i := 0; i < u.n; i++ {
		if u.Find(i) == root {
			out = append(out, i)
		}
	}

	return out
}

// Roots returns the root of every group, ascending.
func (u *UnionFind) Roots() []int {
	var out []int
	for i, p := range u.parents {
		if p < 0 {
			out = append(out, i)
		}
	}

	return out
}

// GroupCount returns the number of disjoint groups.
func (u *UnionFind) GroupCount() int { return len(u.Roots()) }

// AllGroupMembers returns root → members for every group, members
// ascending within each group.
func (u *UnionFind) AllGroupMembers() map[int][]int {
	groups := make(map[int][]int)
	for i := 0; i < u.n; i++ {
		root := u.Find(i)
		groups[root] = append(groups[root], i)
	}

	return groups
}
