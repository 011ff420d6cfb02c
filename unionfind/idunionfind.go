package unionfind

// IDUnionFind is a disjoint-set structure over string-identified elements.
// Unlike UnionFind the universe is not fixed up front: elements join via
// Insert (or implicitly via InsertGroup) as they are discovered, which is
// how Kruskal feeds it edge endpoints.
//
// Insertion order is remembered so that Members, Roots and AllGroupMembers
// enumerate deterministically.
type IDUnionFind struct {
	parent map[string]string
	size   map[string]int
	order  []string
}

// NewID creates an empty IDUnionFind.
func NewID() *IDUnionFind {
	return &IDUnionFind{
		parent: make(map[string]string),
		size:   make(map[string]int),
	}
}

// Insert registers element as a new singleton group. Inserting a known
// element is a no-op.
func (u *IDUnionFind) Insert(element string) {
	if _, ok := u.parent[element]; ok {
		return
	}
	u.parent[element] = element
	u.size[element] = 1
	u.order = append(u.order, element)
}

// InsertGroup registers every element and merges them all into one group.
func (u *IDUnionFind) InsertGroup(elements []string) {
	for _, element := range elements {
		u.Insert(element)
		root := u.Find(element)
		for _, other := range elements {
			if other == element {
				continue
			}
			u.Insert(other)
			if u.Find(other) != root {
				u.Union(root, other)
			}
		}
	}
}

// Find returns the root of the group containing element, compressing the
// path along the way. Unknown elements yield "".
func (u *IDUnionFind) Find(element string) string {
	p, ok := u.parent[element]
	if !ok {
		return ""
	}
	if p == element {
		return element
	}

	// Halve the path: point every traversed element at its grandparent.
	for p != u.parent[p] {
		grand := u.parent[p]
		u.parent[p] = grand
		p = grand
	}
	u.parent[element] = p

	return p
}

// Union merges the groups containing x and y, attaching the smaller group
// under the larger; on equal sizes y's root goes under x's. Both elements
// must have been inserted.
func (u *IDUnionFind) Union(x, y string) {
	rootX, rootY := u.Find(x), u.Find(y)
	if rootX == rootY || rootX == "" || rootY == "" {
		return
	}

	if u.size[rootX] >= u.size[rootY] {
		u.parent[rootY] = rootX
		u.size[rootX] += u.size[rootY]
	} else {
		u.parent[rootX] = rootY
		u.size[rootY] += u.size[rootX]
	}
}

// Same reports whether x and y are in the same group. Unknown elements are
// never in the same group (two unknowns included).
func (u *IDUnionFind) Same(x, y string) bool {
	rootX := u.Find(x)

	return rootX != "" && rootX == u.Find(y)
}

// Size returns the number of elements in the group containing element,
// or 0 for unknown elements.
func (u *IDUnionFind) Size(element string) int {
	root := u.Find(element)
	if root == "" {
		return 0
	}

	return u.size[root]
}

// Members returns every element in the group containing element, in
// insertion order. Unknown elements yield nil.
func (u *IDUnionFind) Members(element string) []string {
	root := u.Find(element)
	if root == "" {
		return nil
	}
	var out []string
	for _, e := range u.order {
		if u.Find(e) == root {
			out = append(out, e)
		}
	}

	return out
}

// Roots returns the root of every group, in insertion order.
func (u *IDUnionFind) Roots() []string {
	var out []string
	for _, e := range u.order {
		if u.parent[e] == e {
			out = append(out, e)
		}
	}

	return out
}

// GroupCount returns the number of disjoint groups.
func (u *IDUnionFind) GroupCount() int { return len(u.Roots()) }

// AllGroupMembers returns root → members for every group, members in
// insertion order within each group.
func (u *IDUnionFind) AllGroupMembers() map[string][]string {
	groups := make(map[string][]string)
	for _, e := range u.order {
		root := u.Find(e)
		groups[root] = append(groups[root], e)
	}

	return groups
}
