package unionfind

// UnionFind partitions comparable keys into equivalence classes.
//
// Keys are interned on first participation in Union; Find and Same treat
// unseen keys as singleton classes without allocating. The zero value is
// not usable - construct with New.
type UnionFind[K comparable] struct {
	index  map[K]int // key -> arena slot
	parent []int     // arena slot -> parent slot; roots point to themselves
	keys   []K       // arena slot -> original key
}

// New returns an empty UnionFind.
func New[K comparable]() *UnionFind[K] {
	return &UnionFind[K]{index: make(map[K]int)}
}

// Len reports how many distinct keys have been interned by Union calls.
// Keys only ever passed to Find or Same do not count.
func (u *UnionFind[K]) Len() int {
	return len(u.keys)
}

// Find returns the representative key of k's equivalence class.
//
// A key that never appeared in a Union is its own representative and is
// returned unchanged, without mutating the structure.
func (u *UnionFind[K]) Find(k K) K {
	i, ok := u.index[k]
	if !ok {
		return k
	}
	return u.keys[u.root(i)]
}

// Same reports whether a and b belong to the same equivalence class.
func (u *UnionFind[K]) Same(a, b K) bool {
	return u.Find(a) == u.Find(b)
}

// Union merges the classes of a and b, interning either key on first
// sight. After the call, a's previous representative represents the
// merged class.
func (u *UnionFind[K]) Union(a, b K) {
	// 1. Intern both endpoints so the arena covers them.
	ia, ib := u.intern(a), u.intern(b)
	// 2. Resolve roots (compressing both walks).
	ra, rb := u.root(ia), u.root(ib)
	// 3. Link b's root under a's root unless already joined.
	if ra != rb {
		u.parent[rb] = ra
	}
}

// intern maps k to its arena slot, creating a fresh singleton slot on
// first sight.
func (u *UnionFind[K]) intern(k K) int {
	if i, ok := u.index[k]; ok {
		return i
	}
	i := len(u.parent)
	u.index[k] = i
	u.parent = append(u.parent, i)
	u.keys = append(u.keys, k)
	return i
}

// root walks slot i up to its class root, then compresses the entire
// path so every visited slot points directly at the root.
func (u *UnionFind[K]) root(i int) int {
	r := i
	for u.parent[r] != r {
		r = u.parent[r]
	}
	for u.parent[i] != r {
		u.parent[i], i = r, u.parent[i]
	}
	return r
}
