package btree

import "testing"

// checkInvariants walks the whole tree and fails the test if any node
// breaks the structural rules: occupancy bounds on non-root nodes,
// strictly increasing keys within a node, child count matching entry
// count, every leaf at depth Height(), and Size() matching the number of
// entries reachable by traversal.
func checkInvariants[K, V any](t *testing.T, tr *Tree[K, V]) {
	t.Helper()

	count := 0
	var verify func(n *node[K, V], depth int, isRoot bool)
	verify = func(n *node[K, V], depth int, isRoot bool) {
		if !isRoot && (n.numEntries < tr.minEntries() || n.numEntries > tr.maxEntries()) {
			t.Fatalf("node occupancy %d outside [%d, %d]", n.numEntries, tr.minEntries(), tr.maxEntries())
		}
		for i := 1; i < n.numEntries; i++ {
			if tr.cmp(n.entries[i-1].key, n.entries[i].key) >= 0 {
				t.Fatalf("entries out of order at index %d: %v, %v", i, n.entries[i-1].key, n.entries[i].key)
			}
		}
		count += n.numEntries
		if n.isLeaf() {
			if depth != tr.height {
				t.Fatalf("leaf at depth %d, tree height is %d", depth, tr.height)
			}
			return
		}
		if n.numChildren != n.numEntries+1 {
			t.Fatalf("internal node has %d children for %d entries", n.numChildren, n.numEntries)
		}
		for i := 0; i < n.numChildren; i++ {
			verify(n.children[i], depth+1, false)
		}
	}
	verify(tr.root, 0, true)

	if count != tr.size {
		t.Fatalf("Size() = %d, traversal counted %d entries", tr.size, count)
	}
}

// keys returns every key in traversal order.
func keys[K, V any](tr *Tree[K, V]) []K {
	var out []K
	tr.walk(tr.root, func(e entry[K, V]) {
		out = append(out, e.key)
	})
	return out
}
