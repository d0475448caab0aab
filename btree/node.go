package btree

/*
entry is a single key/value pair occupying one slot of a node.
The key orders entries within a node; the value is an opaque payload.
*/
type entry[K, V any] struct {
	key K
	val V
}

// node holds up to 2d-1 entries in strictly increasing key order and, when
// internal, exactly numEntries+1 children. Both slot sequences are
// allocated at full capacity once and manipulated in place through the
// insert-at/remove-at primitives below; slots past the occupancy counters
// are kept zeroed so moved-out payloads do not linger.
type node[K, V any] struct {
	entries     []entry[K, V]
	children    []*node[K, V]
	numEntries  int
	numChildren int
}

func (n *node[K, V]) isLeaf() bool {
	return n.numChildren == 0
}

// insertEntryAt places e at pos, shifting subsequent entries right by one.
func (n *node[K, V]) insertEntryAt(pos int, e entry[K, V]) {
	if pos < n.numEntries {
		copy(n.entries[pos+1:n.numEntries+1], n.entries[pos:n.numEntries])
	}
	n.entries[pos] = e
	n.numEntries++
}

// insertChildAt places child at pos, shifting subsequent children right by one.
func (n *node[K, V]) insertChildAt(pos int, child *node[K, V]) {
	if pos < n.numChildren {
		copy(n.children[pos+1:n.numChildren+1], n.children[pos:n.numChildren])
	}
	n.children[pos] = child
	n.numChildren++
}

// removeEntryAt removes and returns the entry at pos, shifting subsequent
// entries left by one.
func (n *node[K, V]) removeEntryAt(pos int) entry[K, V] {
	e := n.entries[pos]
	copy(n.entries[pos:n.numEntries-1], n.entries[pos+1:n.numEntries])
	n.numEntries--
	n.entries[n.numEntries] = entry[K, V]{}
	return e
}

// removeChildAt removes and returns the child at pos, shifting subsequent
// children left by one.
func (n *node[K, V]) removeChildAt(pos int) *node[K, V] {
	c := n.children[pos]
	copy(n.children[pos:n.numChildren-1], n.children[pos+1:n.numChildren])
	n.numChildren--
	n.children[n.numChildren] = nil
	return c
}
