package btree

/*
Delete removes key and returns the value it held. The second return is
false if the key is absent, in which case the tree is unchanged.

Deletion is single-pass, fix-on-the-way-down: before descending into a
child at minimum occupancy it borrows an entry from a sibling through the
parent separator (a rotation) or merges the child with a sibling, so the
removal at the leaf never has to repair the tree upward.
*/
func (t *Tree[K, V]) Delete(key K) (V, bool) {
	val, ok := t.delete(t.root, key, t.height)
	if ok {
		t.size--
	}
	return val, ok
}

// delete removes key from the subtree rooted at n, h edges above the leaf
// level. Every child entered has been rebalanced above minimum occupancy
// first.
func (t *Tree[K, V]) delete(n *node[K, V], key K, h int) (V, bool) {
	pos, found := t.search(n, key)
	if h == 0 {
		if !found {
			var zero V
			return zero, false
		}
		return n.removeEntryAt(pos).val, true
	}

	switch {
	case found:
		// The key sits in this node. Copy its in-order predecessor (the
		// rightmost entry below children[pos]) over it, then continue
		// downward deleting the predecessor's key instead. The removed
		// value is captured before the overwrite.
		removed := n.entries[pos].val
		pred := t.predecessor(n.children[pos])
		predKey := pred.entries[pred.numEntries-1].key
		n.entries[pos] = pred.entries[pred.numEntries-1]

		if n.children[pos].numEntries <= t.minEntries() {
			if n.children[pos+1].numEntries > t.minEntries() {
				t.rotateLeft(n, pos)
			} else {
				t.merge(n, pos)
			}
		}
		t.delete(n.children[pos], predKey, h-1)
		return removed, true

	case pos == n.numEntries:
		// Rightmost subtree: borrow from the left sibling, or merge the
		// last two children, before descending.
		next := pos
		if n.children[pos].numEntries <= t.minEntries() {
			if n.children[pos-1].numEntries > t.minEntries() {
				t.rotateRight(n, pos-1)
			} else {
				t.merge(n, pos-1)
				next = pos - 1
			}
		}
		return t.delete(n.children[next], key, h-1)

	case pos == 0:
		// Leftmost subtree: only a right sibling exists to borrow from.
		if n.children[0].numEntries <= t.minEntries() {
			if n.children[1].numEntries > t.minEntries() {
				t.rotateLeft(n, 0)
			} else {
				t.merge(n, 0)
			}
		}
		return t.delete(n.children[0], key, h-1)

	default:
		// Middle subtree: prefer borrowing from the right sibling, then
		// the left, merging with the right as a last resort.
		if n.children[pos].numEntries <= t.minEntries() {
			switch {
			case n.children[pos+1].numEntries > t.minEntries():
				t.rotateLeft(n, pos)
			case n.children[pos-1].numEntries > t.minEntries():
				t.rotateRight(n, pos-1)
			default:
				t.merge(n, pos)
			}
		}
		return t.delete(n.children[pos], key, h-1)
	}
}

// rotateLeft moves one entry from the right sibling of children[i] through
// the parent separator at i: the separator drops to the end of
// children[i], the sibling's first entry is promoted in its place, and the
// sibling's first child comes along when the level is internal.
func (t *Tree[K, V]) rotateLeft(n *node[K, V], i int) {
	child, right := n.children[i], n.children[i+1]
	child.insertEntryAt(child.numEntries, n.entries[i])
	if !right.isLeaf() {
		child.insertChildAt(child.numChildren, right.children[0])
		right.removeChildAt(0)
	}
	n.entries[i] = right.entries[0]
	right.removeEntryAt(0)
}

// rotateRight is the mirror image: the separator at i drops to the front
// of children[i+1], the left sibling's last entry is promoted, and the
// left sibling's last child comes along.
func (t *Tree[K, V]) rotateRight(n *node[K, V], i int) {
	left, child := n.children[i], n.children[i+1]
	child.insertEntryAt(0, n.entries[i])
	if !left.isLeaf() {
		child.insertChildAt(0, left.children[left.numChildren-1])
		left.removeChildAt(left.numChildren - 1)
	}
	n.entries[i] = left.entries[left.numEntries-1]
	left.removeEntryAt(left.numEntries - 1)
}

/*
merge pulls the separator at i plus all of children[i]'s entries and
children into children[i+1], in order, then drops the separator and the
emptied child from n; the merged node slides into slot i. If that leaves
n without entries -- possible only at the root -- the merged node becomes
the new root and the tree shrinks by one level.
*/
func (t *Tree[K, V]) merge(n *node[K, V], i int) {
	left, right := n.children[i], n.children[i+1]

	copy(right.entries[left.numEntries+1:], right.entries[:right.numEntries])
	copy(right.entries, left.entries[:left.numEntries])
	right.entries[left.numEntries] = n.entries[i]
	right.numEntries += left.numEntries + 1
	if !left.isLeaf() {
		copy(right.children[left.numChildren:], right.children[:right.numChildren])
		copy(right.children, left.children[:left.numChildren])
		right.numChildren += left.numChildren
	}

	n.removeEntryAt(i)
	n.removeChildAt(i)
	if n.numEntries == 0 {
		t.root = n.children[0]
		t.height--
	}
}

// predecessor returns the leaf holding the largest key in n's subtree.
func (t *Tree[K, V]) predecessor(n *node[K, V]) *node[K, V] {
	for !n.isLeaf() {
		n = n.children[n.numChildren-1]
	}
	return n
}
