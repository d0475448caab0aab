package btree

import (
	"cmp"
	"fmt"
	"strings"
)

// DefaultDegree is the minimum degree used by New.
const DefaultDegree = 4

/*
Tree is an in-memory B-tree mapping keys to opaque values.

Every node except the root holds between d-1 and 2d-1 entries, where d is
the minimum degree fixed at construction, and all leaves sit at the same
depth. Keys are ordered by a three-way comparator held on the tree.

A Tree is not safe for concurrent use; callers that share one across
goroutines must serialize access themselves.
*/
type Tree[K, V any] struct {
	root   *node[K, V]
	cmp    func(K, K) int
	degree int
	size   int
	height int
}

// New returns an empty tree with the default minimum degree, ordered by
// cmp.Compare.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](DefaultDegree, cmp.Compare[K])
}

// NewWithDegree returns an empty tree with minimum degree d, ordered by
// cmp.Compare. It panics if d < 2.
func NewWithDegree[K cmp.Ordered, V any](d int) *Tree[K, V] {
	return NewFunc[K, V](d, cmp.Compare[K])
}

// NewFunc returns an empty tree with minimum degree d whose keys are
// ordered by the three-way comparator cmp. It panics if d < 2.
func NewFunc[K, V any](d int, cmp func(K, K) int) *Tree[K, V] {
	if d < 2 {
		panic("btree: bad degree")
	}
	t := &Tree[K, V]{cmp: cmp, degree: d}
	t.root = t.newNode()
	return t
}

// newNode allocates slots for one entry and one child beyond the resting
// bounds, giving an insertion room to overflow before split restores them.
func (t *Tree[K, V]) newNode() *node[K, V] {
	return &node[K, V]{
		entries:  make([]entry[K, V], t.maxEntries()+1),
		children: make([]*node[K, V], 2*t.degree+1),
	}
}

// maxEntries is the occupancy ceiling for every node at rest.
func (t *Tree[K, V]) maxEntries() int { return 2*t.degree - 1 }

// minEntries is the occupancy floor for every non-root node.
func (t *Tree[K, V]) minEntries() int { return t.degree - 1 }

/*
search locates key within the occupied prefix of n's entries via binary
search. It returns the entry index on an exact match, otherwise the index
at which the key would be inserted to keep the node ordered -- the key's
rank, i.e. the count of entries strictly less than it. On a miss that
index is also the child slot to descend into.
*/
func (t *Tree[K, V]) search(n *node[K, V], key K) (int, bool) {
	low, high := 0, n.numEntries
	for low < high {
		mid := (low + high) / 2
		switch c := t.cmp(key, n.entries[mid].key); {
		case c > 0:
			low = mid + 1
		case c < 0:
			high = mid
		default:
			return mid, true
		}
	}
	return low, false
}

// Get returns the value stored under key. The second return is false if
// the key is absent.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	for next := t.root; next != nil; {
		pos, found := t.search(next, key)
		if found {
			return next.entries[pos].val, true
		}
		next = next.children[pos]
	}
	var zero V
	return zero, false
}

// Update overwrites the value stored under key in place. It is a no-op if
// the key is absent.
func (t *Tree[K, V]) Update(key K, val V) {
	for next := t.root; next != nil; {
		pos, found := t.search(next, key)
		if found {
			next.entries[pos].val = val
			return
		}
		next = next.children[pos]
	}
}

/*
Insert adds a new entry for key, splitting full nodes on the unwind; the
tree grows in height only when the root itself splits.

Insert never looks for an existing entry: inserting a key twice stores two
entries and grows Size both times. Callers needing upsert semantics should
Get first and Update on a hit.
*/
func (t *Tree[K, V]) Insert(key K, val V) {
	carrier := t.insert(t.root, key, val, t.height)
	if carrier != nil {
		// The root split. The carrier becomes the new root, with the
		// split-off left node already its first child and the old root
		// (now the right remainder) as its second.
		carrier.children[1] = t.root
		carrier.numChildren = 2
		t.root = carrier
		t.height++
	}
	t.size++
}

// insert descends to the leaf level (h counts edges down to it) and inserts
// there. A non-nil return is a carrier node holding the promoted middle
// entry with the new left sibling as its sole child; the caller links both
// into itself at the rank index and checks itself for a split in turn.
func (t *Tree[K, V]) insert(n *node[K, V], key K, val V, h int) *node[K, V] {
	pos, _ := t.search(n, key)
	if h == 0 {
		n.insertEntryAt(pos, entry[K, V]{key: key, val: val})
		return t.split(n)
	}
	carrier := t.insert(n.children[pos], key, val, h-1)
	if carrier == nil {
		return nil
	}
	n.insertEntryAt(pos, carrier.entries[0])
	n.insertChildAt(pos, carrier.children[0])
	return t.split(n)
}

/*
split divides an overflowing node around its middle entry. Entries and
children left of the middle move to a freshly created node; the rest
compact leftward within n, which becomes the right remainder. The middle
entry and the new left node travel up in a carrier node. Returns nil when
n is within bounds, leaving the caller untouched.
*/
func (t *Tree[K, V]) split(n *node[K, V]) *node[K, V] {
	if n.numEntries <= t.maxEntries() {
		return nil
	}
	middle := t.maxEntries() / 2

	carrier := t.newNode()
	carrier.entries[0] = n.entries[middle]
	carrier.numEntries = 1

	left := t.newNode()
	copy(left.entries, n.entries[:middle])
	left.numEntries = middle
	if !n.isLeaf() {
		copy(left.children, n.children[:middle+1])
		left.numChildren = middle + 1
	}
	carrier.children[0] = left
	carrier.numChildren = 1

	old := n.numEntries
	copy(n.entries, n.entries[middle+1:old])
	n.numEntries = old - middle - 1
	for i := n.numEntries; i < old; i++ {
		n.entries[i] = entry[K, V]{}
	}
	if !n.isLeaf() {
		copy(n.children, n.children[middle+1:old+1])
		n.numChildren = n.numEntries + 1
		for i := n.numChildren; i <= old; i++ {
			n.children[i] = nil
		}
	}
	return carrier
}

// Size returns the number of stored entries.
func (t *Tree[K, V]) Size() int { return t.size }

// Height returns the number of edges from the root to any leaf; a
// single-node tree has height 0.
func (t *Tree[K, V]) Height() int { return t.height }

// walk visits every entry in key order.
func (t *Tree[K, V]) walk(n *node[K, V], fn func(entry[K, V])) {
	for i := 0; i < n.numEntries; i++ {
		if !n.isLeaf() {
			t.walk(n.children[i], fn)
		}
		fn(n.entries[i])
	}
	if !n.isLeaf() {
		t.walk(n.children[n.numEntries], fn)
	}
}

// String renders an in-order dump of all key:value pairs followed by the
// entry count and height on their own lines. Debugging aid, not a stable
// format.
func (t *Tree[K, V]) String() string {
	var b strings.Builder
	t.walk(t.root, func(e entry[K, V]) {
		fmt.Fprintf(&b, "%v:%v ", e.key, e.val)
	})
	b.WriteString("\n")
	fmt.Fprintf(&b, "entries: %d\n", t.size)
	fmt.Fprintf(&b, "height: %d", t.height)
	return b.String()
}
