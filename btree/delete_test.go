package btree

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"
)

// scenarioTree builds the degree-2 tree from the insert scenario:
// 10, 20, 5, 6, 12, 30, 7, 17 with values "v<key>".
func scenarioTree(t *testing.T) *Tree[int, string] {
	t.Helper()
	tr := NewWithDegree[int, string](2)
	for _, k := range []int{10, 20, 5, 6, 12, 30, 7, 17} {
		tr.Insert(k, fmt.Sprintf("v%d", k))
	}
	return tr
}

func TestDeleteEmpty(t *testing.T) {
	tr := New[int, string]()
	if _, ok := tr.Delete(42); ok {
		t.Error("Delete on empty tree should report not found")
	}
	if tr.Size() != 0 {
		t.Errorf("Size() = %d after failed delete, want 0", tr.Size())
	}
}

func TestDeleteAbsent(t *testing.T) {
	tr := New[int, string]()
	tr.Insert(5, "five")
	tr.Insert(10, "ten")

	// 7 ranks between the two stored keys; the leaf must not remove the
	// entry sitting at that rank.
	if _, ok := tr.Delete(7); ok {
		t.Fatal("Delete(7) should report not found")
	}
	if tr.Size() != 2 {
		t.Errorf("Size() = %d after failed delete, want 2", tr.Size())
	}
	for _, k := range []int{5, 10} {
		if _, ok := tr.Get(k); !ok {
			t.Errorf("Get(%d) should still find the entry", k)
		}
	}
}

// Deleting 6 from the scenario tree forces a merge below the root and must
// return 6's own value, not the predecessor's.
func TestDeleteScenarioDegree2(t *testing.T) {
	tr := scenarioTree(t)

	val, ok := tr.Delete(6)
	if !ok || val != "v6" {
		t.Fatalf("Delete(6) = (%q, %v), want (\"v6\", true)", val, ok)
	}
	if _, ok := tr.Get(6); ok {
		t.Error("Get(6) should report not found after delete")
	}
	if tr.Size() != 7 {
		t.Errorf("Size() = %d, want 7", tr.Size())
	}
	checkInvariants(t, tr)

	want := "5:v5 7:v7 10:v10 12:v12 17:v17 20:v20 30:v30 \nentries: 7\nheight: 1"
	if got := tr.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

// Deleting a key held in an internal node goes through predecessor
// replacement; the other entries keep their values.
func TestDeleteInternalKey(t *testing.T) {
	tr := scenarioTree(t)

	val, ok := tr.Delete(12)
	if !ok || val != "v12" {
		t.Fatalf("Delete(12) = (%q, %v), want (\"v12\", true)", val, ok)
	}
	checkInvariants(t, tr)

	for _, k := range []int{5, 6, 7, 10, 17, 20, 30} {
		got, ok := tr.Get(k)
		if !ok || got != fmt.Sprintf("v%d", k) {
			t.Errorf("Get(%d) = (%q, %v), want (%q, true)", k, got, ok, fmt.Sprintf("v%d", k))
		}
	}
}

// Internal-key deletion when both children flanking the key are at
// minimum occupancy: the separator is pulled down in a merge before the
// descent removes the predecessor copy.
func TestDeleteInternalKeyMerge(t *testing.T) {
	tr := scenarioTree(t)

	// Thin out the leaves around 6 first.
	if _, ok := tr.Delete(10); !ok {
		t.Fatal("Delete(10) should succeed")
	}
	checkInvariants(t, tr)

	val, ok := tr.Delete(6)
	if !ok || val != "v6" {
		t.Fatalf("Delete(6) = (%q, %v), want (\"v6\", true)", val, ok)
	}
	checkInvariants(t, tr)

	if tr.Size() != 6 {
		t.Errorf("Size() = %d, want 6", tr.Size())
	}
	for _, k := range []int{5, 7, 17, 20, 30} {
		if _, ok := tr.Get(k); !ok {
			t.Errorf("Get(%d) should still find the entry", k)
		}
	}
}

func TestDeleteAllShrinksToEmpty(t *testing.T) {
	tr := NewWithDegree[int, int](2)
	const n = 64
	for i := 0; i < n; i++ {
		tr.Insert(i, i)
	}
	grown := tr.Height()
	if grown < 2 {
		t.Fatalf("Height() = %d before deletes, want >= 2", grown)
	}

	for i := 0; i < n; i++ {
		val, ok := tr.Delete(i)
		if !ok || val != i {
			t.Fatalf("Delete(%d) = (%d, %v), want (%d, true)", i, val, ok, i)
		}
		checkInvariants(t, tr)
	}
	if tr.Size() != 0 {
		t.Errorf("Size() = %d after deleting everything, want 0", tr.Size())
	}
	if tr.Height() != 0 {
		t.Errorf("Height() = %d after deleting everything, want 0", tr.Height())
	}
}

func TestDeleteEvens(t *testing.T) {
	tr := New[int, int]()
	const n = 1000
	for i := 0; i < n; i++ {
		tr.Insert(i, i)
	}
	for i := 0; i < n; i += 2 {
		if _, ok := tr.Delete(i); !ok {
			t.Fatalf("Delete(%d) should succeed", i)
		}
	}
	checkInvariants(t, tr)

	for i := 0; i < n; i++ {
		got, ok := tr.Get(i)
		if i%2 == 0 {
			if ok {
				t.Errorf("Get(%d) should report not found (deleted)", i)
			}
			continue
		}
		if !ok || got != i {
			t.Errorf("Get(%d) = (%d, %v), want (%d, true)", i, got, ok, i)
		}
	}
}

func TestDeleteRandomOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tr := NewWithDegree[int, int](3)
	const n = 500
	for _, k := range rng.Perm(n) {
		tr.Insert(k, k)
	}
	for _, k := range rng.Perm(n) {
		val, ok := tr.Delete(k)
		if !ok || val != k {
			t.Fatalf("Delete(%d) = (%d, %v), want (%d, true)", k, val, ok, k)
		}
		checkInvariants(t, tr)
	}
	if tr.Size() != 0 {
		t.Errorf("Size() = %d, want 0", tr.Size())
	}
}

// Mixed inserts, updates, and deletes against a map mirror.
func TestRandomizedOps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tr := NewWithDegree[int, int](2)
	mirror := make(map[int]int)

	for op := 0; op < 5000; op++ {
		switch rng.Intn(4) {
		case 0, 1: // insert a fresh key
			k := rng.Intn(10000)
			if _, dup := mirror[k]; dup {
				continue
			}
			mirror[k] = op
			tr.Insert(k, op)
		case 2: // update an existing key
			k := rng.Intn(10000)
			if _, present := mirror[k]; !present {
				continue
			}
			mirror[k] = op
			tr.Update(k, op)
		case 3: // delete, present or not
			k := rng.Intn(10000)
			want, present := mirror[k]
			val, ok := tr.Delete(k)
			if ok != present {
				t.Fatalf("Delete(%d) = %v, mirror says %v", k, ok, present)
			}
			if present && val != want {
				t.Fatalf("Delete(%d) = %d, want %d", k, val, want)
			}
			delete(mirror, k)
		}
		if op%250 == 0 {
			checkInvariants(t, tr)
		}
	}
	checkInvariants(t, tr)

	if tr.Size() != len(mirror) {
		t.Fatalf("Size() = %d, mirror has %d keys", tr.Size(), len(mirror))
	}
	want := make([]int, 0, len(mirror))
	for k := range mirror {
		want = append(want, k)
	}
	sort.Ints(want)
	got := keys(tr)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("traversal[%d] = %d, want %d", i, got[i], want[i])
		}
		val, ok := tr.Get(want[i])
		if !ok || val != mirror[want[i]] {
			t.Fatalf("Get(%d) = (%d, %v), want (%d, true)", want[i], val, ok, mirror[want[i]])
		}
	}
}
