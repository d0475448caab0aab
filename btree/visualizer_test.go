package btree

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestVisualize(t *testing.T) {
	color.NoColor = true // plain output for string comparison
	defer func() { color.NoColor = false }()

	tr := NewWithDegree[int, string](2)
	for _, k := range []int{10, 20, 5, 6, 12, 30, 7, 17} {
		tr.Insert(k, "x")
	}
	v := &Visualizer[int, string]{Tree: tr}

	got := v.Visualize()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != tr.Height()+1 {
		t.Fatalf("Visualize() has %d lines, want %d (height+1)", len(lines), tr.Height()+1)
	}
	if lines[0] != "[6 12]" {
		t.Errorf("root line = %q, want %q", lines[0], "[6 12]")
	}
	if lines[1] != "[5] [7 10] [17 20 30]" {
		t.Errorf("leaf line = %q, want %q", lines[1], "[5] [7 10] [17 20 30]")
	}
}

func TestVisualizeEmpty(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tr := New[int, int]()
	v := &Visualizer[int, int]{Tree: tr}
	if got := v.Visualize(); got != "[]\n" {
		t.Errorf("Visualize() = %q, want %q", got, "[]\n")
	}
}
