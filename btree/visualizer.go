package btree

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var levelColors = []*color.Color{
	color.New(color.FgCyan),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
	color.New(color.FgRed),
}

// Visualizer renders the structure of a Tree level by level, each depth in
// its own color. Debugging aid for the CLI.
type Visualizer[K, V any] struct {
	Tree *Tree[K, V]
}

// Visualize returns one line per tree level, top down, with every node's
// keys bracketed. Colors cycle when the tree is deeper than the palette.
func (v *Visualizer[K, V]) Visualize() string {
	var b strings.Builder
	level := []*node[K, V]{v.Tree.root}
	for depth := 0; len(level) > 0; depth++ {
		var next []*node[K, V]
		parts := make([]string, 0, len(level))
		for _, n := range level {
			keys := make([]string, 0, n.numEntries)
			for i := 0; i < n.numEntries; i++ {
				keys = append(keys, fmt.Sprint(n.entries[i].key))
			}
			parts = append(parts, "["+strings.Join(keys, " ")+"]")
			next = append(next, n.children[:n.numChildren]...)
		}
		c := levelColors[depth%len(levelColors)]
		b.WriteString(c.Sprint(strings.Join(parts, " ")))
		b.WriteString("\n")
		level = next
	}
	return b.String()
}
