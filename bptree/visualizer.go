package bptree

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Visualizer renders a Tree level by level for the interactive shell.
// Internal nodes show their routing keys, leaves show the stored keys
// with the sideways chain drawn between them.
type Visualizer[K any] struct {
	Tree *Tree[K]
}

var (
	internalColor = color.New(color.FgCyan)
	leafColor     = color.New(color.FgGreen)
	chainColor    = color.New(color.FgYellow)
)

func (v *Visualizer[K]) Visualize() string {
	var sb strings.Builder

	level := []*node[K]{v.Tree.root}
	for depth := 0; len(level) > 0; depth++ {
		var next []*node[K]
		parts := make([]string, 0, len(level))

		for _, n := range level {
			parts = append(parts, v.renderNode(n))
			next = append(next, n.children...)
		}

		sep := "   "
		if level[0].leaf {
			sep = chainColor.Sprint(" -> ")
		}
		fmt.Fprintf(&sb, "level %d: %s\n", depth, strings.Join(parts, sep))
		level = next
	}

	return sb.String()
}

func (v *Visualizer[K]) renderNode(n *node[K]) string {
	keys := make([]string, len(n.keys))
	for i, k := range n.keys {
		keys[i] = fmt.Sprintf("%v", k)
	}
	body := "[" + strings.Join(keys, " ") + "]"

	if n.leaf {
		return leafColor.Sprint(body)
	}
	return internalColor.Sprint(body)
}
