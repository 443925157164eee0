package regexlib

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strconv"
	"strings"
)

// ExportDOT writes a Graphviz representation of a syntax tree or a
// DFA to w. Emission is deterministic: the same value always produces
// byte-identical output.
func ExportDOT(w io.Writer, g any) {
	switch t := g.(type) {
	case *Tree:
		exportTree(w, t)
	case *DFA:
		exportDFA(w, t)
	default:
		fmt.Fprintln(w, "digraph G {")
		fmt.Fprintln(w, "\t/* unknown graph type */")
		fmt.Fprintln(w, "}")
	}
}

// exportTree labels every node with its variant and the firstpos,
// lastpos and followpos sets in a smaller sub-label. Node handles are
// preorder numbers; any injective mapping would do.
func exportTree(w io.Writer, t *Tree) {
	handles := map[*node]int{}
	next := 0
	var number func(n *node)
	number = func(n *node) {
		handles[n] = next
		next++
		for _, c := range n.children() {
			number(c)
		}
	}
	number(t.root)

	fmt.Fprintf(w, "digraph G {\n\tgraph [ordering=\"out\"];\n")
	pending := []*node{t.root}
	for len(pending) > 0 {
		n := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		fmt.Fprintf(w, "%d [label=<%s<BR/>\n<FONT POINT-SIZE=\"10\">%s<BR/>\n%s<BR/>%s</FONT>>];\n",
			handles[n], html.EscapeString(n.label()),
			setLabel("firstpos", n.firstpos),
			setLabel("lastpos", n.lastpos),
			setLabel("followpos", n.followpos))
		for _, c := range n.children() {
			fmt.Fprintf(w, "\t%d -> %d;\n", handles[n], handles[c])
			pending = append(pending, c)
		}
	}
	fmt.Fprintf(w, "}\n")
}

func setLabel(name string, s posSet) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(": {")
	for _, id := range s.sorted() {
		b.WriteString(strconv.Itoa(id))
		b.WriteByte(' ')
	}
	b.WriteByte('}')
	return b.String()
}

// exportDFA walks states in BFS order from state 0. Accepting states
// are double circles; edges carry the triggering letter. The dead
// state has no transitions and never appears.
func exportDFA(w io.Writer, d *DFA) {
	fmt.Fprintf(w, "digraph G {\n\tgraph [ordering=\"out\" overlap=scale splines=true];\nrankdir=LR;\n")
	if d.Size() == 0 {
		fmt.Fprintf(w, "}\n")
		return
	}
	visited := map[int]bool{0: true}
	queue := []int{0}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if d.accepting[s] {
			fmt.Fprintf(w, "%d [shape=doublecircle];\n", s)
		} else {
			fmt.Fprintf(w, "%d [shape=circle];\n", s)
		}
		for _, c := range stateLetters(d, s) {
			to := d.transitions[s][c]
			if !visited[to] {
				visited[to] = true
				queue = append(queue, to)
			}
			fmt.Fprintf(w, "\t%d -> %d [label=\"%s\"];\n", s, to, edgeLabel(c))
		}
	}
	fmt.Fprintf(w, "}\n")
}

func stateLetters(d *DFA, s int) []rune {
	letters := make([]rune, 0, len(d.transitions[s]))
	for c := range d.transitions[s] {
		letters = append(letters, c)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

// edgeLabel escapes the letter for a double-quoted DOT label.
func edgeLabel(c rune) string {
	switch c {
	case '"':
		return `\"`
	case '\\':
		return `\\`
	}
	return string(c)
}
