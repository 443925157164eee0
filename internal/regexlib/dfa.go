package regexlib

import "sort"

// DFA is a deterministic automaton over the letters that occur in the
// pattern. State 0 is the start state. The dead state is implicit: its
// id equals Size() and it carries no row in transitions.
type DFA struct {
	transitions []map[rune]int
	accepting   []bool
}

// Size returns the number of real states; the value itself is the id
// of the implicit dead state.
func (d *DFA) Size() int { return len(d.accepting) }

// Next implements the lookup rule: the dead state maps to itself, a
// missing entry maps to the dead state, and a state id beyond the dead
// state is a caller bug.
func (d *DFA) Next(state int, c rune) int {
	if state > d.Size() {
		panic(&InvalidStateError{State: state, Size: d.Size()})
	}
	if state == d.Size() {
		return d.Size()
	}
	next, ok := d.transitions[state][c]
	if !ok {
		return d.Size()
	}
	return next
}

// Accepting follows the same bounds rules as Next and reports false
// for the dead state.
func (d *DFA) Accepting(state int) bool {
	if state > d.Size() {
		panic(&InvalidStateError{State: state, Size: d.Size()})
	}
	if state == d.Size() {
		return false
	}
	return d.accepting[state]
}

// buildDFA runs subset construction over position sets per the dragon
// book (2nd ed., fig. 3.62): firstpos(root) is state 0, and followpos
// expands transitions. States are discovered in BFS order; letters
// within a state are visited in ascending code-point order, which
// fixes iteration order for minimization and DOT emission.
func buildDFA(t *Tree) *DFA {
	d := &DFA{}

	start := t.root.firstpos
	stateID := map[string]int{start.key(): 0}
	unmarked := []posSet{start}

	for len(unmarked) > 0 {
		positions := unmarked[0]
		unmarked = unmarked[1:]

		// group the non-terminator positions by their letter
		umap := map[rune]posSet{}
		for id := range positions {
			leaf := t.leaves[id]
			if leaf.kind == kindTerminator {
				continue
			}
			u := umap[leaf.ch]
			if u == nil {
				u = posSet{}
				umap[leaf.ch] = u
			}
			u.union(leaf.followpos)
		}

		trans := map[rune]int{}
		for _, a := range sortedLetters(umap) {
			u := umap[a]
			k := u.key()
			id, seen := stateID[k]
			if !seen {
				id = len(stateID)
				stateID[k] = id
				unmarked = append(unmarked, u)
			}
			trans[a] = id
		}

		d.transitions = append(d.transitions, trans)
		d.accepting = append(d.accepting, positions.has(t.terminator()))
	}
	return d
}

func sortedLetters(m map[rune]posSet) []rune {
	letters := make([]rune, 0, len(m))
	for a := range m {
		letters = append(letters, a)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}
