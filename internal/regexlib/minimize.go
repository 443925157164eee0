package regexlib

import "sort"

// Minimize returns the table-filling quotient of d: two states are
// fused iff no input word distinguishes them. The group containing the
// original start state becomes state 0. The dead-state group is not
// materialized; transitions into it are dropped and the Next lookup
// rule restores them.
func Minimize(d *DFA) *DFA {
	size := d.Size()

	// lower-triangular distinguishability table over 0..size, where
	// index size is the implicit dead state
	table := make([][]bool, size+1)
	for p := range table {
		table[p] = make([]bool, p)
	}
	distinct := func(p, q int) bool {
		if p == q {
			return false
		}
		if p < q {
			p, q = q, p
		}
		return table[p][q]
	}
	mark := func(p, q int) {
		if p < q {
			p, q = q, p
		}
		table[p][q] = true
	}

	// seed: accepting versus non-accepting (the dead state counts as
	// non-accepting)
	for p := 0; p <= size; p++ {
		for q := 0; q < p; q++ {
			if d.Accepting(p) != d.Accepting(q) {
				mark(p, q)
			}
		}
	}

	// fixed point: a pair is distinguishable if some letter leads it
	// to a distinguishable pair
	for updated := true; updated; {
		updated = false
		for p := 0; p <= size; p++ {
			for q := 0; q < p; q++ {
				if distinct(p, q) {
					continue
				}
				for _, c := range pairLetters(d, p, q) {
					if distinct(d.Next(p, c), d.Next(q, c)) {
						mark(p, q)
						updated = true
						break
					}
				}
			}
		}
	}

	// single pass: each ungrouped state founds a group together with
	// every state indistinguishable from it
	groupOf := make([]int, size+1)
	for i := range groupOf {
		groupOf[i] = -1
	}
	numGroups := 0
	for p := 0; p <= size; p++ {
		if groupOf[p] >= 0 {
			continue
		}
		g := numGroups
		numGroups++
		for q := p; q <= size; q++ {
			if groupOf[q] < 0 && !distinct(p, q) {
				groupOf[q] = g
			}
		}
	}

	deadGroup := groupOf[size]
	if deadGroup == groupOf[0] {
		// the start state accepts nothing at all
		return &DFA{}
	}

	// swap the start group into position 0, then number the remaining
	// groups in order, skipping the dead group
	newID := make([]int, numGroups)
	for i := range newID {
		newID[i] = -1
	}
	newID[groupOf[0]] = 0
	n := 1
	for g := 0; g < numGroups; g++ {
		if g == deadGroup || g == groupOf[0] {
			continue
		}
		newID[g] = n
		n++
	}

	res := &DFA{
		transitions: make([]map[rune]int, n),
		accepting:   make([]bool, n),
	}
	for i := range res.transitions {
		res.transitions[i] = map[rune]int{}
	}
	for i := 0; i < size; i++ {
		gi := newID[groupOf[i]]
		if gi < 0 {
			continue
		}
		if d.accepting[i] {
			res.accepting[gi] = true
		}
		for c, j := range d.transitions[i] {
			gj := newID[groupOf[j]]
			if gj < 0 {
				continue // into the dead group, stays implicit
			}
			res.transitions[gi][c] = gj
		}
	}
	return res
}

// pairLetters returns the letters appearing in either state's
// transition map; missing entries behave as transitions to the dead
// state, which has none of its own.
func pairLetters(d *DFA, p, q int) []rune {
	set := map[rune]struct{}{}
	for _, s := range [2]int{p, q} {
		if s == d.Size() {
			continue
		}
		for c := range d.transitions[s] {
			set[c] = struct{}{}
		}
	}
	letters := make([]rune, 0, len(set))
	for c := range set {
		letters = append(letters, c)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}
