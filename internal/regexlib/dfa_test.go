package regexlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runWord drives Next from state 0 across the characters of s.
func runWord(d *DFA, s string) bool {
	state := 0
	for _, c := range s {
		state = d.Next(state, c)
	}
	return d.Accepting(state)
}

func TestConstructionSingleLetter(t *testing.T) {
	d := buildDFA(mustParse(t, "a"))

	require.Equal(t, 2, d.Size())
	assert.Equal(t, map[rune]int{'a': 1}, d.transitions[0])
	assert.Empty(t, d.transitions[1])
	assert.Equal(t, []bool{false, true}, d.accepting)
}

func TestConstructionStar(t *testing.T) {
	d := buildDFA(mustParse(t, "a*"))

	require.Equal(t, 1, d.Size())
	assert.Equal(t, map[rune]int{'a': 0}, d.transitions[0])
	assert.True(t, d.accepting[0])
}

func TestConstructionConcat(t *testing.T) {
	d := buildDFA(mustParse(t, "ab"))

	require.Equal(t, 3, d.Size())
	assert.Equal(t, map[rune]int{'a': 1}, d.transitions[0])
	assert.Equal(t, map[rune]int{'b': 2}, d.transitions[1])
	assert.Equal(t, []bool{false, false, true}, d.accepting)
}

func TestConstructionAlternation(t *testing.T) {
	d := buildDFA(mustParse(t, "a|b"))

	require.Equal(t, 2, d.Size())
	assert.Equal(t, map[rune]int{'a': 1, 'b': 1}, d.transitions[0])
	assert.Equal(t, []bool{false, true}, d.accepting)
}

func TestConstructionDragonBook(t *testing.T) {
	// (a|b)*abb builds the four-state automaton of fig. 3.62 directly
	d := buildDFA(mustParse(t, "(a|b)*abb"))

	require.Equal(t, 4, d.Size())
	assert.Equal(t, map[rune]int{'a': 1, 'b': 0}, d.transitions[0])
	assert.Equal(t, map[rune]int{'a': 1, 'b': 2}, d.transitions[1])
	assert.Equal(t, map[rune]int{'a': 1, 'b': 3}, d.transitions[2])
	assert.Equal(t, map[rune]int{'a': 1, 'b': 0}, d.transitions[3])
	assert.Equal(t, []bool{false, false, false, true}, d.accepting)
}

func TestConstructionEmptyPattern(t *testing.T) {
	d := buildDFA(mustParse(t, ""))

	require.Equal(t, 1, d.Size())
	assert.Empty(t, d.transitions[0])
	assert.True(t, d.accepting[0])
	assert.True(t, runWord(d, ""))
	assert.False(t, runWord(d, "a"))
}

func TestDFAShapeInvariant(t *testing.T) {
	for _, pattern := range []string{"", "a", "a*", "(a|b)*abb", "a*b|c(de)*", "((a|b)|c)d**"} {
		d := buildDFA(mustParse(t, pattern))

		require.Equal(t, len(d.transitions), len(d.accepting), "pattern %q", pattern)
		require.Greater(t, d.Size(), 0, "pattern %q", pattern)
		for s, trans := range d.transitions {
			for c, to := range trans {
				assert.GreaterOrEqual(t, to, 0, "pattern %q state %d letter %q", pattern, s, c)
				assert.LessOrEqual(t, to, d.Size(), "pattern %q state %d letter %q", pattern, s, c)
			}
		}
	}
}

func TestNextDeadState(t *testing.T) {
	d := buildDFA(mustParse(t, "a"))

	// missing entry goes to the dead state, which maps to itself
	dead := d.Size()
	assert.Equal(t, dead, d.Next(0, 'x'))
	assert.Equal(t, dead, d.Next(dead, 'a'))
	assert.False(t, d.Accepting(dead))
}

func TestNextOutOfRangePanics(t *testing.T) {
	d := buildDFA(mustParse(t, "a"))

	for _, f := range []func(){
		func() { d.Next(d.Size()+1, 'a') },
		func() { d.Accepting(d.Size() + 1) },
	} {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				serr, ok := r.(*InvalidStateError)
				require.True(t, ok, "panic value %T", r)
				assert.Equal(t, d.Size()+1, serr.State)
				assert.Equal(t, d.Size(), serr.Size)
			}()
			f()
		}()
	}
}

func TestObservationalEquivalence(t *testing.T) {
	cases := []struct {
		pattern string
		accept  []string
		reject  []string
	}{
		{"a", []string{"a"}, []string{"", "aa", "b"}},
		{"a*", []string{"", "a", "aaaa"}, []string{"b", "ab"}},
		{"ab", []string{"ab"}, []string{"", "a", "b", "abb"}},
		{"a|b", []string{"a", "b"}, []string{"", "ab", "ba"}},
		{"(a|b)*abb", []string{"abb", "aabb", "babb", "abababb"}, []string{"", "ab", "abba", "bb"}},
		{"a(b|c)*d", []string{"ad", "abd", "acbd", "abcbcd"}, []string{"", "a", "d", "abc"}},
	}
	for _, tc := range cases {
		re := MustCompile(tc.pattern)
		for _, d := range []*DFA{re.DFA(), re.MinimizedDFA()} {
			for _, w := range tc.accept {
				assert.True(t, runWord(d, w), "pattern %q should accept %q", tc.pattern, w)
			}
			for _, w := range tc.reject {
				assert.False(t, runWord(d, w), "pattern %q should reject %q", tc.pattern, w)
			}
		}
	}
}

func TestStateSetsComparedByContent(t *testing.T) {
	// both arms of the alternation reach the same position set, so the
	// automaton must reuse the state rather than duplicate it
	d := buildDFA(mustParse(t, "(a|b)c"))

	require.Equal(t, 3, d.Size())
	assert.Equal(t, d.transitions[0]['a'], d.transitions[0]['b'])
}

func TestCompileReturnsParseError(t *testing.T) {
	_, err := Compile("(a")
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)

	assert.Panics(t, func() { MustCompile("(a") })
}
