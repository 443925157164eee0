package regexlib

// Regex is a compiled pattern: the annotated syntax tree plus the DFA
// built from it by subset construction. Values are immutable once
// returned and safe for concurrent use.
type Regex struct {
	pattern string
	tree    *Tree
	dfa     *DFA
}

// Compile parses pattern, augments and annotates the syntax tree, and
// constructs the DFA. On failure the error is a *ParseError.
func Compile(pattern string) (*Regex, error) {
	tree, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{pattern: pattern, tree: tree, dfa: buildDFA(tree)}, nil
}

func MustCompile(pattern string) *Regex {
	r, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Regex) Pattern() string { return r.pattern }

func (r *Regex) Tree() *Tree { return r.tree }

// DFA returns the raw construction automaton; the rendering path uses
// this one.
func (r *Regex) DFA() *DFA { return r.dfa }

// MinimizedDFA returns the table-filling quotient of the raw DFA.
func (r *Regex) MinimizedDFA() *DFA { return Minimize(r.dfa) }
