package regexlib

import (
	"errors"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Surface grammar:
//
//	start → regex EOF
//	regex → expr ('|' expr)*
//	expr  → term+
//	term  → atom '*'*
//	atom  → '(' regex ')' | LETTER
//
// A LETTER is any rune other than the five metacharacters. '+' is
// tokenized as its own kind but no production accepts it, so it fails
// like any other misplaced operator.
var regexLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "OParen", Pattern: `\(`},
	{Name: "CParen", Pattern: `\)`},
	{Name: "Bar", Pattern: `\|`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Plus", Pattern: `\+`},
	{Name: "Letter", Pattern: `[^()|*+]`},
})

// The top level and the inside of a group may be empty; an expr after
// a '|' may not. patternAST and groupAST make the alternation optional
// to preserve that asymmetry.
type patternAST struct {
	Root *altAST `parser:"@@?"`
}

type altAST struct {
	Alts []*seqAST `parser:"@@ ( Bar @@ )*"`
}

type seqAST struct {
	Terms []*termAST `parser:"@@+"`
}

type termAST struct {
	Atom  *atomAST `parser:"@@"`
	Stars []string `parser:"@Star*"`
}

type atomAST struct {
	Group  *groupAST `parser:"@@"`
	Letter *string   `parser:"| @Letter"`
}

type groupAST struct {
	Inner *altAST `parser:"OParen @@? CParen"`
}

var patternParser = participle.MustBuild[patternAST](
	participle.Lexer(regexLexer),
)

// Parse compiles pattern into an augmented, annotated syntax tree:
// the parsed root is wrapped in Cat(root, terminator) and followpos is
// computed over the result.
func Parse(pattern string) (*Tree, error) {
	ast, err := patternParser.ParseString("", pattern)
	if err != nil {
		return nil, parseError(err)
	}
	b := &treeBuilder{}
	root := b.alternation(ast.Root)
	term := newLeaf(kindTerminator, '#', b.nextID)
	b.nextID++
	return newTree(newCat(root, term), b.nextID), nil
}

func parseError(err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &ParseError{Offset: perr.Position().Offset, Message: perr.Message()}
	}
	return err
}

// treeBuilder lowers the participle parse tree into syntax nodes.
// Letters receive ids from a monotonic counter; the traversal order is
// left to right, so ids follow input position.
type treeBuilder struct {
	nextID int
}

func (b *treeBuilder) alternation(a *altAST) *node {
	if a == nil {
		return newEmpty()
	}
	left := b.sequence(a.Alts[0])
	for _, alt := range a.Alts[1:] {
		left = newOr(left, b.sequence(alt))
	}
	return left
}

func (b *treeBuilder) sequence(s *seqAST) *node {
	left := b.term(s.Terms[0])
	for _, t := range s.Terms[1:] {
		left = newCat(left, b.term(t))
	}
	return left
}

func (b *treeBuilder) term(t *termAST) *node {
	n := b.atom(t.Atom)
	for range t.Stars {
		n = newStar(n)
	}
	return n
}

func (b *treeBuilder) atom(a *atomAST) *node {
	if a.Group != nil {
		return b.alternation(a.Group.Inner)
	}
	ch, _ := utf8.DecodeRuneInString(*a.Letter)
	n := newLeaf(kindLetter, ch, b.nextID)
	b.nextID++
	return n
}
