// Package newick reads and writes trees in the Newick format: the
// parenthesized-label notation with optional branch lengths and a ';'
// terminator, as described at
// https://phylipweb.github.io/phylip/newicktree.html.
//
// The reader supports quoted labels ('it''s') and bracketed comments, both
// of which are commonly produced by phylogenetics tools. Branch lengths are
// parsed and preserved on the node but carry no meaning for the box
// renderer.
package newick

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lwoodhull/cladogram/pkg/tree"
)

// ErrSyntax is wrapped by every parse error. Use errors.Is to distinguish
// malformed input from I/O failures.
var ErrSyntax = errors.New("malformed newick")

// unquotedBanned are the characters that terminate (and may not appear in)
// an unquoted label.
const unquotedBanned = " \t\n\r()[]':;,"

// Parse reads a single tree from data. The tree must be terminated by ';'
// and nothing but whitespace or comments may follow it.
func Parse(data []byte) (*tree.Node, error) {
	p := &parser{data: data}
	if err := p.skip(); err != nil {
		return nil, err
	}
	if p.eof() {
		return nil, p.errorf("empty input")
	}

	root, err := p.subtree()
	if err != nil {
		return nil, err
	}
	if err := p.skip(); err != nil {
		return nil, err
	}
	if !p.accept(';') {
		return nil, p.errorf("expected ';'")
	}
	if err := p.skip(); err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.errorf("unexpected data after ';'")
	}
	return root, nil
}

// ParseString reads a single tree from s.
func ParseString(s string) (*tree.Node, error) {
	return Parse([]byte(s))
}

// Read reads a single tree from r.
func Read(r io.Reader) (*tree.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read newick: %w", err)
	}
	return Parse(data)
}

type parser struct {
	data []byte
	pos  int
}

func (p *parser) eof() bool { return p.pos >= len(p.data) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.data[p.pos]
}

func (p *parser) accept(c byte) bool {
	if !p.eof() && p.data[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

// skip consumes whitespace and [bracketed comments].
func (p *parser) skip() error {
	for !p.eof() {
		switch p.data[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		case '[':
			end := p.pos
			for end < len(p.data) && p.data[end] != ']' {
				end++
			}
			if end == len(p.data) {
				return p.errorf("unterminated comment")
			}
			p.pos = end + 1
		default:
			return nil
		}
	}
	return nil
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s (offset %d)", ErrSyntax, fmt.Sprintf(format, args...), p.pos)
}

// subtree parses either a leaf or a parenthesized descendant list, each
// followed by an optional label and an optional ':length'.
func (p *parser) subtree() (*tree.Node, error) {
	n := &tree.Node{}

	if p.accept('(') {
		for {
			if err := p.skip(); err != nil {
				return nil, err
			}
			child, err := p.subtree()
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
			if err := p.skip(); err != nil {
				return nil, err
			}
			if p.accept(',') {
				continue
			}
			if p.accept(')') {
				break
			}
			return nil, p.errorf("expected ',' or ')'")
		}
		if err := p.skip(); err != nil {
			return nil, err
		}
	}

	name, err := p.label()
	if err != nil {
		return nil, err
	}
	if name != "" {
		n.Name = &name
	}

	if err := p.skip(); err != nil {
		return nil, err
	}
	if p.accept(':') {
		if err := p.skip(); err != nil {
			return nil, err
		}
		length, err := p.number()
		if err != nil {
			return nil, err
		}
		n.Length = &length
	}
	return n, nil
}

// label parses an optional quoted or unquoted label. It returns the empty
// string when no label is present.
func (p *parser) label() (string, error) {
	if p.peek() == '\'' {
		return p.quoted()
	}

	start := p.pos
	for !p.eof() && !strings.ContainsRune(unquotedBanned, rune(p.data[p.pos])) {
		p.pos++
	}
	return string(p.data[start:p.pos]), nil
}

// quoted parses a single-quoted label. A doubled quote ('') inside the label
// stands for one literal quote character.
func (p *parser) quoted() (string, error) {
	p.pos++ // opening quote
	var b strings.Builder
	for {
		if p.eof() {
			return "", p.errorf("unterminated quoted label")
		}
		c := p.data[p.pos]
		p.pos++
		if c != '\'' {
			b.WriteByte(c)
			continue
		}
		if p.accept('\'') {
			b.WriteByte('\'')
			continue
		}
		return b.String(), nil
	}
}

func (p *parser) number() (float64, error) {
	start := p.pos
	for !p.eof() && strings.ContainsRune("0123456789+-.eE", rune(p.data[p.pos])) {
		p.pos++
	}
	f, err := strconv.ParseFloat(string(p.data[start:p.pos]), 64)
	if err != nil {
		return 0, p.errorf("invalid branch length %q", p.data[start:p.pos])
	}
	return f, nil
}
