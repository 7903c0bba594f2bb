// Package parser turns lexed selector tokens into built selectors, one per
// line. The ordering and cardinality rules are not re-implemented here: each
// fragment is fed into selector.Builder and its errors are reported at the
// offending token.
package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Alexkhokhlow/core-go-101/internal/lexer"
	"github.com/Alexkhokhlow/core-go-101/selector"
)

var ErrLastTokenEOF = errors.New("last token must be EOF")

type ParseError struct {
	Inner    error
	Location lexer.Location
}

func (e *ParseError) Unwrap() error {
	return e.Inner
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Inner, &e.Location)
}

func (e *ParseError) At() lexer.Location {
	return e.Location
}

type UnexpectedTokenError struct {
	Got      *lexer.Token
	Expected string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("expected %s, found %q (%s)", e.Expected, e.Got.Contents, e.Got.Type)
}

// Entry is one selector expression with the location it starts at.
type Entry struct {
	Pos lexer.Location
	Sel selector.Builder
}

type File struct {
	Name      string
	Selectors []Entry
}

type parser struct {
	tokens []lexer.Token
	index  int

	errs []*ParseError
}

// Parse consumes a whole token stream. Parsing recovers at line boundaries,
// so a bad expression doesn't hide problems on the lines after it; all
// collected errors are returned alongside whatever parsed cleanly.
func Parse(tokens []lexer.Token) (*File, []*ParseError) {
	p := parser{tokens: tokens}

	if len(tokens) == 0 || tokens[len(tokens)-1].Type != lexer.TokenEOF {
		return nil, []*ParseError{{Inner: ErrLastTokenEOF}}
	}

	return p.parseFile(), p.errs
}

func (p *parser) take() (tk *lexer.Token) {
	if p.index >= len(p.tokens) {
		return &p.tokens[len(p.tokens)-1] // Last token should be EOF
	}

	tk = &p.tokens[p.index]
	p.index++

	return tk
}

func (p *parser) mustTake(typ lexer.TokenType) (tk *lexer.Token, found bool) {
	tk = p.take()
	if tk.Type != typ {
		p.addErrorAt(&UnexpectedTokenError{
			Got:      tk,
			Expected: typ.String(),
		}, tk.Start)
		return nil, false
	}

	return tk, true
}

func (p *parser) rewind() {
	if p.index == 0 {
		panic("cannot rewind any further")
	}

	p.index--
}

func (p *parser) peek() *lexer.Token {
	if p.index >= len(p.tokens) {
		return &p.tokens[len(p.tokens)-1] // Last token should be EOF
	}

	return &p.tokens[p.index]
}

func (p *parser) addErrorAt(err error, pos lexer.Location) {
	p.errs = append(p.errs, &ParseError{
		Inner:    err,
		Location: pos,
	})
}

func (p *parser) parseFile() *File {
	fname := filepath.Base(p.tokens[0].Start.File)

	f := File{
		Name: strings.TrimSuffix(fname, filepath.Ext(fname)),
	}

	for {
		tk := p.peek()
		if tk.Type == lexer.TokenEOF {
			break
		}
		if tk.Type == lexer.TokenNewLine {
			p.take()
			continue
		}

		entry, ok := p.parseExpr()
		if !ok {
			p.skipLine()
			continue
		}

		f.Selectors = append(f.Selectors, entry)
	}

	return &f
}

// skipLine recovers from a bad expression by discarding the rest of its line.
func (p *parser) skipLine() {
	for {
		tk := p.take()
		if tk.Type == lexer.TokenNewLine || tk.Type == lexer.TokenEOF {
			break
		}
	}
}

func (p *parser) parseExpr() (Entry, bool) {
	start := p.peek().Start

	b, ok := p.parseCompound()
	if !ok {
		return Entry{}, false
	}

	for {
		tk := p.peek()
		if tk.Type == lexer.TokenNewLine || tk.Type == lexer.TokenEOF {
			break
		}
		if tk.Type != lexer.TokenCombinator {
			p.addErrorAt(&UnexpectedTokenError{
				Got:      tk,
				Expected: "a combinator or the end of the line",
			}, tk.Start)
			return Entry{}, false
		}

		p.take()

		right, ok := p.parseCompound()
		if !ok {
			return Entry{}, false
		}

		b = selector.Combine(b, combinator(tk.Contents), right)
	}

	return Entry{
		Pos: start,
		Sel: b,
	}, true
}

func (p *parser) parseCompound() (selector.Builder, bool) {
	var b selector.Builder

	empty := true

loop:
	for {
		tk := p.take()

		switch tk.Type {
		case lexer.TokenIdent:
			b = b.Element(tk.Contents)

		case lexer.TokenHash:
			name, ok := p.mustTake(lexer.TokenIdent)
			if !ok {
				return b, false
			}

			b = b.ID(name.Contents)

		case lexer.TokenDot:
			name, ok := p.mustTake(lexer.TokenIdent)
			if !ok {
				return b, false
			}

			b = b.Class(name.Contents)

		case lexer.TokenColon:
			name, ok := p.mustTake(lexer.TokenIdent)
			if !ok {
				return b, false
			}

			b = b.PseudoClass(name.Contents)

		case lexer.TokenDoubleColon:
			name, ok := p.mustTake(lexer.TokenIdent)
			if !ok {
				return b, false
			}

			b = b.PseudoElement(name.Contents)

		case lexer.TokenBracketOpen:
			text, ok := p.mustTake(lexer.TokenAttrText)
			if !ok {
				return b, false
			}
			if _, ok := p.mustTake(lexer.TokenBracketClose); !ok {
				return b, false
			}

			b = b.Attr(text.Contents)

		default:
			p.rewind()
			break loop
		}

		if err := b.Err(); err != nil {
			p.addErrorAt(err, tk.Start)
			return b, false
		}

		empty = false
	}

	if empty {
		tk := p.peek()
		p.addErrorAt(&UnexpectedTokenError{
			Got:      tk,
			Expected: "a selector",
		}, tk.Start)
		return b, false
	}

	return b, true
}

func combinator(contents string) selector.Combinator {
	trimmed := strings.TrimSpace(contents)
	if trimmed == "" {
		return selector.Descendant
	}

	return selector.Combinator(trimmed)
}
