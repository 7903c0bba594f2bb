// Package lexer scans selector files into tokens, one selector expression
// per line. Line comments ("//") and blank lines produce no tokens beyond
// newlines.
package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

type LexerError struct {
	Inner    error
	Location Location
}

func (e *LexerError) Unwrap() error {
	return e.Inner
}

func (e *LexerError) Error() string {
	return fmt.Sprintf("%s at %s", e.Inner, &e.Location)
}

func (e *LexerError) At() Location {
	return e.Location
}

type UnexpectedRuneError struct {
	Got      rune
	Expected string
}

func (e *UnexpectedRuneError) Error() string {
	if e.Got == 0 {
		return fmt.Sprintf("expected %s, found end of file", e.Expected)
	}

	return fmt.Sprintf("expected %s, found %q", e.Expected, e.Got)
}

type stateFunc func() stateFunc

type Lexer struct {
	filename string
	file     []byte

	tokens chan Token

	str      []rune
	strStart Location

	byteIndex int
	line, col int

	lastType TokenType

	err *LexerError
}

func New(file []byte, fileName string) *Lexer {
	tks := make(chan Token, 1)

	lexer := &Lexer{
		tokens:   tks,
		file:     file,
		filename: fileName,
		strStart: Location{File: fileName},
		lastType: TokenNewLine,
	}

	go func() {
		defer close(tks)

		state := lexer.lexExpr
		for state != nil {
			state = state()

			if lexer.err != nil {
				return
			}
		}

		tks <- Token{
			Type: TokenEOF,
			Start: Location{
				File:   lexer.filename,
				Line:   lexer.line,
				Column: lexer.col,
			},
		}
	}()

	return lexer
}

func (l *Lexer) Next() (*Token, error) {
	t, ok := <-l.tokens
	if !ok {
		return nil, l.err
	}

	return &t, nil
}

func (l *Lexer) Collect() ([]Token, error) {
	tks := []Token{}

	for t := range l.tokens {
		tks = append(tks, t)

		if t.Type == TokenEOF {
			break
		}
	}

	if l.err != nil {
		return nil, l.err
	}

	return tks, nil
}

func (l *Lexer) take() (r rune, eof bool) {
	if l.byteIndex >= len(l.file) {
		return 0, true
	}

	if l.file[l.byteIndex] == '\r' {
		l.byteIndex++
	}

	r, size := utf8.DecodeRune(l.file[l.byteIndex:])

	l.str = append(l.str, r)

	l.col++
	l.byteIndex += size

	if r == '\n' {
		l.line++
		l.col = 0
	}

	return r, false
}

func (l *Lexer) peek() (r rune, eof bool) {
	if l.byteIndex >= len(l.file) {
		return 0, true
	}

	idx := l.byteIndex
	if l.file[idx] == '\r' {
		idx++
	}

	r, _ = utf8.DecodeRune(l.file[idx:])
	return
}

func (l *Lexer) takeWhitespace() {
	for {
		r, eof := l.peek()
		if eof || (r != ' ' && r != '\t') {
			return
		}

		l.take()
	}
}

func (l *Lexer) emit(typ TokenType) {
	l.tokens <- Token{
		Type:     typ,
		Start:    l.strStart,
		Contents: string(l.str),
	}

	l.lastType = typ
	l.discard()
}

func (l *Lexer) discard() {
	l.strStart = Location{
		File:   l.filename,
		Line:   l.line,
		Column: l.col,
	}
	l.str = l.str[:0]
}

func (l *Lexer) isEmpty() bool {
	return len(l.str) == 0
}

func (l *Lexer) lexError(err error) stateFunc {
	l.err = &LexerError{
		Inner:    err,
		Location: l.strStart,
	}
	return nil
}

func (l *Lexer) lexUnexpected(got rune, expected string) stateFunc {
	return l.lexError(&UnexpectedRuneError{
		Got:      got,
		Expected: expected,
	})
}

func (l *Lexer) lexExpr() stateFunc {
	r, eof := l.peek()
	if eof {
		return nil
	}

	switch r {
	case '\n':
		l.take()
		l.emit(TokenNewLine)
		return l.lexExpr

	case ' ', '\t':
		return l.lexSpace

	case '/':
		return l.lexComment

	case '.':
		l.take()
		l.emit(TokenDot)
		return l.lexIdent("a class name")

	case '#':
		l.take()
		l.emit(TokenHash)
		return l.lexIdent("an id")

	case ':':
		return l.lexColon

	case '[':
		l.take()
		l.emit(TokenBracketOpen)
		return l.lexAttrText

	case '>', '+', '~':
		l.take()
		l.emit(TokenCombinator)
		return l.lexExpr

	case '*':
		l.take()
		l.emit(TokenIdent)
		return l.lexExpr
	}

	return l.lexIdent("a tag name")
}

// lexSpace decides whether a whitespace run separates two compound selectors
// (a descendant combinator) or is just padding around an explicit combinator.
func (l *Lexer) lexSpace() stateFunc {
	canCombine := l.lastType == TokenIdent || l.lastType == TokenBracketClose

	l.takeWhitespace()

	r, eof := l.peek()
	if eof {
		l.discard()
		return nil
	}

	if canCombine && (isIdentRune(r) || r == '*' || r == '.' || r == '#' || r == ':' || r == '[') {
		l.emit(TokenCombinator)
	} else {
		l.discard()
	}

	return l.lexExpr
}

func (l *Lexer) lexComment() stateFunc {
	l.take()

	r, eof := l.take()
	if eof || r != '/' {
		return l.lexUnexpected(r, `a second "/"`)
	}

	for {
		r, eof := l.peek()
		if eof || r == '\n' {
			break
		}

		l.take()
	}

	l.discard()
	return l.lexExpr
}

func (l *Lexer) lexColon() stateFunc {
	l.take()

	if r, eof := l.peek(); !eof && r == ':' {
		l.take()
		l.emit(TokenDoubleColon)
		return l.lexIdent("a pseudo-element name")
	}

	l.emit(TokenColon)
	return l.lexIdent("a pseudo-class name")
}

func (l *Lexer) lexAttrText() stateFunc {
	for {
		r, eof := l.peek()
		if eof || r == '\n' {
			return l.lexUnexpected(r, `a closing "]"`)
		}
		if r == ']' {
			break
		}

		l.take()
	}

	if l.isEmpty() {
		return l.lexUnexpected(']', "an attribute expression")
	}

	l.emit(TokenAttrText)

	l.take()
	l.emit(TokenBracketClose)

	return l.lexExpr
}

// lexIdent scans an identifier, optionally followed by a functional-notation
// suffix such as "nth-child(2n)".
func (l *Lexer) lexIdent(expected string) stateFunc {
	return func() stateFunc {
		for {
			r, eof := l.peek()
			if eof || !isIdentRune(r) {
				break
			}

			l.take()
		}

		if l.isEmpty() {
			r, _ := l.peek()
			return l.lexUnexpected(r, expected)
		}

		if r, eof := l.peek(); !eof && r == '(' {
			for {
				r, eof := l.take()
				if eof || r == '\n' {
					return l.lexUnexpected(r, `a closing ")"`)
				}
				if r == ')' {
					break
				}
			}
		}

		l.emit(TokenIdent)
		return l.lexExpr
	}
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}
