package lexer

import "fmt"

type TokenType int

const (
	TokenIdent TokenType = iota
	TokenNewLine

	TokenDot
	TokenHash
	TokenColon
	TokenDoubleColon

	TokenBracketOpen
	TokenAttrText
	TokenBracketClose

	TokenCombinator

	TokenEOF
)

func (t TokenType) String() string {
	switch t {
	case TokenIdent:
		return "Identifier"
	case TokenNewLine:
		return "Newline"

	case TokenDot:
		return "Dot"
	case TokenHash:
		return "Hash"
	case TokenColon:
		return "Colon"
	case TokenDoubleColon:
		return "Double colon"

	case TokenBracketOpen:
		return "Bracket open"
	case TokenAttrText:
		return "Attribute expression"
	case TokenBracketClose:
		return "Bracket close"

	case TokenCombinator:
		return "Combinator"

	case TokenEOF:
		return "EOF"
	}

	return "<unknown>"
}

type Token struct {
	Type     TokenType
	Start    Location
	Contents string
}

type Location struct {
	File string

	// 0-based
	Line, Column int
}

func (l *Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line+1, l.Column+1)
}
