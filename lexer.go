package gocalc

import (
	"fmt"
	"io"
)

// Lexer hands out tokens one at a time from a single line of input.
type Lexer struct {
	g    *Grammar
	text string
	pos  int

	// Trace receives every token produced, one per line, when non-nil.
	Trace io.Writer
}

func NewLexer(g *Grammar, text string) *Lexer {
	return &Lexer{
		g:    g,
		text: text,
	}
}

func (l *Lexer) Pos() int {
	return l.pos
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.text)
}

func (l *Lexer) current() byte {
	return l.text[l.pos]
}

func (l *Lexer) skipWhite() {
	for !l.atEnd() && isSpace(l.current()) {
		l.pos++
	}
}

func (l *Lexer) integer() int64 {
	var n int64
	for !l.atEnd() && isDigit(l.current()) {
		n = n*10 + int64(l.current()-'0')
		l.pos++
	}
	return n
}

// NextToken returns the next token. Once the input is exhausted every call
// returns an End token.
func (l *Lexer) NextToken() (Token, error) {
	tok, err := l.next()
	if err != nil {
		return Token{}, err
	}
	if l.Trace != nil {
		fmt.Fprintln(l.Trace, tok)
	}
	return tok, nil
}

func (l *Lexer) next() (Token, error) {
	l.skipWhite()
	if l.atEnd() {
		return Token{Kind: End, Pos: len(l.text)}, nil
	}

	start := l.pos
	c := l.current()
	if isDigit(c) {
		return Token{Kind: Integer, Value: l.integer(), Pos: start}, nil
	}
	if op, ok := l.g.Operator(c); ok {
		l.pos++
		return Token{Kind: op.Kind, Pos: start}, nil
	}
	return Token{}, &Error{Kind: InvalidCharacter, Pos: start, Char: c}
}

// Tokens drains the lexer up to and including the End token.
func (l *Lexer) Tokens() ([]Token, error) {
	var toks []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == End {
			return toks, nil
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
