package gocalc

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLexer(t *testing.T) {
	tests := []struct {
		grammar *Grammar
		input   string
		want    []Token
	}{
		{
			grammar: Multiplicative,
			input:   "",
			want:    []Token{{Kind: End}},
		},
		{
			grammar: Multiplicative,
			input:   "   ",
			want:    []Token{{Kind: End, Pos: 3}},
		},
		{
			grammar: Multiplicative,
			input:   "12*3",
			want: []Token{
				{Kind: Integer, Value: 12},
				{Kind: Mul, Pos: 2},
				{Kind: Integer, Value: 3, Pos: 3},
				{Kind: End, Pos: 4},
			},
		},
		{
			grammar: Multiplicative,
			input:   " 8 / 007 ",
			want: []Token{
				{Kind: Integer, Value: 8, Pos: 1},
				{Kind: Div, Pos: 3},
				{Kind: Integer, Value: 7, Pos: 5},
				{Kind: End, Pos: 9},
			},
		},
		{
			grammar: Additive,
			input:   "1\t+\n2-3",
			want: []Token{
				{Kind: Integer, Value: 1},
				{Kind: Plus, Pos: 2},
				{Kind: Integer, Value: 2, Pos: 4},
				{Kind: Minus, Pos: 5},
				{Kind: Integer, Value: 3, Pos: 6},
				{Kind: End, Pos: 7},
			},
		},
		{
			grammar: Flat,
			input:   "+-*/",
			want: []Token{
				{Kind: Plus},
				{Kind: Minus, Pos: 1},
				{Kind: Mul, Pos: 2},
				{Kind: Div, Pos: 3},
				{Kind: End, Pos: 4},
			},
		},
	}
	for _, test := range tests {
		t.Logf("%s %q", test.grammar, test.input)
		got, err := NewLexer(test.grammar, test.input).Tokens()
		if err != nil {
			t.Error(err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%s %q: %s", test.grammar, test.input, diff)
		}
	}
}

func TestLexerInvalidCharacter(t *testing.T) {
	tests := []struct {
		grammar *Grammar
		input   string
		pos     int
		char    byte
	}{
		{Multiplicative, "3 & 4", 2, '&'},
		{Multiplicative, "3 + 4", 2, '+'},
		{Additive, "3*4", 1, '*'},
		{Additive, "4/2", 1, '/'},
		{Flat, "1.5", 1, '.'},
		{Flat, "x", 0, 'x'},
	}
	for _, test := range tests {
		_, err := NewLexer(test.grammar, test.input).Tokens()
		if !errors.Is(err, ErrInvalidCharacter) {
			t.Errorf("%q: want invalid character, got %v", test.input, err)
			continue
		}
		var e *Error
		if !errors.As(err, &e) {
			t.Fatalf("%q: want *Error, got %T", test.input, err)
		}
		if e.Pos != test.pos || e.Char != test.char {
			t.Errorf("%q: want %q at %d, got %q at %d", test.input, test.char, test.pos, e.Char, e.Pos)
		}
	}
}

func TestLexerEndIsSticky(t *testing.T) {
	l := NewLexer(Additive, "1 ")
	if _, err := l.NextToken(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatal(err)
		}
		if tok.Kind != End {
			t.Fatalf("call %d: want END, got %v", i, tok)
		}
		if l.Pos() != 2 {
			t.Fatalf("call %d: cursor moved to %d", i, l.Pos())
		}
	}
}

func TestLexerTrace(t *testing.T) {
	var buf bytes.Buffer
	l := NewLexer(Additive, "40 + 2")
	l.Trace = &buf
	if _, err := l.Tokens(); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"Token(INTEGER, 40)",
		"Token(PLUS)",
		"Token(INTEGER, 2)",
		"Token(END)",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Error(diff)
	}
}
