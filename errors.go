package gocalc

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrInvalidSyntax    = errors.New("invalid syntax")
	ErrDivisionByZero   = errors.New("division by zero")
)

type ErrorKind int

const (
	InvalidCharacter ErrorKind = iota
	InvalidSyntax
	DivisionByZero
)

func (k ErrorKind) String() string {
	return k.sentinel().Error()
}

func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidCharacter:
		return ErrInvalidCharacter
	case InvalidSyntax:
		return ErrInvalidSyntax
	}
	return ErrDivisionByZero
}

// Error reports why a line could not be evaluated. Pos is the byte offset
// in the input where the problem was found.
type Error struct {
	Kind ErrorKind
	Pos  int
	Char byte
	Want Kind
	Got  Token
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidCharacter:
		return fmt.Sprintf("invalid character: %q (%d)", e.Char, e.Pos)
	case InvalidSyntax:
		return fmt.Sprintf("invalid syntax: want %v, got %v (%d)", e.Want, e.Got, e.Pos)
	}
	return fmt.Sprintf("division by zero (%d)", e.Pos)
}

func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}
