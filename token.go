package gocalc

import (
	"fmt"
)

type Kind int

const (
	End Kind = iota
	Integer
	Plus
	Minus
	Mul
	Div
)

func (k Kind) String() string {
	switch k {
	case End:
		return "END"
	case Integer:
		return "INTEGER"
	case Plus:
		return "PLUS"
	case Minus:
		return "MINUS"
	case Mul:
		return "MUL"
	case Div:
		return "DIV"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexical unit. Value is only set for Integer tokens.
type Token struct {
	Kind  Kind
	Value int64
	Pos   int
}

func (t Token) String() string {
	if t.Kind == Integer {
		return fmt.Sprintf("Token(%v, %d)", t.Kind, t.Value)
	}
	return fmt.Sprintf("Token(%v)", t.Kind)
}
