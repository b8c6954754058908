package gocalc

import (
	"fmt"
	"sort"
	"strings"
)

// Operator binds an input character to a token kind and the function that
// folds two operands.
type Operator struct {
	Char  byte
	Kind  Kind
	Apply func(a, b int64) (int64, error)
}

// Grammar is a single group of left-associative binary operators.
type Grammar struct {
	Name string
	ops  map[byte]Operator
	byK  map[Kind]Operator
}

var (
	opPlus = Operator{Char: '+', Kind: Plus, Apply: func(a, b int64) (int64, error) {
		return a + b, nil
	}}
	opMinus = Operator{Char: '-', Kind: Minus, Apply: func(a, b int64) (int64, error) {
		return a - b, nil
	}}
	opMul = Operator{Char: '*', Kind: Mul, Apply: func(a, b int64) (int64, error) {
		return a * b, nil
	}}
	opDiv = Operator{Char: '/', Kind: Div, Apply: func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	}}
)

var (
	Multiplicative = NewGrammar("multiplicative", opMul, opDiv)
	Additive       = NewGrammar("additive", opPlus, opMinus)
	Flat           = NewGrammar("flat", opPlus, opMinus, opMul, opDiv)
)

var grammars = map[string]*Grammar{
	"mul":            Multiplicative,
	"multiplicative": Multiplicative,
	"add":            Additive,
	"additive":       Additive,
	"flat":           Flat,
}

func NewGrammar(name string, ops ...Operator) *Grammar {
	g := &Grammar{
		Name: name,
		ops:  make(map[byte]Operator),
		byK:  make(map[Kind]Operator),
	}
	for _, op := range ops {
		g.ops[op.Char] = op
		g.byK[op.Kind] = op
	}
	return g
}

// LookupGrammar resolves a grammar by name or short alias.
func LookupGrammar(name string) (*Grammar, error) {
	g, ok := grammars[strings.ToLower(name)]
	if !ok {
		names := make([]string, 0, len(grammars))
		for k := range grammars {
			names = append(names, k)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown grammar: %q (want one of %s)", name, strings.Join(names, ", "))
	}
	return g, nil
}

func (g *Grammar) Operator(c byte) (Operator, bool) {
	op, ok := g.ops[c]
	return op, ok
}

func (g *Grammar) Accepts(k Kind) bool {
	_, ok := g.byK[k]
	return ok
}

func (g *Grammar) String() string {
	return g.Name
}

func (g *Grammar) apply(k Kind, a, b int64) (int64, error) {
	op, ok := g.byK[k]
	if !ok {
		return 0, fmt.Errorf("operator %v not in grammar %s", k, g.Name)
	}
	return op.Apply(a, b)
}
