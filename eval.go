package gocalc

import (
	"errors"
)

// Evaluator folds the tokens of one line into a single value. It holds at
// most one token of lookahead.
type Evaluator struct {
	lexer  *Lexer
	peeked *Token
}

func NewEvaluator(lexer *Lexer) *Evaluator {
	return &Evaluator{
		lexer: lexer,
	}
}

// Eval evaluates text with a fresh lexer and evaluator.
func Eval(g *Grammar, text string) (int64, error) {
	return NewEvaluator(NewLexer(g, text)).Expr()
}

func (e *Evaluator) peek() (Token, error) {
	if e.peeked == nil {
		tok, err := e.lexer.NextToken()
		if err != nil {
			return Token{}, err
		}
		e.peeked = &tok
	}
	return *e.peeked, nil
}

func (e *Evaluator) eat(kind Kind) (Token, error) {
	tok, err := e.peek()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, &Error{Kind: InvalidSyntax, Pos: tok.Pos, Want: kind, Got: tok}
	}
	e.peeked = nil
	return tok, nil
}

func (e *Evaluator) factor() (int64, error) {
	tok, err := e.eat(Integer)
	if err != nil {
		return 0, err
	}
	return tok.Value, nil
}

// Expr evaluates the whole line, left to right. Anything other than an
// operator of the grammar after a factor must be the end of input.
func (e *Evaluator) Expr() (int64, error) {
	result, err := e.factor()
	if err != nil {
		return 0, err
	}

	for {
		tok, err := e.peek()
		if err != nil {
			return 0, err
		}
		if !e.lexer.g.Accepts(tok.Kind) {
			break
		}
		if _, err = e.eat(tok.Kind); err != nil {
			return 0, err
		}
		right, err := e.peek()
		if err != nil {
			return 0, err
		}
		v, err := e.factor()
		if err != nil {
			return 0, err
		}
		result, err = e.lexer.g.apply(tok.Kind, result, v)
		if err != nil {
			if errors.Is(err, ErrDivisionByZero) {
				return 0, &Error{Kind: DivisionByZero, Pos: right.Pos}
			}
			return 0, err
		}
	}

	if _, err = e.eat(End); err != nil {
		return 0, err
	}
	return result, nil
}
