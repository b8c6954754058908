package gocalc

import (
	"bufio"
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/gocalc/statik"
)

//go:generate statik -src=cases

// Case is one bundled input line and the outcome it must produce.
type Case struct {
	File    string
	Line    int
	Grammar *Grammar
	Input   string
	Want    int64
	WantErr error
}

func (c Case) String() string {
	return fmt.Sprintf("%s:%d: %q", c.File, c.Line, c.Input)
}

// Check evaluates the case and reports any difference from the expected
// outcome.
func (c Case) Check() error {
	got, err := Eval(c.Grammar, c.Input)
	if c.WantErr != nil {
		if !errors.Is(err, c.WantErr) {
			return fmt.Errorf("%v: want error %v, got %d, %v", c, c.WantErr, got, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("%v: %v", c, err)
	}
	if got != c.Want {
		return fmt.Errorf("%v: want %d, got %d", c, c.Want, got)
	}
	return nil
}

// LoadCases reads every bundled case file. The base name of a file
// selects its grammar.
func LoadCases() ([]Case, error) {
	statikFS, err := fs.New()
	if err != nil {
		return nil, err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return nil, err
	}
	var cases []Case
	for _, fi := range fis {
		name := fi.Name()
		g, err := LookupGrammar(strings.TrimSuffix(name, path.Ext(name)))
		if err != nil {
			return nil, err
		}
		f, err := statikFS.Open(path.Join("/", name))
		if err != nil {
			return nil, err
		}
		cs, err := parseCases(name, g, bufio.NewScanner(f))
		f.Close()
		if err != nil {
			return nil, err
		}
		cases = append(cases, cs...)
	}
	return cases, nil
}

var errorNames = map[string]error{
	ErrInvalidCharacter.Error(): ErrInvalidCharacter,
	ErrInvalidSyntax.Error():    ErrInvalidSyntax,
	ErrDivisionByZero.Error():   ErrDivisionByZero,
}

func parseCases(name string, g *Grammar, scanner *bufio.Scanner) ([]Case, error) {
	var cases []Case
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		i := strings.LastIndex(line, "=>")
		if i < 0 {
			return nil, fmt.Errorf("%s:%d: missing =>", name, n)
		}
		c := Case{
			File:    name,
			Line:    n,
			Grammar: g,
			Input:   line[:i],
		}
		want := strings.TrimSpace(line[i+2:])
		if err, ok := errorNames[want]; ok {
			c.WantErr = err
		} else {
			v, err := strconv.ParseInt(want, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad result %q", name, n, want)
			}
			c.Want = v
		}
		cases = append(cases, c)
	}
	return cases, scanner.Err()
}
