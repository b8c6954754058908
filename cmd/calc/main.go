package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mattn/gocalc"
)

var (
	grammar   = flag.String("g", "multiplicative", "grammar: multiplicative (mul), additive (add) or flat")
	keepGoing = flag.Bool("k", false, "report errors and continue with the next line")
	trace     = flag.Bool("trace", false, "dump tokens to stderr")
	selftest  = flag.Bool("selftest", false, "run the bundled cases and exit")
)

func runSelftest(w io.Writer) int {
	cases, err := gocalc.LoadCases()
	if err != nil {
		log.Fatal(err)
	}
	failed := 0
	for _, c := range cases {
		if err := c.Check(); err != nil {
			fmt.Fprintln(w, err)
			failed++
		}
	}
	fmt.Fprintf(w, "%d cases, %d failed\n", len(cases), failed)
	if failed > 0 {
		return 1
	}
	return 0
}

func main() {
	flag.Parse()

	if *selftest {
		os.Exit(runSelftest(os.Stdout))
	}

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	g, err := gocalc.LookupGrammar(*grammar)
	if err != nil {
		log.Fatal(err)
	}
	repl := &gocalc.REPL{
		Grammar:   g,
		KeepGoing: *keepGoing,
	}
	if *trace {
		repl.Trace = os.Stderr
	}

	var f *os.File
	if flag.NArg() == 0 {
		f = os.Stdin
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			repl.Prompt = gocalc.Prompt
		}
	} else {
		f, err = os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	if err := repl.Run(f, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}
