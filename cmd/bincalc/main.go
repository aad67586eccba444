package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/campkeith/bincalc"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s [-v] mode
-v: be verbose, print each computation step
mode: one of the following:
  s8,s16,s32,s64: use 8,16,32,64 bit signed encoding
  u8,u16,u32,u64: use 8,16,32,64 bit unsigned encoding
  f32,f64: use 32 or 64 bit floating-point encoding
`, os.Args[0])
}

func main() {
	log.SetFlags(0)
	verbose := flag.Bool("v", false, "print each computation step")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	enc, ok := bincalc.ParseEncoding(flag.Arg(0))
	if !ok {
		usage()
		os.Exit(2)
	}

	rl, err := readline.New("> ")
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if !errors.Is(err, io.EOF) {
				log.Fatal(err)
			}
			return
		}
		if t := strings.TrimSpace(line); t == "" {
			continue
		} else if t == "exit" {
			return
		}
		report(line, enc, *verbose)
	}
}

// report evaluates one line and prints either its result or the line again
// with a caret at the fault position. Either way the session goes on.
func report(line string, enc bincalc.Encoding, verbose bool) {
	res, err := bincalc.Evaluate(line, enc, verbose)
	if err != nil {
		var f bincalc.Fault
		if errors.As(err, &f) {
			fmt.Fprintf(os.Stderr, "%s\n%s^\n%s\n", line, strings.Repeat(" ", f.Pos()), err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return
	}
	for _, step := range res.Steps {
		fmt.Println(step)
	}
	fmt.Printf("%s (%s)\n", res.Dec, res.Hex)
}
