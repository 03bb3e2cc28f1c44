// Command fsmc compiles regular expressions to automata and prints them.
//
//	fsmc [-postfix] [-stage nfa|dfa|min] [-format table|dot] [-test s1,s2] [-v] expr...
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"

	automaton "github.com/geange/go-automaton"
	"github.com/geange/go-automaton/internal/batch"
	"github.com/geange/go-automaton/render"
)

func main() {
	postfix := flag.Bool("postfix", false, "read expressions as postfix tokens, e.g. ab|*a.b.b.")
	stage := flag.String("stage", "min", "automaton to print: nfa, dfa or min")
	format := flag.String("format", "table", "output format: table or dot")
	tests := flag.String("test", "", "comma-separated strings to run against the minimal DFA")
	workLimit := flag.Int("limit", 0, "maximum number of DFA states, 0 for no limit")
	verbose := flag.Bool("v", false, "log pipeline stages")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	switch {
	case *stage != "nfa" && *stage != "dfa" && *stage != "min":
		fmt.Fprintf(os.Stderr, "unknown stage %q\n", *stage)
		os.Exit(2)
	case *format != "table" && *format != "dot":
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *format)
		os.Exit(2)
	}

	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	zlog := zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	if *verbose {
		zerologr.SetMaxV(1)
		zlog = zlog.Level(zerolog.DebugLevel)
	}
	log := zerologr.New(&zlog).WithName("fsmc")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := batch.Compile(ctx, flag.Args(),
		batch.WithPostfix(*postfix),
		batch.WithLogr(log),
		batch.WithPipelineOptions(automaton.WithDeterminizeWorkLimit(*workLimit)),
	)

	var inputs []string
	if *tests != "" {
		inputs = strings.Split(*tests, ",")
	}

	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if err := printResult(os.Stdout, r, *stage, *format, inputs); err != nil {
			log.Error(err, "cannot print automaton", "expr", r.Expr)
			os.Exit(1)
		}
	}

	if err != nil {
		os.Exit(1)
	}
}

func printResult(w io.Writer, r batch.Result, stage, format string, inputs []string) error {
	fmt.Fprintf(w, "# %s\n", r.Expr)

	var err error
	switch stage + "/" + format {
	case "nfa/table":
		err = render.NFATable(w, r.Automata.NFA)
	case "nfa/dot":
		err = render.NFADot(w, r.Automata.NFA)
	case "dfa/table":
		err = render.DFATable(w, r.Automata.DFA)
	case "dfa/dot":
		err = render.DFADot(w, r.Automata.DFA)
	case "min/table":
		err = render.DFATable(w, r.Automata.Minimal)
	case "min/dot":
		err = render.DFADot(w, r.Automata.Minimal)
	default:
		return fmt.Errorf("unknown stage %q or format %q", stage, format)
	}
	if err != nil {
		return err
	}

	for _, in := range inputs {
		verdict := "reject"
		if automaton.Run(r.Automata.Minimal, in) {
			verdict = "accept"
		}
		fmt.Fprintf(w, "%q\t%s\n", in, verdict)
	}
	return nil
}
