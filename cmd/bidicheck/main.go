// Command bidicheck is the CLI front end for the bidirectional checker,
// grounded on the teacher's cmd/ailang (flag parsing, colored output) and
// cmd/typecheck (demo driver) entry points.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/polylambda/bidi/internal/bidi"
	"github.com/polylambda/bidi/internal/config"
	"github.com/polylambda/bidi/internal/repl"
	"github.com/polylambda/bidi/internal/surface"
	"github.com/polylambda/bidi/internal/synx"
)

var (
	// Version is set by ldflags during build.
	Version = "dev"

	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		versionFlag = flag.Bool("version", false, "Print version information")
		helpFlag    = flag.Bool("help", false, "Show help")
		traceFlag   = flag.Bool("trace", false, "Enable advisory rule tracing")
	)
	flag.Parse()

	if *versionFlag {
		printVersion()
		return
	}
	if *helpFlag || flag.NArg() == 0 {
		printHelp()
		return
	}

	switch flag.Arg(0) {
	case "check":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing file argument\n", red("error"))
			fmt.Println("Usage: bidicheck check <file>")
			os.Exit(1)
		}
		checkFile(flag.Arg(1), *traceFlag)

	case "repl":
		repl.NewWithConfig(&repl.Config{Trace: *traceFlag}).Start(os.Stdout)

	case "examples":
		path := "internal/config/testdata/examples.yaml"
		if flag.NArg() >= 2 {
			path = flag.Arg(1)
		}
		runExamples(path)

	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("error"), flag.Arg(0))
		printHelp()
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("bidicheck %s\n", bold(Version))
}

func printHelp() {
	fmt.Println(bold("bidicheck - a bidirectional higher-rank type checker"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  bidicheck <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  check <file>      Typecheck a single surface-notation file")
	fmt.Println("  repl              Start an interactive read-typecheck-print loop")
	fmt.Println("  examples [file]   Typecheck a YAML fixture of named examples")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}

func checkFile(path string, trace bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
		os.Exit(1)
	}

	term, err := surface.Parse(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("parse error"), err)
		os.Exit(1)
	}

	var tracer *os.File
	if trace {
		tracer = os.Stderr
	}
	var elaborated synx.Term
	var typeErr *bidi.Error
	if tracer != nil {
		elaborated, typeErr = bidi.InferExpressionTraced(term, tracer)
	} else {
		elaborated, typeErr = bidi.InferExpression(term)
	}
	if typeErr != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", red("type error"), typeErr.Error())
		os.Exit(1)
	}

	fmt.Printf("%s : %s\n", elaborated.String(), green(synx.TypeOf(elaborated).String()))
}

func runExamples(path string) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
		os.Exit(1)
	}
	defer f.Close()

	examples, err := config.LoadExamples(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
		os.Exit(1)
	}

	passed := 0
	for _, ex := range examples {
		term, perr := surface.Parse(ex.Source)
		if perr != nil {
			fmt.Printf("%s %s: parse error: %v\n", red("FAIL"), ex.Name, perr)
			continue
		}
		elaborated, typeErr := bidi.InferExpression(term)
		switch {
		case ex.ExpectFail && typeErr == nil:
			fmt.Printf("%s %s: expected a type error, got %s\n", red("FAIL"), ex.Name, synx.TypeOf(elaborated).String())
		case ex.ExpectFail && typeErr != nil:
			fmt.Printf("%s %s: %s\n", green("PASS"), ex.Name, typeErr.Error())
			passed++
		case !ex.ExpectFail && typeErr != nil:
			fmt.Printf("%s %s: %s\n", red("FAIL"), ex.Name, typeErr.Error())
		default:
			fmt.Printf("%s %s : %s\n", green("PASS"), ex.Name, synx.TypeOf(elaborated).String())
			passed++
		}
	}
	fmt.Printf("\n%d/%d examples passed\n", passed, len(examples))
	if passed != len(examples) {
		os.Exit(1)
	}
}
