// bembofmt is an interactive REPL for building and rendering bembo
// documents from a small S-expression mini-language. Type 'help' for
// available commands, 'quit' to exit.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/phroun/bembo"
	"github.com/phroun/bembo/internal/config"
	"github.com/phroun/bembo/internal/sexpr"
)

// REPL holds the state of the interactive session.
type REPL struct {
	reader *bufio.Reader
	width  int
	last   bembo.Doc
	have   bool
}

func main() {
	var (
		envFilePath string
		width       int
		verbose     bool
	)

	flag.StringVar(&envFilePath, "envfile", "", "optional .env file to load defaults from")
	flag.IntVar(&width, "width", 0, "page width override (0 uses the configured default)")
	flag.BoolVar(&verbose, "verbose", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.Parse(&config.Options{EnvFilePath: envFilePath})
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if width > 0 {
		cfg.Width = width
	}
	if verbose {
		cfg.Verbose = true
	}
	if level, lerr := log.ParseLevel(cfg.LogLevel); lerr == nil {
		log.SetLevel(level)
	}
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	fmt.Println("bembofmt - interactive pretty-printer REPL")
	fmt.Println("Type 'help' for available commands, 'quit' to exit")
	fmt.Printf("Page width: %d\n\n", cfg.Width)

	repl := &REPL{
		reader: bufio.NewReader(os.Stdin),
		width:  cfg.Width,
	}

	for {
		fmt.Print("bembo> ")
		input, err := repl.reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !repl.handleCommand(input) {
			break
		}
	}
}

func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	rest := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))

	switch cmd {
	case "help":
		r.printHelp()

	case "quit", "exit":
		fmt.Println("Goodbye!")
		return false

	case "width":
		r.cmdWidth(parts[1:])

	case "doc":
		r.cmdDoc(rest)

	case "render", "pretty":
		r.cmdRender()

	case "dump", "tree":
		r.cmdDump()

	default:
		// Anything that isn't a recognized command is treated as a
		// doc expression, for fast interactive use.
		if strings.HasPrefix(cmd, "(") {
			r.cmdDoc(input)
			return true
		}
		fmt.Printf("Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}

	return true
}

func (r *REPL) printHelp() {
	help := `
Available Commands:
-------------------

  doc <sexpr>     Parse an S-expression into the current document
                   e.g. doc (group (concat "a" (softline) "b"))
  width <n>        Set the page width used by render/pretty
  render, pretty   Render the current document at the current width
  dump, tree       Dump the current document's unresolved node tree
  help             Show this help message
  quit, exit       Exit the REPL

You may also type an expression starting with '(' directly without the
'doc' prefix.

Operators: text STRING, char STRING, nil, line, softline, softbreak,
concat, vcat, nest INT, group, join, sep SEP, angles, braces, brackets,
quotes, dquotes, parens.
`
	fmt.Println(help)
}

func (r *REPL) cmdWidth(args []string) {
	if len(args) < 1 {
		fmt.Printf("Current width: %d\n", r.width)
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Invalid width: %v\n", err)
		return
	}
	r.width = n
	fmt.Printf("Width set to %d\n", r.width)
}

func (r *REPL) cmdDoc(src string) {
	if strings.TrimSpace(src) == "" {
		fmt.Println("Usage: doc <sexpr>")
		return
	}

	d, err := sexpr.Parse(src)
	if err != nil {
		fmt.Println(sexpr.ErrorContext(err))
		return
	}
	r.last = d
	r.have = true
	log.Debugf("parsed document: %s", d.Dump())
	fmt.Println("OK")
}

func (r *REPL) cmdRender() {
	if !r.ensureDoc() {
		return
	}
	fmt.Println(r.last.Pretty(r.width))
}

func (r *REPL) cmdDump() {
	if !r.ensureDoc() {
		return
	}
	fmt.Print(r.last.Dump())
}

func (r *REPL) ensureDoc() bool {
	if !r.have {
		fmt.Println("No document yet. Use 'doc <sexpr>' to build one.")
		return false
	}
	return true
}
