package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"
	"github.com/mcncl/jtree/internal/config"
	"github.com/mcncl/jtree/internal/errors"
	"github.com/mcncl/jtree/internal/inspect"
	"github.com/mcncl/jtree/internal/parser"
	"github.com/mcncl/jtree/internal/printer"
	"github.com/mcncl/jtree/internal/scanner"
	"github.com/mcncl/jtree/internal/token"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Tokens      bool   `help:"Print the token stream instead of the parsed tree." short:"t"`
	Stats       bool   `help:"Print a summary of the parsed tree instead of reprinting it." short:"s"`
	Indent      int    `help:"Spaces per nesting level in reprinted output; 0 for compact." default:"-1"`
	KeyCase     string `help:"Rewrite object keys: camel, pascal, snake or kebab." short:"k"`
	Config      string `help:"Path to a config file. Defaults to the nearest .jtree.yml." short:"c" type:"path"`
	Debug       bool   `help:"Enable debug output." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug bool
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	cliParser := kong.Must(&CLI,
		kong.Name("jtree"),
		kong.Description("A JSON reader that preserves number literals and key order"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	_, err := cliParser.Parse(os.Args[1:])
	if err != nil {
		// If there's an error parsing arguments, the usage will already be shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jtree version %s\n", Version)
		return
	}

	err = run(&Context{Debug: CLI.Debug})
	if err != nil {
		// Use our custom error handling to provide user-friendly error messages
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))

		// Show help on error
		fmt.Fprintf(os.Stderr, "\nFor help, run: jtree --help\n")

		os.Exit(1)
	}
}

// run executes the main program logic
func run(ctx *Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// 1. Read the JSON input
	text, err := readInput()
	if err != nil {
		// Error is already wrapped by readInput
		return err
	}

	// 2. Token mode stops at the scanner
	if CLI.Tokens {
		out, err := renderTokens(text)
		if err != nil {
			return err
		}
		return writeOutput(out)
	}

	// 3. Build the value tree
	var opts []parser.Option
	if cfg.Parsing.MaxDepth > 0 {
		opts = append(opts, parser.WithMaxDepth(cfg.Parsing.MaxDepth))
	}
	tree, err := parser.ParseString(text, opts...)
	if err != nil {
		return err
	}

	if ctx.Debug {
		fmt.Fprint(os.Stderr, spew.Sdump(tree))
	}

	// 4. Report or reprint
	if CLI.Stats {
		return writeOutput(inspect.Inspect(tree).Summary())
	}

	pr, err := printer.NewPrinter(printer.Options{
		Indent:  cfg.Output.Indent,
		KeyCase: printer.KeyCase(cfg.Output.KeyCase),
	})
	if err != nil {
		return err
	}
	return writeOutput(pr.Print(tree))
}

// loadConfig resolves the effective configuration: defaults, then the config
// file, then explicit CLI flags
func loadConfig() (*config.Config, error) {
	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}

	cfg := config.NewConfig()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, errors.NewInputError("failed to load config", err)
		}
		cfg = loaded
	}

	if CLI.Indent >= 0 {
		cfg.Output.Indent = CLI.Indent
	}
	if CLI.KeyCase != "" {
		cfg.Output.KeyCase = CLI.KeyCase
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.NewInputError("invalid configuration", err)
	}
	return cfg, nil
}

// renderTokens scans text and prints one token per line
func renderTokens(text string) (string, error) {
	sc := scanner.New(text)
	var sb strings.Builder
	for {
		tk, err := sc.Next()
		if err != nil {
			return "", err
		}
		if tk.Kind == token.EOF {
			break
		}
		sb.WriteString(tk.String())
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// readInput reads JSON text from file or stdin
func readInput() (string, error) {
	if CLI.Input != "" {
		data, err := os.ReadFile(CLI.Input)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.NewInputError(
					fmt.Sprintf("file '%s' not found", CLI.Input),
					errors.ErrFileNotFound,
				)
			}
			return "", errors.NewInputError(
				fmt.Sprintf("failed to read file '%s'", CLI.Input), err,
			)
		}
		if len(data) == 0 {
			return "", errors.NewInputError(
				fmt.Sprintf("input file '%s' is empty", CLI.Input),
				errors.ErrFileEmpty,
			)
		}
		return string(data), nil
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}

	// Interactive mode or piped input
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		// No data provided on stdin and not in interactive mode
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}

	if len(jsonData) == 0 {
		return "", errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return string(jsonData), nil
}

// writeOutput writes text to file or stdout
func writeOutput(out string) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, []byte(out), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Output written to %s\n", CLI.Output)
		return nil
	}

	_, err := fmt.Println(strings.TrimSuffix(out, "\n"))
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (string, error) {
	fmt.Fprintln(os.Stderr, "jtree Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	// Read all input until EOF (Ctrl+D)
	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			jsonBuilder.WriteString(line)
			break
		}
		if err != nil {
			return "", errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return "", errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return jsonData, nil
}
