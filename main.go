package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"
	"github.com/mcncl/jsonfmt/internal/config"
	"github.com/mcncl/jsonfmt/internal/errors"
	"github.com/mcncl/jsonfmt/internal/parser"
	"github.com/mcncl/jsonfmt/internal/printer"
	"github.com/mcncl/jsonfmt/internal/transform"
	"github.com/mcncl/jsonfmt/internal/value"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Write       bool   `help:"Rewrite the input file in place. Requires -i." short:"w"`
	Check       bool   `help:"Exit non-zero when the input is not already in canonical form." short:"c"`
	RenameKeys  string `help:"Rewrite object keys to a naming style: snake, camel, pascal, kebab or screaming." short:"k"`
	Config      string `help:"Path to a config file. If not specified, searches for .jsonfmt.yml upwards from the working directory." type:"path"`
	Debug       bool   `help:"Dump the parsed tree to stderr." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug bool
	Cfg   *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	cliParser := kong.Must(&CLI,
		kong.Name("jsonfmt"),
		kong.Description("A formatter for a permissive JSON dialect"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	// Parse the command line arguments
	_, err := cliParser.Parse(os.Args[1:])
	if err != nil {
		// If there's an error parsing arguments, the usage will already be shown by kong.UsageOnError()
		os.Exit(1)
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("jsonfmt version %s\n", Version)
		return
	}

	cfg, err := config.LoadConfigWithCLI(CLI.Config, CLI.RenameKeys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	err = run(&Context{Debug: CLI.Debug, Cfg: cfg})
	if err != nil {
		// Use our custom error handling to provide user-friendly error messages
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))

		// A check failure is an expected outcome, not a usage problem
		if !stderrors.Is(err, errors.ErrNotCanonical) {
			fmt.Fprintf(os.Stderr, "\nFor help, run: jsonfmt --help\n")
		}

		os.Exit(1)
	}
}

// run executes the main program logic
func run(ctx *Context) error {
	if CLI.Write && CLI.Input == "" {
		return errors.NewInputError("-w requires an input file (-i)", nil)
	}
	if CLI.Write && CLI.Output != "" {
		return errors.NewInputError("-w and -o are mutually exclusive", nil)
	}

	// 1. Read and parse the input
	original, root, err := parseInput()
	if err != nil {
		// Error is already wrapped by parseInput
		return err
	}

	if ctx.Debug {
		fmt.Fprintf(os.Stderr, "Parsed tree:\n%s", spew.Sdump(root))
	}

	// 2. Rewrite object keys when a style is configured
	if ctx.Cfg.RenameKeys != "" {
		renamer, err := transform.NewRenamer(ctx.Cfg.RenameKeys)
		if err != nil {
			return err
		}
		if err := renamer.Apply(root); err != nil {
			return err
		}
	}

	// 3. Render the canonical form
	text := printer.Sprint(root)
	if ctx.Cfg.TrailingNewline {
		text += "\n"
	}

	// 4. Deliver the result
	if CLI.Check {
		return checkCanonical(original, text)
	}
	return writeOutput(text, original, ctx.Cfg)
}

// parseInput reads JSON from file or stdin and returns both the raw
// text and the parsed tree. Check mode and backups need the raw text.
func parseInput() (string, *value.Value, error) {
	if CLI.Input != "" {
		// Parse from file. Unlike parser.ParseFile, an unreadable
		// path is a hard error here: a formatter invoked on a file
		// that does not exist should say so instead of printing null.
		data, err := os.ReadFile(CLI.Input)
		if err != nil {
			if os.IsNotExist(err) {
				return "", nil, errors.NewInputError(
					fmt.Sprintf("file '%s' not found", CLI.Input),
					errors.ErrFileNotFound,
				)
			}
			return "", nil, errors.NewInputError(
				fmt.Sprintf("failed to read file '%s'", CLI.Input),
				err,
			)
		}
		root, err := parser.ParseBytes(data)
		if err != nil {
			return "", nil, err
		}
		return string(data), root, nil
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", nil, errors.NewInputError("failed to access stdin", err)
	}

	// Interactive mode or piped input
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		// No data provided on stdin and not in interactive mode
		return "", nil, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", nil, errors.NewInputError("failed to read from stdin", err)
	}

	if len(jsonData) == 0 {
		return "", nil, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	root, err := parser.ParseBytes(jsonData)
	if err != nil {
		return "", nil, err
	}
	return string(jsonData), root, nil
}

// checkCanonical reports whether the input text already matches its
// canonical rendering.
func checkCanonical(original, formatted string) error {
	if original == formatted {
		return nil
	}
	name := CLI.Input
	if name == "" {
		name = "stdin"
	}
	return errors.NewInputError(
		fmt.Sprintf("%s is not in canonical form", name),
		errors.ErrNotCanonical,
	)
}

// writeOutput writes the formatted text to stdout, to -o, or back
// over the input file for -w
func writeOutput(text, original string, cfg *config.Config) error {
	if CLI.Write {
		if cfg.Backup {
			backupPath := CLI.Input + ".orig"
			if err := os.WriteFile(backupPath, []byte(original), 0644); err != nil {
				return errors.NewOutputError(fmt.Sprintf("failed to write backup '%s'", backupPath), err)
			}
		}
		if err := os.WriteFile(CLI.Input, []byte(text), 0644); err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Input), err)
		}
		fmt.Fprintf(os.Stderr, "Rewrote %s\n", CLI.Input)
		return nil
	}

	if CLI.Output != "" {
		// Write to file
		err := os.WriteFile(CLI.Output, []byte(text), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Formatted JSON written to %s\n", CLI.Output)
		return nil
	}

	// Write to stdout
	if _, err := fmt.Print(text); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (string, *value.Value, error) {
	fmt.Fprintln(os.Stderr, "jsonfmt Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	// Read all input until EOF (Ctrl+D)
	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		jsonBuilder.WriteString(line)
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", nil, errors.NewInputError("error reading input", err)
		}
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return "", nil, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	root, err := parser.ParseString(jsonData)
	if err != nil {
		return "", nil, err
	}
	return jsonData, root, nil
}
