package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/headeredit"
	"github.com/iw2rmb/headeredit/headers"
)

type (
	// cmd corresponds to the top-level `headeredit` command.
	cmd struct {
		Version struct{} `cmd:"" help:"Show version."`
		Edit    cmdEdit  `cmd:"" default:"withargs" help:"Edit a header list interactively."`
	}
	// cmdEdit corresponds to `headeredit edit`.
	cmdEdit struct {
		Headers    string `help:"YAML file with the initial list of {key, value, checked}." type:"existingfile"`
		ImportHTTP string `name:"import-http" help:"Raw header block of Key: Value lines to start from." type:"existingfile"`
		Out        string `help:"File the edited list is written to on quit. Defaults to stdout." type:"path"`
		Format     string `help:"Output format." enum:"yaml,http" default:"yaml"`
	}
)

// Validate is called by Kong after parsing.
func (c *cmdEdit) Validate() error {
	if c.Headers != "" && c.ImportHTTP != "" {
		return errors.New("headers and import-http are mutually exclusive")
	}
	return nil
}

// runFn runs the interactive editor over rows and returns the edited rows.
type runFn func(ctx context.Context, rows []headers.Row) ([]headers.Row, error)

func main() {
	doMain(context.Background(), os.Stdout, os.Stderr, os.Args[1:], os.Exit, runTUI)
}

// doMain parses args and runs the selected command.
//
//   - stdout receives the edited list when --out is not given. Mainly for testing.
//   - exitFn is called on parse failures, help, and run errors. Mainly for testing.
//   - rf runs the interactive editor. Mainly for testing.
func doMain(ctx context.Context, stdout, stderr io.Writer, args []string, exitFn func(int), rf runFn) {
	var c cmd
	parser, err := kong.New(&c,
		kong.Name("headeredit"),
		kong.Description("Interactive HTTP request header editor."),
		kong.Writers(stdout, stderr),
		kong.Exit(exitFn),
	)
	if err != nil {
		log.Fatalf("Error creating parser: %v", err)
	}
	parsed, err := parser.Parse(args)
	parser.FatalIfErrorf(err)

	switch parsed.Command() {
	case "version":
		_, _ = fmt.Fprintf(stdout, "headeredit: %s\n", headeredit.Version())
	case "edit":
		if err := edit(ctx, stdout, c.Edit, rf); err != nil {
			_, _ = fmt.Fprintf(stderr, "headeredit: %v\n", err)
			exitFn(1)
		}
	default:
		panic("unreachable")
	}
}

func edit(ctx context.Context, stdout io.Writer, c cmdEdit, rf runFn) error {
	var (
		rows []headers.Row
		err  error
	)
	if c.ImportHTTP != "" {
		rows, err = importHTTPRows(c.ImportHTTP)
	} else {
		rows, err = loadRows(c.Headers)
	}
	if err != nil {
		return err
	}

	edited, err := rf(ctx, rows)
	if err != nil {
		return err
	}
	return saveRows(stdout, c.Out, edited, c.Format)
}

func runTUI(ctx context.Context, rows []headers.Row) ([]headers.Row, error) {
	// The edited list may go to stdout, so the UI draws on stderr.
	p := tea.NewProgram(newModel(rows),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
	)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run editor: %w", err)
	}
	return final.(model).rows(), nil
}
