// Command sheetctl is an interactive shell over a single in-process sheet.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/kalexmills/cellgraph/internal"
)

const (
	prompt = "sheet> "
	banner = "cellgraph shell. Commands: set <ref> <text> | get <ref> | clear <ref> | print | texts | :help | :quit\n"
)

func main() {
	run(os.Stdin, os.Stdout)
}

func run(in io.Reader, out io.Writer) {
	sheet := internal.NewSheet()
	fmt.Fprint(out, banner)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == ":quit" || line == ":q" {
			return
		}
		if line == ":help" {
			fmt.Fprint(out, banner)
			continue
		}
		if err := dispatch(sheet, out, line); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

func dispatch(sheet *internal.Sheet, out io.Writer, line string) error {
	fields := strings.SplitN(line, " ", 3)
	switch fields[0] {
	case "set":
		if len(fields) < 3 {
			return fmt.Errorf("usage: set <ref> <text>")
		}
		pos, err := internal.ParsePosition(fields[1])
		if err != nil {
			return err
		}
		return sheet.SetCell(pos, fields[2])
	case "clear":
		if len(fields) < 2 {
			return fmt.Errorf("usage: clear <ref>")
		}
		pos, err := internal.ParsePosition(fields[1])
		if err != nil {
			return err
		}
		return sheet.ClearCell(pos)
	case "get":
		if len(fields) < 2 {
			return fmt.Errorf("usage: get <ref>")
		}
		pos, err := internal.ParsePosition(fields[1])
		if err != nil {
			return err
		}
		cell, err := sheet.GetCell(pos)
		if err != nil {
			return err
		}
		if cell == nil {
			fmt.Fprintln(out, "(empty)")
			return nil
		}
		fmt.Fprintf(out, "text:  %s\nvalue: %v\nrefs:  %s\n", cell.GetText(), cell.GetValue(), joinPositions(cell.GetReferencedCells()))
		return nil
	case "print":
		return printGrid(sheet, out)
	case "texts":
		return sheet.PrintTexts(out)
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}

// printGrid renders the printable box, truncating each row with an ellipsis
// so it fits within the detected terminal width when stdout is a TTY.
func printGrid(sheet *internal.Sheet, out io.Writer) error {
	width := 0
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil {
			width = w
		}
	}

	var buf strings.Builder
	if err := sheet.PrintValues(&buf); err != nil {
		return err
	}
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		if width > 0 && len(line) > width {
			line = line[:width-1] + "…"
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

func joinPositions(positions []internal.Position) string {
	if len(positions) == 0 {
		return "(none)"
	}
	labels := make([]string, len(positions))
	for i, p := range positions {
		labels[i] = p.String()
	}
	return strings.Join(labels, ", ")
}
