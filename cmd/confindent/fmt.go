package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/confindent/go-confindent"
)

func runFmt(args []string) error {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	write := fs.Bool("w", false, "rewrite the file in place instead of printing")
	showDiff := fs.Bool("d", false, "print a diff against the canonical form instead of printing it")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var path string
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	if *write && path == "" {
		return fmt.Errorf("fmt -w requires a file argument")
	}

	data, err := readInput(path)
	if err != nil {
		return err
	}
	canonical := confindent.Parse(data).String() + "\n"

	switch {
	case *showDiff:
		printDiff(string(data), canonical)
	case *write:
		return os.WriteFile(path, []byte(canonical), 0o644)
	default:
		fmt.Print(canonical)
	}
	return nil
}

// printDiff shows how the input differs from its canonical form, colored when
// stdout is a terminal.
func printDiff(from, to string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(from, to, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			fmt.Print(color.RedString("%s", d.Text))
		case diffmatchpatch.DiffInsert:
			fmt.Print(color.GreenString("%s", d.Text))
		case diffmatchpatch.DiffEqual:
			fmt.Print(d.Text)
		}
	}
}
