// Command confindent is a small toolbox for confindent configuration files.
//
// Usage:
//
//	confindent fmt [-w] [-d] [file]    canonicalize a file (tabs, two fields per line)
//	confindent get [file] <dotted.path>  print the value at a dotted key path
//	confindent yaml [file]             convert a file to YAML
//
// Commands read standard input when no file is given.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "fmt":
		err = runFmt(os.Args[2:])
	case "get":
		err = runGet(os.Args[2:])
	case "yaml":
		err = runYAML(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "confindent:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  confindent fmt [-w] [-d] [file]
  confindent get [file] <dotted.path>
  confindent yaml [file]`)
}

// readInput reads the named file, or standard input when path is empty.
func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
