package main

import (
	"fmt"
	"strings"

	"github.com/confindent/go-confindent"
)

func runGet(args []string) error {
	var path, query string
	switch len(args) {
	case 1:
		query = args[0]
	case 2:
		path, query = args[0], args[1]
	default:
		return fmt.Errorf("get requires a dotted key path and optionally a file")
	}
	if query == "" {
		return fmt.Errorf("empty key path")
	}

	data, err := readInput(path)
	if err != nil {
		return err
	}
	doc := confindent.Parse(data)

	sec := (*confindent.Section)(nil)
	parent := confindent.Parent(doc)
	for _, key := range strings.Split(query, ".") {
		sec = parent.Child(key)
		if sec == nil {
			return fmt.Errorf("no section %q in path %q", key, query)
		}
		parent = sec
	}
	if !sec.HasValue() {
		return fmt.Errorf("section %q has no value", query)
	}
	fmt.Println(sec.Value())
	return nil
}
