package main

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/confindent/go-confindent"
)

func runYAML(args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	data, err := readInput(path)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(yamlValue(confindent.Parse(data)))
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

// yamlValue maps a node's children to an order-preserving YAML mapping. A
// section that has both a value and children keeps its value under the
// reserved key ".", since YAML mappings cannot carry a scalar of their own.
func yamlValue(p confindent.Parent) any {
	m := yaml.MapSlice{}
	for sec := range p.Children() {
		var v any
		switch {
		case sec.Len() > 0:
			child := yamlValue(sec).(yaml.MapSlice)
			if sec.HasValue() {
				child = append(yaml.MapSlice{{Key: ".", Value: sec.Value().String()}}, child...)
			}
			v = child
		case sec.HasValue():
			v = sec.Value().String()
		default:
			v = nil
		}
		m = append(m, yaml.MapItem{Key: sec.Key(), Value: v})
	}
	return m
}
