package request

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"isofields/field"
	"isofields/internal/common"
	"isofields/isoformat"
)

// File is the root of a batch file.
type File struct {
	Version  string    `yaml:"version"`
	Defaults Defaults  `yaml:"defaults,omitempty"`
	Requests []Request `yaml:"requests"`
}

// Defaults apply to every request that does not set its own options.
type Defaults struct {
	Extended *bool `yaml:"extended,omitempty"`
	Strict   *bool `yaml:"strict,omitempty"`
}

// Request asks for either a resolved layout (Fields) or a catalog layout
// (Pattern).
type Request struct {
	Name     string     `yaml:"name"`
	Fields   FieldNames `yaml:"fields,omitempty"`
	Pattern  string     `yaml:"pattern,omitempty"`
	Extended *bool      `yaml:"extended,omitempty"`
	Strict   *bool      `yaml:"strict,omitempty"`
}

// Options layers the request's own settings over d and then over
// isoformat.DefaultOptions.
func (r Request) Options(d Defaults) isoformat.Options {
	opts := isoformat.DefaultOptions()
	opts.Extended = pick(opts.Extended, d.Extended, r.Extended)
	opts.StrictISO = pick(opts.StrictISO, d.Strict, r.Strict)

	return opts
}

// FieldSet parses the requested field names.
func (r Request) FieldSet() (field.Set, error) {
	var set field.Set

	for _, name := range r.Fields {
		t, err := field.Parse(name)
		if err != nil {
			return 0, fmt.Errorf("request %s: %w", r.Name, err)
		}

		set.Add(t)
	}

	return set, nil
}

func pick(def bool, layers ...*bool) bool {
	for _, l := range layers {
		if l != nil {
			def = *l
		}
	}

	return def
}

// FieldNames lists the field names of a request. In YAML it is written as a
// sequence, a comma separated string, or a sequence mixing both:
//
//	fields: [year, monthOfYear]
//	fields: year, weekOfWeekyear
//	fields: ["year, monthOfYear", dayOfMonth]
type FieldNames []string

func (n *FieldNames) UnmarshalYAML(node *yaml.Node) error {
	var items []*yaml.Node

	switch node.Kind {
	case yaml.ScalarNode:
		items = []*yaml.Node{node}
	case yaml.SequenceNode:
		items = node.Content
	default:
		return fmt.Errorf("line %d: fields must be a field name, a comma separated list or a sequence", node.Line)
	}

	names := FieldNames{}

	for _, item := range items {
		if item.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: fields entries must be field names", item.Line)
		}

		for part := range strings.SplitSeq(item.Value, ",") {
			if name := strings.TrimSpace(part); name != "" {
				names = append(names, name)
			}
		}
	}

	*n = names

	return nil
}

func (n FieldNames) IsEmpty() bool {
	return common.IsEmpty(n)
}
