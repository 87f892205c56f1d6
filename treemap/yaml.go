// SPDX-License-Identifier: MIT

package treemap

import (
	"fmt"

	"github.com/katalvlaran/minkowski/bincode"
	"gopkg.in/yaml.v3"
)

// Field names of the list form.
const (
	fieldSource = "source"
	fieldTarget = "target"
)

// UnmarshalYAML decodes a dictionary from either of two forms.
//
// Mapping form, rule order = document order:
//
//	"00": "0"
//	"01": "10"
//	"1": "11"
//
// List form:
//
//	[{source: "00", target: "0"}, {source: "01", target: "10"}]
//
// Prefixes are taken from the scalar text, so unquoted keys such as 00
// keep their leading zeros. Digits are checked here; code properties are
// left to Validate.
func (d *Dictionary) UnmarshalYAML(value *yaml.Node) error {
	var out Dictionary
	switch value.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(value.Content); i += 2 {
			r, err := ruleFromScalars(value.Content[i], value.Content[i+1])
			if err != nil {
				return err
			}
			out = append(out, r)
		}
	case yaml.SequenceNode:
		for _, item := range value.Content {
			r, err := ruleFromMapping(item)
			if err != nil {
				return err
			}
			out = append(out, r)
		}
	default:
		return fmt.Errorf("%w: line %d: expected mapping or sequence", ErrMalformedDictionary, value.Line)
	}
	*d = out

	return nil
}

// ruleFromMapping reads one {source, target} item of the list form.
func ruleFromMapping(item *yaml.Node) (Rule, error) {
	if item.Kind != yaml.MappingNode {
		return Rule{}, fmt.Errorf("%w: line %d: rule must be a mapping", ErrMalformedDictionary, item.Line)
	}
	var src, tgt *yaml.Node
	for i := 0; i+1 < len(item.Content); i += 2 {
		switch item.Content[i].Value {
		case fieldSource:
			src = item.Content[i+1]
		case fieldTarget:
			tgt = item.Content[i+1]
		default:
			return Rule{}, fmt.Errorf("%w: line %d: unknown field %q", ErrMalformedDictionary, item.Content[i].Line, item.Content[i].Value)
		}
	}
	if src == nil || tgt == nil {
		return Rule{}, fmt.Errorf("%w: line %d: rule needs source and target", ErrMalformedDictionary, item.Line)
	}

	return ruleFromScalars(src, tgt)
}

// ruleFromScalars parses a (source, target) pair of scalar nodes.
func ruleFromScalars(src, tgt *yaml.Node) (Rule, error) {
	if src.Kind != yaml.ScalarNode || tgt.Kind != yaml.ScalarNode {
		return Rule{}, fmt.Errorf("%w: line %d: prefixes must be scalars", ErrMalformedDictionary, src.Line)
	}
	s, err := bincode.ParseBits(src.Value)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: line %d: %w", ErrInvalidPrefix, src.Line, err)
	}
	t, err := bincode.ParseBits(tgt.Value)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: line %d: %w", ErrInvalidPrefix, tgt.Line, err)
	}

	return Rule{Source: s, Target: t}, nil
}

// MarshalYAML encodes the dictionary in list form.
func (d Dictionary) MarshalYAML() (interface{}, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, r := range d {
		seq.Content = append(seq.Content, &yaml.Node{
			Kind:  yaml.MappingNode,
			Style: yaml.FlowStyle,
			Content: []*yaml.Node{
				{Kind: yaml.ScalarNode, Value: fieldSource},
				{Kind: yaml.ScalarNode, Value: string(r.Source), Style: yaml.DoubleQuotedStyle},
				{Kind: yaml.ScalarNode, Value: fieldTarget},
				{Kind: yaml.ScalarNode, Value: string(r.Target), Style: yaml.DoubleQuotedStyle},
			},
		})
	}

	return seq, nil
}
