// SPDX-License-Identifier: MIT

package costmatrix

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes m as a single flow sequence of Area integers.
func (m *Dense) MarshalYAML() (interface{}, error) {
	seq := &yaml.Node{
		Kind:    yaml.SequenceNode,
		Tag:     "!!seq",
		Style:   yaml.FlowStyle,
		Content: make([]*yaml.Node, 0, Area),
	}
	for _, v := range m.bits {
		seq.Content = append(seq.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.Itoa(int(v)),
		})
	}

	return seq, nil
}

// UnmarshalYAML decodes a sequence of exactly Area integers in 0..255.
// On any error m is left unchanged.
func (m *Dense) UnmarshalYAML(value *yaml.Node) error {
	var vals []int
	if err := value.Decode(&vals); err != nil {
		return fmt.Errorf("Dense.UnmarshalYAML: %w", err)
	}
	if len(vals) != Area {
		return lengthErrorf("Dense.UnmarshalYAML", len(vals))
	}
	var bits [Area]uint8
	for i, v := range vals {
		b, err := toCost(v)
		if err != nil {
			return fmt.Errorf("Dense.UnmarshalYAML: index %d: %w", i, err)
		}
		bits[i] = b
	}
	m.bits = bits

	return nil
}

// MarshalYAML encodes s as a mapping of quoted "x,y" keys in index order.
func (s *Sparse) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for c, v := range s.Sorted() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: c.String()},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(int(v))},
		)
	}

	return node, nil
}

// UnmarshalYAML decodes a mapping keyed by "x,y". Any key outside the room
// fails the whole decode with ErrInvalidCoordinate; s is left unchanged.
func (s *Sparse) UnmarshalYAML(value *yaml.Node) error {
	var obj map[string]int
	if err := value.Decode(&obj); err != nil {
		return fmt.Errorf("Sparse.UnmarshalYAML: %w", err)
	}
	entries, err := entriesFromKeyed(obj)
	if err != nil {
		return fmt.Errorf("Sparse.UnmarshalYAML: %w", err)
	}
	s.entries = entries

	return nil
}
