// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

package samples

import (
	"strconv"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a single YAML document into a Value tree.
// Decoding goes through yaml.Node so mapping keys keep their source order.
func ParseYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Value{}, errors.Errorf("parsing sample YAML: %w", err)
	}
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return Value{Kind: NullValue}, nil
		}
		return nodeValue(doc.Content[0])
	}
	return nodeValue(&doc)
}

func nodeValue(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.MappingNode:
		obj := Value{Kind: ObjectValue}
		for i := 0; i+1 < len(n.Content); i += 2 {
			val, err := nodeValue(n.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			obj.Members = append(obj.Members, Member{Key: n.Content[i].Value, Value: val})
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := Value{Kind: ArrayValue}
		for _, item := range n.Content {
			v, err := nodeValue(item)
			if err != nil {
				return Value{}, err
			}
			arr.Items = append(arr.Items, v)
		}
		return arr, nil
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.ScalarNode:
		return scalarValue(n), nil
	default:
		return Value{}, errors.Errorf("unsupported YAML node kind %d", n.Kind)
	}
}

func scalarValue(n *yaml.Node) Value {
	switch n.Tag {
	case "!!null":
		return Value{Kind: NullValue}
	case "!!bool":
		b, _ := strconv.ParseBool(n.Value)
		return Value{Kind: BoolValue, Bool: b}
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 10, 64)
		if err != nil {
			f, _ := strconv.ParseFloat(n.Value, 64)
			return Value{Kind: DoubleValue, Float: f}
		}
		return Value{Kind: IntegerValue, Int: i}
	case "!!float":
		f, _ := strconv.ParseFloat(n.Value, 64)
		return Value{Kind: DoubleValue, Float: f}
	default:
		return Value{Kind: StringValue, Str: n.Value}
	}
}
