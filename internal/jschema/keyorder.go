// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

package jschema

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// ExtractKeyOrderFromJSON walks the raw token stream and records, for every
// "properties" object, its keys in source order. The schema model itself
// stores properties in a map, so this is the only place the original order
// survives.
func ExtractKeyOrderFromJSON(data []byte) (map[string][]string, error) {
	result := make(map[string][]string)

	var extract func(dec *json.Decoder, path string) error
	extract = func(dec *json.Decoder, path string) error {
		token, err := dec.Token()
		if err != nil {
			return err
		}
		t, ok := token.(json.Delim)
		if !ok {
			return nil
		}
		switch t {
		case '{':
			var keys []string
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return err
				}
				key, ok := keyToken.(string)
				if !ok {
					continue
				}
				keys = append(keys, key)

				newPath := key
				if path != "" {
					newPath = path + "." + key
				}
				if err := extract(dec, newPath); err != nil {
					return err
				}
			}
			if _, err := dec.Token(); err != nil {
				return err
			}
			if path == "properties" || strings.HasSuffix(path, ".properties") {
				result[path] = keys
			}
		case '[':
			for dec.More() {
				if err := extract(dec, path); err != nil {
					return err
				}
			}
			if _, err := dec.Token(); err != nil {
				return err
			}
		}
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := extract(dec, ""); err != nil {
		return nil, errors.Errorf("extracting key order: %w", err)
	}
	return result, nil
}

// ExtractKeyOrderFromYAML does the same for YAML sources, walking the
// yaml.Node tree instead of a token stream.
func ExtractKeyOrderFromYAML(data []byte) (map[string][]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Errorf("extracting key order: %w", err)
	}

	result := make(map[string][]string)
	var walk func(n *yaml.Node, path string)
	walk = func(n *yaml.Node, path string) {
		switch n.Kind {
		case yaml.DocumentNode:
			for _, c := range n.Content {
				walk(c, path)
			}
		case yaml.MappingNode:
			var keys []string
			for i := 0; i+1 < len(n.Content); i += 2 {
				key := n.Content[i].Value
				keys = append(keys, key)

				newPath := key
				if path != "" {
					newPath = path + "." + key
				}
				walk(n.Content[i+1], newPath)
			}
			if path == "properties" || strings.HasSuffix(path, ".properties") {
				result[path] = keys
			}
		case yaml.SequenceNode:
			for _, c := range n.Content {
				walk(c, path)
			}
		}
	}
	walk(&doc, "")
	return result, nil
}
