// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

// Package jschema loads JSON Schema documents and converts them into the
// intermediate type graph.
package jschema

import (
	"strings"

	"github.com/goccy/go-json"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/google/jsonschema-go/jsonschema"
)

// Load parses a schema from raw bytes. YAML is detected from the file name
// and converted to JSON before unmarshalling so both formats share one
// schema model. The returned key order maps JSON paths (e.g. "properties",
// "$defs.address.properties") to property names in source order.
func Load(data []byte, filename string) (*jsonschema.Schema, map[string][]string, error) {
	if strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml") {
		keyOrder, err := ExtractKeyOrderFromYAML(data)
		if err != nil {
			return nil, nil, err
		}
		jsonData, err := yamlToJSON(data)
		if err != nil {
			return nil, nil, err
		}
		schema, err := unmarshalSchema(jsonData)
		if err != nil {
			return nil, nil, err
		}
		return schema, keyOrder, nil
	}

	keyOrder, err := ExtractKeyOrderFromJSON(data)
	if err != nil {
		return nil, nil, err
	}
	schema, err := unmarshalSchema(data)
	if err != nil {
		return nil, nil, err
	}
	return schema, keyOrder, nil
}

func unmarshalSchema(data []byte) (*jsonschema.Schema, error) {
	var schema jsonschema.Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, errors.Errorf("parsing JSON Schema: %w", err)
	}
	return &schema, nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Errorf("parsing YAML schema: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Errorf("re-encoding YAML schema: %w", err)
	}
	return out, nil
}
