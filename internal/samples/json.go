// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

package samples

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"gitlab.com/tozd/go/errors"
)

// ParseJSON decodes a single JSON document into a Value tree.
// It walks the token stream rather than unmarshalling into a map so that
// object keys keep their source order.
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, errors.Errorf("parsing sample JSON: %w", err)
	}

	// Anything after the first document is malformed input.
	if dec.More() {
		return Value{}, errors.New("trailing data after JSON document")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	token, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeToken(dec, token)
}

func decodeToken(dec *json.Decoder, token json.Token) (Value, error) {
	switch t := token.(type) {
	case nil:
		return Value{Kind: NullValue}, nil
	case bool:
		return Value{Kind: BoolValue, Bool: t}, nil
	case string:
		return Value{Kind: StringValue, Str: t}, nil
	case json.Number:
		return numberValue(t.String()), nil
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return Value{}, errors.Errorf("unexpected delimiter %q", t.String())
		}
	default:
		return Value{}, errors.Errorf("unexpected token %v", token)
	}
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := Value{Kind: ObjectValue}
	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyToken.(string)
		if !ok {
			return Value{}, errors.Errorf("object key is not a string: %v", keyToken)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		obj.Members = append(obj.Members, Member{Key: key, Value: val})
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	arr := Value{Kind: ArrayValue}
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		arr.Items = append(arr.Items, item)
	}
	// Consume the closing bracket.
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return arr, nil
}

// numberValue classifies a JSON number lexically: no fraction or exponent
// and a value that fits int64 means integer, everything else is a double.
func numberValue(lit string) Value {
	if !strings.ContainsAny(lit, ".eE") {
		if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return Value{Kind: IntegerValue, Int: n}
		}
	}
	f, _ := strconv.ParseFloat(lit, 64)
	return Value{Kind: DoubleValue, Float: f}
}
