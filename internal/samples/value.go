// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

// Package samples parses sample JSON and YAML documents into ordered value trees.
package samples

// ValueKind identifies the variant held by a Value.
type ValueKind int

const (
	NullValue ValueKind = iota
	BoolValue
	IntegerValue
	DoubleValue
	StringValue
	ArrayValue
	ObjectValue
)

// Value is a JSON-like document tree. Object member order is preserved
// from the source bytes so downstream type inference is deterministic.
type Value struct {
	Kind    ValueKind
	Bool    bool
	Int     int64
	Float   float64
	Str     string
	Items   []Value
	Members []Member
}

// Member is a single object property in source order.
type Member struct {
	Key   string
	Value Value
}

// String returns a short description of the value kind, used in error messages.
func (k ValueKind) String() string {
	switch k {
	case NullValue:
		return "null"
	case BoolValue:
		return "bool"
	case IntegerValue:
		return "integer"
	case DoubleValue:
		return "double"
	case StringValue:
		return "string"
	case ArrayValue:
		return "array"
	case ObjectValue:
		return "object"
	default:
		return "unknown"
	}
}
