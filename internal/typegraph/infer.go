// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

package typegraph

import (
	"strings"

	"github.com/quicktype/quicktype/internal/samples"
)

// Infer builds a type for one sample value tree. Every object becomes a
// fresh class labeled with the slot name that produced it; folding the
// result into a root with Unify is what merges classes occupying the same
// slot across samples.
func Infer(name string, v samples.Value) Type {
	switch v.Kind {
	case samples.NullValue:
		return NullType
	case samples.BoolValue:
		return BoolType
	case samples.IntegerValue:
		return IntegerType
	case samples.DoubleValue:
		return DoubleType
	case samples.StringValue:
		return StringType
	case samples.ArrayValue:
		elem := NothingType
		elemName := Singular(name)
		for _, item := range v.Items {
			elem = Unify(elem, Infer(elemName, item))
		}
		return ArrayOf(elem)
	case samples.ObjectValue:
		c := NewClass(name)
		for _, m := range v.Members {
			c.Set(m.Key, Infer(m.Key, m.Value))
		}
		return ClassOf(c)
	default:
		return NothingType
	}
}

// Singular guesses a singular form for an array slot name, so elements of
// "players" propose the class name "player".
func Singular(name string) string {
	switch {
	case strings.HasSuffix(name, "ies") && len(name) > 3:
		return name[:len(name)-3] + "y"
	case strings.HasSuffix(name, "sses"), strings.HasSuffix(name, "shes"), strings.HasSuffix(name, "ches"):
		return name[:len(name)-2]
	case strings.HasSuffix(name, "s") && !strings.HasSuffix(name, "ss") && len(name) > 1:
		return name[:len(name)-1]
	default:
		return name
	}
}
